// Package engine implements the armor class and hit point rules.
// The rpgtoolkit subpackage binds the rules to an rpg-toolkit dice roller.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/rpg-stats/internal/engine Engine

// Engine provides the stat calculations with its dependencies bound
type Engine interface {
	// ArmorClass computes armor class with a breakdown of its contributions
	ArmorClass(req ACRequest) ACBreakdown

	// HitPoints computes maximum hit points, rolling with the engine's dice roller when asked to
	HitPoints(req HPRequest) (HPResult, error)
}
