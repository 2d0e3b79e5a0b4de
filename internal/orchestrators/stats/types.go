package stats

import (
	"github.com/KirkDiggler/rpg-stats/internal/engine"
	"github.com/KirkDiggler/rpg-stats/internal/entities/dnd5e"
	dicesession "github.com/KirkDiggler/rpg-stats/internal/repositories/dice_session"
)

// CalculateArmorClassInput defines the request for calculating armor class
type CalculateArmorClassInput struct {
	// EntityID is optional and only used to label the published event
	EntityID         string
	Armor            dnd5e.Armor
	DexModifier      int
	Shield           dnd5e.Shield
	UnarmoredDefense dnd5e.UnarmoredDefense
}

// CalculateArmorClassOutput defines the response for calculating armor class
type CalculateArmorClassOutput struct {
	ArmorClass int
	Breakdown  engine.ACBreakdown
	Tips       []string
}

// CalculateHitPointsInput defines the request for calculating maximum hit points
type CalculateHitPointsInput struct {
	// EntityID is optional; when set, rolled results are recorded in the roll log
	EntityID    string
	Class       dnd5e.Class
	Level       int
	ConModifier int
	Tough       bool
	HillDwarf   bool
	Method      dnd5e.HPMethod // empty means average
}

// CalculateHitPointsOutput defines the response for calculating maximum hit points
type CalculateHitPointsOutput struct {
	Result    engine.HPResult
	HitPoints float64

	// Rolls holds the raw hit die results for rolled calculations
	Rolls []int

	// Roll and Session are set only when the rolls were recorded
	Roll    *dicesession.DiceRoll
	Session *dicesession.DiceSession
}

// GetRollLogInput defines the request for reading recorded rolls
type GetRollLogInput struct {
	EntityID string
	Context  string // empty means ContextHitPoints
}

// GetRollLogOutput defines the response for reading recorded rolls
type GetRollLogOutput struct {
	Session *dicesession.DiceSession
}

// ClearRollLogInput defines the request for discarding recorded rolls
type ClearRollLogInput struct {
	EntityID string
	Context  string // empty means ContextHitPoints
}

// ClearRollLogOutput defines the response for discarding recorded rolls
type ClearRollLogOutput struct {
	RollsDeleted int
}
