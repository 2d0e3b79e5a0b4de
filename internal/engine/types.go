package engine

import (
	"github.com/KirkDiggler/rpg-stats/internal/entities/dnd5e"
)

// ACRequest contains everything the armor class formula reads
type ACRequest struct {
	Armor            dnd5e.Armor
	DexModifier      int
	Shield           dnd5e.Shield
	UnarmoredDefense dnd5e.UnarmoredDefense
}

// ACBreakdown is an armor class split into its contributions
type ACBreakdown struct {
	// Base is the armor's base AC (10 with no armor)
	Base int `json:"base"`
	// Dex is the dexterity contribution after the armor policy,
	// including any unarmored defense bonus that survived it
	Dex int `json:"dex"`
	// UnarmoredBonus is the part of Dex that came from unarmored defense
	UnarmoredBonus int `json:"unarmored_bonus"`
	// Shield is 2 with a shield, 0 without
	Shield int `json:"shield"`
	// Total is the resulting armor class
	Total int `json:"total"`
}

// HPRequest contains everything the hit point formulas read
type HPRequest struct {
	Class       dnd5e.Class
	Level       int
	ConModifier int
	Tough       bool
	HillDwarf   bool
	Method      dnd5e.HPMethod
}

// HPResult is either RolledHP or AverageHP
type HPResult interface {
	// Method returns the method that produced the result
	Method() dnd5e.HPMethod
	// Total returns the maximum hit points
	Total() float64

	isHPResult()
}

// RolledHP is the result of rolling the hit die for every level after the first
type RolledHP struct {
	Points float64
	// Rolls holds the raw die results, one per level from level 2 up,
	// before the constitution modifier is added
	Rolls []int
}

// AverageHP is the result of taking the fixed value for every level after the first
type AverageHP struct {
	Points float64
}

// Method returns HPMethodRolled
func (r *RolledHP) Method() dnd5e.HPMethod { return dnd5e.HPMethodRolled }

// Total returns the maximum hit points
func (r *RolledHP) Total() float64 { return r.Points }

func (r *RolledHP) isHPResult() {}

// Method returns HPMethodAverage
func (r *AverageHP) Method() dnd5e.HPMethod { return dnd5e.HPMethodAverage }

// Total returns the maximum hit points
func (r *AverageHP) Total() float64 { return r.Points }

func (r *AverageHP) isHPResult() {}

var (
	_ HPResult = (*RolledHP)(nil)
	_ HPResult = (*AverageHP)(nil)
)
