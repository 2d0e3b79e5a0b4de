// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-stats/internal/engine"
	"github.com/KirkDiggler/rpg-stats/internal/entities/dnd5e"
)

// HPRequestBuilder provides a fluent interface for building test HPRequest instances
type HPRequestBuilder struct {
	req engine.HPRequest
}

// NewHPRequestBuilder creates a builder for a level 1 fighter with no modifiers, averaged
func NewHPRequestBuilder() *HPRequestBuilder {
	return &HPRequestBuilder{
		req: engine.HPRequest{
			Class:  dnd5e.Class{ID: dnd5e.ClassFighter},
			Level:  1,
			Method: dnd5e.HPMethodAverage,
		},
	}
}

// WithClass sets a fixed archetype
func (b *HPRequestBuilder) WithClass(id dnd5e.ClassID) *HPRequestBuilder {
	b.req.Class = dnd5e.Class{ID: id}
	return b
}

// WithHomebrew sets a homebrew class with the given hit die
func (b *HPRequestBuilder) WithHomebrew(name string, hitDice dnd5e.HitDice) *HPRequestBuilder {
	b.req.Class = dnd5e.Class{ID: dnd5e.ClassHomebrew, Name: name, Dice: hitDice}
	return b
}

// WithLevel sets the character level
func (b *HPRequestBuilder) WithLevel(level int) *HPRequestBuilder {
	b.req.Level = level
	return b
}

// WithCon sets the constitution modifier
func (b *HPRequestBuilder) WithCon(mod int) *HPRequestBuilder {
	b.req.ConModifier = mod
	return b
}

// WithTough grants the Tough feat
func (b *HPRequestBuilder) WithTough() *HPRequestBuilder {
	b.req.Tough = true
	return b
}

// WithHillDwarf makes the character a hill dwarf
func (b *HPRequestBuilder) WithHillDwarf() *HPRequestBuilder {
	b.req.HillDwarf = true
	return b
}

// Rolled switches to the rolled method
func (b *HPRequestBuilder) Rolled() *HPRequestBuilder {
	b.req.Method = dnd5e.HPMethodRolled
	return b
}

// Average switches to the average method
func (b *HPRequestBuilder) Average() *HPRequestBuilder {
	b.req.Method = dnd5e.HPMethodAverage
	return b
}

// Build returns the request
func (b *HPRequestBuilder) Build() engine.HPRequest {
	return b.req
}
