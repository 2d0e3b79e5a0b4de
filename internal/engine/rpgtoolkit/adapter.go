// Package rpgtoolkit provides the concrete implementation of the engine interface using rpg-toolkit modules.
package rpgtoolkit

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-stats/internal/engine"
	"github.com/KirkDiggler/rpg-stats/internal/errors"
)

// Adapter implements the engine.Engine interface using rpg-toolkit
type Adapter struct {
	diceRoller dice.Roller
}

// AdapterConfig contains configuration for creating a new Adapter
type AdapterConfig struct {
	DiceRoller dice.Roller
}

// Validate checks that all required dependencies are provided
func (c *AdapterConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.DiceRoller == nil {
		vb.RequiredField("DiceRoller")
	}

	return vb.Build()
}

// NewAdapter creates a new rpg-toolkit engine adapter
func NewAdapter(cfg *AdapterConfig) (*Adapter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid adapter config")
	}

	return &Adapter{
		diceRoller: cfg.DiceRoller,
	}, nil
}

// NewDefaultAdapter creates an adapter that rolls with dice.DefaultRoller
func NewDefaultAdapter() *Adapter {
	return &Adapter{diceRoller: dice.DefaultRoller}
}

// Verify that Adapter implements engine.Engine interface
var _ engine.Engine = (*Adapter)(nil)

// ArmorClass computes armor class and its breakdown
func (a *Adapter) ArmorClass(req engine.ACRequest) engine.ACBreakdown {
	return engine.BreakdownArmorClass(req)
}

// HitPoints computes maximum hit points, rolling with the configured roller
func (a *Adapter) HitPoints(req engine.HPRequest) (engine.HPResult, error) {
	result, err := engine.CalculateHitPoints(req, a.diceRoller)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to calculate hit points for %s", req.Class)
	}
	return result, nil
}
