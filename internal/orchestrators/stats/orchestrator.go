// Package stats implements the orchestrator that validates stat requests,
// runs the calculators and records the results
package stats

//go:generate mockgen -destination=mock/mock_service.go -package=statsmock github.com/KirkDiggler/rpg-stats/internal/orchestrators/stats Service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-stats/internal/engine"
	"github.com/KirkDiggler/rpg-stats/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-stats/internal/errors"
	"github.com/KirkDiggler/rpg-stats/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-stats/internal/pkg/idgen"
	dicesession "github.com/KirkDiggler/rpg-stats/internal/repositories/dice_session"
)

const (
	// ContextHitPoints is the roll log context for hit point rolls
	ContextHitPoints = "hit_points"

	// DefaultSessionTTL is how long recorded rolls are kept
	DefaultSessionTTL = 15 * time.Minute

	errNoRollLog = "roll log is not configured"
)

// Service defines the interface for stat calculations
type Service interface {
	CalculateArmorClass(ctx context.Context, input *CalculateArmorClassInput) (*CalculateArmorClassOutput, error)
	CalculateHitPoints(ctx context.Context, input *CalculateHitPointsInput) (*CalculateHitPointsOutput, error)

	// Roll log access
	GetRollLog(ctx context.Context, input *GetRollLogInput) (*GetRollLogOutput, error)
	ClearRollLog(ctx context.Context, input *ClearRollLogInput) (*ClearRollLogOutput, error)
}

// Config holds the dependencies for the stats orchestrator
type Config struct {
	Engine      engine.Engine
	EventBus    events.EventBus
	IDGenerator idgen.Generator

	// RollLog is optional; without it rolled hit points are not recorded
	RollLog dicesession.Repository

	// Clock defaults to the system clock
	Clock clock.Clock

	// SessionTTL defaults to DefaultSessionTTL
	SessionTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.SessionTTL < 0 {
		vb.Field("SessionTTL", "cannot be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	engine     engine.Engine
	eventBus   events.EventBus
	idGen      idgen.Generator
	rollLog    dicesession.Repository
	clock      clock.Clock
	sessionTTL time.Duration
}

// NewOrchestrator creates a new stats orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}
	ttl := cfg.SessionTTL
	if ttl == 0 {
		ttl = DefaultSessionTTL
	}

	return &orchestrator{
		engine:     cfg.Engine,
		eventBus:   cfg.EventBus,
		idGen:      cfg.IDGenerator,
		rollLog:    cfg.RollLog,
		clock:      clk,
		sessionTTL: ttl,
	}, nil
}

// CalculateArmorClass validates the equipment and returns armor class with tips
func (o *orchestrator) CalculateArmorClass(
	ctx context.Context,
	input *CalculateArmorClassInput,
) (*CalculateArmorClassOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if !input.Armor.Valid() {
		vb.InvalidField("armor", fmt.Sprintf("unknown armor %q", string(input.Armor)))
	}
	if !input.UnarmoredDefense.Valid() {
		vb.InvalidField("unarmored_defense", fmt.Sprintf("unknown kind %q", string(input.UnarmoredDefense.Kind)))
	} else if !input.UnarmoredDefense.IsNone() && input.Armor != dnd5e.ArmorNone {
		vb.InvalidField("unarmored_defense", "only applies when no armor is worn")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	breakdown := o.engine.ArmorClass(engine.ACRequest{
		Armor:            input.Armor,
		DexModifier:      input.DexModifier,
		Shield:           input.Shield,
		UnarmoredDefense: input.UnarmoredDefense,
	})
	tips := armorClassTips(input)

	slog.Info("Armor class calculated",
		"entity_id", input.EntityID,
		"armor", input.Armor,
		"dex_modifier", input.DexModifier,
		"shield", bool(input.Shield),
		"unarmored_defense", input.UnarmoredDefense.Kind,
		"armor_class", breakdown.Total,
	)

	o.publish(ctx, newArmorClassEvent(input, breakdown))

	return &CalculateArmorClassOutput{
		ArmorClass: breakdown.Total,
		Breakdown:  breakdown,
		Tips:       tips,
	}, nil
}

// CalculateHitPoints validates the character and returns maximum hit points.
// Rolled results for a named entity are appended to its roll log.
func (o *orchestrator) CalculateHitPoints(
	ctx context.Context,
	input *CalculateHitPointsInput,
) (*CalculateHitPointsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	method := input.Method
	if method == "" {
		method = dnd5e.HPMethodAverage
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("level", input.Level, dnd5e.MinLevel, dnd5e.MaxLevel, vb)
	if !input.Class.Valid() {
		vb.InvalidField("class", fmt.Sprintf("unknown class %q", input.Class.String()))
	}
	errors.ValidateEnum("method", string(method),
		[]string{string(dnd5e.HPMethodAverage), string(dnd5e.HPMethodRolled)}, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	req := engine.HPRequest{
		Class:       input.Class,
		Level:       input.Level,
		ConModifier: input.ConModifier,
		Tough:       input.Tough,
		HillDwarf:   input.HillDwarf,
		Method:      method,
	}

	result, err := o.engine.HitPoints(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to calculate hit points")
	}

	output := &CalculateHitPointsOutput{
		Result:    result,
		HitPoints: result.Total(),
	}

	if rolled, ok := result.(*engine.RolledHP); ok {
		output.Rolls = rolled.Rolls

		if input.EntityID != "" && o.rollLog != nil && len(rolled.Rolls) > 0 {
			roll, session, err := o.recordRolls(ctx, input.EntityID, req, rolled)
			if err != nil {
				return nil, err
			}
			output.Roll = roll
			output.Session = session
		}
	}

	slog.Info("Hit points calculated",
		"entity_id", input.EntityID,
		"class", input.Class.String(),
		"level", input.Level,
		"con_modifier", input.ConModifier,
		"tough", input.Tough,
		"hill_dwarf", input.HillDwarf,
		"method", method,
		"hit_points", output.HitPoints,
		"recorded", output.Roll != nil,
	)

	o.publish(ctx, newHitPointsEvent(input, result))

	return output, nil
}

func (o *orchestrator) recordRolls(
	ctx context.Context,
	entityID string,
	req engine.HPRequest,
	rolled *engine.RolledHP,
) (*dicesession.DiceRoll, *dicesession.DiceSession, error) {
	roll := newHitDiceRoll(o.idGen.Generate(), req, rolled.Rolls, o.clock.Now())

	getOutput, err := o.rollLog.Get(ctx, dicesession.GetInput{
		EntityID: entityID,
		Context:  ContextHitPoints,
	})
	if err != nil {
		if !errors.IsNotFound(err) {
			return nil, nil, errors.Wrap(err, "failed to check for existing roll log")
		}

		createOutput, err := o.rollLog.Create(ctx, dicesession.CreateInput{
			EntityID: entityID,
			Context:  ContextHitPoints,
			Rolls:    []dicesession.DiceRoll{*roll},
			TTL:      o.sessionTTL,
		})
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to create roll log")
		}
		return roll, createOutput.Session, nil
	}

	session := getOutput.Session
	session.Rolls = append(session.Rolls, *roll)
	if err := o.rollLog.Update(ctx, session); err != nil {
		return nil, nil, errors.Wrap(err, "failed to update roll log")
	}

	return roll, session, nil
}

// newHitDiceRoll describes the rolled part of a hit point calculation:
// one die per level after the first, each with the constitution modifier
func newHitDiceRoll(rollID string, req engine.HPRequest, rolls []int, now time.Time) *dicesession.DiceRoll {
	diceTotal := 0
	for _, r := range rolls {
		diceTotal += r
	}
	modifier := req.ConModifier * len(rolls)

	return &dicesession.DiceRoll{
		RollID:      rollID,
		Notation:    fmt.Sprintf("%d%s", len(rolls), req.Class.HitDice()),
		Dice:        append([]int(nil), rolls...),
		Modifier:    modifier,
		DiceTotal:   diceTotal,
		Total:       diceTotal + modifier,
		Description: fmt.Sprintf("%s level %d hit points", req.Class, req.Level),
		RolledAt:    now,
	}
}

// GetRollLog returns the recorded rolls for an entity
func (o *orchestrator) GetRollLog(ctx context.Context, input *GetRollLogInput) (*GetRollLogOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if o.rollLog == nil {
		return nil, errors.FailedPrecondition(errNoRollLog)
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("entity_id", input.EntityID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	getOutput, err := o.rollLog.Get(ctx, dicesession.GetInput{
		EntityID: input.EntityID,
		Context:  rollContext(input.Context),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get roll log")
	}

	return &GetRollLogOutput{
		Session: getOutput.Session,
	}, nil
}

// ClearRollLog discards the recorded rolls for an entity
func (o *orchestrator) ClearRollLog(ctx context.Context, input *ClearRollLogInput) (*ClearRollLogOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if o.rollLog == nil {
		return nil, errors.FailedPrecondition(errNoRollLog)
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("entity_id", input.EntityID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	sessionContext := rollContext(input.Context)
	deleteOutput, err := o.rollLog.Delete(ctx, dicesession.DeleteInput{
		EntityID: input.EntityID,
		Context:  sessionContext,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete roll log")
	}

	slog.Info("Roll log cleared",
		"entity_id", input.EntityID,
		"context", sessionContext,
		"rolls_deleted", deleteOutput.RollsDeleted,
	)

	return &ClearRollLogOutput{
		RollsDeleted: deleteOutput.RollsDeleted,
	}, nil
}

func rollContext(sessionContext string) string {
	if sessionContext == "" {
		return ContextHitPoints
	}
	return sessionContext
}
