package stats

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-stats/internal/engine"
	"github.com/KirkDiggler/rpg-stats/internal/engine/rpgtoolkit"
)

// Event types published on the event bus
const (
	EventArmorClassCalculated = "stats.armor_class.calculated"
	EventHitPointsCalculated  = "stats.hit_points.calculated"
)

// Keys set on the event context
const (
	EventKeyArmorClass       = "armor_class"
	EventKeyArmor            = "armor"
	EventKeyShield           = "shield"
	EventKeyUnarmoredDefense = "unarmored_defense"
	EventKeyHitPoints        = "hit_points"
	EventKeyMethod           = "method"
	EventKeyClass            = "class"
	EventKeyLevel            = "level"
	EventKeyRolls            = "rolls"
)

func newArmorClassEvent(input *CalculateArmorClassInput, breakdown engine.ACBreakdown) events.Event {
	event := events.NewGameEvent(
		EventArmorClassCalculated,
		rpgtoolkit.NewCharacterEntity(input.EntityID),
		nil,
	)
	event.Context().Set(EventKeyArmorClass, breakdown.Total)
	event.Context().Set(EventKeyArmor, string(input.Armor))
	event.Context().Set(EventKeyShield, bool(input.Shield))
	event.Context().Set(EventKeyUnarmoredDefense, string(input.UnarmoredDefense.Kind))
	return event
}

func newHitPointsEvent(input *CalculateHitPointsInput, result engine.HPResult) events.Event {
	event := events.NewGameEvent(
		EventHitPointsCalculated,
		rpgtoolkit.NewCharacterEntity(input.EntityID),
		nil,
	)
	event.Context().Set(EventKeyHitPoints, result.Total())
	event.Context().Set(EventKeyMethod, string(result.Method()))
	event.Context().Set(EventKeyClass, input.Class.String())
	event.Context().Set(EventKeyLevel, input.Level)
	if rolled, ok := result.(*engine.RolledHP); ok {
		event.Context().Set(EventKeyRolls, rolled.Rolls)
	}
	return event
}

// publish notifies subscribers; a failing subscriber never fails the calculation
func (o *orchestrator) publish(ctx context.Context, event events.Event) {
	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish event",
			"event_type", event.Type(),
			"error", err,
		)
	}
}
