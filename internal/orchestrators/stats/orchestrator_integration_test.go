package stats_test

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-stats/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-stats/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-stats/internal/errors"
	"github.com/KirkDiggler/rpg-stats/internal/orchestrators/stats"
	"github.com/KirkDiggler/rpg-stats/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-stats/internal/pkg/idgen"
	dicesession "github.com/KirkDiggler/rpg-stats/internal/repositories/dice_session"
	"github.com/KirkDiggler/rpg-stats/internal/testutils"
)

func TestOrchestrator_RollLogIntegration(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewFixed(time.Date(2025, 7, 20, 18, 0, 0, 0, time.UTC))

	client, mr := testutils.CreateTestRedisClient(t)
	repo, err := dicesession.NewRedisRepository(&dicesession.Config{
		Client: client,
		Clock:  clk,
	})
	require.NoError(t, err)

	adapter, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{
		DiceRoller: testutils.NewSequenceRoller(7, 1, 10, 3),
	})
	require.NoError(t, err)

	orchestrator, err := stats.NewOrchestrator(&stats.Config{
		Engine:      adapter,
		EventBus:    events.NewBus(),
		IDGenerator: idgen.NewSequential("roll"),
		RollLog:     repo,
		Clock:       clk,
	})
	require.NoError(t, err)

	first, err := orchestrator.CalculateHitPoints(ctx, &stats.CalculateHitPointsInput{
		EntityID:    "tordek",
		Class:       dnd5e.Class{ID: dnd5e.ClassPaladin},
		Level:       4,
		ConModifier: 3,
		Method:      dnd5e.HPMethodRolled,
	})
	require.NoError(t, err)
	assert.Equal(t, float64(40), first.HitPoints)
	assert.Equal(t, "roll_1", first.Roll.RollID)
	assert.True(t, mr.Exists("dice_session:tordek:hit_points"))

	second, err := orchestrator.CalculateHitPoints(ctx, &stats.CalculateHitPointsInput{
		EntityID:    "tordek",
		Class:       dnd5e.Class{ID: dnd5e.ClassPaladin},
		Level:       2,
		ConModifier: 3,
		Method:      dnd5e.HPMethodRolled,
	})
	require.NoError(t, err)
	assert.Equal(t, float64(19), second.HitPoints) // 10 + 3 + 3 + 3

	log, err := orchestrator.GetRollLog(ctx, &stats.GetRollLogInput{EntityID: "tordek"})
	require.NoError(t, err)
	require.Len(t, log.Session.Rolls, 2)
	assert.Equal(t, "3d10", log.Session.Rolls[0].Notation)
	assert.Equal(t, "1d10", log.Session.Rolls[1].Notation)
	assert.Equal(t, 27+6, log.Session.TotalRolled())

	clk.Advance(stats.DefaultSessionTTL)
	_, err = orchestrator.GetRollLog(ctx, &stats.GetRollLogInput{EntityID: "tordek"})
	assert.True(t, errors.IsNotFound(err))

	cleared, err := orchestrator.ClearRollLog(ctx, &stats.ClearRollLogInput{EntityID: "tordek"})
	require.NoError(t, err)
	assert.Equal(t, 0, cleared.RollsDeleted)
}
