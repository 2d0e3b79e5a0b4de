package main

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-stats/internal/config"
	"github.com/KirkDiggler/rpg-stats/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-stats/internal/errors"
	"github.com/KirkDiggler/rpg-stats/internal/orchestrators/stats"
	"github.com/KirkDiggler/rpg-stats/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-stats/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-stats/internal/redis"
	dicesession "github.com/KirkDiggler/rpg-stats/internal/repositories/dice_session"
)

// cfg is loaded once per invocation by setup
var cfg *config.Config

// createService is swapped out in tests
var createService = newService

func setup(cmd *cobra.Command, _ []string) error {
	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}

	loaded, err := config.Load(files...)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		loaded.LogLevel = strings.ToLower(strings.TrimSpace(logLevel))
	}
	if flags.Changed("log-format") {
		loaded.LogFormat = strings.ToLower(strings.TrimSpace(logFormat))
	}
	if flags.Changed("redis-url") {
		loaded.RedisURL = strings.TrimSpace(redisURL)
	}
	if err := loaded.Validate(); err != nil {
		return errors.Wrap(err, "invalid flags")
	}

	cfg = loaded
	slog.SetDefault(cfg.NewLogger(os.Stderr))
	return nil
}

func newService(ctx context.Context, cfg *config.Config) (stats.Service, func(), error) {
	adapter := rpgtoolkit.NewDefaultAdapter()

	bus := events.NewBus()
	logEvent := func(_ context.Context, event events.Event) error {
		slog.Debug("Event published", "type", event.Type(), "entity", event.Source().GetID())
		return nil
	}
	bus.SubscribeFunc(stats.EventArmorClassCalculated, 0, logEvent)
	bus.SubscribeFunc(stats.EventHitPointsCalculated, 0, logEvent)

	cleanup := func() {}
	var rollLog dicesession.Repository
	if cfg.RollLogEnabled() {
		client, err := redis.NewClientFromURL(cfg.RedisURL, nil)
		if err != nil {
			return nil, nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid redis url")
		}
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, errors.WrapWithCode(err, errors.CodeUnavailable, "redis is not reachable")
		}
		cleanup = func() {
			if err := client.Close(); err != nil {
				slog.Warn("Failed to close redis client", "error", err)
			}
		}

		rollLog, err = dicesession.NewRedisRepository(&dicesession.Config{
			Client:     client,
			Clock:      clock.New(),
			DefaultTTL: cfg.RollTTL,
		})
		if err != nil {
			cleanup()
			return nil, nil, errors.Wrap(err, "failed to create roll log")
		}
		slog.Debug("Roll log enabled", "ttl", cfg.RollTTL)
	}

	service, err := stats.NewOrchestrator(&stats.Config{
		Engine:      adapter,
		EventBus:    bus,
		IDGenerator: idgen.NewUUID("roll"),
		RollLog:     rollLog,
		SessionTTL:  cfg.RollTTL,
	})
	if err != nil {
		cleanup()
		return nil, nil, errors.Wrap(err, "failed to create stats service")
	}

	return service, cleanup, nil
}

// withService runs fn against a freshly built service under the request timeout
func withService(fn func(ctx context.Context, service stats.Service) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	service, cleanup, err := createService(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	return fn(ctx, service)
}
