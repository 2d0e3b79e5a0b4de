package config_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-stats/internal/config"
	"github.com/KirkDiggler/rpg-stats/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-stats/internal/errors"
)

var envKeys = []string{
	"RPG_STATS_LOG_LEVEL",
	"RPG_STATS_LOG_FORMAT",
	"RPG_STATS_REDIS_URL",
	"RPG_STATS_ROLL_TTL",
	"RPG_STATS_HP_METHOD",
}

// clearEnv unsets every key for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func missingFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load(missingFile(t))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, config.LogFormatText, cfg.LogFormat)
	assert.Equal(t, "", cfg.RedisURL)
	assert.Equal(t, 15*time.Minute, cfg.RollTTL)
	assert.Equal(t, dnd5e.HPMethodAverage, cfg.Method())
	assert.False(t, cfg.RollLogEnabled())
	assert.Equal(t, slog.LevelInfo, cfg.Level())
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("RPG_STATS_LOG_LEVEL", "DEBUG")
	t.Setenv("RPG_STATS_LOG_FORMAT", "json")
	t.Setenv("RPG_STATS_REDIS_URL", " redis://localhost:6379/0 ")
	t.Setenv("RPG_STATS_ROLL_TTL", "1h")
	t.Setenv("RPG_STATS_HP_METHOD", "Rolled")

	cfg, err := config.Load(missingFile(t))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.True(t, cfg.RollLogEnabled())
	assert.Equal(t, time.Hour, cfg.RollTTL)
	assert.Equal(t, dnd5e.HPMethodRolled, cfg.Method())
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	// the process environment wins over the file
	t.Setenv("RPG_STATS_LOG_LEVEL", "warn")

	file := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(file, []byte(
		"RPG_STATS_LOG_LEVEL=error\nRPG_STATS_HP_METHOD=rolled\n",
	), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("RPG_STATS_HP_METHOD") })

	cfg, err := config.Load(file)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, dnd5e.HPMethodRolled, cfg.Method())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "log level", key: "RPG_STATS_LOG_LEVEL", value: "loud"},
		{name: "log format", key: "RPG_STATS_LOG_FORMAT", value: "xml"},
		{name: "ttl syntax", key: "RPG_STATS_ROLL_TTL", value: "soon"},
		{name: "ttl zero", key: "RPG_STATS_ROLL_TTL", value: "0s"},
		{name: "hp method", key: "RPG_STATS_HP_METHOD", value: "max"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := config.Load(missingFile(t))
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}

func TestParseEnvError(t *testing.T) {
	type target struct {
		Port int `env:"RPG_STATS_TEST_PORT" envDefault:"123"`
	}
	t.Setenv("RPG_STATS_TEST_PORT", "not-an-int")

	var cfg target
	err := config.ParseEnv(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestNewLogger(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := &config.Config{LogLevel: "info", LogFormat: config.LogFormatJSON}

		cfg.NewLogger(&buf).Info("Armor class calculated", "armor_class", 18)
		assert.Contains(t, buf.String(), `"armor_class":18`)
	})

	t.Run("text respects level", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := &config.Config{LogLevel: "warn", LogFormat: config.LogFormatText}

		logger := cfg.NewLogger(&buf)
		logger.Info("hidden")
		logger.Warn("shown", "entity_id", "char-1")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "entity_id=char-1")
	})
}
