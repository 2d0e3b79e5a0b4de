// Package config loads rpg-stats settings from an optional .env file and the environment
package config

import (
	stderrors "errors"
	"io"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/rpg-stats/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-stats/internal/errors"
)

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// DefaultEnvFile is read by Load when no files are named
const DefaultEnvFile = ".env"

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Config holds the runtime settings
type Config struct {
	LogLevel  string `env:"RPG_STATS_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"RPG_STATS_LOG_FORMAT" envDefault:"text"`

	// RedisURL enables the roll log when set
	RedisURL string `env:"RPG_STATS_REDIS_URL"`

	RollTTL time.Duration `env:"RPG_STATS_ROLL_TTL" envDefault:"15m"`

	// HPMethod is the hit point method used when none is given
	HPMethod string `env:"RPG_STATS_HP_METHOD" envDefault:"average"`
}

// Load reads the env files, then parses the environment into a Config.
// Variables already set in the environment win over the files.
// Missing files are skipped.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to read %s", file).
				WithMeta("file", file)
		}
	}

	cfg := &Config{}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return cfg, nil
}

// ParseEnv loads configuration from environment variables
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}
	return nil
}

func (c *Config) normalize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	c.RedisURL = strings.TrimSpace(c.RedisURL)
	c.HPMethod = strings.ToLower(strings.TrimSpace(c.HPMethod))
}

// Validate checks every setting
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("RPG_STATS_LOG_LEVEL", c.LogLevel, []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateEnum("RPG_STATS_LOG_FORMAT", c.LogFormat, []string{LogFormatText, LogFormatJSON}, vb)
	if c.RollTTL <= 0 {
		vb.Field("RPG_STATS_ROLL_TTL", "must be positive")
	}
	if _, err := dnd5e.ParseHPMethod(c.HPMethod); err != nil {
		vb.InvalidField("RPG_STATS_HP_METHOD", errors.GetMessage(err))
	}

	return vb.Build()
}

// RollLogEnabled reports whether a Redis URL was configured
func (c *Config) RollLogEnabled() bool {
	return c.RedisURL != ""
}

// Method returns the default hit point method, falling back to average
func (c *Config) Method() dnd5e.HPMethod {
	method, err := dnd5e.ParseHPMethod(c.HPMethod)
	if err != nil {
		return dnd5e.HPMethodAverage
	}
	return method
}

// Level returns the slog level, falling back to info
func (c *Config) Level() slog.Level {
	if level, ok := logLevels[strings.ToLower(c.LogLevel)]; ok {
		return level
	}
	return slog.LevelInfo
}

// NewLogger builds a slog logger writing to w in the configured format
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.Level()}
	if c.LogFormat == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
