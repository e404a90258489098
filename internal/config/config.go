// Package config reads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvChart    = "KOMBAT_CHART"
	EnvMaxTurns = "KOMBAT_MAX_TURNS"
	EnvLogLevel = "KOMBAT_LOG_LEVEL"
	EnvSeed     = "KOMBAT_SEED"
)

type Config struct {
	// ChartPath points at a YAML type chart. Empty means the built-in chart.
	ChartPath string
	// MaxTurns caps non-interactive battles. Zero means no cap.
	MaxTurns int
	// MaxTurnsSet is true when KOMBAT_MAX_TURNS was given, even as 0.
	MaxTurnsSet bool
	LogLevel slog.Level
	// Seed drives AutoPilot choices. Zero means time-based.
	Seed int64
}

// Load reads .env files (missing files are fine) and then the environment.
// Variables already set in the environment win over .env entries.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function such as os.Getenv.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		ChartPath: strings.TrimSpace(getenv(EnvChart)),
		LogLevel:  slog.LevelWarn,
	}

	if v := strings.TrimSpace(getenv(EnvMaxTurns)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("%s must be a non-negative integer, got %q", EnvMaxTurns, v)
		}
		cfg.MaxTurns = n
		cfg.MaxTurnsSet = true
	}

	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
	}

	if v := strings.TrimSpace(getenv(EnvSeed)); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be an integer, got %q", EnvSeed, v)
		}
		cfg.Seed = n
	}

	return cfg, nil
}

// NewLogger returns a text logger at the configured level.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.LogLevel}))
}
