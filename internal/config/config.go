// internal/config/config.go
//
// Runtime settings, read from the environment (after main loads .env).
//
// Environment variables:
//   LOG_LEVEL=warn            zerolog level (trace..panic, disabled)
//   RPS_SEED=1234             opponent RNG seed; unset → time-based
//   RPS_LEDGER=memory         session ledger backend: memory | sqlite
//   RPS_CLEAR_SCREEN=auto     auto | always | never
//   RPS_PLAYER_NAME=human     name recorded for the human player

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/robalobadob/rpsls/internal/console"
)

// Config holds the runtime settings read from the environment.
type Config struct {
	LogLevel   zerolog.Level
	Seed       uint64
	Ledger     string
	ClearMode  console.ClearMode
	PlayerName string
}

// Load builds a Config from the environment. Invalid values are errors;
// unset values fall back to defaults.
func Load() (*Config, error) {
	c := &Config{
		Ledger:     strings.ToLower(getEnv("RPS_LEDGER", "memory")),
		PlayerName: getEnv("RPS_PLAYER_NAME", "human"),
	}

	lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "warn"))
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	c.LogLevel = lvl

	if v := os.Getenv("RPS_SEED"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("RPS_SEED: %w", err)
		}
		c.Seed = n
	} else {
		c.Seed = uint64(time.Now().UnixNano())
	}

	switch c.Ledger {
	case "memory", "sqlite":
	default:
		return nil, fmt.Errorf("RPS_LEDGER: unknown backend %q", c.Ledger)
	}

	if c.ClearMode, err = console.ParseClearMode(getEnv("RPS_CLEAR_SCREEN", "auto")); err != nil {
		return nil, fmt.Errorf("RPS_CLEAR_SCREEN: %w", err)
	}
	return c, nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
