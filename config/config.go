// Package config resolves runtime settings from flags and environment.
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"sprite-snake/game/types"

	"github.com/charmbracelet/log"
)

// Backends a game can be hosted in.
const (
	BackendWindow   = "window"
	BackendTerminal = "terminal"
)

// Config holds every tunable the binary reads at startup
type Config struct {
	Delay    time.Duration
	Assets   string
	Seed     uint64
	Backend  string
	Snapshot string
	LogLevel log.Level
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Load parses args (without the program name). Flags win over environment
// variables, which win over defaults.
func Load(args []string) (Config, error) {
	fs := flag.NewFlagSet("snake", flag.ContinueOnError)

	delayDefault, err := time.ParseDuration(GetEnv("SNAKE_DELAY", types.Delay.String()))
	if err != nil {
		return Config{}, fmt.Errorf("invalid SNAKE_DELAY: %w", err)
	}
	seedDefault, err := strconv.ParseUint(GetEnv("SNAKE_SEED", "0"), 10, 64)
	if err != nil {
		return Config{}, fmt.Errorf("invalid SNAKE_SEED: %w", err)
	}

	delay := fs.Duration("delay", delayDefault, "Interval between game ticks")
	assets := fs.String("assets", GetEnv("SNAKE_ASSETS", "resources"), "Directory holding dot.png, apple.png and head.png")
	seed := fs.Uint64("seed", seedDefault, "Seed for food placement (0 = time based)")
	backend := fs.String("backend", GetEnv("SNAKE_BACKEND", BackendWindow), "Host to run in: window or terminal")
	snapshot := fs.String("snapshot", GetEnv("SNAKE_SNAPSHOT", ""), "Write a PNG of the board here when the game ends")
	level := fs.String("log-level", GetEnv("SNAKE_LOG_LEVEL", "info"), "Log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *delay <= 0 {
		return Config{}, fmt.Errorf("delay must be positive, got %s", *delay)
	}
	if *backend != BackendWindow && *backend != BackendTerminal {
		return Config{}, fmt.Errorf("unknown backend %q", *backend)
	}
	lvl, err := log.ParseLevel(*level)
	if err != nil {
		return Config{}, fmt.Errorf("invalid log level: %w", err)
	}

	return Config{
		Delay:    *delay,
		Assets:   *assets,
		Seed:     *seed,
		Backend:  *backend,
		Snapshot: *snapshot,
		LogLevel: lvl,
	}, nil
}
