package config

import (
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Delay != 100*time.Millisecond {
		t.Errorf("expected 100ms delay, got %v", cfg.Delay)
	}
	if cfg.Assets != "resources" {
		t.Errorf("expected resources dir, got %q", cfg.Assets)
	}
	if cfg.Seed != 0 {
		t.Errorf("expected seed 0, got %d", cfg.Seed)
	}
	if cfg.Backend != BackendWindow {
		t.Errorf("expected window backend, got %q", cfg.Backend)
	}
	if cfg.Snapshot != "" {
		t.Errorf("expected no snapshot, got %q", cfg.Snapshot)
	}
	if cfg.LogLevel != log.InfoLevel {
		t.Errorf("expected info level, got %v", cfg.LogLevel)
	}
}

func TestLoadFlags(t *testing.T) {
	cfg, err := Load([]string{
		"-delay", "50ms",
		"-assets", "/tmp/sprites",
		"-seed", "42",
		"-backend", "terminal",
		"-snapshot", "out/final.png",
		"-log-level", "debug",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Delay != 50*time.Millisecond {
		t.Errorf("expected 50ms delay, got %v", cfg.Delay)
	}
	if cfg.Assets != "/tmp/sprites" {
		t.Errorf("unexpected assets dir %q", cfg.Assets)
	}
	if cfg.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Seed)
	}
	if cfg.Backend != BackendTerminal {
		t.Errorf("expected terminal backend, got %q", cfg.Backend)
	}
	if cfg.Snapshot != "out/final.png" {
		t.Errorf("unexpected snapshot path %q", cfg.Snapshot)
	}
	if cfg.LogLevel != log.DebugLevel {
		t.Errorf("expected debug level, got %v", cfg.LogLevel)
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("SNAKE_DELAY", "250ms")
	t.Setenv("SNAKE_SEED", "7")
	t.Setenv("SNAKE_BACKEND", "terminal")
	t.Setenv("SNAKE_LOG_LEVEL", "warn")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Delay != 250*time.Millisecond {
		t.Errorf("expected 250ms delay, got %v", cfg.Delay)
	}
	if cfg.Seed != 7 {
		t.Errorf("expected seed 7, got %d", cfg.Seed)
	}
	if cfg.Backend != BackendTerminal {
		t.Errorf("expected terminal backend, got %q", cfg.Backend)
	}
	if cfg.LogLevel != log.WarnLevel {
		t.Errorf("expected warn level, got %v", cfg.LogLevel)
	}

	// Flags override the environment
	cfg, err = Load([]string{"-seed", "8"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Seed != 8 {
		t.Errorf("expected flag seed 8, got %d", cfg.Seed)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{name: "zero delay", args: []string{"-delay", "0s"}},
		{name: "negative delay", args: []string{"-delay", "-5ms"}},
		{name: "unknown backend", args: []string{"-backend", "web"}},
		{name: "bad level", args: []string{"-log-level", "loud"}},
		{name: "unknown flag", args: []string{"-speed", "10"}},
		{name: "bad env delay", env: map[string]string{"SNAKE_DELAY": "soon"}},
		{name: "bad env seed", env: map[string]string{"SNAKE_SEED": "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(tt.args); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("SNAKE_TEST_VALUE", "set")
	if got := GetEnv("SNAKE_TEST_VALUE", "fallback"); got != "set" {
		t.Errorf("expected set, got %q", got)
	}
	if got := GetEnv("SNAKE_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("expected fallback, got %q", got)
	}
}
