package main

import (
	"os"

	"sprite-snake/assets"
	"sprite-snake/config"
	"sprite-snake/game"
	"sprite-snake/game/types"
	"sprite-snake/snapshot"
	"sprite-snake/tui"
	"sprite-snake/ui"

	"github.com/charmbracelet/log"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatal("invalid configuration", "err", err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           cfg.LogLevel,
	})

	opts := game.Options{
		Delay:  cfg.Delay,
		Seed:   cfg.Seed,
		Logger: logger,
	}
	if cfg.Snapshot != "" {
		opts.OnOver = func(s *game.Surface) {
			sprites, err := assets.LoadImages(cfg.Assets, types.DotSize)
			if err != nil {
				logger.Warn("drawing snapshot without sprites", "err", err)
			}
			if err := snapshot.Capture(s, sprites, cfg.Snapshot); err != nil {
				logger.Error("failed to save snapshot", "err", err)
				return
			}
			logger.Info("snapshot saved", "path", cfg.Snapshot)
		}
	}
	s := game.NewSurface(opts)

	logger.Debug("starting", "backend", cfg.Backend, "session", s.UUID, "assets", cfg.Assets)
	switch cfg.Backend {
	case config.BackendTerminal:
		host := &tui.Host{Logger: logger}
		err = host.Run(s)
	default:
		window := &ui.Window{Title: "Snake", Assets: cfg.Assets, Logger: logger}
		err = window.Run(s)
	}
	if err != nil {
		logger.Error("game stopped", "err", err)
		os.Exit(1)
	}
}
