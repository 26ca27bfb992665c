package ui

import (
	"fmt"
	"time"

	"sprite-snake/game"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const targetFPS = 60

// Window hosts one surface in a fixed-size raylib window.
type Window struct {
	Title  string
	Assets string
	Logger *log.Logger
}

// Run opens the window, plays the game until the window is closed and
// releases everything it acquired.
func (w *Window) Run(s *game.Surface) error {
	grid := s.Grid()

	// Flags must be set before InitWindow. The window is never resizable:
	// the wall collision extents are the drawable area.
	rl.SetConfigFlags(rl.FlagVsyncHint)
	rl.InitWindow(int32(grid.Width), int32(grid.Height), w.Title)
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		return fmt.Errorf("failed to open %dx%d window", grid.Width, grid.Height)
	}
	rl.ClearWindowState(rl.FlagWindowResizable)

	monitor := rl.GetCurrentMonitor()
	rl.SetWindowPosition(
		(rl.GetMonitorWidth(monitor)-grid.Width)/2,
		(rl.GetMonitorHeight(monitor)-grid.Height)/2)
	rl.SetTargetFPS(targetFPS)

	renderer, err := NewRenderer(w.Assets)
	if err != nil {
		return err
	}
	defer renderer.Unload()

	s.Start(time.Now())
	for !rl.WindowShouldClose() {
		forwardKeys(s)
		s.Advance(time.Now())
		renderer.Draw(s)
	}

	if w.Logger != nil {
		w.Logger.Info("window closed", "over", s.Over(), "score", s.State().Run.Score())
	}
	return nil
}
