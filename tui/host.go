package tui

import (
	"fmt"
	"time"

	"sprite-snake/game"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
)

const frameTime = time.Second / 60

// Host plays one surface in the terminal until the player quits.
type Host struct {
	Logger *log.Logger

	// Screen overrides the terminal screen; nil means tcell.NewScreen.
	Screen tcell.Screen
}

// Run takes over the terminal. PollEvent runs on its own goroutine and only
// feeds the events channel; the surface is touched from this goroutine alone.
func (h *Host) Run(s *game.Surface) error {
	screen := h.Screen
	if screen == nil {
		var err error
		screen, err = tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("failed to create terminal screen: %w", err)
		}
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialise terminal: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	canvas := NewCanvas(screen, s.Grid().Unit)
	frames := time.NewTicker(frameTime)
	defer frames.Stop()

	dirty := true
	s.SetRedraw(func() { dirty = true })

	s.Start(time.Now())
	for {
		if dirty {
			h.draw(screen, canvas, s)
			dirty = false
		}

		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch e := ev.(type) {
			case *tcell.EventKey:
				if quitKey(e) {
					h.logQuit(s)
					return nil
				}
				if k := translateKey(e); k != game.KeyNone {
					s.OnKey(k)
				}
			case *tcell.EventResize:
				screen.Sync()
				dirty = true
			}
		case now := <-frames.C:
			s.Advance(now)
		}
	}
}

func (h *Host) draw(screen tcell.Screen, canvas *Canvas, s *game.Surface) {
	screen.Clear()
	canvas.drawBorder(s.Grid())
	s.Render(canvas)
	screen.Show()
}

func (h *Host) logQuit(s *game.Surface) {
	if h.Logger != nil {
		h.Logger.Info("terminal closed", "over", s.Over(), "score", s.State().Run.Score())
	}
}

func quitKey(e *tcell.EventKey) bool {
	return e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC
}

// translateKey maps arrow keys to game keys.
func translateKey(e *tcell.EventKey) game.Key {
	switch e.Key() {
	case tcell.KeyLeft:
		return game.KeyLeft
	case tcell.KeyRight:
		return game.KeyRight
	case tcell.KeyUp:
		return game.KeyUp
	case tcell.KeyDown:
		return game.KeyDown
	default:
		return game.KeyNone
	}
}
