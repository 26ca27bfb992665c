package game

import "sprite-snake/game/entity"

// Key is a host-independent key code. Hosts translate their own key events
// into these before calling OnKey.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
)

// direction maps arrow keys to headings.
func (k Key) direction() (entity.Direction, bool) {
	switch k {
	case KeyLeft:
		return entity.Left, true
	case KeyRight:
		return entity.Right, true
	case KeyUp:
		return entity.Up, true
	case KeyDown:
		return entity.Down, true
	default:
		return 0, false
	}
}
