package ui

import (
	"sprite-snake/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// translateKey maps a raylib key code to a game key.
func translateKey(key int32) game.Key {
	switch key {
	case rl.KeyLeft:
		return game.KeyLeft
	case rl.KeyRight:
		return game.KeyRight
	case rl.KeyUp:
		return game.KeyUp
	case rl.KeyDown:
		return game.KeyDown
	default:
		return game.KeyNone
	}
}

// forwardKeys drains raylib's key queue in press order.
func forwardKeys(s *game.Surface) {
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if k := translateKey(key); k != game.KeyNone {
			s.OnKey(k)
		}
	}
}
