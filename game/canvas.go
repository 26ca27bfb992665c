package game

import "sprite-snake/game/types"

// Sprite names one of the three images the board is drawn with.
type Sprite int

const (
	SpriteBody Sprite = iota
	SpriteFood
	SpriteHead
)

func (s Sprite) String() string {
	switch s {
	case SpriteBody:
		return "body"
	case SpriteFood:
		return "food"
	case SpriteHead:
		return "head"
	default:
		return "unknown"
	}
}

// Canvas is the drawing surface a host hands to Render. Coordinates are
// logical board pixels.
type Canvas interface {
	DrawSprite(sprite Sprite, pos types.Point)
	DrawText(text string, x, y int)
	MeasureText(text string) int
}
