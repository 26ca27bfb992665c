// Package snapshot renders a board into an in-memory image and saves it as
// PNG.
package snapshot

import (
	"fmt"
	"image"
	"math"
	"os"
	"path/filepath"

	"sprite-snake/game"
	"sprite-snake/game/types"

	"github.com/fogleman/gg"
)

// Canvas implements game.Canvas on top of a gg drawing context.
type Canvas struct {
	dc      *gg.Context
	sprites map[game.Sprite]image.Image
}

// NewCanvas returns a black width x height canvas. Sprites missing from the
// map are drawn as white DotSize squares.
func NewCanvas(width, height int, sprites map[game.Sprite]image.Image) *Canvas {
	dc := gg.NewContext(width, height)
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	return &Canvas{dc: dc, sprites: sprites}
}

func (c *Canvas) DrawSprite(sprite game.Sprite, pos types.Point) {
	if img, ok := c.sprites[sprite]; ok {
		c.dc.DrawImage(img, pos.X, pos.Y)
		return
	}
	c.dc.SetRGB(1, 1, 1)
	c.dc.DrawRectangle(float64(pos.X), float64(pos.Y), types.DotSize, types.DotSize)
	c.dc.Fill()
}

func (c *Canvas) DrawText(text string, x, y int) {
	c.dc.SetRGB(1, 1, 1)
	c.dc.DrawString(text, float64(x), float64(y))
}

func (c *Canvas) MeasureText(text string) int {
	w, _ := c.dc.MeasureString(text)
	return int(math.Ceil(w))
}

func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// Save writes the canvas to path as PNG, creating parent directories.
func (c *Canvas) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// Capture draws the board as it is now, food and snake even after game
// over, and writes it to path.
func Capture(s *game.Surface, sprites map[game.Sprite]image.Image, path string) error {
	grid := s.Grid()
	c := NewCanvas(grid.Width, grid.Height, sprites)
	s.RenderBoard(c)
	return c.Save(path)
}
