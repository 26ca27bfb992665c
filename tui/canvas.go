// Package tui hosts a surface in a terminal. Every board cell becomes two
// terminal columns so the board keeps its square shape.
package tui

import (
	"sprite-snake/game"
	"sprite-snake/game/types"

	"github.com/gdamore/tcell/v2"
)

var glyphs = map[game.Sprite]rune{
	game.SpriteBody: 'o',
	game.SpriteFood: '*',
	game.SpriteHead: '@',
}

var styles = map[game.Sprite]tcell.Style{
	game.SpriteBody: tcell.StyleDefault.Foreground(tcell.ColorGreen),
	game.SpriteFood: tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
	game.SpriteHead: tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
}

// Canvas implements game.Canvas on a tcell screen.
type Canvas struct {
	screen tcell.Screen
	unit   int
}

func NewCanvas(screen tcell.Screen, unit int) *Canvas {
	return &Canvas{screen: screen, unit: unit}
}

// Cell converts a board position to the terminal column and row.
func (c *Canvas) Cell(pos types.Point) (col, row int) {
	return pos.X * 2 / c.unit, pos.Y / c.unit
}

func (c *Canvas) DrawSprite(sprite game.Sprite, pos types.Point) {
	if pos.X < 0 || pos.Y < 0 {
		return
	}
	col, row := c.Cell(pos)
	c.screen.SetContent(col, row, glyphs[sprite], nil, styles[sprite])
	c.screen.SetContent(col+1, row, ' ', nil, styles[sprite])
}

func (c *Canvas) DrawText(text string, x, y int) {
	col, row := c.Cell(types.Point{X: x, Y: y})
	st := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	for i, ch := range []rune(text) {
		c.screen.SetContent(col+i, row, ch, nil, st)
	}
}

// MeasureText returns the width in board pixels: one column is half a cell.
func (c *Canvas) MeasureText(text string) int {
	return len([]rune(text)) * c.unit / 2
}

// drawBorder frames the board one column/row outside its extent.
func (c *Canvas) drawBorder(grid types.Grid) {
	st := tcell.StyleDefault.Foreground(tcell.ColorGray)
	w, h := grid.Columns()*2, grid.Rows()
	for x := 0; x <= w; x++ {
		c.screen.SetContent(x, h, '-', nil, st)
	}
	for y := 0; y < h; y++ {
		c.screen.SetContent(w, y, '|', nil, st)
	}
}
