package types

import "time"

// Point is a position on the board in logical pixels.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the board dimensions and the size of one cell
type Grid struct {
	Width  int
	Height int
	Unit   int
}

// Board constants
const (
	BoardWidth    = 350
	BoardHeight   = 350
	DotSize       = 10 // Size of a snake segment and of the food sprite
	InitialLength = 3
	Delay         = 100 * time.Millisecond // Interval between ticks
)

// StartHead is where the head sits when a game begins.
var StartHead = Point{X: 50, Y: 50}

// DefaultGrid returns the fixed 350x350 board with 10px cells.
func DefaultGrid() Grid {
	return Grid{Width: BoardWidth, Height: BoardHeight, Unit: DotSize}
}

// Columns is the number of cells along x.
func (g Grid) Columns() int {
	return g.Width / g.Unit
}

// Rows is the number of cells along y.
func (g Grid) Rows() int {
	return g.Height / g.Unit
}

// Capacity bounds the snake length: board area divided by cell area.
func (g Grid) Capacity() int {
	return (g.Width * g.Height) / (g.Unit * g.Unit)
}

// Contains reports whether p lies inside [0, Width) x [0, Height).
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Aligned reports whether p sits on a cell corner.
func (g Grid) Aligned(p Point) bool {
	return p.X%g.Unit == 0 && p.Y%g.Unit == 0
}
