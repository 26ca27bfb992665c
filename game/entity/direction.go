package entity

import "sprite-snake/game/types"

// Direction is one of the four cardinal headings
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Reverse returns the opposite heading.
func (d Direction) Reverse() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	default:
		return Up
	}
}

// Step returns the displacement of one move of the given size
func (d Direction) Step(unit int) types.Point {
	switch d {
	case Left:
		return types.Point{X: -unit, Y: 0} // decrement x
	case Right:
		return types.Point{X: unit, Y: 0} // increment x
	case Up:
		return types.Point{X: 0, Y: -unit} // decrement y
	default:
		return types.Point{X: 0, Y: unit} // increment y
	}
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}
