package manager

import (
	"sprite-snake/game/types"

	"golang.org/x/exp/rand"
)

// FoodManager owns the single food position and the random source used to
// place it.
type FoodManager struct {
	grid types.Grid
	rng  *rand.Rand
	food types.Point
}

func NewFoodManager(grid types.Grid, seed uint64) *FoodManager {
	fm := &FoodManager{
		grid: grid,
		rng:  rand.New(rand.NewSource(seed)),
	}
	fm.Locate()
	return fm
}

// Locate draws a new position uniformly over the grid, x and y independently.
// The snake body is not avoided.
func (fm *FoodManager) Locate() types.Point {
	fm.food = types.Point{
		X: fm.rng.Intn(fm.grid.Columns()) * fm.grid.Unit,
		Y: fm.rng.Intn(fm.grid.Rows()) * fm.grid.Unit,
	}
	return fm.food
}

func (fm *FoodManager) Food() types.Point {
	return fm.food
}

// IsFoodCollision checks if a position sits on the food
func (fm *FoodManager) IsFoodCollision(pos types.Point) bool {
	return pos == fm.food
}

// Place puts the food at pos without drawing from the random source.
func (fm *FoodManager) Place(pos types.Point) {
	fm.food = pos
}
