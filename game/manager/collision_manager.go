package manager

import (
	"sprite-snake/game/entity"
	"sprite-snake/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

// NeckLength is the number of joints behind the head that never count as a
// self collision. They cannot reach the head right after a turn.
const NeckLength = 4

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision reports how the snake's head collides, if at all. Self
// collisions win over wall collisions.
func (cm *CollisionManager) CheckCollision(snake *entity.Snake) CollisionType {
	if cm.isSelfCollision(snake) {
		return SelfCollision
	}
	if cm.isWallCollision(snake.Head()) {
		return WallCollision
	}
	return NoCollision
}

// isWallCollision checks if a position lies outside the board
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// isSelfCollision scans from the tail toward the head and stops at the neck
func (cm *CollisionManager) isSelfCollision(snake *entity.Snake) bool {
	head := snake.Head()
	for i := snake.Len() - 1; i > NeckLength; i-- {
		if snake.Segment(i) == head {
			return true
		}
	}
	return false
}
