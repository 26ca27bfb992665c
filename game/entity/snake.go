package entity

import "sprite-snake/game/types"

// Snake keeps its joints in a fixed-capacity array with an explicit length.
// Index 0 is the head.
type Snake struct {
	body      []types.Point
	length    int
	capacity  int
	Direction Direction
}

// NewSnake lays out length joints to the left of head, moving right.
func NewSnake(head types.Point, length, capacity, unit int) *Snake {
	if length < 1 {
		length = 1
	}
	if length > capacity {
		length = capacity
	}

	// One spare slot: Move writes body[length] before the head advances
	s := &Snake{
		body:      make([]types.Point, capacity+1),
		length:    length,
		capacity:  capacity,
		Direction: Right,
	}
	for i := 0; i < length; i++ {
		s.body[i] = types.Point{X: head.X - i*unit, Y: head.Y}
	}
	return s
}

func (s *Snake) Head() types.Point {
	return s.body[0]
}

func (s *Snake) Len() int {
	return s.length
}

func (s *Snake) Capacity() int {
	return s.capacity
}

// Segment returns joint i; i must be in [0, Len()).
func (s *Snake) Segment(i int) types.Point {
	return s.body[i]
}

// Segments returns a copy of the visible joints, head first.
func (s *Snake) Segments() []types.Point {
	out := make([]types.Point, s.length)
	copy(out, s.body[:s.length])
	return out
}

// Grow adds one joint. The new tail slot is filled by the next Move.
// It reports false when the snake already fills the board.
func (s *Snake) Grow() bool {
	if s.length >= s.capacity {
		return false
	}
	s.length++
	return true
}

// Move shifts every joint onto its predecessor and advances the head one
// unit in the active direction.
func (s *Snake) Move(unit int) {
	for i := s.length; i > 0; i-- {
		s.body[i] = s.body[i-1]
	}
	s.body[0] = s.body[0].Add(s.Direction.Step(unit))
}

// SetDirection changes the heading unless dir is the reverse of the current
// one. It reports whether the change was accepted.
func (s *Snake) SetDirection(dir Direction) bool {
	if dir == s.Direction.Reverse() {
		return false
	}
	s.Direction = dir
	return true
}
