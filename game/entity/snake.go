package entity

import (
	"snejk/game/types"
)

// Snake is an ordered body of segments, head first, plus the heading it
// travels in. The body never shrinks below one segment.
type Snake struct {
	body    []types.Point
	heading types.Heading
}

func NewSnake(start types.Point) *Snake {
	s := &Snake{
		heading: types.Right, // Start moving right
	}
	s.Grow(start)
	return s
}

// Grow appends a tail segment at p. No existing segment moves.
func (s *Snake) Grow(p types.Point) {
	s.body = append(s.body, p)
}

// SetHeading changes direction unless h is the reverse of the current
// heading, in which case the request is dropped.
func (s *Snake) SetHeading(h types.Heading) {
	if h == s.heading.Opposite() {
		return
	}
	s.heading = h
}

// Move shifts every segment onto its predecessor and advances the head one
// cell, wrapping around the board edges.
func (s *Snake) Move(grid types.Grid) {
	for i := len(s.body) - 1; i > 0; i-- {
		s.body[i] = s.body[i-1]
	}

	d := s.heading.Delta()
	head := types.Point{X: s.body[0].X + d.X, Y: s.body[0].Y + d.Y}

	if head.X < 0 {
		head.X = grid.Width - types.CellSize
	} else if head.X >= grid.Width {
		head.X = 0
	}
	if head.Y < 0 {
		head.Y = grid.Height - types.CellSize
	} else if head.Y >= grid.Height {
		head.Y = 0
	}
	s.body[0] = head
}

// CheckSelfCollision reports whether the head shares a cell with any other segment.
func (s *Snake) CheckSelfCollision() bool {
	head := s.body[0]
	for _, part := range s.body[1:] {
		if part == head {
			return true
		}
	}
	return false
}

func (s *Snake) Head() types.Point {
	return s.body[0]
}

func (s *Snake) Tail() types.Point {
	return s.body[len(s.body)-1]
}

func (s *Snake) Len() int {
	return len(s.body)
}

func (s *Snake) Heading() types.Heading {
	return s.heading
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []types.Point {
	body := make([]types.Point, len(s.body))
	copy(body, s.body)
	return body
}

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.body {
		if part == p {
			return true
		}
	}
	return false
}
