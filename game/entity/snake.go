package entity

import (
	"snake-classic/game/types"
)

// Snake keeps its body head-first. Direction is the heading used by the
// last move; pending is what the next move will use.
type Snake struct {
	Body      []types.Point
	Direction types.Point
	pending   types.Point
}

// NewSnake builds a horizontal snake of the given length whose head sits at
// head and whose body trails behind it, opposite to dir.
func NewSnake(head types.Point, length int, dir types.Point) *Snake {
	body := make([]types.Point, 0, length)
	back := dir.Opposite()
	p := head
	for i := 0; i < length; i++ {
		body = append(body, p)
		p = p.Add(back)
	}
	return FromBody(body, dir)
}

// FromBody wraps an existing head-first body heading in dir.
func FromBody(body []types.Point, dir types.Point) *Snake {
	return &Snake{
		Body:      body,
		Direction: dir,
		pending:   dir,
	}
}

// Move prepends a new head.
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 1 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// SetDirection records dir for the next move. Anything that is not a unit
// vector is ignored, and so is a 180-degree turn once the snake has a neck.
func (s *Snake) SetDirection(dir types.Point) bool {
	if !dir.IsDirection() {
		return false
	}
	if len(s.Body) >= 2 && dir == s.Direction.Opposite() {
		return false
	}
	s.pending = dir
	return true
}

// Pending returns the direction the next move will use.
func (s *Snake) Pending() types.Point {
	return s.pending
}

// Turn commits the pending direction and returns it.
func (s *Snake) Turn() types.Point {
	s.Direction = s.pending
	return s.Direction
}

// Cells returns a copy of the body.
func (s *Snake) Cells() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}
