package entity

import "gridsnake/game/types"

// Snake is the player-controlled actor. Body[0] is the head; grown segments
// may stack on the tail, so cells can repeat.
type Snake struct {
	Body          []types.Point
	Direction     types.Direction // In effect for the current tick
	NextDirection types.Direction // Requested since the last tick
}

// NewSnake lays out a straight horizontal body of the given length with the
// head at startPos and the tail trailing to the left, moving right.
func NewSnake(startPos types.Point, length int) *Snake {
	if length < 1 {
		length = 1
	}
	body := make([]types.Point, length)
	for i := range body {
		body[i] = types.Point{X: startPos.X - i, Y: startPos.Y}
	}
	return &Snake{
		Body:          body,
		Direction:     types.Right,
		NextDirection: types.Right,
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) GetTail() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Move pushes a new head onto the front of the body.
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

// Grow appends n copies of the current tail cell.
func (s *Snake) Grow(n int) {
	tail := s.GetTail()
	for i := 0; i < n; i++ {
		s.Body = append(s.Body, tail)
	}
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

// CommitDirection makes the last requested direction the one in effect.
func (s *Snake) CommitDirection() types.Direction {
	s.Direction = s.NextDirection
	return s.Direction
}

// SetDirection requests dir for the next tick. Reversing onto the committed
// direction is refused; turning twice before a tick keeps the latest request.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if dir == types.None || dir == s.Direction.Opposite() {
		return false
	}
	s.NextDirection = dir
	return true
}
