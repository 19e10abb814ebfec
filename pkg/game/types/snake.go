package types

import "github.com/cbodonnell/gridsnake/pkg/board"

// Snake is the ordered body of the snake, head first.
type Snake struct {
	Body []board.Coordinate `json:"body"`
}

// NewSnake returns a snake of length one at the given cell.
func NewSnake(start board.Coordinate) *Snake {
	return &Snake{
		Body: []board.Coordinate{start},
	}
}

// Head returns the first element of the body.
func (s *Snake) Head() board.Coordinate {
	return s.Body[0]
}

// Tail returns the last element of the body.
func (s *Snake) Tail() board.Coordinate {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Contains reports whether any body element is at c.
func (s *Snake) Contains(c board.Coordinate) bool {
	for _, b := range s.Body {
		if b == c {
			return true
		}
	}
	return false
}

// Occupies reports whether c is still covered by the body once the snake has moved
// its head without growing. The tail vacates on such a move, so it is excluded.
func (s *Snake) Occupies(c board.Coordinate, growing bool) bool {
	body := s.Body
	if !growing {
		body = body[:len(body)-1]
	}
	for _, b := range body {
		if b == c {
			return true
		}
	}
	return false
}

// Grow pushes a new head and keeps the tail.
func (s *Snake) Grow(head board.Coordinate) {
	s.Body = append(s.Body, board.Coordinate{})
	copy(s.Body[1:], s.Body[:len(s.Body)-1])
	s.Body[0] = head
}

// Shift pushes a new head and drops the tail, keeping the length unchanged.
func (s *Snake) Shift(head board.Coordinate) {
	copy(s.Body[1:], s.Body[:len(s.Body)-1])
	s.Body[0] = head
}

// Equal returns true if both snakes have the same body in the same order.
func (s *Snake) Equal(other *Snake) bool {
	if len(s.Body) != len(other.Body) {
		return false
	}
	for i := range s.Body {
		if s.Body[i] != other.Body[i] {
			return false
		}
	}
	return true
}

// Copy returns a snake with its own copy of the body.
func (s *Snake) Copy() *Snake {
	body := make([]board.Coordinate, len(s.Body))
	copy(body, s.Body)
	return &Snake{Body: body}
}
