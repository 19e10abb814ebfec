package types

import "fmt"

// Direction is one of the four moves the snake can make in a turn.
type Direction uint8

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

// Directions lists every direction in declaration order.
var Directions = []Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Valid reports whether d is one of the four declared directions.
func (d Direction) Valid() bool {
	return d <= DirectionRight
}

// Delta returns the unit row and column offset for the direction.
// Rows grow downward, so Up decreases the row.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case DirectionUp:
		return -1, 0
	case DirectionDown:
		return 1, 0
	case DirectionLeft:
		return 0, -1
	case DirectionRight:
		return 0, 1
	default:
		return 0, 0
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	default:
		return DirectionLeft
	}
}
