package board

import (
	"errors"
	"fmt"
)

// ErrInvalidExtent is returned when a board is requested with a non-positive dimension.
var ErrInvalidExtent = errors.New("invalid extent")

// Coordinate identifies a single cell on the board.
type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Add returns the coordinate offset by the given row and column deltas.
func (c Coordinate) Add(dRow, dCol int) Coordinate {
	return Coordinate{
		Row: c.Row + dRow,
		Col: c.Col + dCol,
	}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Extent holds the fixed dimensions of a board.
type Extent struct {
	Height int `json:"height"`
	Width  int `json:"width"`
}

// NewExtent returns a validated extent.
func NewExtent(height, width int) (Extent, error) {
	e := Extent{Height: height, Width: width}
	if err := e.Validate(); err != nil {
		return Extent{}, err
	}
	return e, nil
}

// Validate returns ErrInvalidExtent if either dimension is less than 1.
func (e Extent) Validate() error {
	if e.Height < 1 || e.Width < 1 {
		return fmt.Errorf("%w: height %d, width %d", ErrInvalidExtent, e.Height, e.Width)
	}
	return nil
}

// Area returns the number of cells on the board.
func (e Extent) Area() int {
	return e.Height * e.Width
}

// Coordinates returns every cell of the extent in row-major order.
func (e Extent) Coordinates() []Coordinate {
	coords := make([]Coordinate, 0, e.Area())
	for row := 0; row < e.Height; row++ {
		for col := 0; col < e.Width; col++ {
			coords = append(coords, Coordinate{Row: row, Col: col})
		}
	}
	return coords
}

func (e Extent) String() string {
	return fmt.Sprintf("%dx%d", e.Height, e.Width)
}

// InBounds reports whether the coordinate lies on a board of the given extent.
func InBounds(c Coordinate, e Extent) bool {
	return c.Row >= 0 && c.Row < e.Height && c.Col >= 0 && c.Col < e.Width
}
