package types

import "github.com/cbodonnell/gridsnake/pkg/board"

// Cell classifies what occupies a board cell.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellFood
	CellSnake
)

func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellFood:
		return "food"
	case CellSnake:
		return "snake"
	default:
		return "unknown"
	}
}

// CellAt classifies a single cell. Out of bounds cells are reported as empty.
func (g *GameState) CellAt(c board.Coordinate) Cell {
	if g.Snake != nil && g.Snake.Contains(c) {
		return CellSnake
	}
	if g.HasFoodAt(c) {
		return CellFood
	}
	return CellEmpty
}

// Cells returns the board as rows of classified cells.
func (g *GameState) Cells() [][]Cell {
	cells := make([][]Cell, g.Extent.Height)
	for row := range cells {
		cells[row] = make([]Cell, g.Extent.Width)
	}
	if g.Food != nil && board.InBounds(*g.Food, g.Extent) {
		cells[g.Food.Row][g.Food.Col] = CellFood
	}
	if g.Snake != nil {
		for _, b := range g.Snake.Body {
			if board.InBounds(b, g.Extent) {
				cells[b.Row][b.Col] = CellSnake
			}
		}
	}
	return cells
}
