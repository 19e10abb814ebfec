package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/cbodonnell/gridsnake/pkg/game"
	"github.com/cbodonnell/gridsnake/pkg/game/types"
)

const (
	EmptyTile = " "
	FoodTile  = "o"
	SnakeTile = "S"

	header = "=== Game State ==="
)

// Tile returns the character drawn for a cell.
func Tile(cell types.Cell) string {
	switch cell {
	case types.CellFood:
		return FoodTile
	case types.CellSnake:
		return SnakeTile
	default:
		return EmptyTile
	}
}

// Console prints the board as boxed text, one call per turn.
type Console struct {
	out io.Writer
}

func NewConsole(out io.Writer) *Console {
	return &Console{
		out: out,
	}
}

// Render writes the board and the current score.
func (c *Console) Render(state *types.GameState) error {
	if _, err := io.WriteString(c.out, Board(state)); err != nil {
		return fmt.Errorf("failed to write board: %v", err)
	}
	return nil
}

// GameOver writes the end of game report.
func (c *Console) GameOver(state *types.GameState, result game.AdvanceResult) error {
	var b strings.Builder
	switch result.Reason {
	case game.EndReasonOutOfBounds, game.EndReasonSelfCollision:
		b.WriteString("Move invalid!\n")
	case game.EndReasonBoardFull:
		b.WriteString("Board full!\n")
	}
	b.WriteString("GAME OVER!\n")
	fmt.Fprintf(&b, "Score: %d\n", state.Score)

	if _, err := io.WriteString(c.out, b.String()); err != nil {
		return fmt.Errorf("failed to write game over: %v", err)
	}
	return nil
}

// Board formats the state with three character wide cells:
//
//	+---+---+
//	| S | o |
//	+---+---+
func Board(state *types.GameState) string {
	var b strings.Builder
	separator := "+" + strings.Repeat("---+", state.Extent.Width) + "\n"

	b.WriteString(header + "\n")
	b.WriteString(separator)
	for _, row := range state.Cells() {
		b.WriteString("|")
		for _, cell := range row {
			b.WriteString(" " + Tile(cell) + " |")
		}
		b.WriteString("\n")
		b.WriteString(separator)
	}
	fmt.Fprintf(&b, "Score: %d\n", state.Score)
	return b.String()
}
