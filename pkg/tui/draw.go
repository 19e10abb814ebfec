package tui

import (
	"fmt"

	"github.com/cbodonnell/gridsnake/pkg/board"
	"github.com/cbodonnell/gridsnake/pkg/game/types"
	"github.com/gdamore/tcell/v2"
)

const (
	HeadRune  = '@'
	BodyRune  = 'o'
	FoodRune  = '*'
	EmptyRune = ' '

	// cellWidth compensates for terminal cells being roughly twice as tall as wide
	cellWidth = 2
)

// Canvas is the part of tcell.Screen the board is drawn on.
type Canvas interface {
	Clear()
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

type Styles struct {
	Border tcell.Style
	Head   tcell.Style
	Body   tcell.Style
	Food   tcell.Style
	Text   tcell.Style
}

func DefaultStyles() Styles {
	return Styles{
		Border: tcell.StyleDefault.Foreground(tcell.ColorGray),
		Head:   tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
		Body:   tcell.StyleDefault.Foreground(tcell.ColorGreen),
		Food:   tcell.StyleDefault.Foreground(tcell.ColorRed),
		Text:   tcell.StyleDefault,
	}
}

// Draw paints the framed board at the top left of the canvas followed by the
// given status lines, then shows the result.
func Draw(canvas Canvas, state *types.GameState, styles Styles, status ...string) {
	canvas.Clear()

	width := state.Extent.Width*cellWidth + 1
	height := state.Extent.Height
	drawFrame(canvas, width+1, height+1, styles.Border)

	for row, cells := range state.Cells() {
		for col, cell := range cells {
			r, style := EmptyRune, styles.Text
			switch cell {
			case types.CellSnake:
				r, style = BodyRune, styles.Body
				if state.Snake.Head() == (board.Coordinate{Row: row, Col: col}) {
					r, style = HeadRune, styles.Head
				}
			case types.CellFood:
				r, style = FoodRune, styles.Food
			}
			canvas.SetContent(1+col*cellWidth+1, 1+row, r, nil, style)
		}
	}

	lines := append([]string{fmt.Sprintf("Score: %d", state.Score)}, status...)
	for i, line := range lines {
		drawText(canvas, 0, height+2+i, line, styles.Text)
	}

	canvas.Show()
}

// drawFrame draws a box whose corners sit at (0,0) and (right,bottom).
func drawFrame(canvas Canvas, right, bottom int, style tcell.Style) {
	for x := 1; x < right; x++ {
		canvas.SetContent(x, 0, tcell.RuneHLine, nil, style)
		canvas.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := 1; y < bottom; y++ {
		canvas.SetContent(0, y, tcell.RuneVLine, nil, style)
		canvas.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	canvas.SetContent(0, 0, tcell.RuneULCorner, nil, style)
	canvas.SetContent(right, 0, tcell.RuneURCorner, nil, style)
	canvas.SetContent(0, bottom, tcell.RuneLLCorner, nil, style)
	canvas.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

func drawText(canvas Canvas, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		canvas.SetContent(x, y, r, nil, style)
		x++
	}
}
