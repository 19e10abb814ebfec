package game

import (
	"errors"

	"github.com/cbodonnell/gridsnake/pkg/board"
)

var (
	// ErrInvalidExtent is returned by Initialize for a board with a non-positive dimension.
	ErrInvalidExtent = board.ErrInvalidExtent
	// ErrAlreadyTerminal is returned by Advance once the game is over.
	ErrAlreadyTerminal = errors.New("game is already over")
	// ErrBoardFull is returned when no free cell is left for placement.
	ErrBoardFull = errors.New("board is full")
	// ErrInvalidDirection is returned by Advance for a value outside the four directions.
	ErrInvalidDirection = errors.New("invalid direction")
)
