package types

import (
	"github.com/cbodonnell/gridsnake/pkg/board"
)

// GameStatus is the lifecycle state of a single game.
type GameStatus uint8

const (
	GameStatusActive GameStatus = iota
	GameStatusTerminal
)

func (s GameStatus) String() string {
	switch s {
	case GameStatusActive:
		return "active"
	case GameStatusTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

type GameState struct {
	// ID identifies the game in logs
	ID string `json:"id"`
	// Extent is the fixed board size
	Extent board.Extent `json:"extent"`
	// Snake is the snake body, head first
	Snake *Snake `json:"snake"`
	// Food is the cell that grows the snake, nil when the board has no room for it
	Food *board.Coordinate `json:"food,omitempty"`
	// Score is the number of food items eaten
	Score int `json:"score"`
	// Turn is the number of accepted moves
	Turn int `json:"turn"`
	// Status is Active until a move ends the game
	Status GameStatus `json:"status"`
}

func NewGameState(id string, extent board.Extent, snake *Snake, food *board.Coordinate) *GameState {
	return &GameState{
		ID:     id,
		Extent: extent,
		Snake:  snake,
		Food:   food,
		Score:  0,
		Turn:   0,
		Status: GameStatusActive,
	}
}

// IsTerminal reports whether the game has ended.
func (g *GameState) IsTerminal() bool {
	return g.Status == GameStatusTerminal
}

// HasFoodAt reports whether food is present at c.
func (g *GameState) HasFoodAt(c board.Coordinate) bool {
	return g.Food != nil && *g.Food == c
}

// Copy returns a deep copy of the game state.
func (g *GameState) Copy() *GameState {
	newGameState := &GameState{
		ID:     g.ID,
		Extent: g.Extent,
		Score:  g.Score,
		Turn:   g.Turn,
		Status: g.Status,
	}
	if g.Snake != nil {
		newGameState.Snake = g.Snake.Copy()
	}
	if g.Food != nil {
		food := *g.Food
		newGameState.Food = &food
	}
	return newGameState
}
