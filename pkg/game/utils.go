package game

import (
	"github.com/cbodonnell/gridsnake/pkg/board"
	"github.com/cbodonnell/gridsnake/pkg/game/types"
)

func isEmpty(state *types.GameState, c board.Coordinate) bool {
	if state.HasFoodAt(c) {
		return false
	}
	return state.Snake == nil || !state.Snake.Contains(c)
}

func occupiedCount(state *types.GameState) int {
	n := 0
	if state.Snake != nil {
		n = state.Snake.Len()
	}
	if state.Food != nil && (state.Snake == nil || !state.Snake.Contains(*state.Food)) {
		n++
	}
	return n
}

func emptyCells(state *types.GameState) []board.Coordinate {
	var cells []board.Coordinate
	for _, c := range state.Extent.Coordinates() {
		if isEmpty(state, c) {
			cells = append(cells, c)
		}
	}
	return cells
}
