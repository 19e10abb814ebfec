package game

import (
	"fmt"
	"time"

	"github.com/cbodonnell/gridsnake/pkg/board"
	"github.com/cbodonnell/gridsnake/pkg/game/constants"
	"github.com/cbodonnell/gridsnake/pkg/game/types"
	"github.com/cbodonnell/gridsnake/pkg/log"
	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// Rand is the source of uniform integers used for placement.
type Rand interface {
	// Intn returns an integer in [0, n).
	Intn(n int) int
}

// Engine creates games and applies turns to them. It holds no game state itself;
// every operation works on the *types.GameState it is given.
type Engine struct {
	rng   Rand
	newID func() string
}

// NewEngineOptions contains options for creating a new Engine.
type NewEngineOptions struct {
	// Rand overrides the placement source.
	Rand Rand
	// Seed seeds the default source when Rand is nil. Zero seeds from the clock.
	Seed uint64
}

func NewEngine(opts NewEngineOptions) *Engine {
	rng := opts.Rand
	if rng == nil {
		seed := opts.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		rng = rand.New(rand.NewSource(seed))
	}

	return &Engine{
		rng: rng,
		newID: func() string {
			return uuid.New().String()
		},
	}
}

// DirectionDelta returns the unit row and column offset of a direction.
func DirectionDelta(direction types.Direction) (dRow, dCol int) {
	return direction.Delta()
}

// Initialize creates a new active game on a board of the given extent with a
// single-cell snake and one piece of food on a different cell.
func (e *Engine) Initialize(extent board.Extent) (*types.GameState, error) {
	if err := extent.Validate(); err != nil {
		return nil, fmt.Errorf("failed to initialize game: %w", err)
	}

	start := e.randomCoordinate(extent)
	state := types.NewGameState(e.newID(), extent, types.NewSnake(start), nil)
	if err := e.PlaceFood(state); err != nil {
		return nil, fmt.Errorf("failed to place initial food on %s board: %w", extent, err)
	}

	log.Info("Game %s started on %s board: snake at %s, food at %s", state.ID, extent, start, *state.Food)
	return state, nil
}

// PlaceFood puts food on a random free cell.
func (e *Engine) PlaceFood(state *types.GameState) error {
	location, err := e.RandomEmptyLocation(state)
	if err != nil {
		return err
	}
	state.Food = &location
	return nil
}

// RandomEmptyLocation returns a uniformly chosen cell that holds neither the snake
// nor the food. It returns ErrBoardFull when every cell is taken.
func (e *Engine) RandomEmptyLocation(state *types.GameState) (board.Coordinate, error) {
	if occupiedCount(state) >= state.Extent.Area() {
		return board.Coordinate{}, ErrBoardFull
	}

	for i := 0; i < constants.MaxPlacementAttempts; i++ {
		c := e.randomCoordinate(state.Extent)
		if isEmpty(state, c) {
			return c, nil
		}
	}

	// a crowded board makes rejection slow, so pick among the free cells directly
	free := emptyCells(state)
	log.Trace("Game %s placement fell back to %d free cells", state.ID, len(free))
	return free[e.rng.Intn(len(free))], nil
}

// Advance moves the snake one cell in the given direction. An invalid move ends
// the game and is reported as OutcomeGameOver, not as an error; the snake and
// food are left as they were.
func (e *Engine) Advance(state *types.GameState, direction types.Direction) (AdvanceResult, error) {
	if state.IsTerminal() {
		return AdvanceResult{}, fmt.Errorf("game %s: %w", state.ID, ErrAlreadyTerminal)
	}
	if !direction.Valid() {
		return AdvanceResult{}, fmt.Errorf("%w: %s", ErrInvalidDirection, direction)
	}

	head := state.Snake.Head()
	newHead := head.Add(DirectionDelta(direction))
	if !board.InBounds(newHead, state.Extent) {
		return e.endGame(state, EndReasonOutOfBounds), nil
	}

	eats := state.HasFoodAt(newHead)
	if state.Snake.Occupies(newHead, eats) {
		return e.endGame(state, EndReasonSelfCollision), nil
	}

	state.Turn++
	log.Debug("Game %s turn %d: %s from %s to %s", state.ID, state.Turn, direction, head, newHead)

	if !eats {
		state.Snake.Shift(newHead)
		return AdvanceResult{Outcome: OutcomeContinuing, Score: state.Score}, nil
	}

	state.Snake.Grow(newHead)
	state.Score += constants.ScorePerFood
	state.Food = nil
	if err := e.PlaceFood(state); err != nil {
		result := e.endGame(state, EndReasonBoardFull)
		result.Ate = true
		return result, fmt.Errorf("failed to respawn food in game %s: %w", state.ID, err)
	}

	log.Debug("Game %s ate food, score %d, length %d, next food at %s", state.ID, state.Score, state.Snake.Len(), *state.Food)
	return AdvanceResult{Outcome: OutcomeContinuing, Score: state.Score, Ate: true}, nil
}

func (e *Engine) endGame(state *types.GameState, reason EndReason) AdvanceResult {
	state.Status = types.GameStatusTerminal
	log.Info("Game %s over after %d turns: %s, score %d", state.ID, state.Turn, reason, state.Score)
	return AdvanceResult{
		Outcome: OutcomeGameOver,
		Score:   state.Score,
		Reason:  reason,
	}
}

func (e *Engine) randomCoordinate(extent board.Extent) board.Coordinate {
	return board.Coordinate{
		Row: e.rng.Intn(extent.Height),
		Col: e.rng.Intn(extent.Width),
	}
}
