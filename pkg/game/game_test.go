package game

import (
	"errors"
	"os"
	"testing"

	"github.com/cbodonnell/gridsnake/pkg/board"
	"github.com/cbodonnell/gridsnake/pkg/game/types"
	"github.com/cbodonnell/gridsnake/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.SetLevel(log.LogLevelError)
	os.Exit(m.Run())
}

// sequenceRand replays fixed values, reduced modulo n.
type sequenceRand struct {
	values []int
	i      int
}

func (r *sequenceRand) Intn(n int) int {
	v := r.values[r.i%len(r.values)] % n
	r.i++
	return v
}

func newTestEngine(values ...int) *Engine {
	return &Engine{
		rng:   &sequenceRand{values: values},
		newID: func() string { return "test-game" },
	}
}

func coordPtr(row, col int) *board.Coordinate {
	return &board.Coordinate{Row: row, Col: col}
}

func newTestState(extent board.Extent, food *board.Coordinate, body ...board.Coordinate) *types.GameState {
	return types.NewGameState("test-game", extent, &types.Snake{Body: body}, food)
}

func requireInvariants(t *testing.T, state *types.GameState) {
	t.Helper()
	seen := make(map[board.Coordinate]bool, state.Snake.Len())
	for _, c := range state.Snake.Body {
		require.True(t, board.InBounds(c, state.Extent), "snake segment %s out of bounds", c)
		require.False(t, seen[c], "snake segment %s repeated", c)
		seen[c] = true
	}
	if state.Food != nil {
		require.True(t, board.InBounds(*state.Food, state.Extent), "food %s out of bounds", *state.Food)
		require.False(t, seen[*state.Food], "food %s on snake", *state.Food)
	}
}

func TestEngine_Initialize(t *testing.T) {
	tests := []struct {
		name      string
		extent    board.Extent
		rand      []int
		wantSnake board.Coordinate
		wantFood  board.Coordinate
		wantErr   error
	}{
		{
			name:      "food resampled off the snake",
			extent:    board.Extent{Height: 5, Width: 3},
			rand:      []int{2, 1, 2, 1, 2, 2},
			wantSnake: board.Coordinate{Row: 2, Col: 1},
			wantFood:  board.Coordinate{Row: 2, Col: 2},
		},
		{
			name:      "two cell board",
			extent:    board.Extent{Height: 1, Width: 2},
			rand:      []int{0, 1, 0, 1, 0, 0},
			wantSnake: board.Coordinate{Row: 0, Col: 1},
			wantFood:  board.Coordinate{Row: 0, Col: 0},
		},
		{
			name:    "zero height",
			extent:  board.Extent{Height: 0, Width: 3},
			rand:    []int{0},
			wantErr: ErrInvalidExtent,
		},
		{
			name:    "negative width",
			extent:  board.Extent{Height: 3, Width: -1},
			rand:    []int{0},
			wantErr: ErrInvalidExtent,
		},
		{
			name:    "no room for food",
			extent:  board.Extent{Height: 1, Width: 1},
			rand:    []int{0},
			wantErr: ErrBoardFull,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(tt.rand...)
			state, err := e.Initialize(tt.extent)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got error %v", err)
				assert.Nil(t, state)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "test-game", state.ID)
			assert.Equal(t, []board.Coordinate{tt.wantSnake}, state.Snake.Body)
			require.NotNil(t, state.Food)
			assert.Equal(t, tt.wantFood, *state.Food)
			assert.Equal(t, 0, state.Score)
			assert.Equal(t, types.GameStatusActive, state.Status)
		})
	}
}

func TestEngine_Initialize_randomExtents(t *testing.T) {
	e := NewEngine(NewEngineOptions{Seed: 7})
	for height := 1; height <= 6; height++ {
		for width := 1; width <= 6; width++ {
			if height*width < 2 {
				continue
			}
			for i := 0; i < 20; i++ {
				state, err := e.Initialize(board.Extent{Height: height, Width: width})
				require.NoError(t, err)
				require.NotNil(t, state.Food)
				assert.NotEqual(t, state.Snake.Head(), *state.Food)
				requireInvariants(t, state)
			}
		}
	}
}

func TestEngine_Advance(t *testing.T) {
	extent := board.Extent{Height: 5, Width: 3}
	type fields struct {
		state *types.GameState
		rand  []int
	}
	tests := []struct {
		name      string
		fields    fields
		direction types.Direction
		want      AdvanceResult
		wantBody  []board.Coordinate
		wantFood  *board.Coordinate
		wantScore int
	}{
		{
			name: "eat food to the right",
			fields: fields{
				state: newTestState(extent, coordPtr(2, 2), board.Coordinate{Row: 2, Col: 1}),
				// respawn draws (2,1) and (2,2) before landing on (0,0)
				rand: []int{2, 1, 2, 2, 0, 0},
			},
			direction: types.DirectionRight,
			want:      AdvanceResult{Outcome: OutcomeContinuing, Score: 1, Ate: true},
			wantBody:  []board.Coordinate{{Row: 2, Col: 2}, {Row: 2, Col: 1}},
			wantFood:  coordPtr(0, 0),
			wantScore: 1,
		},
		{
			name: "off the top edge",
			fields: fields{
				state: newTestState(extent, coordPtr(4, 2), board.Coordinate{Row: 0, Col: 1}),
				rand:  []int{0},
			},
			direction: types.DirectionUp,
			want:      AdvanceResult{Outcome: OutcomeGameOver, Reason: EndReasonOutOfBounds},
			wantBody:  []board.Coordinate{{Row: 0, Col: 1}},
			wantFood:  coordPtr(4, 2),
		},
		{
			name: "off the right edge",
			fields: fields{
				state: newTestState(extent, coordPtr(0, 0), board.Coordinate{Row: 3, Col: 2}),
				rand:  []int{0},
			},
			direction: types.DirectionRight,
			want:      AdvanceResult{Outcome: OutcomeGameOver, Reason: EndReasonOutOfBounds},
			wantBody:  []board.Coordinate{{Row: 3, Col: 2}},
			wantFood:  coordPtr(0, 0),
		},
		{
			name: "plain move shifts the body",
			fields: fields{
				state: newTestState(extent, coordPtr(0, 0),
					board.Coordinate{Row: 2, Col: 1}, board.Coordinate{Row: 3, Col: 1}, board.Coordinate{Row: 4, Col: 1}),
				rand: []int{0},
			},
			direction: types.DirectionLeft,
			want:      AdvanceResult{Outcome: OutcomeContinuing},
			wantBody:  []board.Coordinate{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 3, Col: 1}},
			wantFood:  coordPtr(0, 0),
		},
		{
			name: "into own body",
			fields: fields{
				state: newTestState(board.Extent{Height: 3, Width: 3}, coordPtr(2, 2),
					board.Coordinate{Row: 0, Col: 0}, board.Coordinate{Row: 1, Col: 0}, board.Coordinate{Row: 1, Col: 1},
					board.Coordinate{Row: 0, Col: 1}, board.Coordinate{Row: 0, Col: 2}),
				rand: []int{0},
			},
			direction: types.DirectionDown,
			want:      AdvanceResult{Outcome: OutcomeGameOver, Reason: EndReasonSelfCollision},
			wantBody: []board.Coordinate{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1},
				{Row: 0, Col: 1}, {Row: 0, Col: 2}},
			wantFood: coordPtr(2, 2),
		},
		{
			name: "chase the vacating tail",
			fields: fields{
				state: newTestState(board.Extent{Height: 3, Width: 3}, coordPtr(2, 2),
					board.Coordinate{Row: 0, Col: 0}, board.Coordinate{Row: 1, Col: 0}, board.Coordinate{Row: 1, Col: 1},
					board.Coordinate{Row: 0, Col: 1}),
				rand: []int{0},
			},
			direction: types.DirectionRight,
			want:      AdvanceResult{Outcome: OutcomeContinuing},
			wantBody:  []board.Coordinate{{Row: 0, Col: 1}, {Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1}},
			wantFood:  coordPtr(2, 2),
		},
		{
			name: "two segment snake reverses onto its tail",
			fields: fields{
				state: newTestState(board.Extent{Height: 3, Width: 3}, coordPtr(2, 2),
					board.Coordinate{Row: 1, Col: 1}, board.Coordinate{Row: 1, Col: 2}),
				rand: []int{0},
			},
			direction: types.DirectionRight,
			want:      AdvanceResult{Outcome: OutcomeContinuing},
			wantBody:  []board.Coordinate{{Row: 1, Col: 2}, {Row: 1, Col: 1}},
			wantFood:  coordPtr(2, 2),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(tt.fields.rand...)
			got, err := e.Advance(tt.fields.state, tt.direction)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantBody, tt.fields.state.Snake.Body)
			assert.Equal(t, tt.wantFood, tt.fields.state.Food)
			assert.Equal(t, tt.wantScore, tt.fields.state.Score)
			assert.Equal(t, got.GameOver(), tt.fields.state.IsTerminal())
			if !got.GameOver() {
				requireInvariants(t, tt.fields.state)
			}
		})
	}
}

func TestEngine_Advance_singleCellBoard(t *testing.T) {
	for _, direction := range types.Directions {
		t.Run(direction.String(), func(t *testing.T) {
			state := newTestState(board.Extent{Height: 1, Width: 1}, nil, board.Coordinate{Row: 0, Col: 0})
			got, err := newTestEngine(0).Advance(state, direction)
			require.NoError(t, err)
			assert.True(t, got.GameOver())
			assert.Equal(t, EndReasonOutOfBounds, got.Reason)
			assert.True(t, state.IsTerminal())
		})
	}
}

func TestEngine_Advance_afterGameOver(t *testing.T) {
	e := newTestEngine(0)
	state := newTestState(board.Extent{Height: 5, Width: 3}, coordPtr(4, 0), board.Coordinate{Row: 0, Col: 1})

	got, err := e.Advance(state, types.DirectionUp)
	require.NoError(t, err)
	require.True(t, got.GameOver())

	before := state.Copy()
	for _, direction := range types.Directions {
		_, err := e.Advance(state, direction)
		assert.True(t, errors.Is(err, ErrAlreadyTerminal), "got error %v", err)
	}
	assert.Equal(t, before, state)
}

func TestEngine_Advance_boardFull(t *testing.T) {
	e := newTestEngine(0)
	state := newTestState(board.Extent{Height: 1, Width: 3}, coordPtr(0, 2),
		board.Coordinate{Row: 0, Col: 1}, board.Coordinate{Row: 0, Col: 0})

	got, err := e.Advance(state, types.DirectionRight)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBoardFull))
	assert.Equal(t, AdvanceResult{Outcome: OutcomeGameOver, Score: 1, Ate: true, Reason: EndReasonBoardFull}, got)
	assert.Equal(t, 3, state.Snake.Len())
	assert.Nil(t, state.Food)
	assert.True(t, state.IsTerminal())
}

func TestEngine_Advance_invalidDirection(t *testing.T) {
	state := newTestState(board.Extent{Height: 3, Width: 3}, coordPtr(0, 0), board.Coordinate{Row: 1, Col: 1})
	_, err := newTestEngine(0).Advance(state, types.Direction(9))
	assert.True(t, errors.Is(err, ErrInvalidDirection))
	assert.False(t, state.IsTerminal())
}

func TestEngine_Advance_randomWalk(t *testing.T) {
	e := NewEngine(NewEngineOptions{Seed: 42})
	walk := NewEngine(NewEngineOptions{Seed: 4242})

	for game := 0; game < 200; game++ {
		state, err := e.Initialize(board.Extent{Height: 4, Width: 5})
		require.NoError(t, err)

		for !state.IsTerminal() {
			before := state.Copy()
			direction := types.Directions[walk.rng.Intn(len(types.Directions))]

			got, err := e.Advance(state, direction)
			if errors.Is(err, ErrBoardFull) {
				break
			}
			require.NoError(t, err)

			if got.GameOver() {
				assert.Equal(t, before.Snake, state.Snake)
				assert.Equal(t, before.Food, state.Food)
				assert.Equal(t, before.Score, got.Score)
				break
			}

			requireInvariants(t, state)
			dRow, dCol := DirectionDelta(direction)
			require.Equal(t, before.Snake.Head().Add(dRow, dCol), state.Snake.Head())
			if got.Ate {
				require.Equal(t, before.Snake.Len()+1, state.Snake.Len())
				require.Equal(t, before.Score+1, state.Score)
			} else {
				require.Equal(t, before.Snake.Len(), state.Snake.Len())
				require.Equal(t, before.Score, state.Score)
			}
		}
	}
}

func TestEngine_RandomEmptyLocation(t *testing.T) {
	t.Run("falls back to free cells", func(t *testing.T) {
		state := newTestState(board.Extent{Height: 2, Width: 2}, nil, board.Coordinate{Row: 0, Col: 0})
		got, err := newTestEngine(0).RandomEmptyLocation(state)
		require.NoError(t, err)
		assert.Equal(t, board.Coordinate{Row: 0, Col: 1}, got)
	})

	t.Run("excludes current food", func(t *testing.T) {
		state := newTestState(board.Extent{Height: 1, Width: 3}, coordPtr(0, 1), board.Coordinate{Row: 0, Col: 0})
		got, err := newTestEngine(0, 1, 0, 2).RandomEmptyLocation(state)
		require.NoError(t, err)
		assert.Equal(t, board.Coordinate{Row: 0, Col: 2}, got)
	})

	t.Run("board full", func(t *testing.T) {
		state := newTestState(board.Extent{Height: 1, Width: 2}, coordPtr(0, 1), board.Coordinate{Row: 0, Col: 0})
		_, err := newTestEngine(0).RandomEmptyLocation(state)
		assert.True(t, errors.Is(err, ErrBoardFull))
	})
}

func TestNewEngine_seeded(t *testing.T) {
	a := NewEngine(NewEngineOptions{Seed: 99})
	b := NewEngine(NewEngineOptions{Seed: 99})

	stateA, err := a.Initialize(board.Extent{Height: 8, Width: 8})
	require.NoError(t, err)
	stateB, err := b.Initialize(board.Extent{Height: 8, Width: 8})
	require.NoError(t, err)

	assert.Equal(t, stateA.Snake.Body, stateB.Snake.Body)
	assert.Equal(t, *stateA.Food, *stateB.Food)
	assert.NotEqual(t, stateA.ID, stateB.ID)
}
