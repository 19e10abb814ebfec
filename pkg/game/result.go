package game

// Outcome tells the driver whether to keep playing.
type Outcome uint8

const (
	OutcomeContinuing Outcome = iota
	OutcomeGameOver
)

func (o Outcome) String() string {
	switch o {
	case OutcomeContinuing:
		return "continuing"
	case OutcomeGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// EndReason records why a game ended.
type EndReason uint8

const (
	EndReasonNone EndReason = iota
	EndReasonOutOfBounds
	EndReasonSelfCollision
	EndReasonBoardFull
)

func (r EndReason) String() string {
	switch r {
	case EndReasonNone:
		return "none"
	case EndReasonOutOfBounds:
		return "out of bounds"
	case EndReasonSelfCollision:
		return "self collision"
	case EndReasonBoardFull:
		return "board full"
	default:
		return "unknown"
	}
}

// AdvanceResult is returned by Engine.Advance for every turn.
type AdvanceResult struct {
	Outcome Outcome
	// Score is the score after the turn
	Score int
	// Ate is true when the turn consumed food
	Ate bool
	// Reason is set when Outcome is OutcomeGameOver
	Reason EndReason
}

// GameOver reports whether the turn ended the game.
func (r AdvanceResult) GameOver() bool {
	return r.Outcome == OutcomeGameOver
}
