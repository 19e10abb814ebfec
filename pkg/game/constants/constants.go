package constants

const (
	// DefaultHeight is the board height used when none is given
	DefaultHeight int = 5
	// DefaultWidth is the board width used when none is given
	DefaultWidth int = 5

	// MaxPlacementAttempts is the number of random draws made before placement
	// falls back to choosing among the enumerated free cells
	MaxPlacementAttempts int = 64

	// ScorePerFood is the score awarded for each food eaten
	ScorePerFood int = 1
)
