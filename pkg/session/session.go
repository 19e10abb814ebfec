package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/cbodonnell/gridsnake/pkg/board"
	"github.com/cbodonnell/gridsnake/pkg/game"
	"github.com/cbodonnell/gridsnake/pkg/game/types"
	"github.com/cbodonnell/gridsnake/pkg/input"
	"github.com/cbodonnell/gridsnake/pkg/log"
)

// CommandSource supplies one command per turn.
type CommandSource interface {
	NextCommand(ctx context.Context) (input.Command, error)
}

// Renderer shows the game to the player.
type Renderer interface {
	Render(state *types.GameState) error
	GameOver(state *types.GameState, result game.AdvanceResult) error
}

// Session drives a single game: render, read a command, advance, repeat.
// Every step runs on the caller's goroutine, so turns never overlap.
type Session struct {
	engine   *game.Engine
	extent   board.Extent
	commands CommandSource
	renderer Renderer
}

// NewSessionOptions contains options for creating a new Session.
type NewSessionOptions struct {
	Engine   *game.Engine
	Extent   board.Extent
	Commands CommandSource
	Renderer Renderer
}

func NewSession(opts NewSessionOptions) *Session {
	return &Session{
		engine:   opts.Engine,
		extent:   opts.Extent,
		commands: opts.Commands,
		renderer: opts.Renderer,
	}
}

// Run plays one game until it ends or the player quits and returns the final
// state. Running out of input counts as quitting. A full board is reported to
// the renderer and returned as a wrapped game.ErrBoardFull.
func (s *Session) Run(ctx context.Context) (*types.GameState, error) {
	state, err := s.engine.Initialize(s.extent)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize game: %w", err)
	}

	for {
		if err := s.renderer.Render(state); err != nil {
			return state, fmt.Errorf("failed to render game: %w", err)
		}

		command, err := s.commands.NextCommand(ctx)
		if errors.Is(err, io.EOF) {
			log.Debug("Game %s input closed", state.ID)
			command = input.Quit
		} else if err != nil {
			return state, fmt.Errorf("failed to read command: %w", err)
		}

		if command.IsQuit() {
			log.Info("Game %s quit by player with score %d", state.ID, state.Score)
			result := game.AdvanceResult{Outcome: game.OutcomeGameOver, Score: state.Score}
			if err := s.renderer.GameOver(state, result); err != nil {
				return state, fmt.Errorf("failed to render game over: %w", err)
			}
			return state, nil
		}

		result, advanceErr := s.engine.Advance(state, command.Direction)
		if advanceErr != nil && !errors.Is(advanceErr, game.ErrBoardFull) {
			return state, fmt.Errorf("failed to advance game: %w", advanceErr)
		}

		if result.GameOver() {
			if err := s.renderer.GameOver(state, result); err != nil {
				return state, fmt.Errorf("failed to render game over: %w", err)
			}
			return state, advanceErr
		}
	}
}
