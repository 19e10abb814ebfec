package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cbodonnell/gridsnake/pkg/game/types"
)

// ErrInvalidInput is returned for text that is neither a direction nor quit.
var ErrInvalidInput = errors.New("invalid input")

// Action separates moves from requests to stop playing.
type Action uint8

const (
	ActionMove Action = iota
	ActionQuit
)

// Command is one player decision for a turn.
type Command struct {
	Action    Action
	Direction types.Direction
}

// Move returns a command that moves the snake in the given direction.
func Move(direction types.Direction) Command {
	return Command{Action: ActionMove, Direction: direction}
}

// Quit is the command that ends the session without moving.
var Quit = Command{Action: ActionQuit}

func (c Command) IsQuit() bool {
	return c.Action == ActionQuit
}

func (c Command) String() string {
	if c.IsQuit() {
		return "quit"
	}
	return c.Direction.String()
}

var commands = map[string]Command{
	"w":     Move(types.DirectionUp),
	"s":     Move(types.DirectionDown),
	"a":     Move(types.DirectionLeft),
	"d":     Move(types.DirectionRight),
	"up":    Move(types.DirectionUp),
	"down":  Move(types.DirectionDown),
	"left":  Move(types.DirectionLeft),
	"right": Move(types.DirectionRight),
	"quit":  Quit,
	"q":     Quit,
}

// ParseCommand maps raw text to a command. Matching ignores case and surrounding space.
func ParseCommand(s string) (Command, error) {
	c, ok := commands[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrInvalidInput, s)
	}
	return c, nil
}
