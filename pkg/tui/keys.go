package tui

import (
	"github.com/cbodonnell/gridsnake/pkg/game/types"
	"github.com/cbodonnell/gridsnake/pkg/input"
	"github.com/gdamore/tcell/v2"
)

// CommandForKey maps a key press to a command. Arrow keys move, Escape and
// Ctrl-C quit, and printable keys follow the prompt bindings (w/a/s/d/q).
func CommandForKey(key tcell.Key, r rune) (input.Command, bool) {
	switch key {
	case tcell.KeyUp:
		return input.Move(types.DirectionUp), true
	case tcell.KeyDown:
		return input.Move(types.DirectionDown), true
	case tcell.KeyLeft:
		return input.Move(types.DirectionLeft), true
	case tcell.KeyRight:
		return input.Move(types.DirectionRight), true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.Quit, true
	case tcell.KeyRune:
		command, err := input.ParseCommand(string(r))
		if err != nil {
			return input.Command{}, false
		}
		return command, true
	}
	return input.Command{}, false
}
