package tui

import (
	"context"
	"fmt"
	"sync"

	"github.com/cbodonnell/gridsnake/pkg/game"
	"github.com/cbodonnell/gridsnake/pkg/game/types"
	"github.com/cbodonnell/gridsnake/pkg/input"
	"github.com/cbodonnell/gridsnake/pkg/log"
	"github.com/cbodonnell/gridsnake/pkg/queue"
	"github.com/gdamore/tcell/v2"
)

const helpText = "arrows/wasd: move  q/esc: quit"

// Terminal is a full screen front end. Key presses are read on a background
// goroutine and handed to the turn loop through a queue; drawing only happens
// from the caller's goroutine.
type Terminal struct {
	screen   tcell.Screen
	commands queue.Queue[input.Command]
	styles   Styles

	mu      sync.Mutex
	running bool
	doneCh  chan struct{}
}

// NewTerminalOptions contains options for creating a new Terminal.
type NewTerminalOptions struct {
	Screen   tcell.Screen
	Commands queue.Queue[input.Command]
	Styles   *Styles
}

func NewTerminal(opts NewTerminalOptions) *Terminal {
	styles := DefaultStyles()
	if opts.Styles != nil {
		styles = *opts.Styles
	}
	return &Terminal{
		screen:   opts.Screen,
		commands: opts.Commands,
		styles:   styles,
	}
}

// Start initializes the screen and begins polling for key presses.
func (t *Terminal) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		return nil
	}

	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %v", err)
	}
	t.screen.HideCursor()

	t.running = true
	t.doneCh = make(chan struct{})
	go t.pollLoop(t.doneCh)
	return nil
}

// Stop restores the terminal and waits for the poll goroutine to exit.
func (t *Terminal) Stop() {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return
	}
	t.running = false
	doneCh := t.doneCh
	t.mu.Unlock()

	// Fini makes PollEvent return nil, which ends the poll loop
	t.screen.Fini()
	<-doneCh
}

func (t *Terminal) pollLoop(doneCh chan struct{}) {
	defer close(doneCh)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			command, ok := CommandForKey(ev.Key(), ev.Rune())
			if !ok {
				continue
			}
			if err := t.commands.Enqueue(command); err != nil {
				log.Warn("Dropped %s key press: %v", command, err)
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

// NextCommand blocks until a key press maps to a command.
func (t *Terminal) NextCommand(ctx context.Context) (input.Command, error) {
	return t.commands.Dequeue(ctx)
}

// Render draws the board for the coming turn.
func (t *Terminal) Render(state *types.GameState) error {
	Draw(t.screen, state, t.styles, helpText)
	return nil
}

// GameOver draws the final board with the end of game report.
func (t *Terminal) GameOver(state *types.GameState, result game.AdvanceResult) error {
	status := []string{"GAME OVER!"}
	switch result.Reason {
	case game.EndReasonOutOfBounds, game.EndReasonSelfCollision:
		status = append([]string{"Move invalid!"}, status...)
	case game.EndReasonBoardFull:
		status = append([]string{"Board full!"}, status...)
	}
	status = append(status, "press q to exit")
	// moves typed ahead of the final turn must not count as the exit key
	t.commands.ClearQueue()
	Draw(t.screen, state, t.styles, status...)
	return nil
}

// WaitForQuit blocks until the player presses a quit key or the context is done.
func (t *Terminal) WaitForQuit(ctx context.Context) error {
	for {
		command, err := t.commands.Dequeue(ctx)
		if err != nil {
			return err
		}
		if command.IsQuit() {
			return nil
		}
	}
}
