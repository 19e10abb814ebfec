package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cbodonnell/gridsnake/pkg/board"
	"github.com/cbodonnell/gridsnake/pkg/game"
	"github.com/cbodonnell/gridsnake/pkg/game/constants"
	"github.com/cbodonnell/gridsnake/pkg/input"
	"github.com/cbodonnell/gridsnake/pkg/log"
	"github.com/cbodonnell/gridsnake/pkg/queue"
	"github.com/cbodonnell/gridsnake/pkg/render"
	"github.com/cbodonnell/gridsnake/pkg/session"
	"github.com/cbodonnell/gridsnake/pkg/tui"
	"github.com/cbodonnell/gridsnake/pkg/version"
	"github.com/gdamore/tcell/v2"
)

const (
	uiPrompt = "prompt"
	uiTUI    = "tui"
)

func main() {
	height := flag.Int("height", constants.DefaultHeight, "Board height in rows")
	width := flag.Int("width", constants.DefaultWidth, "Board width in columns")
	logLevel := flag.String("log-level", "error", "Log level")
	logFile := flag.String("log-file", "", "Write logs to this file instead of stderr")
	ui := flag.String("ui", uiPrompt, "User interface (prompt|tui)")
	seed := flag.Uint64("seed", 0, "Random seed (0 seeds from the clock)")
	showVersion := flag.Bool("version", false, "Print the version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Get())
		return
	}

	if *ui != uiPrompt && *ui != uiTUI {
		fmt.Fprintf(os.Stderr, "Failed to parse ui: unknown ui %q\n", *ui)
		os.Exit(2)
	}

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse log level: %v\n", err)
		os.Exit(2)
	}

	var logOut io.Writer = os.Stderr
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	} else if *ui == uiTUI {
		// stderr shares the terminal with the screen
		logOut = io.Discard
	}
	log.SetDefaultLogger(log.New(logOut, "", log.DefaultLoggerFlag, parsedLogLevel))
	log.Info("Starting snake version %s", version.Get())

	extent, err := board.NewExtent(*height, *width)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create board: %v\n", err)
		os.Exit(2)
	}

	ctx := context.Background()
	engine := game.NewEngine(game.NewEngineOptions{Seed: *seed})

	var runErr error
	switch *ui {
	case uiTUI:
		runErr = runTUI(ctx, engine, extent)
	default:
		runErr = runPrompt(ctx, engine, extent)
	}

	if runErr != nil && !errors.Is(runErr, game.ErrBoardFull) {
		log.Error("Game failed: %v", runErr)
		fmt.Fprintf(os.Stderr, "Failed to play game: %v\n", runErr)
		os.Exit(1)
	}
}

func runPrompt(ctx context.Context, engine *game.Engine, extent board.Extent) error {
	s := session.NewSession(session.NewSessionOptions{
		Engine:   engine,
		Extent:   extent,
		Commands: input.NewPrompter(os.Stdin, os.Stdout),
		Renderer: render.NewConsole(os.Stdout),
	})
	_, err := s.Run(ctx)
	return err
}

func runTUI(ctx context.Context, engine *game.Engine, extent board.Extent) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}

	terminal := tui.NewTerminal(tui.NewTerminalOptions{
		Screen:   screen,
		Commands: queue.NewInMemoryQueue[input.Command](queue.QueueBufferSize),
	})
	if err := terminal.Start(); err != nil {
		return err
	}
	defer terminal.Stop()

	s := session.NewSession(session.NewSessionOptions{
		Engine:   engine,
		Extent:   extent,
		Commands: terminal,
		Renderer: terminal,
	})
	state, err := s.Run(ctx)
	if err != nil && !errors.Is(err, game.ErrBoardFull) {
		return err
	}
	if state != nil && state.IsTerminal() {
		if waitErr := terminal.WaitForQuit(ctx); waitErr != nil {
			return waitErr
		}
	}
	return err
}
