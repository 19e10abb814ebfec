package input

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/cbodonnell/gridsnake/pkg/log"
)

const (
	// DefaultPrompt is printed before every read
	DefaultPrompt = "Which direction (w/a/s/d/quit): "
	// InvalidInputMessage is printed when a line does not parse
	InvalidInputMessage = "Invalid input!"
)

// Prompter reads commands line by line, asking again until a line parses.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
	prompt  string
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
		prompt:  DefaultPrompt,
	}
}

// NextCommand blocks until a valid command is read. It returns io.EOF when the
// input is exhausted. The context is checked between reads only.
func (p *Prompter) NextCommand(ctx context.Context) (Command, error) {
	for {
		if err := ctx.Err(); err != nil {
			return Command{}, err
		}

		fmt.Fprint(p.out, p.prompt)
		if !p.scanner.Scan() {
			if err := p.scanner.Err(); err != nil {
				return Command{}, fmt.Errorf("failed to read input: %w", err)
			}
			return Command{}, io.EOF
		}

		line := p.scanner.Text()
		command, err := ParseCommand(line)
		if err != nil {
			log.Debug("Rejected input %q", line)
			fmt.Fprintln(p.out, InvalidInputMessage)
			continue
		}
		return command, nil
	}
}
