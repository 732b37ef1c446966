// Package repl is the interactive conversion mode: every line typed is
// converted immediately, and short colon commands switch the direction.
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"codeberg.org/snonux/kirlot/internal/convert"
	"codeberg.org/snonux/kirlot/internal/translit"
)

// LineReader reads one line of input at a time.
type LineReader interface {
	Readline() (string, error)
	Close() error
}

// NewReadline creates a terminal line reader with editing and history.
func NewReadline(prompt string) (LineReader, error) {
	rl, err := readline.New(prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to start line editor: %w", err)
	}
	return rl, nil
}

// REPL is an interactive conversion session.
type REPL struct {
	service  *convert.Service
	reader   LineReader
	out      io.Writer
	dir      translit.Direction
	maxWords int
}

// New creates a session converting towards dir.
func New(service *convert.Service, reader LineReader, out io.Writer, dir translit.Direction, maxWords int) *REPL {
	if service == nil {
		service = convert.NewService(nil)
	}
	if dir == "" {
		dir = translit.Auto
	}
	return &REPL{service: service, reader: reader, out: out, dir: dir, maxWords: maxWords}
}

// Direction returns the current target direction.
func (r *REPL) Direction() translit.Direction {
	return r.dir
}

// Run reads and converts lines until EOF, an interrupt, ":q" or ctx is done.
func (r *REPL) Run(ctx context.Context) error {
	defer r.reader.Close()

	fmt.Fprint(r.out, pterm.Info.Sprintln("kirlot interactive mode, direction:", r.dir))
	fmt.Fprint(r.out, pterm.Info.Sprintln("Commands: :lat :cyr :auto :q (or <ctrl>D)"))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := r.reader.Readline()
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read line: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ":") {
			quit, err := r.command(line)
			if err != nil {
				fmt.Fprint(r.out, pterm.Error.Sprintln(err))
				continue
			}
			if quit {
				break
			}
			continue
		}

		res, err := r.service.Convert(ctx, convert.Request{Text: line, Direction: r.dir, MaxWords: r.maxWords})
		if err != nil {
			fmt.Fprint(r.out, pterm.Error.Sprintln(err))
			continue
		}
		fmt.Fprintln(r.out, res.Text)
	}

	fmt.Fprint(r.out, pterm.Info.Sprintln("Good bye!"))
	return nil
}

// command executes a colon command and reports whether to quit.
func (r *REPL) command(line string) (bool, error) {
	switch name := strings.TrimPrefix(line, ":"); name {
	case "q", "quit", "exit":
		return true, nil
	default:
		dir, err := translit.ParseDirection(name)
		if err != nil || name == "" {
			return false, fmt.Errorf("unknown command %q", line)
		}
		r.dir = dir
		fmt.Fprint(r.out, pterm.Info.Sprintln("direction:", dir))
		return false, nil
	}
}
