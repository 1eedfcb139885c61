package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/duratypes/duratypes-go/pkg/duration"
)

// LineReader is the line source of the REPL. *readline.Instance satisfies it.
type LineReader interface {
	Readline() (string, error)
	Close() error
}

// NewLineReader creates a terminal line reader with the REPL prompt.
func NewLineReader() (LineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "duration> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return rl, nil
}

const replHelp = `Enter a duration to parse it, for example:
  1h30m      PT1H30M      -90s      2 weeks 3 days

Commands:
  format <seconds>  Show the canonical form of a second count
  help, ?           Show this help
  exit, quit        Leave the REPL
`

// RunREPL reads lines from lr until EOF or "exit". Each line is parsed and
// echoed as "<seconds> (<canonical>)". Parse errors are printed and the loop
// continues.
func RunREPL(lr LineReader, p *duration.Parser, w io.Writer) error {
	defer lr.Close()

	for {
		line, err := lr.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to read line: %w", err)
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		fields := strings.Fields(input)
		switch strings.ToLower(fields[0]) {
		case "exit", "quit":
			return nil
		case "help", "?":
			fmt.Fprint(w, replHelp)
		case "format":
			replFormat(fields[1:], p, w)
		default:
			secs, err := p.ParseString(input)
			if err != nil {
				fmt.Fprintf(w, "error: %v\n", err)
				continue
			}
			fmt.Fprintf(w, "%d (%s)\n", secs, p.Format(secs))
		}
	}
}

func replFormat(args []string, p *duration.Parser, w io.Writer) {
	if len(args) != 1 {
		fmt.Fprintln(w, "usage: format <seconds>")
		return
	}
	secs, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(w, "error: %v\n", formatArgError(args[0], err))
		return
	}
	fmt.Fprintln(w, p.Format(secs))
}
