// Command duratool parses and formats human-friendly durations.
//
// Usage:
//
//	duratool <command> [flags] [args]
//
// Commands:
//
//	parse      Parse duration expressions to integer seconds
//	format     Format integer seconds in canonical compound form
//	normalize  Rewrite a YAML file of durations as integer seconds
//	repl       Parse durations interactively
//	version    Print the version
//
// Examples:
//
//	# Parse compound and ISO 8601 expressions
//	duratool parse 1h30m PT1H30M
//
//	# Parse with JSON output
//	duratool parse -json "2 weeks 3 days"
//
//	# Canonical form of a second count
//	duratool format 5400
//
//	# Convert a config file of durations to JSON seconds
//	duratool normalize -format json timeouts.yaml
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/duratypes/duratypes-go/cmd/duratool/commands"
)

const usage = `duratool - Duration Parser and Formatter

Usage:
  duratool <command> [flags] [args]

Commands:
  parse      Parse duration expressions to integer seconds
  format     Format integer seconds in canonical compound form
  normalize  Rewrite a YAML file of durations as integer seconds
  repl       Parse durations interactively
  version    Print the version

Use "duratool <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "parse":
		runParse(args)
	case "format":
		runFormat(args)
	case "normalize":
		runNormalize(args)
	case "repl":
		runREPL(args)
	case "version":
		runVersion(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

// newLogger returns a text logger on stderr. Debug output is enabled by -v.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func runParse(args []string) {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `duratool parse - Parse duration expressions to integer seconds

Usage:
  duratool parse [flags] <expr>...

Each expression is printed as a tab-separated line of input, seconds
and canonical form.

Flags:
`)
		fs.PrintDefaults()
	}

	jsonOut := fs.Bool("json", false, "Write results as a JSON array")
	verbose := fs.Bool("v", false, "Log parse steps to stderr")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: at least one expression required")
		fs.Usage()
		os.Exit(1)
	}

	p := commands.NewParser(newLogger(*verbose))
	if err := commands.RunParse(fs.Args(), *jsonOut, p, os.Stdout); err != nil {
		fail(err)
	}
}

func runFormat(args []string) {
	fs := flag.NewFlagSet("format", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `duratool format - Format integer seconds in canonical compound form

Usage:
  duratool format [flags] <seconds>...

Flags:
`)
		fs.PrintDefaults()
	}

	verbose := fs.Bool("v", false, "Log format steps to stderr")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: at least one second count required")
		fs.Usage()
		os.Exit(1)
	}

	p := commands.NewParser(newLogger(*verbose))
	if err := commands.RunFormat(fs.Args(), p, os.Stdout); err != nil {
		fail(err)
	}
}

func runNormalize(args []string) {
	fs := flag.NewFlagSet("normalize", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `duratool normalize - Rewrite a YAML file of durations as integer seconds

Usage:
  duratool normalize [flags] <file.yaml>

The file must be a mapping of names to durations, for example:

  connect: 10s
  idle: PT5M
  retention: 2 weeks

Flags:
`)
		fs.PrintDefaults()
	}

	format := fs.String("format", commands.FormatYAML, "Output format (yaml, json, cbor)")
	output := fs.String("o", "", "Output file path (default: stdout)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: input file path required")
		fs.Usage()
		os.Exit(1)
	}

	if err := commands.RunNormalize(fs.Arg(0), *format, *output, os.Stdout); err != nil {
		fail(err)
	}
}

func runREPL(args []string) {
	fs := flag.NewFlagSet("repl", flag.ExitOnError)
	verbose := fs.Bool("v", false, "Log parse steps to stderr")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	lr, err := commands.NewLineReader()
	if err != nil {
		fail(err)
	}

	p := commands.NewParser(newLogger(*verbose))
	if err := commands.RunREPL(lr, p, os.Stdout); err != nil {
		fail(err)
	}
}

func runVersion(args []string) {
	fs := flag.NewFlagSet("version", flag.ExitOnError)
	required := fs.String("require", "", "Fail unless this build is compatible with and not older than the given version")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if err := commands.RunVersion(*required, os.Stdout); err != nil {
		fail(err)
	}
}
