package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/duratypes/duratypes-go/pkg/duration"
)

// ParseResult is one parsed expression as written by "duratool parse -json".
type ParseResult struct {
	Input     string `json:"input"`
	Seconds   int64  `json:"seconds"`
	Canonical string `json:"canonical"`
}

// NewParser returns a duration parser logging to logger.
func NewParser(logger *slog.Logger) *duration.Parser {
	return duration.NewParser(duration.WithLogger(logger))
}

// RunParse parses each expression and writes one result per line, or a JSON
// array when jsonOut is set. The first invalid expression aborts the run.
func RunParse(exprs []string, jsonOut bool, p *duration.Parser, w io.Writer) error {
	results := make([]ParseResult, 0, len(exprs))
	for _, expr := range exprs {
		secs, err := p.ParseString(expr)
		if err != nil {
			return fmt.Errorf("parse %q: %w", expr, err)
		}
		results = append(results, ParseResult{
			Input:     expr,
			Seconds:   secs,
			Canonical: p.Format(secs),
		})
	}

	if jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("failed to encode results: %w", err)
		}
		return nil
	}

	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\t%s\n", r.Input, r.Seconds, r.Canonical)
	}
	return nil
}

// RunFormat writes the canonical form of each integer second count.
func RunFormat(args []string, p *duration.Parser, w io.Writer) error {
	for _, arg := range args {
		secs, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("format %q: %w", arg, formatArgError(arg, err))
		}
		fmt.Fprintln(w, p.Format(secs))
	}
	return nil
}

// formatArgError maps a strconv failure onto the duration error taxonomy.
func formatArgError(arg string, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return &duration.Error{
			Kind:  duration.KindOverflow,
			Input: arg,
			Msg:   fmt.Sprintf("seconds %s exceeds the int64 range", arg),
		}
	}
	return &duration.Error{
		Kind:  duration.KindType,
		Input: arg,
		Msg:   fmt.Sprintf("seconds must be an integer, got %q", arg),
	}
}
