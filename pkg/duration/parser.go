package duration

import (
	"io"
	"log/slog"
)

// Parser holds immutable parsing configuration. A Parser is safe for
// concurrent use; the zero value is not usable, call NewParser.
type Parser struct {
	logger      *slog.Logger
	isoCalendar bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger that receives Debug-level parse steps.
// A nil logger discards them.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithISOCalendarFields controls whether ISO 8601 year and month components
// contribute to the total using SecondsPerYear and SecondsPerMonth. They are
// accepted but ignored by default.
func WithISOCalendarFields(enabled bool) Option {
	return func(p *Parser) {
		p.isoCalendar = enabled
	}
}

// NewParser creates a Parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// defaultParser backs the package-level functions.
var defaultParser = NewParser()

// Parse converts v to seconds using the default Parser.
// See Parser.Parse.
func Parse(v any) (int64, error) {
	return defaultParser.Parse(v)
}

// ParseString converts a duration string to seconds using the default Parser.
func ParseString(s string) (int64, error) {
	return defaultParser.ParseString(s)
}

// Format renders seconds in canonical compound form, e.g. 5400 -> "1h30m".
func Format(seconds int64) string {
	return defaultParser.Format(seconds)
}

// FormatValue is Format behind a strict type gate: only integer types are
// accepted, a float64 is rejected even when integral.
func FormatValue(v any) (string, error) {
	return defaultParser.FormatValue(v)
}

// MustParse is like Parse but panics on error.
func MustParse(v any) int64 {
	secs, err := Parse(v)
	if err != nil {
		panic(err)
	}
	return secs
}

// IsValid reports whether v can be parsed.
func IsValid(v any) bool {
	_, err := Parse(v)
	return err == nil
}

// ParseOrDefault parses s, returning def when s is blank.
// A non-blank string that fails to parse returns the error.
func ParseOrDefault(s string, def int64) (int64, error) {
	if isBlank(s) {
		return def, nil
	}
	return ParseString(s)
}
