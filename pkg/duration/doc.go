// Package duration parses human-readable duration expressions into integer
// seconds and formats integer seconds back into a canonical compound string.
//
// Three input forms are accepted:
//
//	"1h30m", "90 sec", "2 weeks 1d"   compound unit tokens
//	"PT1H30M", "P1DT2H", "PT-90S"      ISO 8601 durations
//	45, 1.5                            numeric seconds (floats truncate toward zero)
//
// # Canonical Form
//
// Format decomposes a value into years, months, weeks, days, hours, minutes
// and seconds (descending, no separators) and always re-parses to the same
// integer:
//
//	duration.Format(5400)  // "1h30m"
//	duration.Format(0)     // "0s"
//	duration.Format(-90)   // "-1m30s"
//
// Months are fixed 30-day spans and years fixed 365-day spans.
//
// # ISO 8601 Years and Months
//
// The ISO matcher accepts year and month components but does not add them to
// the total: "P1Y" parses to 0. Build a Parser with WithISOCalendarFields to
// fold them in using the fixed month and year lengths.
//
// Day components are always folded: "P1DT2H" parses to 93600, not 7200 or 0.
//
// # Errors
//
// Every failure is a *Error matching ErrDuration and one of ErrInvalidFormat,
// ErrInvalidType, ErrInvalidValue or ErrOverflow:
//
//	if _, err := duration.Parse("30"); errors.Is(err, duration.ErrInvalidFormat) {
//	    // number without a unit
//	}
//
// # Field Binding
//
// Seconds is an int64 field type that decodes any accepted form from JSON,
// YAML, CBOR, text and command-line flags. Adapter applies Parse followed by
// optional range constraints.
//
// JSON and CBOR null are ErrInvalidValue errors. yaml.v3 never hands a null
// node to a field's unmarshaler, so a null YAML field is left unchanged;
// use RejectYAMLNull on the node tree when null must be an error.
//
// All package-level state is immutable after init; every function is safe
// for concurrent use.
package duration
