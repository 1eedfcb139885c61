package duration

import (
	"flag"
	"math"
	"time"
)

// Seconds is a duration field type holding integer seconds. It decodes every
// form Parse accepts from JSON, YAML, CBOR, text and command-line flags, and
// encodes as a plain integer (text encodes as the canonical string).
type Seconds int64

// Minutes and Hours document the intended scale of a field; the stored value
// is still seconds.
type (
	Minutes = Seconds
	Hours   = Seconds
)

// Int64 returns s as a plain integer.
func (s Seconds) Int64() int64 {
	return int64(s)
}

// Duration converts s to a time.Duration, saturating at the
// time.Duration range.
func (s Seconds) Duration() time.Duration {
	const maxSecs = math.MaxInt64 / int64(time.Second)
	switch {
	case int64(s) > maxSecs:
		return time.Duration(math.MaxInt64)
	case int64(s) < -maxSecs:
		return time.Duration(math.MinInt64)
	}
	return time.Duration(s) * time.Second
}

// String returns the canonical form, e.g. "1h30m".
func (s Seconds) String() string {
	return Format(int64(s))
}

// Set implements flag.Value.
func (s *Seconds) Set(v string) error {
	secs, err := ParseString(v)
	if err != nil {
		return err
	}
	*s = Seconds(secs)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Seconds) MarshalText() ([]byte, error) {
	return []byte(Format(int64(s))), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Seconds) UnmarshalText(text []byte) error {
	return s.Set(string(text))
}

// FromDuration converts d to Seconds, truncating toward zero.
func FromDuration(d time.Duration) Seconds {
	return Seconds(d / time.Second)
}

// Compile-time interface satisfaction check.
var _ flag.Value = (*Seconds)(nil)
