package duration

import (
	"errors"
	"math"
	"math/rand"
	"regexp"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "0s"},
		{1, "1s"},
		{60, "1m"},
		{90, "1m30s"},
		{-90, "-1m30s"},
		{5400, "1h30m"},
		{86400, "1d"},
		{90000, "1d1h"},
		{604800, "1w"},
		{2592000, "1mo"},
		{2591999, "4w1d23h59m59s"},
		{31536000, "1y"},
		{34560000, "1y1mo5d"},
		{34822861, "1y1mo1w1d1h1m1s"},
		{math.MaxInt64, "292471208677y6mo2w1d15h30m7s"},
		{math.MinInt64, "-292471208677y6mo2w1d15h30m8s"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Format(tt.seconds); got != tt.want {
				t.Errorf("Format(%d) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestFormat_NegativeZero(t *testing.T) {
	negZero := int64(-0)
	if got := Format(negZero); got != "0s" {
		t.Errorf("Format(-0) = %q, want \"0s\"", got)
	}
}

func TestFormat_CanonicalPattern(t *testing.T) {
	canonical := regexp.MustCompile(`^-?([0-9]+(y|mo|w|d|h|m|s))+$`)
	for _, n := range sampleSeconds() {
		got := Format(n)
		if !canonical.MatchString(got) {
			t.Errorf("Format(%d) = %q, not canonical", n, got)
		}
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"int", 90, "1m30s"},
		{"int64", int64(-90), "-1m30s"},
		{"int32", int32(3600), "1h"},
		{"uint16", uint16(60), "1m"},
		{"uint64", uint64(0), "0s"},
		{"Seconds", Seconds(5400), "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatValue(tt.input)
			if err != nil {
				t.Fatalf("FormatValue(%v) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("FormatValue(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatValue_RejectsNonIntegers(t *testing.T) {
	for _, in := range []any{30.0, float32(1), "30s", nil, true} {
		_, err := FormatValue(in)
		if !errors.Is(err, ErrInvalidType) {
			t.Errorf("FormatValue(%#v) error = %v, want ErrInvalidType", in, err)
		}
	}

	_, err := FormatValue(30.0)
	if err == nil || err.Error() != "seconds must be an integer, got float64" {
		t.Errorf("FormatValue(30.0) error = %v", err)
	}

	if _, err := FormatValue(uint64(math.MaxUint64)); !errors.Is(err, ErrOverflow) {
		t.Errorf("FormatValue(MaxUint64) error = %v, want ErrOverflow", err)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, n := range sampleSeconds() {
		s := Format(n)
		got, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(Format(%d) = %q) returned error: %v", n, s, err)
		}
		if got != n {
			t.Errorf("Parse(Format(%d)) = %d (via %q)", n, got, s)
		}
	}
}

func FuzzFormatRoundTrip(f *testing.F) {
	for _, n := range []int64{0, 1, -1, 90, -90, SecondsPerMonth, math.MaxInt64, math.MinInt64} {
		f.Add(n)
	}
	f.Fuzz(func(t *testing.T, n int64) {
		s := Format(n)
		got, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if got != n {
			t.Fatalf("Parse(Format(%d)) = %d (via %q)", n, got, s)
		}
	})
}

// sampleSeconds returns edge values plus a fixed pseudo-random spread.
func sampleSeconds() []int64 {
	out := []int64{
		0, 1, -1, 59, 60, 61, 3599, 3600, 86399, 86400,
		SecondsPerWeek, SecondsPerMonth, SecondsPerYear,
		SecondsPerYear - 1, SecondsPerMonth + SecondsPerWeek,
		math.MaxInt64, math.MinInt64, math.MaxInt64 - 1, math.MinInt64 + 1,
	}
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		out = append(out, r.Int63n(10*SecondsPerYear)-5*SecondsPerYear)
	}
	for i := 0; i < 100; i++ {
		out = append(out, int64(r.Uint64()))
	}
	return out
}
