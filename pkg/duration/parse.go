package duration

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse converts v to seconds.
//
// Integers are already seconds and are returned unchanged. Floats are
// truncated toward zero. Strings are tried as ISO 8601 first, then as
// compound unit tokens. Any other type is an ErrInvalidType error.
func (p *Parser) Parse(v any) (int64, error) {
	switch x := v.(type) {
	case nil:
		return 0, newError(KindValue, v, "duration cannot be nil")
	case string:
		return p.parseText(x, v)
	case Seconds:
		return int64(x), nil
	case int:
		return int64(x), nil
	case int8:
		return int64(x), nil
	case int16:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case int64:
		return x, nil
	case uint:
		return p.parseUnsigned(uint64(x), v)
	case uint8:
		return int64(x), nil
	case uint16:
		return int64(x), nil
	case uint32:
		return int64(x), nil
	case uint64:
		return p.parseUnsigned(x, v)
	case float32:
		return p.parseFloat(float64(x), v)
	case float64:
		return p.parseFloat(x, v)
	case json.Number:
		return p.parseNumber(x)
	default:
		return 0, newError(KindType, v, "duration must be string, integer, or float, got %T", v)
	}
}

// ParseString converts a duration string to seconds.
func (p *Parser) ParseString(s string) (int64, error) {
	return p.parseText(s, s)
}

func (p *Parser) parseUnsigned(u uint64, input any) (int64, error) {
	if u > math.MaxInt64 {
		return 0, newError(KindOverflow, input, "duration %d exceeds the int64 seconds range", u)
	}
	return int64(u), nil
}

func (p *Parser) parseFloat(f float64, input any) (int64, error) {
	if math.IsNaN(f) {
		return 0, newError(KindValue, input, "invalid numeric duration: NaN")
	}
	p.logger.Debug("parsing numeric duration", "value", f)
	secs, ok := truncSeconds(f)
	if !ok {
		return 0, newError(KindOverflow, input, "duration %v exceeds the int64 seconds range", f)
	}
	return secs, nil
}

func (p *Parser) parseNumber(n json.Number) (int64, error) {
	if i, err := n.Int64(); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, newError(KindFormat, n, "invalid numeric duration: %q", string(n))
	}
	return p.parseFloat(f, n)
}

func (p *Parser) parseText(s string, input any) (int64, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return 0, newError(KindValue, input, "duration string cannot be empty")
	}

	p.logger.Debug("parsing duration string", "input", raw)

	rest, sign, err := extractSign(raw, input)
	if err != nil {
		return 0, err
	}

	if secs, ok, err := p.matchISO(rest, sign, input); ok || err != nil {
		return secs, err
	}
	if secs, ok, err := p.matchCompound(rest, sign, input); ok || err != nil {
		return secs, err
	}

	return 0, newError(KindFormat, input,
		"invalid duration format: %q; supported formats: compound (\"30s\", \"5m\", \"1h30m\"), "+
			"ISO 8601 (\"PT30S\", \"PT5M\", \"PT1H30M\"), or numeric (30, 30.5)", s)
}

// extractSign strips one leading '+' or '-' and any whitespace after it.
func extractSign(raw string, input any) (string, int, error) {
	if raw == "" || (raw[0] != '+' && raw[0] != '-') {
		return raw, 1, nil
	}

	sign := 1
	if raw[0] == '-' {
		sign = -1
	}
	rest := strings.TrimLeftFunc(raw[1:], unicode.IsSpace)
	if rest == "" {
		return "", 0, newError(KindFormat, input, "invalid duration format: missing duration after sign in %q", raw)
	}
	return rest, sign, nil
}

func rangeError(input any, raw string) *Error {
	return newError(KindOverflow, input, "duration %q exceeds the int64 seconds range", raw)
}

// truncSeconds truncates f toward zero, reporting false when the result
// does not fit in int64.
func truncSeconds(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	t := math.Trunc(f)
	// -2^63 is exact in float64, 2^63 is the first value past MaxInt64.
	if t < math.MinInt64 || t >= -math.MinInt64 {
		return 0, false
	}
	return int64(t), true
}

// applySign converts an unsigned magnitude to a signed value, reporting
// false when it does not fit.
func applySign(mag uint64, sign int) (int64, bool) {
	const minMag = uint64(1) << 63
	if sign < 0 {
		switch {
		case mag == minMag:
			return math.MinInt64, true
		case mag > minMag:
			return 0, false
		}
		return -int64(mag), true
	}
	if mag > math.MaxInt64 {
		return 0, false
	}
	return int64(mag), true
}

// skipSpace returns the index of the first non-whitespace rune at or
// after pos.
func skipSpace(s string, pos int) int {
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		if !unicode.IsSpace(r) {
			break
		}
		pos += size
	}
	return pos
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
