package duration

import (
	"math"
	"strconv"
	"strings"
)

// Format renders seconds in canonical compound form: one token per
// non-zero unit, largest first, no separators. Zero renders as "0s".
func (p *Parser) Format(seconds int64) string {
	var b strings.Builder

	mag := uint64(seconds)
	if seconds < 0 {
		b.WriteByte('-')
		mag = uint64(-(seconds + 1)) + 1
	}

	if mag == 0 {
		b.WriteString("0s")
	}
	for _, u := range units {
		q := mag / u.Seconds
		mag %= u.Seconds
		if q == 0 {
			continue
		}
		b.WriteString(strconv.FormatUint(q, 10))
		b.WriteString(u.Symbol)
	}

	out := b.String()
	p.logger.Debug("formatted duration", "seconds", seconds, "result", out)
	return out
}

// FormatValue formats integer-typed values and rejects everything else,
// including integral floats.
func (p *Parser) FormatValue(v any) (string, error) {
	var secs int64
	switch x := v.(type) {
	case Seconds:
		secs = int64(x)
	case int:
		secs = int64(x)
	case int8:
		secs = int64(x)
	case int16:
		secs = int64(x)
	case int32:
		secs = int64(x)
	case int64:
		secs = x
	case uint:
		if uint64(x) > math.MaxInt64 {
			return "", newError(KindOverflow, v, "seconds %d exceeds the int64 range", x)
		}
		secs = int64(x)
	case uint8:
		secs = int64(x)
	case uint16:
		secs = int64(x)
	case uint32:
		secs = int64(x)
	case uint64:
		if x > math.MaxInt64 {
			return "", newError(KindOverflow, v, "seconds %d exceeds the int64 range", x)
		}
		secs = int64(x)
	default:
		return "", newError(KindType, v, "seconds must be an integer, got %T", v)
	}
	return p.Format(secs), nil
}
