package duration

import (
	"math"
	"math/bits"
	"regexp"
	"strconv"
	"strings"
)

// compoundToken matches one <number><unit> token. Alternation order matters:
// "mo" must win over "m".
var compoundToken = regexp.MustCompile(
	`(?i)(?P<value>\d+(?:\.\d+)?)\s*` +
		`(?P<unit>y(?:ear)?s?|mo(?:nth)?s?|w(?:eek)?s?|d(?:ay)?s?|h(?:our)?s?|m(?:in(?:ute)?s?)?|s(?:ec(?:ond)?s?)?)`,
)

var (
	compoundValue = compoundToken.SubexpIndex("value")
	compoundUnit  = compoundToken.SubexpIndex("unit")
)

// matchCompound sums every token of raw. Tokens must cover the whole string
// with only whitespace between them, otherwise ok=false.
func (p *Parser) matchCompound(raw string, sign int, input any) (int64, bool, error) {
	locs := compoundToken.FindAllStringSubmatchIndex(raw, -1)
	if len(locs) == 0 {
		return 0, false, nil
	}

	// Coverage first: trailing garbage is a format failure even when a
	// token would overflow.
	pos := 0
	for _, loc := range locs {
		if skipSpace(raw, pos) != loc[0] {
			return 0, false, nil
		}
		pos = loc[1]
	}
	if skipSpace(raw, pos) != len(raw) {
		return 0, false, nil
	}

	var (
		whole    uint64  // exact sum of integer parts
		fraction float64 // sum of fractional parts, in seconds
	)
	for _, loc := range locs {
		value := raw[loc[2*compoundValue]:loc[2*compoundValue+1]]
		word := raw[loc[2*compoundUnit]:loc[2*compoundUnit+1]]
		unit, ok := lookupUnit(word)
		if !ok {
			return 0, false, nil
		}

		intPart, fracPart, _ := strings.Cut(value, ".")
		n, err := strconv.ParseUint(intPart, 10, 64)
		if err != nil {
			return 0, true, rangeError(input, raw)
		}
		hi, secs := bits.Mul64(n, unit.Seconds)
		var carry uint64
		whole, carry = bits.Add64(whole, secs, 0)
		if hi != 0 || carry != 0 {
			return 0, true, rangeError(input, raw)
		}
		if fracPart != "" {
			f, _ := strconv.ParseFloat("0."+fracPart, 64)
			fraction += f * float64(unit.Seconds)
		}

		p.logger.Debug("parsed component", "value", value, "unit", unit.Name)
	}

	fraction = math.Trunc(fraction)
	if fraction >= math.MaxUint64 {
		return 0, true, rangeError(input, raw)
	}
	whole, carry := bits.Add64(whole, uint64(fraction), 0)
	if carry != 0 {
		return 0, true, rangeError(input, raw)
	}

	secs, ok := applySign(whole, sign)
	if !ok {
		return 0, true, rangeError(input, raw)
	}
	return secs, true, nil
}
