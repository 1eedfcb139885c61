package duration

import (
	"regexp"
	"strconv"
)

// isoPattern is the accepted ISO 8601 subset. Time components carry their
// own optional sign; a sign before P replaces the extracted leading sign.
var isoPattern = regexp.MustCompile(
	`(?i)^(?P<sign>[+-])?P` +
		`(?:(?P<years>\d+)Y)?` +
		`(?:(?P<months>\d+)M)?` +
		`(?:(?P<days>\d+(?:\.\d+)?)D)?` +
		`(?:T` +
		`(?:(?P<hours>[+-]?\d+(?:\.\d+)?)H)?` +
		`(?:(?P<minutes>[+-]?\d+(?:\.\d+)?)M)?` +
		`(?:(?P<seconds>[+-]?\d+(?:\.\d+)?)S)?` +
		`)?$`,
)

var (
	isoSign    = isoPattern.SubexpIndex("sign")
	isoYears   = isoPattern.SubexpIndex("years")
	isoMonths  = isoPattern.SubexpIndex("months")
	isoDays    = isoPattern.SubexpIndex("days")
	isoHours   = isoPattern.SubexpIndex("hours")
	isoMinutes = isoPattern.SubexpIndex("minutes")
	isoSeconds = isoPattern.SubexpIndex("seconds")
)

// matchISO reports ok=false when raw is not an ISO 8601 duration so the
// compound matcher can try it.
func (p *Parser) matchISO(raw string, sign int, input any) (int64, bool, error) {
	m := isoPattern.FindStringSubmatch(raw)
	if m == nil {
		return 0, false, nil
	}

	p.logger.Debug("matched ISO 8601 format", "input", raw)

	switch m[isoSign] {
	case "-":
		sign = -1
	case "+":
		sign = 1
	}

	total := isoComponent(m[isoDays])*SecondsPerDay +
		isoComponent(m[isoHours])*SecondsPerHour +
		isoComponent(m[isoMinutes])*SecondsPerMinute +
		isoComponent(m[isoSeconds])
	if p.isoCalendar {
		total += isoComponent(m[isoYears])*SecondsPerYear +
			isoComponent(m[isoMonths])*SecondsPerMonth
	}

	secs, ok := truncSeconds(float64(sign) * total)
	if !ok {
		return 0, true, rangeError(input, raw)
	}
	return secs, true, nil
}

// isoComponent converts a matched component; absent components are zero.
func isoComponent(s string) float64 {
	if s == "" {
		return 0
	}
	// The pattern guarantees the syntax; out of range values come back as
	// ±Inf and are caught by truncSeconds.
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
