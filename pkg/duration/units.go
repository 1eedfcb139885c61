package duration

import "strings"

// Unit conversions. Months and years are fixed-length approximations.
const (
	SecondsPerMinute = 60
	SecondsPerHour   = 3600
	SecondsPerDay    = 86400
	SecondsPerWeek   = 604800   // 7 days
	SecondsPerMonth  = 2592000  // 30 days
	SecondsPerYear   = 31536000 // 365 days
)

// Unit is one row of the unit table.
type Unit struct {
	Name    string
	Symbol  string
	Seconds uint64
}

// units is ordered largest first. Prefix lookup relies on this order:
// "mo" must be tried before "m".
var units = [...]Unit{
	{Name: "year", Symbol: "y", Seconds: SecondsPerYear},
	{Name: "month", Symbol: "mo", Seconds: SecondsPerMonth},
	{Name: "week", Symbol: "w", Seconds: SecondsPerWeek},
	{Name: "day", Symbol: "d", Seconds: SecondsPerDay},
	{Name: "hour", Symbol: "h", Seconds: SecondsPerHour},
	{Name: "minute", Symbol: "m", Seconds: SecondsPerMinute},
	{Name: "second", Symbol: "s", Seconds: 1},
}

// Units returns the unit table, largest unit first.
func Units() []Unit {
	out := make([]Unit, len(units))
	copy(out, units[:])
	return out
}

// lookupUnit resolves a matched unit word ("mins", "Hours", "mo") to its
// table row by symbol prefix.
func lookupUnit(word string) (Unit, bool) {
	w := strings.ToLower(word)
	for _, u := range units {
		if strings.HasPrefix(w, u.Symbol) {
			return u, true
		}
	}
	return Unit{}, false
}
