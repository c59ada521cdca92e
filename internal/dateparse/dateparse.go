// Package dateparse normalizes the loosely formatted date strings stored on
// class instances. The admin tool that writes them has used several formats
// over time, so parsing tries a fixed priority list, day-first formats ahead
// of month-first.
package dateparse

import "time"

// Moment is a successfully parsed date. HasTime reports whether the matched
// format carried a time component; Time is midnight when it did not.
type Moment struct {
	Time    time.Time
	HasTime bool
}

// Go's time.Parse accepts one- or two-digit values for the "15" and "02"
// verbs, so "02/01/2006 15:04" covers both "09:00" and "9:00" hours.
var layouts = []struct {
	layout  string
	hasTime bool
}{
	{"02/01/2006 15:04", true},
	{"02/01/2006", false},
	{"2006-01-02", false},
	{"01/02/2006", false},
	{"02-01-2006", false},
	// fallbacks for dates produced outside the admin tool
	{time.RFC3339, true},
	{"2006-01-02 15:04", true},
}

// Parse tries each accepted format in priority order and returns the first
// exact match. It never fails loudly: unparseable input yields ok=false.
func Parse(s string) (Moment, bool) {
	if s == "" {
		return Moment{}, false
	}

	for _, l := range layouts {
		t, err := time.Parse(l.layout, s)
		if err != nil {
			continue
		}

		return Moment{Time: t, HasTime: l.hasTime}, true
	}

	return Moment{}, false
}

// DayOfWeek returns the English weekday name for s, or "" if s does not
// match any accepted format.
func DayOfWeek(s string) string {
	m, ok := Parse(s)
	if !ok {
		return ""
	}

	return m.Time.Weekday().String()
}

// TimeOfDay returns the "HH:mm" time component of s, or "" when the matched
// format has no time component or s is unparseable. Callers that need to
// tell those two cases apart should use Parse directly.
func TimeOfDay(s string) string {
	m, ok := Parse(s)
	if !ok || !m.HasTime {
		return ""
	}

	return m.Time.Format("15:04")
}
