// Package search filters class instances by weekday and time of day.
package search

import (
	"strings"

	"yogabooker/internal/dateparse"
	"yogabooker/internal/models"
)

// Filter returns the instances matching both filters, in input order. An
// empty filter matches everything on that axis.
//
// The day filter is a case-insensitive substring match against the parsed
// weekday name, so "mon" matches Monday. The time filter matches when the
// query appears in the raw date string or in the normalized "HH:mm" time,
// which covers dates authored with either padded or unpadded hours.
func Filter(all []models.ClassInstance, day, timeQuery string) []models.ClassInstance {
	matched := make([]models.ClassInstance, 0, len(all))

	day = strings.ToLower(day)

	for _, instance := range all {
		if day != "" {
			weekday := strings.ToLower(dateparse.DayOfWeek(instance.Date))
			if !strings.Contains(weekday, day) {
				continue
			}
		}

		if timeQuery != "" {
			if !strings.Contains(instance.Date, timeQuery) &&
				!strings.Contains(dateparse.TimeOfDay(instance.Date), timeQuery) {
				continue
			}
		}

		matched = append(matched, instance)
	}

	return matched
}
