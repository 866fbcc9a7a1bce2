// Package queries contains read-only operations for serving API responses.
// Implements the Query side of the CQRS architecture: handlers read from the
// database directly with raw SQL and return plain response structs, bypassing
// the domain aggregates.
package queries

import "time"

// dayKeys are the report bucket labels, Monday first. The same labels appear
// verbatim as JSON keys in weekly report responses.
var dayKeys = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// weekRange returns the half-open interval [monday, nextMonday) of the week
// containing the given moment, in that moment's location.
func weekRange(weekOf time.Time) (time.Time, time.Time) {
	daysSinceMonday := (int(weekOf.Weekday()) + 6) % 7
	monday := time.Date(weekOf.Year(), weekOf.Month(), weekOf.Day(), 0, 0, 0, 0, weekOf.Location()).
		AddDate(0, 0, -daysSinceMonday)
	return monday, monday.AddDate(0, 0, 7)
}

// dayKey returns the report bucket label for the given moment.
func dayKey(t time.Time) string {
	return dayKeys[(int(t.Weekday())+6)%7]
}

// emptyWeek returns a zero-filled bucket map, one entry per day label.
func emptyWeek() map[string]int64 {
	week := make(map[string]int64, len(dayKeys))
	for _, key := range dayKeys {
		week[key] = 0
	}
	return week
}
