// Package agenda turns stored time entries into calendar events and derives
// hours from them. Every function is pure and safe for concurrent use.
package agenda

import (
	"time"

	"github.com/deadsycode/lexdesk/internal/domain"
)

// Combine builds an instant from the calendar date of date and the hour and
// minute of timeOfDay. Seconds and nanoseconds are zeroed. The hour and
// minute are read in timeOfDay's own location and the result is placed in
// date's location; no zone conversion happens.
//
// A nil timeOfDay or a zero date yields ok=false.
func Combine(date time.Time, timeOfDay *time.Time) (time.Time, bool) {
	if timeOfDay == nil || date.IsZero() {
		return time.Time{}, false
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, timeOfDay.Hour(), timeOfDay.Minute(), 0, 0, date.Location()), true
}

// StartOfDay returns midnight of t's calendar date in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Instants resolves the start and end instants of an entry. ok is false
// when either one cannot be resolved.
func Instants(e domain.TimeEntry) (start, end time.Time, ok bool) {
	if e.TimeEntryDate == nil {
		return time.Time{}, time.Time{}, false
	}
	start, okStart := Combine(*e.TimeEntryDate, e.StartTime)
	end, okEnd := Combine(*e.TimeEntryDate, e.EndTime)
	if !okStart || !okEnd {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}
