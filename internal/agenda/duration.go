package agenda

import (
	"sort"
	"time"

	"github.com/deadsycode/lexdesk/internal/domain"
)

// Duration returns the hours between the combined start and end instants of
// an entry. The stored time-of-day values are never subtracted directly, so
// stray date parts in them cannot skew the result.
//
// The value is negative when the end precedes the start; that is passed
// through unchanged. ok is false when an instant is unresolvable.
func Duration(e domain.TimeEntry) (hours float64, ok bool) {
	start, end, ok := Instants(e)
	if !ok {
		return 0, false
	}
	return end.Sub(start).Hours(), true
}

// Hours is Duration with a zero fallback for unresolvable entries.
func Hours(e domain.TimeEntry) float64 {
	h, _ := Duration(e)
	return h
}

// TotalHours sums Hours over entries.
func TotalHours(entries []domain.TimeEntry) float64 {
	var total float64
	for _, e := range entries {
		total += Hours(e)
	}
	return total
}

// Upcoming returns the entries dated on or after ref's calendar day, sorted
// ascending by date. Both sides are compared at midnight. Entries without a
// date are dropped. Completion state is not considered.
func Upcoming(entries []domain.TimeEntry, ref time.Time) []domain.TimeEntry {
	today := StartOfDay(ref)
	out := make([]domain.TimeEntry, 0, len(entries))
	for _, e := range entries {
		if e.TimeEntryDate == nil {
			continue
		}
		if StartOfDay(*e.TimeEntryDate).Before(today) {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return StartOfDay(*out[i].TimeEntryDate).Before(StartOfDay(*out[j].TimeEntryDate))
	})
	return out
}
