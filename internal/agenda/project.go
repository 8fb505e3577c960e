package agenda

import (
	"time"

	"github.com/deadsycode/lexdesk/internal/domain"
)

// Subject is the entry description, or DefaultEventSubject when it is
// empty. Whitespace-only descriptions are kept as they are.
func Subject(e domain.TimeEntry) string {
	if e.Description == "" {
		return domain.DefaultEventSubject
	}
	return e.Description
}

// ProjectEvents maps time entries to calendar events in input order.
// Entries whose start or end instant cannot be resolved are left out.
// Client and matter names are copied as given; no lookups happen here.
func ProjectEvents(entries []domain.TimeEntry) []domain.CalendarEvent {
	events := make([]domain.CalendarEvent, 0, len(entries))
	for _, e := range entries {
		start, end, ok := Instants(e)
		if !ok {
			continue
		}
		events = append(events, domain.CalendarEvent{
			ID:         e.ID,
			Subject:    Subject(e),
			Start:      start,
			End:        end,
			ClientID:   e.ClientID,
			ClientName: e.ClientName,
			MatterID:   e.MatterID,
			MatterName: e.MatterName,
		})
	}
	return events
}

// EventsBetween keeps the events that overlap the half-open window
// [from, to). A zero bound leaves that side open. Order is preserved.
func EventsBetween(events []domain.CalendarEvent, from, to time.Time) []domain.CalendarEvent {
	out := make([]domain.CalendarEvent, 0, len(events))
	for _, ev := range events {
		// An event with End before Start still occupies its Start instant.
		last := ev.End
		if last.Before(ev.Start) {
			last = ev.Start
		}
		if !from.IsZero() && last.Before(from) {
			continue
		}
		if !to.IsZero() && !ev.Start.Before(to) {
			continue
		}
		out = append(out, ev)
	}
	return out
}
