package agenda

import (
	"sort"
	"time"

	"github.com/deadsycode/lexdesk/internal/domain"
)

// DayAgenda is the set of events starting on one calendar day.
type DayAgenda struct {
	Date   time.Time              `json:"date"`
	Events []domain.CalendarEvent `json:"events"`
	Hours  float64                `json:"hours"`
}

// GroupByDay buckets events by the calendar day of their start instant.
// Days are ascending; events inside a day keep their input order.
func GroupByDay(events []domain.CalendarEvent) []DayAgenda {
	index := make(map[string]int)
	var days []DayAgenda
	for _, ev := range events {
		key := ev.Start.Format(time.DateOnly)
		i, ok := index[key]
		if !ok {
			i = len(days)
			index[key] = i
			days = append(days, DayAgenda{Date: StartOfDay(ev.Start)})
		}
		days[i].Events = append(days[i].Events, ev)
		days[i].Hours += ev.Hours()
	}
	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})
	return days
}
