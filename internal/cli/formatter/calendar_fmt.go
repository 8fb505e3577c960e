package formatter

import (
	"fmt"
	"strings"

	"github.com/deadsycode/lexdesk/internal/agenda"
	"github.com/deadsycode/lexdesk/internal/domain"
)

// FormatEvents renders calendar events as a table in the order given.
func FormatEvents(events []domain.CalendarEvent) string {
	if len(events) == 0 {
		return Dim("No events in range.") + "\n"
	}

	rows := make([][]string, 0, len(events))
	var total float64
	for _, ev := range events {
		h := ev.Hours()
		total += h
		rows = append(rows, []string{
			StyleDim.Render(fmt.Sprintf("#%d", ev.ID)),
			FormatDay(ev.Start),
			FormatClock(ev.Start) + "–" + FormatClock(ev.End),
			HoursStyled(h),
			Bold(Truncate(ev.Subject, 40)),
			OrDash(ev.ClientName),
			OrDash(ev.MatterName),
		})
	}

	var b strings.Builder
	b.WriteString(Table{
		Headers:    []string{"ID", "DATE", "TIME", "HOURS", "SUBJECT", "CLIENT", "MATTER"},
		Rows:       rows,
		RightAlign: map[int]bool{3: true},
	}.Render())
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s events, %s logged\n",
		Bold(fmt.Sprint(len(events))), Bold(FormatHours(total))))
	return b.String()
}

// FormatAgenda renders days as a tree of their events.
func FormatAgenda(days []agenda.DayAgenda) string {
	if len(days) == 0 {
		return Dim("Nothing scheduled.") + "\n"
	}

	var items []TreeItem
	for _, day := range days {
		items = append(items, TreeItem{Title: FormatDay(day.Date), Detail: FormatHours(day.Hours)})
		for i, ev := range day.Events {
			items = append(items, TreeItem{
				Title:  eventLine(ev),
				Level:  1,
				IsLast: i == len(day.Events)-1,
				Muted:  ev.Hours() <= 0,
				Detail: FormatHours(ev.Hours()),
			})
		}
	}
	return RenderTree(items)
}

func eventLine(ev domain.CalendarEvent) string {
	line := FormatClock(ev.Start) + "–" + FormatClock(ev.End) + "  " + ev.Subject
	var who []string
	if ev.ClientName != "" {
		who = append(who, ev.ClientName)
	}
	if ev.MatterName != "" {
		who = append(who, ev.MatterName)
	}
	if len(who) > 0 {
		line += Dim(" · " + strings.Join(who, " / "))
	}
	return line
}
