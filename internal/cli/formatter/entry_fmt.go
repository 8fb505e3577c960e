package formatter

import (
	"fmt"

	"github.com/deadsycode/lexdesk/internal/agenda"
	"github.com/deadsycode/lexdesk/internal/domain"
)

// FormatEntryCreated confirms a registered time entry.
func FormatEntryCreated(e *domain.TimeEntry) string {
	msg := StyleGreen.Render("✔ ") + fmt.Sprintf("Registered time entry %s", Bold(fmt.Sprintf("#%d", e.ID)))
	if start, end, ok := agenda.Instants(*e); ok {
		msg += Dim(fmt.Sprintf(" on %s, %s–%s (%s)",
			FormatDay(start), FormatClock(start), FormatClock(end), FormatHours(agenda.Hours(*e))))
	}
	return msg + "\n"
}

// FormatEntryDeleted confirms a deleted time entry.
func FormatEntryDeleted(id int64) string {
	return StyleGreen.Render("✔ ") + fmt.Sprintf("Deleted time entry %s\n", Bold(fmt.Sprintf("#%d", id)))
}
