package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/deadsycode/lexdesk/internal/agenda"
	"github.com/deadsycode/lexdesk/internal/domain"
	"github.com/deadsycode/lexdesk/internal/service"
)

const distributionBarWidth = 20

// FormatDashboard renders the summary counters, the matters-per-client
// distribution, the upcoming entries relative to now and the team list.
func FormatDashboard(s *service.DashboardSummary, now time.Time) string {
	var b strings.Builder

	kpis := []string{
		kpi("Users", fmt.Sprint(s.Users)),
		kpi("Clients", fmt.Sprint(s.Clients)),
		kpi("Matters", fmt.Sprint(s.Matters)),
		kpi("Entries", fmt.Sprint(s.Entries)),
		kpi("Hours", FormatHours(s.TotalHours)),
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, kpis...))
	b.WriteString("\n\n")

	b.WriteString(Header("Matters per client") + "\n")
	b.WriteString(FormatDistribution(s.Distribution))
	b.WriteString("\n")

	b.WriteString(Header("Upcoming") + "\n")
	if len(s.Upcoming) == 0 {
		b.WriteString(Dim("No upcoming entries.") + "\n")
	}
	for _, e := range s.Upcoming {
		when := Dim("--")
		if e.TimeEntryDate != nil {
			when = upcomingStyle(*e.TimeEntryDate, now).Render(RelativeDateFrom(*e.TimeEntryDate, now))
		}
		subject := agenda.Subject(e)
		b.WriteString(fmt.Sprintf("  %s %s %s\n", PadRight(when, 10), Bold(Truncate(subject, 40)), Dim(e.ClientName)))
	}
	b.WriteString("\n")

	b.WriteString(Header("Team") + "\n")
	if len(s.Team) == 0 {
		b.WriteString(Dim("No team members.") + "\n")
	}
	for _, u := range s.Team {
		b.WriteString(fmt.Sprintf("  %s %s %s\n", StyleBlue.Render(initials(u.FullName())), Bold(u.FullName()), Dim(u.Role())))
	}

	return RenderBox("Dashboard", strings.TrimRight(b.String(), "\n"))
}

// FormatDistribution renders one bar per chart slice, scaled to the largest.
func FormatDistribution(slices []domain.ChartSlice) string {
	if len(slices) == 0 {
		return Dim("No matters assigned to clients.") + "\n"
	}
	largest := 0
	labelWidth := 0
	for _, s := range slices {
		largest = max(largest, s.Count)
		labelWidth = max(labelWidth, lipgloss.Width(s.Label))
	}

	var b strings.Builder
	for _, s := range slices {
		pad := strings.Repeat(" ", labelWidth-lipgloss.Width(s.Label))
		b.WriteString(fmt.Sprintf("  %s%s  %s %d\n",
			s.Label, pad, RenderBar(float64(s.Count), float64(largest), distributionBarWidth), s.Count))
	}
	return b.String()
}

// initials returns up to two upper-case initials.
func initials(name string) string {
	var out []rune
	for _, w := range strings.Fields(name) {
		out = append(out, []rune(strings.ToUpper(w))[0])
		if len(out) == 2 {
			break
		}
	}
	return PadRight(string(out), 2)
}

func kpi(label, value string) string {
	return lipgloss.NewStyle().MarginRight(4).Render(
		Dim(strings.ToUpper(label)) + "\n" + StyleHeader.Render(value),
	)
}

func upcomingStyle(date, now time.Time) lipgloss.Style {
	days := date.Sub(now).Hours() / 24
	switch {
	case days < 1:
		return StyleRed
	case days < 7:
		return StyleYellow
	default:
		return StyleFg
	}
}
