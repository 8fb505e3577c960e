package formatter

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/deadsycode/lexdesk/internal/agenda"
	"github.com/deadsycode/lexdesk/internal/domain"
	"github.com/deadsycode/lexdesk/internal/rollup"
	"github.com/deadsycode/lexdesk/internal/service"
	"github.com/deadsycode/lexdesk/internal/testutil"
	"github.com/deadsycode/lexdesk/internal/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ansiPattern matches ANSI escape sequences so assertions are
// terminal-independent.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func sampleEvents() []domain.CalendarEvent {
	return agenda.ProjectEvents([]domain.TimeEntry{
		testutil.NewTestEntry(1, "2024-03-11", "09:00", "10:30",
			testutil.WithClient(1, "ACME"), testutil.WithMatter(10, "Merger"), testutil.WithDescription("Client call")),
		testutil.NewTestEntry(2, "2024-03-11", "14:00", "13:00"),
		testutil.NewTestEntry(3, "2024-03-12", "08:00", "08:45"),
	})
}

func TestFormatEvents(t *testing.T) {
	out := stripANSI(FormatEvents(sampleEvents()))

	assert.Contains(t, out, "SUBJECT")
	assert.Contains(t, out, "Mon 11 Mar 2024")
	assert.Contains(t, out, "09:00–10:30")
	assert.Contains(t, out, "Client call")
	assert.Contains(t, out, "Time Entry")
	assert.Contains(t, out, "-1h", "negative duration shown as is")
	assert.Contains(t, out, "3 events, 1h 15m logged")
}

func TestFormatEvents_Empty(t *testing.T) {
	assert.Contains(t, stripANSI(FormatEvents(nil)), "No events in range.")
}

func TestFormatAgenda(t *testing.T) {
	out := stripANSI(FormatAgenda(agenda.GroupByDay(sampleEvents())))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "Mon 11 Mar 2024"))
	assert.Contains(t, lines[0], "[ 30m ]")
	assert.True(t, strings.HasPrefix(lines[1], "├─ 09:00–10:30  Client call · ACME / Merger"))
	assert.True(t, strings.HasPrefix(lines[2], "└─ 14:00–13:00"))
	assert.True(t, strings.HasPrefix(lines[3], "Tue 12 Mar 2024"))
	assert.Contains(t, lines[4], "[ 45m ]")
}

func TestFormatHours(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0m"},
		{0.25, "15m"},
		{1, "1h"},
		{1.5, "1h 30m"},
		{-1, "-1h"},
		{2.0 / 3.0, "40m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatHours(tt.in), "hours=%v", tt.in)
	}
}

func TestRelativeDateFrom(t *testing.T) {
	now := time.Date(2026, 2, 7, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"earlier today", time.Date(2026, 2, 7, 8, 0, 0, 0, time.UTC), "Today"},
		{"tomorrow morning", time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC), "Tomorrow"},
		{"yesterday", now.AddDate(0, 0, -1), "Yesterday"},
		{"3 days future", now.AddDate(0, 0, 3), "In 3d"},
		{"3 weeks future", now.AddDate(0, 0, 21), "In 3w"},
		{"3 months future", now.AddDate(0, 0, 90), "In 3mo"},
		{"3 days past", now.AddDate(0, 0, -3), "3d ago"},
		{"2 weeks past", now.AddDate(0, 0, -14), "2w ago"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeDateFrom(tt.input, now))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "Discov…", Truncate("Discovery phase", 7))
	assert.Equal(t, "…", Truncate("abc", 1))
}

func TestTable_RightAlign(t *testing.T) {
	out := stripANSI(Table{
		Headers:    []string{"NAME", "N"},
		Rows:       [][]string{{"a", "7"}, {"bb", "123"}},
		RightAlign: map[int]bool{1: true},
	}.Render())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Len(t, lines, 4)
	assert.Equal(t, "a       7", lines[2])
	assert.Equal(t, "bb    123", lines[3])
}

func TestRenderBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░", stripANSI(RenderBar(5, 10, 10)))
	assert.Equal(t, "░░░░░░░░░░", stripANSI(RenderBar(0, 10, 10)))
	assert.Equal(t, "█░░░░░░░░░", stripANSI(RenderBar(0.01, 10, 10)), "non-zero values stay visible")
	assert.Equal(t, "██████████", stripANSI(RenderBar(15, 10, 10)))
	assert.Equal(t, "░░", stripANSI(RenderBar(3, 0, 1)))
}

func TestFormatDashboard(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	upcoming := testutil.NewTestEntry(1, "2024-03-12", "09:00", "10:00",
		testutil.WithClient(1, "ACME"), testutil.WithDescription("Hearing"))

	out := stripANSI(FormatDashboard(&service.DashboardSummary{
		Users:      7,
		Clients:    3,
		Matters:    5,
		Entries:    12,
		TotalHours: 20.5,
		Upcoming:   []domain.TimeEntry{upcoming},
		Distribution: []domain.ChartSlice{
			{Label: "ACME", Count: 4},
			{Label: "Globex", Count: 1},
		},
		Team: []domain.User{
			testutil.NewTestUser(1, "Ana", "Paz", "Partner"),
			testutil.NewTestUser(2, "Leo", "Gil", ""),
		},
	}, now))

	assert.Contains(t, out, "DASHBOARD")
	assert.Contains(t, out, "20h 30m")
	assert.Contains(t, out, "MATTERS PER CLIENT")
	assert.Contains(t, out, "ACME    ████████████████████ 4")
	assert.Contains(t, out, "In 2d")
	assert.Contains(t, out, "Hearing")
	assert.Contains(t, out, "USERS")
	assert.Contains(t, out, "TEAM")
	assert.Contains(t, out, "AP Ana Paz Partner")
	assert.Contains(t, out, "LG Leo Gil "+domain.DefaultRoleLabel)
}

func TestFormatClients(t *testing.T) {
	out := stripANSI(FormatClients([]domain.Client{
		testutil.NewTestClient(1, "ACME"),
		{ID: 2, BusinessName: "Globex Corporation"},
	}))

	assert.Contains(t, out, "BUSINESS NAME")
	assert.Contains(t, out, "ACME S.A.")
	assert.Contains(t, out, "Argentina")
	assert.Contains(t, out, "Globex Corporation")
	assert.Contains(t, out, "--")
}

func TestFormatMatters_Orphan(t *testing.T) {
	m := testutil.NewTestMatter(10, 1, "Merger")
	m.ClientName = "ACME"
	out := stripANSI(FormatMatters([]domain.Matter{m, testutil.NewOrphanMatter(11, "Draft")}))

	assert.Contains(t, out, "Merger")
	assert.Contains(t, out, "ACME")
	assert.Contains(t, out, "Draft")
	assert.Contains(t, out, domain.UnknownClientLabel)
}

func TestFormatUsersAndCountries(t *testing.T) {
	users := stripANSI(FormatUsers([]domain.User{testutil.NewTestUser(1, "Ana", "Paz", "Partner")}))
	assert.Contains(t, users, "Ana Paz")
	assert.Contains(t, users, "ana@firm.test")
	assert.Contains(t, users, "Partner")

	countries := stripANSI(FormatCountries([]domain.Country{{ID: 1, DescriptionEN: "Argentina", ISOCode3: "ARG"}}))
	assert.Contains(t, countries, "Argentina")
	assert.Contains(t, countries, "ARG")

	assert.Contains(t, FormatUsers(nil), "No users.")
	assert.Contains(t, FormatCountries(nil), "No countries.")
}

func TestFormatHoursReport(t *testing.T) {
	entries := []domain.TimeEntry{
		testutil.NewTestEntry(1, "2024-03-11", "09:00", "11:00", testutil.WithClient(1, "ACME")),
		testutil.NewTestEntry(2, "2024-03-11", "09:00", "10:00"),
	}
	buckets := rollup.HoursByClient(entries)
	out := stripANSI(FormatHoursReport(&service.HoursReport{By: service.ByClient, Buckets: buckets, Total: rollup.Sum(buckets)}))

	assert.Contains(t, out, "CLIENT")
	assert.Contains(t, out, "ACME")
	assert.Contains(t, out, domain.UnknownClientLabel)
	assert.Contains(t, out, "Total 3h across 2 groups")
}

func TestFormatTopClients(t *testing.T) {
	out := stripANSI(FormatTopClients([]rollup.ClientSummary{
		{ClientID: 1, ShortName: "ACME", BusinessName: "Acme Corp", Matters: 2, Entries: 3, Hours: 4.5},
	}))

	assert.Contains(t, out, "BUSINESS NAME")
	assert.Contains(t, out, "1.")
	assert.Contains(t, out, "Acme Corp")
	assert.Contains(t, out, "4h 30m")
}

func TestFormatDiagram_WrapsRows(t *testing.T) {
	var phases []domain.ProcessPhase
	for i := 1; i <= 5; i++ {
		phases = append(phases, testutil.NewTestPhase(int64(i), i, "Phase "+string(rune('A'+i-1))))
	}
	d := workflow.Layout(phases, workflow.DefaultOptions())

	out := stripANSI(FormatDiagram(d))

	assert.Equal(t, 3, strings.Count(out, "──▶"), "arrows only inside rows")
	assert.Contains(t, out, "↓")
	assert.Contains(t, out, "Phase E")
	assert.Contains(t, out, "5 phases, 4 connectors, 2 rows")
}

func TestFormatDiagram_Empty(t *testing.T) {
	assert.Contains(t, stripANSI(FormatDiagram(domain.Diagram{})), "No phases.")
}

func TestFormatEntryCreated(t *testing.T) {
	e := testutil.NewTestEntry(77, "2024-03-11", "09:00", "10:30")
	out := stripANSI(FormatEntryCreated(&e))

	assert.Contains(t, out, "Registered time entry #77")
	assert.Contains(t, out, "09:00–10:30 (1h 30m)")
}
