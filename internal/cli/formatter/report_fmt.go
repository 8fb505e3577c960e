package formatter

import (
	"fmt"
	"strings"

	"github.com/deadsycode/lexdesk/internal/rollup"
	"github.com/deadsycode/lexdesk/internal/service"
)

// FormatHoursReport renders an hours rollup with a share-of-total bar.
func FormatHoursReport(r *service.HoursReport) string {
	if len(r.Buckets) == 0 {
		return Dim("No time entries.") + "\n"
	}

	largest := 0.0
	for _, bk := range r.Buckets {
		largest = max(largest, bk.Hours)
	}

	rows := make([][]string, 0, len(r.Buckets))
	for _, bk := range r.Buckets {
		label := bk.Label
		if bk.Key == rollup.UnassignedKey {
			label = Dim(label)
		}
		rows = append(rows, []string{
			label,
			fmt.Sprint(bk.Entries),
			HoursStyled(bk.Hours),
			RenderBar(bk.Hours, largest, 16),
		})
	}

	var b strings.Builder
	b.WriteString(Table{
		Headers:    []string{strings.ToUpper(string(r.By)), "ENTRIES", "HOURS", ""},
		Rows:       rows,
		RightAlign: map[int]bool{1: true, 2: true},
	}.Render())
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Total %s across %d groups\n", Bold(FormatHours(r.Total)), len(r.Buckets)))
	return b.String()
}

// FormatTopClients renders the ranked client table.
func FormatTopClients(rows []rollup.ClientSummary) string {
	if len(rows) == 0 {
		return Dim("No active clients.") + "\n"
	}
	cells := make([][]string, 0, len(rows))
	for i, r := range rows {
		cells = append(cells, []string{
			StyleDim.Render(fmt.Sprintf("%d.", i+1)),
			Bold(r.ShortName),
			OrDash(r.BusinessName),
			fmt.Sprint(r.Matters),
			fmt.Sprint(r.Entries),
			HoursStyled(r.Hours),
		})
	}
	return Table{
		Headers:    []string{"#", "CLIENT", "BUSINESS NAME", "MATTERS", "ENTRIES", "HOURS"},
		Rows:       cells,
		RightAlign: map[int]bool{0: true, 3: true, 4: true, 5: true},
	}.Render()
}
