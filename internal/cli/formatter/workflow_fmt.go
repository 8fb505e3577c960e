package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/deadsycode/lexdesk/internal/domain"
)

const nodeLabelWidth = 16

// FormatProcessTypes renders the process type catalogue.
func FormatProcessTypes(types []domain.ProcessType) string {
	if len(types) == 0 {
		return Dim("No process types defined.") + "\n"
	}
	rows := make([][]string, 0, len(types))
	for _, t := range types {
		avg := Dim("--")
		if t.AverageDuration != nil {
			avg = fmt.Sprintf("%dd", *t.AverageDuration)
		}
		rows = append(rows, []string{
			StyleDim.Render(fmt.Sprint(t.ID)),
			Bold(t.Description),
			avg,
			ActivePill(t.Active),
		})
	}
	return Table{
		Headers:    []string{"ID", "PROCESS", "AVG", "STATE"},
		Rows:       rows,
		RightAlign: map[int]bool{0: true, 2: true},
	}.Render()
}

// FormatDiagram draws the layout grid row by row. Nodes in a row are joined
// by arrows; a row that continues below ends with a down arrow.
func FormatDiagram(d domain.Diagram) string {
	if len(d.Nodes) == 0 {
		return Dim("No phases.") + "\n"
	}

	byRow := make(map[int][]domain.LayoutNode)
	var rows []int
	for _, n := range d.Nodes {
		if _, ok := byRow[n.Row]; !ok {
			rows = append(rows, n.Row)
		}
		byRow[n.Row] = append(byRow[n.Row], n)
	}
	sort.Ints(rows)

	arrow := StyleHeader.Render(" ──▶ ")
	var b strings.Builder
	for ri, r := range rows {
		nodes := byRow[r]
		sort.SliceStable(nodes, func(i, j int) bool { return nodes[i].Column < nodes[j].Column })

		parts := make([]string, 0, 2*len(nodes))
		for i, n := range nodes {
			if i > 0 {
				parts = append(parts, "\n"+arrow)
			}
			parts = append(parts, nodeBox(n))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
		b.WriteString("\n")
		if ri < len(rows)-1 {
			b.WriteString(StyleHeader.Render("  ↓") + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%d phases, %d connectors, %d rows", len(d.Nodes), len(d.Edges), len(rows))))
	b.WriteString("\n")
	return b.String()
}

func nodeBox(n domain.LayoutNode) string {
	border := ColorBlue
	if !n.Active {
		border = ColorDim
	}
	detail := Dim(fmt.Sprintf("(%d,%d)", n.Column, n.Row))
	if n.Duration != nil {
		detail = Dim(fmt.Sprintf("%dd", *n.Duration)) + " " + detail
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(nodeLabelWidth).
		Padding(0, 1).
		Render(Bold(Truncate(n.Label, nodeLabelWidth-2)) + "\n" + detail)
}
