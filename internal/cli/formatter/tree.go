package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TreeItem is one line of a two-level tree. Level 0 items are headings.
type TreeItem struct {
	Title  string
	Level  int
	IsLast bool
	Muted  bool
	Detail string
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
)

// RenderTree renders items with box-drawing connectors and right-aligns
// their Detail badges.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	contents := make([]string, len(items))
	widest := 0
	for i, item := range items {
		title := item.Title
		switch {
		case item.Level == 0:
			title = Bold(title)
		case item.Muted:
			title = Dim(title)
		}

		prefix := ""
		if item.Level > 0 {
			prefix = strings.Repeat("   ", item.Level-1) + treeBranch
			if item.IsLast {
				prefix = strings.Repeat("   ", item.Level-1) + treeCorner
			}
			prefix = Dim(prefix)
		}

		contents[i] = prefix + title
		widest = max(widest, lipgloss.Width(contents[i]))
	}

	var b strings.Builder
	for i, item := range items {
		b.WriteString(contents[i])
		if item.Detail != "" {
			pad := widest - lipgloss.Width(contents[i])
			b.WriteString(strings.Repeat(" ", pad) + "  " + StyleBlue.Render("[ "+item.Detail+" ]"))
		}
		b.WriteString("\n")
	}
	return b.String()
}
