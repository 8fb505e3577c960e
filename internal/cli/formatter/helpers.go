package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(1, 2)

	if title == "" {
		return boxStyle.Render(content)
	}
	return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
}

// RelativeDateFrom describes t relative to now in whole calendar days.
func RelativeDateFrom(t time.Time, now time.Time) string {
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()
	a := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	b := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	days := int(math.Round(b.Sub(a).Hours() / 24))

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0 && days < 14:
		return fmt.Sprintf("In %dd", days)
	case days > 0 && days < 60:
		return fmt.Sprintf("In %dw", days/7)
	case days > 0:
		return fmt.Sprintf("In %dmo", days/30)
	case days > -14:
		return fmt.Sprintf("%dd ago", -days)
	case days > -60:
		return fmt.Sprintf("%dw ago", -days/7)
	default:
		return fmt.Sprintf("%dmo ago", -days/30)
	}
}

// FormatHours renders fractional hours as "1h 30m", rounded to the minute.
func FormatHours(h float64) string {
	total := int(math.Round(h * 60))
	sign := ""
	if total < 0 {
		sign = "-"
		total = -total
	}
	if total == 0 {
		return "0m"
	}
	hh, mm := total/60, total%60
	switch {
	case hh > 0 && mm > 0:
		return fmt.Sprintf("%s%dh %dm", sign, hh, mm)
	case hh > 0:
		return fmt.Sprintf("%s%dh", sign, hh)
	default:
		return fmt.Sprintf("%s%dm", sign, mm)
	}
}

// FormatDay renders a calendar day such as "Mon 11 Mar 2024".
func FormatDay(t time.Time) string {
	return t.Format("Mon 02 Jan 2006")
}

// FormatClock renders the time of day as HH:MM.
func FormatClock(t time.Time) string {
	return t.Format("15:04")
}

// Truncate shortens s to width visible runes, marking the cut with an ellipsis.
func Truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 || len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}

// PadRight pads s with spaces to width visible cells.
func PadRight(s string, width int) string {
	return s + strings.Repeat(" ", max(width-lipgloss.Width(s), 0))
}

// OrDash returns a dimmed dash for blank strings.
func OrDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return Dim("--")
	}
	return s
}
