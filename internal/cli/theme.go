package cli

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/deadsycode/lexdesk/internal/cli/formatter"
)

// lexdeskHuhTheme styles forms with the formatter palette. Blurred fields
// are dimmed throughout.
func lexdeskHuhTheme() *huh.Theme {
	fg := func(c lipgloss.TerminalColor) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}
	accent, dim := fg(formatter.ColorHeader), fg(formatter.ColorDim)

	t := huh.ThemeBase()

	f := &t.Focused
	f.Title = accent.Bold(true)
	f.Description = dim
	f.ErrorIndicator = fg(formatter.ColorRed)
	f.ErrorMessage = fg(formatter.ColorRed)
	f.SelectSelector = accent
	f.SelectedOption = fg(formatter.ColorGreen)
	f.UnselectedOption = fg(formatter.ColorFg)
	f.TextInput.Cursor = accent
	f.TextInput.Prompt = accent
	f.TextInput.Text = fg(formatter.ColorFg)
	f.TextInput.Placeholder = dim

	b := &t.Blurred
	b.Title = dim
	b.Description = dim
	b.SelectSelector = dim
	b.SelectedOption = dim
	b.UnselectedOption = dim
	b.TextInput.Prompt = dim
	b.TextInput.Text = dim

	return t
}
