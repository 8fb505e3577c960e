package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/deadsycode/lexdesk/internal/agenda"
	"github.com/deadsycode/lexdesk/internal/cli/formatter"
)

// agendaLoadedMsg carries the day-grouped agenda fetched by Init.
type agendaLoadedMsg struct {
	days []agenda.DayAgenda
	err  error
}

type agendaKeyMap struct {
	Prev  key.Binding
	Next  key.Binding
	Today key.Binding
	Quit  key.Binding
}

func defaultAgendaKeys() agendaKeyMap {
	return agendaKeyMap{
		Prev:  key.NewBinding(key.WithKeys("left", "h", "p"), key.WithHelp("←/h", "prev week")),
		Next:  key.NewBinding(key.WithKeys("right", "l", "n"), key.WithHelp("→/l", "next week")),
		Today: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "this week")),
		Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k agendaKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Today, k.Quit}
}

func (k agendaKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// agendaModel browses the agenda one Monday-to-Sunday week at a time.
type agendaModel struct {
	load    func() ([]agenda.DayAgenda, error)
	days    []agenda.DayAgenda
	week    time.Time
	home    time.Time
	keys    agendaKeyMap
	help    help.Model
	loading bool
	err     error
}

func newAgendaModel(load func() ([]agenda.DayAgenda, error), start, now time.Time) agendaModel {
	return agendaModel{
		load:    load,
		week:    weekStart(start),
		home:    weekStart(now),
		keys:    defaultAgendaKeys(),
		help:    help.New(),
		loading: true,
	}
}

// weekStart returns midnight of the Monday on or before t.
func weekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return agenda.StartOfDay(t).AddDate(0, 0, -offset)
}

func (m agendaModel) Init() tea.Cmd {
	load := m.load
	return func() tea.Msg {
		days, err := load()
		return agendaLoadedMsg{days: days, err: err}
	}
}

func (m agendaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case agendaLoadedMsg:
		m.loading = false
		m.days, m.err = msg.days, msg.err
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Prev):
			m.week = m.week.AddDate(0, 0, -7)
		case key.Matches(msg, m.keys.Next):
			m.week = m.week.AddDate(0, 0, 7)
		case key.Matches(msg, m.keys.Today):
			m.week = m.home
		}
	}
	return m, nil
}

// visibleDays returns the loaded days inside the current week.
func (m agendaModel) visibleDays() []agenda.DayAgenda {
	end := m.week.AddDate(0, 0, 7)
	var out []agenda.DayAgenda
	for _, d := range m.days {
		if !d.Date.Before(m.week) && d.Date.Before(end) {
			out = append(out, d)
		}
	}
	return out
}

func (m agendaModel) View() string {
	if m.loading {
		return "\n  " + formatter.Dim("Loading agenda...")
	}
	if m.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+m.err.Error())
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(formatter.Header("Week of "+formatter.FormatDay(m.week)) + "\n\n")

	days := m.visibleDays()
	var total float64
	for _, d := range days {
		total += d.Hours
	}
	b.WriteString(formatter.FormatAgenda(days))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s logged this week\n\n", formatter.Bold(formatter.FormatHours(total))))
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
