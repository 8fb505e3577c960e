package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/deadsycode/lexdesk/internal/agenda"
	"github.com/deadsycode/lexdesk/internal/cli/formatter"
	"github.com/deadsycode/lexdesk/internal/service"
	"github.com/spf13/cobra"
)

func newAgendaCmd(app *App) *cobra.Command {
	var from, to dateFlag
	var plain bool

	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "Show time entries grouped by day",
		Long: "Show time entries grouped by day. On a terminal this opens a week browser;\n" +
			"use --plain for printable output.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := service.CalendarQuery{From: from.ptr(), To: to.through()}

			if app.interactive() && !plain {
				ctx := cmd.Context()
				start := app.now()
				if q.From != nil {
					start = *q.From
				}
				m := newAgendaModel(func() ([]agenda.DayAgenda, error) {
					return app.Calendar.Agenda(ctx, q)
				}, start, app.now())
				_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
				return err
			}

			days, err := app.Calendar.Agenda(cmd.Context(), q)
			if err != nil {
				return err
			}
			return render(cmd, app, days, func() string {
				return formatter.FormatAgenda(days)
			})
		},
	}

	cmd.Flags().Var(&from, "from", "First day to include (YYYY-MM-DD)")
	cmd.Flags().Var(&to, "to", "Last day to include (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&plain, "plain", false, "Print the agenda instead of opening the browser")

	return cmd
}
