package cli

import (
	"github.com/deadsycode/lexdesk/internal/cli/formatter"
	"github.com/deadsycode/lexdesk/internal/service"
	"github.com/spf13/cobra"
)

func newCalendarCmd(app *App) *cobra.Command {
	var from, to dateFlag

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "List time entries as calendar events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := app.Calendar.Events(cmd.Context(), service.CalendarQuery{
				From: from.ptr(),
				To:   to.through(),
			})
			if err != nil {
				return err
			}
			return render(cmd, app, events, func() string {
				return formatter.FormatEvents(events)
			})
		},
	}

	cmd.Flags().Var(&from, "from", "First day to include (YYYY-MM-DD)")
	cmd.Flags().Var(&to, "to", "Last day to include (YYYY-MM-DD)")

	return cmd
}
