package cli

import (
	"github.com/deadsycode/lexdesk/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show counts, logged hours, matter distribution and upcoming entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.now()

			stop := func() {}
			if app.interactive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Loading dashboard...")
			}
			summary, err := app.Dashboard.Summary(cmd.Context(), now)
			stop()
			if err != nil {
				return err
			}

			return render(cmd, app, summary, func() string {
				return formatter.FormatDashboard(summary, now) + "\n"
			})
		},
	}
}
