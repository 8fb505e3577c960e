package cli

import (
	"github.com/deadsycode/lexdesk/internal/cli/formatter"
	"github.com/deadsycode/lexdesk/internal/service"
	"github.com/spf13/cobra"
)

func newHoursCmd(app *App) *cobra.Command {
	by := groupingFlag{by: service.ByClient}

	cmd := &cobra.Command{
		Use:   "hours",
		Short: "Total logged hours by client, matter or period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Reports.Hours(cmd.Context(), service.ReportRequest{By: by.by})
			if err != nil {
				return err
			}
			return render(cmd, app, report, func() string {
				return formatter.FormatHoursReport(report)
			})
		},
	}

	cmd.Flags().Var(&by, "by", "Grouping: "+groupingNames())

	return cmd
}
