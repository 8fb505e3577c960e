package cli

import (
	"github.com/deadsycode/lexdesk/internal/cli/formatter"
	"github.com/deadsycode/lexdesk/internal/service"
	"github.com/spf13/cobra"
)

func newClientsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clients",
		Short: "List and rank clients",
	}
	cmd.AddCommand(newClientsListCmd(app), newClientsTopCmd(app))
	return cmd
}

func newClientsListCmd(app *App) *cobra.Command {
	var country int64

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List clients, optionally for one country",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var f service.ClientFilter
			if cmd.Flags().Changed("country") {
				f.CountryID = &country
			}
			clients, err := app.Directory.Clients(cmd.Context(), f)
			if err != nil {
				return err
			}
			return render(cmd, app, clients, func() string {
				return formatter.FormatClients(clients)
			})
		},
	}

	cmd.Flags().Int64Var(&country, "country", 0, "Only clients of this country ID")

	return cmd
}

func newClientsTopCmd(app *App) *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Rank clients by logged hours",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := app.Reports.TopClients(cmd.Context(), n)
			if err != nil {
				return err
			}
			return render(cmd, app, rows, func() string {
				return formatter.FormatTopClients(rows)
			})
		},
	}

	cmd.Flags().IntVarP(&n, "limit", "n", 0, "Number of clients to show (default from config)")

	return cmd
}
