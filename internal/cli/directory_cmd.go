package cli

import (
	"github.com/deadsycode/lexdesk/internal/cli/formatter"
	"github.com/deadsycode/lexdesk/internal/service"
	"github.com/spf13/cobra"
)

func newMattersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matters",
		Short: "Browse matters",
	}
	cmd.AddCommand(newMattersListCmd(app))
	return cmd
}

func newMattersListCmd(app *App) *cobra.Command {
	var client int64

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List matters, optionally for one client",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var f service.MatterFilter
			if cmd.Flags().Changed("client") {
				f.ClientID = &client
			}
			matters, err := app.Directory.Matters(cmd.Context(), f)
			if err != nil {
				return err
			}
			return render(cmd, app, matters, func() string {
				return formatter.FormatMatters(matters)
			})
		},
	}

	cmd.Flags().Int64Var(&client, "client", 0, "Only matters of this client ID")

	return cmd
}

func newUsersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Browse the firm's staff",
	}
	cmd.AddCommand(&cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List users and their roles",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := app.Directory.Users(cmd.Context())
			if err != nil {
				return err
			}
			return render(cmd, app, users, func() string {
				return formatter.FormatUsers(users)
			})
		},
	})
	return cmd
}

func newCountriesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "countries",
		Short: "Browse the country catalogue",
	}
	cmd.AddCommand(&cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List countries and their IDs",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			countries, err := app.Directory.Countries(cmd.Context())
			if err != nil {
				return err
			}
			return render(cmd, app, countries, func() string {
				return formatter.FormatCountries(countries)
			})
		},
	})
	return cmd
}
