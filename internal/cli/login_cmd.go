package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/deadsycode/lexdesk/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	var email string
	var passwordStdin bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and print an API token",
		Long: "Sign in and print an API token. Export it as LEXDESK_API_TOKEN for\n" +
			"later commands; the token is not stored.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var password string

			switch {
			case passwordStdin:
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("reading password: %w", err)
				}
				password = strings.TrimRight(line, "\r\n")
			case app.interactive():
				if err := newLoginForm(&email, &password).Run(); err != nil {
					return err
				}
			default:
				return errors.New("no terminal: pass --email and --password-stdin")
			}

			if strings.TrimSpace(email) == "" || password == "" {
				return errors.New("email and password are required")
			}

			session, err := app.Auth.Login(cmd.Context(), strings.TrimSpace(email), password)
			if err != nil {
				return err
			}

			return render(cmd, app, session, func() string {
				name := strings.TrimSpace(session.FirstName + " " + session.LastName)
				return formatter.StyleGreen.Render("✔ ") + "Signed in as " + formatter.Bold(formatter.OrDash(name)) + "\n" +
					"export LEXDESK_API_TOKEN=" + session.Token + "\n"
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "Read the password from stdin")

	return cmd
}

func newLoginForm(email, password *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Value(email).
				Validate(func(s string) error {
					if !strings.Contains(s, "@") {
						return errors.New("enter a valid email")
					}
					return nil
				}),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(password),
		),
	).WithTheme(lexdeskHuhTheme()).WithShowHelp(false)
}
