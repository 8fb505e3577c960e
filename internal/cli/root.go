package cli

import (
	"context"
	"time"

	"github.com/deadsycode/lexdesk/internal/gateway"
	"github.com/deadsycode/lexdesk/internal/service"
	"github.com/spf13/cobra"
)

// Authenticator exchanges credentials for an API token.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*gateway.Session, error)
}

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Calendar  service.CalendarService
	Dashboard service.DashboardService
	Reports   service.ReportService
	Workflow  service.WorkflowService
	Entries   service.TimeEntryService
	Directory service.DirectoryService
	Auth      Authenticator

	// IsInteractive reports whether prompts and the agenda browser may be
	// shown. Nil means never.
	IsInteractive func() bool
	// Now overrides the clock in tests.
	Now func() time.Time

	// JSON is bound to the global --json flag.
	JSON bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive() && !a.JSON
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// NewRootCmd creates the top-level "lexdesk" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "lexdesk",
		Short:         "Law-firm back office: calendar, hours, clients and workflows",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVar(&app.JSON, "json", false, "Print JSON instead of formatted tables")

	root.AddCommand(
		newCalendarCmd(app),
		newAgendaCmd(app),
		newDashboardCmd(app),
		newHoursCmd(app),
		newClientsCmd(app),
		newMattersCmd(app),
		newUsersCmd(app),
		newCountriesCmd(app),
		newWorkflowCmd(app),
		newEntryCmd(app),
		newLoginCmd(app),
		newMCPCmd(app),
	)

	return root
}
