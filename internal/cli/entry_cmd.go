package cli

import (
	"github.com/deadsycode/lexdesk/internal/cli/formatter"
	"github.com/deadsycode/lexdesk/internal/domain"
	"github.com/spf13/cobra"
)

func newEntryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entry",
		Short: "Register and delete time entries",
	}
	cmd.AddCommand(
		newEntryAddCmd(app),
		newEntryDeleteCmd(app),
	)
	return cmd
}

func newEntryAddCmd(app *App) *cobra.Command {
	var (
		in     entryInput
		date   dateFlag
		prompt bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a time entry",
		Long: "Register a time entry. Without flags on a terminal, a form asks for\n" +
			"the client, matter, date and times.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if date.value != nil {
				in.Date = date.String()
			}

			noFlags := cmd.Flags().NFlag() == 0
			if (prompt || noFlags) && app.interactive() {
				if in.Date == "" {
					in.Date = app.now().Format("2006-01-02")
				}
				form, err := newEntryForm(cmd.Context(), app.Directory, &in)
				if err != nil {
					return err
				}
				if err := form.Run(); err != nil {
					return err
				}
			}

			entry, err := in.toNewTimeEntry()
			if err != nil {
				return err
			}
			created, err := app.Entries.Register(cmd.Context(), entry)
			if err != nil {
				return err
			}
			return render(cmd, app, created, func() string {
				return formatter.FormatEntryCreated(created)
			})
		},
	}

	cmd.Flags().Int64Var(&in.ClientID, "client", 0, "Client ID")
	cmd.Flags().Int64Var(&in.MatterID, "matter", 0, "Matter ID")
	cmd.Flags().Var(&date, "date", "Entry date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&in.Start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&in.End, "end", "", "End time (HH:MM)")
	cmd.Flags().StringVarP(&in.Description, "description", "d", "", "What the time was spent on")
	cmd.Flags().BoolVarP(&prompt, "interactive", "i", false, "Complete missing fields in a form")

	return cmd
}

func newEntryDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a time entry",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := app.Entries.Delete(cmd.Context(), id); err != nil {
				return err
			}
			return render(cmd, app, map[string]any{"deleted": id}, func() string {
				return formatter.FormatEntryDeleted(id)
			})
		},
	}
}

// entryInput holds the raw entry fields from flags or the form.
type entryInput struct {
	ClientID    int64
	MatterID    int64
	Date        string
	Start       string
	End         string
	Description string
}

// toNewTimeEntry parses the text fields. Blank fields are left zero so the
// service reports every missing field at once.
func (in entryInput) toNewTimeEntry() (domain.NewTimeEntry, error) {
	e := domain.NewTimeEntry{
		ClientID:    in.ClientID,
		MatterID:    in.MatterID,
		Description: in.Description,
	}
	var err error
	if in.Date != "" {
		if e.TimeEntryDate, err = parseDate(in.Date); err != nil {
			return e, err
		}
	}
	if in.Start != "" {
		if e.StartTime, err = parseClock(in.Start); err != nil {
			return e, err
		}
	}
	if in.End != "" {
		if e.EndTime, err = parseClock(in.End); err != nil {
			return e, err
		}
	}
	return e, nil
}
