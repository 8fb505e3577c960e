package cli

import (
	"fmt"
	"strconv"

	"github.com/deadsycode/lexdesk/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newWorkflowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "workflow",
		Aliases: []string{"wf"},
		Short:   "Process types and their phase diagrams",
	}
	cmd.AddCommand(
		newWorkflowTypesCmd(app),
		newWorkflowDiagramCmd(app),
	)
	return cmd
}

func newWorkflowTypesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List process types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			types, err := app.Workflow.ProcessTypes(cmd.Context())
			if err != nil {
				return err
			}
			return render(cmd, app, types, func() string {
				return formatter.FormatProcessTypes(types)
			})
		},
	}
}

func newWorkflowDiagramCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "diagram <process-type-id>",
		Short: "Lay out the phases of a process type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			diagram, err := app.Workflow.Diagram(cmd.Context(), id)
			if err != nil {
				return err
			}
			return render(cmd, app, diagram, func() string {
				return formatter.FormatDiagram(*diagram)
			})
		},
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", s)
	}
	return id, nil
}
