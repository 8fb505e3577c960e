package cli

import (
	"log/slog"

	"github.com/deadsycode/lexdesk/internal/mcp"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

func newMCPCmd(app *App) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve read-only back-office tools over MCP on stdin/stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if debug {
				level = slog.LevelDebug
			}
			// stdout carries the protocol; logs go to stderr.
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			server := mcp.NewServer(mcp.Config{
				Services: mcp.Services{
					Calendar:  app.Calendar,
					Dashboard: app.Dashboard,
					Reports:   app.Reports,
					Workflow:  app.Workflow,
				},
				Version: cmd.Root().Version,
				Logger:  logger,
				Now:     app.now,
			})

			logger.Info("starting stdio transport")
			return server.Run(cmd.Context(), &sdkmcp.StdioTransport{})
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "Log MCP traffic to stderr")

	return cmd
}
