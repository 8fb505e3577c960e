package mcp

import (
	"log/slog"
	"time"

	"github.com/deadsycode/lexdesk/internal/service"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `lexdesk exposes a law firm's back office: time entries projected as
calendar events, hour rollups by client, matter or period, the busiest
clients, and workflow phase diagrams. Dates are YYYY-MM-DD in local time.
All tools are read-only.`

// Services contains the use cases published as tools.
type Services struct {
	Calendar  service.CalendarService
	Dashboard service.DashboardService
	Reports   service.ReportService
	Workflow  service.WorkflowService
}

// Config contains server configuration.
type Config struct {
	Services Services
	Version  string
	Logger   *slog.Logger

	// Now overrides the clock used by the dashboard tool.
	Now func() time.Time
}

// NewServer creates an MCP server with the lexdesk tools registered.
func NewServer(cfg Config) *sdkmcp.Server {
	version := cfg.Version
	if version == "" {
		version = "dev"
	}

	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "lexdesk",
		Version: version,
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Services, cfg.Now)

	return server
}
