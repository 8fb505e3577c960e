package mcp

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/deadsycode/lexdesk/internal/domain"
	"github.com/deadsycode/lexdesk/internal/rollup"
	"github.com/deadsycode/lexdesk/internal/service"
	"github.com/deadsycode/lexdesk/internal/testutil"
	"github.com/deadsycode/lexdesk/internal/workflow"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSource() *testutil.FakeSource {
	return &testutil.FakeSource{
		Clients: []domain.Client{
			testutil.NewTestClient(1, "ACME"),
			testutil.NewTestClient(2, "Globex"),
		},
		Matters: []domain.Matter{
			testutil.NewTestMatter(10, 1, "Merger"),
			testutil.NewTestMatter(12, 2, "Lease"),
		},
		Entries: []domain.TimeEntry{
			testutil.NewTestEntry(1, "2024-03-10", "09:00", "10:30",
				testutil.WithClient(1, "ACME"), testutil.WithMatter(10, "Merger")),
			testutil.NewTestEntry(2, "2024-03-11", "14:00", "16:00",
				testutil.WithClient(2, "Globex"), testutil.WithMatter(12, "Lease")),
		},
		ProcessTypes: []domain.ProcessType{{ID: 1, Description: "Litigation", Active: true}},
		Phases: map[int64][]domain.ProcessPhase{
			1: {
				testutil.NewTestPhase(1, 2, "Discovery"),
				testutil.NewTestPhase(2, 1, "Intake"),
			},
		},
	}
}

func connect(t *testing.T, src service.DataSource) *sdkmcp.ClientSession {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)

	server := NewServer(Config{
		Services: Services{
			Calendar:  service.NewCalendarService(src),
			Dashboard: service.NewDashboardService(src, 3),
			Reports:   service.NewReportService(src, 3),
			Workflow:  service.NewWorkflowService(src, workflow.DefaultOptions()),
		},
		Version: "test",
		Now:     func() time.Time { return time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local) },
	})

	serverTransport, clientTransport := sdkmcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { serverSession.Close() })

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { session.Close() })

	return session
}

func callTool(t *testing.T, session *sdkmcp.ClientSession, name string, args map[string]any) *sdkmcp.CallToolResult {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := session.CallTool(ctx, &sdkmcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err, "CallTool %s", name)
	require.NotEmpty(t, result.Content)
	return result
}

func resultText(t *testing.T, result *sdkmcp.CallToolResult) string {
	t.Helper()
	text, ok := result.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return text.Text
}

func decode(t *testing.T, result *sdkmcp.CallToolResult, v any) {
	t.Helper()
	require.False(t, result.IsError, resultText(t, result))
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), v))
}

func TestServer_ListsTools(t *testing.T) {
	session := connect(t, newTestSource())

	tools, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	names := make([]string, 0, len(tools.Tools))
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
		assert.NotEmpty(t, tool.Description, tool.Name)
	}
	assert.ElementsMatch(t, []string{
		"calendar_events", "hours_report", "top_clients",
		"dashboard_summary", "list_process_types", "workflow_diagram",
	}, names)
}

func TestCalendarEvents_ToIsInclusive(t *testing.T) {
	session := connect(t, newTestSource())

	var events []domain.CalendarEvent
	decode(t, callTool(t, session, "calendar_events", map[string]any{
		"from": "2024-03-10",
		"to":   "2024-03-10",
	}), &events)

	require.Len(t, events, 1)
	assert.Equal(t, int64(1), events[0].ID)
}

func TestCalendarEvents_BadDate(t *testing.T) {
	session := connect(t, newTestSource())

	result := callTool(t, session, "calendar_events", map[string]any{"from": "10/03/2024"})

	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "expected YYYY-MM-DD")
}

func TestHoursReport_ByMatter(t *testing.T) {
	session := connect(t, newTestSource())

	var report service.HoursReport
	decode(t, callTool(t, session, "hours_report", map[string]any{"by": "matter"}), &report)

	assert.Equal(t, service.ByMatter, report.By)
	assert.Len(t, report.Buckets, 2)
	assert.InDelta(t, 3.5, report.Total, 1e-9)
}

func TestHoursReport_UnknownGrouping(t *testing.T) {
	session := connect(t, newTestSource())

	result := callTool(t, session, "hours_report", map[string]any{"by": "year"})

	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "unknown grouping")
}

func TestTopClients_Limit(t *testing.T) {
	session := connect(t, newTestSource())

	var rows []rollup.ClientSummary
	decode(t, callTool(t, session, "top_clients", map[string]any{"limit": 1}), &rows)

	require.Len(t, rows, 1)
	assert.Equal(t, int64(2), rows[0].ClientID)
}

func TestDashboardSummary(t *testing.T) {
	session := connect(t, newTestSource())

	var summary service.DashboardSummary
	decode(t, callTool(t, session, "dashboard_summary", map[string]any{}), &summary)

	assert.Equal(t, 2, summary.Clients)
	assert.Equal(t, 2, summary.Entries)
	assert.InDelta(t, 3.5, summary.TotalHours, 1e-9)
}

func TestWorkflowDiagram(t *testing.T) {
	session := connect(t, newTestSource())

	var diagram domain.Diagram
	decode(t, callTool(t, session, "workflow_diagram", map[string]any{"process_type_id": 1}), &diagram)

	require.Len(t, diagram.Nodes, 2)
	assert.Equal(t, int64(2), diagram.Nodes[0].PhaseID)
	assert.Len(t, diagram.Edges, 1)
}

func TestWorkflowDiagram_RejectsZeroID(t *testing.T) {
	session := connect(t, newTestSource())

	result := callTool(t, session, "workflow_diagram", map[string]any{"process_type_id": 0})

	assert.True(t, result.IsError)
}

func TestTool_SourceFailure(t *testing.T) {
	src := newTestSource()
	src.Errs = map[string]error{"ListTimeEntries": assert.AnError}
	session := connect(t, src)

	result := callTool(t, session, "hours_report", map[string]any{})

	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "loading time entries")
}
