package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/deadsycode/lexdesk/internal/service"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const dateLayout = "2006-01-02"

type calendarArgs struct {
	From string `json:"from,omitempty" jsonschema:"first day to include, YYYY-MM-DD"`
	To   string `json:"to,omitempty" jsonschema:"last day to include, YYYY-MM-DD"`
}

type hoursArgs struct {
	By string `json:"by,omitempty" jsonschema:"grouping: client, matter, day, week or month (default client)"`
}

type topClientsArgs struct {
	Limit int `json:"limit,omitempty" jsonschema:"number of clients to return (default from configuration)"`
}

type diagramArgs struct {
	ProcessTypeID int64 `json:"process_type_id" jsonschema:"process type to lay out"`
}

type noArgs struct{}

type tools struct {
	svc Services
	now func() time.Time
}

func registerTools(server *sdkmcp.Server, svc Services, now func() time.Time) {
	t := &tools{svc: svc, now: now}
	if t.now == nil {
		t.now = time.Now
	}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "calendar_events",
		Description: "List time entries as calendar events, optionally limited to a date range",
	}, t.calendarEvents)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "hours_report",
		Description: "Sum logged hours grouped by client, matter, day, week or month",
	}, t.hoursReport)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "top_clients",
		Description: "Rank clients by logged hours and matter count",
	}, t.topClients)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "dashboard_summary",
		Description: "Headline counts, total hours, matter distribution and upcoming events",
	}, t.dashboardSummary)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_process_types",
		Description: "List the workflow process types",
	}, t.processTypes)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "workflow_diagram",
		Description: "Lay out the phases of a process type as a row-wrapped diagram",
	}, t.workflowDiagram)
}

func (t *tools) calendarEvents(ctx context.Context, _ *sdkmcp.CallToolRequest, in calendarArgs) (*sdkmcp.CallToolResult, any, error) {
	from, err := parseDay(in.From)
	if err != nil {
		return errorResult(err), nil, nil
	}
	to, err := parseDay(in.To)
	if err != nil {
		return errorResult(err), nil, nil
	}
	if to != nil {
		through := to.AddDate(0, 0, 1)
		to = &through
	}

	events, err := t.svc.Calendar.Events(ctx, service.CalendarQuery{From: from, To: to})
	if err != nil {
		return errorResult(err), nil, nil
	}
	return jsonResult(events), nil, nil
}

func (t *tools) hoursReport(ctx context.Context, _ *sdkmcp.CallToolRequest, in hoursArgs) (*sdkmcp.CallToolResult, any, error) {
	req := service.ReportRequest{}
	if in.By != "" {
		by, err := service.ParseReportBy(in.By)
		if err != nil {
			return errorResult(err), nil, nil
		}
		req.By = by
	}

	report, err := t.svc.Reports.Hours(ctx, req)
	if err != nil {
		return errorResult(err), nil, nil
	}
	return jsonResult(report), nil, nil
}

func (t *tools) topClients(ctx context.Context, _ *sdkmcp.CallToolRequest, in topClientsArgs) (*sdkmcp.CallToolResult, any, error) {
	rows, err := t.svc.Reports.TopClients(ctx, in.Limit)
	if err != nil {
		return errorResult(err), nil, nil
	}
	return jsonResult(rows), nil, nil
}

func (t *tools) dashboardSummary(ctx context.Context, _ *sdkmcp.CallToolRequest, _ noArgs) (*sdkmcp.CallToolResult, any, error) {
	summary, err := t.svc.Dashboard.Summary(ctx, t.now())
	if err != nil {
		return errorResult(err), nil, nil
	}
	return jsonResult(summary), nil, nil
}

func (t *tools) processTypes(ctx context.Context, _ *sdkmcp.CallToolRequest, _ noArgs) (*sdkmcp.CallToolResult, any, error) {
	types, err := t.svc.Workflow.ProcessTypes(ctx)
	if err != nil {
		return errorResult(err), nil, nil
	}
	return jsonResult(types), nil, nil
}

func (t *tools) workflowDiagram(ctx context.Context, _ *sdkmcp.CallToolRequest, in diagramArgs) (*sdkmcp.CallToolResult, any, error) {
	if in.ProcessTypeID <= 0 {
		return errorResult(fmt.Errorf("process_type_id must be positive")), nil, nil
	}
	diagram, err := t.svc.Workflow.Diagram(ctx, in.ProcessTypeID)
	if err != nil {
		return errorResult(err), nil, nil
	}
	return jsonResult(diagram), nil, nil
}

func parseDay(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return &d, nil
}

func jsonResult(v any) *sdkmcp.CallToolResult {
	data, err := json.Marshal(v)
	if err != nil {
		return errorResult(fmt.Errorf("encoding result: %w", err))
	}
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(data)}},
	}
}

func errorResult(err error) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: err.Error()}},
		IsError: true,
	}
}
