package service

import (
	"context"
	"time"

	"github.com/deadsycode/lexdesk/internal/agenda"
	"github.com/deadsycode/lexdesk/internal/domain"
	"github.com/deadsycode/lexdesk/internal/rollup"
)

// DataSource is the back-office data the use cases read and write. The
// gateway client implements it.
type DataSource interface {
	ListClients(ctx context.Context) ([]domain.Client, error)
	ListClientsByCountry(ctx context.Context, countryID int64) ([]domain.Client, error)
	ListMatters(ctx context.Context) ([]domain.Matter, error)
	ListMattersByClient(ctx context.Context, clientID int64) ([]domain.Matter, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	ListCountries(ctx context.Context) ([]domain.Country, error)
	ListTimeEntries(ctx context.Context) ([]domain.TimeEntry, error)
	ListProcessTypes(ctx context.Context) ([]domain.ProcessType, error)
	ListProcessPhases(ctx context.Context, processTypeID int64) ([]domain.ProcessPhase, error)
	RegisterTimeEntry(ctx context.Context, e domain.NewTimeEntry) (*domain.TimeEntry, error)
	DeleteTimeEntry(ctx context.Context, id int64) error
}

type CalendarService interface {
	Events(ctx context.Context, q CalendarQuery) ([]domain.CalendarEvent, error)
	Agenda(ctx context.Context, q CalendarQuery) ([]agenda.DayAgenda, error)
}

type DashboardService interface {
	Summary(ctx context.Context, now time.Time) (*DashboardSummary, error)
}

type ReportService interface {
	Hours(ctx context.Context, req ReportRequest) (*HoursReport, error)
	TopClients(ctx context.Context, n int) ([]rollup.ClientSummary, error)
}

type WorkflowService interface {
	ProcessTypes(ctx context.Context) ([]domain.ProcessType, error)
	Diagram(ctx context.Context, processTypeID int64) (*domain.Diagram, error)
}

type DirectoryService interface {
	Clients(ctx context.Context, f ClientFilter) ([]domain.Client, error)
	Matters(ctx context.Context, f MatterFilter) ([]domain.Matter, error)
	Users(ctx context.Context) ([]domain.User, error)
	Countries(ctx context.Context) ([]domain.Country, error)
}

type TimeEntryService interface {
	Register(ctx context.Context, e domain.NewTimeEntry) (*domain.TimeEntry, error)
	Delete(ctx context.Context, id int64) error
}
