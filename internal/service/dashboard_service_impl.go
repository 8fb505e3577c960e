package service

import (
	"context"
	"time"

	"github.com/deadsycode/lexdesk/internal/agenda"
	"github.com/deadsycode/lexdesk/internal/domain"
	"github.com/deadsycode/lexdesk/internal/rollup"
)

// UpcomingLimit caps the upcoming entries shown on the dashboard.
const UpcomingLimit = 5

// TeamLimit caps DashboardSummary.Team.
const TeamLimit = 5

// DashboardSummary is the landing-page view of the back office.
type DashboardSummary struct {
	Users        int                 `json:"users"`
	Clients      int                 `json:"clients"`
	Matters      int                 `json:"matters"`
	Entries      int                 `json:"entries"`
	TotalHours   float64             `json:"totalHours"`
	Upcoming     []domain.TimeEntry  `json:"upcoming"`
	Distribution []domain.ChartSlice `json:"distribution"`
	Team         []domain.User       `json:"team"`
}

type dashboardService struct {
	src      DataSource
	topN     int
	observer UseCaseObserver
}

// NewDashboardService builds the dashboard use case. topN bounds the matter
// distribution; non-positive values fall back to rollup.DefaultTopN.
func NewDashboardService(src DataSource, topN int, observers ...UseCaseObserver) DashboardService {
	if topN <= 0 {
		topN = rollup.DefaultTopN
	}
	return &dashboardService{src: src, topN: topN, observer: useCaseObserverOrNoop(observers)}
}

func (s *dashboardService) Summary(ctx context.Context, now time.Time) (summary *DashboardSummary, err error) {
	fields := map[string]any{"top_n": s.topN}
	defer observe(ctx, s.observer, "dashboard-summary", time.Now().UTC(), fields, &err)

	snap, err := loadSnapshot(ctx, s.src, true)
	if err != nil {
		return nil, err
	}

	upcoming := agenda.Upcoming(snap.entries, now)
	if len(upcoming) > UpcomingLimit {
		upcoming = upcoming[:UpcomingLimit]
	}

	team := snap.users
	if len(team) > TeamLimit {
		team = team[:TeamLimit]
	}

	summary = &DashboardSummary{
		Users:        len(snap.users),
		Clients:      len(snap.clients),
		Matters:      len(snap.matters),
		Entries:      len(snap.entries),
		TotalHours:   agenda.TotalHours(snap.entries),
		Upcoming:     upcoming,
		Distribution: rollup.MatterCountsByClient(snap.matters, snap.clients, s.topN),
		Team:         team,
	}
	fields["users"] = summary.Users
	fields["clients"] = summary.Clients
	fields["entries"] = summary.Entries
	return summary, nil
}
