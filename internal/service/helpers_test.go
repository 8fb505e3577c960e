package service

import (
	"context"
	"sync"
	"testing"

	"github.com/deadsycode/lexdesk/internal/domain"
	"github.com/deadsycode/lexdesk/internal/testutil"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingObserver) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.Name
	}
	return out
}

// setupSource returns six users, three clients, four matters (one orphaned)
// and four entries totalling 4.5h; entry 3 has no start time.
func setupSource(t *testing.T) *testutil.FakeSource {
	t.Helper()
	return &testutil.FakeSource{
		Users: []domain.User{
			testutil.NewTestUser(1, "Ana", "Paz", "Partner"),
			testutil.NewTestUser(2, "Leo", "Gil", "Associate"),
			testutil.NewTestUser(3, "Eva", "Sol", ""),
			testutil.NewTestUser(4, "Iris", "Mar", "Paralegal"),
			testutil.NewTestUser(5, "Tomas", "Rey", "Associate"),
			testutil.NewTestUser(6, "Nora", "Luz", "Clerk"),
		},
		Countries: []domain.Country{{ID: 1, DescriptionEN: "Argentina", Code: "AR"}},
		Clients: []domain.Client{
			testutil.NewTestClient(1, "ACME"),
			testutil.NewTestClient(2, "Globex"),
			testutil.NewTestClient(3, "Initech"),
		},
		Matters: []domain.Matter{
			testutil.NewTestMatter(10, 1, "Merger"),
			testutil.NewTestMatter(11, 1, "Audit"),
			testutil.NewTestMatter(12, 2, "Lease"),
			testutil.NewOrphanMatter(13, "Draft"),
		},
		Entries: []domain.TimeEntry{
			testutil.NewTestEntry(1, "2024-03-10", "09:00", "10:30",
				testutil.WithClient(1, "ACME"), testutil.WithMatter(10, "Merger"), testutil.WithDescription("Call")),
			testutil.NewTestEntry(2, "2024-03-11", "14:00", "16:00",
				testutil.WithClient(2, "Globex"), testutil.WithMatter(12, "Lease")),
			testutil.NewTestEntry(3, "2024-03-12", "09:00", "10:00", testutil.WithoutStart()),
			testutil.NewTestEntry(4, "2024-03-05", "08:00", "09:00",
				testutil.WithClient(1, "ACME"), testutil.WithMatter(11, "Audit")),
		},
		Phases: map[int64][]domain.ProcessPhase{
			1: {
				testutil.NewTestPhase(1, 2, "Discovery"),
				testutil.NewTestPhase(2, 1, "Intake"),
				testutil.NewTestPhase(3, 3, "Trial"),
			},
		},
	}
}

func eventIDs(events []domain.CalendarEvent) []int64 {
	ids := make([]int64, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}
	return ids
}
