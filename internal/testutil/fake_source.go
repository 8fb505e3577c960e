package testutil

import (
	"context"
	"sync"

	"github.com/deadsycode/lexdesk/internal/domain"
)

// FakeSource is an in-memory back-office data source. Set a key in Errs
// (the method name, e.g. "ListClients") to make that method fail.
type FakeSource struct {
	Users        []domain.User
	Countries    []domain.Country
	Clients      []domain.Client
	Matters      []domain.Matter
	Entries      []domain.TimeEntry
	ProcessTypes []domain.ProcessType
	Phases       map[int64][]domain.ProcessPhase
	Errs         map[string]error

	mu         sync.Mutex
	Registered []domain.NewTimeEntry
	Deleted    []int64
	calls      map[string]int
	nextID     int64
}

func (f *FakeSource) record(method string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = make(map[string]int)
	}
	f.calls[method]++
	return f.Errs[method]
}

// Calls reports how many times method was invoked.
func (f *FakeSource) Calls(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

func (f *FakeSource) ListClients(ctx context.Context) ([]domain.Client, error) {
	if err := f.record("ListClients"); err != nil {
		return nil, err
	}
	return f.Clients, nil
}

func (f *FakeSource) ListClientsByCountry(ctx context.Context, countryID int64) ([]domain.Client, error) {
	if err := f.record("ListClientsByCountry"); err != nil {
		return nil, err
	}
	out := []domain.Client{}
	for _, c := range f.Clients {
		if c.CountryID == countryID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *FakeSource) ListMattersByClient(ctx context.Context, clientID int64) ([]domain.Matter, error) {
	if err := f.record("ListMattersByClient"); err != nil {
		return nil, err
	}
	out := []domain.Matter{}
	for _, m := range f.Matters {
		if domain.SameID(m.ClientID, &clientID) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *FakeSource) ListUsers(ctx context.Context) ([]domain.User, error) {
	if err := f.record("ListUsers"); err != nil {
		return nil, err
	}
	return f.Users, nil
}

func (f *FakeSource) ListCountries(ctx context.Context) ([]domain.Country, error) {
	if err := f.record("ListCountries"); err != nil {
		return nil, err
	}
	return f.Countries, nil
}

func (f *FakeSource) ListMatters(ctx context.Context) ([]domain.Matter, error) {
	if err := f.record("ListMatters"); err != nil {
		return nil, err
	}
	return f.Matters, nil
}

func (f *FakeSource) ListTimeEntries(ctx context.Context) ([]domain.TimeEntry, error) {
	if err := f.record("ListTimeEntries"); err != nil {
		return nil, err
	}
	return f.Entries, nil
}

func (f *FakeSource) ListProcessTypes(ctx context.Context) ([]domain.ProcessType, error) {
	if err := f.record("ListProcessTypes"); err != nil {
		return nil, err
	}
	return f.ProcessTypes, nil
}

func (f *FakeSource) ListProcessPhases(ctx context.Context, processTypeID int64) ([]domain.ProcessPhase, error) {
	if err := f.record("ListProcessPhases"); err != nil {
		return nil, err
	}
	return f.Phases[processTypeID], nil
}

func (f *FakeSource) RegisterTimeEntry(ctx context.Context, e domain.NewTimeEntry) (*domain.TimeEntry, error) {
	if err := f.record("RegisterTimeEntry"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Registered = append(f.Registered, e)
	f.nextID++

	clientID, matterID := e.ClientID, e.MatterID
	date, start, end := e.TimeEntryDate, e.StartTime, e.EndTime
	return &domain.TimeEntry{
		ID:            1000 + f.nextID,
		ClientID:      &clientID,
		MatterID:      &matterID,
		Description:   e.Description,
		TimeEntryDate: &date,
		StartTime:     &start,
		EndTime:       &end,
	}, nil
}

func (f *FakeSource) DeleteTimeEntry(ctx context.Context, id int64) error {
	if err := f.record("DeleteTimeEntry"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Deleted = append(f.Deleted, id)
	return nil
}
