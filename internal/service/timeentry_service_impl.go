package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/deadsycode/lexdesk/internal/agenda"
	"github.com/deadsycode/lexdesk/internal/domain"
)

type timeEntryService struct {
	src      DataSource
	observer UseCaseObserver
}

func NewTimeEntryService(src DataSource, observers ...UseCaseObserver) TimeEntryService {
	return &timeEntryService{src: src, observer: useCaseObserverOrNoop(observers)}
}

// Register validates and stores a new time entry. Client, matter, date,
// start and end are required. Start and end keep only their time of day and
// are moved onto the entry date.
func (s *timeEntryService) Register(ctx context.Context, e domain.NewTimeEntry) (created *domain.TimeEntry, err error) {
	fields := map[string]any{"client": e.ClientID, "matter": e.MatterID}
	defer observe(ctx, s.observer, "register-time-entry", time.Now().UTC(), fields, &err)

	if err = validateNewEntry(e); err != nil {
		return nil, err
	}

	date := agenda.StartOfDay(e.TimeEntryDate)
	start, _ := agenda.Combine(date, &e.StartTime)
	end, _ := agenda.Combine(date, &e.EndTime)
	e.TimeEntryDate, e.StartTime, e.EndTime = date, start, end
	e.Description = strings.TrimSpace(e.Description)

	created, err = s.src.RegisterTimeEntry(ctx, e)
	if err != nil {
		return nil, err
	}
	fields["id"] = created.ID
	return created, nil
}

func (s *timeEntryService) Delete(ctx context.Context, id int64) (err error) {
	fields := map[string]any{"id": id}
	defer observe(ctx, s.observer, "delete-time-entry", time.Now().UTC(), fields, &err)

	if id <= 0 {
		return fmt.Errorf("%w: time entry id must be positive", ErrInvalidInput)
	}
	return s.src.DeleteTimeEntry(ctx, id)
}

func validateNewEntry(e domain.NewTimeEntry) error {
	var missing []string
	if e.ClientID <= 0 {
		missing = append(missing, "client")
	}
	if e.MatterID <= 0 {
		missing = append(missing, "matter")
	}
	if e.TimeEntryDate.IsZero() {
		missing = append(missing, "date")
	}
	if e.StartTime.IsZero() {
		missing = append(missing, "start time")
	}
	if e.EndTime.IsZero() {
		missing = append(missing, "end time")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidInput, strings.Join(missing, ", "))
	}
	return nil
}
