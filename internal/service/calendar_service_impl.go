package service

import (
	"context"
	"fmt"
	"time"

	"github.com/deadsycode/lexdesk/internal/agenda"
	"github.com/deadsycode/lexdesk/internal/domain"
)

// CalendarQuery bounds the events returned. Nil bounds are open.
type CalendarQuery struct {
	From *time.Time
	To   *time.Time
}

type calendarService struct {
	src      DataSource
	observer UseCaseObserver
}

func NewCalendarService(src DataSource, observers ...UseCaseObserver) CalendarService {
	return &calendarService{src: src, observer: useCaseObserverOrNoop(observers)}
}

func (s *calendarService) Events(ctx context.Context, q CalendarQuery) (events []domain.CalendarEvent, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "calendar-events", time.Now().UTC(), fields, &err)

	entries, err := s.src.ListTimeEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading calendar: %w", err)
	}
	events = agenda.ProjectEvents(entries)
	fields["entries"] = len(entries)
	fields["projected"] = len(events)

	var from, to time.Time
	if q.From != nil {
		from = *q.From
	}
	if q.To != nil {
		to = *q.To
	}
	events = agenda.EventsBetween(events, from, to)
	fields["events"] = len(events)
	return events, nil
}

func (s *calendarService) Agenda(ctx context.Context, q CalendarQuery) ([]agenda.DayAgenda, error) {
	events, err := s.Events(ctx, q)
	if err != nil {
		return nil, err
	}
	return agenda.GroupByDay(events), nil
}
