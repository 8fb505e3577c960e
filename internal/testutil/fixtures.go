package testutil

import (
	"strings"
	"time"

	"github.com/deadsycode/lexdesk/internal/domain"
)

// Time-of-day values are parsed onto a date far from any entry date so
// tests catch code that reads their date part.
const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// Date parses a YYYY-MM-DD string in UTC and panics on bad input.
func Date(s string) time.Time {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

// Clock parses an HH:MM time-of-day and panics on bad input.
func Clock(s string) time.Time {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

// At returns the instant at hh:mm on the given YYYY-MM-DD date in UTC.
func At(date, clock string) time.Time {
	d, c := Date(date), Clock(clock)
	return time.Date(d.Year(), d.Month(), d.Day(), c.Hour(), c.Minute(), 0, 0, time.UTC)
}

// TimeEntry options
type EntryOption func(*domain.TimeEntry)

func WithClient(id int64, name string) EntryOption {
	return func(e *domain.TimeEntry) {
		e.ClientID = domain.Int64Ptr(id)
		e.ClientName = name
	}
}

func WithMatter(id int64, name string) EntryOption {
	return func(e *domain.TimeEntry) {
		e.MatterID = domain.Int64Ptr(id)
		e.MatterName = name
	}
}

func WithDescription(d string) EntryOption {
	return func(e *domain.TimeEntry) {
		e.Description = d
	}
}

func WithoutStart() EntryOption {
	return func(e *domain.TimeEntry) {
		e.StartTime = nil
	}
}

func WithoutEnd() EntryOption {
	return func(e *domain.TimeEntry) {
		e.EndTime = nil
	}
}

func WithoutDate() EntryOption {
	return func(e *domain.TimeEntry) {
		e.TimeEntryDate = nil
	}
}

// NewTestEntry builds a time entry on date from start to end (HH:MM).
func NewTestEntry(id int64, date, start, end string, opts ...EntryOption) domain.TimeEntry {
	d := Date(date)
	s, f := Clock(start), Clock(end)
	e := domain.TimeEntry{
		ID:            id,
		TimeEntryDate: &d,
		StartTime:     &s,
		EndTime:       &f,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

func NewTestClient(id int64, shortName string) domain.Client {
	return domain.Client{
		ID:           id,
		ShortName:    shortName,
		BusinessName: shortName + " S.A.",
		CountryID:    1,
		CountryName:  "Argentina",
	}
}

func NewTestMatter(id, clientID int64, name string) domain.Matter {
	return domain.Matter{ID: id, ClientID: domain.Int64Ptr(clientID), Name: name}
}

// NewOrphanMatter builds a matter with no client, as seen mid form-fill.
func NewOrphanMatter(id int64, name string) domain.Matter {
	return domain.Matter{ID: id, Name: name}
}

func NewTestPhase(id int64, order int, description string) domain.ProcessPhase {
	return domain.ProcessPhase{
		ID:            id,
		ProcessTypeID: 1,
		Description:   description,
		Order:         order,
		Active:        true,
	}
}

func NewTestUser(id int64, first, last, role string) domain.User {
	return domain.User{
		ID:        id,
		Email:     strings.ToLower(first) + "@firm.test",
		FirstName: first,
		LastName:  last,
		RoleID:    1,
		RoleName:  role,
	}
}
