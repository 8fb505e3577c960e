package domain

import "time"

// TimeEntry is a billable record of work for a client and matter.
//
// Only the calendar date of TimeEntryDate and the hour and minute of
// StartTime and EndTime are meaningful. The date parts carried by the two
// time-of-day fields come from data entry and must be ignored.
type TimeEntry struct {
	ID            int64      `json:"id"`
	ClientID      *int64     `json:"clientId,omitempty"`
	MatterID      *int64     `json:"matterId,omitempty"`
	Description   string     `json:"description,omitempty"`
	TimeEntryDate *time.Time `json:"timeEntryDate,omitempty"`
	StartTime     *time.Time `json:"startTime,omitempty"`
	EndTime       *time.Time `json:"endTime,omitempty"`

	// Joined by the API before the entry reaches this module.
	ClientName string `json:"clientName,omitempty"`
	MatterName string `json:"matterName,omitempty"`
}

// CalendarEvent is a time entry shaped for calendar and agenda rendering.
// It is rebuilt on every projection and never persisted.
type CalendarEvent struct {
	ID         int64     `json:"id"`
	Subject    string    `json:"subject"`
	Start      time.Time `json:"startInstant"`
	End        time.Time `json:"endInstant"`
	ClientID   *int64    `json:"clientId,omitempty"`
	ClientName string    `json:"clientName,omitempty"`
	MatterID   *int64    `json:"matterId,omitempty"`
	MatterName string    `json:"matterName,omitempty"`
}

// Hours returns the elapsed hours between Start and End. Negative when
// End precedes Start.
func (e CalendarEvent) Hours() float64 {
	return e.End.Sub(e.Start).Hours()
}

// NewTimeEntry is the payload for registering a time entry.
type NewTimeEntry struct {
	ClientID      int64     `json:"clientId"`
	MatterID      int64     `json:"matterId"`
	Description   string    `json:"description,omitempty"`
	TimeEntryDate time.Time `json:"timeEntryDate"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
}
