package gateway

import (
	"strings"
	"time"

	"github.com/deadsycode/lexdesk/internal/domain"
)

// Layouts accepted for API timestamps. The API serializes server-local
// times, usually without an offset.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.DateOnly,
}

// parseTime reads an API timestamp. Values without an offset are placed in
// time.Local. Empty or unparsable values yield nil so that the affected
// entry is filtered downstream instead of failing the whole listing.
func parseTime(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		var (
			t   time.Time
			err error
		)
		if layout == time.RFC3339Nano {
			t, err = time.Parse(layout, s)
		} else {
			t, err = time.ParseInLocation(layout, s, time.Local)
		}
		if err == nil {
			return &t
		}
	}
	return nil
}

// formatTime writes an instant in the offset-less form the API expects.
func formatTime(t time.Time) string {
	return t.Format("2006-01-02T15:04:05")
}

type clientDTO struct {
	ID           int64  `json:"id"`
	ShortName    string `json:"shortName"`
	BusinessName string `json:"businessName"`
	CountryID    int64  `json:"countryId"`
	CountryName  string `json:"countryName"`
}

func (d clientDTO) toDomain() domain.Client {
	return domain.Client{
		ID:           d.ID,
		ShortName:    d.ShortName,
		BusinessName: d.BusinessName,
		CountryID:    d.CountryID,
		CountryName:  d.CountryName,
	}
}

type matterDTO struct {
	ID         int64  `json:"id"`
	ClientID   *int64 `json:"clientId"`
	Name       string `json:"name"`
	ClientName string `json:"clientName"`
}

func (d matterDTO) toDomain() domain.Matter {
	return domain.Matter{ID: d.ID, ClientID: positiveID(d.ClientID), Name: d.Name, ClientName: d.ClientName}
}

type userDTO struct {
	ID        int64   `json:"id"`
	Email     string  `json:"email"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	RoleID    int64   `json:"roleId"`
	RoleName  string  `json:"roleName"`
	State     *string `json:"state"`
	Type      *string `json:"type"`
	ChiefID   *int64  `json:"chiefId"`
}

func (d userDTO) toDomain() domain.User {
	return domain.User{
		ID:        d.ID,
		Email:     d.Email,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		RoleID:    d.RoleID,
		RoleName:  d.RoleName,
		State:     deref(d.State),
		Type:      deref(d.Type),
		ChiefID:   positiveID(d.ChiefID),
	}
}

type timeEntryDTO struct {
	ID            int64  `json:"id"`
	ClientID      *int64 `json:"clientId"`
	MatterID      *int64 `json:"matterId"`
	Description   string `json:"description"`
	TimeEntryDate string `json:"timeEntryDate"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	ClientName    string `json:"clientName"`
	MatterName    string `json:"matterName"`
}

func (d timeEntryDTO) toDomain() domain.TimeEntry {
	return domain.TimeEntry{
		ID:            d.ID,
		ClientID:      positiveID(d.ClientID),
		MatterID:      positiveID(d.MatterID),
		Description:   d.Description,
		TimeEntryDate: parseTime(d.TimeEntryDate),
		StartTime:     parseTime(d.StartTime),
		EndTime:       parseTime(d.EndTime),
		ClientName:    d.ClientName,
		MatterName:    d.MatterName,
	}
}

type newTimeEntryDTO struct {
	ClientID      int64  `json:"clientId"`
	MatterID      int64  `json:"matterId"`
	Description   string `json:"description"`
	TimeEntryDate string `json:"timeEntryDate"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
}

func newTimeEntryFromDomain(e domain.NewTimeEntry) newTimeEntryDTO {
	return newTimeEntryDTO{
		ClientID:      e.ClientID,
		MatterID:      e.MatterID,
		Description:   e.Description,
		TimeEntryDate: formatTime(e.TimeEntryDate),
		StartTime:     formatTime(e.StartTime),
		EndTime:       formatTime(e.EndTime),
	}
}

type processTypeDTO struct {
	ID              int64  `json:"id"`
	Description     string `json:"description"`
	AverageDuration *int   `json:"averageDuration"`
	State           bool   `json:"state"`
}

func (d processTypeDTO) toDomain() domain.ProcessType {
	return domain.ProcessType{ID: d.ID, Description: d.Description, AverageDuration: d.AverageDuration, Active: d.State}
}

type processPhaseDTO struct {
	ID                     int64  `json:"id"`
	ProcessTypeID          int64  `json:"processTypeId"`
	Description            string `json:"description"`
	Order                  int    `json:"order"`
	Duration               *int   `json:"duration"`
	State                  bool   `json:"state"`
	ProcessTypeDescription string `json:"processTypeDescription"`
}

func (d processPhaseDTO) toDomain() domain.ProcessPhase {
	return domain.ProcessPhase{
		ID:                     d.ID,
		ProcessTypeID:          d.ProcessTypeID,
		Description:            d.Description,
		Order:                  d.Order,
		Duration:               d.Duration,
		Active:                 d.State,
		ProcessTypeDescription: d.ProcessTypeDescription,
	}
}

// positiveID treats 0 as an unset foreign key; the API emits it for
// matters saved before a client was chosen.
func positiveID(id *int64) *int64 {
	if id == nil || *id <= 0 {
		return nil
	}
	return id
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func convert[D any, T any](in []D, fn func(D) T) []T {
	out := make([]T, len(in))
	for i, d := range in {
		out[i] = fn(d)
	}
	return out
}
