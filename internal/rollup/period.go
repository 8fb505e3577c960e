package rollup

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownPeriod is returned by ParsePeriod for unsupported names.
var ErrUnknownPeriod = errors.New("unknown period")

// Period is a calendar bucket size for HoursByPeriod.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// ParsePeriod accepts day, week or month (case-insensitive).
func ParsePeriod(s string) (Period, error) {
	switch p := Period(strings.ToLower(strings.TrimSpace(s))); p {
	case PeriodDay, PeriodWeek, PeriodMonth:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q (want day, week or month)", ErrUnknownPeriod, s)
}

// Key returns a sortable bucket key for t. Weeks use ISO numbering.
func (p Period) Key(t time.Time) string {
	switch p {
	case PeriodWeek:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	case PeriodMonth:
		return t.Format("2006-01")
	default:
		return t.Format(time.DateOnly)
	}
}

// Label returns a human title for the bucket containing t.
func (p Period) Label(t time.Time) string {
	switch p {
	case PeriodWeek:
		start, end := weekRange(t)
		return fmt.Sprintf("%s - %s", start.Format("Jan 02"), end.Format("Jan 02, 2006"))
	case PeriodMonth:
		return t.Format("January 2006")
	default:
		return t.Format("Mon, 02 Jan 2006")
	}
}

// weekRange returns Monday and Sunday of t's week.
func weekRange(t time.Time) (time.Time, time.Time) {
	offset := int(t.Weekday())
	if offset == 0 {
		offset = 7
	}
	start := t.AddDate(0, 0, -offset+1)
	return start, start.AddDate(0, 0, 6)
}
