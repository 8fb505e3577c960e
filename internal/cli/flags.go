package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/deadsycode/lexdesk/internal/service"
	"github.com/spf13/pflag"
)

const clockLayout = "15:04"

// dateFlag is an optional YYYY-MM-DD flag in the local time zone.
type dateFlag struct {
	value *time.Time
}

var _ pflag.Value = (*dateFlag)(nil)

func (f *dateFlag) String() string {
	if f.value == nil {
		return ""
	}
	return f.value.Format(time.DateOnly)
}

func (f *dateFlag) Set(s string) error {
	t, err := parseDate(s)
	if err != nil {
		return err
	}
	f.value = &t
	return nil
}

func (f *dateFlag) Type() string { return "date" }

// ptr returns the date at midnight, or nil when unset.
func (f *dateFlag) ptr() *time.Time {
	return f.value
}

// through returns midnight after the date so the day itself is included
// in a half-open range.
func (f *dateFlag) through() *time.Time {
	if f.value == nil {
		return nil
	}
	next := f.value.AddDate(0, 0, 1)
	return &next
}

func parseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected YYYY-MM-DD, got %q", s)
	}
	return t, nil
}

func parseClock(s string) (time.Time, error) {
	t, err := time.Parse(clockLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("expected HH:MM, got %q", s)
	}
	return t, nil
}

// groupingFlag selects the hours report grouping.
type groupingFlag struct {
	by service.ReportBy
}

var _ pflag.Value = (*groupingFlag)(nil)

func (f *groupingFlag) String() string { return string(f.by) }

func (f *groupingFlag) Set(s string) error {
	by, err := service.ParseReportBy(s)
	if err != nil {
		return err
	}
	f.by = by
	return nil
}

func (f *groupingFlag) Type() string { return "grouping" }

func groupingNames() string {
	names := make([]string, len(service.ReportGroupings))
	for i, g := range service.ReportGroupings {
		names[i] = string(g)
	}
	return strings.Join(names, "|")
}
