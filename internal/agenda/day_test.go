package agenda

import (
	"testing"

	"github.com/deadsycode/lexdesk/internal/domain"
	"github.com/deadsycode/lexdesk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByDay(t *testing.T) {
	events := ProjectEvents([]domain.TimeEntry{
		testutil.NewTestEntry(1, "2024-03-11", "09:00", "10:00"),
		testutil.NewTestEntry(2, "2024-03-10", "14:00", "16:30"),
		testutil.NewTestEntry(3, "2024-03-11", "08:00", "08:30"),
	})

	days := GroupByDay(events)

	require.Len(t, days, 2)
	assert.Equal(t, testutil.Date("2024-03-10"), days[0].Date)
	assert.InDelta(t, 2.5, days[0].Hours, 1e-9)
	require.Len(t, days[1].Events, 2)
	assert.Equal(t, int64(1), days[1].Events[0].ID)
	assert.Equal(t, int64(3), days[1].Events[1].ID)
	assert.InDelta(t, 1.5, days[1].Hours, 1e-9)
}

func TestGroupByDay_Empty(t *testing.T) {
	assert.Empty(t, GroupByDay(nil))
}
