package cli

import (
	"testing"

	"github.com/deadsycode/lexdesk/internal/domain"
	"github.com/deadsycode/lexdesk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatterOptions_FollowClient(t *testing.T) {
	matters := []domain.Matter{
		testutil.NewTestMatter(10, 1, "Merger"),
		testutil.NewTestMatter(11, 2, "Lease"),
		testutil.NewOrphanMatter(12, "Draft"),
		testutil.NewTestMatter(13, 1, "Audit"),
	}

	opts := matterOptions(matters, 1)
	require.Len(t, opts, 2)
	assert.Equal(t, int64(10), opts[0].Value)
	assert.Equal(t, int64(13), opts[1].Value)

	assert.Empty(t, matterOptions(matters, 0))
}

func TestClientOptions_UseDisplayName(t *testing.T) {
	opts := clientOptions([]domain.Client{
		testutil.NewTestClient(1, "ACME"),
		{ID: 2, BusinessName: "Globex Corporation"},
	})

	require.Len(t, opts, 2)
	assert.Equal(t, "ACME", opts[0].Key)
	assert.Equal(t, "Globex Corporation", opts[1].Key)
}

func TestEntryInput_ToNewTimeEntry(t *testing.T) {
	e, err := entryInput{ClientID: 1, MatterID: 10, Date: "2024-03-14", Start: "09:15", End: "11:00"}.toNewTimeEntry()
	require.NoError(t, err)
	assert.Equal(t, 14, e.TimeEntryDate.Day())
	assert.Equal(t, 9, e.StartTime.Hour())
	assert.Equal(t, 15, e.StartTime.Minute())

	blank, err := entryInput{}.toNewTimeEntry()
	require.NoError(t, err)
	assert.True(t, blank.TimeEntryDate.IsZero())

	_, err = entryInput{Start: "9am"}.toNewTimeEntry()
	assert.ErrorContains(t, err, "HH:MM")
}

func TestValidators(t *testing.T) {
	assert.NoError(t, validateDate("2024-02-29"))
	assert.Error(t, validateDate("2024-02-30"))
	assert.NoError(t, validateClock("23:59"))
	assert.Error(t, validateClock("24:00"))
	assert.Error(t, requirePositive("matter")(0))
}
