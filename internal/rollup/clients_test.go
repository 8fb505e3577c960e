package rollup

import (
	"testing"

	"github.com/deadsycode/lexdesk/internal/domain"
	"github.com/deadsycode/lexdesk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopClients(t *testing.T) {
	clients := []domain.Client{
		testutil.NewTestClient(1, "ACME"),
		testutil.NewTestClient(2, "Globex"),
		testutil.NewTestClient(3, "Initech"),
		testutil.NewTestClient(4, "Idle"),
	}
	matters := []domain.Matter{
		testutil.NewTestMatter(10, 1, "Merger"),
		testutil.NewTestMatter(11, 1, "Lease"),
		testutil.NewTestMatter(20, 2, "Patent"),
		testutil.NewTestMatter(30, 3, "Audit"),
	}

	got := TopClients(clients, matters, sampleEntries(), 5)

	require.Len(t, got, 3)
	assert.Equal(t, "Globex", got[0].ShortName)
	assert.Equal(t, "ACME", got[1].ShortName)
	assert.Equal(t, 2, got[1].Matters)
	assert.Equal(t, 3, got[1].Entries)
	assert.InDelta(t, 2.5, got[1].Hours, 1e-9)
	assert.Equal(t, "Initech", got[2].ShortName)
	assert.Zero(t, got[2].Hours)
}

func TestTopClients_Truncates(t *testing.T) {
	clients := []domain.Client{testutil.NewTestClient(1, "ACME"), testutil.NewTestClient(2, "Globex")}

	got := TopClients(clients, nil, sampleEntries(), 1)

	require.Len(t, got, 1)
	assert.Equal(t, "Globex", got[0].ShortName)
	assert.Empty(t, TopClients(clients, nil, sampleEntries(), 0))
}
