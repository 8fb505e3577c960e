package rollup

import (
	"testing"

	"github.com/deadsycode/lexdesk/internal/domain"
	"github.com/deadsycode/lexdesk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatterCountsByClient_ScenarioC(t *testing.T) {
	clients := []domain.Client{
		testutil.NewTestClient(1, "A"),
		testutil.NewTestClient(2, "B"),
		testutil.NewTestClient(3, "C"),
	}
	matters := []domain.Matter{
		testutil.NewTestMatter(10, 1, "m1"),
		testutil.NewTestMatter(11, 1, "m2"),
		testutil.NewTestMatter(12, 2, "m3"),
	}

	got := MatterCountsByClient(matters, clients, DefaultTopN)

	assert.Equal(t, []domain.ChartSlice{
		{Label: "A", Count: 2},
		{Label: "B", Count: 1},
	}, got)
}

func TestMatterCountsByClient_TiesKeepClientOrder(t *testing.T) {
	clients := []domain.Client{
		testutil.NewTestClient(1, "Zeta"),
		testutil.NewTestClient(2, "Alpha"),
		testutil.NewTestClient(3, "Mid"),
	}
	matters := []domain.Matter{
		testutil.NewTestMatter(10, 2, ""),
		testutil.NewTestMatter(11, 1, ""),
		testutil.NewTestMatter(12, 3, ""),
		testutil.NewTestMatter(13, 3, ""),
	}

	got := MatterCountsByClient(matters, clients, DefaultTopN)

	require.Len(t, got, 3)
	assert.Equal(t, "Mid", got[0].Label)
	assert.Equal(t, "Zeta", got[1].Label)
	assert.Equal(t, "Alpha", got[2].Label)
}

func TestMatterCountsByClient_TopNBoundAndOrder(t *testing.T) {
	var clients []domain.Client
	var matters []domain.Matter
	var nextMatter int64 = 100
	for i := int64(1); i <= 12; i++ {
		clients = append(clients, testutil.NewTestClient(i, string(rune('A'+i-1))))
		for j := int64(0); j < i%5+1; j++ {
			matters = append(matters, testutil.NewTestMatter(nextMatter, i, ""))
			nextMatter++
		}
	}

	for _, topN := range []int{1, 3, 8, 12, 20} {
		got := MatterCountsByClient(matters, clients, topN)
		assert.LessOrEqual(t, len(got), topN)
		for i := 1; i < len(got); i++ {
			assert.GreaterOrEqual(t, got[i-1].Count, got[i].Count, "topN=%d index %d", topN, i)
		}
	}
}

func TestMatterCountsByClient_SkipsOrphansAndUnknownClients(t *testing.T) {
	clients := []domain.Client{testutil.NewTestClient(1, "A")}
	matters := []domain.Matter{
		testutil.NewOrphanMatter(10, "draft"),
		testutil.NewTestMatter(11, 42, "unknown client"),
		testutil.NewTestMatter(12, 1, "ok"),
	}

	got := MatterCountsByClient(matters, clients, DefaultTopN)

	assert.Equal(t, []domain.ChartSlice{{Label: "A", Count: 1}}, got)
}

func TestMatterCountsByClient_EmptyInputs(t *testing.T) {
	clients := []domain.Client{testutil.NewTestClient(1, "A")}
	matters := []domain.Matter{testutil.NewTestMatter(10, 1, "")}

	assert.Empty(t, MatterCountsByClient(nil, clients, DefaultTopN))
	assert.Empty(t, MatterCountsByClient(matters, nil, DefaultTopN))
	assert.Empty(t, MatterCountsByClient(matters, clients, 0))
	assert.Empty(t, MatterCountsByClient(matters, clients, -1))
}
