// Package rollup aggregates clients, matters and time entries into the
// summary records consumed by dashboards and charts.
package rollup

import (
	"sort"

	"github.com/deadsycode/lexdesk/internal/domain"
)

// DefaultTopN bounds chart series so they stay readable.
const DefaultTopN = 8

// MatterCountsByClient counts matters per client and returns the topN
// clients with at least one matter, labelled by short name. Ties keep the
// order of clients. Matters whose client is missing from clients are not
// reported.
func MatterCountsByClient(matters []domain.Matter, clients []domain.Client, topN int) []domain.ChartSlice {
	if topN <= 0 || len(matters) == 0 || len(clients) == 0 {
		return []domain.ChartSlice{}
	}

	counts := make(map[int64]int, len(clients))
	for _, c := range clients {
		counts[c.ID] = 0
	}
	for _, m := range matters {
		if m.ClientID != nil {
			counts[*m.ClientID]++
		}
	}

	out := make([]domain.ChartSlice, 0, len(clients))
	for _, c := range clients {
		if n := counts[c.ID]; n > 0 {
			out = append(out, domain.ChartSlice{Label: c.ShortName, Count: n})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})

	if len(out) > topN {
		out = out[:topN]
	}
	return out
}
