package rollup

import (
	"sort"

	"github.com/deadsycode/lexdesk/internal/agenda"
	"github.com/deadsycode/lexdesk/internal/domain"
)

// ClientSummary is one row of the top-clients report.
type ClientSummary struct {
	ClientID     int64   `json:"clientId"`
	ShortName    string  `json:"shortName"`
	BusinessName string  `json:"businessName"`
	Matters      int     `json:"matters"`
	Entries      int     `json:"entries"`
	Hours        float64 `json:"hours"`
}

// TopClients ranks clients by logged hours, then by matter count, keeping
// client order on ties. Clients without matters or entries are omitted.
func TopClients(clients []domain.Client, matters []domain.Matter, entries []domain.TimeEntry, n int) []ClientSummary {
	if n <= 0 {
		return []ClientSummary{}
	}

	rows := make([]ClientSummary, len(clients))
	index := make(map[int64]int, len(clients))
	for i, c := range clients {
		index[c.ID] = i
		rows[i] = ClientSummary{ClientID: c.ID, ShortName: c.ShortName, BusinessName: c.BusinessName}
	}
	for _, m := range matters {
		if m.ClientID == nil {
			continue
		}
		if i, ok := index[*m.ClientID]; ok {
			rows[i].Matters++
		}
	}
	for _, e := range entries {
		if e.ClientID == nil {
			continue
		}
		if i, ok := index[*e.ClientID]; ok {
			rows[i].Entries++
			rows[i].Hours += agenda.Hours(e)
		}
	}

	out := make([]ClientSummary, 0, len(rows))
	for _, r := range rows {
		if r.Matters > 0 || r.Entries > 0 {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Hours != out[j].Hours {
			return out[i].Hours > out[j].Hours
		}
		return out[i].Matters > out[j].Matters
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
