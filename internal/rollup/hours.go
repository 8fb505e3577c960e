package rollup

import (
	"sort"
	"strconv"

	"github.com/deadsycode/lexdesk/internal/agenda"
	"github.com/deadsycode/lexdesk/internal/domain"
)

// UnassignedKey is the bucket key for entries without the grouped ID.
const UnassignedKey = "unassigned"

// Bucket is the hours and entry count of one group. Entries counts every
// entry in the group, including those whose hours fell back to zero.
type Bucket struct {
	Key     string  `json:"key"`
	ID      *int64  `json:"id,omitempty"`
	Label   string  `json:"label"`
	Hours   float64 `json:"hours"`
	Entries int     `json:"entries"`
}

// HoursByClient totals entry hours per client, largest first.
func HoursByClient(entries []domain.TimeEntry) []Bucket {
	return groupByID(entries, func(e domain.TimeEntry) (*int64, string) {
		return e.ClientID, e.ClientName
	}, domain.UnknownClientLabel)
}

// HoursByMatter totals entry hours per matter, largest first.
func HoursByMatter(entries []domain.TimeEntry) []Bucket {
	return groupByID(entries, func(e domain.TimeEntry) (*int64, string) {
		return e.MatterID, e.MatterName
	}, domain.UnknownMatterLabel)
}

func groupByID(entries []domain.TimeEntry, pick func(domain.TimeEntry) (*int64, string), unknown string) []Bucket {
	index := make(map[string]int)
	var out []Bucket
	for _, e := range entries {
		id, name := pick(e)
		key := UnassignedKey
		if id != nil {
			key = strconv.FormatInt(*id, 10)
		}
		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, Bucket{Key: key, ID: id})
		}
		b := &out[i]
		// The first non-empty joined name wins.
		if b.Label == "" && id != nil {
			b.Label = name
		}
		b.Hours += agenda.Hours(e)
		b.Entries++
	}
	for i := range out {
		out[i].Label = domain.CoalesceStr(out[i].Label, unknown)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Hours > out[j].Hours
	})
	if out == nil {
		return []Bucket{}
	}
	return out
}

// HoursByPeriod totals entry hours per calendar bucket of the entry date,
// in chronological order. Entries without a date are skipped.
func HoursByPeriod(entries []domain.TimeEntry, p Period) []Bucket {
	index := make(map[string]int)
	out := []Bucket{}
	for _, e := range entries {
		if e.TimeEntryDate == nil {
			continue
		}
		key := p.Key(*e.TimeEntryDate)
		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, Bucket{Key: key, Label: p.Label(*e.TimeEntryDate)})
		}
		out[i].Hours += agenda.Hours(e)
		out[i].Entries++
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Key < out[j].Key
	})
	return out
}

// Sum returns the total hours across buckets.
func Sum(buckets []Bucket) float64 {
	var total float64
	for _, b := range buckets {
		total += b.Hours
	}
	return total
}
