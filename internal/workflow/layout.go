// Package workflow lays out process phases as a wrapping grid of nodes
// joined by sequential connectors.
package workflow

import (
	"sort"

	"github.com/deadsycode/lexdesk/internal/domain"
)

// Options controls grid geometry. Column and row steps are measured between
// node centers.
type Options struct {
	ColumnsPerRow int     `yaml:"columns_per_row"`
	ColumnWidth   float64 `yaml:"column_width"`
	RowHeight     float64 `yaml:"row_height"`
	OriginX       float64 `yaml:"origin_x"`
	OriginY       float64 `yaml:"origin_y"`
	NodeWidth     float64 `yaml:"node_width"`
	NodeHeight    float64 `yaml:"node_height"`
}

// DefaultOptions returns a four-column grid.
func DefaultOptions() Options {
	return Options{
		ColumnsPerRow: 4,
		ColumnWidth:   250,
		RowHeight:     100,
		OriginX:       220,
		OriginY:       100,
		NodeWidth:     180,
		NodeHeight:    60,
	}
}

// SortPhases returns a copy of phases ordered by Order. Phases sharing an
// Order keep their relative input order.
func SortPhases(phases []domain.ProcessPhase) []domain.ProcessPhase {
	sorted := make([]domain.ProcessPhase, len(phases))
	copy(sorted, phases)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})
	return sorted
}

// Layout places phases, already in display order, on a grid that wraps
// after ColumnsPerRow nodes, and links each phase to the next one. Edges
// cross row boundaries freely, so the result is always a simple path.
func Layout(phases []domain.ProcessPhase, opts Options) domain.Diagram {
	perRow := opts.ColumnsPerRow
	if perRow < 1 {
		perRow = 1
	}

	diagram := domain.Diagram{
		Nodes: make([]domain.LayoutNode, 0, len(phases)),
		Edges: make([]domain.LayoutEdge, 0, max(len(phases)-1, 0)),
	}

	col, row := 0, 0
	for i, p := range phases {
		diagram.Nodes = append(diagram.Nodes, domain.LayoutNode{
			ID:       domain.NodeID(p.ID),
			PhaseID:  p.ID,
			Label:    p.Description,
			Column:   col,
			Row:      row,
			X:        opts.OriginX + float64(col)*opts.ColumnWidth,
			Y:        opts.OriginY + float64(row)*opts.RowHeight,
			Width:    opts.NodeWidth,
			Height:   opts.NodeHeight,
			Duration: p.Duration,
			Active:   p.Active,
		})

		// This phase filled the last slot of its row.
		if (i+1)%perRow == 0 {
			col = 0
			row++
		} else {
			col++
		}

		if i > 0 {
			prev := phases[i-1]
			diagram.Edges = append(diagram.Edges, domain.LayoutEdge{
				ID:          domain.EdgeID(prev.ID, p.ID),
				Source:      domain.NodeID(prev.ID),
				Target:      domain.NodeID(p.ID),
				FromPhaseID: prev.ID,
				ToPhaseID:   p.ID,
			})
		}
	}
	return diagram
}

// Rows returns the number of grid rows a diagram occupies.
func Rows(d domain.Diagram) int {
	rows := 0
	for _, n := range d.Nodes {
		if n.Row+1 > rows {
			rows = n.Row + 1
		}
	}
	return rows
}
