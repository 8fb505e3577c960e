package formatter

import (
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderBar renders value as a share of max, such as ████░░░░. Values are
// clamped to [0, max]; a non-positive max yields an empty track.
func RenderBar(value, max float64, width int) string {
	if width < 2 {
		width = 2
	}
	pct := 0.0
	if max > 0 {
		pct = value / max
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	filled := int(pct*float64(width) + 0.5)
	if pct > 0 && filled == 0 {
		filled = 1
	}
	if filled > width {
		filled = width
	}

	return StyleBlue.Render(strings.Repeat(filledBlock, filled)) +
		StyleDim.Render(strings.Repeat(emptyBlock, width-filled))
}
