package monitor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// barBlocks are the partial-row glyphs for 8-level vertical resolution
// (lowest to highest). A fully covered row always uses the last entry.
var barBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// clampInt clamps an integer to a range [0, maxVal].
func clampInt(val, maxVal int) int {
	if val < 0 {
		return 0
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// barCell returns the glyph for one row of a column filled to level
// sub-units. Row 0 is the bottom row.
func barCell(level, row int) rune {
	filled := clampInt(level-row*SubdivisionFactor, SubdivisionFactor)
	if filled == 0 {
		return ' '
	}
	return barBlocks[filled-1]
}

// RenderBarGraph draws bars as height rows of block glyphs, oldest sample on
// the left. Each column is colored by its tier. Graphs narrower than width
// are right-aligned so the newest sample always sits at the right edge.
func RenderBarGraph(bars []BarColumn, width, height int) string {
	if len(bars) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	if len(bars) > width {
		bars = bars[len(bars)-width:]
	}
	pad := strings.Repeat(" ", width-len(bars))

	lines := make([]string, height)
	for line := 0; line < height; line++ {
		row := height - 1 - line

		var b strings.Builder
		b.WriteString(pad)
		for _, bar := range bars {
			cell := barCell(bar.Level, row)
			if cell == ' ' {
				b.WriteRune(cell)
				continue
			}
			b.WriteString(TierStyle(bar.Tier).Render(string(cell)))
		}
		lines[line] = b.String()
	}

	return strings.Join(lines, "\n")
}

// RenderUsageBar renders a horizontal bar filled to ratio and colored by tier.
func RenderUsageBar(width int, ratio float64, tier Tier) string {
	if width < 1 {
		width = 1
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	filled := clampInt(int(ratio*float64(width)+0.5), width)
	fill := lipgloss.NewStyle().Foreground(TierColor(tier))

	return fill.Render(strings.Repeat("█", filled)) +
		DimStyle.Render(strings.Repeat("░", width-filled))
}
