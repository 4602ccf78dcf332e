package monitor

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samples(cpus ...float64) []ProcessSample {
	out := make([]ProcessSample, len(cpus))
	for i, c := range cpus {
		out[i] = ProcessSample{PID: i + 1, Name: "proc", State: "S", Threads: 1, RSSKB: 1024, CPUPercent: c}
	}
	return out
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		ratio  float64
		expect Tier
	}{
		{0, TierLow},
		{0.49, TierLow},
		{0.50, TierMedium},
		{0.74, TierMedium},
		{0.75, TierHigh},
		{1, TierHigh},
	}

	for _, tt := range tests {
		t.Run(tt.expect.String(), func(t *testing.T) {
			assert.Equal(t, tt.expect, TierFor(tt.ratio))
		})
	}
}

func TestSortByCPU_Stable(t *testing.T) {
	procs := []ProcessSample{
		{PID: 1, CPUPercent: 0},
		{PID: 2, CPUPercent: 5},
		{PID: 3, CPUPercent: 0},
		{PID: 4, CPUPercent: 5},
		{PID: 5, CPUPercent: 30},
	}

	sorted := SortByCPU(procs)

	pids := make([]int, len(sorted))
	for i, p := range sorted {
		pids[i] = p.PID
	}
	assert.Equal(t, []int{5, 2, 4, 1, 3}, pids)

	// Input order is untouched.
	assert.Equal(t, 1, procs[0].PID)
}

func TestFitCell(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		width  int
		expect string
	}{
		{"pads", "ab", 5, "ab   "},
		{"exact", "abcde", 5, "abcde"},
		{"truncates", "abcdefgh", 5, "abcde"},
		{"wide runes", "日本語", 4, "日本"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FitCell(tt.in, tt.width)
			assert.Equal(t, tt.expect, got)
			assert.Equal(t, tt.width, runewidth.StringWidth(got))
		})
	}
}

func TestBuildTable_Row(t *testing.T) {
	procs := []ProcessSample{{
		PID:        1234,
		Name:       "a-very-long-process-name-that-overflows",
		State:      "R",
		Threads:    8,
		RSSKB:      5120,
		CPUPercent: 12.345,
	}}

	view := BuildTable(procs, ScrollState{}, DefaultPageSize)

	require.Len(t, view.Rows, 1)
	row := view.Rows[0]
	require.Len(t, row, len(ProcessColumns))
	for i, col := range ProcessColumns {
		assert.Equal(t, col.Width, runewidth.StringWidth(row[i]), col.Title)
		assert.Equal(t, col.Width, runewidth.StringWidth(view.Header[i]), col.Title)
	}

	assert.Equal(t, "1234", strings.TrimSpace(row[0]))
	assert.Equal(t, "a-very-long-process-name-that-", row[1])
	assert.Equal(t, "R", strings.TrimSpace(row[2]))
	assert.Equal(t, "8", strings.TrimSpace(row[3]))
	assert.Equal(t, "5120 kB", strings.TrimSpace(row[4]))
	assert.Equal(t, "12.3", strings.TrimSpace(row[5]))
}

func TestRender_FewerRowsThanPage(t *testing.T) {
	frame := Render(samples(1, 2, 3, 4, 5), nil, 0, ScrollState{}, DefaultRenderOptions())

	assert.Len(t, frame.Table.Rows, 5)
	assert.Equal(t, 5, frame.Table.Total)
	assert.Equal(t, 0, frame.Table.Offset)
	assert.Equal(t, "5.0", strings.TrimSpace(frame.Table.Rows[0][5]))
}

func TestRender_Paging(t *testing.T) {
	cpus := make([]float64, 50)
	for i := range cpus {
		cpus[i] = float64(50 - i)
	}

	frame := Render(samples(cpus...), nil, 0, ScrollState{Offset: 10}, DefaultRenderOptions())

	assert.Len(t, frame.Table.Rows, DefaultPageSize)
	assert.Equal(t, 10, frame.Table.Offset)
	assert.Equal(t, "40.0", strings.TrimSpace(frame.Table.Rows[0][5]))
}

func TestRender_ClampsScroll(t *testing.T) {
	frame := Render(samples(1, 2, 3), nil, 0, ScrollState{Offset: 40}, DefaultRenderOptions())

	assert.Equal(t, 0, frame.Scroll.Offset)
	assert.Equal(t, 0, frame.Table.Offset)
	assert.Len(t, frame.Table.Rows, 3)
}

func TestRender_DoesNotMutateInputs(t *testing.T) {
	procs := samples(1, 9, 5)
	history := []int64{10, 20}

	Render(procs, history, 100, ScrollState{Offset: 7}, DefaultRenderOptions())

	assert.Equal(t, 1.0, procs[0].CPUPercent)
	assert.Equal(t, []int64{10, 20}, history)
}

func TestBuildGraph_Empty(t *testing.T) {
	graph := BuildGraph(nil, 0, DefaultHistorySize, DefaultGraphHeight)

	assert.True(t, graph.Empty)
	assert.Equal(t, EmptyGraphText, graph.Placeholder)
	assert.Empty(t, graph.Bars)
}

func TestBuildGraph_HighTier(t *testing.T) {
	graph := BuildGraph([]int64{750}, 1000, DefaultHistorySize, DefaultGraphHeight)

	require.Len(t, graph.Bars, 1)
	bar := graph.Bars[0]
	assert.InDelta(t, 0.75, bar.Ratio, 1e-9)
	assert.Equal(t, TierHigh, bar.Tier)
	assert.Equal(t, 90, bar.Level) // 0.75 * 15 rows * 8

	assert.Equal(t, MemorySummary{
		TotalKB:      1000,
		PeakKB:       750,
		CurrentKB:    750,
		UsagePercent: 75,
		Ratio:        0.75,
		Tier:         TierHigh,
	}, graph.Summary)
}

func TestBuildGraph_SummaryTierUsesUnroundedRatio(t *testing.T) {
	// 74.6% rounds to 75 for display but is still below the high tier.
	graph := BuildGraph([]int64{746}, 1000, DefaultHistorySize, DefaultGraphHeight)

	require.Len(t, graph.Bars, 1)
	assert.Equal(t, TierMedium, graph.Bars[0].Tier)
	assert.Equal(t, 75, graph.Summary.UsagePercent)
	assert.InDelta(t, 0.746, graph.Summary.Ratio, 1e-9)
	assert.Equal(t, graph.Bars[0].Tier, graph.Summary.Tier)
}

func TestBuildGraph_Levels(t *testing.T) {
	graph := BuildGraph([]int64{0, 100, 500, 1000, 2000}, 1000, DefaultHistorySize, 2)

	levels := make([]int, len(graph.Bars))
	tiers := make([]Tier, len(graph.Bars))
	for i, b := range graph.Bars {
		levels[i] = b.Level
		tiers[i] = b.Tier
	}

	// Zero draws nothing, any other sample gets at least one sub-unit, capped at height*8.
	assert.Equal(t, []int{0, 1, 8, 16, 16}, levels)
	assert.Equal(t, []Tier{TierLow, TierLow, TierMedium, TierHigh, TierHigh}, tiers)
}

func TestBuildGraph_TinySampleStaysVisible(t *testing.T) {
	graph := BuildGraph([]int64{1}, 1000000, DefaultHistorySize, 1)

	require.Len(t, graph.Bars, 1)
	assert.Equal(t, 1, graph.Bars[0].Level)
}

func TestBuildGraph_UnknownTotalUsesPeak(t *testing.T) {
	graph := BuildGraph([]int64{200, 400, 100}, 0, DefaultHistorySize, DefaultGraphHeight)

	require.Len(t, graph.Bars, 3)
	assert.InDelta(t, 0.5, graph.Bars[0].Ratio, 1e-9)
	assert.InDelta(t, 1.0, graph.Bars[1].Ratio, 1e-9)
	assert.Equal(t, 25, graph.Summary.UsagePercent)
	assert.Equal(t, int64(400), graph.Summary.PeakKB)
}

func TestBuildGraph_AllZero(t *testing.T) {
	graph := BuildGraph([]int64{0, 0}, 0, DefaultHistorySize, DefaultGraphHeight)

	require.Len(t, graph.Bars, 2)
	assert.Zero(t, graph.Bars[0].Ratio)
	assert.Zero(t, graph.Bars[0].Level)
	assert.Zero(t, graph.Summary.UsagePercent)
	assert.Equal(t, TierLow, graph.Summary.Tier)
}

func TestBuildGraph_KeepsNewestWhenWider(t *testing.T) {
	graph := BuildGraph([]int64{1, 2, 3, 4}, 4, 2, 1)

	require.Len(t, graph.Bars, 2)
	assert.InDelta(t, 0.75, graph.Bars[0].Ratio, 1e-9)
	assert.InDelta(t, 1.0, graph.Bars[1].Ratio, 1e-9)
}

func TestDefaultRenderOptions(t *testing.T) {
	opts := DefaultRenderOptions()
	assert.Equal(t, 20, opts.PageSize)
	assert.Equal(t, 80, opts.GraphWidth)
	assert.Equal(t, 15, opts.GraphHeight)

	assert.Equal(t, opts, RenderOptions{}.withDefaults())
}
