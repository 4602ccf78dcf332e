package monitor

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/mattn/go-runewidth"
)

// Rendering defaults.
const (
	DefaultPageSize    = 20
	DefaultGraphHeight = 15

	// SubdivisionFactor is the number of bar levels per graph row, one per
	// eighth-block glyph.
	SubdivisionFactor = 8

	// EmptyGraphText is shown in place of the graph before any sample exists.
	EmptyGraphText = "No memory data yet."
)

// Column is one process table column.
type Column struct {
	Title string
	Width int
}

// ProcessColumns are the fixed table columns.
var ProcessColumns = []Column{
	{Title: "PID", Width: 7},
	{Title: "Name", Width: 30},
	{Title: "State", Width: 8},
	{Title: "Threads", Width: 8},
	{Title: "Mem", Width: 10},
	{Title: "CPU%", Width: 7},
}

// RenderOptions sizes the frame.
type RenderOptions struct {
	PageSize    int
	GraphWidth  int // most recent samples drawn
	GraphHeight int // rows
}

// DefaultRenderOptions returns the standard 20-row table and 80x15 graph.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		PageSize:    DefaultPageSize,
		GraphWidth:  DefaultHistorySize,
		GraphHeight: DefaultGraphHeight,
	}
}

// Tier classifies a memory ratio for coloring.
type Tier int

const (
	TierLow Tier = iota
	TierMedium
	TierHigh
)

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case TierHigh:
		return "high"
	case TierMedium:
		return "medium"
	default:
		return "low"
	}
}

// TierFor maps a ratio in [0,1] to a tier.
func TierFor(ratio float64) Tier {
	switch {
	case ratio >= HighTierRatio:
		return TierHigh
	case ratio >= MediumTierRatio:
		return TierMedium
	default:
		return TierLow
	}
}

// TableView is the visible page of the process table.
type TableView struct {
	Header []string
	Rows   [][]string // at most PageSize, each cell fitted to its column width
	Offset int        // clamped offset of Rows[0]
	Total  int        // rows available before paging
}

// BarColumn is one sample in the memory graph.
type BarColumn struct {
	Ratio float64
	Level int // filled sub-units, 0..height*SubdivisionFactor
	Tier  Tier
}

// MemorySummary is the line under the graph.
type MemorySummary struct {
	TotalKB      int64
	PeakKB       int64
	CurrentKB    int64
	UsagePercent int     // rounded, for display only
	Ratio        float64 // unrounded current/denominator, clamped to [0,1]
	Tier         Tier    // tier of Ratio, same rule as the bars
}

// GraphView is the memory graph. When Empty is set only Placeholder is meaningful.
type GraphView struct {
	Empty       bool
	Placeholder string
	Bars        []BarColumn
	Height      int
	Summary     MemorySummary
}

// Frame is the full display description for one render pass.
type Frame struct {
	Table  TableView
	Graph  GraphView
	Scroll ScrollState
}

// Render builds a Frame from read-only inputs. It has no side effects:
// procs and history are not modified, and the clamped scroll state is
// returned in the frame rather than written back.
func Render(procs []ProcessSample, history []int64, totalKB int64, scroll ScrollState, opts RenderOptions) Frame {
	opts = opts.withDefaults()

	sorted := SortByCPU(procs)
	scroll = scroll.Clamp(len(sorted), opts.PageSize)

	return Frame{
		Table:  BuildTable(sorted, scroll, opts.PageSize),
		Graph:  BuildGraph(history, totalKB, opts.GraphWidth, opts.GraphHeight),
		Scroll: scroll,
	}
}

func (o RenderOptions) withDefaults() RenderOptions {
	if o.PageSize <= 0 {
		o.PageSize = DefaultPageSize
	}
	if o.GraphWidth <= 0 {
		o.GraphWidth = DefaultHistorySize
	}
	if o.GraphHeight <= 0 {
		o.GraphHeight = DefaultGraphHeight
	}
	return o
}

// SortByCPU returns a copy of procs ordered by CPUPercent descending.
// The sort is stable: equal percentages keep enumeration order, which keeps
// idle processes from shuffling between refreshes.
func SortByCPU(procs []ProcessSample) []ProcessSample {
	sorted := make([]ProcessSample, len(procs))
	copy(sorted, procs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CPUPercent > sorted[j].CPUPercent
	})
	return sorted
}

// BuildTable slices one page out of sorted starting at scroll.Offset.
// scroll must already be clamped for len(sorted).
func BuildTable(sorted []ProcessSample, scroll ScrollState, pageSize int) TableView {
	header := make([]string, len(ProcessColumns))
	for i, col := range ProcessColumns {
		header[i] = FitCell(col.Title, col.Width)
	}

	start := scroll.Offset
	end := start + pageSize
	if end > len(sorted) {
		end = len(sorted)
	}

	rows := make([][]string, 0, end-start)
	for _, p := range sorted[start:end] {
		rows = append(rows, formatRow(p))
	}

	return TableView{
		Header: header,
		Rows:   rows,
		Offset: start,
		Total:  len(sorted),
	}
}

func formatRow(p ProcessSample) []string {
	values := []string{
		strconv.Itoa(p.PID),
		p.Name,
		p.State,
		strconv.Itoa(p.Threads),
		formatKB(p.RSSKB),
		strconv.FormatFloat(p.CPUPercent, 'f', 1, 64),
	}
	for i, col := range ProcessColumns {
		values[i] = FitCell(values[i], col.Width)
	}
	return values
}

// FitCell truncates s to width display cells, or right-pads it with spaces.
func FitCell(s string, width int) string {
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "")
	}
	return runewidth.FillRight(s, width)
}

func formatKB(kb int64) string {
	return fmt.Sprintf("%d kB", kb)
}

// BuildGraph computes bar levels and the summary for the last width samples.
//
// The denominator is totalKB when known, otherwise the largest sample. Ratios
// are clamped to [0,1]. With an empty history no division happens at all and
// the view is the placeholder.
func BuildGraph(history []int64, totalKB int64, width, height int) GraphView {
	if len(history) == 0 {
		return GraphView{Empty: true, Placeholder: EmptyGraphText, Height: height}
	}

	peak := history[0]
	for _, v := range history {
		if v > peak {
			peak = v
		}
	}

	denom := totalKB
	if denom <= 0 {
		denom = peak
	}

	visible := history
	if len(visible) > width {
		visible = visible[len(visible)-width:]
	}

	maxLevel := height * SubdivisionFactor
	bars := make([]BarColumn, len(visible))
	for i, sample := range visible {
		ratio := memoryRatio(sample, denom)

		level := int(ratio * float64(maxLevel))
		// Any nonzero sample stays visible.
		if level < 1 && ratio > 0 {
			level = 1
		}
		if level > maxLevel {
			level = maxLevel
		}

		bars[i] = BarColumn{Ratio: ratio, Level: level, Tier: TierFor(ratio)}
	}

	current := history[len(history)-1]
	usage := 0
	if denom > 0 {
		usage = int(100*float64(current)/float64(denom) + 0.5)
	}
	currentRatio := memoryRatio(current, denom)

	return GraphView{
		Bars:   bars,
		Height: height,
		Summary: MemorySummary{
			TotalKB:      totalKB,
			PeakKB:       peak,
			CurrentKB:    current,
			UsagePercent: usage,
			Ratio:        currentRatio,
			Tier:         TierFor(currentRatio),
		},
	}
}

func memoryRatio(sample, denom int64) float64 {
	if denom <= 0 {
		return 0
	}
	ratio := float64(sample) / float64(denom)
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}
