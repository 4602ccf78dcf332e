package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/ptop/internal/errors"
	"github.com/rileyhilliard/ptop/internal/ui"
	"github.com/rileyhilliard/ptop/internal/util"
)

// GraphTitle heads the memory panel.
const GraphTitle = "Memory Usage Over Time"

const usageBarWidth = 20

// View turns the frame into the styled dashboard body: the process table
// panel, then the memory graph panel with its summary line. width is the
// terminal width; 0 means unknown.
func (f Frame) View(width int) string {
	sections := []string{
		f.renderTable(),
		f.renderGraph(width),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (f Frame) renderTable() string {
	columns := make([]ui.TableColumn, len(ProcessColumns))
	for i, col := range ProcessColumns {
		columns[i] = ui.TableColumn{Title: col.Title, Width: col.Width}
	}

	body := ui.RenderTable(columns, f.Table.Rows)
	return PanelStyle.Render(body + "\n" + f.renderRowIndicator())
}

// renderRowIndicator shows which slice of the process list is on screen.
func (f Frame) renderRowIndicator() string {
	if f.Table.Total == 0 {
		return DimStyle.Render("no processes")
	}
	first := f.Table.Offset + 1
	last := f.Table.Offset + len(f.Table.Rows)
	return DimStyle.Render(fmt.Sprintf("rows %d-%d of %d", first, last, f.Table.Total))
}

func (f Frame) renderGraph(width int) string {
	title := LabelStyle.Render(GraphTitle)

	if f.Graph.Empty {
		return PanelStyle.Render(title + "\n\n" + DimStyle.Render(f.Graph.Placeholder))
	}

	graphWidth := len(f.Graph.Bars)
	// Panel border and padding take four columns.
	if width > 4 && graphWidth > width-4 {
		graphWidth = width - 4
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(RenderBarGraph(f.Graph.Bars, graphWidth, f.Graph.Height))
	b.WriteString("\n")
	b.WriteString(f.renderSummary())

	return PanelStyle.Render(b.String())
}

func (f Frame) renderSummary() string {
	s := f.Graph.Summary
	usageStyle := TierStyle(s.Tier)

	parts := []string{
		LabelStyle.Render("Total: ") + ValueStyle.Render(formatMB(s.TotalKB)),
		LabelStyle.Render("Peak: ") + ValueStyle.Render(formatMB(s.PeakKB)),
		LabelStyle.Render("Current: ") + ValueStyle.Render(formatMB(s.CurrentKB)),
		LabelStyle.Render("Usage: ") + usageStyle.Render(fmt.Sprintf("%d%%", s.UsagePercent)),
		RenderUsageBar(usageBarWidth, s.Ratio, s.Tier),
	}
	return strings.Join(parts, "  ")
}

// formatMB formats a kB count as whole megabytes.
func formatMB(kb int64) string {
	return fmt.Sprintf("%d MB", kb/1024)
}

// renderDashboard renders the complete dashboard view.
func (m Model) renderDashboard() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(m.Frame().View(m.width))

	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader renders the title with the process count and data age.
func (m Model) renderHeader() string {
	title := TitleStyle.Render("ptop")

	var updateText string
	switch {
	case m.lastUpdate.IsZero():
		updateText = "collecting..."
	default:
		updateText = "updated " + m.lastUpdate.Format("15:04:05")
	}

	count := util.CountOf(len(m.procs), "process", "processes")
	stats := LabelStyle.Render(fmt.Sprintf(" | %s | %s", count, updateText))
	if m.collectErr == nil {
		return title + stats
	}

	failed := ErrorStyle.Render(ui.SymbolFail + " " + errors.MessageOf(m.collectErr))
	return title + stats + LabelStyle.Render(" | ") + failed
}

// renderFooter renders the keyboard help footer.
func (m Model) renderFooter() string {
	return FooterStyle.Render(m.help.View(keys))
}
