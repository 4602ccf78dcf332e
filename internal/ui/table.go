package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// TableColumn defines a table column with name and width.
type TableColumn struct {
	Title string
	Width int
}

// TableStyles returns the header and cell styles shared by every table.
// Every cell gets one column of right padding so neighbors never touch.
func TableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		Padding(0, 1, 0, 0).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		BorderBottom(true).
		Bold(true).
		Foreground(ColorPrimary)
	s.Cell = s.Cell.
		Padding(0, 1, 0, 0).
		Foreground(ColorPrimary)
	// Unfocused tables still style the cursor row; keep it plain.
	s.Selected = lipgloss.NewStyle()
	return s
}

// NewTable creates a non-interactive Bubbles table sized to its rows.
func NewTable(columns []TableColumn, rows []table.Row) table.Model {
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.Column{
			Title: c.Title,
			Width: c.Width,
		}
	}

	styles := TableStyles()
	// Height includes the header and its bottom border.
	headerHeight := lipgloss.Height(styles.Header.Render(" "))

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithStyles(styles),
		table.WithHeight(len(rows)+headerHeight),
	)
	return t
}

// RenderTable renders rows as a plain table string.
func RenderTable(columns []TableColumn, rows [][]string) string {
	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row(row)
	}

	t := NewTable(columns, tableRows)
	return t.View()
}
