package monitor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/ptop/internal/ui"
)

// Dashboard color palette
const (
	ColorBorder = lipgloss.Color("#2A2A4A")

	// Memory tier colors
	ColorHealthy  = lipgloss.Color("#39FF14") // low
	ColorWarning  = lipgloss.Color("#FFAA00") // medium
	ColorCritical = lipgloss.Color("#FF0055") // high

	ColorTextPrimary   = lipgloss.Color("#FFFFFF")
	ColorTextSecondary = lipgloss.Color("#B4B4D0")
	ColorTextMuted     = lipgloss.Color("#6B6B8D")

	ColorAccent = lipgloss.Color("#FF2E97")
)

// Tier thresholds for memory ratios.
const (
	MediumTierRatio = 0.50
	HighTierRatio   = 0.75
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ui.ColorError).
			Bold(true)
)

// TierColor returns the bar color for a memory tier.
func TierColor(t Tier) lipgloss.Color {
	switch t {
	case TierHigh:
		return ColorCritical
	case TierMedium:
		return ColorWarning
	default:
		return ColorHealthy
	}
}

// TierStyle returns a foreground style for a memory tier.
func TierStyle(t Tier) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(TierColor(t))
}
