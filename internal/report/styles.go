package report

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#FF6B6B") // Red - titles, ron
	ColorSecondary = lipgloss.Color("#4ecdc4") // Teal - round labels
	ColorAccent    = lipgloss.Color("#ffe66d") // Yellow - tiles
	ColorMuted     = lipgloss.Color("#666666") // Gray - provenance, help text
	ColorSuccess   = lipgloss.Color("#a8e6cf") // Green - tsumo, han/fu
	ColorText      = lipgloss.Color("#f1faee") // Light text
	ColorLabel     = lipgloss.Color("#a8dadc") // Label color
	ColorBg        = lipgloss.Color("#1a1a2e") // Dark background
	ColorBgAlt     = lipgloss.Color("#2d3436") // Alt background
	ColorBorder    = lipgloss.Color("#3d5a80") // Border color
)

// Title styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Background(ColorBg).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)
)

// Sample field styles
var (
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorLabel).
			Bold(true)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	TileStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	ScoreStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	TsumoStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	RonStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	SourceStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)
)

// Box styles
var (
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	SummaryStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)
)

// MethodStyle picks the style for a win method.
func MethodStyle(tsumo bool) lipgloss.Style {
	if tsumo {
		return TsumoStyle
	}
	return RonStyle
}
