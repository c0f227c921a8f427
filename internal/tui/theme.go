package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette, true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
)

// ---------------------------------------------------------------------------
// Semantic color aliases
// ---------------------------------------------------------------------------

const (
	colorBrand      = colorPink
	colorDropTarget = colorBlue
	colorCursor     = colorSurface2
	colorPreview    = colorLavender
	colorSuccess    = colorGreen
	colorError      = colorRed
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)
	nameStyle     = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	locationStyle = lipgloss.NewStyle().Foreground(colorSubtext0)
	statusStyle   = lipgloss.NewStyle().Foreground(colorSuccess)
	errorStyle    = lipgloss.NewStyle().Foreground(colorError)
	promptStyle   = lipgloss.NewStyle().Foreground(colorLavender)

	cardStyle = lipgloss.NewStyle().Padding(0, 1)

	// Reduced-opacity stand-in for a card that is being dragged.
	draggingStyle = lipgloss.NewStyle().Faint(true).Foreground(colorOverlay0).Background(colorSurface0)

	previewStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPreview).
			Background(colorBase).
			Padding(0, 1)
)
