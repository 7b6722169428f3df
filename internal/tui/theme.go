package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, https://catppuccin.com/palette
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

const (
	colorAccent  = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
	colorInfo    = colorTeal
	colorMuted   = colorOverlay0
)

var (
	headerStyle = lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorAccent).
			Bold(true)
	titleStyle    = lipgloss.NewStyle().Foreground(colorText).Bold(true).Underline(true)
	textStyle     = lipgloss.NewStyle().Foreground(colorText)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	cursorStyle   = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
	priceStyle    = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	ratingStyle   = lipgloss.NewStyle().Foreground(colorWarning)
	okBadgeStyle  = lipgloss.NewStyle().Foreground(colorSuccess)
	offBadgeStyle = lipgloss.NewStyle().Foreground(colorError)
	bannerStyle   = lipgloss.NewStyle().Foreground(colorInfo)
	hintStyle     = lipgloss.NewStyle().Foreground(colorWarning).Italic(true)
	doneStyle     = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	footerStyle   = lipgloss.NewStyle().Background(colorMantle)
	keyStyle      = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorMuted)
	alertStyle    = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	glyphStyle    = lipgloss.NewStyle().Foreground(colorBlue)
	inputStyle    = lipgloss.NewStyle().Background(colorSurface0)
	labelStyle    = lipgloss.NewStyle().Foreground(colorSubtext0)
)
