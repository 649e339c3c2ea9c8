package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, https://catppuccin.com/palette
const (
	colorRed      lipgloss.Color = "#f38ba8"
	colorMaroon   lipgloss.Color = "#eba0ac"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
)

const (
	colorAccent  = colorBlue
	colorFocus   = colorLavender
	colorDanger  = colorRed
	colorSuccess = colorGreen
	colorMuted   = colorOverlay0
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	subtitleStyle = lipgloss.NewStyle().Foreground(colorSubtext0)
	indexStyle    = lipgloss.NewStyle().Foreground(colorSubtext0).Bold(true).Width(4).Align(lipgloss.Right)

	inputBoxStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSurface1).Padding(0, 1)
	inputBoxFocusedStyle = inputBoxStyle.BorderForeground(colorFocus)

	removeStyle         = lipgloss.NewStyle().Foreground(colorDanger).Padding(0, 1)
	removeFocusedStyle  = removeStyle.Bold(true).Foreground(colorMaroon)
	removeDisabledStyle = lipgloss.NewStyle().Foreground(colorSurface1).Padding(0, 1)

	buttonStyle        = lipgloss.NewStyle().Foreground(colorAccent).Background(colorSurface0).Padding(0, 2)
	buttonFocusedStyle = buttonStyle.Bold(true).Foreground(colorBase).Background(colorFocus)
	primaryStyle       = lipgloss.NewStyle().Bold(true).Foreground(colorBase).Background(colorAccent).Padding(0, 2)
	primaryFocused     = primaryStyle.Background(colorFocus)

	dividerStyle     = lipgloss.NewStyle().Foreground(colorSurface1)
	resultBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorAccent).Padding(0, 2).Align(lipgloss.Center)
	resultLabelStyle = lipgloss.NewStyle().Foreground(colorSubtext0)
	resultValueStyle = lipgloss.NewStyle().Bold(true).Foreground(colorSuccess)

	statusStyle = lipgloss.NewStyle().Foreground(colorMaroon)
	footerStyle = lipgloss.NewStyle().Foreground(colorMuted)
	frameStyle  = lipgloss.NewStyle().Padding(1, 2)
)
