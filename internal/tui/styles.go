package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#7aa2f7")
	colorMuted   = lipgloss.Color("#565f89")
	colorFg      = lipgloss.Color("#c0caf5")
	colorBgLight = lipgloss.Color("#24283b")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	labelStyle   = lipgloss.NewStyle().Foreground(colorFg).Width(18)
	focusedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Width(18)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	tabStyle     = lipgloss.NewStyle().Padding(0, 1).Foreground(colorFg).Background(colorBgLight)
	activeTab    = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#ffffff"))
	previewStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorMuted).Padding(0, 1)
)
