package main

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	primaryColor = lipgloss.Color("#7D56F4")
	subtleColor  = lipgloss.Color("#6B6B6B")
	successColor = lipgloss.Color("#04B575")
	warningColor = lipgloss.Color("#FFB454")
	dangerColor  = lipgloss.Color("#FF5F87")
	textColor    = lipgloss.Color("#FAFAFA")
)

// Styles
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor).
			Background(primaryColor).
			Padding(0, 1)

	headerInfoStyle = lipgloss.NewStyle().
			Foreground(subtleColor).
			Padding(0, 1)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(subtleColor).
			Padding(0, 1)

	paneTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	bannerFreeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(successColor)

	bannerLowStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(warningColor)

	bannerFullStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(dangerColor)

	barFilledStyle = lipgloss.NewStyle().
			Foreground(primaryColor)

	barEmptyStyle = lipgloss.NewStyle().
			Foreground(subtleColor)

	notBuiltStyle = lipgloss.NewStyle().
			Foreground(subtleColor).
			Italic(true)

	eventTimeStyle = lipgloss.NewStyle().
			Foreground(subtleColor)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(subtleColor)

	statusMsgStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	autoOnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(successColor)

	helpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2)

	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	helpKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(textColor)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(dangerColor).
			Padding(1, 2)
)

// truncate shortens a string to max characters, adding ellipsis if needed
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
