package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette. Magenta marks the app and borders, cyan the section titles,
// green anything running.
var (
	colorPrimary   = lipgloss.Color("#C678DD")
	colorSecondary = lipgloss.Color("#56B6C2")
	colorAccent    = lipgloss.Color("#E5C07B")
	colorMuted     = lipgloss.Color("#5C6370")
	colorSuccess   = lipgloss.Color("#98C379")
	colorWarning   = lipgloss.Color("#D19A66")
	colorError     = lipgloss.Color("#E06C75")
	colorFg        = lipgloss.Color("#ABB2BF")
	colorSubtle    = lipgloss.Color("#3E4451")
	colorHighlight = lipgloss.Color("#61AFEF")
	colorInk       = lipgloss.Color("#282C34")
)

var (
	tabBase = lipgloss.NewStyle().Padding(0, 1)

	activeTabStyle   = tabBase.Bold(true).Foreground(colorInk).Background(colorPrimary)
	focusedTabStyle  = tabBase.Bold(true).Underline(true).Foreground(colorPrimary)
	inactiveTabStyle = tabBase.Foreground(colorMuted)

	panelBase = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

	panelStyle       = panelBase.BorderForeground(colorSubtle)
	activePanelStyle = panelBase.BorderForeground(colorPrimary)

	timerRunningStyle = lipgloss.NewStyle().Bold(true).Foreground(colorSuccess)

	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorFg)
	sectionStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorSecondary)
	accentStyle    = lipgloss.NewStyle().Foreground(colorAccent)
	successStyle   = lipgloss.NewStyle().Foreground(colorSuccess)
	warningStyle   = lipgloss.NewStyle().Foreground(colorWarning)
	errorStyle     = lipgloss.NewStyle().Foreground(colorError)
	mutedStyle     = lipgloss.NewStyle().Foreground(colorMuted)
	highlightStyle = lipgloss.NewStyle().Foreground(colorHighlight)

	headerStyle = lipgloss.NewStyle().Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1)

	selectedItemStyle = lipgloss.NewStyle().Bold(true).Foreground(colorHighlight)
	normalItemStyle   = lipgloss.NewStyle().Foreground(colorFg)
)

// stateStyle colors a tickr state label.
func stateStyle(label string) lipgloss.Style {
	switch label {
	case "Running":
		return successStyle.Bold(true)
	case "Ended":
		return mutedStyle
	}
	return warningStyle
}

// statusStyle shows store failures in red and everything else as a notice.
func statusStyle(msg string) lipgloss.Style {
	if strings.HasPrefix(msg, "Failed") || strings.Contains(msg, "unavailable") {
		return errorStyle
	}
	return warningStyle
}
