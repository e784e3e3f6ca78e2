// Package styles defines the visual styling for the application.
package styles

import "github.com/charmbracelet/lipgloss"

// Color definitions for the bikeshare theme.
var (
	// Primary colors
	Primary   = lipgloss.Color("39")  // Blue
	Secondary = lipgloss.Color("42")  // Green
	Subtle    = lipgloss.Color("240") // Gray

	// Status colors
	Success = lipgloss.Color("42")  // Green
	Error   = lipgloss.Color("196") // Red
	Warning = lipgloss.Color("220") // Yellow
	Info    = lipgloss.Color("39")  // Blue

	// Text colors
	TextPrimary   = lipgloss.Color("252")
	TextSecondary = lipgloss.Color("245")
	TextMuted     = lipgloss.Color("240")
)

// PieColors are cycled through for pie chart slices and legend entries.
var PieColors = []lipgloss.Color{
	lipgloss.Color("39"),  // Blue
	lipgloss.Color("208"), // Orange
	lipgloss.Color("42"),  // Green
	lipgloss.Color("205"), // Pink
	lipgloss.Color("220"), // Yellow
	lipgloss.Color("63"),  // Purple
}

// TitleStyle is used for main headings.
var TitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(Primary).
	MarginBottom(1)

// SubTitleStyle is used for section headings.
var SubTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(Secondary).
	MarginBottom(1)

// CardStyle creates a bordered card container.
var CardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Subtle).
	Padding(1, 2).
	MarginBottom(1)

// CardTitleStyle styles card headers.
var CardTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(Primary).
	MarginBottom(1)

// DocStyle provides consistent document margins.
var DocStyle = lipgloss.NewStyle().
	Margin(1, 2).
	Padding(0, 1)

// HelpStyle is used for hint lines and muted labels.
var HelpStyle = lipgloss.NewStyle().
	Foreground(TextMuted)

// HelpPanelStyle frames the help overlay.
var HelpPanelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Primary).
	Padding(1, 2)

// ToastStyle for floating notifications.
var ToastStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Primary).
	Padding(0, 1).
	MarginBottom(1)

// FocusedStyle is used for the focused selector row.
var FocusedStyle = lipgloss.NewStyle().
	Foreground(Primary).
	Bold(true)

// BlurredStyle is used for unfocused selector rows.
var BlurredStyle = lipgloss.NewStyle().
	Foreground(TextMuted)

// WarningStyle renders warning messages.
var WarningStyle = lipgloss.NewStyle().
	Foreground(Warning)

// InfoStyle renders informational messages.
var InfoStyle = lipgloss.NewStyle().
	Foreground(Info)

// CenterBoth places content in the center of a width x height box.
func CenterBoth(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
