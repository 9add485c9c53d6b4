package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	ColorPrimary   = lipgloss.Color("205") // Pink
	ColorSecondary = lipgloss.Color("241") // Gray
	ColorSuccess   = lipgloss.Color("42")  // Green
	ColorError     = lipgloss.Color("160") // Red
	ColorWarning   = lipgloss.Color("214") // Orange
	ColorText      = lipgloss.Color("252") // White/Gray

	// Base Styles
	StyleTitle    = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
	StyleSubtle   = lipgloss.NewStyle().Foreground(ColorSecondary)
	StylePrimary  = lipgloss.NewStyle().Foreground(ColorPrimary)
	StyleSuccess  = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError    = lipgloss.NewStyle().Foreground(ColorError)
	StyleWarning  = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleDone     = lipgloss.NewStyle().Foreground(ColorSecondary).Strikethrough(true)
	StyleSelected = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)

	// Preview editor box
	StylePreviewBox = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorSecondary).
			Padding(0, 1)
)

// PriorityStyle returns the display style for a priority label.
func PriorityStyle(priority string) lipgloss.Style {
	switch priority {
	case "High":
		return StyleError
	case "Low":
		return StyleSubtle
	default:
		return StyleWarning
	}
}
