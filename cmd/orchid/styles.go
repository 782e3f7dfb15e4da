package main

import "github.com/charmbracelet/lipgloss"

// Styles for CLI output, designed for dark terminal backgrounds.
var (
	// errorStyle is for error messages and failure indicators.
	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#EF4444"))

	// successStyle is for success messages and positive indicators.
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981"))

	// mutedStyle is for secondary text and de-emphasized content.
	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)
