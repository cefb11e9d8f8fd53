package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary = lipgloss.Color("#8B5CF6") // Vivid Purple
	Accent  = lipgloss.Color("#F97316") // Orange
	Success = lipgloss.Color("#22C55E") // Green
	Error   = lipgloss.Color("#F43F5E") // Rose
	TextDim = lipgloss.Color("#94A3B8") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Diff lines
var (
	DiffMatch = lipgloss.NewStyle().
			Foreground(TextDim)

	DiffAddition = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	DiffDeletion = lipgloss.NewStyle().
			Foreground(Error)
)

// Status
var (
	Streak = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	Celebrate = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)
)
