package tui

import "charm.land/lipgloss/v2"

// Color palette. Calm, office-appropriate.
var (
	colPrimary = lipgloss.Color("#0EA5E9") // Sky
	colAccent  = lipgloss.Color("#F59E0B") // Amber
	colGood    = lipgloss.Color("#22C55E") // Green
	colBad     = lipgloss.Color("#F43F5E") // Rose
	colText    = lipgloss.Color("#F8FAFC") // White
	colDim     = lipgloss.Color("#94A3B8") // Slate
	colBorder  = lipgloss.Color("#334155") // Slate
)

var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colPrimary)

	styleBody = lipgloss.NewStyle().
			Foreground(colText)

	styleHint = lipgloss.NewStyle().
			Foreground(colDim).
			Italic(true)

	styleNotice = lipgloss.NewStyle().
			Foreground(colAccent)

	styleSelected = lipgloss.NewStyle().
			Foreground(colPrimary).
			Bold(true)

	styleScore = lipgloss.NewStyle().
			Foreground(colGood).
			Bold(true)

	styleError = lipgloss.NewStyle().
			Foreground(colBad).
			Bold(true)

	styleCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colBorder).
			Padding(1, 2)
)
