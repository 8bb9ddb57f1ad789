// Package components provides reusable UI components and styles for the board.
package components

import (
	"charm.land/lipgloss/v2"

	"github.com/mgolovko/tsekh/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// ColumnStyle defines the appearance of board columns
	ColumnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Subtle)).
			Padding(0, 1)

	// SelectedColumnStyle highlights the column holding the selection
	SelectedColumnStyle = ColumnStyle.
				BorderForeground(lipgloss.Color(theme.SelectedBorder))

	// TitleStyle defines the appearance of column headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Highlight))

	// CardStyle defines the appearance of individual order cards
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(theme.Subtle)).
			Background(lipgloss.Color(theme.CardBg))

	// SelectedCardStyle highlights the selected or dragged card
	SelectedCardStyle = CardStyle.
				BorderForeground(lipgloss.Color(theme.SelectedBorder))

	// OverdueStyle marks deadlines in the past
	OverdueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Overdue))

	// FormBoxStyle defines the base style for card forms
	FormBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Highlight)).
			Padding(1, 2)

	// CreateBoxStyle defines the base style for creation dialogs (green border)
	CreateBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Create)).
			Padding(1, 2)

	// DeleteConfirmBoxStyle defines the base style for deletion confirmations (red border)
	DeleteConfirmBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(theme.Overdue)).
				Padding(1, 2)

	// HelpBoxStyle defines the base style for the help screen
	HelpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Highlight)).
			Padding(0, 1)

	// IndicatorStyle defines the appearance of the edge scroll indicators
	IndicatorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Highlight)).
			Background(lipgloss.Color(theme.CardBg)).
			Padding(0, 1)

	// SubtleStyle is shared by hints and secondary text
	SubtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle))
)
