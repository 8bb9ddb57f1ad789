package components

import (
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/mgolovko/tsekh/internal/tui/theme"
)

// StatusBarProps carries the dynamic parts of the status bar.
type StatusBarProps struct {
	Width      int
	Connection string
	LastSync   time.Time
}

// RenderStatusBar renders a status bar with left and right aligned text.
// Left side: connection state and last sync time.
// Right side: "press ? for help"
func RenderStatusBar(props StatusBarProps) string {
	leftText := "Tsekh - " + props.Connection
	if !props.LastSync.IsZero() {
		leftText += " - synced " + props.LastSync.Format("15:04:05")
	}
	rightText := "press ? for help"

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	leftRendered := style.Render(leftText)
	rightRendered := style.Render(rightText)

	leftWidth := lipgloss.Width(leftRendered)
	rightWidth := lipgloss.Width(rightRendered)
	gapWidth := props.Width - leftWidth - rightWidth
	if gapWidth < 1 {
		gapWidth = 1
	}

	gap := strings.Repeat(" ", gapWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, gap, rightRendered)
}
