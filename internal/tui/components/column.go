package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mgolovko/tsekh/internal/models"
	"github.com/mgolovko/tsekh/internal/tui/theme"
)

const (
	// ColumnWidth is the total rendered width of a column including borders
	ColumnWidth = 34
	// ColumnGap is the number of blank cells between adjacent columns
	ColumnGap = 1
	// ColumnFullWidth is the horizontal stride from one column to the next
	ColumnFullWidth = ColumnWidth + ColumnGap

	// columnOverhead is header + top indicator + borders and padding
	columnOverhead = 5
)

// ColumnProps carries everything needed to render one column.
type ColumnProps struct {
	Column *models.Column
	// Selected marks the column holding the keyboard selection
	Selected bool
	// SelectedCardIdx is the selected card index in this column, -1 if none
	SelectedCardIdx int
	// DropTarget marks the column a dragged card is hovering over
	DropTarget bool
	// Height is the fixed total height of the column box
	Height int
	// ScrollOffset is the index of the first visible card
	ScrollOffset int
	// Compact selects the condensed card rendering
	Compact bool
	// PrepaymentTotal is the sum of prepayments across the column's cards
	PrepaymentTotal float64
}

// RenderColumn renders a complete column with its header and cards
//
// Layout:
//
//	{Title} ({count}) {prepayment ₽}
//	▲ (if scrolled down)
//	{Card 1}
//	{Card 2}
//	...
//	▼ (if more cards below)
func RenderColumn(props ColumnProps) string {
	col := props.Column

	header := TitleStyle.Render(fmt.Sprintf("%s (%d)", col.Title, len(col.Cards)))
	if props.PrepaymentTotal > 0 {
		header += SubtleStyle.Render(fmt.Sprintf(" %.0f ₽", props.PrepaymentTotal))
	}
	content := header + "\n"

	cardHeight := CardHeight
	if props.Compact {
		cardHeight = CompactCardHeight
	}

	if len(col.Cards) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true).
			Padding(1, 0)
		content += emptyStyle.Render("No orders")
	} else {
		availableHeight := props.Height - columnOverhead
		maxVisibleCards := max(availableHeight/cardHeight, 1)

		indicatorStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Align(lipgloss.Center)

		// Always reserve space for the top indicator so cards don't jump
		// when the column starts scrolling.
		if props.ScrollOffset > 0 {
			content += indicatorStyle.Render("▲ more above") + "\n"
		} else {
			content += "\n"
		}

		endIdx := min(props.ScrollOffset+maxVisibleCards, len(col.Cards))
		startIdx := min(props.ScrollOffset, endIdx)
		for i, card := range col.Cards[startIdx:endIdx] {
			actualIdx := startIdx + i
			isSelected := props.Selected && actualIdx == props.SelectedCardIdx
			content += RenderCard(card, isSelected, props.Compact) + "\n"
		}

		if endIdx < len(col.Cards) {
			usedLines := 2 + (endIdx-startIdx)*cardHeight
			filler := props.Height - 3 - usedLines - 1
			if filler > 0 {
				content += strings.Repeat("\n", filler)
			}
			content += indicatorStyle.Render("▼ more below")
		}
	}

	style := ColumnStyle
	if props.Selected {
		style = SelectedColumnStyle
	}
	if props.DropTarget {
		style = style.BorderForeground(lipgloss.Color(theme.Create))
	}
	if col.Color != "" && !props.Selected && !props.DropTarget {
		style = style.BorderForeground(lipgloss.Color(col.Color))
	}

	return style.
		Width(ColumnWidth - 2).
		Height(props.Height - 2).
		Render(content)
}
