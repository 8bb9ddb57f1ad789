package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/mgolovko/tsekh/internal/models"
	"github.com/mgolovko/tsekh/internal/tui/theme"
)

const (
	// CardHeight is the fixed height of an order card including borders
	CardHeight = 6
	// CompactCardHeight is the fixed height of a card in compact view
	CompactCardHeight = 3

	cardInnerWidth     = 30
	clientMaxLength    = 26
	deadlineDateFormat = "02.01.2006"
)

// RenderCard renders a single order as a card
//
//	┌──────────────────────────────┐
//	│ {Client}                  !! │
//	│ №{Order} {Product}           │
//	│ {Price} ₽ / paid {Prepaid} ₽ │
//	│ {Deadline}                   │
//	└──────────────────────────────┘
//
// Compact view keeps only the client line. Cards have a fixed width and
// height so the board layout stays addressable for pointer hit-testing.
func RenderCard(card *models.Card, selected bool, compact bool) string {
	style := CardStyle
	if selected {
		style = SelectedCardStyle
	}

	content := renderClientLine(card)
	if !compact {
		content += "\n" + renderOrderLine(card)
		content += "\n" + renderMoneyLine(card)
		content += "\n" + renderDeadlineLine(card)
	}

	return style.Width(cardInnerWidth).Render(content)
}

func renderClientLine(card *models.Card) string {
	client := card.Client
	if len([]rune(client)) > clientMaxLength {
		client = string([]rune(client)[:clientMaxLength]) + "…"
	}

	line := lipgloss.NewStyle().
		Bold(true).
		Background(lipgloss.Color(theme.CardBg)).
		Render(" " + client)

	if card.Priority != 0 && card.Priority <= models.PriorityHigh {
		marker := OverdueStyle.
			Background(lipgloss.Color(theme.CardBg)).
			Render(" !")
		line += marker
	}
	return line
}

func renderOrderLine(card *models.Card) string {
	text := fmt.Sprintf(" №%s %s", card.OrderNumber, card.ProductName)
	if len([]rune(text)) > cardInnerWidth-2 {
		text = string([]rune(text)[:cardInnerWidth-2]) + "…"
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal)).
		Background(lipgloss.Color(theme.CardBg)).
		Render(text)
}

func renderMoneyLine(card *models.Card) string {
	return SubtleStyle.
		Background(lipgloss.Color(theme.CardBg)).
		Render(fmt.Sprintf(" %.0f ₽ / paid %.0f ₽", card.Price, card.Prepayment))
}

func renderDeadlineLine(card *models.Card) string {
	if card.Deadline == nil {
		return SubtleStyle.
			Background(lipgloss.Color(theme.CardBg)).
			Italic(true).
			Render(" no deadline")
	}

	text := " " + card.Deadline.Format(deadlineDateFormat)
	if card.Overdue {
		return OverdueStyle.
			Background(lipgloss.Color(theme.CardBg)).
			Render(text + " overdue")
	}
	return SubtleStyle.
		Background(lipgloss.Color(theme.CardBg)).
		Render(text)
}
