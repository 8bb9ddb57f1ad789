package orders

import (
	"time"

	"github.com/mgolovko/tsekh/internal/models"
	"github.com/mgolovko/tsekh/internal/stages"
)

// deadlineFormat is the date-only wire format used by the order service.
const deadlineFormat = "2006-01-02"

// boardPayload is the snapshot wire format. Columns carry their cards
// nested; some deployments additionally send a flat orders list keyed by
// backend status, which is distributed into columns through the stage
// registry.
type boardPayload struct {
	Columns []columnPayload `json:"columns"`
	Orders  []cardPayload   `json:"orders,omitempty"`
}

type columnPayload struct {
	ID    int           `json:"id"`
	Title string        `json:"title"`
	Color string        `json:"color"`
	Cards []cardPayload `json:"cards"`
}

type cardPayload struct {
	ID          int     `json:"id"`
	Client      string  `json:"client"`
	OrderNumber string  `json:"order_number"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Prepayment  float64 `json:"prepayment"`
	Deadline    string  `json:"deadline,omitempty"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	Color       string  `json:"color,omitempty"`
}

// toBoard converts the wire snapshot to the domain board. A card's column
// membership is the single source of truth for its status, so every card's
// Status is set to the id of the column it lands in. Overdue flags are left
// for the store to derive on load.
func (p boardPayload) toBoard() *models.Board {
	board := models.NewBoard()
	for _, col := range p.Columns {
		column := &models.Column{
			ID:    col.ID,
			Title: col.Title,
			Color: col.Color,
			Cards: make([]*models.Card, 0, len(col.Cards)),
		}
		for _, card := range col.Cards {
			column.Cards = append(column.Cards, card.toCard(col.ID))
		}
		board.Columns = append(board.Columns, column)
	}

	if len(p.Orders) > 0 {
		// Flat orders are grouped by their backend status; unknown statuses
		// land in the intake column.
		reg := stages.NewRegistry(func() *models.Board { return board })
		for _, order := range p.Orders {
			col := board.Column(reg.StatusToColumnID(order.Status))
			if col == nil {
				continue
			}
			col.Cards = append(col.Cards, order.toCard(col.ID))
		}
	}

	return board
}

func (c cardPayload) toCard(columnID int) *models.Card {
	var deadline *time.Time
	if c.Deadline != "" {
		if parsed, err := time.Parse(deadlineFormat, c.Deadline); err == nil {
			deadline = &parsed
		}
	}

	return &models.Card{
		ID:          c.ID,
		Client:      c.Client,
		OrderNumber: c.OrderNumber,
		ProductName: c.ProductName,
		Price:       c.Price,
		Prepayment:  c.Prepayment,
		Deadline:    deadline,
		Status:      columnID,
		Priority:    models.ParsePriority(c.Priority),
		Color:       c.Color,
	}
}
