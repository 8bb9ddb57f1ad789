package models

import "time"

// Column represents one manufacturing stage on the production board
// (e.g., "КБ", "Столярный цех", "Швейный цех"). Columns are ordered
// left-to-right; the order is meaningful and preserved across snapshots.
type Column struct {
	ID    int     // Unique identifier for the column within a board
	Title string  // Display label, also the canonical stage name
	Color string  // Presentation hint, opaque to business logic
	Cards []*Card // Ordered cards; insertion order, no explicit rank
}

// Card represents one order while it is visualized on the board.
// Its ID is shared 1:1 with the underlying order record.
type Card struct {
	ID          int
	Client      string
	OrderNumber string
	ProductName string
	Price       float64
	Prepayment  float64
	Deadline    *time.Time // May be absent
	Status      int        // ID of the column the card currently occupies
	Priority    Priority
	Overdue     bool   // Derived: deadline exists and is before today
	Color       string // Presentation hint
}

// Board is the full Kanban state: an ordered set of columns, each holding
// an ordered set of cards.
type Board struct {
	Columns []*Column
}

// NewBoard creates an empty board. It is populated wholesale by the first
// snapshot from the order service.
func NewBoard() *Board {
	return &Board{Columns: []*Column{}}
}

// Column returns the column with the given id, or nil if it does not exist.
func (b *Board) Column(id int) *Column {
	for _, col := range b.Columns {
		if col.ID == id {
			return col
		}
	}
	return nil
}

// CardCount returns the total number of cards across all columns.
func (b *Board) CardCount() int {
	total := 0
	for _, col := range b.Columns {
		total += len(col.Cards)
	}
	return total
}

// IsOverdue reports whether a deadline lies strictly before the start of
// the day containing now. A missing deadline is never overdue.
func IsOverdue(deadline *time.Time, now time.Time) bool {
	if deadline == nil {
		return false
	}
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return deadline.Before(startOfDay)
}
