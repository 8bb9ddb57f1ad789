// Package board holds the in-memory board state and owns every mutation of
// columns and cards. All operations are synchronous; the store is driven
// from the single TUI event loop and needs no internal locking.
package board

import (
	"strings"
	"time"

	"github.com/mgolovko/tsekh/internal/models"
)

// Store is the single mutable source of truth for board state. It has an
// explicit lifecycle: construct one per board instance, feed it snapshots,
// tear it down with the owning view. No package-level state.
type Store struct {
	board *models.Board

	// now is injectable so overdue derivation is testable
	now func() time.Time
}

// NewStore creates a store with an empty board and the real clock.
func NewStore() *Store {
	return NewStoreWithClock(time.Now)
}

// NewStoreWithClock creates a store with a custom clock for tests.
func NewStoreWithClock(now func() time.Time) *Store {
	return &Store{
		board: models.NewBoard(),
		now:   now,
	}
}

// Board returns the current board. Callers must not mutate it directly;
// every mutation goes through a Store operation.
func (s *Store) Board() *models.Board {
	return s.board
}

// LoadSnapshot replaces the entire board wholesale. A snapshot always wins:
// any optimistic local state not yet confirmed by the server is discarded.
// Overdue flags are recomputed for every card.
func (s *Store) LoadSnapshot(board *models.Board) {
	if board == nil {
		board = models.NewBoard()
	}
	s.board = board
	s.RecomputeOverdue()
}

// RecomputeOverdue refreshes the derived overdue flag on every card.
func (s *Store) RecomputeOverdue() {
	now := s.now()
	for _, col := range s.board.Columns {
		for _, card := range col.Cards {
			card.Overdue = models.IsOverdue(card.Deadline, now)
		}
	}
}

// FindCard locates a card by scanning all columns. Boards are bounded by
// business scale (tens to low hundreds of cards), so the linear scan is
// fine; a side index would be maintained here if that ever changed.
func (s *Store) FindCard(cardID int) (*models.Card, *models.Column, bool) {
	for _, col := range s.board.Columns {
		for _, card := range col.Cards {
			if card.ID == cardID {
				return card, col, true
			}
		}
	}
	return nil, nil, false
}

// MoveCard removes the card from its source column and appends it to the
// target column, updating the card's status. Moving a card onto its own
// column is a no-op, not an error. Unknown card or column ids leave the
// board unchanged and return the corresponding sentinel error.
func (s *Store) MoveCard(cardID, targetColumnID int) error {
	target := s.board.Column(targetColumnID)
	if target == nil {
		return ErrUnknownColumn
	}

	card, source, ok := s.FindCard(cardID)
	if !ok {
		return ErrUnknownCard
	}

	if source.ID == targetColumnID {
		return nil
	}

	for i, c := range source.Cards {
		if c.ID == cardID {
			source.Cards = append(source.Cards[:i], source.Cards[i+1:]...)
			break
		}
	}

	card.Status = targetColumnID
	card.Overdue = models.IsOverdue(card.Deadline, s.now())
	target.Cards = append(target.Cards, card)

	return nil
}

// AddColumn appends a new empty column and returns its id. Ids are assigned
// max(existing)+1, or 1 for an empty board.
func (s *Store) AddColumn(title, color string) (int, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return 0, ErrEmptyTitle
	}

	id := s.nextColumnID()
	s.board.Columns = append(s.board.Columns, &models.Column{
		ID:    id,
		Title: title,
		Color: color,
		Cards: []*models.Card{},
	})
	return id, nil
}

// EditColumn updates a column's title and color in place. The id is
// immutable.
func (s *Store) EditColumn(id int, title, color string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}

	col := s.board.Column(id)
	if col == nil {
		return ErrUnknownColumn
	}

	col.Title = title
	col.Color = color
	return nil
}

// DeleteColumn removes the column and every card it contains. This is a
// destructive cascade; confirming it with the operator is the caller's
// responsibility, not the store's.
func (s *Store) DeleteColumn(id int) error {
	for i, col := range s.board.Columns {
		if col.ID == id {
			s.board.Columns = append(s.board.Columns[:i], s.board.Columns[i+1:]...)
			return nil
		}
	}
	return ErrUnknownColumn
}

// AddCardRequest encapsulates the data needed to create a card.
type AddCardRequest struct {
	ColumnID    int
	Client      string
	OrderNumber string
	ProductName string
	Price       float64
	Prepayment  float64
	Deadline    *time.Time
	Priority    models.Priority
	Color       string
}

// AddCard appends a new card to the given column and returns its id. Ids
// are assigned max(existing across all columns)+1, or 1. Validation
// failures perform no mutation.
func (s *Store) AddCard(req AddCardRequest) (int, error) {
	if err := validateCardFields(req.Client, req.Price, req.Prepayment, req.Deadline); err != nil {
		return 0, err
	}

	col := s.board.Column(req.ColumnID)
	if col == nil {
		return 0, ErrUnknownColumn
	}

	priority := req.Priority
	if priority == 0 {
		priority = models.DefaultPriority
	}

	id := s.nextCardID()
	col.Cards = append(col.Cards, &models.Card{
		ID:          id,
		Client:      strings.TrimSpace(req.Client),
		OrderNumber: req.OrderNumber,
		ProductName: req.ProductName,
		Price:       req.Price,
		Prepayment:  req.Prepayment,
		Deadline:    req.Deadline,
		Status:      col.ID,
		Priority:    priority,
		Overdue:     models.IsOverdue(req.Deadline, s.now()),
		Color:       req.Color,
	})
	return id, nil
}

// EditCardRequest encapsulates a partial card update. Nil pointer fields
// are left unchanged. Status is deliberately absent: moving a card between
// columns goes exclusively through MoveCard.
type EditCardRequest struct {
	CardID      int
	Client      *string
	OrderNumber *string
	ProductName *string
	Price       *float64
	Prepayment  *float64
	Deadline    *time.Time
	Priority    *models.Priority
	Color       *string
}

// EditCard updates an existing card in place. Validation is all-or-nothing:
// every provided field is checked before anything is written.
func (s *Store) EditCard(req EditCardRequest) error {
	card, _, ok := s.FindCard(req.CardID)
	if !ok {
		return ErrUnknownCard
	}

	if req.Client != nil && strings.TrimSpace(*req.Client) == "" {
		return ErrEmptyClient
	}
	if req.Price != nil && *req.Price <= 0 {
		return ErrInvalidPrice
	}
	if req.Prepayment != nil && *req.Prepayment < 0 {
		return ErrNegativePrepayment
	}
	if req.Deadline != nil && req.Deadline.IsZero() {
		return ErrMissingDeadline
	}

	if req.Client != nil {
		card.Client = strings.TrimSpace(*req.Client)
	}
	if req.OrderNumber != nil {
		card.OrderNumber = *req.OrderNumber
	}
	if req.ProductName != nil {
		card.ProductName = *req.ProductName
	}
	if req.Price != nil {
		card.Price = *req.Price
	}
	if req.Prepayment != nil {
		card.Prepayment = *req.Prepayment
	}
	if req.Deadline != nil {
		card.Deadline = req.Deadline
		card.Overdue = models.IsOverdue(card.Deadline, s.now())
	}
	if req.Priority != nil {
		card.Priority = *req.Priority
	}
	if req.Color != nil {
		card.Color = *req.Color
	}
	return nil
}

// DeleteCard removes a card from the board entirely.
func (s *Store) DeleteCard(cardID int) error {
	_, col, ok := s.FindCard(cardID)
	if !ok {
		return ErrUnknownCard
	}
	for i, c := range col.Cards {
		if c.ID == cardID {
			col.Cards = append(col.Cards[:i], col.Cards[i+1:]...)
			break
		}
	}
	return nil
}

// ColumnPrepaymentTotal sums prepayments over the cards currently in the
// column. Computed on demand: cards move too often for caching to pay off.
// An unknown or empty column totals to zero.
func (s *Store) ColumnPrepaymentTotal(columnID int) float64 {
	col := s.board.Column(columnID)
	if col == nil {
		return 0
	}

	total := 0.0
	for _, card := range col.Cards {
		total += card.Prepayment
	}
	return total
}

func validateCardFields(client string, price, prepayment float64, deadline *time.Time) error {
	if strings.TrimSpace(client) == "" {
		return ErrEmptyClient
	}
	if price <= 0 {
		return ErrInvalidPrice
	}
	if prepayment < 0 {
		return ErrNegativePrepayment
	}
	if deadline == nil || deadline.IsZero() {
		return ErrMissingDeadline
	}
	return nil
}

func (s *Store) nextColumnID() int {
	maxID := 0
	for _, col := range s.board.Columns {
		if col.ID > maxID {
			maxID = col.ID
		}
	}
	return maxID + 1
}

func (s *Store) nextCardID() int {
	maxID := 0
	for _, col := range s.board.Columns {
		for _, card := range col.Cards {
			if card.ID > maxID {
				maxID = card.ID
			}
		}
	}
	return maxID + 1
}
