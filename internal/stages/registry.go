// Package stages maps between the order service's status vocabulary and the
// board's columns. The mapping is intentionally asymmetric: cards move by
// column (UI-driven), and a column's title is translated back to a backend
// status string only when a stage change is persisted.
package stages

import (
	"github.com/mgolovko/tsekh/internal/models"
)

// UnknownTitle is returned for column ids that no longer resolve to a
// column, e.g. a column deleted after a card referencing it was cached.
const UnknownTitle = "Unknown"

// DefaultColor is used for column ids outside the fixed palette.
const DefaultColor = "#4A5568"

// palette is the fixed column color palette keyed by column id.
var palette = map[int]string{
	1: "#3B82F6",
	2: "#8B5CF6",
	3: "#D97706",
	4: "#0D9488",
	5: "#DB2777",
	6: "#65A30D",
	7: "#16A34A",
}

// Registry resolves order statuses to column ids and column ids back to
// stage titles. Lookups read the live board on every call, so columns
// added, renamed, or deleted locally resolve without waiting for the next
// snapshot.
type Registry struct {
	source func() *models.Board
}

// NewRegistry creates a registry over a board source. A nil source behaves
// like an empty board: every lookup returns its fallback.
func NewRegistry(source func() *models.Board) *Registry {
	return &Registry{source: source}
}

func (r *Registry) board() *models.Board {
	if r.source == nil {
		return nil
	}
	return r.source()
}

// StatusToColumnID resolves a backend status to a column id. This is a
// total function: unknown statuses map to the default (first) column.
func (r *Registry) StatusToColumnID(status string) int {
	board := r.board()
	if board == nil {
		return 0
	}
	for _, col := range board.Columns {
		if col.Title == status {
			return col.ID
		}
	}
	return r.DefaultColumnID()
}

// ColumnTitleForID resolves a column id to its stage title, or UnknownTitle
// if the column does not exist.
func (r *Registry) ColumnTitleForID(columnID int) string {
	if board := r.board(); board != nil {
		if col := board.Column(columnID); col != nil {
			return col.Title
		}
	}
	return UnknownTitle
}

// ColorForColumnID returns the palette color for a column id, falling back
// to DefaultColor for ids outside the palette.
func (r *Registry) ColorForColumnID(columnID int) string {
	if color, ok := palette[columnID]; ok {
		return color
	}
	return DefaultColor
}

// DefaultColumnID returns the intake column id, 0 when the board is empty.
func (r *Registry) DefaultColumnID() int {
	board := r.board()
	if board == nil || len(board.Columns) == 0 {
		return 0
	}
	return board.Columns[0].ID
}
