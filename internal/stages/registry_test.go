package stages

import (
	"testing"

	"github.com/mgolovko/tsekh/internal/models"
)

func testBoard() *models.Board {
	return &models.Board{
		Columns: []*models.Column{
			{ID: 1, Title: "КБ"},
			{ID: 2, Title: "Столярный цех"},
			{ID: 3, Title: "Швейный цех"},
		},
	}
}

func boardRegistry(board *models.Board) *Registry {
	return NewRegistry(func() *models.Board { return board })
}

func TestStatusToColumnID(t *testing.T) {
	r := boardRegistry(testBoard())

	tests := []struct {
		status string
		want   int
	}{
		{"КБ", 1},
		{"Столярный цех", 2},
		{"Швейный цех", 3},
		{"confirmed", 1}, // unknown status falls back to intake column
		{"", 1},          // empty status falls back too
		{"in_production", 1},
	}

	for _, tt := range tests {
		if got := r.StatusToColumnID(tt.status); got != tt.want {
			t.Errorf("StatusToColumnID(%q) = %d, want %d", tt.status, got, tt.want)
		}
	}
}

func TestColumnTitleForID(t *testing.T) {
	r := boardRegistry(testBoard())

	if got := r.ColumnTitleForID(2); got != "Столярный цех" {
		t.Errorf("ColumnTitleForID(2) = %q, want Столярный цех", got)
	}
	if got := r.ColumnTitleForID(42); got != UnknownTitle {
		t.Errorf("ColumnTitleForID(42) = %q, want %q", got, UnknownTitle)
	}
}

func TestLookupsFollowBoardMutations(t *testing.T) {
	board := testBoard()
	r := boardRegistry(board)

	// Rename a stage in place.
	board.Columns[1].Title = "Сборка"
	if got := r.ColumnTitleForID(2); got != "Сборка" {
		t.Errorf("ColumnTitleForID(2) after rename = %q, want Сборка", got)
	}
	if got := r.StatusToColumnID("Сборка"); got != 2 {
		t.Errorf("StatusToColumnID(Сборка) after rename = %d, want 2", got)
	}

	// Add a brand-new column.
	board.Columns = append(board.Columns, &models.Column{ID: 4, Title: "Покраска"})
	if got := r.ColumnTitleForID(4); got != "Покраска" {
		t.Errorf("ColumnTitleForID(4) after add = %q, want Покраска", got)
	}

	// Drop the last column again.
	board.Columns = board.Columns[:2]
	if got := r.ColumnTitleForID(3); got != UnknownTitle {
		t.Errorf("ColumnTitleForID(3) after delete = %q, want %q", got, UnknownTitle)
	}
}

func TestSnapshotReplaceChangesLookups(t *testing.T) {
	board := testBoard()
	r := boardRegistry(board)

	// Simulate a refresh snapshot that no longer carries column 3.
	*board = models.Board{
		Columns: []*models.Column{
			{ID: 1, Title: "КБ"},
			{ID: 2, Title: "Столярный цех"},
		},
	}

	if got := r.ColumnTitleForID(3); got != UnknownTitle {
		t.Errorf("ColumnTitleForID(3) = %q, want %q after snapshot", got, UnknownTitle)
	}
}

func TestColorForColumnID(t *testing.T) {
	r := NewRegistry(nil)

	if got := r.ColorForColumnID(1); got == DefaultColor {
		t.Error("palette color expected for column 1, got default")
	}
	if got := r.ColorForColumnID(999); got != DefaultColor {
		t.Errorf("ColorForColumnID(999) = %q, want %q", got, DefaultColor)
	}
}

func TestEmptyRegistryFallbacks(t *testing.T) {
	r := NewRegistry(nil)

	if got := r.StatusToColumnID("anything"); got != 0 {
		t.Errorf("StatusToColumnID without a board = %d, want 0", got)
	}
	if got := r.ColumnTitleForID(1); got != UnknownTitle {
		t.Errorf("ColumnTitleForID without a board = %q, want %q", got, UnknownTitle)
	}
	if got := r.DefaultColumnID(); got != 0 {
		t.Errorf("DefaultColumnID without a board = %d, want 0", got)
	}
}
