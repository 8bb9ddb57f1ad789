package tui

import (
	"testing"

	"github.com/mgolovko/tsekh/internal/tui/components"
)

func TestColumnIndexAt(t *testing.T) {
	m := setupTestModel(120, 40)

	tests := []struct {
		name    string
		screenX int
		offset  int
		want    int
	}{
		{"start of first column", 0, 0, 0},
		{"inside first column", components.ColumnWidth - 1, 0, 0},
		{"gap between columns", components.ColumnWidth, 0, -1},
		{"start of second column", components.ColumnFullWidth, 0, 1},
		{"past last column", 3 * components.ColumnFullWidth, 0, -1},
		{"offset shifts mapping", 0, components.ColumnFullWidth, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.scroll.Resize(m.contentWidth(), 10) // allow nonzero offsets
			m.scroll.SetOffset(tt.offset)
			if got := m.columnIndexAt(tt.screenX); got != tt.want {
				t.Errorf("columnIndexAt(%d) with offset %d = %d, want %d", tt.screenX, tt.offset, got, tt.want)
			}
		})
	}
}

func TestCardAt(t *testing.T) {
	m := setupTestModel(120, 40)

	// First card starts right below border, header, and indicator line.
	card, col, ok := m.cardAt(2, cardTopOffset)
	if !ok {
		t.Fatal("expected a card at the top of the first column")
	}
	if card.ID != 1 || col.ID != 1 {
		t.Errorf("expected card 1 in column 1, got card %d in column %d", card.ID, col.ID)
	}

	// Second card one card-height lower.
	card, _, ok = m.cardAt(2, cardTopOffset+components.CardHeight)
	if !ok || card.ID != 2 {
		t.Fatalf("expected card 2 below card 1, got ok=%v card=%v", ok, card)
	}

	// Above the cards is the header area.
	if _, _, ok := m.cardAt(2, 0); ok {
		t.Error("expected no card hit on the column header")
	}

	// Below the last card is empty column space.
	if _, _, ok := m.cardAt(2, cardTopOffset+5*components.CardHeight); ok {
		t.Error("expected no card hit below the last card")
	}
}

func TestCardAtRespectsColumnScroll(t *testing.T) {
	m := setupTestModel(120, 40)
	m.uiState.SetCardScrollOffset(1, 1)

	card, _, ok := m.cardAt(2, cardTopOffset)
	if !ok || card.ID != 2 {
		t.Fatalf("expected scrolled column to expose card 2 at the top, got ok=%v card=%v", ok, card)
	}
}

func TestIndicatorHitZones(t *testing.T) {
	m := setupTestModel(40, 40)
	// Content is wider than the viewport; scroll to the middle so both
	// indicators show.
	m.scroll.Resize(m.contentWidth(), 40)
	m.scroll.SetOffset(15)

	if !m.leftIndicatorHit(0) {
		t.Error("expected left indicator hit at x=0")
	}
	if m.leftIndicatorHit(indicatorHitWidth) {
		t.Error("expected no left indicator hit past the strip")
	}
	if !m.rightIndicatorHit(39) {
		t.Error("expected right indicator hit at the right edge")
	}
	if m.rightIndicatorHit(20) {
		t.Error("expected no right indicator hit mid-screen")
	}
}
