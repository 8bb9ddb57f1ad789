package tui

import (
	"github.com/mgolovko/tsekh/internal/models"
	"github.com/mgolovko/tsekh/internal/tui/components"
	"github.com/mgolovko/tsekh/internal/tui/state"
)

// indicatorHitWidth is the clickable strip at each screen edge that maps
// to the scroll indicators.
const indicatorHitWidth = 3

// cardTopOffset is the number of lines above the first card inside a
// column box: top border, header, and the reserved indicator line.
const cardTopOffset = 3

// contentWidth returns the full width of the rendered board canvas.
func (m Model) contentWidth() int {
	return len(m.columns()) * components.ColumnFullWidth
}

// cardHeight returns the rendered card height for the active view mode.
func (m Model) cardHeight() int {
	if m.uiState.ViewMode() == state.ViewCompact {
		return components.CompactCardHeight
	}
	return components.CardHeight
}

// columnIndexAt maps a screen x coordinate to a column index, taking the
// horizontal scroll offset into account. Returns -1 for the gaps between
// columns and for coordinates past the last column.
func (m Model) columnIndexAt(screenX int) int {
	canvasX := screenX + m.scroll.Offset()
	if canvasX < 0 {
		return -1
	}
	idx := canvasX / components.ColumnFullWidth
	if canvasX%components.ColumnFullWidth >= components.ColumnWidth {
		return -1
	}
	if idx >= len(m.columns()) {
		return -1
	}
	return idx
}

// columnAt is like columnIndexAt but resolves the column itself.
func (m Model) columnAt(screenX int) *models.Column {
	idx := m.columnIndexAt(screenX)
	if idx < 0 {
		return nil
	}
	return m.columns()[idx]
}

// cardAt maps screen coordinates to the card under the pointer.
// Returns the card, its column, and whether a card was hit.
func (m Model) cardAt(screenX, screenY int) (*models.Card, *models.Column, bool) {
	col := m.columnAt(screenX)
	if col == nil {
		return nil, nil, false
	}

	y := screenY - cardTopOffset
	if y < 0 {
		return nil, nil, false
	}

	idx := m.uiState.CardScrollOffset(col.ID) + y/m.cardHeight()
	if idx >= len(col.Cards) {
		return nil, nil, false
	}
	return col.Cards[idx], col, true
}

// leftIndicatorHit reports whether a click at screenX lands on the left
// scroll indicator strip.
func (m Model) leftIndicatorHit(screenX int) bool {
	return m.scroll.ShowLeft() && screenX < indicatorHitWidth
}

// rightIndicatorHit reports whether a click at screenX lands on the right
// scroll indicator strip.
func (m Model) rightIndicatorHit(screenX int) bool {
	return m.scroll.ShowRight() && screenX >= m.uiState.Width()-indicatorHitWidth
}
