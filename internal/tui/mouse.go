package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/mgolovko/tsekh/internal/gestures"
	"github.com/mgolovko/tsekh/internal/tui/state"
)

// handleMouseClick starts a gesture from a left button press.
// Clicks on the edge indicators scroll the viewport, clicks on a card
// pick it up, and clicks on empty board space start a pan.
func (m Model) handleMouseClick(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	if m.uiState.Mode() != state.NormalMode || msg.Button != tea.MouseLeft {
		return m, nil
	}
	m.notificationState.Clear()

	if m.leftIndicatorHit(msg.X) {
		m.scroll.ScrollBy(-m.scroll.Step())
		return m, nil
	}
	if m.rightIndicatorHit(msg.X) {
		m.scroll.ScrollBy(m.scroll.Step())
		return m, nil
	}

	if msg.Y >= m.uiState.ContentHeight() {
		return m, nil
	}

	if card, col, ok := m.cardAt(msg.X, msg.Y); ok {
		if err := m.drag.BeginCardDrag(card.ID, col.ID); err != nil {
			return m, nil
		}
		m.dragX, m.dragY = msg.X, msg.Y
		m.hoverColumnID = col.ID

		// Clicking a card also selects it.
		for i, c := range m.columns() {
			if c.ID != col.ID {
				continue
			}
			m.uiState.SetSelectedColumn(i)
			for j, candidate := range c.Cards {
				if candidate.ID == card.ID {
					m.uiState.SetSelectedCard(j)
				}
			}
		}
		return m, nil
	}

	// Empty board space starts a pan from the current offset.
	_ = m.drag.BeginPan(msg.X, m.scroll.Offset())
	return m, nil
}

// handleMouseMotion tracks the pointer for the active gesture.
func (m Model) handleMouseMotion(msg tea.MouseMotionMsg) (tea.Model, tea.Cmd) {
	switch m.drag.Kind() {
	case gestures.KindCardDrag:
		m.dragX, m.dragY = msg.X, msg.Y
		if col := m.columnAt(msg.X); col != nil {
			m.hoverColumnID = col.ID
		}
	case gestures.KindPan:
		if offset, ok := m.drag.PanOffset(msg.X); ok {
			m.scroll.SetOffset(offset)
		}
	}
	return m, nil
}

// handleMouseRelease finishes the active gesture. A card released over a
// column is dropped there; released anywhere else the drag is cancelled.
func (m Model) handleMouseRelease(msg tea.MouseReleaseMsg) (tea.Model, tea.Cmd) {
	drag, kind := m.drag.Release()
	if kind != gestures.KindCardDrag {
		return m, nil
	}

	targetID := 0
	if col := m.columnAt(msg.X); col != nil && msg.Y < m.uiState.ContentHeight() {
		targetID = col.ID
	}
	return m.dropCard(drag, targetID)
}

// handleMouseWheel scrolls the hovered column vertically, or the board
// horizontally when the pointer is not over a column.
func (m Model) handleMouseWheel(msg tea.MouseWheelMsg) (tea.Model, tea.Cmd) {
	if m.uiState.Mode() != state.NormalMode {
		return m, nil
	}

	delta := 0
	switch msg.Button {
	case tea.MouseWheelUp:
		delta = -1
	case tea.MouseWheelDown:
		delta = 1
	default:
		return m, nil
	}

	if col := m.columnAt(msg.X); col != nil {
		offset := m.uiState.CardScrollOffset(col.ID) + delta
		m.uiState.SetCardScrollOffset(col.ID, offset)
		m.uiState.ClampCardScroll(col.ID, len(col.Cards))
		return m, nil
	}

	m.scroll.ScrollBy(delta * m.scroll.Step())
	return m, nil
}
