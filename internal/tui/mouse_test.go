package tui

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/mgolovko/tsekh/internal/gestures"
	"github.com/mgolovko/tsekh/internal/tui/components"
)

func click(x, y int) tea.Msg {
	return tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft}
}

func motion(x, y int) tea.Msg {
	return tea.MouseMotionMsg{X: x, Y: y}
}

func release(x, y int) tea.Msg {
	return tea.MouseReleaseMsg{X: x, Y: y, Button: tea.MouseLeft}
}

func TestMouseDragMovesCard(t *testing.T) {
	m := setupTestModel(120, 40)

	// Press on card 1 in the first column.
	newModel, _ := m.Update(click(2, cardTopOffset))
	m = newModel.(Model)
	if m.drag.Kind() != gestures.KindCardDrag {
		t.Fatalf("expected card drag after press on a card, got %v", m.drag.Kind())
	}
	if m.uiState.SelectedCard() != 0 || m.uiState.SelectedColumn() != 0 {
		t.Error("expected press to select the card under the pointer")
	}

	// Drag over the second column.
	newModel, _ = m.Update(motion(components.ColumnFullWidth+2, cardTopOffset))
	m = newModel.(Model)
	if m.hoverColumnID != 2 {
		t.Fatalf("expected hover on column 2 mid-drag, got %d", m.hoverColumnID)
	}

	// Release over the second column.
	newModel, _ = m.Update(release(components.ColumnFullWidth+2, cardTopOffset))
	m = newModel.(Model)

	if _, col, _ := m.store.FindCard(1); col.ID != 2 {
		t.Errorf("expected card 1 dropped into column 2, got %d", col.ID)
	}
	if m.drag.Kind() != gestures.KindIdle {
		t.Errorf("expected idle gesture after release, got %v", m.drag.Kind())
	}
}

func TestMouseReleaseOutsideColumnsCancelsDrag(t *testing.T) {
	m := setupTestModel(120, 40)

	newModel, _ := m.Update(click(2, cardTopOffset))
	m = newModel.(Model)
	newModel, _ = m.Update(release(components.ColumnWidth, 5)) // in the gap
	m = newModel.(Model)

	if _, col, _ := m.store.FindCard(1); col.ID != 1 {
		t.Errorf("expected cancelled drag to leave card in column 1, got %d", col.ID)
	}
}

func TestMouseReleaseOnSourceColumnIsNoop(t *testing.T) {
	m := setupTestModel(120, 40)

	newModel, _ := m.Update(click(2, cardTopOffset))
	m = newModel.(Model)
	newModel, _ = m.Update(release(3, cardTopOffset+1))
	m = newModel.(Model)

	if _, col, _ := m.store.FindCard(1); col.ID != 1 {
		t.Errorf("expected same-column release to keep card in place, got column %d", col.ID)
	}
}

func TestMousePanScrollsViewport(t *testing.T) {
	m := setupTestModel(40, 40)
	m.scroll.Resize(m.contentWidth(), 40)

	// Press in empty board space below the columns' cards but inside the
	// content area and past the last column.
	pressX := 38
	newModel, _ := m.Update(click(pressX, 20))
	m = newModel.(Model)
	if m.drag.Kind() != gestures.KindPan {
		t.Fatalf("expected pan after press on empty space, got %v", m.drag.Kind())
	}

	// Dragging left by 5 cells with the default gain of 2 scrolls right by 10.
	newModel, _ = m.Update(motion(pressX-5, 20))
	m = newModel.(Model)
	if got := m.scroll.Offset(); got != 10 {
		t.Errorf("expected offset 10 after pan, got %d", got)
	}

	newModel, _ = m.Update(release(pressX-5, 20))
	m = newModel.(Model)
	if m.drag.Kind() != gestures.KindIdle {
		t.Errorf("expected idle after pan release, got %v", m.drag.Kind())
	}
}

func TestIndicatorClickScrolls(t *testing.T) {
	m := setupTestModel(40, 40)
	m.scroll.Resize(m.contentWidth(), 40)
	m.scroll.SetOffset(15)

	newModel, _ := m.Update(click(0, 10))
	m = newModel.(Model)
	if got := m.scroll.Offset(); got != 0 {
		t.Errorf("expected left indicator click to scroll to 0, got %d", got)
	}
	if m.drag.Kind() != gestures.KindIdle {
		t.Error("indicator clicks must not start a gesture")
	}
}

func TestWheelScrollsHoveredColumn(t *testing.T) {
	m := setupTestModel(120, 40)

	newModel, _ := m.Update(tea.MouseWheelMsg{X: 2, Y: 10, Button: tea.MouseWheelDown})
	m = newModel.(Model)
	if got := m.uiState.CardScrollOffset(1); got != 1 {
		t.Errorf("expected column 1 scrolled to offset 1, got %d", got)
	}

	newModel, _ = m.Update(tea.MouseWheelMsg{X: 2, Y: 10, Button: tea.MouseWheelUp})
	m = newModel.(Model)
	if got := m.uiState.CardScrollOffset(1); got != 0 {
		t.Errorf("expected column 1 scrolled back to 0, got %d", got)
	}
}

func TestWheelOutsideColumnsPansBoard(t *testing.T) {
	m := setupTestModel(40, 40)
	m.scroll.Resize(m.contentWidth(), 40)

	newModel, _ := m.Update(tea.MouseWheelMsg{X: components.ColumnWidth, Y: 10, Button: tea.MouseWheelDown})
	m = newModel.(Model)
	if got := m.scroll.Offset(); got != 30 {
		t.Errorf("expected wheel to pan by one step (30), got %d", got)
	}
}
