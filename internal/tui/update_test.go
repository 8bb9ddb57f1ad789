package tui

import (
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/mgolovko/tsekh/internal/board"
	"github.com/mgolovko/tsekh/internal/config"
	"github.com/mgolovko/tsekh/internal/models"
	"github.com/mgolovko/tsekh/internal/tui/state"
)

func keyPress(s string) tea.Msg {
	switch s {
	case "enter":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	case "esc":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape})
	}
	r := rune(s[0])
	return tea.KeyPressMsg(tea.Key{Text: s, Code: r})
}

func TestNavigationKeys(t *testing.T) {
	m := setupTestModel(120, 40)

	newModel, _ := m.Update(keyPress("l"))
	m = newModel.(Model)
	if m.uiState.SelectedColumn() != 1 {
		t.Errorf("expected selection on column index 1 after l, got %d", m.uiState.SelectedColumn())
	}

	newModel, _ = m.Update(keyPress("h"))
	m = newModel.(Model)
	if m.uiState.SelectedColumn() != 0 {
		t.Errorf("expected selection back on column index 0 after h, got %d", m.uiState.SelectedColumn())
	}

	newModel, _ = m.Update(keyPress("j"))
	m = newModel.(Model)
	if m.uiState.SelectedCard() != 1 {
		t.Errorf("expected second card selected after j, got %d", m.uiState.SelectedCard())
	}

	newModel, _ = m.Update(keyPress("k"))
	m = newModel.(Model)
	if m.uiState.SelectedCard() != 0 {
		t.Errorf("expected first card selected after k, got %d", m.uiState.SelectedCard())
	}
}

func TestNavigateLeftAtEdgeNotifies(t *testing.T) {
	m := setupTestModel(120, 40)

	newModel, _ := m.Update(keyPress("h"))
	m = newModel.(Model)

	if m.uiState.SelectedColumn() != 0 {
		t.Errorf("expected selection to stay at 0, got %d", m.uiState.SelectedColumn())
	}
	if !m.notificationState.HasAny() {
		t.Error("expected a notification at the first stage")
	}
}

func TestToggleViewKey(t *testing.T) {
	m := setupTestModel(120, 40)

	newModel, _ := m.Update(keyPress("v"))
	m = newModel.(Model)

	if m.uiState.ViewMode() != state.ViewCompact {
		t.Errorf("expected compact view after toggle, got %q", m.uiState.ViewMode())
	}
}

func TestKeyboardPickUpAndDrop(t *testing.T) {
	m := setupTestModel(120, 40)

	// Pick up card 1, steer right, drop.
	newModel, _ := m.Update(keyPress("enter"))
	m = newModel.(Model)
	if m.hoverColumnID != 1 {
		t.Fatalf("expected hover on source column 1, got %d", m.hoverColumnID)
	}

	newModel, _ = m.Update(keyPress("l"))
	m = newModel.(Model)
	if m.hoverColumnID != 2 {
		t.Fatalf("expected hover on column 2 after steering right, got %d", m.hoverColumnID)
	}

	newModel, _ = m.Update(keyPress("enter"))
	m = newModel.(Model)

	card, col, ok := m.store.FindCard(1)
	if !ok || col.ID != 2 {
		t.Fatalf("expected card 1 moved to column 2, got ok=%v col=%v", ok, col)
	}
	if card.Status != 2 {
		t.Errorf("expected card status 2 after move, got %d", card.Status)
	}
	if m.uiState.SelectedColumn() != 1 {
		t.Errorf("expected selection to follow the card, got column index %d", m.uiState.SelectedColumn())
	}
}

func TestKeyboardPickUpCancel(t *testing.T) {
	m := setupTestModel(120, 40)

	newModel, _ := m.Update(keyPress("enter"))
	m = newModel.(Model)
	newModel, _ = m.Update(keyPress("esc"))
	m = newModel.(Model)

	if _, col, _ := m.store.FindCard(1); col.ID != 1 {
		t.Errorf("expected cancelled pick-up to leave card in column 1, got %d", col.ID)
	}
	if m.hoverColumnID != 0 {
		t.Errorf("expected hover cleared after cancel, got %d", m.hoverColumnID)
	}
}

func TestBoardLoadedReplacesBoard(t *testing.T) {
	m := setupTestModel(120, 40)

	fresh := &models.Board{
		Columns: []*models.Column{
			{ID: 5, Title: "Покраска", Cards: []*models.Card{{ID: 9, Client: "Новый", Price: 1000, Status: 5}}},
		},
	}
	fetchedAt := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)

	newModel, _ := m.Update(boardLoadedMsg{board: fresh, fetchedAt: fetchedAt})
	m = newModel.(Model)

	if len(m.columns()) != 1 || m.columns()[0].ID != 5 {
		t.Fatalf("expected snapshot to replace the board, got %d columns", len(m.columns()))
	}
	if m.lastSync != fetchedAt {
		t.Errorf("expected lastSync %v, got %v", fetchedAt, m.lastSync)
	}
	if m.connectionState.Status() != state.Online {
		t.Errorf("expected Online after snapshot, got %v", m.connectionState.Status())
	}
	if m.uiState.SelectedColumn() != 0 {
		t.Errorf("expected selection clamped to remaining column, got %d", m.uiState.SelectedColumn())
	}
}

func TestCachedSnapshotDoesNotClobberLiveBoard(t *testing.T) {
	m := setupTestModel(120, 40)

	live := newTestBoard()
	newModel, _ := m.Update(boardLoadedMsg{board: live, fetchedAt: time.Now()})
	m = newModel.(Model)

	stale := &models.Board{Columns: []*models.Column{{ID: 9, Title: "Old"}}}
	newModel, _ = m.Update(cacheLoadedMsg{board: stale, fetchedAt: time.Now().Add(-time.Hour)})
	m = newModel.(Model)

	if len(m.columns()) != 2 {
		t.Errorf("expected live board to survive a late cache load, got %d columns", len(m.columns()))
	}
}

func TestStageSaveFailedRevertPolicy(t *testing.T) {
	cfg := config.Default()
	cfg.Board.OnPersistFailure = "revert-on-failure"

	store := board.NewStore()
	store.LoadSnapshot(newTestBoard())
	m := InitialModel(store, nil, nil, cfg)
	m.uiState.SetWidth(120)
	m.uiState.SetHeight(40)

	// Simulate an optimistic move that failed to persist.
	if err := store.MoveCard(1, 2); err != nil {
		t.Fatalf("move failed: %v", err)
	}

	newModel, _ := m.Update(stageSaveFailedMsg{cardID: 1, sourceColumnID: 1, err: errors.New("boom")})
	m = newModel.(Model)

	if _, col, _ := m.store.FindCard(1); col.ID != 1 {
		t.Errorf("expected card reverted to column 1, got %d", col.ID)
	}
	if !m.notificationState.HasAny() {
		t.Error("expected an error notification after revert")
	}
}

func TestStageSaveFailedOptimisticPolicyKeepsMove(t *testing.T) {
	m := setupTestModel(120, 40)

	if err := m.store.MoveCard(1, 2); err != nil {
		t.Fatalf("move failed: %v", err)
	}

	newModel, _ := m.Update(stageSaveFailedMsg{cardID: 1, sourceColumnID: 1, err: errors.New("boom")})
	m = newModel.(Model)

	if _, col, _ := m.store.FindCard(1); col.ID != 2 {
		t.Errorf("expected optimistic move kept, card ended in column %d", col.ID)
	}
	if m.connectionState.Status() != state.Offline {
		t.Errorf("expected Offline after persist failure, got %v", m.connectionState.Status())
	}
}

func TestDeleteCardConfirmFlow(t *testing.T) {
	m := setupTestModel(120, 40)

	newModel, _ := m.Update(keyPress("d"))
	m = newModel.(Model)
	if m.uiState.Mode() != state.DeleteCardConfirmMode {
		t.Fatalf("expected delete confirmation mode, got %v", m.uiState.Mode())
	}

	newModel, _ = m.Update(keyPress("y"))
	m = newModel.(Model)
	if m.uiState.Mode() != state.NormalMode {
		t.Errorf("expected return to normal mode, got %v", m.uiState.Mode())
	}
	if _, _, ok := m.store.FindCard(1); ok {
		t.Error("expected card 1 deleted")
	}
}

func TestDeleteColumnConfirmDeclined(t *testing.T) {
	m := setupTestModel(120, 40)

	newModel, _ := m.Update(keyPress("D"))
	m = newModel.(Model)
	newModel, _ = m.Update(keyPress("n"))
	m = newModel.(Model)

	if len(m.columns()) != 2 {
		t.Errorf("expected both stages to survive a declined delete, got %d", len(m.columns()))
	}
	if m.uiState.Mode() != state.NormalMode {
		t.Errorf("expected normal mode after decline, got %v", m.uiState.Mode())
	}
}

func TestHelpModeRoundTrip(t *testing.T) {
	m := setupTestModel(120, 40)

	newModel, _ := m.Update(keyPress("?"))
	m = newModel.(Model)
	if m.uiState.Mode() != state.HelpMode {
		t.Fatalf("expected help mode, got %v", m.uiState.Mode())
	}

	newModel, _ = m.Update(keyPress("esc"))
	m = newModel.(Model)
	if m.uiState.Mode() != state.NormalMode {
		t.Errorf("expected normal mode after closing help, got %v", m.uiState.Mode())
	}
}

func TestWindowSizeResizesScrollView(t *testing.T) {
	m := setupTestModel(120, 40)

	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	m = newModel.(Model)

	if m.uiState.Width() != 40 || m.uiState.Height() != 20 {
		t.Errorf("expected window 40x20, got %dx%d", m.uiState.Width(), m.uiState.Height())
	}
	// Content (2 columns) is wider than 40 cells, so the right indicator
	// must show at rest.
	if !m.scroll.ShowRight() {
		t.Error("expected right indicator with overflowing content")
	}
}
