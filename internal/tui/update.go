package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/mgolovko/tsekh/internal/orders"
	"github.com/mgolovko/tsekh/internal/tui/state"
)

// Update handles all messages and updates the model accordingly.
// This implements the "Update" part of the Model-View-Update pattern.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.uiState.SetWidth(msg.Width)
		m.uiState.SetHeight(msg.Height)
		m.scroll.Resize(m.contentWidth(), msg.Width)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseClickMsg:
		return m.handleMouseClick(msg)

	case tea.MouseMotionMsg:
		return m.handleMouseMotion(msg)

	case tea.MouseReleaseMsg:
		return m.handleMouseRelease(msg)

	case tea.MouseWheelMsg:
		return m.handleMouseWheel(msg)

	case boardLoadedMsg:
		m.applySnapshot(msg.board, msg.fetchedAt)
		m.connectionState.SetStatus(state.Online)
		return m, m.cacheSnapshotCmd(msg)

	case cacheLoadedMsg:
		// Only fall back to the cache if no live snapshot has landed yet.
		if m.lastSync.IsZero() {
			m.applySnapshot(msg.board, msg.fetchedAt)
			m.notificationState.Add(state.LevelInfo, "Showing cached board, order service unreachable")
		}
		return m, nil

	case boardFetchFailedMsg:
		slog.Warn("board fetch failed", "error", msg.err)
		m.connectionState.SetStatus(state.Offline)
		if m.store.Board().CardCount() == 0 {
			m.notificationState.Add(state.LevelError, "Cannot reach the order service")
		}
		return m, nil

	case stageSavedMsg:
		m.applySnapshot(msg.board, msg.fetchedAt)
		m.connectionState.SetStatus(state.Online)
		return m, nil

	case stageSaveFailedMsg:
		return m.handleStageSaveFailed(msg)

	case pollTickMsg:
		m.connectionState.SetStatus(state.Syncing)
		return m, tea.Batch(m.fetchBoardCmd(), m.schedulePollCmd())

	case viewModeLoadedMsg:
		m.uiState.SetViewMode(state.ViewMode(msg.mode))
		return m, nil
	}

	// Forward everything else to the active form so huh's internal
	// messages keep flowing.
	if m.uiState.Mode() == state.CardFormMode || m.uiState.Mode() == state.ColumnFormMode {
		return m.forwardToForm(msg)
	}

	return m, nil
}

// handleKey dispatches keyboard input to the handler for the current mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.uiState.Mode() {
	case state.CardFormMode:
		return m.handleCardFormMode(msg)
	case state.ColumnFormMode:
		return m.handleColumnFormMode(msg)
	case state.DeleteCardConfirmMode:
		return m.handleDeleteCardConfirmMode(msg)
	case state.DeleteColumnConfirmMode:
		return m.handleDeleteColumnConfirmMode(msg)
	case state.HelpMode:
		return m.handleHelpMode(msg)
	default:
		return m.handleNormalMode(msg)
	}
}

// handleStageSaveFailed applies the configured failure policy to a move
// whose stage change could not be saved.
func (m Model) handleStageSaveFailed(msg stageSaveFailedMsg) (tea.Model, tea.Cmd) {
	slog.Error("failed to persist stage change", "card", msg.cardID, "error", msg.err)
	m.connectionState.SetStatus(state.Offline)

	if m.policy == orders.PolicyRevertOnFailure {
		if err := m.store.MoveCard(msg.cardID, msg.sourceColumnID); err != nil {
			slog.Warn("could not revert unsaved move", "card", msg.cardID, "error", err)
		}
		m.clampSelection()
		m.notificationState.Add(state.LevelError, "Stage change not saved, move reverted")
	} else {
		m.notificationState.Add(state.LevelError, "Stage change not saved yet, will reconcile on next sync")
	}
	return m, nil
}
