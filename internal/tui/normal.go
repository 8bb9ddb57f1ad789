package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/mgolovko/tsekh/internal/gestures"
	"github.com/mgolovko/tsekh/internal/tui/state"
)

// handleNormalMode dispatches key events in NormalMode to specific handlers.
func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notificationState.Clear()

	key := msg.String()
	km := m.config.KeyMappings

	// While a card is picked up the movement keys steer the drop target
	// instead of the selection.
	if m.drag.Kind() == gestures.KindCardDrag {
		return m.handleDragKeys(key)
	}

	switch key {
	case km.Quit, "ctrl+c":
		return m.handleQuit()
	case km.Help:
		return m.handleShowHelp()
	case km.Refresh:
		return m.handleRefresh()
	case km.ToggleView:
		return m.handleToggleView()
	case km.ScrollLeft:
		return m.handleScrollLeft()
	case km.ScrollRight:
		return m.handleScrollRight()
	case km.MoveLeft, "left":
		return m.handleNavigateLeft()
	case km.MoveRight, "right":
		return m.handleNavigateRight()
	case km.MoveUp, "up":
		return m.handleNavigateUp()
	case km.MoveDown, "down":
		return m.handleNavigateDown()
	case km.PickUp, " ":
		return m.handlePickUpCard()
	case km.AddCard:
		return m.handleAddCard()
	case km.EditCard:
		return m.handleEditCard()
	case km.DeleteCard:
		return m.handleDeleteCard()
	case km.AddColumn:
		return m.handleAddColumn()
	case km.RenameColumn:
		return m.handleRenameColumn()
	case km.DeleteColumn:
		return m.handleDeleteColumn()
	}

	return m, nil
}

// handleDragKeys steers an active keyboard pick-up.
func (m Model) handleDragKeys(key string) (tea.Model, tea.Cmd) {
	km := m.config.KeyMappings
	cols := m.columns()

	hoverIdx := 0
	for i, col := range cols {
		if col.ID == m.hoverColumnID {
			hoverIdx = i
			break
		}
	}

	switch key {
	case km.MoveLeft, "left":
		if hoverIdx > 0 {
			m.hoverColumnID = cols[hoverIdx-1].ID
		}
		return m, nil
	case km.MoveRight, "right":
		if hoverIdx < len(cols)-1 {
			m.hoverColumnID = cols[hoverIdx+1].ID
		}
		return m, nil
	case km.PickUp, " ":
		drag, ok := m.drag.Drop()
		if !ok {
			return m, nil
		}
		return m.dropCard(drag, m.hoverColumnID)
	case "esc":
		m.drag.Release()
		m.hoverColumnID = 0
		return m, nil
	case km.Quit, "ctrl+c":
		return m.handleQuit()
	}

	return m, nil
}

// handleQuit exits the application.
func (m Model) handleQuit() (tea.Model, tea.Cmd) {
	return m, tea.Quit
}

// handleShowHelp shows the help screen.
func (m Model) handleShowHelp() (tea.Model, tea.Cmd) {
	m.uiState.SetMode(state.HelpMode)
	return m, nil
}

// handleRefresh forces an immediate snapshot fetch.
func (m Model) handleRefresh() (tea.Model, tea.Cmd) {
	m.connectionState.SetStatus(state.Syncing)
	return m, m.fetchBoardCmd()
}

// handleToggleView flips between normal and compact cards and persists
// the choice.
func (m Model) handleToggleView() (tea.Model, tea.Cmd) {
	mode := m.uiState.ToggleViewMode()
	return m, m.saveViewModeCmd(mode)
}

// handleScrollLeft scrolls the board viewport one step to the left.
func (m Model) handleScrollLeft() (tea.Model, tea.Cmd) {
	m.scroll.ScrollBy(-m.scroll.Step())
	return m, nil
}

// handleScrollRight scrolls the board viewport one step to the right.
func (m Model) handleScrollRight() (tea.Model, tea.Cmd) {
	m.scroll.ScrollBy(m.scroll.Step())
	return m, nil
}

// handleNavigateLeft moves selection to the previous column.
func (m Model) handleNavigateLeft() (tea.Model, tea.Cmd) {
	if m.uiState.SelectedColumn() > 0 {
		m.uiState.SetSelectedColumn(m.uiState.SelectedColumn() - 1)
		m.uiState.SetSelectedCard(0)
	} else {
		m.notificationState.Add(state.LevelInfo, "Already at the first stage")
	}
	return m, nil
}

// handleNavigateRight moves selection to the next column.
func (m Model) handleNavigateRight() (tea.Model, tea.Cmd) {
	if m.uiState.SelectedColumn() < len(m.columns())-1 {
		m.uiState.SetSelectedColumn(m.uiState.SelectedColumn() + 1)
		m.uiState.SetSelectedCard(0)
	} else {
		m.notificationState.Add(state.LevelInfo, "Already at the last stage")
	}
	return m, nil
}

// handleNavigateUp moves selection to the previous card.
func (m Model) handleNavigateUp() (tea.Model, tea.Cmd) {
	if m.uiState.SelectedCard() > 0 {
		m.uiState.SetSelectedCard(m.uiState.SelectedCard() - 1)
		m.ensureCardVisible()
	}
	return m, nil
}

// handleNavigateDown moves selection to the next card.
func (m Model) handleNavigateDown() (tea.Model, tea.Cmd) {
	col := m.currentColumn()
	if col != nil && m.uiState.SelectedCard() < len(col.Cards)-1 {
		m.uiState.SetSelectedCard(m.uiState.SelectedCard() + 1)
		m.ensureCardVisible()
	}
	return m, nil
}

// handlePickUpCard picks up the selected card for a keyboard move.
func (m Model) handlePickUpCard() (tea.Model, tea.Cmd) {
	card := m.currentCard()
	col := m.currentColumn()
	if card == nil || col == nil {
		m.notificationState.Add(state.LevelInfo, "No order selected")
		return m, nil
	}

	if err := m.drag.BeginCardDrag(card.ID, col.ID); err != nil {
		return m, nil
	}
	m.hoverColumnID = col.ID
	return m, nil
}

// dropCard finishes a drag by moving the card and persisting the stage
// change. The card is re-resolved against the store first; the board may
// have been replaced by a snapshot while the drag was in flight.
func (m Model) dropCard(drag gestures.CardDrag, targetColumnID int) (tea.Model, tea.Cmd) {
	m.hoverColumnID = 0

	card, col, ok := m.store.FindCard(drag.CardID)
	if !ok {
		m.notificationState.Add(state.LevelInfo, "Order no longer exists")
		return m, nil
	}
	if targetColumnID == 0 || col.ID == targetColumnID {
		return m, nil
	}

	sourceColumnID := col.ID
	if err := m.store.MoveCard(card.ID, targetColumnID); err != nil {
		m.notificationState.Add(state.LevelError, "Cannot move order to that stage")
		return m, nil
	}

	// Selection follows the moved card.
	for i, c := range m.columns() {
		if c.ID == targetColumnID {
			m.uiState.SetSelectedColumn(i)
			m.uiState.SetSelectedCard(len(c.Cards) - 1)
		}
	}
	m.clampSelection()

	return m, m.persistStageCmd(card.ID, targetColumnID, sourceColumnID)
}

// ensureCardVisible scrolls the selected column so the selection stays
// within the visible card window.
func (m *Model) ensureCardVisible() {
	col := m.currentColumn()
	if col == nil {
		return
	}

	available := m.uiState.ContentHeight() - 5
	visible := max(available/m.cardHeight(), 1)

	offset := m.uiState.CardScrollOffset(col.ID)
	selected := m.uiState.SelectedCard()
	if selected < offset {
		m.uiState.SetCardScrollOffset(col.ID, selected)
	} else if selected >= offset+visible {
		m.uiState.SetCardScrollOffset(col.ID, selected-visible+1)
	}
}
