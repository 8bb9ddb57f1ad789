package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"

	"github.com/mgolovko/tsekh/internal/board"
	"github.com/mgolovko/tsekh/internal/models"
	"github.com/mgolovko/tsekh/internal/stages"
	"github.com/mgolovko/tsekh/internal/tui/huhforms"
	"github.com/mgolovko/tsekh/internal/tui/state"
)

const formDeadlineFormat = "2006-01-02"

// ============================================================================
// OPENING FORMS
// ============================================================================

// handleAddCard opens the card form for a new order in the current column.
func (m Model) handleAddCard() (tea.Model, tea.Cmd) {
	col := m.currentColumn()
	if col == nil {
		m.notificationState.Add(state.LevelError, "No stage to add an order to")
		return m, nil
	}

	m.formState.ResetCard()
	m.formState.TargetColumnID = col.ID
	m.formState.Priority = models.DefaultPriority.String()
	m.formState.CardForm = m.newCardForm()
	m.uiState.SetMode(state.CardFormMode)
	return m, m.formState.CardForm.Init()
}

// handleEditCard opens the card form pre-filled with the selected order.
func (m Model) handleEditCard() (tea.Model, tea.Cmd) {
	card := m.currentCard()
	if card == nil {
		m.notificationState.Add(state.LevelInfo, "No order selected")
		return m, nil
	}

	m.formState.ResetCard()
	m.formState.EditingCardID = card.ID
	m.formState.Client = card.Client
	m.formState.OrderNumber = card.OrderNumber
	m.formState.ProductName = card.ProductName
	m.formState.Price = strconv.FormatFloat(card.Price, 'f', -1, 64)
	m.formState.Prepayment = strconv.FormatFloat(card.Prepayment, 'f', -1, 64)
	if card.Deadline != nil {
		m.formState.Deadline = card.Deadline.Format(formDeadlineFormat)
	}
	m.formState.Priority = card.Priority.String()
	m.formState.CardForm = m.newCardForm()
	m.uiState.SetMode(state.CardFormMode)
	return m, m.formState.CardForm.Init()
}

func (m Model) newCardForm() *huh.Form {
	return huhforms.CreateCardForm(
		&m.formState.Client,
		&m.formState.OrderNumber,
		&m.formState.ProductName,
		&m.formState.Price,
		&m.formState.Prepayment,
		&m.formState.Deadline,
		&m.formState.Priority,
		&m.formState.Confirm,
	)
}

// handleAddColumn opens the column form for a new stage.
func (m Model) handleAddColumn() (tea.Model, tea.Cmd) {
	m.formState.ResetColumn()
	m.formState.ColumnForm = huhforms.CreateColumnForm(&m.formState.ColumnTitle, false)
	m.uiState.SetMode(state.ColumnFormMode)
	return m, m.formState.ColumnForm.Init()
}

// handleRenameColumn opens the column form pre-filled with the current stage.
func (m Model) handleRenameColumn() (tea.Model, tea.Cmd) {
	col := m.currentColumn()
	if col == nil {
		return m, nil
	}

	m.formState.ResetColumn()
	m.formState.EditingColumnID = col.ID
	m.formState.ColumnTitle = col.Title
	m.formState.ColumnForm = huhforms.CreateColumnForm(&m.formState.ColumnTitle, true)
	m.uiState.SetMode(state.ColumnFormMode)
	return m, m.formState.ColumnForm.Init()
}

// handleDeleteCard asks for confirmation before deleting the selected order.
func (m Model) handleDeleteCard() (tea.Model, tea.Cmd) {
	if m.currentCard() == nil {
		m.notificationState.Add(state.LevelInfo, "No order selected")
		return m, nil
	}
	m.uiState.SetMode(state.DeleteCardConfirmMode)
	return m, nil
}

// handleDeleteColumn asks for confirmation before deleting the current stage.
func (m Model) handleDeleteColumn() (tea.Model, tea.Cmd) {
	if m.currentColumn() == nil {
		return m, nil
	}
	m.uiState.SetMode(state.DeleteColumnConfirmMode)
	return m, nil
}

// ============================================================================
// FORM MODE UPDATES
// ============================================================================

// handleCardFormMode handles keyboard input while the card form is open.
func (m Model) handleCardFormMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.formState.ResetCard()
		m.uiState.SetMode(state.NormalMode)
		return m, tea.ClearScreen
	}
	return m.forwardToForm(msg)
}

// handleColumnFormMode handles keyboard input while the column form is open.
func (m Model) handleColumnFormMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.formState.ResetColumn()
		m.uiState.SetMode(state.NormalMode)
		return m, tea.ClearScreen
	}
	return m.forwardToForm(msg)
}

// forwardToForm passes a message to the active form and submits it when
// the form completes. Forms need to receive all messages, not just keys.
func (m Model) forwardToForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.uiState.Mode() {
	case state.CardFormMode:
		if m.formState.CardForm == nil {
			return m, nil
		}
		model, cmd := m.formState.CardForm.Update(msg)
		m.formState.CardForm = model.(*huh.Form)
		if m.formState.CardForm.State == huh.StateCompleted {
			m.submitCardForm()
			m.formState.ResetCard()
			m.uiState.SetMode(state.NormalMode)
			return m, tea.ClearScreen
		}
		return m, cmd

	case state.ColumnFormMode:
		if m.formState.ColumnForm == nil {
			return m, nil
		}
		model, cmd := m.formState.ColumnForm.Update(msg)
		m.formState.ColumnForm = model.(*huh.Form)
		if m.formState.ColumnForm.State == huh.StateCompleted {
			m.submitColumnForm()
			m.formState.ResetColumn()
			m.uiState.SetMode(state.NormalMode)
			return m, tea.ClearScreen
		}
		return m, cmd
	}
	return m, nil
}

// ============================================================================
// SUBMITS
// ============================================================================

// submitCardForm parses the draft values and creates or updates the order.
func (m *Model) submitCardForm() {
	if !m.formState.Confirm {
		return
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(m.formState.Price), 64)
	if err != nil {
		m.notificationState.Add(state.LevelError, "Price must be a number")
		return
	}
	prepayment := 0.0
	if s := strings.TrimSpace(m.formState.Prepayment); s != "" {
		prepayment, err = strconv.ParseFloat(s, 64)
		if err != nil {
			m.notificationState.Add(state.LevelError, "Prepayment must be a number")
			return
		}
	}

	var deadline *time.Time
	if s := strings.TrimSpace(m.formState.Deadline); s != "" {
		d, err := time.Parse(formDeadlineFormat, s)
		if err != nil {
			m.notificationState.Add(state.LevelError, "Deadline must be YYYY-MM-DD")
			return
		}
		deadline = &d
	}

	priority := models.ParsePriority(m.formState.Priority)
	client := strings.TrimSpace(m.formState.Client)

	if m.formState.EditingCardID == 0 {
		_, err = m.store.AddCard(board.AddCardRequest{
			ColumnID:    m.formState.TargetColumnID,
			Client:      client,
			OrderNumber: strings.TrimSpace(m.formState.OrderNumber),
			ProductName: strings.TrimSpace(m.formState.ProductName),
			Price:       price,
			Prepayment:  prepayment,
			Deadline:    deadline,
			Priority:    priority,
		})
	} else {
		orderNumber := strings.TrimSpace(m.formState.OrderNumber)
		productName := strings.TrimSpace(m.formState.ProductName)
		err = m.store.EditCard(board.EditCardRequest{
			CardID:      m.formState.EditingCardID,
			Client:      &client,
			OrderNumber: &orderNumber,
			ProductName: &productName,
			Price:       &price,
			Prepayment:  &prepayment,
			Deadline:    deadline,
			Priority:    &priority,
		})
	}
	if err != nil {
		m.notificationState.Add(state.LevelError, fmt.Sprintf("Cannot save order: %v", err))
		return
	}
	m.clampSelection()
}

// submitColumnForm creates or renames a stage column.
func (m *Model) submitColumnForm() {
	title := strings.TrimSpace(m.formState.ColumnTitle)
	if title == "" {
		return
	}

	var err error
	if m.formState.EditingColumnID == 0 {
		_, err = m.store.AddColumn(title, stages.DefaultColor)
	} else {
		col := m.store.Board().Column(m.formState.EditingColumnID)
		color := ""
		if col != nil {
			color = col.Color
		}
		err = m.store.EditColumn(m.formState.EditingColumnID, title, color)
	}
	if err != nil {
		m.notificationState.Add(state.LevelError, fmt.Sprintf("Cannot save stage: %v", err))
		return
	}
	m.scroll.Resize(m.contentWidth(), m.uiState.Width())
}

// ============================================================================
// DELETE CONFIRMATIONS
// ============================================================================

// handleDeleteCardConfirmMode handles the y/n confirmation for card deletion.
func (m Model) handleDeleteCardConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if card := m.currentCard(); card != nil {
			if err := m.store.DeleteCard(card.ID); err != nil {
				m.notificationState.Add(state.LevelError, "Cannot delete order")
			}
			m.clampSelection()
		}
		m.uiState.SetMode(state.NormalMode)
	case "n", "N", "esc":
		m.uiState.SetMode(state.NormalMode)
	}
	return m, nil
}

// handleDeleteColumnConfirmMode handles the y/n confirmation for stage
// deletion. Deleting a stage also deletes all of its orders.
func (m Model) handleDeleteColumnConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if col := m.currentColumn(); col != nil {
			if err := m.store.DeleteColumn(col.ID); err != nil {
				m.notificationState.Add(state.LevelError, "Cannot delete stage")
			}
			m.clampSelection()
			m.scroll.Resize(m.contentWidth(), m.uiState.Width())
		}
		m.uiState.SetMode(state.NormalMode)
	case "n", "N", "esc":
		m.uiState.SetMode(state.NormalMode)
	}
	return m, nil
}
