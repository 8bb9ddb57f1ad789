package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/mgolovko/tsekh/internal/board"
	"github.com/mgolovko/tsekh/internal/config"
	"github.com/mgolovko/tsekh/internal/gestures"
	"github.com/mgolovko/tsekh/internal/localstore"
	"github.com/mgolovko/tsekh/internal/models"
	"github.com/mgolovko/tsekh/internal/orders"
	"github.com/mgolovko/tsekh/internal/scrollview"
	"github.com/mgolovko/tsekh/internal/tui/state"
)

// Model represents the application state for the TUI
type Model struct {
	store   *board.Store
	gateway *orders.Gateway
	local   *localstore.Store
	config  *config.Config

	drag   *gestures.Controller
	scroll *scrollview.Controller

	uiState           *state.UIState
	formState         *state.FormState
	helpState         *state.HelpState
	notificationState *state.NotificationState
	connectionState   *state.ConnectionState

	// policy decides what happens to an optimistic move whose stage
	// change could not be saved
	policy orders.FailurePolicy

	// pointer position while a card drag is active, used to render the
	// drop target highlight
	dragX, dragY  int
	hoverColumnID int

	lastSync time.Time
}

// InitialModel creates and initializes the TUI model.
// The gateway and local store may be nil; the board then runs purely
// in memory, which is how tests drive it.
func InitialModel(store *board.Store, gateway *orders.Gateway, local *localstore.Store, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	return Model{
		store:             store,
		gateway:           gateway,
		local:             local,
		config:            cfg,
		drag:              gestures.NewController(cfg.Board.PanGain),
		scroll:            scrollview.NewController(cfg.Board.IndicatorThreshold, cfg.Board.ScrollStep),
		uiState:           state.NewUIState(),
		formState:         state.NewFormState(),
		helpState:         state.NewHelpState(),
		notificationState: state.NewNotificationState(),
		connectionState:   state.NewConnectionState(state.Offline),
		policy:            orders.ParseFailurePolicy(cfg.Board.OnPersistFailure),
	}
}

// Init kicks off the initial snapshot fetch, the cached-snapshot fallback,
// the view mode preference load, and the polling schedule.
// Required by the tea.Model interface.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadCacheCmd(),
		m.fetchBoardCmd(),
		m.loadViewModeCmd(),
		m.schedulePollCmd(),
	)
}

// columns returns the board's columns.
func (m Model) columns() []*models.Column {
	return m.store.Board().Columns
}

// currentColumn returns the currently selected column.
// Returns nil if there are no columns.
func (m Model) currentColumn() *models.Column {
	cols := m.columns()
	if len(cols) == 0 {
		return nil
	}
	if m.uiState.SelectedColumn() >= len(cols) {
		return nil
	}
	return cols[m.uiState.SelectedColumn()]
}

// currentCard returns the currently selected card.
// Returns nil if the current column is empty or there are no columns.
func (m Model) currentCard() *models.Card {
	col := m.currentColumn()
	if col == nil {
		return nil
	}
	if len(col.Cards) == 0 || m.uiState.SelectedCard() >= len(col.Cards) {
		return nil
	}
	return col.Cards[m.uiState.SelectedCard()]
}

// clampSelection keeps the selection within the current board shape.
// Called after every snapshot load, move, or deletion.
func (m *Model) clampSelection() {
	cols := m.columns()
	if len(cols) == 0 {
		m.uiState.ResetSelection()
		return
	}
	if m.uiState.SelectedColumn() >= len(cols) {
		m.uiState.SetSelectedColumn(len(cols) - 1)
	}
	col := cols[m.uiState.SelectedColumn()]
	if m.uiState.SelectedCard() >= len(col.Cards) {
		m.uiState.SetSelectedCard(max(len(col.Cards)-1, 0))
	}
	for _, c := range cols {
		m.uiState.ClampCardScroll(c.ID, len(c.Cards))
	}
}

// applySnapshot replaces the board contents and re-fits UI state around it.
func (m *Model) applySnapshot(b *models.Board, fetchedAt time.Time) {
	m.store.LoadSnapshot(b)
	m.lastSync = fetchedAt
	m.clampSelection()
	m.scroll.Resize(m.contentWidth(), m.uiState.Width())
}
