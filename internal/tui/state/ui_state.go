package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode              Mode = iota // Default navigation mode
	CardFormMode                        // Creating or editing an order card with huh
	ColumnFormMode                      // Creating or renaming a column with huh
	DeleteCardConfirmMode               // Confirming card deletion
	DeleteColumnConfirmMode             // Confirming column deletion
	HelpMode                            // Displaying help screen
)

// ViewMode selects between the normal and compact card rendering.
type ViewMode string

const (
	ViewNormal  ViewMode = "normal"
	ViewCompact ViewMode = "compact"
)

// UIState manages the user interface state.
// This includes navigation (column/card selection), per-column vertical
// scrolling, terminal dimensions, and the current interaction mode.
type UIState struct {
	// selectedColumn is the index of the currently selected column
	selectedColumn int

	// selectedCard is the index of the currently selected card within the selected column
	selectedCard int

	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode

	// viewMode selects normal or compact cards
	viewMode ViewMode

	// cardScrollOffsets tracks the vertical scroll offset for each column.
	// Key: columnID, Value: index of the first visible card
	cardScrollOffsets map[int]int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:              NormalMode,
		viewMode:          ViewNormal,
		cardScrollOffsets: make(map[int]int),
	}
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index.
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = index
}

// SelectedCard returns the index of the currently selected card.
func (s *UIState) SelectedCard() int {
	return s.selectedCard
}

// SetSelectedCard updates the selected card index.
func (s *UIState) SetSelectedCard(index int) {
	s.selectedCard = index
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the available height for the board area.
// This is terminal height minus the status bar, ensuring a minimum of 5.
func (s *UIState) ContentHeight() int {
	const statusBarHeight = 2 // status bar + gap line
	return max(s.height-statusBarHeight, 5)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// ViewMode returns the current card rendering mode.
func (s *UIState) ViewMode() ViewMode {
	return s.viewMode
}

// SetViewMode updates the card rendering mode.
func (s *UIState) SetViewMode(mode ViewMode) {
	if mode != ViewCompact {
		mode = ViewNormal
	}
	s.viewMode = mode
}

// ToggleViewMode flips between normal and compact cards and returns the new mode.
func (s *UIState) ToggleViewMode() ViewMode {
	if s.viewMode == ViewCompact {
		s.viewMode = ViewNormal
	} else {
		s.viewMode = ViewCompact
	}
	return s.viewMode
}

// CardScrollOffset returns the vertical scroll offset for a column.
func (s *UIState) CardScrollOffset(columnID int) int {
	return s.cardScrollOffsets[columnID]
}

// SetCardScrollOffset updates the vertical scroll offset for a column.
// Negative offsets are pinned to zero.
func (s *UIState) SetCardScrollOffset(columnID, offset int) {
	if offset < 0 {
		offset = 0
	}
	s.cardScrollOffsets[columnID] = offset
}

// ClampCardScroll keeps a column's scroll offset within the card count.
func (s *UIState) ClampCardScroll(columnID, cardCount int) {
	offset := s.cardScrollOffsets[columnID]
	if offset >= cardCount {
		offset = max(cardCount-1, 0)
	}
	s.cardScrollOffsets[columnID] = offset
}

// ResetSelection returns the selection to the first card of the first column.
func (s *UIState) ResetSelection() {
	s.selectedColumn = 0
	s.selectedCard = 0
}
