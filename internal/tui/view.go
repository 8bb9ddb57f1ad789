package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/mgolovko/tsekh/internal/gestures"
	"github.com/mgolovko/tsekh/internal/tui/components"
	"github.com/mgolovko/tsekh/internal/tui/state"
	"github.com/mgolovko/tsekh/internal/tui/theme"
)

// View renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.MouseMode = tea.MouseModeAllMotion
	view.BackgroundColor = lipgloss.Color(theme.Background)

	// Wait for terminal size to be initialized
	if m.uiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	base := m.renderBase()
	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(base),
	}

	if left := m.renderLeftIndicatorLayer(); left != nil {
		layers = append(layers, left)
	}
	if right := m.renderRightIndicatorLayer(); right != nil {
		layers = append(layers, right)
	}
	if ghost := m.renderDragGhostLayer(); ghost != nil {
		layers = append(layers, ghost)
	}

	switch m.uiState.Mode() {
	case state.CardFormMode:
		if l := m.renderCardFormLayer(); l != nil {
			layers = append(layers, l)
		}
	case state.ColumnFormMode:
		if l := m.renderColumnFormLayer(); l != nil {
			layers = append(layers, l)
		}
	case state.DeleteCardConfirmMode:
		if l := m.renderDeleteCardConfirmLayer(); l != nil {
			layers = append(layers, l)
		}
	case state.DeleteColumnConfirmMode:
		if l := m.renderDeleteColumnConfirmLayer(); l != nil {
			layers = append(layers, l)
		}
	case state.HelpMode:
		layers = append(layers, m.renderHelpLayer())
	}

	canvas := lipgloss.NewCanvas(layers...)
	view.Content = canvas.Render()
	return view
}

// renderBase renders the board viewport, notifications, and status bar.
func (m Model) renderBase() string {
	boardView := m.renderBoardViewport()

	statusBar := components.RenderStatusBar(components.StatusBarProps{
		Width:      m.uiState.Width(),
		Connection: m.connectionState.Status().String(),
		LastSync:   m.lastSync,
	})

	notifLine := m.renderNotifications()

	return lipgloss.JoinVertical(lipgloss.Left, boardView, notifLine, statusBar)
}

// renderBoardViewport renders all columns and slices the visible window
// out of the full canvas at the current horizontal offset.
func (m Model) renderBoardViewport() string {
	cols := m.columns()
	height := m.uiState.ContentHeight()

	if len(cols) == 0 {
		return lipgloss.Place(
			m.uiState.Width(), height,
			lipgloss.Center, lipgloss.Center,
			components.SubtleStyle.Italic(true).Render("No stages yet. Press A to add one."),
		)
	}

	compact := m.uiState.ViewMode() == state.ViewCompact
	gap := strings.Repeat(" ", components.ColumnGap)

	rendered := make([]string, 0, len(cols)*2)
	for i, col := range cols {
		selectedIdx := -1
		if i == m.uiState.SelectedColumn() {
			selectedIdx = m.uiState.SelectedCard()
		}
		rendered = append(rendered, components.RenderColumn(components.ColumnProps{
			Column:          col,
			Selected:        i == m.uiState.SelectedColumn(),
			SelectedCardIdx: selectedIdx,
			DropTarget:      m.hoverColumnID == col.ID && m.dragActive(),
			Height:          height,
			ScrollOffset:    m.uiState.CardScrollOffset(col.ID),
			Compact:         compact,
			PrepaymentTotal: m.store.ColumnPrepaymentTotal(col.ID),
		}))
		if i < len(cols)-1 {
			rendered = append(rendered, gap)
		}
	}
	full := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)

	// Slice the viewport window out of each line at cell granularity.
	offset := m.scroll.Offset()
	width := m.uiState.Width()
	lines := strings.Split(full, "\n")
	for i, line := range lines {
		lines[i] = ansi.Cut(line, offset, offset+width)
	}
	return strings.Join(lines, "\n")
}

func (m Model) dragActive() bool {
	return m.hoverColumnID != 0
}

// renderNotifications renders the single notification line above the
// status bar.
func (m Model) renderNotifications() string {
	if !m.notificationState.HasAny() {
		return ""
	}

	parts := make([]string, 0, len(m.notificationState.All()))
	for _, n := range m.notificationState.All() {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.InfoFg))
		if n.Level == state.LevelError {
			style = lipgloss.NewStyle().
				Foreground(lipgloss.Color(theme.ErrorFg)).
				Background(lipgloss.Color(theme.ErrorBg)).
				Padding(0, 1)
		}
		parts = append(parts, style.Render(n.Message))
	}
	return strings.Join(parts, " ")
}

// ============================================================================
// LAYERS
// ============================================================================

// renderLeftIndicatorLayer shows the left edge scroll indicator when there
// is hidden content to the left.
func (m Model) renderLeftIndicatorLayer() *lipgloss.Layer {
	if !m.scroll.ShowLeft() {
		return nil
	}
	return lipgloss.NewLayer(components.IndicatorStyle.Render("‹")).
		X(0).
		Y(m.uiState.ContentHeight() / 2)
}

// renderRightIndicatorLayer shows the right edge scroll indicator when
// there is hidden content to the right.
func (m Model) renderRightIndicatorLayer() *lipgloss.Layer {
	if !m.scroll.ShowRight() {
		return nil
	}
	content := components.IndicatorStyle.Render("›")
	return lipgloss.NewLayer(content).
		X(max(m.uiState.Width()-lipgloss.Width(content), 0)).
		Y(m.uiState.ContentHeight() / 2)
}

// renderDragGhostLayer renders the dragged card floating at the pointer.
// Keyboard pick-ups have no pointer position and get no ghost; the drop
// target highlight carries the feedback instead.
func (m Model) renderDragGhostLayer() *lipgloss.Layer {
	g := m.drag.Gesture()
	if g.Kind != gestures.KindCardDrag || (m.dragX == 0 && m.dragY == 0) {
		return nil
	}

	card, _, ok := m.store.FindCard(g.CardDrag.CardID)
	if !ok {
		return nil
	}

	ghost := components.RenderCard(card, true, true)
	x := min(max(m.dragX-2, 0), max(m.uiState.Width()-lipgloss.Width(ghost), 0))
	y := min(max(m.dragY-1, 0), max(m.uiState.Height()-lipgloss.Height(ghost), 0))
	return lipgloss.NewLayer(ghost).X(x).Y(y)
}

// renderCardFormLayer renders the order form modal as a centered layer.
func (m Model) renderCardFormLayer() *lipgloss.Layer {
	if m.formState.CardForm == nil {
		return nil
	}

	title := "New Order"
	if m.formState.EditingCardID != 0 {
		title = "Edit Order"
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Highlight))

	formBox := components.FormBoxStyle.
		Width(m.uiState.Width() / 2).
		Render(titleStyle.Render(title) + "\n\n" + m.formState.CardForm.View())

	return m.centeredLayer(formBox)
}

// renderColumnFormLayer renders the stage form modal as a centered layer.
func (m Model) renderColumnFormLayer() *lipgloss.Layer {
	if m.formState.ColumnForm == nil {
		return nil
	}

	style := components.CreateBoxStyle
	if m.formState.EditingColumnID != 0 {
		style = components.FormBoxStyle
	}
	formBox := style.
		Width(50).
		Render(m.formState.ColumnForm.View())

	return m.centeredLayer(formBox)
}

// renderDeleteCardConfirmLayer renders the card deletion confirmation.
func (m Model) renderDeleteCardConfirmLayer() *lipgloss.Layer {
	card := m.currentCard()
	if card == nil {
		return nil
	}

	confirmBox := components.DeleteConfirmBoxStyle.
		Width(50).
		Render(fmt.Sprintf("Delete order '%s - %s'?\n\n[y]es  [n]o", card.Client, card.ProductName))

	return m.centeredLayer(confirmBox)
}

// renderDeleteColumnConfirmLayer renders the stage deletion confirmation
// with a card count warning.
func (m Model) renderDeleteColumnConfirmLayer() *lipgloss.Layer {
	col := m.currentColumn()
	if col == nil {
		return nil
	}

	var content string
	if len(col.Cards) > 0 {
		content = fmt.Sprintf(
			"Delete stage '%s'?\nThis will also delete %d order(s).\n\n[y]es  [n]o",
			col.Title, len(col.Cards),
		)
	} else {
		content = fmt.Sprintf("Delete stage '%s'?\n\n[y]es  [n]o", col.Title)
	}

	confirmBox := components.DeleteConfirmBoxStyle.
		Width(50).
		Render(content)

	return m.centeredLayer(confirmBox)
}

// renderHelpLayer renders the help screen inside a scrollable viewport.
func (m Model) renderHelpLayer() *lipgloss.Layer {
	width := min(m.uiState.Width()*3/4, 70)
	height := max(m.uiState.Height()*3/4, 10)

	if !m.helpState.Ready {
		m.helpState.Viewport = viewport.New()
		m.helpState.Ready = true
	}
	vp := &m.helpState.Viewport
	vp.SetWidth(width - 2)
	vp.SetHeight(height - 2)
	vp.SetContent(m.renderHelp(width - 4))

	helpBox := components.HelpBoxStyle.
		Width(width).
		Render(vp.View())
	return m.centeredLayer(helpBox)
}

// centeredLayer positions content at the center of the screen.
func (m Model) centeredLayer(content string) *lipgloss.Layer {
	x := max((m.uiState.Width()-lipgloss.Width(content))/2, 0)
	y := max((m.uiState.Height()-lipgloss.Height(content))/2, 0)
	return lipgloss.NewLayer(content).X(x).Y(y)
}
