package tui

import (
	"fmt"
	"strings"
	"sync"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/glamour"

	"github.com/mgolovko/tsekh/internal/config"
	"github.com/mgolovko/tsekh/internal/tui/state"
)

// helpMarkdown builds the help text from the active key bindings.
func helpMarkdown(km config.KeyMappings) string {
	return fmt.Sprintf(`# Tsekh

## Navigation

| Key | Action |
|-----|--------|
| %s / %s | previous / next stage |
| %s / %s | previous / next order |
| %s / %s | scroll board left / right |
| %s | pick up / drop order |
| %s | toggle compact view |
| %s | refresh from order service |

## Editing

| Key | Action |
|-----|--------|
| %s | add order |
| %s | edit order |
| %s | delete order |
| %s | add stage |
| %s | rename stage |
| %s | delete stage |

Drag orders between stages with the mouse. Drag empty board space to pan.
`,
		km.MoveLeft, km.MoveRight,
		km.MoveUp, km.MoveDown,
		km.ScrollLeft, km.ScrollRight,
		km.PickUp,
		km.ToggleView,
		km.Refresh,
		km.AddCard, km.EditCard, km.DeleteCard,
		km.AddColumn, km.RenameColumn, km.DeleteColumn,
	)
}

// Cache glamour renderers by width to avoid expensive re-creation
var helpRendererCache sync.Map // map[int]*glamour.TermRenderer

func helpRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := helpRendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	helpRendererCache.Store(width, renderer)
	return renderer, nil
}

// renderHelp renders the help markdown for the given width.
func (m Model) renderHelp(width int) string {
	md := helpMarkdown(m.config.KeyMappings)
	renderer, err := helpRenderer(width)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}

// handleHelpMode handles input in the help screen. Unhandled keys go to
// the viewport so the help text scrolls with the usual bindings.
func (m Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.config.KeyMappings.Help, m.config.KeyMappings.Quit, "esc", "enter", " ":
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	}

	vp, cmd := m.helpState.Viewport.Update(msg)
	m.helpState.Viewport = vp
	return m, cmd
}
