package state

import "charm.land/bubbles/v2/viewport"

// HelpState holds the scrollable viewport backing the help screen.
// It lives behind a pointer so the view can lazily size it on first render.
type HelpState struct {
	Viewport viewport.Model
	Ready    bool
}

// NewHelpState creates an uninitialized HelpState.
func NewHelpState() *HelpState {
	return &HelpState{}
}
