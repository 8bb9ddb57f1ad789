// Package gestures tracks the two pointer gestures the board supports:
// dragging a card between columns and panning the column canvas. Both are
// modeled as a single tagged union so they are mutually exclusive by
// construction rather than by convention.
package gestures

import "errors"

// ErrGestureActive is returned when a gesture begins while another one is
// already in progress.
var ErrGestureActive = errors.New("another gesture is already active")

// DefaultPanGain amplifies pointer motion while panning so a short drag
// covers a lot of canvas. Must be > 1.
const DefaultPanGain = 2

// Kind identifies which gesture, if any, is in progress.
type Kind int

const (
	KindIdle Kind = iota
	KindCardDrag
	KindPan
)

// CardDrag carries the identity of the dragged card. It is the card's id,
// not a reference: drop-time re-resolves the id against current board
// state, so a snapshot landing mid-gesture degrades to a harmless no-op.
type CardDrag struct {
	CardID         int
	SourceColumnID int
}

// Pan captures where a canvas pan started.
type Pan struct {
	StartX      int
	StartOffset int
}

// Gesture is the tagged union of gesture states. Exactly one of CardDrag
// and Pan is meaningful, selected by Kind.
type Gesture struct {
	Kind     Kind
	CardDrag CardDrag
	Pan      Pan
}

// Controller owns the gesture state machine. Wheel scrolling deliberately
// does not appear here: wheel events are independent of both gestures and
// always allowed.
type Controller struct {
	gesture Gesture
	panGain int
}

// NewController creates a controller with the given pan gain; values < 1
// fall back to DefaultPanGain.
func NewController(panGain int) *Controller {
	if panGain < 1 {
		panGain = DefaultPanGain
	}
	return &Controller{panGain: panGain}
}

// Kind returns which gesture is currently in progress.
func (c *Controller) Kind() Kind {
	return c.gesture.Kind
}

// Gesture returns the current gesture state.
func (c *Controller) Gesture() Gesture {
	return c.gesture
}

// BeginCardDrag starts a card drag. A pointer-down on a card takes priority
// over the canvas beneath it, but it can never preempt a gesture that is
// already running.
func (c *Controller) BeginCardDrag(cardID, sourceColumnID int) error {
	if c.gesture.Kind != KindIdle {
		return ErrGestureActive
	}
	c.gesture = Gesture{
		Kind:     KindCardDrag,
		CardDrag: CardDrag{CardID: cardID, SourceColumnID: sourceColumnID},
	}
	return nil
}

// Drop ends a card drag and returns its payload. The caller resolves the
// drop target and performs the single board mutation; hovering during the
// drag must never have mutated anything. Returns false if no drag was in
// progress.
func (c *Controller) Drop() (CardDrag, bool) {
	if c.gesture.Kind != KindCardDrag {
		return CardDrag{}, false
	}
	payload := c.gesture.CardDrag
	c.gesture = Gesture{}
	return payload, true
}

// BeginPan starts a canvas pan from the given pointer position and scroll
// offset. Fails while a card drag is active.
func (c *Controller) BeginPan(startX, startOffset int) error {
	if c.gesture.Kind != KindIdle {
		return ErrGestureActive
	}
	c.gesture = Gesture{
		Kind: KindPan,
		Pan:  Pan{StartX: startX, StartOffset: startOffset},
	}
	return nil
}

// PanOffset translates the current pointer position into the scroll offset
// the canvas should move to. The result is unclamped; clamping belongs to
// the scroll controller. Returns false when no pan is in progress.
func (c *Controller) PanOffset(currentX int) (int, bool) {
	if c.gesture.Kind != KindPan {
		return 0, false
	}
	p := c.gesture.Pan
	return p.StartOffset - (currentX-p.StartX)*c.panGain, true
}

// EndPan ends a pan. Pointer-up anywhere ends the gesture, so the canvas
// can never get stuck panning when the pointer leaves the board.
func (c *Controller) EndPan() bool {
	if c.gesture.Kind != KindPan {
		return false
	}
	c.gesture = Gesture{}
	return true
}

// Release handles a pointer-up regardless of which gesture is active,
// returning the drag payload when a card drag was in progress.
func (c *Controller) Release() (CardDrag, Kind) {
	kind := c.gesture.Kind
	switch kind {
	case KindCardDrag:
		payload, _ := c.Drop()
		return payload, kind
	case KindPan:
		c.EndPan()
	}
	return CardDrag{}, kind
}
