// Package scrollview derives the "more content exists left/right" hints for
// the horizontally scrolling column canvas and owns offset clamping.
package scrollview

// DefaultThreshold keeps the left indicator from flickering at the rest
// position; offsets inside the threshold count as "at the edge".
const DefaultThreshold = 10

// DefaultStep is the distance, in cells, of one indicator-click scroll.
const DefaultStep = 30

// Controller keeps the current scroll geometry and recomputes the
// indicator flags from it. It must be refreshed on scroll, resize, and any
// board mutation that changes the content width (column add/delete).
type Controller struct {
	offset        int
	contentWidth  int
	viewportWidth int
	threshold     int
	step          int
}

// NewController creates a controller; non-positive threshold or step fall
// back to the defaults.
func NewController(threshold, step int) *Controller {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if step <= 0 {
		step = DefaultStep
	}
	return &Controller{threshold: threshold, step: step}
}

// Offset returns the current horizontal scroll offset in cells.
func (c *Controller) Offset() int {
	return c.offset
}

// SetOffset moves the canvas to the given offset, clamped to the
// scrollable range.
func (c *Controller) SetOffset(offset int) {
	c.offset = c.clamp(offset)
}

// ScrollBy moves the canvas by delta cells, clamped. Used by wheel events
// and by the indicator click targets.
func (c *Controller) ScrollBy(delta int) {
	c.SetOffset(c.offset + delta)
}

// Step returns the fixed indicator-click scroll distance.
func (c *Controller) Step() int {
	return c.step
}

// Resize updates the geometry after a terminal resize or a content-width
// change and re-clamps the offset against the new range.
func (c *Controller) Resize(contentWidth, viewportWidth int) {
	c.contentWidth = contentWidth
	c.viewportWidth = viewportWidth
	c.offset = c.clamp(c.offset)
}

// ShowLeft reports whether content exists to the left of the viewport.
func (c *Controller) ShowLeft() bool {
	return c.offset > c.threshold
}

// ShowRight reports whether content exists to the right of the viewport.
// The overflow disjunct makes the indicator visible before any scrolling
// has occurred.
func (c *Controller) ShowRight() bool {
	return c.offset < c.contentWidth-c.viewportWidth-c.threshold ||
		c.contentWidth > c.viewportWidth
}

func (c *Controller) clamp(offset int) int {
	maxOffset := c.contentWidth - c.viewportWidth
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
