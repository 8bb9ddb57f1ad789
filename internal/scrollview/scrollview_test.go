package scrollview

import "testing"

func TestIndicatorVisibility(t *testing.T) {
	tests := []struct {
		name          string
		contentWidth  int
		viewportWidth int
		offset        int
		wantLeft      bool
		wantRight     bool
	}{
		{
			name:         "content fits, at rest",
			contentWidth: 80, viewportWidth: 100, offset: 0,
			wantLeft: false, wantRight: false,
		},
		{
			name:         "overflow, at rest shows right only",
			contentWidth: 300, viewportWidth: 100, offset: 0,
			wantLeft: false, wantRight: true,
		},
		{
			name:         "scrolled into the middle shows both",
			contentWidth: 300, viewportWidth: 100, offset: 50,
			wantLeft: true, wantRight: true,
		},
		{
			name:         "inside threshold counts as at rest",
			contentWidth: 300, viewportWidth: 100, offset: 5,
			wantLeft: false, wantRight: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(DefaultThreshold, DefaultStep)
			c.Resize(tt.contentWidth, tt.viewportWidth)
			c.SetOffset(tt.offset)

			if got := c.ShowLeft(); got != tt.wantLeft {
				t.Errorf("ShowLeft() = %v, want %v", got, tt.wantLeft)
			}
			if got := c.ShowRight(); got != tt.wantRight {
				t.Errorf("ShowRight() = %v, want %v", got, tt.wantRight)
			}
		})
	}
}

func TestOffsetClamping(t *testing.T) {
	c := NewController(DefaultThreshold, DefaultStep)
	c.Resize(300, 100)

	c.SetOffset(-50)
	if got := c.Offset(); got != 0 {
		t.Errorf("offset after negative set = %d, want 0", got)
	}

	c.SetOffset(10_000)
	if got := c.Offset(); got != 200 {
		t.Errorf("offset after overshoot = %d, want 200", got)
	}

	// Shrinking the content re-clamps the stored offset.
	c.Resize(150, 100)
	if got := c.Offset(); got != 50 {
		t.Errorf("offset after content shrink = %d, want 50", got)
	}

	// Content narrower than the viewport pins the offset at zero.
	c.Resize(80, 100)
	if got := c.Offset(); got != 0 {
		t.Errorf("offset with no overflow = %d, want 0", got)
	}
}

func TestScrollBy(t *testing.T) {
	c := NewController(DefaultThreshold, 30)
	c.Resize(300, 100)

	c.ScrollBy(c.Step())
	if got := c.Offset(); got != 30 {
		t.Errorf("offset after one step = %d, want 30", got)
	}

	c.ScrollBy(-100)
	if got := c.Offset(); got != 0 {
		t.Errorf("offset after big negative scroll = %d, want 0", got)
	}
}

func TestDefaultsFallback(t *testing.T) {
	c := NewController(0, 0)
	c.Resize(300, 100)
	c.SetOffset(DefaultThreshold)

	if c.ShowLeft() {
		t.Error("offset equal to threshold must not show the left indicator")
	}
	if c.Step() != DefaultStep {
		t.Errorf("Step() = %d, want %d", c.Step(), DefaultStep)
	}
}
