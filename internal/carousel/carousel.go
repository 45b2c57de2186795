package carousel

import "time"

const (
	DefaultStep     = 1.0
	DefaultInterval = 33 * time.Millisecond
)

// Carousel advances a horizontal scroll offset by a fixed step on every
// frame tick and wraps to zero at the end of the scrollable width. The
// content is expected to be rendered twice in sequence so the wrap is not
// visible.
//
// A Carousel is owned by a single goroutine.
type Carousel struct {
	step     float64
	interval time.Duration

	offset       float64
	contentWidth float64
	visibleWidth float64
	hovered      bool

	ticker *time.Ticker
}

func New(step float64, interval time.Duration) *Carousel {
	if step <= 0 {
		step = DefaultStep
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Carousel{step: step, interval: interval}
}

// Resize records the measured widths. The offset is kept; the next tick
// wraps it if it no longer fits.
func (c *Carousel) Resize(contentWidth, visibleWidth float64) {
	c.contentWidth = max(contentWidth, 0)
	c.visibleWidth = max(visibleWidth, 0)
}

// MaxScroll may be zero or negative when the content fits.
func (c *Carousel) MaxScroll() float64 { return c.contentWidth - c.visibleWidth }

// Tick advances the offset by one step. It reports false and leaves the
// offset untouched while the pointer hovers the container.
func (c *Carousel) Tick() (float64, bool) {
	if c.hovered {
		return c.offset, false
	}
	next := c.offset + c.step
	if next >= c.MaxScroll() {
		next = 0
	}
	c.offset = next
	return c.offset, true
}

// SetHover pauses or resumes motion. Resuming continues from the same offset.
func (c *Carousel) SetHover(hovered bool) { c.hovered = hovered }

func (c *Carousel) Hovered() bool { return c.hovered }

func (c *Carousel) Offset() float64 { return c.offset }

// Start begins the frame schedule. Calling Start on a running carousel is a
// no-op.
func (c *Carousel) Start() {
	if c.ticker != nil {
		return
	}
	c.ticker = time.NewTicker(c.interval)
}

// Stop tears the frame schedule down. Safe to call more than once.
func (c *Carousel) Stop() {
	if c.ticker == nil {
		return
	}
	c.ticker.Stop()
	c.ticker = nil
}

// C returns the frame channel, or nil when stopped. A nil channel blocks
// forever in a select, which is what a stopped schedule should do.
func (c *Carousel) C() <-chan time.Time {
	if c.ticker == nil {
		return nil
	}
	return c.ticker.C
}
