package rotator

import "time"

const DefaultInterval = 5 * time.Second

// Frame is one keyframe of the crossfade. Values are CSS-ready.
type Frame struct {
	Opacity    float64 `json:"opacity"`
	Scale      float64 `json:"scale"`
	Blur       float64 `json:"blur"`
	Brightness float64 `json:"brightness"`
}

// Transition describes how one image replaces the next. It is presentation
// state only.
type Transition struct {
	Initial  Frame         `json:"initial"`
	Animate  Frame         `json:"animate"`
	Exit     Frame         `json:"exit"`
	Duration time.Duration `json:"-"`
}

// Crossfade is the hero background transition.
var Crossfade = Transition{
	Initial:  Frame{Opacity: 0, Scale: 1.05, Blur: 2, Brightness: 0.8},
	Animate:  Frame{Opacity: 1, Scale: 1, Blur: 0, Brightness: 1},
	Exit:     Frame{Opacity: 0, Scale: 0.95, Blur: 1, Brightness: 0.9},
	Duration: 300 * time.Millisecond,
}

// Rotator cycles an index over a fixed list of images on a wall-clock
// schedule.
type Rotator struct {
	images     []string
	interval   time.Duration
	transition Transition

	index int
	timer *time.Ticker
}

func New(images []string, interval time.Duration, transition Transition) *Rotator {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Rotator{
		images:     append([]string(nil), images...),
		interval:   interval,
		transition: transition,
	}
}

// Advance moves to the next image, wrapping to the first after the last.
func (r *Rotator) Advance() int {
	if len(r.images) == 0 {
		return 0
	}
	r.index = (r.index + 1) % len(r.images)
	return r.index
}

func (r *Rotator) Index() int { return r.index }

// Current returns the image at the current index, or "" for an empty list.
func (r *Rotator) Current() string {
	if len(r.images) == 0 {
		return ""
	}
	return r.images[r.index]
}

func (r *Rotator) Len() int { return len(r.images) }

func (r *Rotator) Transition() Transition { return r.transition }

// Start arms the rotation timer. A list with fewer than two images never
// needs to rotate, so no timer is created for it.
func (r *Rotator) Start() {
	if r.timer != nil || len(r.images) < 2 {
		return
	}
	r.timer = time.NewTicker(r.interval)
}

// Stop clears the timer. Safe to call more than once.
func (r *Rotator) Stop() {
	if r.timer == nil {
		return
	}
	r.timer.Stop()
	r.timer = nil
}

// C returns the timer channel, or nil when stopped.
func (r *Rotator) C() <-chan time.Time {
	if r.timer == nil {
		return nil
	}
	return r.timer.C
}
