package lazyload

import "sync"

// DefaultThreshold is the fraction of an element that must be on screen
// before its source is requested.
const DefaultThreshold = 0.1

type State uint8

const (
	Pending State = iota
	Visible
)

func (s State) String() string {
	if s == Visible {
		return "visible"
	}
	return "pending"
}

// Tracker is a one-shot visibility latch for a single deferred element.
// Once a report crosses the threshold the state flips to Visible, observation
// stops and every later report is ignored.
type Tracker struct {
	threshold float64
	state     State
	observing bool
}

func NewTracker(threshold float64) *Tracker {
	switch {
	case threshold <= 0:
		threshold = DefaultThreshold
	case threshold > 1:
		threshold = 1
	}
	return &Tracker{threshold: threshold}
}

// Observe starts observation. It is a no-op once the element is visible.
func (t *Tracker) Observe() {
	if t.state == Visible {
		return
	}
	t.observing = true
}

// Report feeds an intersection ratio into the tracker. It returns true only
// for the report that flips the state.
func (t *Tracker) Report(ratio float64) bool {
	if !t.observing || t.state == Visible {
		return false
	}
	if ratio < t.threshold {
		return false
	}
	t.state = Visible
	t.observing = false
	return true
}

// Stop releases the observer. Safe to call more than once.
func (t *Tracker) Stop() { t.observing = false }

func (t *Tracker) State() State { return t.state }

func (t *Tracker) Visible() bool { return t.state == Visible }

func (t *Tracker) Observing() bool { return t.observing }

func (t *Tracker) Threshold() float64 { return t.threshold }

// Image is a deferred media element.
type Image struct {
	ID       string
	Src      string
	Fallback string
	Alt      string
}

// Registry owns the trackers of one page view.
type Registry struct {
	mu        sync.Mutex
	threshold float64
	images    map[string]Image
	trackers  map[string]*Tracker
}

func NewRegistry(threshold float64, images []Image) *Registry {
	r := &Registry{
		threshold: threshold,
		images:    make(map[string]Image, len(images)),
		trackers:  make(map[string]*Tracker, len(images)),
	}
	for _, img := range images {
		r.images[img.ID] = img
	}
	return r
}

// ObserveAll attaches an observing tracker to every registered image.
func (r *Registry) ObserveAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id := range r.images {
		t, ok := r.trackers[id]
		if !ok {
			t = NewTracker(r.threshold)
			r.trackers[id] = t
		}
		t.Observe()
	}
}

// Report forwards an intersection ratio for image id. The image is returned
// with ok=true only when this report made it visible.
func (r *Registry) Report(id string, ratio float64) (Image, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, found := r.trackers[id]
	if !found {
		return Image{}, false
	}
	if !t.Report(ratio) {
		return Image{}, false
	}
	return r.images[id], true
}

// Visible reports whether image id has been revealed.
func (r *Registry) Visible(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.trackers[id]
	return ok && t.Visible()
}

// StopAll tears down every tracker.
func (r *Registry) StopAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.trackers {
		t.Stop()
	}
}
