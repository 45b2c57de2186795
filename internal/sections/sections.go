package sections

// ReferenceLine is the distance in CSS pixels from the viewport top at which
// a section counts as in focus.
const ReferenceLine = 100.0

// Rect is a section's bounding box relative to the viewport top.
type Rect struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// Contains reports whether the horizontal line at y crosses the rect.
func (r Rect) Contains(y float64) bool {
	return r.Top <= y && r.Bottom >= y
}

// Tracker selects the active section of a page from scroll reports.
type Tracker struct {
	order  []string
	line   float64
	active string
}

// NewTracker builds a tracker over ids in priority order. The first id is
// active until a report says otherwise.
func NewTracker(order []string) *Tracker {
	t := &Tracker{
		order: append([]string(nil), order...),
		line:  ReferenceLine,
	}
	if len(order) > 0 {
		t.active = order[0]
	}
	return t
}

func (t *Tracker) Active() string { return t.active }

// Update recomputes the active section from the latest bounding boxes.
// Missing ids are skipped. When no section contains the reference line the
// previous value is kept. changed is false whenever the active id did not
// move, so callers can skip re-rendering.
func (t *Tracker) Update(rects map[string]Rect) (active string, changed bool) {
	for _, id := range t.order {
		r, ok := rects[id]
		if !ok || !r.Contains(t.line) {
			continue
		}
		if id == t.active {
			return t.active, false
		}
		t.active = id
		return t.active, true
	}
	return t.active, false
}
