package views

// Closed is the accordion index when no entry is expanded.
const Closed = -1

// Accordion keeps at most one FAQ entry expanded.
type Accordion struct {
	size int
	open int
}

func NewAccordion(size int) *Accordion {
	return &Accordion{size: size, open: Closed}
}

// Toggle expands entry i, or collapses it when it is already the open one.
// Out of range indexes leave the state unchanged.
func (a *Accordion) Toggle(i int) int {
	if i < 0 || i >= a.size {
		return a.open
	}
	if a.open == i {
		a.open = Closed
	} else {
		a.open = i
	}
	return a.open
}

func (a *Accordion) Open() int { return a.open }
