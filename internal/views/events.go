package views

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/premiumiptv/landing/internal/sections"
)

// Kind is the name of a browser event forwarded to a view.
type Kind string

const (
	KindScroll    Kind = "scroll"
	KindPointer   Kind = "pointer"
	KindResize    Kind = "resize"
	KindIntersect Kind = "intersect"
	KindFAQ       Kind = "faq"
	KindOpen      Kind = "open"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindScroll, KindPointer, KindResize, KindIntersect, KindFAQ, KindOpen:
		return k, nil
	}
	return "", fmt.Errorf("views: unknown event kind %q", s)
}

// Event carries the datastar signals the browser sent with a DOM event.
type Event struct {
	Kind    Kind
	Signals json.RawMessage
}

// Signals is the subset of client signals a view reads. Every group is
// optional; a handler only looks at the group for its event kind.
type Signals struct {
	Layout   *LayoutSignals   `json:"layout,omitempty"`
	Showcase *ShowcaseSignals `json:"showcase,omitempty"`
	Lazy     *LazySignals     `json:"lazy,omitempty"`
	FAQ      *FAQSignals      `json:"faq,omitempty"`
	Open     *OpenSignals     `json:"open,omitempty"`
}

type LayoutSignals struct {
	ScrollY  float64                  `json:"scrollY"`
	Sections map[string]sections.Rect `json:"sections"`
}

type ShowcaseSignals struct {
	Hover        bool    `json:"hover"`
	ContentWidth float64 `json:"contentWidth"`
	VisibleWidth float64 `json:"visibleWidth"`
}

type LazySignals struct {
	ID    string  `json:"id"`
	Ratio float64 `json:"ratio"`
}

type FAQSignals struct {
	Toggle int `json:"toggle"`
}

type OpenSignals struct {
	Target string `json:"target"`
	Plan   string `json:"plan"`
	Price  string `json:"price"`
	Period string `json:"period"`
}

func (e Event) decode() (Signals, error) {
	var s Signals
	if len(e.Signals) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(e.Signals, &s); err != nil {
		return s, fmt.Errorf("views: decode %s signals: %w", e.Kind, err)
	}
	return s, nil
}

// Patches pushed back to the browser.

type navPatch struct {
	Nav struct {
		Active   string `json:"active"`
		Scrolled bool   `json:"scrolled"`
	} `json:"nav"`
}

type showcasePatch struct {
	Showcase struct {
		Offset float64 `json:"offset"`
	} `json:"showcase"`
}

type heroPatch struct {
	Hero struct {
		Index int    `json:"index"`
		Image string `json:"image"`
	} `json:"hero"`
}

type faqPatch struct {
	FAQ struct {
		Open int `json:"open"`
	} `json:"faq"`
}

// Subject is the NATS subject browser events of kind are published on for
// a view.
func Subject(viewID string, kind Kind) string {
	return "views." + viewID + "." + string(kind)
}

// SubjectAll matches every event subject of a view.
func SubjectAll(viewID string) string {
	return "views." + viewID + ".*"
}

// KindFromSubject extracts the event kind from a subject built by Subject.
func KindFromSubject(subject string) (Kind, error) {
	i := strings.LastIndexByte(subject, '.')
	if i < 0 {
		return "", fmt.Errorf("views: malformed subject %q", subject)
	}
	return ParseKind(subject[i+1:])
}
