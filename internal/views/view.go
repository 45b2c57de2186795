// Package views drives one live page view. A view is mounted when the
// browser opens its event stream and unmounted when that stream closes.
// Browser events, carousel frames and hero rotations are all handled on the
// goroutine running Run, so the component state needs no locking.
package views

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	g "maragu.dev/gomponents"

	"github.com/premiumiptv/landing/internal/carousel"
	"github.com/premiumiptv/landing/internal/lazyload"
	"github.com/premiumiptv/landing/internal/metrics"
	"github.com/premiumiptv/landing/internal/redirect"
	"github.com/premiumiptv/landing/internal/rotator"
	"github.com/premiumiptv/landing/internal/sections"
)

// ScrolledOffset is the vertical scroll past which the header is condensed.
const ScrolledOffset = 20

// MountedScript tells the page its view is live. The page answers with
// fresh layout, carousel and image visibility reports, since any sent
// before the mount were dropped.
const MountedScript = "document.dispatchEvent(new CustomEvent('view:mounted'))"

// Patcher pushes state back to the browser.
type Patcher interface {
	Signals(v any) error
	Fragment(n g.Node) error
	Script(js string) error
}

type Options struct {
	Lang string

	SectionIDs []string

	CarouselStep     float64
	CarouselInterval time.Duration

	HeroImages   []string
	HeroInterval time.Duration

	Images        []lazyload.Image
	LazyThreshold float64
	// RenderImage renders the revealed form of a deferred image.
	RenderImage func(img lazyload.Image) g.Node

	FAQSize int

	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

type View struct {
	id   string
	opts Options
	log  *slog.Logger

	carousel *carousel.Carousel
	hero     *rotator.Rotator
	sections *sections.Tracker
	images   *lazyload.Registry
	faq      *Accordion

	scrolled bool
}

func New(id string, opts Options) *View {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &View{
		id:       id,
		opts:     opts,
		log:      log.With("view", id),
		carousel: carousel.New(opts.CarouselStep, opts.CarouselInterval),
		hero:     rotator.New(opts.HeroImages, opts.HeroInterval, rotator.Crossfade),
		sections: sections.NewTracker(opts.SectionIDs),
		images:   lazyload.NewRegistry(opts.LazyThreshold, opts.Images),
		faq:      NewAccordion(opts.FAQSize),
	}
}

func (v *View) ID() string { return v.id }

// Mount starts the schedules and pushes the initial state.
func (v *View) Mount(p Patcher) error {
	v.images.ObserveAll()
	v.carousel.Start()
	v.hero.Start()

	if err := p.Signals(v.nav()); err != nil {
		return err
	}
	if err := p.Signals(v.heroState()); err != nil {
		return err
	}
	return p.Script(MountedScript)
}

// Unmount stops every schedule and observer. It is safe to call more than once.
func (v *View) Unmount() {
	v.carousel.Stop()
	v.hero.Stop()
	v.images.StopAll()
}

// Run mounts the view and serves events until ctx is done, events is closed
// or the browser can no longer be written to.
func (v *View) Run(ctx context.Context, events <-chan Event, p Patcher) error {
	defer v.Unmount()
	if err := v.Mount(p); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-v.carousel.C():
			if err := v.Frame(p); err != nil {
				return err
			}
		case <-v.hero.C():
			if err := v.Rotate(p); err != nil {
				return err
			}
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := v.Handle(ev, p); err != nil {
				var perr *patchError
				if errors.As(err, &perr) {
					return perr.err
				}
				v.log.Debug("dropping event", "kind", ev.Kind, "error", err)
			}
		}
	}
}

// Frame advances the showcase carousel by one step. Nothing is pushed when
// the offset did not change, as with content narrower than its container.
func (v *View) Frame(p Patcher) error {
	prev := v.carousel.Offset()
	offset, moved := v.carousel.Tick()
	if !moved || offset == prev {
		return nil
	}
	var patch showcasePatch
	patch.Showcase.Offset = offset
	return p.Signals(patch)
}

// Rotate shows the next hero image.
func (v *View) Rotate(p Patcher) error {
	v.hero.Advance()
	return p.Signals(v.heroState())
}

// Handle applies one browser event. Malformed events are reported as plain
// errors; failures writing to the browser are wrapped so Run can stop.
func (v *View) Handle(ev Event, p Patcher) error {
	s, err := ev.decode()
	if err != nil {
		return err
	}
	if v.opts.Metrics != nil {
		v.opts.Metrics.Events.WithLabelValues(string(ev.Kind)).Inc()
	}

	switch ev.Kind {
	case KindScroll:
		return v.scroll(s.Layout, p)
	case KindPointer:
		if s.Showcase != nil {
			v.carousel.SetHover(s.Showcase.Hover)
		}
		return nil
	case KindResize:
		if s.Showcase != nil {
			v.carousel.Resize(s.Showcase.ContentWidth, s.Showcase.VisibleWidth)
		}
		return v.scroll(s.Layout, p)
	case KindIntersect:
		return v.intersect(s.Lazy, p)
	case KindFAQ:
		if s.FAQ == nil {
			return errors.New("views: faq event without toggle")
		}
		var patch faqPatch
		patch.FAQ.Open = v.faq.Toggle(s.FAQ.Toggle)
		return wrapPatch(p.Signals(patch))
	case KindOpen:
		return v.open(s.Open)
	}
	return errors.New("views: unhandled event " + string(ev.Kind))
}

func (v *View) scroll(l *LayoutSignals, p Patcher) error {
	if l == nil {
		return nil
	}
	_, changed := v.sections.Update(l.Sections)
	scrolled := l.ScrollY > ScrolledOffset
	if !changed && scrolled == v.scrolled {
		return nil
	}
	v.scrolled = scrolled
	return wrapPatch(p.Signals(v.nav()))
}

func (v *View) intersect(l *LazySignals, p Patcher) error {
	if l == nil {
		return errors.New("views: intersect event without entry")
	}
	img, revealed := v.images.Report(l.ID, l.Ratio)
	if !revealed {
		return nil
	}
	if v.opts.Metrics != nil {
		v.opts.Metrics.LazyLoads.Inc()
	}
	if v.opts.RenderImage == nil {
		return nil
	}
	return wrapPatch(p.Fragment(v.opts.RenderImage(img)))
}

// open records a contact link click. The link itself opens the destination
// through the outbound route, inside the click.
func (v *View) open(o *OpenSignals) error {
	if o == nil {
		return errors.New("views: open event without target")
	}
	target, err := redirect.ParseTarget(o.Target)
	if err != nil {
		return err
	}
	v.log.Debug("contact link opened", "target", target, "plan", o.Plan)
	return nil
}

func (v *View) nav() navPatch {
	var patch navPatch
	patch.Nav.Active = v.sections.Active()
	patch.Nav.Scrolled = v.scrolled
	return patch
}

func (v *View) heroState() heroPatch {
	var patch heroPatch
	patch.Hero.Index = v.hero.Index()
	patch.Hero.Image = v.hero.Current()
	return patch
}

// State is a snapshot used by tests and debug logging.
type State struct {
	Active   string  `json:"active"`
	Scrolled bool    `json:"scrolled"`
	Offset   float64 `json:"offset"`
	Hovered  bool    `json:"hovered"`
	Hero     int     `json:"hero"`
	FAQ      int     `json:"faq"`
}

func (v *View) State() State {
	return State{
		Active:   v.sections.Active(),
		Scrolled: v.scrolled,
		Offset:   v.carousel.Offset(),
		Hovered:  v.carousel.Hovered(),
		Hero:     v.hero.Index(),
		FAQ:      v.faq.Open(),
	}
}

func (s State) String() string {
	b, _ := json.Marshal(s)
	return string(b)
}

type patchError struct{ err error }

func (e *patchError) Error() string { return "views: patch: " + e.err.Error() }

func (e *patchError) Unwrap() error { return e.err }

func wrapPatch(err error) error {
	if err == nil {
		return nil
	}
	return &patchError{err: err}
}
