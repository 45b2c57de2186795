package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	datastar "github.com/starfederation/datastar/sdk/go"
	g "maragu.dev/gomponents"

	"github.com/premiumiptv/landing/internal/catalog"
	"github.com/premiumiptv/landing/internal/i18n"
	"github.com/premiumiptv/landing/internal/metrics"
	isessions "github.com/premiumiptv/landing/internal/sessions"
	"github.com/premiumiptv/landing/internal/views"
	"github.com/premiumiptv/landing/web/components"
)

// ViewConfig tunes the components of every live page view.
type ViewConfig struct {
	CarouselStep     float64
	CarouselInterval time.Duration
	HeroInterval     time.Duration
	LazyThreshold    float64
	// TTL bounds how long a view entry outlives a crashed stream. Live
	// streams refresh their entry at half this interval.
	TTL time.Duration
}

// liveView is the entry stored per mounted view in the views bucket.
type liveView struct {
	Lang    string    `json:"lang"`
	Mounted time.Time `json:"mounted"`
}

const viewPage = "home"

// ViewStream mounts a page view for the lifetime of the request. Browser
// events published for the view are fed into its loop, and every state
// change is merged back into the page.
func ViewStream(logger *slog.Logger, bundle *i18n.Bundle, nc *nats.Conn, viewsKV jetstream.KeyValue,
	m *metrics.Metrics, cfg ViewConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewID := chi.URLParam(r, "viewID")
		if !validViewID(viewID) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		lang := bundle.For(isessions.Lang(r.Context(), bundle.Fallback())).Lang()

		entry, err := json.Marshal(liveView{Lang: lang, Mounted: time.Now().UTC()})
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if _, err := viewsKV.Create(r.Context(), viewID, entry); err != nil {
			if errors.Is(err, jetstream.ErrKeyExists) {
				w.WriteHeader(http.StatusConflict)
				return
			}
			logger.LogAttrs(r.Context(), slog.LevelError, "register view",
				slog.String("view", viewID), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		defer func() {
			// the request context is already done here
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			viewsKV.Delete(ctx, viewID)
		}()

		msgs := make(chan *nats.Msg, 64)
		sub, err := nc.ChanSubscribe(views.SubjectAll(viewID), msgs)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		defer sub.Unsubscribe()

		m.LiveViews.WithLabelValues(viewPage).Inc()
		defer m.LiveViews.WithLabelValues(viewPage).Dec()

		if cfg.TTL > 0 {
			// stopped before the entry is deleted above
			ctx, stop := context.WithCancel(r.Context())
			alive := make(chan struct{})
			go func() {
				defer close(alive)
				keepAlive(ctx, viewsKV, viewID, entry, cfg.TTL/2)
			}()
			defer func() {
				stop()
				<-alive
			}()
		}

		v := views.New(viewID, views.Options{
			Lang:             lang,
			SectionIDs:       catalog.SectionIDs(),
			CarouselStep:     cfg.CarouselStep,
			CarouselInterval: cfg.CarouselInterval,
			HeroImages:       catalog.HeroImages(),
			HeroInterval:     cfg.HeroInterval,
			Images:           components.LazyImages(),
			LazyThreshold:    cfg.LazyThreshold,
			RenderImage:      components.Revealed,
			FAQSize:          len(catalog.FAQ()),
			Logger:           logger,
			Metrics:          m,
		})

		logger.LogAttrs(r.Context(), slog.LevelDebug, "view mounted", slog.String("view", viewID))
		sse := datastar.NewSSE(w, r)
		err = v.Run(r.Context(), forwardEvents(r.Context(), logger, msgs), sseSink{sse: sse})
		if err != nil {
			logger.LogAttrs(r.Context(), slog.LevelDebug, "view stream closed",
				slog.String("view", viewID), slog.String("error", err.Error()))
		}
		logger.LogAttrs(r.Context(), slog.LevelDebug, "view unmounted", slog.String("view", viewID))
	}
}

func keepAlive(ctx context.Context, viewsKV jetstream.KeyValue, viewID string, entry []byte, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			viewsKV.Put(ctx, viewID, entry)
		case <-ctx.Done():
			return
		}
	}
}

// forwardEvents turns NATS messages into view events until ctx is done.
func forwardEvents(ctx context.Context, logger *slog.Logger, msgs <-chan *nats.Msg) <-chan views.Event {
	events := make(chan views.Event)
	go func() {
		defer close(events)
		for {
			select {
			case msg := <-msgs:
				kind, err := views.KindFromSubject(msg.Subject)
				if err != nil {
					logger.LogAttrs(ctx, slog.LevelDebug, "skipping message", slog.String("error", err.Error()))
					continue
				}
				select {
				case events <- views.Event{Kind: kind, Signals: msg.Data}:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return events
}

// ViewEvent publishes a browser event to the view it belongs to. Events for
// views that are not mounted are dropped.
func ViewEvent(logger *slog.Logger, nc *nats.Conn, viewsKV jetstream.KeyValue, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewID := chi.URLParam(r, "viewID")
		kind, err := views.ParseKind(chi.URLParam(r, "kind"))
		if err != nil || !validViewID(viewID) {
			m.Dropped.WithLabelValues("invalid").Inc()
			w.WriteHeader(http.StatusNotFound)
			return
		}

		if _, err := viewsKV.Get(r.Context(), viewID); err != nil {
			if errors.Is(err, jetstream.ErrKeyNotFound) {
				m.Dropped.WithLabelValues("unmounted").Inc()
				w.WriteHeader(http.StatusNoContent)
				return
			}
			logger.LogAttrs(r.Context(), slog.LevelError, "lookup view",
				slog.String("view", viewID), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, 64<<10)
		var signals json.RawMessage
		if err := datastar.ReadSignals(r, &signals); err != nil {
			m.Dropped.WithLabelValues("malformed").Inc()
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if err := nc.Publish(views.Subject(viewID, kind), signals); err != nil {
			logger.LogAttrs(r.Context(), slog.LevelError, "publish view event",
				slog.String("view", viewID), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// validViewID accepts ids minted by uniuri.New.
func validViewID(id string) bool {
	if len(id) != 16 {
		return false
	}
	for _, c := range id {
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9') {
			return false
		}
	}
	return true
}

// sseSink adapts a datastar event stream to views.Patcher.
type sseSink struct {
	sse *datastar.ServerSentEventGenerator
}

func (s sseSink) Signals(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.sse.MergeSignals(b)
}

func (s sseSink) Fragment(n g.Node) error {
	return mergeNode(s.sse, n)
}

func (s sseSink) Script(js string) error {
	return s.sse.ExecuteScript(js)
}

var _ views.Patcher = sseSink{}
