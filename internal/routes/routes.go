package routes

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/premiumiptv/landing/internal/assets"
	"github.com/premiumiptv/landing/internal/handlers"
	"github.com/premiumiptv/landing/internal/i18n"
	"github.com/premiumiptv/landing/internal/metrics"
	"github.com/premiumiptv/landing/internal/middlewares"
	"github.com/premiumiptv/landing/internal/redirect"
	"github.com/premiumiptv/landing/web/templates"
)

// Deps is everything the routes close over.
type Deps struct {
	Logger     *slog.Logger
	Bundle     *i18n.Bundle
	Messages   *templates.Tmpls
	Static     *assets.Static
	Store      sessions.Store
	NC         *nats.Conn
	ViewsKV    jetstream.KeyValue
	Dispatcher *redirect.Dispatcher
	Metrics    *metrics.Metrics
	Views      handlers.ViewConfig
	Dev        bool
}

func AddRoutes(mux chi.Router, d Deps) {
	d.Static.HttpHandler(mux)

	site := handlers.Site{Logger: d.Logger, Bundle: d.Bundle, Static: d.Static, Dev: d.Dev}

	mux.Group(func(mux chi.Router) {
		mux.Use(middlewares.Locale(d.Logger, d.Store, d.Bundle))

		mux.Get("/", handlers.Home(site))
		mux.Get("/checkout", handlers.CheckoutPage(site))
		mux.Post("/checkout", handlers.CheckoutSubmit(d.Logger, d.Bundle, d.Messages))
		mux.Post("/search", handlers.Search(d.Bundle))
		mux.Get("/lang/{code}", handlers.Language(d.Logger, d.Store, d.Bundle))
		mux.Get("/go/{target}", handlers.Outbound(d.Logger, d.Bundle, d.Dispatcher, d.Metrics))

		mux.Route("/views/{viewID}", func(mux chi.Router) {
			mux.Get("/stream", handlers.ViewStream(d.Logger, d.Bundle, d.NC, d.ViewsKV, d.Metrics, d.Views))
			mux.Post("/events/{kind}", handlers.ViewEvent(d.Logger, d.NC, d.ViewsKV, d.Metrics))
		})
	})

	mux.Method(http.MethodGet, "/metrics", d.Metrics.Handler())

	if d.Dev {
		mux.Get("/hotreload", handlers.HotReload())
	}
}
