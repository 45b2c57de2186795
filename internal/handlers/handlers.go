package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dchest/uniuri"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/sessions"
	datastar "github.com/starfederation/datastar/sdk/go"
	g "maragu.dev/gomponents"

	"github.com/premiumiptv/landing/internal/assets"
	"github.com/premiumiptv/landing/internal/catalog"
	"github.com/premiumiptv/landing/internal/i18n"
	"github.com/premiumiptv/landing/internal/metrics"
	"github.com/premiumiptv/landing/internal/redirect"
	isessions "github.com/premiumiptv/landing/internal/sessions"
	"github.com/premiumiptv/landing/web/components"
	"github.com/premiumiptv/landing/web/pages"
	"github.com/premiumiptv/landing/web/templates"
)

// Site is what full page handlers need to render.
type Site struct {
	Logger *slog.Logger
	Bundle *i18n.Bundle
	Static *assets.Static
	Dev    bool
}

func (s Site) page(r *http.Request, viewID string) components.Page {
	p := page(r, s.Bundle, viewID)
	p.Assets = s.Static
	p.Dev = s.Dev
	return p
}

func page(r *http.Request, bundle *i18n.Bundle, viewID string) components.Page {
	return components.Page{
		T:      bundle.For(isessions.Lang(r.Context(), bundle.Fallback())),
		ViewID: viewID,
	}
}

func render(logger *slog.Logger, w http.ResponseWriter, r *http.Request, n g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := n.Render(w); err != nil {
		logger.LogAttrs(r.Context(), slog.LevelError, "render failed",
			slog.String("path", r.URL.Path), slog.String("error", err.Error()))
	}
}

// Home renders the landing page under a fresh page view id.
func Home(site Site) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := site.page(r, uniuri.New())
		w.Header().Set("Cache-Control", "no-store")
		render(site.Logger, w, r, pages.Home(p))
	}
}

// CheckoutPage shows the order form. Without a plan and a price there is
// nothing to check out and the visitor is sent back to the landing page.
func CheckoutPage(site Site) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		plan := strings.TrimSpace(r.URL.Query().Get("plan"))
		price := strings.TrimSpace(r.URL.Query().Get("price"))
		if plan == "" || price == "" {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}

		p := site.page(r, "")
		render(site.Logger, w, r, pages.Checkout(p, checkoutData(p, plan, price)))
	}
}

func checkoutData(p components.Page, plan, price string) pages.CheckoutData {
	d := pages.CheckoutData{Plan: plan, Name: plan, Price: price}
	if tier, ok := catalog.Tier(plan); ok {
		d.Name = tier.Name
		d.Price = strconv.Itoa(tier.Price)
		d.Period = components.Period(p, tier)
	}
	return d
}

type checkoutForm struct {
	Plan   string `validate:"required,max=64"`
	Price  string `validate:"required,numeric,max=8"`
	Name   string `validate:"required,max=100"`
	Email  string `validate:"required,email"`
	Phone  string `validate:"required,min=6,max=20"`
	Method string `validate:"required,oneof=card paypal crypto"`
}

// CheckoutSubmit validates the order form and answers with an alert. No
// payment processor is contacted.
func CheckoutSubmit(logger *slog.Logger, bundle *i18n.Bundle, tmpls *templates.Tmpls) http.HandlerFunc {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, 64<<10)
		form := checkoutForm{
			Plan:   strings.TrimSpace(r.FormValue("plan")),
			Price:  strings.TrimSpace(r.FormValue("price")),
			Name:   strings.TrimSpace(r.FormValue("name")),
			Email:  strings.TrimSpace(r.FormValue("email")),
			Phone:  strings.TrimSpace(r.FormValue("phone")),
			Method: r.FormValue("method"),
		}
		p := page(r, bundle, "")

		sse := datastar.NewSSE(w, r)
		if err := validate.Struct(form); err != nil {
			logger.LogAttrs(r.Context(), slog.LevelDebug, "checkout rejected", slog.String("error", err.Error()))
			mergeNode(sse, components.FormError(p.T.T("checkout.invalid")))
			return
		}

		d := checkoutData(p, form.Plan, form.Price)
		var buf bytes.Buffer
		err := tmpls.ExecuteTemplate(&buf, p.T.Lang(), "checkout-alert", templates.DataMessageCheckout{
			Name:   form.Name,
			Plan:   d.Name,
			Price:  d.Price,
			Period: d.Period,
			Method: form.Method,
		})
		if err != nil {
			logger.LogAttrs(r.Context(), slog.LevelError, "checkout message", slog.String("error", err.Error()))
			return
		}
		mergeNode(sse, components.FormError(""))
		sse.ExecuteScript("alert(" + strconv.Quote(strings.TrimSpace(buf.String())) + ")")
	}
}

func mergeNode(sse *datastar.ServerSentEventGenerator, n g.Node) error {
	var buf bytes.Buffer
	if err := n.Render(&buf); err != nil {
		return err
	}
	return sse.MergeFragments(buf.String())
}

type searchSignals struct {
	Search struct {
		Term string `json:"term"`
	} `json:"search"`
}

// Search merges the result list for the current search term.
func Search(bundle *i18n.Bundle) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var signals searchSignals
		if err := datastar.ReadSignals(r, &signals); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		p := page(r, bundle, "")
		sse := datastar.NewSSE(w, r)
		mergeNode(sse, components.SearchResults(p.T, catalog.Search(signals.Search.Term)))
	}
}

// Language stores the chosen language and sends the visitor back to the
// page they came from.
func Language(logger *slog.Logger, store sessions.Store, bundle *i18n.Bundle) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := chi.URLParam(r, "code")
		if !bundle.IsSupported(code) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err := isessions.SaveLang(store, w, r, code); err != nil {
			logger.LogAttrs(r.Context(), slog.LevelError, "save language", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, backTo(r), http.StatusFound)
	}
}

// backTo returns the local path of the referring page, or "/".
func backTo(r *http.Request) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Host != r.Host || !strings.HasPrefix(ref.Path, "/") || strings.HasPrefix(ref.Path, "/lang/") {
		return "/"
	}
	back := &url.URL{Path: ref.Path, RawQuery: ref.RawQuery}
	return back.String()
}

// Outbound redirects to a contact destination. Contact links open it in a
// new window, so the open stays inside the user's click.
func Outbound(logger *slog.Logger, bundle *i18n.Bundle, dispatcher *redirect.Dispatcher, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		target, err := redirect.ParseTarget(chi.URLParam(r, "target"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		q := r.URL.Query()
		lang := isessions.Lang(r.Context(), bundle.Fallback())
		opener := redirect.OpenerFunc(func(u string) error {
			http.Redirect(w, r, u, http.StatusFound)
			return nil
		})
		_, err = dispatcher.Dispatch(opener, target, lang, redirect.Params{
			Plan:   q.Get("plan"),
			Price:  q.Get("price"),
			Period: q.Get("period"),
		})
		if err != nil {
			logger.LogAttrs(r.Context(), slog.LevelError, "build redirect",
				slog.String("target", string(target)), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		m.Redirects.WithLabelValues(string(target)).Inc()
	}
}

var hotReloadOnce sync.Once

// HotReload reloads connected browsers once after a restart. Only mounted
// outside production.
func HotReload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sse := datastar.NewSSE(w, r)
		hotReloadOnce.Do(func() {
			// Refresh the client page as soon as connection
			// is established. This will occur only once
			// after the server starts.
			sse.ExecuteScript(
				"window.location.reload()",
				datastar.WithExecuteScriptRetryDuration(time.Second),
			)
		})

		// Freeze the event stream until the connection
		// is lost for any reason. This will force the client
		// to attempt to reconnect after the server reboots.
		<-r.Context().Done()
	}
}
