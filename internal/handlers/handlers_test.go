package handlers

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/premiumiptv/landing/internal/catalog"
	"github.com/premiumiptv/landing/internal/i18n"
	"github.com/premiumiptv/landing/internal/metrics"
	"github.com/premiumiptv/landing/internal/redirect"
	"github.com/premiumiptv/landing/web/locales"
	"github.com/premiumiptv/landing/web/messages"
	"github.com/premiumiptv/landing/web/templates"
)

type fixture struct {
	logger     *slog.Logger
	bundle     *i18n.Bundle
	tmpls      *templates.Tmpls
	dispatcher *redirect.Dispatcher
	metrics    *metrics.Metrics
	store      sessions.Store
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	bundle, err := i18n.Load(locales.FS, ".", "en", catalog.LanguageCodes())
	require.NoError(t, err)
	tmpls, err := templates.LoadTemplates(messages.FS, "", ".txt.tmpl", "en")
	require.NoError(t, err)

	return fixture{
		logger: slog.New(slog.DiscardHandler),
		bundle: bundle,
		tmpls:  tmpls,
		dispatcher: redirect.NewDispatcher(redirect.Config{
			WhatsAppPhone:  "212723279328",
			TelegramHandle: "premiumiptvsupport",
			SupportEmail:   "support@example.com",
		}, tmpls),
		metrics: metrics.New(),
		store:   sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef")),
	}
}

func (f fixture) site() Site {
	return Site{Logger: f.logger, Bundle: f.bundle}
}

func document(t *testing.T, rec *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	return doc
}

func TestHomeRendersLandingPage(t *testing.T) {
	f := newFixture(t)
	rec := httptest.NewRecorder()
	Home(f.site()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	doc := document(t, rec)

	viewID, ok := doc.Find("body").Attr("data-view-id")
	require.True(t, ok)
	assert.True(t, validViewID(viewID))

	stream, _ := doc.Find("body").Attr("data-on-load")
	assert.Equal(t, "@get('/views/"+viewID+"/stream')", stream)

	signals, _ := doc.Find("body").Attr("data-signals")
	assert.Contains(t, signals, `"nav":{"active":"home","scrolled":false}`)
	assert.Contains(t, signals, `"faq":{"open":-1,"toggle":-1}`)

	var ids []string
	doc.Find("main > section").Each(func(_ int, s *goquery.Selection) {
		ids = append(ids, s.AttrOr("id", ""))
	})
	assert.Equal(t, []string{"home", "channels", "content", "pricing", "sports", "features", "testimonials", "faq", "support"}, ids)

	// deferred images start on the placeholder and carry their id
	img := doc.Find("img#lazy-channel-nova")
	require.Equal(t, 1, img.Length())
	assert.Equal(t, "channel-nova", img.AttrOr("data-lazy-id", ""))
	assert.True(t, strings.HasPrefix(img.AttrOr("src", ""), "data:image/gif"))
}

func TestHomeMintsFreshViewIDs(t *testing.T) {
	f := newFixture(t)
	ids := map[string]bool{}
	for range 3 {
		rec := httptest.NewRecorder()
		Home(f.site()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		id, _ := document(t, rec).Find("body").Attr("data-view-id")
		ids[id] = true
	}
	assert.Len(t, ids, 3)
}

func TestCheckoutPageNeedsPlanAndPrice(t *testing.T) {
	f := newFixture(t)

	for _, target := range []string{"/checkout", "/checkout?plan=quarterly", "/checkout?price=25", "/checkout?plan=+&price=25"} {
		rec := httptest.NewRecorder()
		CheckoutPage(f.site()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusFound, rec.Code, target)
		assert.Equal(t, "/", rec.Header().Get("Location"), target)
	}
}

func TestCheckoutPageShowsPlan(t *testing.T) {
	f := newFixture(t)

	rec := httptest.NewRecorder()
	CheckoutPage(f.site()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/checkout?plan=quarterly&price=25", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	doc := document(t, rec)

	assert.Equal(t, "quarterly", doc.Find(`input[name="plan"]`).AttrOr("value", ""))
	assert.Equal(t, "25", doc.Find(`input[name="price"]`).AttrOr("value", ""))
	assert.Equal(t, "$25/3 months", doc.Find(".checkout-summary dd").Last().Text())
	assert.Equal(t, 3, doc.Find(`select[name="method"] option`).Length())
}

func TestCheckoutPageUnknownPlanKeepsGivenPrice(t *testing.T) {
	f := newFixture(t)

	rec := httptest.NewRecorder()
	CheckoutPage(f.site()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/checkout?plan=Family&price=99", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	doc := document(t, rec)

	assert.Equal(t, "Family", doc.Find(".checkout-summary dd").First().Text())
	assert.Equal(t, "$99", doc.Find(".checkout-summary dd").Last().Text())
}

func postForm(h http.Handler, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCheckoutSubmitAlertsOnValidOrder(t *testing.T) {
	f := newFixture(t)
	h := CheckoutSubmit(f.logger, f.bundle, f.tmpls)

	rec := postForm(h, url.Values{
		"plan":   {"quarterly"},
		"price":  {"25"},
		"name":   {"Jane Doe"},
		"email":  {"jane@example.com"},
		"phone":  {"+212 600000000"},
		"method": {"card"},
	})

	body := rec.Body.String()
	assert.Contains(t, body, "alert(")
	assert.Contains(t, body, "Payment processing for PREMIUM plan at $25/3 months.")
}

func TestCheckoutSubmitRejectsInvalidOrder(t *testing.T) {
	f := newFixture(t)
	h := CheckoutSubmit(f.logger, f.bundle, f.tmpls)

	tests := map[string]url.Values{
		"missing name": {"plan": {"quarterly"}, "price": {"25"}, "email": {"jane@example.com"}, "phone": {"600000000"}, "method": {"card"}},
		"bad email":    {"plan": {"quarterly"}, "price": {"25"}, "name": {"Jane"}, "email": {"jane"}, "phone": {"600000000"}, "method": {"card"}},
		"bad method":   {"plan": {"quarterly"}, "price": {"25"}, "name": {"Jane"}, "email": {"jane@example.com"}, "phone": {"600000000"}, "method": {"cash"}},
		"bad price":    {"plan": {"quarterly"}, "price": {"free"}, "name": {"Jane"}, "email": {"jane@example.com"}, "phone": {"600000000"}, "method": {"card"}},
	}
	for name, form := range tests {
		t.Run(name, func(t *testing.T) {
			body := postForm(h, form).Body.String()
			assert.NotContains(t, body, "alert(")
			assert.Contains(t, body, `id="form-error"`)
			assert.Contains(t, body, "Please fill in every field with valid values.")
		})
	}
}

func TestSearchMergesResults(t *testing.T) {
	f := newFixture(t)

	search := func(term string) string {
		req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(`{"search":{"term":"`+term+`"}}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		Search(f.bundle).ServeHTTP(rec, req)
		return rec.Body.String()
	}

	body := search("sports")
	assert.Contains(t, body, `id="search-results"`)
	assert.Contains(t, body, "sky sports")
	assert.Contains(t, body, "bein sports")

	body = search("nb")
	assert.Contains(t, body, `id="search-results"`)
	assert.NotContains(t, body, "<ul>")
}

func TestSearchRejectsMalformedSignals(t *testing.T) {
	f := newFixture(t)
	rec := httptest.NewRecorder()
	Search(f.bundle).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/search", strings.NewReader("{")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLanguageStoresChoiceAndReturns(t *testing.T) {
	f := newFixture(t)
	r := chi.NewRouter()
	r.Get("/lang/{code}", Language(f.logger, f.store, f.bundle))

	req := httptest.NewRequest(http.MethodGet, "/lang/fr", nil)
	req.Header.Set("Referer", "http://example.com/checkout?plan=quarterly&price=25")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/checkout?plan=quarterly&price=25", rec.Header().Get("Location"))
	assert.Contains(t, rec.Header().Get("Set-Cookie"), "prefs=")

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/lang/de", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBackTo(t *testing.T) {
	tests := []struct {
		referer string
		want    string
	}{
		{"", "/"},
		{"http://example.com/", "/"},
		{"http://example.com/checkout?plan=yearly", "/checkout?plan=yearly"},
		{"http://evil.test/checkout", "/"},
		{"http://example.com/lang/el", "/"},
		{"::not a url", "/"},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/lang/en", nil)
		req.Header.Set("Referer", tt.referer)
		assert.Equal(t, tt.want, backTo(req), tt.referer)
	}
}

func TestOutboundRedirects(t *testing.T) {
	f := newFixture(t)
	r := chi.NewRouter()
	r.Get("/go/{target}", Outbound(f.logger, f.bundle, f.dispatcher, f.metrics))

	tests := []struct {
		path string
		want string
	}{
		{"/go/telegram", "https://t.me/premiumiptvsupport"},
		{"/go/email", "mailto:support@example.com"},
		{"/go/subscribe?plan=PREMIUM&price=25&period=%2F3+months", "https://wa.me/212723279328?text="},
		{"/go/livechat", "https://wa.me/212723279328?text="},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
		assert.Equal(t, http.StatusFound, rec.Code, tt.path)
		assert.True(t, strings.HasPrefix(rec.Header().Get("Location"), tt.want), rec.Header().Get("Location"))
	}
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Redirects.WithLabelValues("telegram")))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/go/fax", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
