package web

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/premiumiptv/landing/internal/assets"
	"github.com/premiumiptv/landing/internal/catalog"
	"github.com/premiumiptv/landing/internal/i18n"
	"github.com/premiumiptv/landing/internal/metrics"
	"github.com/premiumiptv/landing/internal/redirect"
	"github.com/premiumiptv/landing/internal/routes"
	"github.com/premiumiptv/landing/web/locales"
	"github.com/premiumiptv/landing/web/messages"
	"github.com/premiumiptv/landing/web/templates"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.Prod())
	assert.Equal(t, "212723279328", cfg.WhatsAppPhone)
	assert.Equal(t, "premiumiptvsupport", cfg.TelegramHandle)
	assert.Equal(t, 1.0, cfg.CarouselStep)
	assert.Equal(t, 33*time.Millisecond, cfg.CarouselInterval)
	assert.Equal(t, 5*time.Second, cfg.HeroInterval)
	assert.Equal(t, 0.1, cfg.LazyThreshold)
}

func TestLoadConfigFromEnviron(t *testing.T) {
	cfg, err := LoadConfig([]string{"PORT=9000", "HERO_INTERVAL=8s", "ENV=prod", "SESSION_KEY=c2VjcmV0"})
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 8*time.Second, cfg.HeroInterval)
	assert.True(t, cfg.Prod())

	_, err = LoadConfig([]string{"ENV=prod"})
	assert.ErrorContains(t, err, "SESSION_KEY")

	_, err = LoadConfig([]string{"HERO_INTERVAL=0s"})
	assert.Error(t, err)

	_, err = LoadConfig([]string{"CAROUSEL_STEP=fast"})
	assert.Error(t, err)
}

func TestEmbeddedStatic(t *testing.T) {
	static, err := Config{}.static()
	require.NoError(t, err)
	for _, name := range []string{"css/site.css", "js/site.js", "favicon.png"} {
		_, err := static.Open(name)
		assert.NoError(t, err, name)
	}
}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	bundle, err := i18n.Load(locales.FS, ".", "en", catalog.LanguageCodes())
	require.NoError(t, err)
	tmpls, err := templates.LoadTemplates(messages.FS, "", ".txt.tmpl", "en")
	require.NoError(t, err)

	return NewServer(routes.Deps{
		Logger:     slog.New(slog.DiscardHandler),
		Bundle:     bundle,
		Messages:   tmpls,
		Static:     assets.New(fstest.MapFS{"css/site.css": {Data: []byte("body{}")}}),
		Store:      sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef")),
		Dispatcher: redirect.NewDispatcher(redirect.Config{TelegramHandle: "premiumiptvsupport"}, tmpls),
		Metrics:    metrics.New(),
	})
}

func TestServerRoutes(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		method string
		path   string
		header map[string]string
		status int
	}{
		{http.MethodGet, "/heartbeat", nil, http.StatusOK},
		{http.MethodGet, "/metrics", nil, http.StatusOK},
		{http.MethodGet, "/", nil, http.StatusOK},
		{http.MethodGet, "/checkout", nil, http.StatusFound},
		{http.MethodGet, "/go/telegram", nil, http.StatusFound},
		{http.MethodGet, "/lang/xx", nil, http.StatusNotFound},
		{http.MethodGet, "/assets/css/site.css", nil, http.StatusOK},
		{http.MethodGet, "/hotreload", nil, http.StatusNotFound},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		assert.Equal(t, tt.status, rec.Code, tt.path)
	}
}

func TestServerNegotiatesLanguage(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "fr-FR,fr;q=0.9")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `<html lang="fr">`))
}

func TestServerCompressesPages(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "br")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, "br", rec.Header().Get("Content-Encoding"))
}
