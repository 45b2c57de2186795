package middlewares

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/require"

	"github.com/premiumiptv/landing/internal/i18n"
	isessions "github.com/premiumiptv/landing/internal/sessions"
)

func newBundle(t *testing.T) *i18n.Bundle {
	t.Helper()
	fsys := fstest.MapFS{
		"locales/en.json": {Data: []byte(`{"hello":"Hello"}`)},
		"locales/fr.json": {Data: []byte(`{"hello":"Bonjour"}`)},
		"locales/el.json": {Data: []byte(`{}`)},
	}
	b, err := i18n.Load(fsys, "locales", "en", []string{"en", "fr", "el", "sq"})
	require.NoError(t, err)
	return b
}

func serve(t *testing.T, store sessions.Store, r *http.Request) *isessions.LocaleData {
	t.Helper()
	var got *isessions.LocaleData
	h := Locale(slog.New(slog.DiscardHandler), store, newBundle(t))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = isessions.GetLocale(r.Context())
	}))
	h.ServeHTTP(httptest.NewRecorder(), r)
	require.NotNil(t, got)
	return got
}

func TestLocaleNegotiatesAcceptLanguage(t *testing.T) {
	store := sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef"))

	tests := []struct {
		header string
		want   string
	}{
		{"fr-CA,fr;q=0.9,en;q=0.8", "fr"},
		{"el", "el"},
		{"de-DE", "en"},
		{"", "en"},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.header != "" {
			r.Header.Set("Accept-Language", tt.header)
		}
		got := serve(t, store, r)
		require.Equal(t, tt.want, got.Lang, tt.header)
		require.False(t, got.FromSession)
	}
}

func TestLocalePrefersSavedChoice(t *testing.T) {
	store := sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef"))

	rec := httptest.NewRecorder()
	require.NoError(t, isessions.SaveLang(store, rec, httptest.NewRequest(http.MethodGet, "/", nil), "el"))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Accept-Language", "fr")
	r.AddCookie(rec.Result().Cookies()[0])

	got := serve(t, store, r)
	require.Equal(t, "el", got.Lang)
	require.True(t, got.FromSession)
}
