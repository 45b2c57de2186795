package middlewares

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/premiumiptv/landing/internal/i18n"
	isessions "github.com/premiumiptv/landing/internal/sessions"
)

// Locale negotiates the request language. An explicit choice stored in the
// preference cookie wins over Accept-Language.
func Locale(logger *slog.Logger, store sessions.Store, bundle *i18n.Bundle) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			data := &isessions.LocaleData{}

			if saved := isessions.SavedLang(store, r); saved != "" {
				if bundle.IsSupported(saved) {
					data.Lang = saved
					data.FromSession = true
				} else {
					logger.LogAttrs(r.Context(), slog.LevelDebug, "ignoring saved language",
						slog.String("lang", saved))
				}
			}
			if data.Lang == "" {
				data.Lang = bundle.Resolve(r.Header.Get("Accept-Language"))
			}

			w.Header().Add("Vary", "Accept-Language")
			r = r.WithContext(isessions.WithLocale(r.Context(), data))
			next.ServeHTTP(w, r)
		})
	}
}
