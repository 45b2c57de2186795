package sessions

import (
	"context"
	"net/http"

	"github.com/gorilla/sessions"
)

// Name of the cookie session holding visitor preferences.
const Name = "prefs"

const langKey = "lang"

var localeContextKey = struct{}{}

type LocaleData struct {
	Lang string // Negotiated language code
	// FromSession is true when the visitor picked the language explicitly.
	FromSession bool
}

func WithLocale(ctx context.Context, data *LocaleData) context.Context {
	return context.WithValue(ctx, localeContextKey, data)
}

// GetLocale will return the locale data in the Context.
// If the locale data isn't found, nil is returned.
func GetLocale(ctx context.Context) *LocaleData {
	val := ctx.Value(localeContextKey)
	if val == nil {
		return nil
	}

	data, ok := val.(*LocaleData)
	if !ok {
		panic("sessions: locale context value of wrong type")
	}
	return data
}

// Lang returns the request language, or fallback when no locale was
// negotiated.
func Lang(ctx context.Context, fallback string) string {
	if l := GetLocale(ctx); l != nil && l.Lang != "" {
		return l.Lang
	}
	return fallback
}

// SavedLang reads the language stored in the preference cookie. A missing
// or undecodable cookie yields "".
func SavedLang(store sessions.Store, r *http.Request) string {
	s, err := store.Get(r, Name)
	if err != nil {
		return ""
	}
	lang, _ := s.Values[langKey].(string)
	return lang
}

// SaveLang stores lang in the preference cookie.
func SaveLang(store sessions.Store, w http.ResponseWriter, r *http.Request, lang string) error {
	// Get returns a fresh session alongside a decode error, which is what we
	// want when the old cookie is stale.
	s, _ := store.Get(r, Name)
	s.Values[langKey] = lang
	return s.Save(r, w)
}
