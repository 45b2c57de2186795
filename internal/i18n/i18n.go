package i18n

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"

	"golang.org/x/text/language"
)

type Bundle struct {
	dict      map[string]map[string]string
	fallback  string
	supported []string
	matcher   language.Matcher
}

// Load reads <dir>/<lang>.json from fsys for every supported language. Only
// the fallback language is required to exist.
func Load(fsys fs.FS, dir string, fallback string, supported []string) (*Bundle, error) {
	if !slices.Contains(supported, fallback) {
		supported = append([]string{fallback}, supported...)
	}
	b := &Bundle{
		dict:     map[string]map[string]string{},
		fallback: fallback,
	}
	for _, l := range supported {
		raw, err := fs.ReadFile(fsys, path.Join(dir, l+".json"))
		if err != nil {
			if l == fallback || !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("i18n: load locale %s: %w", l, err)
			}
			continue
		}
		var m map[string]string
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("i18n: unmarshal %s: %w", l, err)
		}
		b.dict[l] = m
		b.supported = append(b.supported, l)
	}

	// the matcher falls back to its first tag
	tags := []language.Tag{language.Make(fallback)}
	for _, l := range b.supported {
		if l != fallback {
			tags = append(tags, language.Make(l))
		}
	}
	b.matcher = language.NewMatcher(tags)
	return b, nil
}

// Supported returns the loaded languages in load order.
func (b *Bundle) Supported() []string { return slices.Clone(b.supported) }

func (b *Bundle) Fallback() string { return b.fallback }

func (b *Bundle) IsSupported(lang string) bool {
	_, ok := b.dict[lang]
	return ok
}

// T returns translation for key in lang, falling back to default and finally key.
func (b *Bundle) T(lang, key string) string {
	if m, ok := b.dict[lang]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if v, ok := b.dict[b.fallback][key]; ok {
		return v
	}
	return key
}

// Resolve chooses the best supported language for an Accept-Language header.
func (b *Bundle) Resolve(acceptLang string) string {
	prefs, _, err := language.ParseAcceptLanguage(acceptLang)
	if err != nil || len(prefs) == 0 {
		return b.fallback
	}
	_, idx, conf := b.matcher.Match(prefs...)
	if conf == language.No {
		return b.fallback
	}
	if idx == 0 {
		return b.fallback
	}
	return b.matcherLang(idx)
}

func (b *Bundle) matcherLang(idx int) string {
	i := 0
	for _, l := range b.supported {
		if l == b.fallback {
			continue
		}
		i++
		if i == idx {
			return l
		}
	}
	return b.fallback
}

// Translator binds a bundle to one language.
type Translator struct {
	b    *Bundle
	lang string
}

func (b *Bundle) For(lang string) Translator {
	if !b.IsSupported(lang) {
		lang = b.fallback
	}
	return Translator{b: b, lang: lang}
}

func (t Translator) T(key string) string { return t.b.T(t.lang, key) }

func (t Translator) Lang() string { return t.lang }
