package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"locales/en.json": {Data: []byte(`{"header.home":"Home","header.pricing":"Pricing"}`)},
		"locales/fr.json": {Data: []byte(`{"header.home":"Accueil"}`)},
		"locales/el.json": {Data: []byte(`{"header.home":"Αρχική"}`)},
	}
}

func TestResolveHonorsQValues(t *testing.T) {
	b, err := Load(testFS(), "locales", "en", []string{"en", "fr", "el", "sq"})
	require.NoError(t, err)

	tests := []struct {
		header, want string
	}{
		{"", "en"},
		{"fr-CA,fr;q=0.9", "fr"},
		{"de;q=0.9, el;q=0.8", "el"},
		{"el;q=0.4, fr;q=0.9", "fr"},
		{"ja", "en"},
		{"sq", "en"}, // no sq.json shipped
		{"not a header;;", "en"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, b.Resolve(tt.header), "header %q", tt.header)
	}
}

func TestTFallsBackToDefaultThenKey(t *testing.T) {
	b, err := Load(testFS(), "locales", "en", []string{"fr"})
	require.NoError(t, err)

	require.Equal(t, "Accueil", b.T("fr", "header.home"))
	require.Equal(t, "Pricing", b.T("fr", "header.pricing"))
	require.Equal(t, "faq.title", b.T("fr", "faq.title"))
	require.Equal(t, "Home", b.T("", "header.home"))
}

func TestLoadRequiresFallback(t *testing.T) {
	_, err := Load(testFS(), "locales", "de", []string{"en"})
	require.Error(t, err)
}

func TestLoadRejectsMalformedLocale(t *testing.T) {
	fsys := testFS()
	fsys["locales/fr.json"] = &fstest.MapFile{Data: []byte(`{`)}
	_, err := Load(fsys, "locales", "en", []string{"en", "fr"})
	require.Error(t, err)
}

func TestTranslatorUnsupportedUsesFallback(t *testing.T) {
	b, err := Load(testFS(), "locales", "en", []string{"en", "fr"})
	require.NoError(t, err)

	tr := b.For("xx")
	require.Equal(t, "en", tr.Lang())
	require.Equal(t, "Home", tr.T("header.home"))

	require.Equal(t, "Accueil", b.For("fr").T("header.home"))
	require.Equal(t, []string{"en", "fr"}, b.Supported())
}
