package templates

import (
	"errors"
	"io"
	"io/fs"
	"path"
	"strings"
	"text/template"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/dustin/go-humanize"
)

var ErrTemplateNotFound = errors.New("templates: template not found")

// Tmpls holds the outbound message templates.
type Tmpls struct {
	fallback     string
	commonTmpls  *template.Template            // shared partials, never localized
	variantTmpls map[string]*template.Template // one tree per "<lang>/<name>"
}

// Rules to this system though are:
// 1. Templates directly under a "shared" directory are common. They may be
//    referenced from any locale with {{template "shared/<name>" .}}.
// 2. Every other template lives under a locale directory, e.g. "en/subscribe",
//    and gets its own tree cloned from the common ones, so locales can
//    redefine the same {{block}} without clashing.

// LoadTemplates will load all templates from the passed fsys that have the
// extension specified. The returned templates' names will be the full filepath
// minus any specified prefix and the extension will be trimmed off.
func LoadTemplates(fsys fs.FS, prefix, extension, fallback string) (*Tmpls, error) {
	common := template.New("#blankforfuncs#").Funcs(addCustomFuncs())
	variants := make(map[string]string)

	err := doublestar.GlobWalk(fsys, "**/*"+extension, func(fullPath string, d fs.DirEntry) error {
		if d.IsDir() {
			return nil
		}

		b, err := fs.ReadFile(fsys, fullPath)
		if err != nil {
			return err
		}
		trimmedName := strings.TrimSuffix(strings.TrimPrefix(fullPath, prefix), extension)

		if strings.HasPrefix(trimmedName, "shared/") {
			_, err = common.New(trimmedName).Parse(string(b))
			return err
		}
		variants[trimmedName] = string(b)
		return nil
	})
	if err != nil {
		return nil, err
	}

	// variants are parsed after every shared template is known
	variantTmpls := make(map[string]*template.Template, len(variants))
	for name, body := range variants {
		tmpl, err := common.Clone()
		if err != nil {
			return nil, err
		}
		tmpl, err = tmpl.New(name).Parse(body)
		if err != nil {
			return nil, err
		}
		variantTmpls[name] = tmpl
	}

	return &Tmpls{
		fallback:     fallback,
		commonTmpls:  common,
		variantTmpls: variantTmpls,
	}, nil
}

// ExecuteTemplate renders name for lang, falling back to the default locale.
func (t *Tmpls) ExecuteTemplate(wr io.Writer, lang, name string, data any) error {
	if tmpl, ok := t.variantTmpls[path.Join(lang, name)]; ok {
		return tmpl.Execute(wr, data)
	}
	if tmpl, ok := t.variantTmpls[path.Join(t.fallback, name)]; ok {
		return tmpl.Execute(wr, data)
	}
	if tmpl := t.commonTmpls.Lookup(name); tmpl != nil {
		return tmpl.Execute(wr, data)
	}
	return ErrTemplateNotFound
}

// Has reports whether name exists for lang or the fallback locale.
func (t *Tmpls) Has(lang, name string) bool {
	_, ok := t.variantTmpls[path.Join(lang, name)]
	if !ok {
		_, ok = t.variantTmpls[path.Join(t.fallback, name)]
	}
	return ok
}

func addCustomFuncs() template.FuncMap {
	funcs := make(template.FuncMap)

	funcs["comma"] = func(v int) string { return humanize.Comma(int64(v)) }
	funcs["upper"] = strings.ToUpper

	return funcs
}
