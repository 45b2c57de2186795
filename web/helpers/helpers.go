package helpers

import (
	"encoding/json"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Icon renders a Font Awesome glyph.
func Icon(classes string) g.Node {
	return h.I(h.Class(classes), h.Aria("hidden", "true"))
}

// Signals renders a data-signals attribute from any JSON marshalable value.
// Values that fail to marshal render nothing.
func Signals(v any) g.Node {
	b, err := json.Marshal(v)
	if err != nil {
		return g.Group(nil)
	}
	return g.Attr("data-signals", string(b))
}

// On renders data-on-<event>. Modifiers are appended with datastar's double
// underscore syntax, e.g. On("scroll", expr, "window", "throttle.100ms").
func On(event, expr string, modifiers ...string) g.Node {
	name := "data-on-" + event
	for _, m := range modifiers {
		name += "__" + m
	}
	return g.Attr(name, expr)
}

func Text(expr string) g.Node { return g.Attr("data-text", expr) }

func Show(expr string) g.Node { return g.Attr("data-show", expr) }

func Effect(expr string) g.Node { return g.Attr("data-effect", expr) }

func Bind(signal string) g.Node { return g.Attr("data-bind", signal) }

// ClassIf toggles class while expr is truthy.
func ClassIf(class, expr string) g.Node { return g.Attr("data-class-"+class, expr) }

// AttrIf binds an HTML attribute to an expression.
func AttrIf(attr, expr string) g.Node { return g.Attr("data-attr-"+attr, expr) }

// Post builds a datastar @post action.
func Post(path string) string { return "@post(" + quote(path) + ")" }

func Get(path string) string { return "@get(" + quote(path) + ")" }

// Seq joins expressions into one datastar statement list.
func Seq(exprs ...string) string { return strings.Join(exprs, "; ") }

// quote renders s as a single quoted JS string literal.
func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`)
	return "'" + r.Replace(s) + "'"
}

// JS renders s as a single quoted JS string literal for use inside
// datastar expressions.
func JS(s string) string { return quote(s) }
