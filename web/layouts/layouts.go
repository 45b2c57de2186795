package layouts

import (
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/premiumiptv/landing/web/components"
	"github.com/premiumiptv/landing/web/helpers"
)

const (
	datastarJS    = "https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0-beta.11/bundles/datastar.js"
	fontAwesome   = "https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.5.1/css/all.min.css"
	description   = "Premium IPTV subscription with thousands of live channels, movies and series in 4K on every device."
	defaultTitle  = "Premium IPTV - Live TV, Movies & Series"
	checkoutTitle = "Checkout - Premium IPTV"
)

func head(p components.Page) []Node {
	return []Node{
		Link(Rel("icon"), Href(p.Asset("/assets/favicon.png"))),
		Link(Rel("stylesheet"), Href(fontAwesome)),
		Link(Rel("stylesheet"), Href(p.Asset("/assets/css/site.css"))),
		Script(Type("module"), Src(datastarJS)),
		Script(Src(p.Asset("/assets/js/site.js")), Defer()),
	}
}

// Default wraps a live page. The body opens the page view stream on load and
// carries the initial signal tree.
func Default(p components.Page, children ...Node) Node {
	return HTML5(HTML5Props{
		Title:       defaultTitle,
		Description: description,
		Language:    p.T.Lang(),
		Head:        head(p),
		Body: []Node{
			Data("view-id", p.ViewID),
			helpers.Signals(components.InitialSignals()),
			helpers.On("load", helpers.Get(p.Stream())),
			components.SiteHeader(p),
			Main(Group(children)),
			components.SiteFooter(p),
			components.FloatingSupport(p),
			hotReload(p),
		},
	})
}

// Plain wraps a page without a live view.
func Plain(p components.Page, children ...Node) Node {
	return HTML5(HTML5Props{
		Title:       checkoutTitle,
		Description: description,
		Language:    p.T.Lang(),
		Head:        head(p),
		Body: []Node{Class("plain"),
			Header(Class("header scrolled"),
				Div(Class("container header-inner"),
					A(Href("/"), Class("logo"), Text(p.T.T("header.brand"))),
				),
			),
			Main(Group(children)),
			hotReload(p),
		},
	})
}

func hotReload(p components.Page) Node {
	return If(p.Dev, Div(Class("hidden"), helpers.On("load", helpers.Get("/hotreload"))))
}
