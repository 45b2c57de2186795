package components

import (
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/premiumiptv/landing/internal/catalog"
	"github.com/premiumiptv/landing/internal/i18n"
	"github.com/premiumiptv/landing/web/helpers"
)

func SiteHeader(p Page) Node {
	return Header(ID("header"), Class("header"), helpers.ClassIf("scrolled", "$nav.scrolled"),
		Div(Class("container header-inner"),
			A(Href("#home"), Class("logo"), Aria("label", p.T.T("header.brand")),
				Img(Src(p.Asset(catalog.Logo)), Alt("")),
				Span(Text(p.T.T("header.brand"))),
			),
			Nav(Class("nav"), Aria("label", "Main"), helpers.ClassIf("open", "$menu.open"),
				Map(catalog.NavItems(), func(n catalog.NavItem) Node {
					return A(Href("#"+n.ID), Class("nav-link"),
						helpers.ClassIf("active", "$nav.active == "+helpers.JS(n.ID)),
						helpers.On("click", "$menu.open = false"),
						Text(p.T.T(n.LabelKey)),
					)
				}),
			),
			SearchBar(p),
			LanguageSwitcher(p),
			A(Href("#pricing"), Class("btn btn-primary header-cta"), Text(p.T.T("header.getStarted"))),
			Button(Type("button"), Class("menu-toggle"), Aria("label", "Menu"),
				helpers.On("click", "$menu.open = !$menu.open"),
				helpers.Icon("fas fa-bars"),
			),
		),
	)
}

func SearchBar(p Page) Node {
	return Div(Class("search-bar"),
		helpers.Icon("fas fa-search"),
		Input(Type("search"), Name("term"), Placeholder(p.T.T("search.placeholder")), AutoComplete("off"),
			helpers.Bind("search.term"),
			helpers.On("input", helpers.Post("/search"), "debounce.300ms"),
		),
		SearchResults(p.T, nil),
	)
}

// SearchResults is merged into the page by id. An empty result list renders
// an empty container, which the stylesheet hides.
func SearchResults(t i18n.Translator, results []string) Node {
	return Div(ID("search-results"), Class("search-results"),
		If(len(results) > 0, Ul(
			Map(results, func(r string) Node {
				return Li(Button(Type("button"),
					helpers.On("click", helpers.Seq(
						"$search.term = ''",
						"document.getElementById('channels').scrollIntoView({behavior: 'smooth'})",
					)),
					helpers.Icon("fas fa-tv"),
					Span(Text(r)),
				))
			}),
		)),
	)
}

func LanguageSwitcher(p Page) Node {
	current := p.T.Lang()
	return Details(Class("language-switcher"),
		Summary(Aria("label", p.T.T("header.language")),
			helpers.Icon("fas fa-globe"),
			Span(Text(current)),
		),
		Ul(
			Map(catalog.Languages(), func(l catalog.Language) Node {
				return Li(A(Href("/lang/"+l.Code), Lang(l.Code),
					If(l.Code == current, Class("active")),
					Text(l.Name),
				))
			}),
		),
	)
}
