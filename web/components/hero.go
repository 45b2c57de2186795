package components

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/premiumiptv/landing/internal/catalog"
	"github.com/premiumiptv/landing/internal/rotator"
	"github.com/premiumiptv/landing/web/helpers"
)

func Hero(p Page) Node {
	return Section(ID("home"), Class("hero"),
		Div(Class("hero-media"),
			StyleEl(Raw(CrossfadeCSS(".hero-slide", rotator.Crossfade))),
			Video(Class("hero-video"), Attr("poster", p.Asset(catalog.HeroPoster)),
				AutoPlay(), Muted(), Loop(), PlaysInline(),
				Source(Src(p.Asset(catalog.HeroVideo)), Type("video/mp4")),
			),
			Group(lo.Map(catalog.HeroImages(), func(src string, i int) Node {
				return Img(Class(lo.Ternary(i == 0, "hero-slide active", "hero-slide")), Src(src), Alt(""),
					helpers.ClassIf("active", "$hero.index == "+strconv.Itoa(i)),
					Attr("onerror", "this.onerror=null;this.src='"+catalog.HeroFallback+"'"),
				)
			})),
			Div(Class("hero-overlay")),
		),
		Div(Class("container hero-content"),
			H1(Text(p.T.T("hero.title"))),
			P(Class("hero-subtitle"), Text(p.T.T("hero.subtitle"))),
			Div(Class("hero-features"),
				Map(catalog.HeroFeatures(), func(f catalog.HeroFeature) Node {
					return Div(Class("hero-feature"),
						Span(Class("hero-feature-icon"), Style("color: "+f.Color), helpers.Icon(f.Icon)),
						Span(Text(f.Text)),
					)
				}),
			),
			Div(Class("hero-actions"),
				A(Href("#pricing"), Class("btn btn-primary"), Text(p.T.T("header.getStarted"))),
				A(Href("#channels"), Class("btn btn-outline"), Text(p.T.T("header.channels"))),
			),
			Div(Class("hero-stats"),
				Map(catalog.TrustStats(), func(s catalog.Stat) Node {
					return Div(Class("stat"),
						Span(Class("stat-value"), Text(FormatStat(s))),
						Span(Class("stat-label"), Text(p.T.T(s.LabelKey))),
					)
				}),
			),
		),
	)
}

// FormatStat renders a trust indicator with thousands separators.
func FormatStat(s catalog.Stat) string {
	if s.Raw != "" {
		return s.Raw
	}
	return s.Prefix + humanize.Comma(s.Value) + s.Suffix
}

// CrossfadeCSS turns a transition into rules for selector. Inactive slides
// rest on the initial frame and the active one animates to the target frame.
func CrossfadeCSS(selector string, t rotator.Transition) string {
	frame := func(f rotator.Frame) string {
		return fmt.Sprintf("opacity:%g;transform:scale(%g);filter:blur(%gpx) brightness(%g)",
			f.Opacity, f.Scale, f.Blur, f.Brightness)
	}
	return fmt.Sprintf("%s{%s;transition:opacity %dms,transform %dms,filter %dms}%s.active{%s}",
		selector, frame(t.Initial),
		t.Duration.Milliseconds(), t.Duration.Milliseconds(), t.Duration.Milliseconds(),
		selector, frame(t.Animate))
}
