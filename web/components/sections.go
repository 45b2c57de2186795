package components

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/premiumiptv/landing/internal/catalog"
	"github.com/premiumiptv/landing/internal/redirect"
	"github.com/premiumiptv/landing/internal/views"
	"github.com/premiumiptv/landing/web/helpers"
)

func Channels(p Page) Node {
	return Section(ID("channels"), Class("channels"),
		Div(Class("container"),
			SectionTitle(p, "channels.title", "channels.subtitle"),
			Div(Class("channel-grid"),
				Map(catalog.Channels(), func(c catalog.MediaItem) Node {
					return Div(Class("channel-card"), LazyImage(channelImage(c), false))
				}),
			),
			Div(Class("sport-highlights"),
				Map(catalog.SportHighlights(), func(s catalog.SportHighlight) Node {
					return Div(Class("sport-highlight"),
						helpers.Icon(s.Icon),
						H3(Text(p.T.T(s.TitleKey))),
						P(Text(p.T.T(s.DescriptionKey))),
					)
				}),
			),
		),
	)
}

// Showcase is the auto-scrolling poster strip. The items are rendered twice
// so the jump back to offset zero lands on identical content.
func Showcase(p Page) Node {
	items := catalog.Showcase()
	card := func(loopCopy bool) func(catalog.MediaItem) Node {
		return func(c catalog.MediaItem) Node {
			return Div(Class("showcase-card"), If(loopCopy, Aria("hidden", "true")),
				Div(Class("showcase-poster"), LazyImage(showcaseImage(c), loopCopy)),
				Div(Class("showcase-info"),
					H3(Text(c.Name)),
					P(Text(c.Category)),
				),
			)
		}
	}
	pointer := p.Event(views.KindPointer)

	return Section(ID("content"), Class("showcase"),
		Div(Class("container"), SectionTitle(p, "contentShowcase.title", "contentShowcase.subtitle")),
		Div(ID("showcase-track"), Class("showcase-track"),
			helpers.Effect("el.scrollLeft = $showcase.offset"),
			helpers.On("mouseenter", helpers.Seq("$showcase.hover = true", helpers.Post(pointer))),
			helpers.On("mouseleave", helpers.Seq("$showcase.hover = false", helpers.Post(pointer))),
			Div(ID("showcase-row"), Class("showcase-row"),
				Map(items, card(false)),
				Map(items, card(true)),
			),
		),
	)
}

func Sports(p Page) Node {
	return Section(ID("sports"), Class("sports"),
		Div(Class("container"),
			SectionTitle(p, "sports.title", ""),
			Span(Class("live-badge"), helpers.Icon("fas fa-circle"), Text(p.T.T("sports.liveCoverage"))),
			Div(Class("league-grid"),
				Map(catalog.Leagues(), func(l catalog.MediaItem) Node {
					return Div(Class("league-card"),
						LazyImage(leagueImage(l), false),
						Span(Text(l.Name)),
					)
				}),
			),
		),
	)
}

func Features(p Page) Node {
	return Section(ID("features"), Class("features"),
		Div(Class("container"),
			SectionTitle(p, "features.title", "features.subtitle"),
			Div(Class("feature-grid"),
				Map(catalog.Features(), func(f catalog.Feature) Node {
					return Div(Class("feature-card"),
						Div(Class("feature-icon"), helpers.Icon(f.Icon)),
						H3(Text(p.T.T(f.TitleKey))),
						P(Text(p.T.T(f.DescriptionKey))),
						If(len(f.Devices) > 0, Div(Class("feature-devices"),
							Map(f.Devices, helpers.Icon),
						)),
					)
				}),
			),
		),
	)
}

// Period renders a tier's billing period in the page language.
func Period(p Page, tier catalog.PricingTier) string {
	return p.T.T(tier.PeriodKey) + tier.PeriodSuffix
}

func Pricing(p Page) Node {
	return Section(ID("pricing"), Class("pricing"),
		Div(Class("container"),
			SectionTitle(p, "pricing.title", ""),
			Div(Class("pricing-grid"),
				Map(catalog.Pricing(), func(tier catalog.PricingTier) Node {
					price := strconv.Itoa(tier.Price)
					params := redirect.Params{Plan: tier.Name, Price: price, Period: Period(p, tier)}
					return Div(Class(lo.Ternary(tier.Popular, "pricing-card popular", "pricing-card")),
						If(tier.BadgeKey != "", Span(Class("pricing-badge"), Text(p.T.T(tier.BadgeKey)))),
						H3(Text(tier.Name)),
						Div(Class("pricing-price"),
							Span(Class("currency"), Text("$")),
							Span(Class("amount"), Text(humanize.Comma(int64(tier.Price)))),
							Span(Class("period"), Text(params.Period)),
						),
						Ul(Class("pricing-features"),
							Map(tier.FeatureKeys, func(k string) Node {
								return Li(helpers.Icon("fas fa-check"), Text(p.T.T(k)))
							}),
						),
						OpenLink(p, redirect.TargetSubscribe, params, Class("btn btn-primary"),
							helpers.Icon("fab fa-whatsapp"), Text(p.T.T("pricing.subscribe")),
						),
						A(Class("btn btn-outline"), Href(CheckoutURL(tier.ID, price)),
							helpers.Icon("fas fa-credit-card"), Text(p.T.T("checkout.title")),
						),
					)
				}),
			),
			Div(Class("payment-methods"),
				P(helpers.Icon("fas fa-lock"), Text(p.T.T("pricing.securePayment"))),
				Map(catalog.PaymentMethods(), func(m catalog.PaymentMethod) Node {
					return Img(Src(p.Asset(m.Logo)), Alt(m.Name), Title(m.Name))
				}),
			),
		),
	)
}

func Testimonials(p Page) Node {
	return Section(ID("testimonials"), Class("testimonials"),
		Div(Class("container"),
			SectionTitle(p, "testimonials.title", "testimonials.subtitle"),
			Div(Class("testimonial-grid"),
				Group(lo.Map(catalog.Testimonials(), func(t catalog.Testimonial, i int) Node {
					return Div(Class("testimonial-card"),
						Div(Class("rating"), Aria("label", strconv.Itoa(t.Rating)+"/5"),
							Group(lo.Times(t.Rating, func(int) Node { return helpers.Icon("fas fa-star") })),
						),
						P(Class("testimonial-text"), Text(p.T.T(t.TextKey))),
						Div(Class("testimonial-author"),
							LazyImage(testimonialImage(t, i), false),
							Div(
								Strong(Text(p.T.T(t.NameKey))),
								Span(Text(p.T.T(t.RoleKey))),
							),
						),
					)
				})),
			),
		),
	)
}

func FAQ(p Page) Node {
	event := p.Event(views.KindFAQ)
	return Section(ID("faq"), Class("faq"),
		Div(Class("container"),
			SectionTitle(p, "faq.title", "faq.subtitle"),
			Div(Class("faq-list"),
				Group(lo.Map(catalog.FAQ(), func(e catalog.FAQEntry, i int) Node {
					idx := strconv.Itoa(i)
					return Div(Class("faq-item"), helpers.ClassIf("open", "$faq.open == "+idx),
						Button(Type("button"), Class("faq-question"),
							helpers.On("click", helpers.Seq("$faq.toggle = "+idx, helpers.Post(event))),
							Span(Text(p.T.T(e.QuestionKey))),
							helpers.Icon("fas fa-chevron-down"),
						),
						Div(Class("faq-answer"), helpers.Show("$faq.open == "+idx),
							P(Text(p.T.T(e.AnswerKey))),
						),
					)
				})),
			),
		),
	)
}

func Support(p Page) Node {
	return Section(ID("support"), Class("support"),
		Div(Class("container"),
			SectionTitle(p, "support.title", "support.subtitle"),
			Div(Class("support-grid"),
				Map(catalog.SupportChannels(), func(c catalog.SupportChannel) Node {
					return Div(Class("support-card"),
						Div(Class("support-icon"), Style("color: "+c.Color), helpers.Icon(c.Icon)),
						H3(Text(p.T.T(c.TitleKey))),
						P(Text(p.T.T(c.DescriptionKey))),
						OpenLink(p, redirect.Target(c.Target), redirect.Params{}, Class("btn btn-outline"),
							Text(p.T.T(c.ButtonKey)),
						),
					)
				}),
			),
		),
	)
}

func SiteFooter(p Page) Node {
	type link struct {
		Key  string
		Href string
	}
	resources := []link{
		{Key: "footer.setupGuide", Href: "#features"},
		{Key: "footer.tutorials", Href: "#features"},
		{Key: "footer.faq", Href: "#faq"},
	}
	legal := []link{
		{Key: "footer.privacyPolicy", Href: "#"},
		{Key: "footer.termsOfService", Href: "#"},
		{Key: "footer.refundPolicy", Href: "#"},
		{Key: "footer.dmca", Href: "#"},
	}
	linkList := func(links []link) Node {
		return Ul(Map(links, func(l link) Node {
			return Li(A(Href(l.Href), Text(p.T.T(l.Key))))
		}))
	}

	return Footer(Class("footer"),
		Div(Class("container footer-grid"),
			Div(Class("footer-brand"),
				Img(Src(p.Asset(catalog.Logo)), Alt("")),
				P(Text(p.T.T("footer.description"))),
				Div(Class("social-links"),
					Map(catalog.SocialLinks(), func(s catalog.SocialLink) Node {
						return A(Href(s.URL), Rel("noopener noreferrer"), Target("_blank"), helpers.Icon(s.Icon))
					}),
				),
			),
			Div(linkList(resources)),
			Div(linkList(legal)),
			Div(Class("footer-contact"),
				H4(Text(p.T.T("footer.contactUs"))),
				OpenLink(p, redirect.TargetLiveChat, redirect.Params{}, helpers.Icon("fab fa-whatsapp"), Text(p.T.T("footer.liveChat"))),
				OpenLink(p, redirect.TargetTelegram, redirect.Params{}, helpers.Icon("fab fa-telegram"), Text("Telegram")),
				OpenLink(p, redirect.TargetEmail, redirect.Params{}, helpers.Icon("fas fa-envelope"), Text(p.T.T("support.emailTitle"))),
			),
		),
		P(Class("copyright"),
			Text("© "+strconv.Itoa(time.Now().Year())+" "+p.T.T("header.brand")+". "+p.T.T("footer.copyright")),
		),
	)
}

func FloatingSupport(p Page) Node {
	return Div(Class("floating-support"), helpers.ClassIf("open", "$support.open"),
		Div(Class("floating-panel"), helpers.Show("$support.open"),
			P(Text(p.T.T("support.floating"))),
			OpenLink(p, redirect.TargetLiveChat, redirect.Params{}, helpers.Icon("fab fa-whatsapp"), Text(p.T.T("footer.liveChat"))),
			OpenLink(p, redirect.TargetTelegram, redirect.Params{}, helpers.Icon("fab fa-telegram"), Text(p.T.T("support.telegramTitle"))),
			OpenLink(p, redirect.TargetEmail, redirect.Params{}, helpers.Icon("fas fa-envelope"), Text(p.T.T("support.emailTitle"))),
		),
		Button(Type("button"), Class("floating-toggle"), Aria("label", p.T.T("support.floating")),
			helpers.On("click", "$support.open = !$support.open"),
			helpers.Icon("fas fa-headset"),
		),
	)
}

// OpenLink opens the outbound redirect route in a new window. The click is
// also reported to the page view.
func OpenLink(p Page, target redirect.Target, params redirect.Params, children ...Node) Node {
	action := []string{
		"$open.target = " + helpers.JS(string(target)),
		"$open.plan = " + helpers.JS(params.Plan),
		"$open.price = " + helpers.JS(params.Price),
		"$open.period = " + helpers.JS(params.Period),
		helpers.Post(p.Event(views.KindOpen)),
	}
	return A(Href(GoURL(target, params)), Target("_blank"), Rel("noopener noreferrer"),
		helpers.On("click", helpers.Seq(action...)),
		Group(children),
	)
}

// GoURL is the no-script form of an outbound link.
func GoURL(target redirect.Target, params redirect.Params) string {
	q := url.Values{}
	for k, v := range map[string]string{"plan": params.Plan, "price": params.Price, "period": params.Period} {
		if strings.TrimSpace(v) != "" {
			q.Set(k, v)
		}
	}
	u := "/go/" + string(target)
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}

func CheckoutURL(plan, price string) string {
	return "/checkout?" + url.Values{"plan": {plan}, "price": {price}}.Encode()
}
