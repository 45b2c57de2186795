package pages

import (
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/premiumiptv/landing/web/components"
	"github.com/premiumiptv/landing/web/helpers"
	"github.com/premiumiptv/landing/web/layouts"
)

type CheckoutData struct {
	Plan   string // tier id or free-form plan name
	Name   string // display name of the plan
	Price  string
	Period string
}

// PaymentMethods are the values accepted by the checkout form.
var PaymentMethods = []string{"card", "paypal", "crypto"}

func Checkout(p components.Page, d CheckoutData) Node {
	t := p.T.T
	methods := make([]components.OptionCfg, 0, len(PaymentMethods))
	for _, m := range PaymentMethods {
		methods = append(methods, components.OptionCfg{Value: m, Label: t("checkout." + m)})
	}

	return layouts.Plain(p, Section(Class("checkout container"),
		H1(Text(t("checkout.title"))),
		Div(Class("checkout-summary"),
			Dl(
				Dt(Text(t("checkout.plan"))), Dd(Text(d.Name)),
				Dt(Text(t("checkout.price"))), Dd(Text("$"+d.Price+d.Period)),
			),
		),
		Form(ID("checkout-form"), Method("POST"), Action("/checkout"),
			helpers.On("submit", "@post('/checkout', {contentType: 'form'})", "prevent"),
			Input(Type("hidden"), Name("plan"), Value(d.Plan)),
			Input(Type("hidden"), Name("price"), Value(d.Price)),
			components.Field(components.InputCfg{Name: "name", Label: t("checkout.name"), Required: true}),
			components.Field(components.InputCfg{Name: "email", Label: t("checkout.email"), Type: "email", Required: true}),
			components.Field(components.InputCfg{Name: "phone", Label: t("checkout.phone"), Type: "tel", Required: true}),
			components.SelectField("method", t("checkout.method"), methods),
			components.FormError(""),
			Button(Type("submit"), Class("btn btn-primary"), Text(t("checkout.submit"))),
		),
		A(Href("/#pricing"), Class("back-link"), helpers.Icon("fas fa-arrow-left"), Text(t("checkout.back"))),
	))
}
