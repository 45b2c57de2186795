package templates

// Data passed to the outbound message templates.

// messages/<lang>/subscribe

type DataMessageSubscribe struct {
	Plan   string
	Price  string
	Period string
}

// messages/<lang>/support, messages/<lang>/livechat

type DataMessageSupport struct {
	Section string
}

// messages/<lang>/checkout-alert

type DataMessageCheckout struct {
	Name   string
	Plan   string
	Price  string
	Period string
	Method string
}
