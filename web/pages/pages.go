package pages

import (
	. "maragu.dev/gomponents"

	"github.com/premiumiptv/landing/web/components"
	"github.com/premiumiptv/landing/web/layouts"
)

// Home is the landing page.
func Home(p components.Page) Node {
	return layouts.Default(p,
		components.Hero(p),
		components.Channels(p),
		components.Showcase(p),
		components.Pricing(p),
		components.Sports(p),
		components.Features(p),
		components.Testimonials(p),
		components.FAQ(p),
		components.Support(p),
	)
}
