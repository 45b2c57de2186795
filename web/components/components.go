package components

import (
	"strconv"

	"github.com/samber/lo"
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/premiumiptv/landing/internal/assets"
	"github.com/premiumiptv/landing/internal/catalog"
	"github.com/premiumiptv/landing/internal/i18n"
	"github.com/premiumiptv/landing/internal/lazyload"
	"github.com/premiumiptv/landing/internal/views"
)

// Page carries what every component needs to render for one visitor.
type Page struct {
	T      i18n.Translator
	ViewID string
	Assets *assets.Static
	// Dev reloads the browser when the server restarts.
	Dev bool
}

// Event returns the endpoint a browser event of kind is posted to.
func (p Page) Event(kind views.Kind) string {
	return "/views/" + p.ViewID + "/events/" + string(kind)
}

func (p Page) Stream() string {
	return "/views/" + p.ViewID + "/stream"
}

// Asset returns the fingerprinted path when an asset store is configured.
func (p Page) Asset(webPath string) string {
	if p.Assets == nil {
		return webPath
	}
	return p.Assets.Path(webPath)
}

// Signals is the initial datastar signal tree of a page view. The server
// owns nav, showcase.offset, hero and faq.open; the browser owns the rest.
type Signals struct {
	Nav struct {
		Active   string `json:"active"`
		Scrolled bool   `json:"scrolled"`
	} `json:"nav"`
	Showcase struct {
		Offset float64 `json:"offset"`
		Hover  bool    `json:"hover"`
	} `json:"showcase"`
	Hero struct {
		Index int    `json:"index"`
		Image string `json:"image"`
	} `json:"hero"`
	FAQ struct {
		Open   int `json:"open"`
		Toggle int `json:"toggle"`
	} `json:"faq"`
	Open struct {
		Target string `json:"target"`
		Plan   string `json:"plan"`
		Price  string `json:"price"`
		Period string `json:"period"`
	} `json:"open"`
	Search struct {
		Term string `json:"term"`
	} `json:"search"`
	Menu struct {
		Open bool `json:"open"`
	} `json:"menu"`
	Support struct {
		Open bool `json:"open"`
	} `json:"support"`
}

func InitialSignals() Signals {
	var s Signals
	s.Nav.Active = catalog.SectionIDs()[0]
	if imgs := catalog.HeroImages(); len(imgs) > 0 {
		s.Hero.Image = imgs[0]
	}
	s.FAQ.Open = views.Closed
	s.FAQ.Toggle = views.Closed
	return s
}

// pending is shown in place of a deferred image until it is revealed.
const pending = "data:image/gif;base64,R0lGODlhAQABAIAAAAAAAP///yH5BAEAAAAALAAAAAABAAEAAAIBRAA7"

// loopSuffix marks the second copy of an image in a looping carousel.
const loopSuffix = "-loop"

// LazyImages lists every deferred image on the landing page.
func LazyImages() []lazyload.Image {
	var imgs []lazyload.Image
	imgs = append(imgs, lo.Map(catalog.Channels(), func(c catalog.MediaItem, _ int) lazyload.Image { return channelImage(c) })...)
	imgs = append(imgs, lo.Map(catalog.Showcase(), func(c catalog.MediaItem, _ int) lazyload.Image { return showcaseImage(c) })...)
	imgs = append(imgs, lo.Map(catalog.Leagues(), func(l catalog.MediaItem, _ int) lazyload.Image { return leagueImage(l) })...)
	imgs = append(imgs, lo.Map(catalog.Testimonials(), testimonialImage)...)
	return imgs
}

func channelImage(c catalog.MediaItem) lazyload.Image {
	return lazyload.Image{ID: "channel-" + c.ID, Src: c.Image, Fallback: catalog.ChannelPlaceholder, Alt: c.Name}
}

func showcaseImage(c catalog.MediaItem) lazyload.Image {
	return lazyload.Image{ID: "showcase-" + c.ID, Src: c.Image, Fallback: catalog.ContentPlaceholder, Alt: c.Name}
}

func leagueImage(l catalog.MediaItem) lazyload.Image {
	return lazyload.Image{ID: "league-" + l.ID, Src: l.Image, Fallback: catalog.SportsPlaceholder, Alt: l.Name}
}

func testimonialImage(t catalog.Testimonial, i int) lazyload.Image {
	return lazyload.Image{ID: "testimonial-" + strconv.Itoa(i), Src: t.Image, Fallback: catalog.TestimonialPlaceholder}
}

// looped holds the ids rendered twice by the showcase carousel.
var looped = func() map[string]bool {
	m := map[string]bool{}
	for _, c := range catalog.Showcase() {
		m[showcaseImage(c).ID] = true
	}
	return m
}()

// LazyImage renders a deferred image that reports its visibility to the
// page view. loopCopy marks the duplicate of a carousel item.
func LazyImage(img lazyload.Image, loopCopy bool) Node {
	id := img.ID
	if loopCopy {
		id += loopSuffix
	}
	return Img(
		ID("lazy-"+id),
		Class("lazy"),
		Src(pending),
		Alt(img.Alt),
		Data("lazy-id", img.ID),
	)
}

// Revealed renders the loaded form of img. Carousel items are rendered for
// both copies so the loop stays seamless.
func Revealed(img lazyload.Image) Node {
	nodes := []Node{revealed(img, img.ID)}
	if looped[img.ID] {
		nodes = append(nodes, revealed(img, img.ID+loopSuffix))
	}
	return Group(nodes)
}

func revealed(img lazyload.Image, id string) Node {
	return Img(
		ID("lazy-"+id),
		Class("lazy loaded"),
		Src(img.Src),
		Alt(img.Alt),
		Data("lazy-id", img.ID),
		Attr("onerror", "this.onerror=null;this.src='"+img.Fallback+"'"),
	)
}

func SectionTitle(p Page, titleKey, subtitleKey string) Node {
	return Div(Class("section-title"),
		H2(Text(p.T.T(titleKey))),
		If(subtitleKey != "", P(Text(p.T.T(subtitleKey)))),
	)
}
