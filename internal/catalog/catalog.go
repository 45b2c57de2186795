// Package catalog holds the hardcoded content of the landing page.
//
// Text that is shown to visitors is stored as translation keys and resolved
// by the i18n bundle at render time. Brand names, prices and asset paths are
// stored literally. Every accessor returns a fresh copy so callers cannot
// mutate the tables.
package catalog

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

// MediaItem is a logo, poster or league badge shown in a grid or carousel.
type MediaItem struct {
	ID       string
	Name     string
	Image    string
	Category string
	Caption  string
}

type PricingTier struct {
	ID           string
	Name         string
	Price        int
	PeriodKey    string
	PeriodSuffix string
	Popular      bool
	BadgeKey     string
	FeatureKeys  []string
}

type PaymentMethod struct {
	Name string
	Logo string
}

type Testimonial struct {
	NameKey string
	RoleKey string
	Image   string
	Rating  int
	TextKey string
}

type FAQEntry struct {
	QuestionKey string
	AnswerKey   string
}

// SupportChannel is an outbound contact option. Target names the redirect
// destination understood by the redirect dispatcher.
type SupportChannel struct {
	Target         string
	Icon           string
	Color          string
	TitleKey       string
	DescriptionKey string
	ButtonKey      string
}

type Feature struct {
	Icon           string
	TitleKey       string
	DescriptionKey string
	Devices        []string
}

type HeroFeature struct {
	Icon  string
	Text  string
	Color string
}

// Stat is a trust indicator. Value is formatted with thousands separators.
type Stat struct {
	Prefix   string
	Value    int64
	Suffix   string
	Raw      string
	LabelKey string
}

type SportHighlight struct {
	Icon           string
	TitleKey       string
	DescriptionKey string
}

type NavItem struct {
	ID       string
	LabelKey string
}

type Language struct {
	Code string
	Name string
}

type SocialLink struct {
	Icon string
	URL  string
}

// Placeholders substituted when an image fails to load.
const (
	ChannelPlaceholder     = "/assets/channels/placeholder.png"
	ContentPlaceholder     = "/assets/content/placeholder.jpg"
	SportsPlaceholder      = "/assets/sports/placeholder.png"
	TestimonialPlaceholder = "/assets/testimonials/placeholder.jpg"
	HeroFallback           = "/assets/hero-fallback.jpg"
	HeroPoster             = "/assets/hero-poster.jpg"
	HeroVideo              = "/assets/hero-video.mp4"
	Logo                   = "/assets/logo.png"
)

var planFeatures = []string{
	"features.tvChannels",
	"features.movies",
	"features.series",
	"features.multipleLanguages",
	"features.regularUpdates",
	"features.ultraQuality",
	"features.stability",
	"features.compatibleApps",
	"features.allDevicesSupported",
	"features.worldwideService",
}

var (
	navItems = []NavItem{
		{ID: "home", LabelKey: "header.home"},
		{ID: "channels", LabelKey: "header.channels"},
		{ID: "features", LabelKey: "header.features"},
		{ID: "pricing", LabelKey: "header.pricing"},
		{ID: "support", LabelKey: "header.support"},
	}

	languages = []Language{
		{Code: "en", Name: "English"},
		{Code: "fr", Name: "Français"},
		{Code: "el", Name: "Ελληνικά"},
		{Code: "sq", Name: "Shqip"},
	}

	heroImages = []string{
		"/assets/header/image1.png",
		"/assets/header/image2.png",
		"/assets/header/image3.png",
		"/assets/header/image4.jpg",
	}

	heroFeatures = []HeroFeature{
		{Icon: "fas fa-tv", Text: "8K HDR QUALITY", Color: "#00d4ff"},
		{Icon: "fas fa-bolt", Text: "ZERO BUFFERING", Color: "var(--accent-secondary)"},
		{Icon: "fas fa-headset", Text: "24/7 PREMIUM SUPPORT", Color: "#ff6b9d"},
		{Icon: "fas fa-mobile-alt", Text: "ALL DEVICES SUPPORTED", Color: "var(--success)"},
		{Icon: "fas fa-cogs", Text: "ALL APPLICATIONS SUPPORTED", Color: "#9c27b0"},
		{Icon: "fas fa-shield-alt", Text: "VPN INCLUDED", Color: "#4caf50"},
	}

	trustStats = []Stat{
		{Prefix: "+", Value: 35000, LabelKey: "hero.channels"},
		{Raw: "99.9%", LabelKey: "hero.uptime"},
		{Value: 5500, Suffix: "+", LabelKey: "hero.happyUsers"},
	}

	channels = []MediaItem{
		{ID: "cosmote", Name: "Cosmote", Image: "/assets/channels/cosmote.png", Category: "channel"},
		{ID: "tnt", Name: "TNT", Image: "/assets/channels/tnt.png", Category: "channel"},
		{ID: "nova", Name: "Nova", Image: "/assets/channels/nova.png", Category: "channel"},
		{ID: "supersport", Name: "SuperSport", Image: "/assets/channels/supersport.png", Category: "channel"},
		{ID: "dazn", Name: "DAZN", Image: "/assets/channels/dazn.png", Category: "channel"},
		{ID: "bein-sport", Name: "BEIN SPORT", Image: "/assets/channels/bein-sport.png", Category: "channel"},
	}

	showcase = []MediaItem{
		{ID: "kanan", Name: "Kanan", Image: "/assets/movies/kanan.jpg", Category: "series", Caption: "IPTV Premium Abonnement VOD Streaming"},
		{ID: "mufasa", Name: "Mufasa Le roi Lion", Image: "/assets/movies/Mufasa.png", Category: "movie", Caption: "Disney IPTV Premium Abonnement VOD Streaming"},
		{ID: "one-piece", Name: "One Piece", Image: "/assets/movies/onepiece.png", Category: "anime", Caption: "IPTV Premium Abonnement VOD Streaming"},
		{ID: "solo-leveling", Name: "Solo Leveling", Image: "/assets/movies/sololeveling.png", Category: "anime", Caption: "IPTV Premium Abonnement VOD Streaming"},
		{ID: "daredevil-reborn", Name: "Daredevil Reborn", Image: "/assets/movies/DaredevilReborn.jpg", Category: "series", Caption: "Disney+ IPTV Premium Abonnement VOD Streaming"},
		{ID: "the-gorge", Name: "The Gorge", Image: "/assets/movies/TheGorge.png", Category: "movie", Caption: "IPTV Premium Abonnement VOD Streaming"},
		{ID: "reacher", Name: "Reacher", Image: "/assets/movies/Reacher.png", Category: "series", Caption: "Amazon IPTV Premium Abonnement VOD Streaming"},
		{ID: "the-electric-state", Name: "The Electric State", Image: "/assets/movies/TheElectricState.png", Category: "movie", Caption: "Netflix IPTV Premium Abonnement VOD Streaming"},
		{ID: "bob-leponge", Name: "Bob l'éponge", Image: "/assets/movies/Bobleponge.jpg", Category: "kids", Caption: "IPTV Premium Abonnement VOD Streaming"},
		{ID: "shangri-la-frontier", Name: "Shangri-La Frontier", Image: "/assets/movies/shangri.png", Category: "anime", Caption: "IPTV Premium Abonnement VOD Streaming"},
		{ID: "paddington", Name: "Paddington au Pérou", Image: "/assets/movies/Paddington.jpg", Category: "movie", Caption: "IPTV Premium Abonnement VOD Streaming"},
	}

	leagues = []MediaItem{
		{ID: "nba", Name: "NBA", Image: "/assets/sports/NBA.png", Category: "sports", Caption: "Basketball"},
		{ID: "nfl", Name: "NFL", Image: "/assets/sports/NFL.png", Category: "sports", Caption: "American Football"},
		{ID: "laliga", Name: "La Liga", Image: "/assets/sports/laliga.png", Category: "sports", Caption: "Spanish Football"},
		{ID: "premier-league", Name: "Premier League", Image: "/assets/sports/premierleague.png", Category: "sports", Caption: "English Football"},
		{ID: "bundesliga", Name: "Bundesliga", Image: "/assets/sports/Bundesliga.png", Category: "sports", Caption: "German Football"},
		{ID: "ligue-1", Name: "Ligue 1", Image: "/assets/sports/Ligue1.png", Category: "sports", Caption: "French Football"},
		{ID: "serie-a", Name: "Serie A", Image: "/assets/sports/serieA.png", Category: "sports", Caption: "Italian Football"},
		{ID: "champions-league", Name: "Champions League", Image: "/assets/sports/ChampionsLeague.png", Category: "sports", Caption: "European Football"},
		{ID: "formula-1", Name: "Formula 1", Image: "/assets/sports/Formula1.png", Category: "sports", Caption: "Racing Championship"},
	}

	sportHighlights = []SportHighlight{
		{Icon: "fas fa-futbol", TitleKey: "sports.football", DescriptionKey: "sports.footballDescription"},
		{Icon: "fas fa-flag-checkered", TitleKey: "sports.formula1", DescriptionKey: "sports.formula1Description"},
		{Icon: "fas fa-basketball-ball", TitleKey: "sports.basketball", DescriptionKey: "sports.basketballDescription"},
		{Icon: "fas fa-table-tennis", TitleKey: "sports.tennis", DescriptionKey: "sports.tennisDescription"},
	}

	features = []Feature{
		{Icon: "fas fa-tv", TitleKey: "features.multiDeviceSupport", DescriptionKey: "features.multiDeviceDescription",
			Devices: []string{"fab fa-android", "fab fa-apple", "fab fa-windows", "fas fa-tv"}},
		{Icon: "fas fa-rocket", TitleKey: "features.ultraFastStreaming", DescriptionKey: "features.ultraFastDescription"},
		{Icon: "fas fa-shield-alt", TitleKey: "features.secureReliable", DescriptionKey: "features.secureReliableDescription"},
		{Icon: "fas fa-headset", TitleKey: "features.support24_7", DescriptionKey: "features.support24_7Description"},
		{Icon: "fas fa-download", TitleKey: "features.easySetup", DescriptionKey: "features.easySetupDescription"},
		{Icon: "fas fa-clock", TitleKey: "features.catchUpTV", DescriptionKey: "features.catchUpTVDescription"},
	}

	pricing = []PricingTier{
		{ID: "quarterly", Name: "PREMIUM", Price: 25, PeriodKey: "pricing.quarterly", FeatureKeys: planFeatures},
		{ID: "semiannual", Name: "PREMIUM", Price: 38, PeriodKey: "pricing.monthly", PeriodSuffix: " x6",
			Popular: true, BadgeKey: "pricing.bestValue", FeatureKeys: planFeatures},
		{ID: "yearly", Name: "PREMIUM", Price: 62, PeriodKey: "pricing.yearly", FeatureKeys: planFeatures},
	}

	paymentMethods = []PaymentMethod{
		{Name: "PayPal", Logo: "/assets/payment/paypal.svg"},
		{Name: "Visa", Logo: "/assets/payment/visa.svg"},
		{Name: "MasterCard", Logo: "/assets/payment/mastercard.svg"},
		{Name: "Revolut", Logo: "/assets/payment/revolut.svg"},
		{Name: "Crypto", Logo: "/assets/payment/crypto.svg"},
	}

	testimonials = []Testimonial{
		{NameKey: "testimonials.customer1", RoleKey: "testimonials.country1", Image: "/assets/testimonials/greece-flag.svg", Rating: 5, TextKey: "testimonials.testimonial1"},
		{NameKey: "testimonials.customer2", RoleKey: "testimonials.country2", Image: "/assets/testimonials/uk-flag.svg", Rating: 5, TextKey: "testimonials.testimonial2"},
		{NameKey: "testimonials.customer3", RoleKey: "testimonials.country3", Image: "/assets/testimonials/usa-flag.svg", Rating: 5, TextKey: "testimonials.testimonial3"},
	}

	faq = []FAQEntry{
		{QuestionKey: "faq.question1", AnswerKey: "faq.answer1"},
		{QuestionKey: "faq.question2", AnswerKey: "faq.answer2"},
		{QuestionKey: "faq.question3", AnswerKey: "faq.answer3"},
		{QuestionKey: "faq.question4", AnswerKey: "faq.answer4"},
		{QuestionKey: "faq.question5", AnswerKey: "faq.answer5"},
		{QuestionKey: "faq.question6", AnswerKey: "faq.answer6"},
	}

	supportChannels = []SupportChannel{
		{Target: "whatsapp", Icon: "fab fa-whatsapp", Color: "#25d366",
			TitleKey: "support.whatsappTitle", DescriptionKey: "support.whatsappDescription", ButtonKey: "support.whatsapp"},
		{Target: "telegram", Icon: "fab fa-telegram", Color: "#0088cc",
			TitleKey: "support.telegramTitle", DescriptionKey: "support.telegramDescription", ButtonKey: "support.telegram"},
		{Target: "email", Icon: "fas fa-envelope", Color: "var(--accent-primary)",
			TitleKey: "support.emailTitle", DescriptionKey: "support.emailDescription", ButtonKey: "support.email"},
	}

	socialLinks = []SocialLink{
		{Icon: "fab fa-facebook", URL: "#"},
		{Icon: "fab fa-twitter", URL: "#"},
		{Icon: "fab fa-instagram", URL: "#"},
		{Icon: "fab fa-youtube", URL: "#"},
	}

	searchTerms = []string{
		"sky sports", "bein sports", "espn", "fox sports", "netflix", "hbo",
		"disney", "prime video", "cnn", "bbc", "premier league", "champions league",
		"formula 1", "nba", "tennis", "football", "soccer", "basketball",
	}
)

func NavItems() []NavItem { return slices.Clone(navItems) }

// SectionIDs returns the navigable section ids in page order.
func SectionIDs() []string {
	return lo.Map(navItems, func(n NavItem, _ int) string { return n.ID })
}

func Languages() []Language { return slices.Clone(languages) }

func LanguageCodes() []string {
	return lo.Map(languages, func(l Language, _ int) string { return l.Code })
}

func HeroImages() []string { return slices.Clone(heroImages) }

func HeroFeatures() []HeroFeature { return slices.Clone(heroFeatures) }

func TrustStats() []Stat { return slices.Clone(trustStats) }

func Channels() []MediaItem { return slices.Clone(channels) }

func Showcase() []MediaItem { return slices.Clone(showcase) }

func Leagues() []MediaItem { return slices.Clone(leagues) }

func SportHighlights() []SportHighlight { return slices.Clone(sportHighlights) }

func Features() []Feature {
	return lo.Map(features, func(f Feature, _ int) Feature {
		f.Devices = slices.Clone(f.Devices)
		return f
	})
}

func Pricing() []PricingTier {
	return lo.Map(pricing, func(p PricingTier, _ int) PricingTier {
		p.FeatureKeys = slices.Clone(p.FeatureKeys)
		return p
	})
}

// Tier looks a pricing tier up by id.
func Tier(id string) (PricingTier, bool) {
	p, ok := lo.Find(pricing, func(p PricingTier) bool { return p.ID == id })
	if ok {
		p.FeatureKeys = slices.Clone(p.FeatureKeys)
	}
	return p, ok
}

func PaymentMethods() []PaymentMethod { return slices.Clone(paymentMethods) }

func Testimonials() []Testimonial { return slices.Clone(testimonials) }

func FAQ() []FAQEntry { return slices.Clone(faq) }

func SupportChannels() []SupportChannel { return slices.Clone(supportChannels) }

func SocialLinks() []SocialLink { return slices.Clone(socialLinks) }

// MinSearchLength is the number of characters a term must exceed before
// results are returned.
const MinSearchLength = 2

// Search filters the hardcoded search terms by case-insensitive substring.
func Search(term string) []string {
	term = strings.ToLower(strings.TrimSpace(term))
	if utf8.RuneCountInString(term) <= MinSearchLength {
		return nil
	}
	return lo.Filter(searchTerms, func(s string, _ int) bool {
		return strings.Contains(s, term)
	})
}
