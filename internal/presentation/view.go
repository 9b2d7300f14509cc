// Package presentation holds the page skeleton as a typed view model and
// binds a settings document onto it.
package presentation

import (
	"github.com/wigconnect/wigconnect/internal/contact"
	"github.com/wigconnect/wigconnect/internal/settings"
)

// View enumerates every slot of the landing page that settings can write
// into. Repeated slots are fixed-length: binding never adds or removes
// entries.
type View struct {
	Meta         Meta
	BusinessName string
	Theme        Theme
	Hero         Hero
	Features     []Feature
	About        Section
	Services     Section
	CTA          CTA
	Footer       Footer
	PrimaryNav   []NavLink
	MobileNav    []NavLink
	PhoneInput   PhoneInput
}

type Meta struct {
	Title       string
	OGTitle     string
	Description string
}

type Hero struct {
	Badge          string
	Title          string
	TitleHighlight string
	Subtitle       string
}

type Feature struct {
	Icon string
	Text string
}

type Card struct {
	Icon        string
	Title       string
	Description string
}

// Section is a titled block of cards (about, services).
type Section struct {
	Title    string
	Subtitle string
	Cards    []Card
}

type CTA struct {
	Title      string
	Subtitle   string
	ButtonText string
}

type Footer struct {
	Copyright string
	Tagline   string
}

type NavLink struct {
	Label string
	Href  string
}

type PhoneInput struct {
	CountryCode string
	Placeholder string
	MaxLength   int
	// Digits is how many digits the keystroke formatter keeps.
	Digits int
}

// Skeleton returns a new View holding the page's built-in copy.
func Skeleton() *View {
	primary, secondary, accent := settings.DefaultPrimaryColor, settings.DefaultSecondaryColor, settings.DefaultAccentColor
	return &View{
		Meta: Meta{
			Title:       "WigConnect | Premium Wigs Imported to Nigeria",
			OGTitle:     "WigConnect | Premium Wigs Imported to Nigeria",
			Description: "Human hair wigs sourced from Vietnam, India and Eastern Europe, delivered across Nigeria at honest prices.",
		},
		BusinessName: settings.DefaultBusinessName,
		Theme:        lightTheme(primary, secondary, accent),
		Hero: Hero{
			Badge:          "Direct import, no middlemen",
			Title:          "Luxury wigs,",
			TitleHighlight: "affordable prices",
			Subtitle:       "We import premium human hair from Vietnam, India and Eastern Europe so you pay less for better quality.",
		},
		Features: []Feature{
			{Icon: "✈️", Text: "Imported directly"},
			{Icon: "💯", Text: "100% human hair"},
			{Icon: "🚚", Text: "Nationwide delivery"},
		},
		About: Section{
			Title:    "Why WigConnect?",
			Subtitle: "We cut out the middlemen and pass the savings on to you.",
			Cards: []Card{
				{Icon: "🌍", Title: "Global sourcing", Description: "Hand-picked suppliers in Vietnam, India and Eastern Europe."},
				{Icon: "💰", Title: "Honest pricing", Description: "Factory prices without the boutique markup."},
				{Icon: "✨", Title: "Quality checked", Description: "Every unit is inspected before it ships to you."},
			},
		},
		Services: Section{
			Title:    "What we offer",
			Subtitle: "Everything you need for your next look.",
			Cards: []Card{
				{Icon: "💇", Title: "Custom wigs", Description: "Made to your length, density and texture."},
				{Icon: "📦", Title: "Bulk orders", Description: "Wholesale pricing for salons and resellers."},
				{Icon: "🎨", Title: "Coloring", Description: "Pre-colored units ready to wear."},
				{Icon: "🛠️", Title: "Revamps", Description: "Wash, treatment and restyling for your units."},
			},
		},
		CTA: CTA{
			Title:      "Ready for your next wig?",
			Subtitle:   "Leave your number and chat with us on WhatsApp.",
			ButtonText: "Chat on WhatsApp",
		},
		Footer: Footer{
			Copyright: "© WigConnect. All rights reserved.",
			Tagline:   "Premium wigs, fair prices.",
		},
		PrimaryNav: defaultNav(),
		MobileNav:  defaultNav(),
		PhoneInput: PhoneInput{
			CountryCode: settings.DefaultPhoneCountryCode,
			Placeholder: settings.DefaultPhonePlaceholder,
			MaxLength:   contact.InputMaxLength(settings.DefaultPhoneDigits),
			Digits:      settings.DefaultPhoneDigits,
		},
	}
}

func defaultNav() []NavLink {
	return []NavLink{
		{Label: "About", Href: "#about"},
		{Label: "Services", Href: "#services"},
		{Label: "Contact", Href: "#whatsapp-form"},
	}
}

// Build returns the skeleton with doc bound onto it, using a non-strict
// binder.
func Build(doc settings.Document) *View {
	v := Skeleton()
	_ = Binder{}.Apply(doc, v)
	return v
}
