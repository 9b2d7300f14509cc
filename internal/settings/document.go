package settings

import "time"

const (
	DefaultBusinessName    = "WigConnect"
	DefaultCountryCode     = "234"
	DefaultWhatsAppMessage = "Hello! I'm interested in your wig import service from Vietnam, India, and Eastern Europe. I'd like to learn more about your affordable pricing for Nigeria."
	DefaultOwnerPhone      = "2349057930710"
	DefaultLoadingDelay    = 1500 * time.Millisecond

	DefaultPrimaryColor   = "rose"
	DefaultSecondaryColor = "purple"
	DefaultAccentColor    = "pink"

	DefaultPhoneCountryCode = "+234"
	DefaultPhonePlaceholder = "801 234 5678"
	DefaultPhoneDigits      = 10
)

type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

// Document is the settings document as supplied by the operator. Every
// field is optional; use the accessor methods to read values with their
// fallbacks applied. A Document reachable from a Snapshot must not be
// modified.
type Document struct {
	Business   *Business   `json:"business,omitempty" yaml:"business,omitempty"`
	Contact    *Contact    `json:"contact,omitempty" yaml:"contact,omitempty"`
	Theme      *Theme      `json:"theme,omitempty" yaml:"theme,omitempty"`
	Content    *Content    `json:"content,omitempty" yaml:"content,omitempty"`
	Navigation *Navigation `json:"navigation,omitempty" yaml:"navigation,omitempty"`
	Settings   *Behaviour  `json:"settings,omitempty" yaml:"settings,omitempty"`
	Meta       *Meta       `json:"meta,omitempty" yaml:"meta,omitempty"`
}

type Business struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

type Contact struct {
	CountryCode     string `json:"countryCode,omitempty" yaml:"countryCode,omitempty"`
	WhatsAppMessage string `json:"whatsappMessage,omitempty" yaml:"whatsappMessage,omitempty"`
	OwnerPhone      string `json:"ownerPhone,omitempty" yaml:"ownerPhone,omitempty"`
}

// ColorScheme maps a color name to shade number to hex value,
// e.g. {"rose": {"500": "#ec4899"}}.
type ColorScheme map[string]map[string]string

type Theme struct {
	Mode           ThemeMode   `json:"mode,omitempty" yaml:"mode,omitempty"`
	PrimaryColor   string      `json:"primaryColor,omitempty" yaml:"primaryColor,omitempty"`
	SecondaryColor string      `json:"secondaryColor,omitempty" yaml:"secondaryColor,omitempty"`
	AccentColor    string      `json:"accentColor,omitempty" yaml:"accentColor,omitempty"`
	ColorScheme    ColorScheme `json:"colorScheme,omitempty" yaml:"colorScheme,omitempty"`
}

type Content struct {
	Hero     *Hero     `json:"hero,omitempty" yaml:"hero,omitempty"`
	Features []Feature `json:"features,omitempty" yaml:"features,omitempty"`
	About    *About    `json:"about,omitempty" yaml:"about,omitempty"`
	Services *Services `json:"services,omitempty" yaml:"services,omitempty"`
	CTA      *CTA      `json:"cta,omitempty" yaml:"cta,omitempty"`
	Footer   *Footer   `json:"footer,omitempty" yaml:"footer,omitempty"`
}

type Hero struct {
	Badge          string `json:"badge,omitempty" yaml:"badge,omitempty"`
	Title          string `json:"title,omitempty" yaml:"title,omitempty"`
	TitleHighlight string `json:"titleHighlight,omitempty" yaml:"titleHighlight,omitempty"`
	Subtitle       string `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
}

type Feature struct {
	Icon string `json:"icon,omitempty" yaml:"icon,omitempty"`
	Text string `json:"text,omitempty" yaml:"text,omitempty"`
}

// Card is shared by about cards and service items.
type Card struct {
	Icon        string `json:"icon,omitempty" yaml:"icon,omitempty"`
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

type About struct {
	Title    string `json:"title,omitempty" yaml:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Cards    []Card `json:"cards,omitempty" yaml:"cards,omitempty"`
}

type Services struct {
	Title    string `json:"title,omitempty" yaml:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Items    []Card `json:"items,omitempty" yaml:"items,omitempty"`
}

type CTA struct {
	Title      string `json:"title,omitempty" yaml:"title,omitempty"`
	Subtitle   string `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	ButtonText string `json:"buttonText,omitempty" yaml:"buttonText,omitempty"`
}

type Footer struct {
	Copyright string `json:"copyright,omitempty" yaml:"copyright,omitempty"`
	Tagline   string `json:"tagline,omitempty" yaml:"tagline,omitempty"`
}

type NavLink struct {
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
	Href  string `json:"href,omitempty" yaml:"href,omitempty"`
}

type Navigation struct {
	Links []NavLink `json:"links,omitempty" yaml:"links,omitempty"`
}

// Behaviour holds the "settings" section of the document.
type Behaviour struct {
	LoadingDelay int          `json:"loadingDelay,omitempty" yaml:"loadingDelay,omitempty"` // milliseconds
	PhoneFormat  *PhoneFormat `json:"phoneFormat,omitempty" yaml:"phoneFormat,omitempty"`
}

// PhoneFormat only drives the input widget. Submission validation uses a
// fixed digit count regardless of MinLength.
type PhoneFormat struct {
	CountryCode string `json:"countryCode,omitempty" yaml:"countryCode,omitempty"`
	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	MinLength   int    `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength   int    `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
}

type Meta struct {
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Defaults returns the document used when the settings resource cannot be
// loaded. Each call returns a fresh value.
func Defaults() Document {
	return Document{
		Business: &Business{Name: DefaultBusinessName},
		Contact: &Contact{
			CountryCode:     DefaultCountryCode,
			WhatsAppMessage: DefaultWhatsAppMessage,
		},
		Theme: &Theme{
			Mode:           ThemeLight,
			PrimaryColor:   DefaultPrimaryColor,
			SecondaryColor: DefaultSecondaryColor,
			AccentColor:    DefaultAccentColor,
		},
		Content: &Content{},
		Settings: &Behaviour{
			LoadingDelay: int(DefaultLoadingDelay / time.Millisecond),
			PhoneFormat: &PhoneFormat{
				CountryCode: DefaultPhoneCountryCode,
				Placeholder: DefaultPhonePlaceholder,
				MinLength:   DefaultPhoneDigits,
				MaxLength:   DefaultPhoneDigits,
			},
		},
	}
}

func (d Document) BusinessName() string {
	if d.Business != nil && d.Business.Name != "" {
		return d.Business.Name
	}
	return DefaultBusinessName
}

func (d Document) CountryCode() string {
	if d.Contact != nil && d.Contact.CountryCode != "" {
		return d.Contact.CountryCode
	}
	return DefaultCountryCode
}

func (d Document) WhatsAppMessage() string {
	if d.Contact != nil && d.Contact.WhatsAppMessage != "" {
		return d.Contact.WhatsAppMessage
	}
	return DefaultWhatsAppMessage
}

// OwnerPhone returns the destination number as configured, formatting
// characters included.
func (d Document) OwnerPhone() string {
	if d.Contact != nil && d.Contact.OwnerPhone != "" {
		return d.Contact.OwnerPhone
	}
	return DefaultOwnerPhone
}

// LoadingDelay is the pacing delay between submit and result. Zero or
// negative values fall back to the default.
func (d Document) LoadingDelay() time.Duration {
	if d.Settings != nil && d.Settings.LoadingDelay > 0 {
		return time.Duration(d.Settings.LoadingDelay) * time.Millisecond
	}
	return DefaultLoadingDelay
}

func (d Document) ThemeMode() ThemeMode {
	if d.Theme != nil && d.Theme.Mode == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// Colors returns the primary, secondary and accent color tokens.
func (d Document) Colors() (primary, secondary, accent string) {
	primary, secondary, accent = DefaultPrimaryColor, DefaultSecondaryColor, DefaultAccentColor
	if d.Theme == nil {
		return
	}
	if d.Theme.PrimaryColor != "" {
		primary = d.Theme.PrimaryColor
	}
	if d.Theme.SecondaryColor != "" {
		secondary = d.Theme.SecondaryColor
	}
	if d.Theme.AccentColor != "" {
		accent = d.Theme.AccentColor
	}
	return
}

// PhoneFormat returns the configured widget format, or nil when the
// document has none.
func (d Document) PhoneFormat() *PhoneFormat {
	if d.Settings == nil {
		return nil
	}
	return d.Settings.PhoneFormat
}

// PhoneDigits is the number of digits the keystroke formatter keeps.
func (d Document) PhoneDigits() int {
	if f := d.PhoneFormat(); f != nil && f.MaxLength > 0 {
		return f.MaxLength
	}
	return DefaultPhoneDigits
}

// Empty reports whether no section of the document is set.
func (d Document) Empty() bool {
	return d.Business == nil && d.Contact == nil && d.Theme == nil &&
		d.Content == nil && d.Navigation == nil && d.Settings == nil && d.Meta == nil
}
