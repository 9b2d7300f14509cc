package components

import (
	"strconv"
	"strings"

	"github.com/wigconnect/wigconnect/internal/formstate"
	"github.com/wigconnect/wigconnect/internal/presentation"
	"github.com/wigconnect/wigconnect/web/helpers"
	"github.com/wigconnect/wigconnect/web/templates"
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Navbar(v *presentation.View, tmpls *templates.Tmpls) Node {
	p := v.Theme.Palette
	return Header(ID("site-nav"),
		Class(helpers.Classes("sticky top-0 z-30 backdrop-blur", p.Section)),
		Nav(Class("mx-auto flex max-w-6xl items-center gap-6 px-4 py-3 lg:px-8"), Aria("label", "Main"),
			A(Href("#home"), Class(helpers.Classes("mr-auto text-xl font-bold", p.Heading)),
				Span(Text(v.BusinessName)),
			),
			Div(Class("hidden gap-6 md:flex"),
				Map(v.PrimaryNav, func(l presentation.NavLink) Node {
					return A(Class(helpers.Classes("font-medium", p.Body)), Href(l.Href), Text(l.Label))
				}),
			),
			Details(Class("relative md:hidden"),
				Summary(Class(helpers.Classes("list-none cursor-pointer", p.Heading)), Aria("label", "Menu"),
					helpers.RenderSVG(tmpls, "icons/menu", "h-6 w-6"),
				),
				Div(Class(helpers.Classes("absolute right-0 mt-2 flex w-48 flex-col gap-2 rounded-lg p-4 shadow-lg", p.Section)),
					Map(v.MobileNav, func(l presentation.NavLink) Node {
						return A(Class(p.Body), Href(l.Href), Text(l.Label))
					}),
				),
			),
		),
	)
}

func Hero(v *presentation.View, tmpls *templates.Tmpls) Node {
	p := v.Theme.Palette
	return Section(ID("hero"), Class("px-4 pt-16 pb-10 text-center lg:pt-24"),
		Span(Class(helpers.Classes("inline-block rounded-full px-4 py-1 text-sm font-medium", p.Badge)), Text(v.Hero.Badge)),
		H1(Class(helpers.Classes("mx-auto mt-6 max-w-3xl text-4xl font-extrabold lg:text-6xl", p.Heading)),
			Text(v.Hero.Title+" "),
			Span(Class(p.Highlight), Text(v.Hero.TitleHighlight)),
		),
		P(Class(helpers.Classes("mx-auto mt-6 max-w-2xl text-lg", p.Muted)), Text(v.Hero.Subtitle)),
		A(ID("connectBtn"), Href("#whatsapp-form"),
			Class(helpers.Classes("mt-8 inline-flex items-center gap-2 rounded-full px-8 py-3 font-semibold shadow-lg", p.Button)),
			helpers.RenderSVG(tmpls, "icons/whatsapp", "h-5 w-5"),
			Span(Text(v.CTA.ButtonText)),
		),
	)
}

func Features(v *presentation.View) Node {
	p := v.Theme.Palette
	return Div(ID("features"), Class("mx-auto flex max-w-4xl flex-wrap justify-center gap-4 px-4 pb-12"),
		Map(v.Features, func(f presentation.Feature) Node {
			return Div(Class(helpers.Classes("flex items-center gap-2 rounded-full px-4 py-2 shadow-sm", p.Section)),
				Span(Text(f.Icon)),
				Span(Class(helpers.Classes("text-sm font-medium", p.Body)), Text(f.Text)),
			)
		}),
	)
}

// CardSection renders the about and services blocks.
func CardSection(id, cardClass string, s presentation.Section, p presentation.Palette) Node {
	return Section(ID(id), Class(helpers.Classes("px-4 py-16", p.Section)),
		Div(Class("mx-auto max-w-6xl text-center"),
			H2(Class(helpers.Classes("text-3xl font-bold lg:text-4xl", p.Heading)), Text(s.Title)),
			P(Class(helpers.Classes("mx-auto mt-4 max-w-2xl", p.Muted)), Text(s.Subtitle)),
			Div(Class("mt-10 grid gap-6 sm:grid-cols-2 lg:grid-cols-"+strconv.Itoa(min(len(s.Cards), 4))),
				Map(s.Cards, func(c presentation.Card) Node {
					return Div(Class(helpers.Classes(cardClass, "rounded-2xl p-6 text-left shadow-md")),
						Span(Class("text-3xl"), Text(c.Icon)),
						H3(Class(helpers.Classes("mt-4 text-lg font-semibold", p.Heading)), Text(c.Title)),
						P(Class(helpers.Classes("mt-2 text-sm", p.Body)), Text(c.Description)),
					)
				}),
			),
		),
	)
}

func ContactHeading(v *presentation.View) Node {
	p := v.Theme.Palette
	return Div(ID("contact-heading"), Class("text-center"),
		H2(Class(helpers.Classes("text-3xl font-bold", p.Heading)),
			Text("Chat with "), Span(Class(p.Highlight), Text(v.BusinessName)),
		),
		P(Class(helpers.Classes("mt-3", p.Muted)), Text("Enter your WhatsApp number and we'll prepare your message.")),
	)
}

func CTA(v *presentation.View, tmpls *templates.Tmpls) Node {
	p := v.Theme.Palette
	return Section(ID("cta"), Class("px-4 py-16 text-center"),
		H2(Class(helpers.Classes("text-3xl font-bold", p.Heading)), Text(v.CTA.Title)),
		P(Class(helpers.Classes("mt-3", p.Muted)), Text(v.CTA.Subtitle)),
		A(Href("#whatsapp-form"),
			Class(helpers.Classes("mt-8 inline-flex items-center gap-2 rounded-full px-8 py-3 font-semibold", p.Button)),
			helpers.RenderSVG(tmpls, "icons/whatsapp", "whatsapp-icon h-5 w-5"),
			Span(Text(v.CTA.ButtonText)),
		),
	)
}

func Foot(v *presentation.View) Node {
	p := v.Theme.Palette
	return Footer(ID("site-footer"), Class(helpers.Classes("px-4 py-8 text-center text-sm", p.Muted)),
		P(Class(helpers.Classes("font-semibold", p.Heading)), Text(v.BusinessName)),
		P(Class("mt-1"), Text(v.Footer.Tagline)),
		P(Class("mt-4"), Text(v.Footer.Copyright)),
		Nav(Class("mt-4 flex justify-center gap-4"), Aria("label", "Footer"),
			Map(v.PrimaryNav, func(l presentation.NavLink) Node {
				return A(Href(l.Href), Text(l.Label))
			}),
		),
	)
}

// ThemeVars publishes the color scheme as CSS custom properties.
func ThemeVars(t presentation.Theme) Node {
	var b strings.Builder
	b.WriteString(":root{")
	for _, v := range t.Vars {
		b.WriteString(v.Name + ":" + v.Value + ";")
	}
	b.WriteString("}")
	return StyleEl(ID("theme-vars"), Raw(b.String()))
}

type ContactProps struct {
	State   formstate.State
	Input   presentation.PhoneInput
	Palette presentation.Palette
	// Value is the phone number as currently entered.
	Value string
	// Error is the inline validation message, empty when valid.
	Error string
	// ErrorID identifies this rendering of Error so that dismissing it
	// never removes a newer message. Defaults to "phone-error".
	ErrorID string
	// Invalid marks the input as rejected. It outlives Error, which is
	// dismissed after a few seconds.
	Invalid bool
	Link    string
	Tmpls   *templates.Tmpls
}

func errorID(id string) string {
	if id == "" {
		return "phone-error"
	}
	return id
}

// ContactPanel renders all three form states and shows the current one.
func ContactPanel(c ContactProps) Node {
	p := c.Palette
	border := "border-gray-200 focus-within:border-rose-500"
	if c.Invalid {
		border = "border-red-500"
	}

	return Div(ID("contact-panel"), Class("mx-auto mt-8 max-w-md"),
		Form(ID("whatsappForm"), Class(hiddenUnless(c.State == formstate.Idle, "")),
			Attr("data-on-submit__prevent", "@post('/contact')"),
			Div(Class("space-y-2"),
				Label(For("phoneNumber"), Class(helpers.Classes("block text-sm font-medium", p.Body)), Text("Your WhatsApp number")),
				Div(Class(helpers.Classes("flex items-center rounded-xl border-2 bg-white", border)),
					Span(Class("px-3 font-medium text-gray-500"), Attr("data-country-code"), Text(c.Input.CountryCode)),
					Input(ID("phoneNumber"), Name("phone"), Type("tel"), Attr("inputmode", "numeric"), AutoComplete("tel-national"),
						Class("w-full rounded-r-xl py-3 pr-3 text-gray-900 outline-none"),
						Placeholder(c.Input.Placeholder),
						Attr("maxlength", strconv.Itoa(c.Input.MaxLength)),
						Value(c.Value),
						Attr("data-bind", "phone"),
						Attr("data-on-input__debounce.250ms", "@post('/contact/format')"),
					),
				),
				If(c.Error != "",
					P(ID(errorID(c.ErrorID)), Class("error-message rounded-lg border border-red-200 bg-red-50 p-2 text-sm text-red-600"),
						Attr("role", "alert"), Text(c.Error),
					),
				),
			),
			Button(ID("submitButton"), Type("submit"),
				If(c.State == formstate.Pending, Disabled()),
				Class(helpers.Classes("mt-4 flex w-full items-center justify-center gap-2 rounded-xl py-3 font-semibold", p.Button)),
				helpers.RenderSVG(c.Tmpls, "icons/whatsapp", "h-5 w-5"),
				Span(Text("Get my WhatsApp link")),
			),
		),
		Div(ID("formLoading"), Class(hiddenUnless(c.State == formstate.Pending, "flex flex-col items-center gap-3 py-8")),
			Aria("live", "polite"),
			helpers.RenderSVG(c.Tmpls, "icons/spinner", "h-10 w-10 text-rose-500"),
			P(Class(p.Muted), Text("Preparing your WhatsApp link...")),
		),
		Div(ID("formSuccess"), Class(hiddenUnless(c.State == formstate.Result, "space-y-4 text-center")),
			Div(Class("flex items-center justify-center gap-2 text-green-600"),
				helpers.RenderSVG(c.Tmpls, "icons/check", "h-6 w-6"),
				P(Class("font-semibold"), Text("Your link is ready!")),
			),
			A(ID("whatsappLink"), Href(c.Link), Target("_blank"), Rel("noopener noreferrer"),
				Class(helpers.Classes("flex items-center justify-center gap-2 rounded-xl py-3 font-semibold", p.Button)),
				helpers.RenderSVG(c.Tmpls, "icons/whatsapp", "h-5 w-5"),
				Span(Text("Open WhatsApp")),
			),
			Div(Class("flex gap-2"),
				Input(ID("linkToCopy"), Type("text"), ReadOnly(), Value(c.Link),
					Class("w-full rounded-lg border border-gray-200 px-3 py-2 text-sm text-gray-700"),
				),
				Button(ID("copyButton"), Type("button"), Attr("onclick", "wigconnectCopy(this)"),
					Class("rounded-lg bg-gray-900 px-4 py-2 text-sm font-medium text-white"),
					Text("Copy"),
				),
			),
			Button(ID("resetForm"), Type("button"), Attr("data-on-click", "@post('/contact/reset')"),
				Class(helpers.Classes("text-sm underline", p.Muted)),
				Text("Use a different number"),
			),
		),
	)
}

func hiddenUnless(visible bool, classes string) string {
	if visible {
		return classes
	}
	return helpers.Classes(classes, "hidden")
}
