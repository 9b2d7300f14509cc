package pages

import (
	"github.com/wigconnect/wigconnect/internal/assets"
	"github.com/wigconnect/wigconnect/internal/presentation"
	"github.com/wigconnect/wigconnect/web/components"
	"github.com/wigconnect/wigconnect/web/layouts"
	"github.com/wigconnect/wigconnect/web/templates"
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type LandingProps struct {
	View    *presentation.View
	Contact components.ContactProps
	Assets  *assets.Assets
	Tmpls   *templates.Tmpls
}

func Landing(p LandingProps) Node {
	v := p.View
	s := Sections(v, p.Tmpls)
	return layouts.Default(v, p.Assets,
		s.Nav,
		Main(
			s.Hero,
			s.Features,
			s.About,
			s.Services,
			Section(ID("whatsapp-form"), Class("px-4 py-16"),
				Attr("data-signals", "{phone: ''}"),
				s.ContactHeading,
				components.ContactPanel(p.Contact),
			),
			s.CTA,
		),
		s.Footer,
	)
}

// LandingSections are the page parts bound from settings, each carrying
// its own id so it can be replaced in place.
type LandingSections struct {
	Nav            Node
	Hero           Node
	Features       Node
	About          Node
	Services       Node
	ContactHeading Node
	CTA            Node
	Footer         Node
	ThemeVars      Node
}

func Sections(v *presentation.View, tmpls *templates.Tmpls) LandingSections {
	return LandingSections{
		Nav:            components.Navbar(v, tmpls),
		Hero:           components.Hero(v, tmpls),
		Features:       components.Features(v),
		About:          components.CardSection("about", "about-card bg-white/70", v.About, v.Theme.Palette),
		Services:       components.CardSection("services", "service-item bg-white/70", v.Services, v.Theme.Palette),
		ContactHeading: components.ContactHeading(v),
		CTA:            components.CTA(v, tmpls),
		Footer:         components.Foot(v),
		ThemeVars:      components.ThemeVars(v.Theme),
	}
}

// All lists the sections in page order.
func (s LandingSections) All() []Node {
	return []Node{s.ThemeVars, s.Nav, s.Hero, s.Features, s.About, s.Services, s.ContactHeading, s.CTA, s.Footer}
}
