package presentation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/wigconnect/wigconnect/internal/contact"
	"github.com/wigconnect/wigconnect/internal/settings"
)

// ErrSlotMissing is returned by a strict Binder when document entries have
// no slot to bind to.
var ErrSlotMissing = errors.New("presentation: slot missing")

// Binder writes a settings document onto a View. Apply is idempotent: only
// non-empty document values overwrite slots, and sequences bind by index.
type Binder struct {
	// Strict makes Apply report entries dropped for lack of a slot. The
	// binding itself is identical either way.
	Strict bool
}

func (b Binder) Apply(doc settings.Document, v *View) error {
	if doc.Empty() {
		return nil
	}
	var missing []string

	v.BusinessName = doc.BusinessName()
	v.Theme = themeFor(doc)

	if m := doc.Meta; m != nil {
		setText(&v.Meta.Title, m.Title)
		setText(&v.Meta.OGTitle, m.Title)
		setText(&v.Meta.Description, m.Description)
	}

	if f := doc.PhoneFormat(); f != nil {
		v.PhoneInput.CountryCode = orDefault(f.CountryCode, settings.DefaultPhoneCountryCode)
		v.PhoneInput.Placeholder = orDefault(f.Placeholder, settings.DefaultPhonePlaceholder)
		v.PhoneInput.Digits = doc.PhoneDigits()
		v.PhoneInput.MaxLength = contact.InputMaxLength(v.PhoneInput.Digits)
	}

	if c := doc.Content; c != nil {
		if h := c.Hero; h != nil {
			setText(&v.Hero.Title, h.Title)
			setText(&v.Hero.TitleHighlight, h.TitleHighlight)
			setText(&v.Hero.Subtitle, h.Subtitle)
			setText(&v.Hero.Badge, h.Badge)
		}

		for i, f := range c.Features {
			if i >= len(v.Features) {
				missing = append(missing, fmt.Sprintf("features[%d]", i))
				continue
			}
			setText(&v.Features[i].Icon, f.Icon)
			setText(&v.Features[i].Text, f.Text)
		}

		if a := c.About; a != nil {
			missing = append(missing, bindSection(&v.About, "about.cards", a.Title, a.Subtitle, a.Cards)...)
		}
		if s := c.Services; s != nil {
			missing = append(missing, bindSection(&v.Services, "services.items", s.Title, s.Subtitle, s.Items)...)
		}

		if cta := c.CTA; cta != nil {
			setText(&v.CTA.Title, cta.Title)
			setText(&v.CTA.Subtitle, cta.Subtitle)
			setText(&v.CTA.ButtonText, cta.ButtonText)
		}

		if f := c.Footer; f != nil {
			setText(&v.Footer.Copyright, f.Copyright)
			setText(&v.Footer.Tagline, f.Tagline)
		}
	}

	if n := doc.Navigation; n != nil {
		// Both nav groups share the document's link list by index.
		for i, l := range n.Links {
			bound := false
			for _, group := range [][]NavLink{v.PrimaryNav, v.MobileNav} {
				if i < len(group) {
					setText(&group[i].Label, l.Label)
					setText(&group[i].Href, l.Href)
					bound = true
				}
			}
			if !bound {
				missing = append(missing, fmt.Sprintf("navigation.links[%d]", i))
			}
		}
	}

	if b.Strict && len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrSlotMissing, strings.Join(missing, ", "))
	}
	return nil
}

func bindSection(s *Section, name, title, subtitle string, cards []settings.Card) []string {
	setText(&s.Title, title)
	setText(&s.Subtitle, subtitle)

	var missing []string
	for i, c := range cards {
		if i >= len(s.Cards) {
			missing = append(missing, fmt.Sprintf("%s[%d]", name, i))
			continue
		}
		setText(&s.Cards[i].Icon, c.Icon)
		setText(&s.Cards[i].Title, c.Title)
		setText(&s.Cards[i].Description, c.Description)
	}
	return missing
}

func setText(slot *string, v string) {
	if v != "" {
		*slot = v
	}
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
