package settings

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyDocument = errors.New("settings: empty document")
	ErrNotObject     = errors.New("settings: document is not an object")
)

// Decode parses raw into a Document. Only syntax errors fail: a field
// holding a value of the wrong type is treated as absent, so its accessor
// falls back without affecting the rest of the document. Numeric strings
// are accepted where a number is expected, and numbers where a string is.
// Unknown fields are ignored.
func Decode(raw Raw) (Document, error) {
	if len(bytes.TrimSpace(raw.Data)) == 0 {
		return Document{}, ErrEmptyDocument
	}

	var tree any
	switch raw.Format {
	case FormatYAML:
		if err := yaml.Unmarshal(raw.Data, &tree); err != nil {
			return Document{}, fmt.Errorf("settings: decode yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(raw.Data, &tree); err != nil {
			return Document{}, fmt.Errorf("settings: decode json: %w", err)
		}
	}

	root, ok := asNode(tree)
	if !ok {
		return Document{}, ErrNotObject
	}
	return documentFrom(root), nil
}

// node is one decoded JSON or YAML object.
type node map[string]any

func asNode(v any) (node, bool) {
	switch m := v.(type) {
	case map[string]any:
		return node(m), true
	case map[any]any:
		// YAML mappings with non-string keys, e.g. shade numbers.
		n := make(node, len(m))
		for k, v := range m {
			n[fmt.Sprint(k)] = v
		}
		return n, true
	}
	return nil, false
}

func (n node) obj(key string) (node, bool) {
	return asNode(n[key])
}

func (n node) str(key string) string {
	switch v := n[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	}
	return ""
}

// num truncates fractional values. Non-numeric values read as zero.
func (n node) num(key string) int {
	switch v := n[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err == nil {
			return int(f)
		}
	}
	return 0
}

// list returns the objects of an array value. Entries that are not objects
// stay in place as empty nodes so positions are kept.
func (n node) list(key string) []node {
	items, ok := n[key].([]any)
	if !ok {
		return nil
	}
	out := make([]node, len(items))
	for i, item := range items {
		out[i], _ = asNode(item)
	}
	return out
}

func documentFrom(n node) Document {
	var d Document
	if b, ok := n.obj("business"); ok {
		d.Business = &Business{Name: b.str("name")}
	}
	if c, ok := n.obj("contact"); ok {
		d.Contact = &Contact{
			CountryCode:     c.str("countryCode"),
			WhatsAppMessage: c.str("whatsappMessage"),
			OwnerPhone:      c.str("ownerPhone"),
		}
	}
	if t, ok := n.obj("theme"); ok {
		d.Theme = &Theme{
			Mode:           ThemeMode(t.str("mode")),
			PrimaryColor:   t.str("primaryColor"),
			SecondaryColor: t.str("secondaryColor"),
			AccentColor:    t.str("accentColor"),
			ColorScheme:    colorSchemeFrom(t),
		}
	}
	if c, ok := n.obj("content"); ok {
		d.Content = contentFrom(c)
	}
	if nav, ok := n.obj("navigation"); ok {
		d.Navigation = &Navigation{}
		for _, l := range nav.list("links") {
			d.Navigation.Links = append(d.Navigation.Links, NavLink{Label: l.str("label"), Href: l.str("href")})
		}
	}
	if s, ok := n.obj("settings"); ok {
		d.Settings = &Behaviour{LoadingDelay: s.num("loadingDelay")}
		if pf, ok := s.obj("phoneFormat"); ok {
			d.Settings.PhoneFormat = &PhoneFormat{
				CountryCode: pf.str("countryCode"),
				Placeholder: pf.str("placeholder"),
				MinLength:   pf.num("minLength"),
				MaxLength:   pf.num("maxLength"),
			}
		}
	}
	if m, ok := n.obj("meta"); ok {
		d.Meta = &Meta{Title: m.str("title"), Description: m.str("description")}
	}
	return d
}

func colorSchemeFrom(t node) ColorScheme {
	scheme, ok := t.obj("colorScheme")
	if !ok {
		return nil
	}
	out := make(ColorScheme)
	for name := range scheme {
		shades, ok := scheme.obj(name)
		if !ok {
			continue
		}
		out[name] = make(map[string]string)
		for shade := range shades {
			if v := shades.str(shade); v != "" {
				out[name][shade] = v
			}
		}
	}
	return out
}

func contentFrom(c node) *Content {
	content := &Content{}
	if h, ok := c.obj("hero"); ok {
		content.Hero = &Hero{
			Badge:          h.str("badge"),
			Title:          h.str("title"),
			TitleHighlight: h.str("titleHighlight"),
			Subtitle:       h.str("subtitle"),
		}
	}
	for _, f := range c.list("features") {
		content.Features = append(content.Features, Feature{Icon: f.str("icon"), Text: f.str("text")})
	}
	if a, ok := c.obj("about"); ok {
		content.About = &About{Title: a.str("title"), Subtitle: a.str("subtitle"), Cards: cardsFrom(a.list("cards"))}
	}
	if s, ok := c.obj("services"); ok {
		content.Services = &Services{Title: s.str("title"), Subtitle: s.str("subtitle"), Items: cardsFrom(s.list("items"))}
	}
	if cta, ok := c.obj("cta"); ok {
		content.CTA = &CTA{Title: cta.str("title"), Subtitle: cta.str("subtitle"), ButtonText: cta.str("buttonText")}
	}
	if f, ok := c.obj("footer"); ok {
		content.Footer = &Footer{Copyright: f.str("copyright"), Tagline: f.str("tagline")}
	}
	return content
}

func cardsFrom(items []node) []Card {
	var cards []Card
	for _, c := range items {
		cards = append(cards, Card{Icon: c.str("icon"), Title: c.str("title"), Description: c.str("description")})
	}
	return cards
}
