package presentation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wigconnect/wigconnect/internal/settings"
)

func fullDocument() settings.Document {
	return settings.Document{
		Business: &settings.Business{Name: "Lush Locks"},
		Theme: &settings.Theme{
			Mode:         settings.ThemeLight,
			PrimaryColor: "amber",
			ColorScheme: settings.ColorScheme{
				"rose":   {"500": "#ec4899", "600": "#db2777", "7x": "#000"},
				"purple": {"500": "#a855f7"},
				"bad;":   {"500": "#fff"},
				"pink":   {"500": "red; background: url(x)"},
			},
		},
		Content: &settings.Content{
			Hero: &settings.Hero{Title: "Hair that", TitleHighlight: "speaks", Badge: "New stock"},
			Features: []settings.Feature{
				{Icon: "1", Text: "one"}, {Icon: "2", Text: "two"}, {Icon: "3", Text: "three"},
				{Icon: "4", Text: "four"}, {Icon: "5", Text: "five"},
			},
			About: &settings.About{
				Title: "About us",
				Cards: []settings.Card{{Title: "Card A"}, {Title: "Card B", Description: "B desc"}},
			},
			Services: &settings.Services{Subtitle: "All of it", Items: []settings.Card{{Icon: "★", Title: "Bob"}}},
			CTA:      &settings.CTA{ButtonText: "Message us"},
			Footer:   &settings.Footer{Tagline: "Crowning glory"},
		},
		Navigation: &settings.Navigation{Links: []settings.NavLink{
			{Label: "Home", Href: "#home"},
			{Label: "Shop", Href: "/shop"},
		}},
		Settings: &settings.Behaviour{PhoneFormat: &settings.PhoneFormat{CountryCode: "+233", MaxLength: 9}},
		Meta:     &settings.Meta{Title: "Lush Locks", Description: "Wigs in Accra"},
	}
}

func TestApplyEmptyDocumentLeavesSkeleton(t *testing.T) {
	v := Skeleton()
	require.NoError(t, Binder{Strict: true}.Apply(settings.Document{}, v))
	assert.Equal(t, Skeleton(), v)
}

func TestApplyIsIdempotent(t *testing.T) {
	doc := fullDocument()

	once := Skeleton()
	_ = Binder{}.Apply(doc, once)

	twice := Skeleton()
	_ = Binder{}.Apply(doc, twice)
	_ = Binder{}.Apply(doc, twice)

	assert.Equal(t, once, twice)
}

func TestApplyPositionalBinding(t *testing.T) {
	skel := Skeleton()
	require.Len(t, skel.Features, 3)

	t.Run("more entries than slots", func(t *testing.T) {
		v := Skeleton()
		err := Binder{}.Apply(fullDocument(), v)
		require.NoError(t, err)
		require.Len(t, v.Features, 3)
		assert.Equal(t, []Feature{{"1", "one"}, {"2", "two"}, {"3", "three"}}, v.Features)
	})

	t.Run("fewer entries than slots", func(t *testing.T) {
		doc := settings.Document{Content: &settings.Content{Features: []settings.Feature{
			{Icon: "a", Text: "A"}, {Icon: "b", Text: "B"},
		}}}
		v := Skeleton()
		require.NoError(t, Binder{Strict: true}.Apply(doc, v))
		assert.Equal(t, Feature{"a", "A"}, v.Features[0])
		assert.Equal(t, Feature{"b", "B"}, v.Features[1])
		assert.Equal(t, skel.Features[2], v.Features[2])
	})

	t.Run("strict reports dropped entries", func(t *testing.T) {
		err := Binder{Strict: true}.Apply(fullDocument(), Skeleton())
		require.ErrorIs(t, err, ErrSlotMissing)
		assert.Contains(t, err.Error(), "features[3]")
		assert.Contains(t, err.Error(), "features[4]")
	})
}

func TestApplySections(t *testing.T) {
	skel := Skeleton()
	v := Skeleton()
	require.NoError(t, Binder{}.Apply(fullDocument(), v))

	assert.Equal(t, "Lush Locks", v.BusinessName)
	assert.Equal(t, Meta{Title: "Lush Locks", OGTitle: "Lush Locks", Description: "Wigs in Accra"}, v.Meta)

	assert.Equal(t, "Hair that", v.Hero.Title)
	assert.Equal(t, "speaks", v.Hero.TitleHighlight)
	assert.Equal(t, "New stock", v.Hero.Badge)
	assert.Equal(t, skel.Hero.Subtitle, v.Hero.Subtitle)

	assert.Equal(t, "About us", v.About.Title)
	assert.Equal(t, skel.About.Subtitle, v.About.Subtitle)
	assert.Equal(t, "Card A", v.About.Cards[0].Title)
	assert.Equal(t, skel.About.Cards[0].Description, v.About.Cards[0].Description)
	assert.Equal(t, Card{Icon: skel.About.Cards[1].Icon, Title: "Card B", Description: "B desc"}, v.About.Cards[1])
	assert.Equal(t, skel.About.Cards[2], v.About.Cards[2])

	assert.Equal(t, skel.Services.Title, v.Services.Title)
	assert.Equal(t, "All of it", v.Services.Subtitle)
	assert.Equal(t, "★", v.Services.Cards[0].Icon)
	assert.Equal(t, "Bob", v.Services.Cards[0].Title)

	assert.Equal(t, "Message us", v.CTA.ButtonText)
	assert.Equal(t, skel.CTA.Title, v.CTA.Title)
	assert.Equal(t, "Crowning glory", v.Footer.Tagline)
	assert.Equal(t, skel.Footer.Copyright, v.Footer.Copyright)

	assert.Equal(t, "+233", v.PhoneInput.CountryCode)
	assert.Equal(t, settings.DefaultPhonePlaceholder, v.PhoneInput.Placeholder)
	assert.Equal(t, 9, v.PhoneInput.Digits)
	assert.Equal(t, 12, v.PhoneInput.MaxLength)
}

func TestApplyNavigationBothGroups(t *testing.T) {
	skel := Skeleton()
	v := Skeleton()
	require.NoError(t, Binder{}.Apply(fullDocument(), v))

	for _, group := range [][]NavLink{v.PrimaryNav, v.MobileNav} {
		require.Len(t, group, 3)
		assert.Equal(t, NavLink{"Home", "#home"}, group[0])
		assert.Equal(t, NavLink{"Shop", "/shop"}, group[1])
		assert.Equal(t, skel.PrimaryNav[2], group[2])
	}

	// The two groups do not share backing storage.
	v.PrimaryNav[0].Label = "changed"
	assert.Equal(t, "Home", v.MobileNav[0].Label)
}

func TestApplyTheme(t *testing.T) {
	t.Run("light", func(t *testing.T) {
		v := Skeleton()
		require.NoError(t, Binder{}.Apply(fullDocument(), v))
		assert.False(t, v.Theme.Dark)
		assert.Equal(t, []string{"bg-gradient-to-br", "from-amber-50", "via-purple-50", "to-pink-50"}, v.Theme.Classes)
		assert.Equal(t, "text-amber-600", v.Theme.Palette.Highlight)
		assert.Equal(t, []CSSVar{
			{"--purple-500", "#a855f7"},
			{"--rose-500", "#ec4899"},
			{"--rose-600", "#db2777"},
		}, v.Theme.Vars)
	})

	t.Run("dark replaces light classes", func(t *testing.T) {
		v := Skeleton()
		require.NoError(t, Binder{}.Apply(fullDocument(), v))

		doc := fullDocument()
		doc.Theme = &settings.Theme{Mode: settings.ThemeDark}
		require.NoError(t, Binder{}.Apply(doc, v))
		assert.True(t, v.Theme.Dark)
		assert.Equal(t, []string{"dark", "bg-gray-900"}, v.Theme.Classes)
		assert.Equal(t, "text-white", v.Theme.Palette.Heading)
		assert.Empty(t, v.Theme.Vars)
	})

	t.Run("invalid color token", func(t *testing.T) {
		doc := settings.Document{Theme: &settings.Theme{PrimaryColor: `rose" onload="x`}}
		v := Skeleton()
		require.NoError(t, Binder{}.Apply(doc, v))
		assert.Equal(t, "from-rose-50", v.Theme.Classes[1])
	})
}

func TestBuild(t *testing.T) {
	v := Build(settings.Defaults())
	assert.Equal(t, "WigConnect", v.BusinessName)
	assert.Equal(t, "+234", v.PhoneInput.CountryCode)
	assert.Equal(t, 10, v.PhoneInput.Digits)
}
