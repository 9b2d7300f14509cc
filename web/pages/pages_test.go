package pages

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wigconnect/wigconnect/internal/assets"
	"github.com/wigconnect/wigconnect/internal/formstate"
	"github.com/wigconnect/wigconnect/internal/presentation"
	"github.com/wigconnect/wigconnect/internal/settings"
	"github.com/wigconnect/wigconnect/web/components"
	"github.com/wigconnect/wigconnect/web/helpers"
)

func TestLandingSectionOrder(t *testing.T) {
	v := presentation.Skeleton()
	html, err := helpers.Render(Landing(LandingProps{
		View:    v,
		Contact: components.ContactProps{State: formstate.Idle, Input: v.PhoneInput, Palette: v.Theme.Palette},
		Assets:  assets.New(fstest.MapFS{}),
	}))
	require.NoError(t, err)

	last := -1
	for _, id := range []string{"site-nav", "hero", "features", "about", "services", "whatsapp-form", "contact-panel", "cta", "site-footer"} {
		i := strings.Index(html, `id="`+id+`"`)
		require.NotEqual(t, -1, i, id)
		assert.Greater(t, i, last, id)
		last = i
	}
	assert.Contains(t, html, `data-signals="{phone: &#39;&#39;}"`)
	assert.Contains(t, html, `id="formLoading" class="flex flex-col items-center gap-3 py-8 hidden"`)
	assert.Contains(t, html, "bg-gradient-to-br")
}

func TestSectionsCarryIds(t *testing.T) {
	doc := settings.Defaults()
	doc.Theme.Mode = settings.ThemeDark
	s := Sections(presentation.Build(doc), nil)

	nodes := s.All()
	require.Len(t, nodes, 9)
	for _, n := range nodes {
		html, err := helpers.Render(n)
		require.NoError(t, err)
		assert.Contains(t, html, ` id="`)
	}
}
