package layouts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wigconnect/wigconnect/internal/presentation"
	"github.com/wigconnect/wigconnect/internal/settings"
)

func TestSyncScript(t *testing.T) {
	doc := settings.Defaults()
	doc.Theme.Mode = settings.ThemeDark
	doc.Meta = &settings.Meta{Title: `Crown "Wigs" </script>`, Description: "Luxury wigs"}
	v := presentation.Build(doc)

	script := SyncScript(v)
	assert.Contains(t, script, `document.title = "Crown \"Wigs\" \u003c/script\u003e";`)
	assert.Contains(t, script, `document.querySelector("meta[name=\"description\"]")?.setAttribute("content", "Luxury wigs");`)
	assert.Contains(t, script, `document.querySelector("meta[property=\"og:title\"]")?.setAttribute("content", "Crown \"Wigs\" \u003c/script\u003e");`)
	assert.Contains(t, script, `document.querySelector("meta[property=\"og:description\"]")`)
	assert.Contains(t, script, `document.body.className = "`+BodyClass(v.Theme)+`";`)
	assert.NotContains(t, script, "</script>")
}
