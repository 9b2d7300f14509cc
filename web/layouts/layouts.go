package layouts

import (
	"encoding/json"
	"strings"

	"github.com/wigconnect/wigconnect/internal/assets"
	"github.com/wigconnect/wigconnect/internal/presentation"
	"github.com/wigconnect/wigconnect/web/components"
	"github.com/wigconnect/wigconnect/web/helpers"
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

const (
	tailwindCDN = "https://cdn.tailwindcss.com"
	datastarCDN = "https://cdn.jsdelivr.net/gh/starfederation/datastar@v0.21.4/bundles/datastar.js"
)

// BodyBase is the part of the body class list that the theme never
// touches.
const BodyBase = "min-h-screen font-sans antialiased"

// BodyClass is the full body class list for theme t.
func BodyClass(t presentation.Theme) string {
	return helpers.Classes(BodyBase, strings.Join(t.Classes, " "))
}

// SyncScript updates the parts of the document outside the bound sections,
// the head metadata and body classes, to match v.
func SyncScript(v *presentation.View) string {
	var b strings.Builder
	b.WriteString("document.title = " + jsString(v.Meta.Title) + ";")
	for _, m := range []struct{ selector, content string }{
		{`meta[name="description"]`, v.Meta.Description},
		{`meta[property="og:title"]`, v.Meta.OGTitle},
		{`meta[property="og:description"]`, v.Meta.Description},
	} {
		b.WriteString("document.querySelector(" + jsString(m.selector) + ")?.setAttribute(\"content\", " + jsString(m.content) + ");")
	}
	b.WriteString("document.body.className = " + jsString(BodyClass(v.Theme)) + ";")
	return b.String()
}

func jsString(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		panic(err)
	}
	return string(b)
}

func Default(v *presentation.View, a *assets.Assets, children ...Node) Node {
	return HTML5(HTML5Props{
		Title:       v.Meta.Title,
		Description: v.Meta.Description,
		Language:    "en",
		Head: []Node{
			Meta(Attr("property", "og:title"), Content(v.Meta.OGTitle)),
			Meta(Attr("property", "og:description"), Content(v.Meta.Description)),
			Script(Src(tailwindCDN)),
			Script(Type("module"), Src(datastarCDN)),
			Link(Rel("stylesheet"), Href(a.HashedPath("/assets/styles.css"))),
			Script(Src(a.HashedPath("/assets/copy.js")), Defer()),
			components.ThemeVars(v.Theme),
		},
		Body: []Node{ID("home"), Class(BodyClass(v.Theme)),
			// Keeps bound sections in step with the settings document.
			Div(ID("settings-stream"), Attr("data-on-load", "@get('/updates')")),
			Group(children),
		},
	})
}
