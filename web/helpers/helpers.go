package helpers

import (
	"bytes"
	"strings"

	"github.com/wigconnect/wigconnect/web/templates"
	. "maragu.dev/gomponents"
)

// RenderSVG will return an empty node when the template is not found,
// to avoid returning an error
func RenderSVG(tmpls *templates.Tmpls, name, classes string) Node {
	if tmpls == nil {
		return Raw("")
	}
	var buf bytes.Buffer
	if err := tmpls.ExecuteTemplate(&buf, name, classes); err != nil {
		return Raw("")
	}

	return Raw(buf.String())
}

// Classes joins non-empty class lists with single spaces.
func Classes(lists ...string) string {
	parts := make([]string, 0, len(lists))
	for _, l := range lists {
		if l = strings.TrimSpace(l); l != "" {
			parts = append(parts, l)
		}
	}
	return strings.Join(parts, " ")
}

// Render writes node to a string, for SSE fragments.
func Render(node Node) (string, error) {
	var buf strings.Builder
	if err := node.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
