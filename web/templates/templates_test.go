package templates

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTemplates(t *testing.T) {
	fsys := fstest.MapFS{
		"templates/icons/check.html.tmpl": {Data: []byte(`<svg class="{{.}}"></svg>`)},
		"templates/icons/deep/x.html.tmpl": {Data: []byte(`<i>{{.}}</i>`)},
		"templates/readme.md":              {Data: []byte(`ignored`)},
	}

	tmpls, err := LoadTemplates(fsys, "templates/", ".html.tmpl")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"icons/check", "icons/deep/x"}, tmpls.Names())

	var buf bytes.Buffer
	require.NoError(t, tmpls.ExecuteTemplate(&buf, "icons/check", "h-4 w-4"))
	assert.Equal(t, `<svg class="h-4 w-4"></svg>`, buf.String())

	buf.Reset()
	require.NoError(t, tmpls.ExecuteTemplate(&buf, "icons/deep/x", `"><script>`))
	assert.NotContains(t, buf.String(), "<script>")

	assert.ErrorIs(t, tmpls.ExecuteTemplate(&buf, "icons/nope", nil), ErrTemplateNotFound)
}

func TestLoadTemplatesParseError(t *testing.T) {
	fsys := fstest.MapFS{"templates/icons/bad.html.tmpl": {Data: []byte(`{{ .Broken `)}}
	_, err := LoadTemplates(fsys, "templates/", ".html.tmpl")
	assert.Error(t, err)
}
