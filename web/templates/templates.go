package templates

import (
	"errors"
	"html/template"
	"io"
	"io/fs"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

var ErrTemplateNotFound = errors.New("templates: template not found")

// Tmpls holds small html/template partials, currently the inline SVG icons.
// Each icon template receives its CSS classes as the dot value.
type Tmpls struct {
	tmpls *template.Template
}

// LoadTemplates will load all templates from the passed fsys that have the
// extension specified. The returned templates' names will be the full filepath
// minus any specified prefix and the extension will be trimmed off.
func LoadTemplates(fsys fs.FS, prefix, extension string) (*Tmpls, error) {
	tmpl := template.New("#root#")

	err := doublestar.GlobWalk(fsys, "**/*"+extension, func(fullPath string, d fs.DirEntry) error {
		if d.IsDir() {
			return nil
		}

		b, err := fs.ReadFile(fsys, fullPath)
		if err != nil {
			return err
		}
		trimmedName := strings.TrimSuffix(strings.TrimPrefix(fullPath, prefix), extension)

		_, err = tmpl.New(trimmedName).Parse(string(b))
		return err
	})
	if err != nil {
		return nil, err
	}

	return &Tmpls{tmpls: tmpl}, nil
}

func (t *Tmpls) ExecuteTemplate(wr io.Writer, name string, data any) error {
	tmpl := t.tmpls.Lookup(name)
	if tmpl == nil {
		return ErrTemplateNotFound
	}
	return tmpl.Execute(wr, data)
}

// Names lists the loaded templates.
func (t *Tmpls) Names() []string {
	var names []string
	for _, tmpl := range t.tmpls.Templates() {
		if tmpl.Name() != "#root#" {
			names = append(names, tmpl.Name())
		}
	}
	return names
}
