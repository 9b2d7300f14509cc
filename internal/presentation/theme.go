package presentation

import (
	"regexp"
	"sort"

	"github.com/wigconnect/wigconnect/internal/settings"
)

// Theme is the complete set of theme-controlled presentation. It is always
// recomputed as a whole from the document, never patched.
type Theme struct {
	Dark bool
	// Classes go on <body>.
	Classes []string
	Palette Palette
	// Vars are CSS custom properties from the document's color scheme,
	// sorted by name.
	Vars []CSSVar
}

type Palette struct {
	Heading   string
	Body      string
	Muted     string
	Section   string
	Highlight string
	Button    string
	Badge     string
}

type CSSVar struct {
	Name  string
	Value string
}

var (
	colorTokenRe = regexp.MustCompile(`^[a-z]+$`)
	shadeRe      = regexp.MustCompile(`^[0-9]{2,3}$`)
	hexRe        = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
)

func themeFor(doc settings.Document) Theme {
	primary, secondary, accent := doc.Colors()
	primary = colorToken(primary, settings.DefaultPrimaryColor)
	secondary = colorToken(secondary, settings.DefaultSecondaryColor)
	accent = colorToken(accent, settings.DefaultAccentColor)

	var t Theme
	if doc.ThemeMode() == settings.ThemeDark {
		t = darkTheme(primary)
	} else {
		t = lightTheme(primary, secondary, accent)
	}
	if doc.Theme != nil {
		t.Vars = cssVars(doc.Theme.ColorScheme)
	}
	return t
}

// colorToken guards against anything that would not form a valid utility
// class name.
func colorToken(v, fallback string) string {
	if colorTokenRe.MatchString(v) {
		return v
	}
	return fallback
}

func lightTheme(primary, secondary, accent string) Theme {
	return Theme{
		Classes: []string{
			"bg-gradient-to-br",
			"from-" + primary + "-50",
			"via-" + secondary + "-50",
			"to-" + accent + "-50",
		},
		Palette: Palette{
			Heading:   "text-gray-900",
			Body:      "text-gray-700",
			Muted:     "text-gray-600",
			Section:   "bg-white/50",
			Highlight: "text-" + primary + "-600",
			Button:    "bg-" + primary + "-500 hover:bg-" + primary + "-600 text-white",
			Badge:     "bg-" + primary + "-100 text-" + primary + "-700",
		},
	}
}

func darkTheme(primary string) Theme {
	return Theme{
		Dark:    true,
		Classes: []string{"dark", "bg-gray-900"},
		Palette: Palette{
			Heading:   "text-white",
			Body:      "text-gray-300",
			Muted:     "text-gray-400",
			Section:   "bg-gray-800/50",
			Highlight: "text-" + primary + "-400",
			Button:    "bg-" + primary + "-500 hover:bg-" + primary + "-400 text-white",
			Badge:     "bg-gray-800 text-" + primary + "-300",
		},
	}
}

func cssVars(scheme settings.ColorScheme) []CSSVar {
	var vars []CSSVar
	for color, shades := range scheme {
		if !colorTokenRe.MatchString(color) {
			continue
		}
		for shade, value := range shades {
			if !shadeRe.MatchString(shade) || !hexRe.MatchString(value) {
				continue
			}
			vars = append(vars, CSSVar{Name: "--" + color + "-" + shade, Value: value})
		}
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i].Name < vars[j].Name })
	return vars
}
