package palette

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/maruel/natural"

	"plotstyle/css"
)

// roles maps widget palette roles to fyne theme colors.
var roles = map[string]fyne.ThemeColorName{
	"window":          theme.ColorNameBackground,
	"windowtext":      theme.ColorNameForeground,
	"base":            theme.ColorNameInputBackground,
	"alternatebase":   theme.ColorNameHeaderBackground,
	"text":            theme.ColorNameForeground,
	"button":          theme.ColorNameButton,
	"buttontext":      theme.ColorNameForeground,
	"brighttext":      theme.ColorNameForegroundOnPrimary,
	"highlight":       theme.ColorNamePrimary,
	"highlightedtext": theme.ColorNameForegroundOnPrimary,
	"link":            theme.ColorNameHyperlink,
	"placeholdertext": theme.ColorNamePlaceHolder,
	"shadow":          theme.ColorNameShadow,
	"dark":            theme.ColorNameInputBorder,
	"mid":             theme.ColorNameDisabled,
	"light":           theme.ColorNameHover,
	"tooltipbase":     theme.ColorNameOverlayBackground,
	"tooltiptext":     theme.ColorNameForeground,
}

// Theme resolves palette roles against a fyne theme.
type Theme struct {
	theme   fyne.Theme
	variant fyne.ThemeVariant
}

// NewTheme creates palette backed by t. Variant selects light or dark colors
// (theme.VariantLight, theme.VariantDark).
func NewTheme(t fyne.Theme, variant fyne.ThemeVariant) *Theme {
	return &Theme{theme: t, variant: variant}
}

// Resolve implements css.Palette.
func (t *Theme) Resolve(name string) (css.Color, bool) {
	if t == nil || t.theme == nil {
		return css.Color{}, false
	}
	n, ok := roles[css.FoldName(name)]
	if !ok {
		return css.Color{}, false
	}
	c := t.theme.Color(n, t.variant)
	if c == nil {
		return css.Color{}, false
	}
	return css.FromColor(c), true
}

// Roles returns names Theme understands, in natural order.
func Roles() []string {
	names := make([]string, 0, len(roles))
	for name := range roles {
		names = append(names, name)
	}
	sort.Sort(natural.StringSlice(names))
	return names
}
