package css

import (
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// Palette resolves semantic color names (window, highlight, ...) supplied by
// the host environment. Names passed to Resolve are already folded with
// FoldName.
type Palette interface {
	Resolve(name string) (Color, bool)
}

// PaletteFunc adapts a plain function to Palette.
type PaletteFunc func(name string) (Color, bool)

// Resolve implements Palette.
func (f PaletteFunc) Resolve(name string) (Color, bool) {
	return f(name)
}

// Transparent is the color the "transparent" keyword resolves to.
var Transparent = Color{}

// FoldName normalizes keyword for comparison: trims it, collapses internal
// whitespace and case folds the result.
func FoldName(name string) string {
	return cases.Fold().String(strings.Join(strings.Fields(name), " "))
}

// LookupNamedColor returns one of the standard SVG/CSS named colors.
func LookupNamedColor(name string) (Color, bool) {
	c, ok := colornames.Map[FoldName(name)]
	if !ok {
		return Color{}, false
	}
	return FromNRGBA(color.NRGBA(c)), true
}

// resolveName applies the name resolution order: standard names, the
// transparent keyword, host palette. Folded name is expected.
func resolveName(name string, palette Palette) (Color, bool) {
	if c, ok := colornames.Map[name]; ok {
		return FromNRGBA(color.NRGBA(c)), true
	}
	if name == "transparent" {
		return Transparent, true
	}
	if palette != nil {
		if c, ok := palette.Resolve(name); ok {
			return c, true
		}
	}
	return Color{}, false
}

func isGreyName(name string) bool {
	return name == "grey" || name == "gray"
}

func greyLevel(level, alpha float64) Color {
	return Color{R: level, G: level, B: level, A: alpha}
}
