package css

import (
	"fmt"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a non-premultiplied RGBA color with channels in [0,1].
type Color struct {
	R, G, B, A float64
}

const colorEpsilon = 1e-9

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	alpha := clamp01(c.A)
	r = uint32(clamp01(c.R)*alpha*0xffff + 0.5)
	g = uint32(clamp01(c.G)*alpha*0xffff + 0.5)
	b = uint32(clamp01(c.B)*alpha*0xffff + 0.5)
	a = uint32(alpha*0xffff + 0.5)
	return
}

// NRGBA returns color with 8-bit channels.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: to8bit(c.R), G: to8bit(c.G), B: to8bit(c.B), A: to8bit(c.A)}
}

// WithAlpha returns copy of the color with alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = clamp01(a)
	return c
}

// Equal compares colors channel by channel with a small tolerance.
func (c Color) Equal(o Color) bool {
	return math.Abs(c.R-o.R) < colorEpsilon &&
		math.Abs(c.G-o.G) < colorEpsilon &&
		math.Abs(c.B-o.B) < colorEpsilon &&
		math.Abs(c.A-o.A) < colorEpsilon
}

// Hex returns #rrggbbaa representation, used for diagnostics.
func (c Color) Hex() string {
	return fmt.Sprintf("%s%02x", colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex(), to8bit(c.A))
}

func (c Color) String() string {
	return fmt.Sprintf("rgba(%g, %g, %g, %g)", c.R, c.G, c.B, c.A)
}

// FromNRGBA converts 8-bit color to Color.
func FromNRGBA(c color.NRGBA) Color {
	return Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}

// FromColor converts any color.Color to Color.
func FromColor(c color.Color) Color {
	if cc, ok := c.(Color); ok {
		return cc
	}
	return FromNRGBA(color.NRGBAModel.Convert(c).(color.NRGBA))
}

func fromColorful(c colorful.Color, alpha float64) Color {
	c = c.Clamped()
	return Color{R: c.R, G: c.G, B: c.B, A: clamp01(alpha)}
}

func to8bit(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}
