package css

import (
	"image/color"

	"github.com/srwiley/rasterx"
)

// Point is a position in unit square coordinates, y axis pointing down.
type Point struct {
	X, Y float64
}

// GradientStop is a single color sample along gradient line.
type GradientStop struct {
	Position float64 // In [0,1], non-decreasing along the stop list
	Color    Color
}

// LinearGradient is a gradient between two points of the unit square of the
// object being filled.
type LinearGradient struct {
	Start, End Point
	Stops      []GradientStop
}

// Gradient is the result of parsing a gradient expression. When the
// expression named one of the predefined gradients Preset holds its name and
// Linear its definition.
type Gradient struct {
	Preset string
	Linear LinearGradient
}

// IsPreset returns true if gradient came from predefined table.
func (g Gradient) IsPreset() bool {
	return g.Preset != ""
}

// Rasterx converts gradient to rasterx representation in object bounding
// box units, ready to be handed to a rasterx based renderer.
func (g LinearGradient) Rasterx() rasterx.Gradient {
	grad := rasterx.Gradient{
		Points: [5]float64{g.Start.X, g.Start.Y, g.End.X, g.End.Y, 0},
		Matrix: rasterx.Identity,
		Spread: rasterx.PadSpread,
		Units:  rasterx.ObjectBoundingBox,
		Stops:  make([]rasterx.GradStop, 0, len(g.Stops)),
	}
	grad.Bounds.W, grad.Bounds.H = 1, 1
	for _, s := range g.Stops {
		c := s.Color.NRGBA()
		grad.Stops = append(grad.Stops, rasterx.GradStop{
			StopColor: color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff},
			Offset:    s.Position,
			Opacity:   s.Color.A,
		})
	}
	return grad
}

// directionKeywords maps "to" keywords on the axis they set and on end
// coordinate along that axis.
var directionKeywords = map[string]struct {
	horizontal bool
	end        float64
}{
	"left":   {horizontal: true, end: 0},
	"right":  {horizontal: true, end: 1},
	"top":    {horizontal: false, end: 0},
	"bottom": {horizontal: false, end: 1},
}

// defaultDirection is "to bottom".
var defaultDirection = [2]Point{{X: 0.5, Y: 0}, {X: 0.5, Y: 1}}
