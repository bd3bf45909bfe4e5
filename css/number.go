package css

import (
	"math"
	"strconv"
	"strings"
)

// NumberWithUnit is a parsed number with its unit suffix kept verbatim.
// Normalization is done on demand by Norm, NormRGB and NormHue.
type NumberWithUnit struct {
	Value float64
	Unit  string
}

func (n NumberWithUnit) unit() string {
	return strings.ToLower(n.Unit)
}

// IsPercent returns true if the number was written with a percent sign.
func (n NumberWithUnit) IsPercent() bool {
	return n.Unit == "%"
}

// IsAngle returns true if the unit is empty or one of the angle units.
func (n NumberWithUnit) IsAngle() bool {
	switch n.unit() {
	case "", "deg", "rad", "turn", "grad":
		return true
	}
	return false
}

// Norm interprets percentages as fractions and angles as degrees. Unknown
// units pass the magnitude through.
func (n NumberWithUnit) Norm() float64 {
	switch n.unit() {
	case "%":
		return n.Value / 100
	case "rad":
		return n.Value * 180 / math.Pi
	case "turn":
		return n.Value * 360
	case "grad":
		return n.Value * 360 / 400
	}
	return n.Value
}

// NormRGB interprets the number as a color channel and returns it in [0,1].
// Bare numbers are 8-bit channel values.
func (n NumberWithUnit) NormRGB() float64 {
	if n.IsPercent() {
		return clamp01(n.Value / 100)
	}
	return clamp01(n.Value / 255)
}

// NormHue interprets the number as a hue and returns a fraction of the full
// circle in [0,1). Bare numbers are degrees. Percentages are clamped rather
// than wrapped.
func (n NumberWithUnit) NormHue() float64 {
	switch n.unit() {
	case "%":
		return clamp01(n.Value / 100)
	case "rad":
		return wrap01(n.Value / (2 * math.Pi))
	case "turn":
		return wrap01(n.Value)
	case "grad":
		return wrap01(n.Value / 400)
	}
	return wrap01(n.Value / 360)
}

func (n NumberWithUnit) String() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64) + n.Unit
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

func wrap01(v float64) float64 {
	v -= math.Floor(v)
	if v >= 1 {
		// -1e-17 lands here after floor
		v = 0
	}
	return v
}
