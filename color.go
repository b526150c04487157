package gradstop

import "math"

// Color represents a color as a CIE Lab triple.
// L is lightness in [0, 100]; A and B are the opponent axes, roughly
// [-128, 127]. Values are never validated here: colors arrive already
// converted from text by the parse package (or are constructed directly
// by the caller), and non-finite channels simply propagate through the
// arithmetic as non-finite distances.
type Color struct {
	L, A, B float64
}

// Lab creates a color from CIE Lab components.
func Lab(l, a, b float64) Color {
	return Color{L: l, A: a, B: b}
}

// Lerp performs channel-wise linear interpolation between two colors.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		L: c.L + (other.L-c.L)*t,
		A: c.A + (other.A-c.A)*t,
		B: c.B + (other.B-c.B)*t,
	}
}

// Chroma returns the cylindrical chroma component, sqrt(a^2 + b^2).
func (c Color) Chroma() float64 {
	return math.Hypot(c.A, c.B)
}

// HueDegrees returns the cylindrical hue angle in degrees, in [0, 360).
func (c Color) HueDegrees() float64 {
	h := math.Atan2(c.B, c.A) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return h
}

// Common colors (Lab coordinates of the sRGB primaries under D65).
var (
	Black   = Lab(0, 0, 0)
	White   = Lab(100, 0, 0)
	Red     = Lab(53.2408, 80.0925, 67.2032)
	Green   = Lab(87.7347, -86.1827, 83.1793)
	Blue    = Lab(32.2970, 79.1875, -107.8602)
	Yellow  = Lab(97.1393, -21.5537, 94.4780)
	Cyan    = Lab(91.1132, -48.0875, -14.1312)
	Magenta = Lab(60.3242, 98.2343, -60.8249)
)

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
