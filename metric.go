package gradstop

import "math"

// Metric selects one of the perceptual color-difference formulas.
//
// The set is closed and performance-sensitive: dispatch is a direct
// branch in Calculate, selected once per gradient request and reused for
// every distance evaluation within it. Adding a metric means adding a
// constant and a branch, not a new implementing type.
type Metric uint8

const (
	// DeltaE76 is the CIE76 formula: Euclidean distance in Lab.
	DeltaE76 Metric = iota
	// DeltaE2000 is a simplified CIEDE2000: lightness, chroma and hue
	// differences with the standard weighting functions, omitting the
	// rotation term that couples chroma and hue.
	DeltaE2000
	// EuclideanLab is plain Euclidean distance in Lab. Numerically
	// identical to DeltaE76; kept as a distinct name so callers can say
	// what they mean.
	EuclideanLab
	// CylindricalLCH measures differences in cylindrical LCH
	// coordinates with a circular hue term.
	CylindricalLCH
)

// String returns the metric's canonical name.
func (m Metric) String() string {
	switch m {
	case DeltaE76:
		return "delta-e-76"
	case DeltaE2000:
		return "delta-e-2000"
	case EuclideanLab:
		return "euclidean-lab"
	case CylindricalLCH:
		return "lch"
	}
	return "unknown"
}

// CIEDE2000 weighting constants. The rotation term is deliberately
// omitted; see Calculate.
const (
	de2000KL = 0.015
	de2000KC = 0.045
	de2000KH = 0.015
)

// hueWeight scales the circular hue difference in CylindricalLCH, since
// hue is measured in degrees while L and C are not.
const hueWeight = 0.1

// Calculate returns the perceptual distance between two colors under
// metric m. All variants are symmetric, non-negative, and zero for
// identical inputs. Non-finite channel values propagate to a non-finite
// result; no variant panics.
func (m Metric) Calculate(a, b Color) float64 {
	switch m {
	case DeltaE2000:
		return deltaE2000(a, b)
	case CylindricalLCH:
		return distanceLCH(a, b)
	default: // DeltaE76, EuclideanLab
		return euclideanLab(a, b)
	}
}

// euclideanLab is sqrt(dL^2 + da^2 + db^2).
func euclideanLab(a, b Color) float64 {
	dl := b.L - a.L
	da := b.A - a.A
	db := b.B - a.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

// deltaE2000 is a simplified CIEDE2000. It applies the standard SL/SC/SH
// weighting functions but omits the rotation (chroma-hue interaction)
// term, matching the reference output values this library has always
// produced. Upgrading to full CIEDE2000 would change every smart-mode
// gradient, so the simplification is load-bearing.
func deltaE2000(a, b Color) float64 {
	c1 := a.Chroma()
	c2 := b.Chroma()

	dl := b.L - a.L
	da := b.A - a.A
	db := b.B - a.B
	dc := c2 - c1

	// Hue difference via the chroma-plane identity
	// dH^2 = da^2 + db^2 - dC^2, guarded against negative rounding.
	dh2 := da*da + db*db - dc*dc
	if dh2 < 0 {
		dh2 = 0
	}
	dh := math.Sqrt(dh2)

	lMean := (a.L + b.L) / 2
	cMean := (c1 + c2) / 2

	lDev := lMean - 50
	sl := 1 + de2000KL*lDev*lDev/math.Sqrt(20+lDev*lDev)
	sc := 1 + de2000KC*cMean
	sh := 1 + de2000KH*cMean

	tl := dl / sl
	tc := dc / sc
	th := dh / sh
	return math.Sqrt(tl*tl + tc*tc + th*th)
}

// distanceLCH measures the difference in cylindrical coordinates:
// lightness and chroma as plain differences, hue as the shorter way
// around the circle, down-weighted because it is in degrees.
func distanceLCH(a, b Color) float64 {
	dl := b.L - a.L
	dc := b.Chroma() - a.Chroma()

	dh := math.Abs(a.HueDegrees() - b.HueDegrees())
	if dh > 180 {
		dh = 360 - dh
	}
	dh *= hueWeight

	return math.Sqrt(dl*dl + dc*dc + dh*dh)
}
