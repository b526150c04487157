package gradstop

// TimingCurve is a CSS-style cubic Bezier easing curve.
//
// The curve runs from (0,0) to (1,1) with control points (x1, 0) and
// (x2, 1). With x1 and x2 in [0,1] the x-coordinate is monotonically
// increasing in the curve parameter, so inverting x is well defined.
// Evaluation follows the kurbo Bernstein-form pattern, reduced to the
// two scalar polynomials this curve needs.

const (
	// invertIterations bounds the bisection when solving x(u) = targetX.
	invertIterations = 50
	// invertTolerance is the acceptable |x(u) - targetX| error.
	invertTolerance = 1e-7
)

// TimingCurve evaluates and inverts a cubic easing curve.
// The zero value is the ease-like curve with both control values at 0.
type TimingCurve struct {
	x1, x2 float64
}

// NewTimingCurve creates a timing curve from two control values.
// Out-of-range control values are clamped to [0,1], never rejected, so a
// slightly invalid curve can never fail a gradient request.
func NewTimingCurve(x1, x2 float64) TimingCurve {
	return TimingCurve{x1: clamp01(x1), x2: clamp01(x2)}
}

// xAt evaluates the curve's x-coordinate at parameter u.
// Bernstein form: 3(1-u)^2*u*x1 + 3(1-u)*u^2*x2 + u^3.
func (tc TimingCurve) xAt(u float64) float64 {
	mu := 1 - u
	return 3*mu*mu*u*tc.x1 + 3*mu*u*u*tc.x2 + u*u*u
}

// yAt evaluates the curve's y-coordinate at parameter u.
// The y control values are fixed at 0 and 1, which collapses the
// Bernstein form to u^2*(3 - 2u).
func (tc TimingCurve) yAt(u float64) float64 {
	return u * u * (3 - 2*u)
}

// InvertForX finds the curve parameter u such that the curve's
// x-coordinate at u equals targetX, by bisection over u in [0,1].
//
// The search runs for at most invertIterations steps or until the
// x-coordinate is within invertTolerance of targetX. Exhausting the
// budget is not an error: the best candidate found is returned, trading
// precision for guaranteed termination.
func (tc TimingCurve) InvertForX(targetX float64) float64 {
	if targetX <= 0 {
		return 0
	}
	if targetX >= 1 {
		return 1
	}

	lo, hi := 0.0, 1.0
	u := 0.5
	for i := 0; i < invertIterations; i++ {
		u = (lo + hi) / 2
		x := tc.xAt(u)
		diff := x - targetX
		if diff < invertTolerance && diff > -invertTolerance {
			break
		}
		if x < targetX {
			lo = u
		} else {
			hi = u
		}
	}
	return u
}

// Evaluate returns the curve's output (eased progress) for input t.
// Inputs at or beyond the endpoints are exact: t <= 0 yields 0 and
// t >= 1 yields 1. Interior values invert the x-coordinate first, so the
// result carries the bisection's precision (within ~1e-6 of the true
// curve value).
func (tc TimingCurve) Evaluate(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return tc.yAt(tc.InvertForX(t))
}
