package gradstop

import "math"

// Equal perceptual step placement ("smart" color selection).
//
// Uniform timing steps rarely look uniform: perceptual distance per unit
// of eased progress varies along the interpolation path. This planner
// instead searches, per stop, for the geometric parameter whose
// interpolated color sits at the right perceptual distance from the
// start, so consecutive stops are approximately equal Delta E apart.

const (
	// equalStepIterations bounds the per-stop bisection.
	equalStepIterations = 50
	// equalStepTolerance is the acceptable |actual - target| distance
	// error before the search stops early.
	equalStepTolerance = 0.01
)

// PlannedStop is one stop produced by EqualStepStops: the chosen color
// together with the geometric parameter that produced it and the eased
// progress value at that parameter.
type PlannedStop struct {
	Color      Color
	GeometricT float64
	EasedT     float64
}

// EqualStepStops returns n stops between start and end whose perceptual
// distance from start, measured by metric, increases in approximately
// equal increments.
//
// The endpoints are placed exactly: stop 0 is start and stop n-1 is end,
// with no search involved, so no floating error accumulates at the
// boundaries. Each interior stop bisects a geometric parameter g in
// [0,1]: the candidate color is the linear interpolation at the eased
// value curve.Evaluate(g), and the interval narrows toward higher or
// lower g depending on whether the candidate's distance from start falls
// short of or overshoots the stop's target. Non-convergence within the
// iteration budget returns the last candidate — a slightly less precise
// but still valid stop.
//
// Identical endpoints (zero total distance) skip the search entirely and
// return the start color for every stop, since no target distance could
// ever be approached.
func EqualStepStops(start, end Color, metric Metric, n int, curve TimingCurve) []PlannedStop {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		eased := curve.Evaluate(0.5)
		return []PlannedStop{{
			Color:      start.Lerp(end, eased),
			GeometricT: 0.5,
			EasedT:     eased,
		}}
	}

	stops := make([]PlannedStop, n)
	stops[0] = PlannedStop{Color: start, GeometricT: 0, EasedT: 0}
	stops[n-1] = PlannedStop{Color: end, GeometricT: 1, EasedT: 1}

	total := metric.Calculate(start, end)
	if total == 0 {
		for i := 1; i < n-1; i++ {
			t := float64(i) / float64(n-1)
			stops[i] = PlannedStop{Color: start, GeometricT: t, EasedT: curve.Evaluate(t)}
		}
		return stops
	}

	stepDistance := total / float64(n-1)
	for i := 1; i < n-1; i++ {
		target := stepDistance * float64(i)

		lo, hi := 0.0, 1.0
		var (
			g         float64
			eased     float64
			candidate Color
		)
		for iter := 0; iter < equalStepIterations; iter++ {
			g = (lo + hi) / 2
			eased = curve.Evaluate(g)
			candidate = start.Lerp(end, eased)
			actual := metric.Calculate(start, candidate)

			if math.Abs(actual-target) < equalStepTolerance {
				break
			}
			if actual < target {
				lo = g
			} else {
				hi = g
			}
		}

		stops[i] = PlannedStop{Color: candidate, GeometricT: g, EasedT: eased}
	}
	return stops
}
