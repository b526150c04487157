package gradstop

import "sort"

// Importance-weighted stop placement.
//
// Where a timing curve is steep, a uniform spread of stops leaves visible
// color banding: the output value races between neighboring stops. The
// planner counters this by spending stops in proportion to how fast the
// curve's output changes, so steep regions get dense stops and plateaus
// get sparse ones.

// importanceSamples is the fixed number of uniform curve samples used to
// estimate the output-change distribution.
const importanceSamples = 10000

// ImportancePositions returns n fractional positions in [0,1] biased
// toward the regions where curve's output changes fastest.
//
// The curve's output is sampled at importanceSamples uniform inputs; the
// forward-difference magnitude at each sample is accumulated into a
// prefix sum, and each stop's position is found by binary-searching the
// prefix sum for its share of the total, with linear interpolation
// between samples for sub-sample precision.
//
// For n >= 2 the result is non-decreasing with first position 0.0 and
// last position 1.0. A flat curve (zero total change) falls back to
// uniform spacing.
func ImportancePositions(curve TimingCurve, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{0.5}
	case n == 2:
		return []float64{0.0, 1.0}
	}

	// Cumulative importance: prefix sums of |y(t+dt) - y(t)|. Only the
	// output-value change matters here, not x-progression.
	cumulative := make([]float64, importanceSamples)
	total := 0.0
	prev := curve.Evaluate(0)
	for i := 0; i < importanceSamples; i++ {
		t := float64(i+1) / importanceSamples
		y := curve.Evaluate(t)
		d := y - prev
		if d < 0 {
			d = -d
		}
		total += d
		cumulative[i] = total
		prev = y
	}

	positions := make([]float64, n)
	if total == 0 {
		// Flat curve: uniform spacing.
		for i := range positions {
			positions[i] = float64(i) / float64(n-1)
		}
		return positions
	}

	for i := 0; i < n; i++ {
		target := float64(i) / float64(n-1) * total

		// Smallest index whose cumulative value reaches the target.
		idx := sort.SearchFloat64s(cumulative, target)
		if idx >= importanceSamples {
			idx = importanceSamples - 1
		}

		// Interpolate between the predecessor sample and this one for
		// sub-sample precision.
		pos := float64(idx)
		lower := 0.0
		if idx > 0 {
			lower = cumulative[idx-1]
		}
		if span := cumulative[idx] - lower; span > 0 {
			pos += (target - lower) / span
		}
		positions[i] = clamp01(pos / importanceSamples)
	}

	positions[0] = 0.0
	positions[n-1] = 1.0
	return positions
}
