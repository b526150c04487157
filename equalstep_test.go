package gradstop

import (
	"math"
	"testing"
)

func TestEqualStepStops_EdgeCounts(t *testing.T) {
	curve := NewTimingCurve(0, 1)

	if got := EqualStepStops(Red, Blue, DeltaE2000, 0, curve); len(got) != 0 {
		t.Errorf("n=0: got %d stops, want none", len(got))
	}
	got := EqualStepStops(Red, Blue, DeltaE2000, 1, curve)
	if len(got) != 1 {
		t.Fatalf("n=1: got %d stops", len(got))
	}
	if got[0].GeometricT != 0.5 {
		t.Errorf("n=1: GeometricT = %v, want 0.5", got[0].GeometricT)
	}
}

func TestEqualStepStops_ExactEndpoints(t *testing.T) {
	curve := NewTimingCurve(0.42, 0.58)
	got := EqualStepStops(Red, Blue, DeltaE2000, 5, curve)

	if got[0].Color != Red {
		t.Errorf("first color = %+v, want exact start", got[0].Color)
	}
	if got[4].Color != Blue {
		t.Errorf("last color = %+v, want exact end", got[4].Color)
	}
	if got[0].GeometricT != 0 || got[0].EasedT != 0 {
		t.Errorf("first parameters = %+v, want zeros", got[0])
	}
	if got[4].GeometricT != 1 || got[4].EasedT != 1 {
		t.Errorf("last parameters = %+v, want ones", got[4])
	}
}

func TestEqualStepStops_UniformPerceptualSteps(t *testing.T) {
	// Red to blue, five stops: each interior stop's distance from the
	// start must land within 5% of its share of the total distance, and
	// the distances must increase monotonically.
	start := Lab(53.24, 80.09, 67.20)
	end := Lab(32.30, 79.20, -107.86)
	metric := DeltaE2000

	got := EqualStepStops(start, end, metric, 5, NewTimingCurve(0, 1))
	total := metric.Calculate(start, end)
	step := total / 4

	prev := 0.0
	for i := 1; i < 4; i++ {
		d := metric.Calculate(start, got[i].Color)
		if d <= prev {
			t.Errorf("stop %d: distance %v not greater than previous %v", i, d, prev)
		}
		want := step * float64(i)
		if math.Abs(d-want) > want*0.05 {
			t.Errorf("stop %d: distance %v, want %v +-5%%", i, d, want)
		}
		prev = d
	}
}

func TestEqualStepStops_IdenticalEndpoints(t *testing.T) {
	// Zero total distance: no target is ever reachable, so the search is
	// skipped and every stop carries the start color.
	c := Lab(40, 10, -30)
	got := EqualStepStops(c, c, DeltaE76, 5, NewTimingCurve(0.42, 0.58))

	if len(got) != 5 {
		t.Fatalf("got %d stops", len(got))
	}
	for i, s := range got {
		if s.Color != c {
			t.Errorf("stop %d color = %+v, want start color", i, s.Color)
		}
	}
}

func TestEqualStepStops_AllMetrics(t *testing.T) {
	// Distance from the start is not monotone along the interpolation
	// path for every metric (cylindrical chroma can dip through the
	// middle), so only the structural guarantees are common to all four.
	for _, m := range allMetrics {
		t.Run(m.String(), func(t *testing.T) {
			got := EqualStepStops(Red, Blue, m, 7, NewTimingCurve(0.42, 0.58))
			if len(got) != 7 {
				t.Fatalf("got %d stops", len(got))
			}
			if got[0].Color != Red || got[6].Color != Blue {
				t.Error("endpoint colors not exact")
			}
			for i, s := range got {
				if s.GeometricT < 0 || s.GeometricT > 1 || s.EasedT < 0 || s.EasedT > 1 {
					t.Errorf("stop %d: parameters out of range: %+v", i, s)
				}
				if d := m.Calculate(Red, s.Color); math.IsNaN(d) || d < 0 {
					t.Errorf("stop %d: bad distance %v", i, d)
				}
			}
		})
	}
}
