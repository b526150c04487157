package gradstop

import (
	"log/slog"
	"math"
	"sort"
)

// Mode selects how the sequencer places stops and picks their colors.
type Mode uint8

const (
	// ModeSimple spreads stops uniformly and applies the timing curve
	// directly to linear channel interpolation. Cheap and predictable.
	ModeSimple Mode = iota
	// ModeSmart places stops with the importance planner and picks
	// colors with the equal-step planner, so perceived color change per
	// step is approximately uniform.
	ModeSmart
)

// String returns the mode's canonical name.
func (m Mode) String() string {
	if m == ModeSmart {
		return "smart"
	}
	return "simple"
}

// Request describes one gradient computation. A request is built once,
// passed to Sequence, and never mutated by the core; identical requests
// always yield identical stop lists.
//
// StartColor and EndColor arrive already converted from text by the
// parse package (or equivalent). EaseIn and EaseOut are the timing
// curve's control values and are clamped, not rejected, when outside
// [0,1].
type Request struct {
	StartColor   Color
	EndColor     Color
	StartPercent uint8
	EndPercent   uint8
	EaseIn       float64
	EaseOut      float64
	StopCount    int
	Mode         Mode
	Metric       Metric
}

// Stop is one entry of a computed gradient: an integer percent position
// within [StartPercent, EndPercent], the color there, and the geometric
// and eased parameters that produced it.
type Stop struct {
	Position   int
	Color      Color
	GeometricT float64
	EasedT     float64
}

// Sequence computes the ordered stop list for a gradient request.
//
// A zero StopCount yields an empty result, not an error. Stops come back
// sorted ascending by position with no duplicate positions; the first
// stop sits exactly at StartPercent and the last exactly at EndPercent,
// surviving deduplication unconditionally.
func Sequence(req Request, opts ...Option) []Stop {
	if req.StopCount <= 0 {
		return nil
	}

	o := defaultSequenceOptions()
	for _, opt := range opts {
		opt(&o)
	}

	curve := NewTimingCurve(req.EaseIn, req.EaseOut)
	if req.EaseIn != curve.x1 || req.EaseOut != curve.x2 {
		Logger().Debug("easing control values clamped",
			slog.Float64("easeIn", req.EaseIn),
			slog.Float64("easeOut", req.EaseOut))
	}

	startPct, endPct := int(req.StartPercent), int(req.EndPercent)
	if endPct < startPct {
		startPct, endPct = endPct, startPct
	}
	span := float64(endPct - startPct)

	var stops []Stop
	if req.Mode == ModeSmart {
		positions := ImportancePositions(curve, req.StopCount)
		planned := EqualStepStops(req.StartColor, req.EndColor, req.Metric, req.StopCount, curve)
		stops = make([]Stop, req.StopCount)
		for i, p := range positions {
			stops[i] = Stop{
				Position:   startPct + int(math.Round(p*span)),
				Color:      planned[i].Color,
				GeometricT: planned[i].GeometricT,
				EasedT:     planned[i].EasedT,
			}
		}
	} else {
		stops = make([]Stop, req.StopCount)
		for i := range stops {
			p := 0.5
			if req.StopCount > 1 {
				p = float64(i) / float64(req.StopCount-1)
			}
			eased := curve.Evaluate(p)
			stops[i] = Stop{
				Position:   startPct + int(math.Round(p*span)),
				Color:      req.StartColor.Lerp(req.EndColor, eased),
				GeometricT: p,
				EasedT:     eased,
			}
		}
	}

	// Boundary stops are exact regardless of rounding.
	if req.StopCount >= 2 {
		stops[0].Position = startPct
		stops[len(stops)-1].Position = endPct
	}

	return dedupeStops(stops, o.resolution)
}

// dedupeStops drops consecutive stops whose positions are closer than
// resolution percent, always preserving the first and last stop. When
// the last stop would collide with the previously kept one, the earlier
// stop gives way so the boundary position survives.
func dedupeStops(stops []Stop, resolution float64) []Stop {
	if len(stops) <= 2 {
		return stops
	}

	kept := stops[:1]
	for _, s := range stops[1 : len(stops)-1] {
		if float64(s.Position-kept[len(kept)-1].Position) >= resolution {
			kept = append(kept, s)
		}
	}

	last := stops[len(stops)-1]
	for len(kept) > 1 && kept[len(kept)-1].Position >= last.Position {
		kept = kept[:len(kept)-1]
	}
	if kept[0].Position == last.Position {
		// Degenerate zero-width range: one stop covers both boundaries.
		return kept[:1]
	}
	return append(kept, last)
}

// ColorAt resolves the interpolated color of a computed stop sequence at
// fractional offset t in [0,1] of its position range. Collaborators use
// this to paint between stops without recomputing the gradient.
func ColorAt(stops []Stop, t float64) Color {
	if len(stops) == 0 {
		return Color{}
	}
	if len(stops) == 1 {
		return stops[0].Color
	}

	first := stops[0].Position
	last := stops[len(stops)-1].Position
	pos := float64(first) + clamp01(t)*float64(last-first)

	idx := sort.Search(len(stops), func(i int) bool {
		return float64(stops[i].Position) >= pos
	})
	if idx == 0 {
		return stops[0].Color
	}
	if idx >= len(stops) {
		return stops[len(stops)-1].Color
	}

	s1, s2 := stops[idx-1], stops[idx]
	if s2.Position == s1.Position {
		return s1.Color
	}
	local := (pos - float64(s1.Position)) / float64(s2.Position-s1.Position)
	return s1.Color.Lerp(s2.Color, local)
}
