// Package gradstop computes the sequence of color stops that make up a
// gradient between two endpoint colors.
//
// # Overview
//
// gradstop places stops along a gradient and picks their colors so that the
// result looks smooth to a human eye. It combines a cubic timing curve
// (CSS-style easing), importance-weighted stop placement driven by the
// curve's derivative, and a binary-search procedure that spaces consecutive
// colors approximately equal steps apart under a perceptual color-difference
// metric (Delta E).
//
// # Quick Start
//
//	import "github.com/al-siv/gradstop"
//
//	stops := gradstop.Sequence(gradstop.Request{
//	    StartColor:   gradstop.Lab(53.24, 80.09, 67.20),   // red
//	    EndColor:     gradstop.Lab(32.30, 79.20, -107.86), // blue
//	    StartPercent: 0,
//	    EndPercent:   100,
//	    EaseIn:       0.42,
//	    EaseOut:      0.58,
//	    StopCount:    5,
//	    Mode:         gradstop.ModeSmart,
//	    Metric:       gradstop.DeltaE2000,
//	})
//
// # Architecture
//
// The library is organized into:
//   - Core: TimingCurve, Metric, the importance and equal-step planners,
//     and Sequence which orchestrates them.
//   - Collaborators: parse (text to Lab colors, named-color tables),
//     render (PNG/SVG output), emit (JSON and terminal tables).
//
// Every core operation is a pure function of its inputs: no I/O, no shared
// state, bounded iteration. Independent requests can run concurrently
// without locking.
//
// # Color Space
//
// Colors are CIE Lab triples (L in 0..100, a and b roughly -128..127).
// Parsing textual colors into Lab and converting back to sRGB for display
// are the parse and render packages' jobs; the core never touches text.
package gradstop

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"
)
