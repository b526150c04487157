package gradstop

// Option configures a Sequence call.
// Use functional options to customize sequencing behavior.
//
// Example:
//
//	// Default coarse resolution (whole-percent stops)
//	stops := gradstop.Sequence(req)
//
//	// Dense near-continuous output merged at half-percent resolution
//	stops := gradstop.Sequence(req, gradstop.WithDenseMerge())
type Option func(*sequenceOptions)

// Resolutions used in practice: coarse for human-readable tables
// (2-50 stops), dense for near-continuous rendering (~400 stops merged
// down wherever consecutive offsets differ by less than half a percent).
const (
	CoarseResolution = 1.0
	DenseResolution  = 0.5
)

// sequenceOptions holds optional configuration for Sequence.
type sequenceOptions struct {
	resolution float64
}

// defaultSequenceOptions returns the default sequencing options.
func defaultSequenceOptions() sequenceOptions {
	return sequenceOptions{
		resolution: CoarseResolution,
	}
}

// WithResolution sets the minimum percent distance between consecutive
// stops; closer stops are merged. Non-positive values are ignored and
// the default resolution is kept. The first and last stop are never
// merged away regardless of resolution.
func WithResolution(r float64) Option {
	return func(o *sequenceOptions) {
		if r > 0 {
			o.resolution = r
		}
	}
}

// WithDenseMerge selects the half-percent resolution used for dense,
// near-continuous rendering output.
func WithDenseMerge() Option {
	return func(o *sequenceOptions) {
		o.resolution = DenseResolution
	}
}
