package sweepline

// Options configures the behavior of the public operations. The zero value
// is the spec's default policy: duplicate segments are accepted and
// reported via the intersection set, and a degenerate contour edge is
// treated as an automatic self-intersection rather than a validation error.
//
// RejectDuplicates      – if true, AnyIntersection/AllIntersections return
//
//	ErrDuplicateSegment instead of accepting two identical input segments.
//
// RejectDegenerateEdges – if true, ContourSelfIntersects returns
//
//	ErrDegenerateSegment for a zero-length edge instead of reporting the
//	contour as self-intersecting.
//
// EventCapacityHint     – pre-sizes the event queue and its fusion index;
//
//	purely a performance hint, never affects results.
type Options struct {
	RejectDuplicates      bool
	RejectDegenerateEdges bool
	EventCapacityHint     int
}

// Option is a functional option for configuring a call to one of the
// package's public operations.
type Option func(*Options)

// WithRejectDuplicates flips the default accept-duplicates policy (§7): two
// identical input segments cause ErrDuplicateSegment instead of being
// accepted and fused during the sweep.
func WithRejectDuplicates() Option {
	return func(o *Options) { o.RejectDuplicates = true }
}

// WithRejectDegenerateEdges makes ContourSelfIntersects treat a zero-length
// edge as a validation error (ErrDegenerateSegment) instead of the base
// spec's default of reporting it as a self-intersection.
func WithRejectDegenerateEdges() Option {
	return func(o *Options) { o.RejectDegenerateEdges = true }
}

// WithEventCapacityHint pre-sizes the event queue for n expected input
// segments, mirroring the teacher's pre-allocated event slices. Passing
// n <= 0 is a no-op.
func WithEventCapacityHint(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.EventCapacityHint = n
		}
	}
}

func buildOptions(opts []Option) *Options {
	o := &Options{}
	for _, apply := range opts {
		apply(o)
	}
	return o
}
