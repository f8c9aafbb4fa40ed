package sweepline

import "errors"

// Sentinel errors returned by the package's public operations. All
// validation happens before the sweep begins (§7); none of these is ever
// returned once the sweep has started, and the sweep itself has no
// recoverable failure mode.
var (
	// ErrTooFewSegments indicates fewer than two segments were passed to
	// AnyIntersection or AllIntersections.
	ErrTooFewSegments = errors.New("sweepline: at least two segments are required")

	// ErrTooFewVertices indicates a contour with fewer than three vertices
	// was passed to ContourSelfIntersects.
	ErrTooFewVertices = errors.New("sweepline: contour must have at least three vertices")

	// ErrDegenerateSegment indicates a segment (or, under
	// WithRejectDegenerateEdges, a contour edge) whose two endpoints
	// coincide.
	ErrDegenerateSegment = errors.New("sweepline: segment endpoints coincide")

	// ErrDuplicateSegment is returned only when WithRejectDuplicates is
	// active and two input segments are identical; the default policy
	// accepts duplicates and reports them via the intersection set.
	ErrDuplicateSegment = errors.New("sweepline: duplicate segment")

	// ErrNilContext indicates a nil Context was supplied.
	ErrNilContext = errors.New("sweepline: geometry context must not be nil")
)
