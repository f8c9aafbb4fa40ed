package sweepline

import "fmt"

// Segments is a convenience wrapper around a slice of input segments,
// offering the validation the public operations perform internally.
type Segments []Segment

// Validate reports whether segs satisfies the preconditions of
// AnyIntersection and AllIntersections under opts: at least two segments,
// no degenerate (zero-length) segment, and — only under
// WithRejectDuplicates — no exact duplicate pair.
func (segs Segments) Validate(opts ...Option) error {
	o := buildOptions(opts)
	return validateSegments(segs, o)
}

func validateSegments(segs []Segment, o *Options) error {
	if len(segs) < 2 {
		return ErrTooFewSegments
	}
	for i, s := range segs {
		if s.degenerate() {
			return fmt.Errorf("sweepline: %w: segment %d", ErrDegenerateSegment, i)
		}
	}
	if o.RejectDuplicates {
		seen := make(map[Segment]int, len(segs))
		for i, s := range segs {
			c := s.canonical()
			if first, ok := seen[c]; ok {
				return fmt.Errorf("sweepline: %w: segment %d duplicates segment %d", ErrDuplicateSegment, i, first)
			}
			seen[c] = i
		}
	}
	return nil
}

// AnyIntersection reports whether any two distinct segments in segments
// meet, at any relation (touch, cross, or overlap). It stops the sweep at
// the first such pair found, so it is the cheapest of the three
// operations to call when only a yes/no answer is needed.
func AnyIntersection(segments []Segment, ctx Context, opts ...Option) (bool, error) {
	o := buildOptions(opts)
	if ctx == nil {
		return false, ErrNilContext
	}
	if err := validateSegments(segments, o); err != nil {
		return false, err
	}

	d := newDriver(ctx, o.EventCapacityHint, true)
	for i, s := range segments {
		d.addSegment(s, i)
	}
	d.run()
	return d.found, nil
}

// AllIntersections returns every intersection point among segments,
// together with the unordered pairs of input-segment indices witnessed at
// that point. A point involving three or more mutually intersecting
// segments is reported once, with every pairwise combination among its
// witnesses included.
func AllIntersections(segments []Segment, ctx Context, opts ...Option) (map[Point][]IndexPair, error) {
	o := buildOptions(opts)
	if ctx == nil {
		return nil, ErrNilContext
	}
	if err := validateSegments(segments, o); err != nil {
		return nil, err
	}

	d := newDriver(ctx, o.EventCapacityHint, false)
	for i, s := range segments {
		d.addSegment(s, i)
	}
	d.run()

	out := make(map[Point][]IndexPair, len(d.witnesses))
	for p, set := range d.witnesses {
		if len(set) < 2 {
			continue
		}
		indices := make([]int, 0, len(set))
		for idx := range set {
			indices = append(indices, idx)
		}
		sortInts(indices)
		pairs := make([]IndexPair, 0, len(indices)*(len(indices)-1)/2)
		for a := 0; a < len(indices); a++ {
			for b := a + 1; b < len(indices); b++ {
				pairs = append(pairs, newIndexPair(indices[a], indices[b]))
			}
		}
		out[p] = pairs
	}
	return out, nil
}

// ContourSelfIntersects reports whether the closed polygonal contour
// described by vertices (an implicit edge from each vertex to the next,
// and from the last back to the first) has any self-intersection. Edges
// that share an endpoint because they are adjacent in the contour — the
// common case at every vertex — are not by themselves a self-intersection;
// an adjacent pair is only flagged when it meets again away from that
// shared vertex, or when it overlaps along a sub-segment.
//
// Under WithRejectDegenerateEdges, a zero-length edge (two consecutive
// identical vertices) is reported as ErrDegenerateSegment; by default it is
// instead treated as an automatic self-intersection.
func ContourSelfIntersects(vertices []Point, ctx Context, opts ...Option) (bool, error) {
	o := buildOptions(opts)
	if ctx == nil {
		return false, ErrNilContext
	}
	if len(vertices) < 3 {
		return false, ErrTooFewVertices
	}

	n := len(vertices)
	edges := make([]Segment, n)
	for i := range vertices {
		edges[i] = Segment{P1: vertices[i], P2: vertices[(i+1)%n]}
	}
	for i, e := range edges {
		if e.degenerate() {
			if o.RejectDegenerateEdges {
				return false, fmt.Errorf("sweepline: %w: segment %d", ErrDegenerateSegment, i)
			}
			return true, nil
		}
	}

	d := newDriver(ctx, o.EventCapacityHint, false)
	for i, s := range edges {
		d.addSegment(s, i)
	}
	d.run()

	for p, set := range d.witnesses {
		for i := range set {
			for j := range set {
				if i == j {
					continue
				}
				if contourAdjacent(i, j, n) && isSharedVertex(p, i, j, n, vertices) {
					continue
				}
				return true, nil
			}
		}
	}
	return false, nil
}

// contourAdjacent reports whether edge indices i and j are consecutive
// around the n-vertex contour (including the wraparound pair (n-1, 0)).
func contourAdjacent(i, j, n int) bool {
	return (i+1)%n == j || (j+1)%n == i
}

// isSharedVertex reports whether point p is exactly the vertex edges i and
// j are expected to share by virtue of being adjacent, as opposed to some
// other meeting point between the same two edges.
func isSharedVertex(p Point, i, j, n int, vertices []Point) bool {
	var shared Point
	if (i+1)%n == j {
		shared = vertices[j]
	} else {
		shared = vertices[i]
	}
	return p == shared
}
