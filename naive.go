package sweepline

// naiveAllIntersections computes the same result as AllIntersections by
// brute force: every pair of segments is classified directly via ctx,
// with no sweep, no status tree, and no event queue. It exists purely as
// a cross-validation oracle for tests — an O(n^2) companion the package
// never calls from production code.
func naiveAllIntersections(segments []Segment, ctx Context) map[Point][]IndexPair {
	witnesses := make(map[Point]map[int]struct{})
	record := func(p Point, i, j int) {
		set, ok := witnesses[p]
		if !ok {
			set = make(map[int]struct{})
			witnesses[p] = set
		}
		set[i] = struct{}{}
		set[j] = struct{}{}
	}

	for i := range segments {
		for j := i + 1; j < len(segments); j++ {
			s, t := segments[i], segments[j]
			switch ctx.SegmentsRelation(s, t) {
			case Disjoint:
				continue
			case Overlap:
				lo, hi := naiveOverlapRange(s, t)
				record(lo, i, j)
				record(hi, i, j)
			default: // Touch, Cross
				if p, ok := ctx.SegmentsIntersection(s, t); ok {
					record(p, i, j)
					continue
				}
				for _, cand := range [...]Point{s.P1, s.P2, t.P1, t.P2} {
					if ctx.PointInSegment(cand, s) && ctx.PointInSegment(cand, t) {
						record(cand, i, j)
						break
					}
				}
			}
		}
	}

	out := make(map[Point][]IndexPair, len(witnesses))
	for p, set := range witnesses {
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
	return out
}

// naiveAnyIntersection reports whether any pair of distinct segments meets,
// stopping at the first such pair.
func naiveAnyIntersection(segments []Segment, ctx Context) bool {
	for i := range segments {
		for j := i + 1; j < len(segments); j++ {
			if ctx.SegmentsRelation(segments[i], segments[j]) != Disjoint {
				return true
			}
		}
	}
	return false
}

// naiveOverlapRange returns the two endpoints of the shared sub-segment of
// two collinear, overlapping segments s and t.
func naiveOverlapRange(s, t Segment) (lo, hi Point) {
	pts := []Point{s.P1, s.P2, t.P1, t.P2}
	sortPoints(pts)

	// The shared range of two overlapping collinear segments is the middle
	// two points once all four are sorted along the line.
	return pts[1], pts[2]
}

func sortPoints(pts []Point) {
	for i := 1; i < len(pts); i++ {
		v := pts[i]
		j := i - 1
		for j >= 0 && v.Less(pts[j]) {
			pts[j+1] = pts[j]
			j--
		}
		pts[j+1] = v
	}
}
