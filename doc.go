// Package sweepline implements the Bentley-Ottmann plane-sweep algorithm for
// line-segment intersection detection.
//
// Given a finite set of closed line segments, the package answers three
// questions:
//
//   - AnyIntersection reports whether any two distinct segments meet.
//   - AllIntersections reports every point at which segments meet, together
//     with the indices of every input segment passing through that point.
//   - ContourSelfIntersects reports whether a closed polygonal contour
//     crosses, touches, or overlaps itself anywhere other than at the shared
//     vertex between two consecutive edges.
//
// Complexity:
//
//	– Time:  O((n + k) log n), where n is the number of segments and k is the
//	  number of intersection points discovered.
//	– Space: O(n + k).
//
// Point coordinates are float64. Orientation, segment-segment intersection,
// relation classification and point-in-segment tests are routed through an
// injected [Context], so callers can supply their own predicates over those
// coordinates; [FloatContext] is the default epsilon-based implementation.
// The status ordering does not go through the Context: it computes each
// active segment's y at the sweep abscissa directly from the coordinates.
//
// Example usage:
//
//	ctx := sweepline.NewFloatContext(0)
//	segs := []sweepline.Segment{
//	    {P1: sweepline.Point{X: 0, Y: 0}, P2: sweepline.Point{X: 1, Y: 1}},
//	    {P1: sweepline.Point{X: 0, Y: 1}, P2: sweepline.Point{X: 1, Y: 0}},
//	}
//	hit, err := sweepline.AnyIntersection(segs, ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(hit) // true
package sweepline
