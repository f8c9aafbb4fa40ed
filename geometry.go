package sweepline

import "math"

// Orientation is the sign of the cross product (b-a) x (c-a) for three
// points a, b, c: it answers whether c lies to the left of, to the right
// of, or on the directed line through a and b.
type Orientation int8

const (
	// Collinear indicates a, b, c lie on a single straight line.
	Collinear Orientation = iota
	// Left indicates c lies to the left of the ray a->b (counter-clockwise turn).
	Left
	// Right indicates c lies to the right of the ray a->b (clockwise turn).
	Right
)

// Relation classifies how two segments meet.
type Relation int8

const (
	// Disjoint indicates the segments share no point.
	Disjoint Relation = iota
	// Touch indicates the segments meet at exactly one point that is an
	// endpoint of at least one of them.
	Touch
	// Cross indicates the segments meet at exactly one point that is
	// interior to both.
	Cross
	// Overlap indicates the segments are collinear and share a sub-segment
	// of positive length.
	Overlap
)

// Point is an ordered pair of coordinates in the plane. Equality is exact;
// callers needing approximate equality should round coordinates before
// constructing a Point.
type Point struct {
	X, Y float64
}

// Less reports whether p is lexicographically smaller than q: smaller X
// first, ties broken by Y. This is the canonical left-endpoint ordering
// used throughout the sweep.
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// Segment is an unordered pair of distinct endpoints. Segment identity for
// sweep purposes is the index of the segment in the caller's input slice,
// not any field of this struct.
type Segment struct {
	P1, P2 Point
}

// degenerate reports whether the segment's endpoints coincide.
func (s Segment) degenerate() bool {
	return s.P1 == s.P2
}

// canonical returns the segment with P1 set to the lexicographically
// smaller endpoint.
func (s Segment) canonical() Segment {
	if s.P2.Less(s.P1) {
		return Segment{P1: s.P2, P2: s.P1}
	}
	return s
}

// IndexPair is an unordered pair of input-segment indices, always stored
// with I < J so that equal pairs compare equal regardless of discovery
// order.
type IndexPair struct {
	I, J int
}

func newIndexPair(i, j int) IndexPair {
	if i > j {
		i, j = j, i
	}
	return IndexPair{I: i, J: j}
}

// Context supplies the geometric primitives the sweep engine needs but does
// not implement itself: orientation, segment-segment intersection,
// relation classification, and point-in-segment containment. Implementations
// MUST be side-effect free. Points carry float64 coordinates; besides using
// them for equality and ordering, the engine reads them directly only in the
// status comparator, which interpolates each active segment's y at the
// sweep abscissa.
type Context interface {
	// Orientation returns the turn direction of (a, b, c).
	Orientation(a, b, c Point) Orientation
	// SegmentsIntersection returns the single intersection point of s and
	// t, and false if no single point exists (disjoint, or collinear
	// overlap/identity). It may also return false for collinear segments
	// meeting end to end; the engine then finds that point among the
	// endpoints.
	SegmentsIntersection(s, t Segment) (Point, bool)
	// SegmentsRelation classifies how s and t meet.
	SegmentsRelation(s, t Segment) Relation
	// PointInSegment reports whether p lies on the closed segment s.
	PointInSegment(p Point, s Segment) bool
	// IsEndpoint reports whether p coincides with one of s's two endpoints,
	// as opposed to lying strictly in its interior.
	IsEndpoint(p Point, s Segment) bool
}

// FloatContext is the default [Context] implementation, backed by float64
// arithmetic with an epsilon tolerance for equality comparisons. It is
// adequate for most practical inputs; callers requiring exact handling of
// adversarial degeneracies should supply a rational-arithmetic Context
// instead, per the package's injected-geometry-context design.
type FloatContext struct {
	// Epsilon is the tolerance used for all near-equality comparisons.
	Epsilon float64
}

// NewFloatContext returns a FloatContext using eps as its tolerance. Passing
// eps <= 0 selects the default tolerance of 1e-9.
func NewFloatContext(eps float64) *FloatContext {
	if eps <= 0 {
		eps = 1e-9
	}
	return &FloatContext{Epsilon: eps}
}

func (c *FloatContext) eq(a, b float64) bool {
	return math.Abs(a-b) <= c.Epsilon
}

func (c *FloatContext) inEpsilon(v float64) bool {
	return math.Abs(v) <= c.Epsilon
}

// Orientation computes the sign of (b-a) x (c-a).
func (c *FloatContext) Orientation(a, b, p Point) Orientation {
	cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
	if c.inEpsilon(cross) {
		return Collinear
	}
	if cross > 0 {
		return Left
	}
	return Right
}

// PointInSegment reports whether p lies on the closed segment s, within
// the context's tolerance.
func (c *FloatContext) PointInSegment(p Point, s Segment) bool {
	if c.Orientation(s.P1, s.P2, p) != Collinear {
		return false
	}
	minX, maxX := math.Min(s.P1.X, s.P2.X), math.Max(s.P1.X, s.P2.X)
	minY, maxY := math.Min(s.P1.Y, s.P2.Y), math.Max(s.P1.Y, s.P2.Y)
	return p.X >= minX-c.Epsilon && p.X <= maxX+c.Epsilon &&
		p.Y >= minY-c.Epsilon && p.Y <= maxY+c.Epsilon
}

// SegmentsIntersection returns the single point at which s and t meet, if
// that intersection is unique (a proper crossing or a touch). Collinear
// segments — whether disjoint, touching at one point, or overlapping —
// never report a single point here; callers distinguish those cases with
// SegmentsRelation.
func (c *FloatContext) SegmentsIntersection(s, t Segment) (Point, bool) {
	p1, p2 := s.P1, s.P2
	p3, p4 := t.P1, t.P2

	r := Point{X: p2.X - p1.X, Y: p2.Y - p1.Y}
	u := Point{X: p4.X - p3.X, Y: p4.Y - p3.Y}

	rxu := r.X*u.Y - r.Y*u.X
	if c.inEpsilon(rxu) {
		return Point{}, false
	}

	qp := Point{X: p3.X - p1.X, Y: p3.Y - p1.Y}
	t1 := (qp.X*u.Y - qp.Y*u.X) / rxu
	t2 := (qp.X*r.Y - qp.Y*r.X) / rxu

	if t1 < -c.Epsilon || t1 > 1+c.Epsilon || t2 < -c.Epsilon || t2 > 1+c.Epsilon {
		return Point{}, false
	}
	return Point{X: p1.X + t1*r.X, Y: p1.Y + t1*r.Y}, true
}

// SegmentsRelation classifies how s and t meet: disjoint, a touch at an
// endpoint of at least one, a proper interior crossing, or a collinear
// overlap on a sub-segment of positive length.
func (c *FloatContext) SegmentsRelation(s, t Segment) Relation {
	o1 := c.Orientation(s.P1, s.P2, t.P1)
	o2 := c.Orientation(s.P1, s.P2, t.P2)
	o3 := c.Orientation(t.P1, t.P2, s.P1)
	o4 := c.Orientation(t.P1, t.P2, s.P2)

	if o1 == Collinear && o2 == Collinear && o3 == Collinear && o4 == Collinear {
		return c.collinearRelation(s, t)
	}

	p, ok := c.SegmentsIntersection(s, t)
	if !ok {
		return Disjoint
	}
	if c.isEndpoint(p, s) || c.isEndpoint(p, t) {
		return Touch
	}
	return Cross
}

func (c *FloatContext) isEndpoint(p Point, s Segment) bool {
	return (c.eq(p.X, s.P1.X) && c.eq(p.Y, s.P1.Y)) || (c.eq(p.X, s.P2.X) && c.eq(p.Y, s.P2.Y))
}

// IsEndpoint reports whether p coincides with one of s's two endpoints.
func (c *FloatContext) IsEndpoint(p Point, s Segment) bool {
	return c.isEndpoint(p, s)
}

// collinearRelation handles the case where s and t lie on the same line.
func (c *FloatContext) collinearRelation(s, t Segment) Relation {
	param := func(p Point) float64 {
		if !c.eq(s.P1.X, s.P2.X) {
			return p.X
		}
		return p.Y
	}
	sa, sb := s.P1, s.P2
	if param(sb) < param(sa) {
		sa, sb = sb, sa
	}
	ta, tb := t.P1, t.P2
	if param(tb) < param(ta) {
		ta, tb = tb, ta
	}

	if param(sb) < param(ta)-c.Epsilon || param(tb) < param(sa)-c.Epsilon {
		return Disjoint
	}

	overlapLo := math.Max(param(sa), param(ta))
	overlapHi := math.Min(param(sb), param(tb))
	if overlapHi-overlapLo > c.Epsilon {
		return Overlap
	}
	// The segments meet end-to-end at a single shared point.
	return Touch
}
