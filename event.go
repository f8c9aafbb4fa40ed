package sweepline

// segmentSet is the multiset of input-segment indices a pair of twin events
// represents. It is shared by identity between an event and its opposite,
// and between both twins of a segment produced by splitting: the underlying
// slice is only ever mutated through merge, never replaced, so every holder
// of the pointer observes the union.
type segmentSet struct {
	indices []int
}

func newSegmentSet(i int) *segmentSet {
	return &segmentSet{indices: []int{i}}
}

// merge folds other's indices into s, keeping the result sorted and
// deduplicated. It is used when the event queue fuses two coincident
// events (§4.3) and when a collinear overlap aligns two segments' events
// onto the same pair of endpoints (§4.5).
func (s *segmentSet) merge(other *segmentSet) {
	if s == other {
		return
	}
	for _, idx := range other.indices {
		if !s.contains(idx) {
			s.indices = append(s.indices, idx)
		}
	}
	sortInts(s.indices)
}

func (s *segmentSet) contains(i int) bool {
	for _, v := range s.indices {
		if v == i {
			return true
		}
	}
	return false
}

func sortInts(a []int) {
	for i := 1; i < len(a); i++ {
		v := a[i]
		j := i - 1
		for j >= 0 && a[j] > v {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = v
	}
}

// event is one endpoint of one segment (or, after fusion, of several
// collinear identical segments) as seen by the sweep. Two events are
// created per input segment at construction time and cross-linked via
// opposite; splitting a segment during the sweep creates new event pairs
// and re-links opposite so that each pair always describes the current,
// possibly-shortened, extent of its segment.
type event struct {
	point    Point
	isLeft   bool
	opposite *event
	segs     *segmentSet
}

// span returns the segment currently represented by event e: its own
// point as the left endpoint and its opposite's point as the right
// endpoint, regardless of which of the pair e itself is.
func (e *event) span() Segment {
	if e.isLeft {
		return Segment{P1: e.point, P2: e.opposite.point}
	}
	return Segment{P1: e.opposite.point, P2: e.point}
}

// minIndex returns the smallest input-segment index this event's segment
// set carries, used as a deterministic status tie-break.
func (e *event) minIndex() int {
	m := e.segs.indices[0]
	for _, v := range e.segs.indices[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// newEventPair builds the left/right event pair for one input segment,
// canonicalising its orientation so the left event's point is the
// lexicographically smaller endpoint.
func newEventPair(seg Segment, idx int) (left, right *event) {
	seg = seg.canonical()
	segs := newSegmentSet(idx)
	left = &event{point: seg.P1, isLeft: true, segs: segs}
	right = &event{point: seg.P2, isLeft: false, segs: segs}
	left.opposite = right
	right.opposite = left
	return left, right
}
