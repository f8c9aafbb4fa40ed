package sweepline

// driver runs the single-threaded sweep-line event loop of §4.5. It owns
// the event queue and status structures for the duration of one call; no
// state is shared across calls or goroutines.
type driver struct {
	ctx    Context
	queue  *eventQueue
	status *status

	// earlyExit stops the loop (any_intersection mode) the first time two
	// distinct input segments are found to meet.
	earlyExit bool
	found     bool

	// witnesses maps an output point to the set of input-segment indices
	// known to pass through it. This centralises the bookkeeping the data
	// model describes as per-event tangents_indices (§3): recording the
	// union directly at the point of discovery is equivalent for every
	// testable property in §8 and avoids threading emission timing through
	// event processing order.
	witnesses map[Point]map[int]struct{}
}

func newDriver(ctx Context, capHint int, earlyExit bool) *driver {
	return &driver{
		ctx:       ctx,
		queue:     newEventQueue(capHint),
		status:    newStatus(ctx),
		earlyExit: earlyExit,
		witnesses: make(map[Point]map[int]struct{}),
	}
}

// addSegment seeds the queue with the left/right event pair for one input
// segment.
func (d *driver) addSegment(seg Segment, idx int) {
	left, right := newEventPair(seg, idx)
	d.enqueueLeft(left)
	d.queue.pushRight(right)
}

// enqueueLeft pushes a left event and, if it fuses into an already-pending
// event of the identical span (§4.3), records the fused span's endpoints
// as witnessed by the merged segment-index set. A queue-level fusion
// collapses what would otherwise be an adjacent-pair comparison in status
// into a single entry that never goes through detectIntersection, so
// without this the fused pair (most commonly two exact-duplicate input
// segments) would never be reported by AnyIntersection/AllIntersections.
func (d *driver) enqueueLeft(e *event) *event {
	fused := d.queue.pushLeft(e)
	if fused != e {
		d.witness(fused.point, fused, fused)
		d.witness(fused.opposite.point, fused, fused)
	}
	return fused
}

// run drains the queue, processing events per §4.5. It returns early (with
// d.found set) as soon as earlyExit is active and an intersection between
// distinct input segments has been discovered.
func (d *driver) run() {
	var prev *event
	for !d.queue.empty() {
		e := d.queue.pop()
		d.status.setX(e.point.X)

		// Events at one point are popped consecutively. A segment ending
		// there and a segment starting there are never in the status
		// together, so their meeting is recorded here.
		if prev != nil && prev.point == e.point && prev.segs != e.segs {
			d.witness(e.point, prev, e)
		}
		prev = e

		if e.isLeft {
			d.processLeft(e)
		} else {
			d.processRight(e)
		}

		if d.earlyExit && d.found {
			return
		}
	}
}

func (d *driver) processLeft(e *event) {
	d.status.insert(e)
	above, below := d.status.neighbors(e)
	if above != nil {
		d.detectIntersection(e, above)
	}
	if below != nil {
		d.detectIntersection(below, e)
	}
}

func (d *driver) processRight(e *event) {
	left := e.opposite
	above, below := d.status.neighbors(left)
	d.status.remove(left)
	if above != nil && below != nil {
		d.detectIntersection(below, above)
	}
}

// detectIntersection implements §4.5's core case analysis for a pair of
// left events currently adjacent in the status, with lower below upper.
func (d *driver) detectIntersection(lower, upper *event) {
	s, t := lower.span(), upper.span()
	switch d.ctx.SegmentsRelation(s, t) {
	case Disjoint:
		return
	case Cross:
		d.handleCross(lower, upper, s, t)
	case Touch:
		d.handleTouch(lower, upper, s, t)
	case Overlap:
		d.handleOverlap(lower, upper)
	}
}

func (d *driver) handleCross(lower, upper *event, s, t Segment) {
	p, ok := d.ctx.SegmentsIntersection(s, t)
	if !ok {
		return
	}
	d.witness(p, lower, upper)
	d.splitAt(lower, p)
	d.splitAt(upper, p)
}

func (d *driver) handleTouch(lower, upper *event, s, t Segment) {
	p := d.touchPoint(s, t)
	d.witness(p, lower, upper)
	if !d.ctx.IsEndpoint(p, s) {
		d.splitAt(lower, p)
	}
	if !d.ctx.IsEndpoint(p, t) {
		d.splitAt(upper, p)
	}
}

// touchPoint finds the single point at which s and t meet under a Touch
// relation, covering both the proper (non-collinear) case — where
// SegmentsIntersection already returns it — and the collinear end-to-end
// case, where it must be found among the four endpoints.
func (d *driver) touchPoint(s, t Segment) Point {
	if p, ok := d.ctx.SegmentsIntersection(s, t); ok {
		return p
	}
	for _, cand := range [...]Point{s.P1, s.P2, t.P1, t.P2} {
		if d.ctx.PointInSegment(cand, s) && d.ctx.PointInSegment(cand, t) {
			return cand
		}
	}
	return s.P1
}

// handleOverlap aligns lower and upper, known to be collinear with a
// positive-length shared sub-segment, onto the common range [lo, hi]:
// their far endpoints are trimmed via splitAt (a generally future point,
// so it goes through the queue), and their near endpoints are trimmed by
// direct mutation in place, since lo is always either the current sweep
// point or an already-past point on the very same line, and changing the
// stored boundary of a live status entry to another point on its own line
// cannot change the value the comparator computes for it. Both events'
// segment-index sets are then merged so the pair carries the union.
func (d *driver) handleOverlap(lower, upper *event) {
	lo := maxPoint(lower.point, upper.point)
	hi := minPoint(lower.opposite.point, upper.opposite.point)

	if lower.opposite.point != hi {
		d.splitAt(lower, hi)
	}
	if upper.opposite.point != hi {
		d.splitAt(upper, hi)
	}
	if lower.point != lo {
		lower.point = lo
	}
	if upper.point != lo {
		upper.point = lo
	}

	// A fresh set, so the remainders split off beyond hi keep their own.
	merged := &segmentSet{indices: append([]int(nil), lower.segs.indices...)}
	merged.merge(upper.segs)
	lower.segs, upper.segs = merged, merged
	lower.opposite.segs, upper.opposite.segs = merged, merged

	// lower and upper now share identical endpoints and segs, so the
	// status comparator ties them in both directions. The gods red-black
	// tree only dedupes compare==0 keys at insertion time; two already
	// resident nodes that become tied afterward are not merged and are
	// not guaranteed to sit in a parent/child arrangement that keeps
	// neighbor/removal lookups well defined. Collapse explicitly to the
	// single status entry §4.5 calls for by evicting the now-redundant
	// node; lower stays resident, carrying the merged segs, until its own
	// right event removes it at hi.
	d.status.remove(upper)

	d.witness(lo, lower, upper)
	d.witness(hi, lower, upper)
}

func maxPoint(a, b Point) Point {
	if a.Less(b) {
		return b
	}
	return a
}

func minPoint(a, b Point) Point {
	if a.Less(b) {
		return a
	}
	return b
}

// splitAt shortens left event e to end at p, the way §4.2 describes:
// e's opposite becomes a brand new right event at p, and e's old opposite
// (the original far endpoint) gets a brand new left event at p as its
// opposite. Both new events are enqueued; the new left event — the
// remainder from p onward — is returned (it may come back fused with an
// already-pending event representing the identical span). A no-op (nil
// return) results if p already is one of e's current boundaries.
func (d *driver) splitAt(e *event, p Point) *event {
	if e.point == p || e.opposite.point == p {
		return nil
	}
	oldRight := e.opposite
	newRight := &event{point: p, isLeft: false, segs: e.segs}
	newLeft := &event{point: p, isLeft: true, segs: oldRight.segs}

	e.opposite = newRight
	newRight.opposite = e
	oldRight.opposite = newLeft
	newLeft.opposite = oldRight

	d.queue.pushRight(newRight)
	return d.enqueueLeft(newLeft)
}

// witness records that the segments carried by lower and upper pass
// through p, and flags early exit once two genuinely distinct input
// indices have been witnessed together anywhere.
func (d *driver) witness(p Point, lower, upper *event) {
	set, ok := d.witnesses[p]
	if !ok {
		set = make(map[int]struct{})
		d.witnesses[p] = set
	}
	before := len(set)
	for _, idx := range lower.segs.indices {
		set[idx] = struct{}{}
	}
	for _, idx := range upper.segs.indices {
		set[idx] = struct{}{}
	}
	if len(set) >= 2 && (len(set) > before || before >= 2) {
		d.found = true
	}
}
