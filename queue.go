package sweepline

import "container/heap"

// fusionKey identifies a left event by the segment span it currently
// represents: its own point and its opposite's point. Two left events with
// the same key are, by construction, endpoints of identical segments (same
// two points implies the same line), the condition under which §4.3 fuses
// them instead of inserting a duplicate.
type fusionKey struct {
	start, end Point
}

// eventQueue is the sweep's min-priority queue of events, backed by
// container/heap, plus an index of currently-pending left events used to
// fuse coincident duplicates on insert (§4.3).
type eventQueue struct {
	h     eventHeap
	index map[fusionKey]*event
}

func newEventQueue(hint int) *eventQueue {
	return &eventQueue{
		h:     make(eventHeap, 0, hint),
		index: make(map[fusionKey]*event, hint/2+1),
	}
}

func (q *eventQueue) empty() bool { return len(q.h) == 0 }

// pushRight enqueues a right event. Right events never fuse: only left
// events carry the shared segment-index multiset callers observe, so a
// duplicate right event is harmless and is simply queued.
func (q *eventQueue) pushRight(e *event) {
	heap.Push(&q.h, e)
}

// pushLeft enqueues a left event, fusing it into an existing pending left
// event representing the identical span if one is found. It returns the
// event that now represents that span in the queue: either e itself, or
// the pre-existing event e was merged into.
//
// On fusion, the merged segmentSet is propagated to all four events of the
// two twin pairs (existing, existing.opposite, e, e.opposite) so that e's
// own right event — which is never itself queued for fusion — still
// carries the full merged index set rather than the singleton it was
// created with.
func (q *eventQueue) pushLeft(e *event) *event {
	key := fusionKey{start: e.point, end: e.opposite.point}
	if existing, ok := q.index[key]; ok {
		existing.segs.merge(e.segs)
		e.segs = existing.segs
		e.opposite.segs = existing.segs
		existing.opposite.segs = existing.segs
		return existing
	}
	q.index[key] = e
	heap.Push(&q.h, e)
	return e
}

// pop removes and returns the minimum event. If it is a left event, its
// fusion-index entry is cleared.
func (q *eventQueue) pop() *event {
	e := heap.Pop(&q.h).(*event)
	if e.isLeft {
		key := fusionKey{start: e.point, end: e.opposite.point}
		if q.index[key] == e {
			delete(q.index, key)
		}
	}
	return e
}

// eventHeap implements container/heap.Interface over the total event order
// of §4.3: x ascending, then y ascending, then right-before-left at the
// same point, then the event whose opposite endpoint has the smaller y.
type eventHeap []*event

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.point.X != b.point.X {
		return a.point.X < b.point.X
	}
	if a.point.Y != b.point.Y {
		return a.point.Y < b.point.Y
	}
	if a.isLeft != b.isLeft {
		return !a.isLeft // right events (isLeft == false) sort first
	}
	return a.opposite.point.Y < b.opposite.point.Y
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) {
	*h = append(*h, x.(*event))
}

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}
