package sweepline

import (
	rbt "github.com/emirpasic/gods/trees/redblacktree"
)

// statusComparator provides the dynamic comparison logic for the status's
// red-black tree. The vertical order of segments crossing the sweep line
// depends on their y-coordinate at the current sweep abscissa, so the
// comparator holds that moving "currentX" state and must be updated by the
// driver before every tree operation at a new event point (§4.4, design
// note "status comparator with moving key").
type statusComparator struct {
	currentX float64
	ctx      Context
}

// yAt returns the y-coordinate of the segment represented by left event e
// at the comparator's currentX.
func (c *statusComparator) yAt(e *event) float64 {
	p1, p2 := e.point, e.opposite.point
	if p1.X == p2.X {
		return p1.Y
	}
	if c.currentX <= p1.X {
		return p1.Y
	}
	if c.currentX >= p2.X {
		return p2.Y
	}
	return p1.Y + (c.currentX-p1.X)*(p2.Y-p1.Y)/(p2.X-p1.X)
}

// Compare implements github.com/emirpasic/gods/utils.Comparator. Events tied
// on y are broken by the orientation of the other event's far endpoint
// relative to the first event's segment, so that segments meeting at
// currentX are ordered by the direction they head next; a final tie is
// broken by the smallest input-segment index each event carries.
func (c *statusComparator) Compare(a, b any) int {
	ea, eb := a.(*event), b.(*event)
	ya, yb := c.yAt(ea), c.yAt(eb)
	if ya != yb {
		if ya < yb {
			return -1
		}
		return 1
	}

	sa := ea.span()
	switch c.ctx.Orientation(sa.P1, sa.P2, eb.opposite.point) {
	case Left:
		return -1
	case Right:
		return 1
	}

	ia, ib := ea.minIndex(), eb.minIndex()
	switch {
	case ia < ib:
		return -1
	case ia > ib:
		return 1
	default:
		return 0
	}
}

// status is the sweep's ordered set of currently active left events,
// vertically ordered at the current sweep abscissa (§4.4). It is backed by
// a red-black tree, adapted from the teacher's Status, for O(log n)
// insert, remove, and neighbour lookup.
type status struct {
	tree *rbt.Tree
	cmp  *statusComparator
}

func newStatus(ctx Context) *status {
	cmp := &statusComparator{ctx: ctx}
	return &status{tree: rbt.NewWith(cmp.Compare), cmp: cmp}
}

// setX updates the sweep abscissa used by the comparator. It MUST be
// called before any tree operation at a new event point.
func (s *status) setX(x float64) { s.cmp.currentX = x }

func (s *status) insert(e *event) { s.tree.Put(e, true) }

func (s *status) remove(e *event) { s.tree.Remove(e) }

func findSuccessor(node *rbt.Node) *rbt.Node {
	if node.Right != nil {
		cur := node.Right
		for cur.Left != nil {
			cur = cur.Left
		}
		return cur
	}
	p := node.Parent
	cur := node
	for p != nil && cur == p.Right {
		cur = p
		p = p.Parent
	}
	return p
}

func findPredecessor(node *rbt.Node) *rbt.Node {
	if node.Left != nil {
		cur := node.Left
		for cur.Right != nil {
			cur = cur.Right
		}
		return cur
	}
	p := node.Parent
	cur := node
	for p != nil && cur == p.Left {
		cur = p
		p = p.Parent
	}
	return p
}

// neighbors returns the left events immediately above and below e in the
// status, or nil for a side with no neighbour.
func (s *status) neighbors(e *event) (above, below *event) {
	node := s.tree.GetNode(e)
	if node == nil {
		return nil, nil
	}
	if pred := findPredecessor(node); pred != nil {
		below = pred.Key.(*event)
	}
	if succ := findSuccessor(node); succ != nil {
		above = succ.Key.(*event)
	}
	return above, below
}
