package sweepline

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// checkAgainstNaive runs both AllIntersections and the brute-force oracle
// over segments and asserts they agree on the set of intersection points
// and the witnesses reported at each.
func checkAgainstNaive(t *testing.T, segments []Segment) {
	t.Helper()
	ctx := NewFloatContext(0)

	want := naiveAllIntersections(segments, ctx)
	got, err := AllIntersections(segments, ctx)
	require.NoError(t, err)
	require.Equal(t, len(want), len(got), "point count mismatch")
	for p, pairs := range want {
		require.ElementsMatch(t, pairs, got[p], "witness mismatch at %v", p)
	}

	wantAny := naiveAnyIntersection(segments, ctx)
	gotAny, err := AnyIntersection(segments, ctx)
	require.NoError(t, err)
	require.Equal(t, wantAny, gotAny)
}

func TestAgainstNaiveFixedCases(t *testing.T) {
	cases := map[string][]Segment{
		"single crossing": {
			{P1: Point{0, 0}, P2: Point{10, 10}},
			{P1: Point{0, 10}, P2: Point{10, 0}},
		},
		"disjoint": {
			{P1: Point{0, 0}, P2: Point{10, 10}},
			{P1: Point{0, 1}, P2: Point{10, 11}},
		},
		"vertical and horizontal": {
			{P1: Point{5, 0}, P2: Point{5, 10}},
			{P1: Point{0, 5}, P2: Point{10, 5}},
		},
		"t-junction touch": {
			{P1: Point{5, 0}, P2: Point{5, 10}},
			{P1: Point{0, 5}, P2: Point{5, 5}},
		},
		"v-shape shared apex": {
			{P1: Point{0, 0}, P2: Point{5, 5}},
			{P1: Point{10, 0}, P2: Point{5, 5}},
		},
		"collinear disjoint": {
			{P1: Point{0, 0}, P2: Point{5, 5}},
			{P1: Point{6, 6}, P2: Point{10, 10}},
		},
		"collinear overlap": {
			{P1: Point{0, 0}, P2: Point{10, 10}},
			{P1: Point{2, 2}, P2: Point{8, 8}},
		},
		"three concurrent lines": {
			{P1: Point{5, 0}, P2: Point{5, 10}},
			{P1: Point{0, 5}, P2: Point{10, 5}},
			{P1: Point{0, 0}, P2: Point{10, 10}},
		},
		"four concurrent lines": {
			{P1: Point{5, 0}, P2: Point{5, 10}},
			{P1: Point{0, 5}, P2: Point{10, 5}},
			{P1: Point{0, 0}, P2: Point{10, 10}},
			{P1: Point{0, 10}, P2: Point{10, 0}},
		},
		"2x2 grid": {
			{P1: Point{0, 5}, P2: Point{10, 5}},
			{P1: Point{0, 6}, P2: Point{10, 6}},
			{P1: Point{5, 0}, P2: Point{5, 10}},
			{P1: Point{6, 0}, P2: Point{6, 10}},
		},
		"duplicate segments": {
			{P1: Point{0, 0}, P2: Point{10, 10}},
			{P1: Point{0, 0}, P2: Point{10, 10}},
			{P1: Point{0, 10}, P2: Point{10, 0}},
		},
	}

	for name, segs := range cases {
		t.Run(name, func(t *testing.T) {
			checkAgainstNaive(t, segs)
		})
	}
}

func TestAgainstNaiveRandomData(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const maxCoord = 200.0

	for _, n := range []int{5, 20, 60} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			segs := make([]Segment, n)
			for i := range segs {
				segs[i] = Segment{
					P1: Point{X: rng.Float64() * maxCoord, Y: rng.Float64() * maxCoord},
					P2: Point{X: rng.Float64() * maxCoord, Y: rng.Float64() * maxCoord},
				}
			}
			checkAgainstNaive(t, segs)
		})
	}
}

func TestAgainstNaiveRandomAxisAligned(t *testing.T) {
	// Axis-aligned random segments generate many collinear overlaps and
	// shared-endpoint touches, the cases most likely to reveal a fusion or
	// tie-break bug that a fully general random instance might miss.
	rng := rand.New(rand.NewSource(2))
	const gridMax = 12.0

	segs := make([]Segment, 0, 80)
	for i := 0; i < 40; i++ {
		y := float64(int(rng.Float64() * gridMax))
		x1 := float64(int(rng.Float64() * gridMax))
		x2 := float64(int(rng.Float64() * gridMax))
		if x1 == x2 {
			continue
		}
		segs = append(segs, Segment{P1: Point{x1, y}, P2: Point{x2, y}})
	}
	for i := 0; i < 40; i++ {
		x := float64(int(rng.Float64() * gridMax))
		y1 := float64(int(rng.Float64() * gridMax))
		y2 := float64(int(rng.Float64() * gridMax))
		if y1 == y2 {
			continue
		}
		segs = append(segs, Segment{P1: Point{x, y1}, P2: Point{x, y2}})
	}
	checkAgainstNaive(t, segs)
}

func TestFloatContextOrientationAndRelation(t *testing.T) {
	ctx := NewFloatContext(0)

	require.Equal(t, Collinear, ctx.Orientation(Point{0, 0}, Point{1, 1}, Point{2, 2}))
	require.Equal(t, Left, ctx.Orientation(Point{0, 0}, Point{1, 0}, Point{1, 1}))
	require.Equal(t, Right, ctx.Orientation(Point{0, 0}, Point{1, 0}, Point{1, -1}))

	cross := Segment{P1: Point{0, 0}, P2: Point{10, 10}}
	other := Segment{P1: Point{0, 10}, P2: Point{10, 0}}
	require.Equal(t, Cross, ctx.SegmentsRelation(cross, other))

	touch := Segment{P1: Point{10, 10}, P2: Point{15, 15}}
	require.Equal(t, Touch, ctx.SegmentsRelation(cross, touch))

	overlap := Segment{P1: Point{2, 2}, P2: Point{8, 8}}
	require.Equal(t, Overlap, ctx.SegmentsRelation(cross, overlap))

	disjoint := Segment{P1: Point{0, 1}, P2: Point{10, 11}}
	require.Equal(t, Disjoint, ctx.SegmentsRelation(cross, disjoint))
}

func TestSegmentSetMerge(t *testing.T) {
	a := newSegmentSet(3)
	b := newSegmentSet(1)
	a.merge(b)
	require.Equal(t, []int{1, 3}, a.indices)

	a.merge(a) // self-merge is a no-op, not a duplicate
	require.Equal(t, []int{1, 3}, a.indices)
}
