package sweepline

import (
	"math/rand"
	"testing"
)

// randomSegments generates n segments with endpoints drawn uniformly from
// [0, maxCoord), seeded deterministically so benchmark runs are comparable.
func randomSegments(n int, maxCoord float64, seed int64) []Segment {
	rng := rand.New(rand.NewSource(seed))
	segs := make([]Segment, n)
	for i := range segs {
		segs[i] = Segment{
			P1: Point{X: rng.Float64() * maxCoord, Y: rng.Float64() * maxCoord},
			P2: Point{X: rng.Float64() * maxCoord, Y: rng.Float64() * maxCoord},
		}
	}
	return segs
}

// randomAxisAlignedSegments generates a grid-like instance with many
// collinear overlaps, the workload most likely to stress event fusion.
func randomAxisAlignedSegments(n int, gridMax float64, seed int64) []Segment {
	rng := rand.New(rand.NewSource(seed))
	segs := make([]Segment, 0, n)
	for len(segs) < n {
		y := float64(int(rng.Float64() * gridMax))
		x1 := float64(int(rng.Float64() * gridMax))
		x2 := float64(int(rng.Float64() * gridMax))
		if x1 == x2 {
			continue
		}
		segs = append(segs, Segment{P1: Point{x1, y}, P2: Point{x2, y}})
	}
	return segs
}

func BenchmarkAllIntersections(b *testing.B) {
	ctx := NewFloatContext(0)
	for _, n := range []int{50, 200, 1000} {
		segs := randomSegments(n, 1000, int64(n))
		b.Run(benchName(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := AllIntersections(segs, ctx); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkAllIntersectionsCollinearHeavy(b *testing.B) {
	ctx := NewFloatContext(0)
	for _, n := range []int{50, 200, 1000} {
		segs := randomAxisAlignedSegments(n, 40, int64(n))
		b.Run(benchName(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := AllIntersections(segs, ctx); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkAnyIntersection(b *testing.B) {
	ctx := NewFloatContext(0)
	for _, n := range []int{50, 200, 1000} {
		segs := randomSegments(n, 1000, int64(n)+1)
		b.Run(benchName(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := AnyIntersection(segs, ctx); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkNaiveAllIntersections(b *testing.B) {
	ctx := NewFloatContext(0)
	for _, n := range []int{50, 200} {
		segs := randomSegments(n, 1000, int64(n)+2)
		b.Run(benchName(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				naiveAllIntersections(segs, ctx)
			}
		})
	}
}

func benchName(n int) string {
	switch n {
	case 50:
		return "n=50"
	case 200:
		return "n=200"
	case 1000:
		return "n=1000"
	default:
		return "n"
	}
}
