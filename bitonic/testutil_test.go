// Package bitonic_test holds helpers shared across *_test.go files:
// a brute-force bitonic enumerator, edge-set normalization and fixtures.
package bitonic_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/bitour/bitonic"
	"github.com/katalvlaran/bitour/pointset"
	"github.com/stretchr/testify/require"
)

const (
	// epsTiny is the tolerance for lengths that went through round1e9.
	epsTiny = 1e-9

	// epsLoose absorbs FP drift from rigid transforms of the input.
	epsLoose = 1e-6

	// seedDet is the base seed for generated instances.
	seedDet = int64(42)
)

// classic returns the four-point instance in rank order already.
func classic() []bitonic.Point {
	return pointset.Classic().Points
}

// pts builds points from (x, y) pairs.
func pts(xy ...[2]float64) []bitonic.Point {
	out := make([]bitonic.Point, len(xy))
	for i, p := range xy {
		out[i] = bitonic.Point{X: p[0], Y: p[1]}
	}

	return out
}

// dist is the Euclidean distance, computed independently of geom.
func dist(a, b bitonic.Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// bruteForceLength enumerates every split of ranks 1..n-2 between the two
// chains and returns the shortest bitonic tour length. points must be in
// rank order. O(2^(n-2) · n).
func bruteForceLength(points []bitonic.Point) float64 {
	var (
		n    = len(points)
		best = math.Inf(1)
		mask uint
	)
	if n < 2 {
		return math.NaN()
	}
	inner := uint(0)
	if n > 2 {
		inner = uint(n - 2)
	}

	for mask = 0; mask < 1<<inner; mask++ {
		var (
			upLast, downLast = 0, 0
			total            float64
			r                int
		)
		for r = 1; r < n-1; r++ {
			if mask&(1<<uint(r-1)) != 0 {
				total += dist(points[upLast], points[r])
				upLast = r
			} else {
				total += dist(points[downLast], points[r])
				downLast = r
			}
		}
		total += dist(points[upLast], points[n-1]) + dist(points[downLast], points[n-1])
		if total < best {
			best = total
		}
	}

	return best
}

// edgeKey is an unordered edge.
type edgeKey struct{ lo, hi int }

// edgeMultiset counts unordered edges.
func edgeMultiset(edges []bitonic.Edge) map[edgeKey]int {
	out := make(map[edgeKey]int, len(edges))
	for _, e := range edges {
		if e.U < e.V {
			out[edgeKey{e.U, e.V}]++
		} else {
			out[edgeKey{e.V, e.U}]++
		}
	}

	return out
}

// randomInstance returns n shuffled points with distinct X.
func randomInstance(n int, stream uint64) []bitonic.Point {
	return pointset.Random(n, pointset.DeriveSeed(seedDet, stream)).Points
}

// mustSolve solves with opts and fails the test on error.
func mustSolve(t *testing.T, points []bitonic.Point, opts *bitonic.Options) bitonic.Result {
	t.Helper()
	res, err := bitonic.Solve(points, opts)
	require.NoError(t, err)

	return res
}

// Repeat runs fn k times as numbered subtests.
func Repeat(t *testing.T, k int, fn func(t *testing.T)) {
	t.Helper()
	for i := 0; i < k; i++ {
		t.Run("rep", fn)
	}
}
