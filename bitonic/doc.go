// Package bitonic computes optimal bitonic tours of points in the Euclidean plane.
//
// A bitonic tour visits every point exactly once and can be split at its
// leftmost and rightmost points into two chains, each strictly monotone in x.
// Among all bitonic tours the solver returns one of minimum total length.
//
// Algorithm:
//
//   - Points are sorted by x and addressed by rank 0..n-1.
//   - D[i][j] (i > j) is the cheapest pair of disjoint x-monotone paths
//     starting at rank 0, covering ranks 0..i and ending at i and j.
//   - N[i+1][i] memoizes argmin_{j<i} D[i][j] + d(j, i+1) as an online
//     running minimum, which collapses the O(n³) recurrence to O(n²).
//   - The tour is rebuilt backwards from the open endpoints (n-1, n-2).
//
// Complexity:
//
//   - Time:   O(n²)
//   - Memory: O(n²) with DenseLayout, n(n-1)/2 cells per table with PackedLayout.
//
// Usage:
//
//	res, err := bitonic.Solve([]bitonic.Point{{X: 0, Y: 0}, {X: 10, Y: 5}, {X: 12, Y: -5}, {X: 22, Y: 0}}, nil)
//	if err != nil {
//		// *InvalidInputError or *NumericDegeneracyError
//	}
//	fmt.Println(res.Edges, res.Length)
//
// Preconditions: n ≥ 2 and pairwise-distinct x-coordinates. Violations are
// reported before any table is allocated; no partial tour is ever returned.
package bitonic
