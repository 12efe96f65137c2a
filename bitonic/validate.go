// Package bitonic - input validation and ranking.
//
// This file turns caller input into rank space:
//  1. Validate Options (layout, size ceiling).
//  2. Validate points (count, finiteness).
//  3. Stable-sort by X, assign ranks, reject duplicate X.
//  4. Reject distinct ranks whose Euclidean distance degenerates.
//
// Design principles:
//   - Everything here runs before the DP tables are allocated.
//   - No logging, no panics on user input; typed errors wrapping sentinels.
package bitonic

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// ranking is the caller's input re-indexed by ascending X.
type ranking struct {
	points []Point // points[r] is the point of rank r
	ranks  []int   // ranks[r] is its index in the caller's slice
}

// validateOptions checks Options without looking at the points.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	switch opts.Layout {
	case DenseLayout, PackedLayout:
	default:
		return fmt.Errorf("%w: unknown layout %d", ErrBadOptions, int(opts.Layout))
	}
	if opts.MaxPoints < 0 {
		return fmt.Errorf("%w: negative MaxPoints %d", ErrBadOptions, opts.MaxPoints)
	}

	return nil
}

// rankPoints validates the input and returns it in rank order.
// The caller's slice is never modified.
//
// Errors:
//   - *InvalidInputError: too few or too many points, duplicate X.
//   - *NumericDegeneracyError: NaN/Inf coordinates, zero or overflowing distances.
//
// Complexity: O(n log n) for ranking plus O(n²) distance checks, O(n) space.
func rankPoints(points []Point, maxPoints int) (ranking, error) {
	var n = len(points)
	if n < 2 {
		return ranking{}, &InvalidInputError{
			Reason: fmt.Sprintf("need at least 2 points, got %d", n),
			Err:    ErrTooFewPoints,
		}
	}
	if maxPoints > 0 && n > maxPoints {
		return ranking{}, &InvalidInputError{
			Reason: fmt.Sprintf("%d points exceed the limit of %d", n, maxPoints),
			Err:    ErrTooManyPoints,
		}
	}

	var i int
	for i = 0; i < n; i++ {
		if !finite(points[i].X) || !finite(points[i].Y) {
			return ranking{}, &NumericDegeneracyError{
				Reason: fmt.Sprintf("point %d is (%g, %g)", i, points[i].X, points[i].Y),
				Err:    ErrNonFinite,
			}
		}
	}

	// Stable order keeps equal keys in input order, so the duplicate report
	// below always names the lower input index first.
	order := make([]int, n)
	for i = 0; i < n; i++ {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(points[a].X, points[b].X)
	})

	sorted := make([]Point, n)
	for i = 0; i < n; i++ {
		sorted[i] = points[order[i]]
	}
	for i = 1; i < n; i++ {
		if sorted[i].X == sorted[i-1].X {
			return ranking{}, &InvalidInputError{
				Reason: fmt.Sprintf("points %d and %d share x=%g", order[i-1], order[i], sorted[i].X),
				Err:    ErrDuplicateX,
			}
		}
	}

	if err := checkDistances(sorted, order); err != nil {
		return ranking{}, err
	}

	return ranking{points: sorted, ranks: order}, nil
}

// checkDistances rejects any pair of distinct ranks whose distance is zero,
// infinite or NaN. With distinct finite X and math.Hypot the distance is
// never zero; it is infinite only when x2-x1 itself overflows.
//
// Complexity: O(n²) time, O(1) space.
func checkDistances(sorted []Point, order []int) error {
	var (
		n    = len(sorted)
		a, b int
		d    float64
	)
	for a = 0; a < n; a++ {
		for b = a + 1; b < n; b++ {
			d = distance(sorted[a], sorted[b])
			if d > 0 && finite(d) {
				continue
			}

			return &NumericDegeneracyError{
				Reason: fmt.Sprintf("distance between points %d and %d is %g", order[a], order[b], d),
				Err:    ErrCoincident,
			}
		}
	}

	return nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
