package bitonic

import (
	"context"
	"fmt"
)

// Solve returns the optimal bitonic tour of points.
// A nil opts means DefaultOptions().
//
// Contracts:
//   - len(points) ≥ 2, pairwise-distinct X, finite coordinates.
//   - points may be in any order; Result.Ranks maps ranks back to it.
//
// Errors: *InvalidInputError, *NumericDegeneracyError, ErrBadOptions.
// A tour whose length exceeds MaxFloat64 is a *NumericDegeneracyError.
//
// Complexity: O(n²) time and memory.
func Solve(points []Point, opts *Options) (Result, error) {
	return SolveContext(context.Background(), points, opts)
}

// SolveContext is Solve with cooperative cancellation. ctx is polled once per
// column of the forward pass; on cancellation the tables are dropped and the
// wrapped context error is returned.
func SolveContext(ctx context.Context, points []Point, opts *Options) (Result, error) {
	var o = DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := validateOptions(o); err != nil {
		return Result{}, err
	}

	r, err := rankPoints(points, o.MaxPoints)
	if err != nil {
		return Result{}, err
	}

	s := newSolver(r.points, o.Layout)
	if err = s.fill(ctx); err != nil {
		return Result{}, err
	}
	edges, err := s.reconstruct()
	if err != nil {
		return Result{}, err
	}

	length := s.length()
	if !finite(length) {
		return Result{}, &NumericDegeneracyError{
			Reason: fmt.Sprintf("length of the tour through %d points is %g", s.n, length),
			Err:    ErrLengthOverflow,
		}
	}

	return Result{
		Edges:  edges,
		Points: r.points,
		Ranks:  r.ranks,
		Length: round1e9(length),
	}, nil
}

// solver holds the state of one solve. Nothing in it outlives the call.
type solver struct {
	pts   []Point        // points in rank order
	n     int            // number of ranks
	cost  table[float64] // D[i][j], i > j
	split table[int32]   // N[i+1][i], unsetRank until first relaxation
	best  []float64      // best[i+1] caches D[i][N[i+1][i]] + d(N[i+1][i], i+1)
}

func newSolver(pts []Point, layout TableLayout) *solver {
	var n = len(pts)

	return &solver{
		pts:   pts,
		n:     n,
		cost:  newTable[float64](n, layout, 0),
		split: newTable[int32](n, layout, unsetRank),
		best:  make([]float64, n),
	}
}

// d is the Euclidean distance between ranks a and b.
func (s *solver) d(a, b int) float64 {
	return distance(s.pts[a], s.pts[b])
}

// fill runs the forward pass.
//
// Order: j outer ascending, i inner ascending from j+1. Every D[i-1][·] the
// recurrence reads is final by then, and N[i][i-1] has seen every j < i-1
// before column i-1 reads it.
//
//	(1,0)        D = d(1,0)
//	i != j+1     D = D[i-1][j] + d(i,i-1)
//	i == j+1     D = D[i-1][k] + d(k,i),   k = N[i][j]
//
// After each cell, if i+1 < n, D[i][j] + d(j,i+1) competes for N[i+1][i].
func (s *solver) fill(ctx context.Context) error {
	var (
		n    = s.n
		i, j int
		k    int32
		v    float64
	)

	// (1,0) has a single predecessor: rank 0 itself.
	s.split.set(1, 0, 0)

	for j = 0; j < n-1; j++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("bitonic: solve aborted at column %d of %d: %w", j, n-1, err)
		}
		for i = j + 1; i < n; i++ {
			switch {
			case i == 1:
				v = s.d(1, 0)
			case i != j+1:
				v = s.cost.at(i-1, j) + s.d(i, i-1)
			default:
				k = s.split.at(i, j)
				if k == unsetRank {
					return fmt.Errorf("%w: N[%d][%d]", ErrCorruptTable, i, j)
				}
				v = s.cost.at(i-1, int(k)) + s.d(int(k), i)
			}
			s.cost.set(i, j, v)

			if i+1 < n {
				s.relax(i, j, v)
			}
		}
	}

	return nil
}

// relax offers j as the other endpoint carried forward when rank i+1 joins
// the chain ending at i. Strict < keeps the first candidate on ties.
func (s *solver) relax(i, j int, dij float64) {
	cand := dij + s.d(j, i+1)
	if s.split.at(i+1, i) == unsetRank || cand < s.best[i+1] {
		s.split.set(i+1, i, int32(j))
		s.best[i+1] = cand
	}
}

// length closes the two paths ending at n-1 and n-2.
func (s *solver) length() float64 {
	return s.cost.at(s.n-1, s.n-2) + s.d(s.n-1, s.n-2)
}
