package bitonic

import "fmt"

// reconstruct walks the tables backwards from the open endpoints (n-1, n-2)
// and returns the n tour edges.
//
// With open endpoints (a, b), a > b:
//   - a == b+1: a was reached from k = N[a][b]; emit (a, k), continue at (b, k).
//   - otherwise: a extends the chain through a-1; emit (a, a-1), continue at (a-1, b).
//
// The larger endpoint drops by one each step, so the walk ends at (0, 0)
// after n-1 steps; the last step from (1, 0) emits the closing edge to 0.
//
// Complexity: O(n) time, O(n) space.
func (s *solver) reconstruct() ([]Edge, error) {
	var (
		n     = s.n
		a, b  = n - 1, n - 2
		next  int
		k     int32
		edges = make([]Edge, 0, n)
	)
	edges = append(edges, Edge{U: a, V: b})

	for a != 0 || b != 0 {
		if len(edges) == n {
			return nil, fmt.Errorf("%w: walk did not close after %d edges", ErrCorruptTable, n)
		}

		if a == b+1 {
			k = s.split.at(a, b)
			if k == unsetRank {
				return nil, fmt.Errorf("%w: N[%d][%d]", ErrCorruptTable, a, b)
			}
			next = int(k)
		} else {
			next = a - 1
		}
		edges = append(edges, Edge{U: a, V: next})

		// Keep the larger endpoint first; (b, next) is wrong after an
		// extension step, where next > b.
		if next > b {
			a = next
		} else {
			a, b = b, next
		}
	}

	return edges, nil
}
