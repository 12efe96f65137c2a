// Package bitonic - tour utilities.
//
// Helpers operating on the edge-list representation of a tour:
//   - ValidateEdges: enforce single-Hamiltonian-cycle invariants.
//   - Result.Cycle: closed vertex sequence in rank space, canonical orientation.
//   - Result.Chains: the two rank-increasing chains of a bitonic tour.
//   - IsBitonic: check a closed rank-space cycle for bitonicity.
//   - Result.OriginalEdges / Result.OriginalOrder: translate ranks back to input indices.
//
// Design:
//   - O(n) time for every helper; no logging, sentinel errors only.
//   - n == 2 is the degenerate tour 0-1-0 whose single segment is listed twice.
package bitonic

import "fmt"

// ValidateEdges checks that edges form one cycle through every vertex
// 0..n-1: exactly n edges, endpoints in range, no self-loops, degree 2
// everywhere, one connected component.
//
// Complexity: O(n) time, O(n) space.
func ValidateEdges(edges []Edge, n int) error {
	_, err := cycleFromEdges(edges, n)

	return err
}

// cycleFromEdges walks edges from vertex 0 and returns the closed vertex
// sequence (len n+1, starting and ending at 0) in traversal order.
func cycleFromEdges(edges []Edge, n int) ([]int, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 vertices, got %d", ErrInvalidTour, n)
	}
	if len(edges) != n {
		return nil, fmt.Errorf("%w: %d edges for %d vertices", ErrInvalidTour, len(edges), n)
	}

	var (
		adj = make([][2]int, n)
		deg = make([]int, n)
		e   Edge
	)
	for _, e = range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, fmt.Errorf("%w: edge (%d,%d) out of range", ErrInvalidTour, e.U, e.V)
		}
		if e.U == e.V {
			return nil, fmt.Errorf("%w: self-loop at %d", ErrInvalidTour, e.U)
		}
		if deg[e.U] == 2 || deg[e.V] == 2 {
			return nil, fmt.Errorf("%w: edge (%d,%d) exceeds degree 2", ErrInvalidTour, e.U, e.V)
		}
		adj[e.U][deg[e.U]] = e.V
		deg[e.U]++
		adj[e.V][deg[e.V]] = e.U
		deg[e.V]++
	}

	var v int
	for v = 0; v < n; v++ {
		if deg[v] != 2 {
			return nil, fmt.Errorf("%w: vertex %d has degree %d", ErrInvalidTour, v, deg[v])
		}
	}

	var (
		cycle = make([]int, 0, n+1)
		seen  = make([]bool, n)
		prev  = -1
		cur   = 0
		next  int
		step  int
	)
	for step = 0; step < n; step++ {
		if seen[cur] {
			return nil, fmt.Errorf("%w: vertex %d revisited after %d steps", ErrInvalidTour, cur, step)
		}
		seen[cur] = true
		cycle = append(cycle, cur)

		next = adj[cur][0]
		if next == prev {
			next = adj[cur][1]
		}
		prev, cur = cur, next
	}
	if cur != 0 {
		return nil, fmt.Errorf("%w: walk from 0 ends at %d", ErrInvalidTour, cur)
	}
	cycle = append(cycle, 0)

	return cycle, nil
}

// canonicalizeOrientationInPlace reverses the interior of a closed cycle
// when cycle[1] > cycle[n-1], so every cyclic order has one representation.
func canonicalizeOrientationInPlace(cycle []int) {
	var n = len(cycle) - 1
	if n < 3 || cycle[1] <= cycle[n-1] {
		return
	}

	var l, r int
	for l, r = 1, n-1; l < r; l, r = l+1, r-1 {
		cycle[l], cycle[r] = cycle[r], cycle[l]
	}
}

// Cycle returns the tour as a closed rank sequence: len n+1, starting and
// ending at rank 0, oriented so that cycle[1] ≤ cycle[n-1].
// It returns nil when Edges is not a valid tour (e.g. a zero Result).
func (r Result) Cycle() []int {
	cycle, err := cycleFromEdges(r.Edges, len(r.Points))
	if err != nil {
		return nil
	}
	canonicalizeOrientationInPlace(cycle)

	return cycle
}

// Chains splits the tour at ranks 0 and n-1 into its two chains, each listed
// in increasing rank order from 0 to n-1. up passes through cycle[1].
// Both are nil when the tour is not bitonic.
func (r Result) Chains() (up, down []int) {
	cycle := r.Cycle()
	if !IsBitonic(cycle) {
		return nil, nil
	}

	var (
		n   = len(cycle) - 1
		top = indexOf(cycle, n-1)
		i   int
	)
	up = append([]int(nil), cycle[:top+1]...)
	down = make([]int, 0, n-top+1)
	for i = n; i >= top; i-- {
		down = append(down, cycle[i])
	}

	return up, down
}

// IsBitonic reports whether a closed rank-space cycle (len n+1, first and
// last element 0) rises strictly from 0 to n-1 and then falls strictly back.
//
// Complexity: O(n).
func IsBitonic(cycle []int) bool {
	var n = len(cycle) - 1
	if n < 2 || cycle[0] != 0 || cycle[n] != 0 {
		return false
	}

	var (
		top = indexOf(cycle[:n], n-1)
		i   int
	)
	if top < 0 {
		return false
	}
	for i = 1; i <= top; i++ {
		if cycle[i] <= cycle[i-1] {
			return false
		}
	}
	for i = top + 1; i <= n; i++ {
		if cycle[i] >= cycle[i-1] {
			return false
		}
	}

	return true
}

// OriginalEdges returns Edges with ranks replaced by input indices.
func (r Result) OriginalEdges() []Edge {
	out := make([]Edge, len(r.Edges))

	var (
		i int
		e Edge
	)
	for i, e = range r.Edges {
		out[i] = Edge{U: r.Ranks[e.U], V: r.Ranks[e.V]}
	}

	return out
}

// OriginalOrder returns Cycle with ranks replaced by input indices; it starts
// and ends at the input index of the leftmost point.
func (r Result) OriginalOrder() []int {
	cycle := r.Cycle()
	if cycle == nil {
		return nil
	}

	var i int
	for i = range cycle {
		cycle[i] = r.Ranks[cycle[i]]
	}

	return cycle
}

func indexOf(s []int, v int) int {
	var i int
	for i = range s {
		if s[i] == v {
			return i
		}
	}

	return -1
}
