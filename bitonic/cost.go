// Package bitonic - length utilities.
//
// Lengths of magnitude ≥ 1 are stabilized to 1e-9 so results compare equal
// across platforms and optimization levels. Smaller lengths are reported as
// computed; an absolute grid would erase them.
package bitonic

import "math"

// roundScale controls final length stabilization precision (1e-9).
// It applies only to lengths in [1, MaxFloat64/roundScale].
const roundScale = 1e9

// TourLength sums the Euclidean lengths of edges over points, where edge
// endpoints index points. Pass Result.Points with Result.Edges, or the
// caller's input with Result.OriginalEdges().
//
// Out-of-range endpoints make the length NaN.
//
// Complexity: O(len(edges)).
func TourLength(points []Point, edges []Edge) float64 {
	var (
		sum float64
		e   Edge
		n   = len(points)
	)
	for _, e = range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return math.NaN()
		}
		sum += distance(points[e.U], points[e.V])
	}

	return round1e9(sum)
}

// distance is the Euclidean norm of p-q. math.Hypot neither overflows nor
// underflows for finite differences, unlike a direct sqrt(dx²+dy²).
func distance(p, q Point) float64 {
	v := p.Minus(q)

	return math.Hypot(v.X, v.Y)
}

func round1e9(x float64) float64 {
	scaled := x * roundScale
	if math.Abs(x) < 1 || math.IsInf(scaled, 0) || math.IsNaN(scaled) {
		return x
	}

	return math.Round(scaled) / roundScale
}
