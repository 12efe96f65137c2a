// Package bitour computes optimal bitonic tours of points in the plane.
//
// 🚀 What is a bitonic tour?
//
//	A closed tour that starts at the leftmost point, moves strictly
//	rightward to the rightmost point, then strictly leftward back. Among
//	all such tours the solver returns one of minimum Euclidean length in
//	O(n²) time and space.
//
// Under the hood, everything is organized under two subpackages and a command:
//
//	bitonic/    - the dynamic program, table layouts, tour reconstruction and tour utilities
//	pointset/   - named point sets: YAML/JSON loading, encoding, transforms, seeded generation
//	cmd/bitour/ - command line front end: solve files, solve random sets, run the demo
//
// Quick start:
//
//	res, err := bitonic.Solve([]bitonic.Point{{X: 0, Y: 0}, {X: 10, Y: 5}, {X: 12, Y: -5}, {X: 22, Y: 0}}, nil)
//	if err != nil {
//		return err
//	}
//	fmt.Println(res.Edges, res.Cycle(), res.Length)
//
// Points must have pairwise distinct x-coordinates. Edges are reported in
// rank space (0 is the leftmost point); Result.Ranks maps ranks back to
// input indices.
package bitour
