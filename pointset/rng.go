// Package pointset - deterministic random instances.
//
// Goals:
//   - Determinism: same (n, seed) ⇒ identical points on every platform.
//   - Validity: X coordinates are pairwise distinct by construction.
//   - No time-based sources; seed 0 maps to a fixed default.
//
// Concurrency: each call owns its *rand.Rand; Random is safe for concurrent use.
package pointset

import (
	"fmt"
	"math/rand"

	"github.com/jbeda/geom"
)

// defaultSeed is used when callers pass seed == 0.
const defaultSeed int64 = 1

const (
	// xStride separates consecutive X slots; jitter stays inside a slot.
	xStride = 10.0
	xJitter = 0.9 * xStride

	// ySpan is the height of the band Y is drawn from, centered on 0.
	ySpan = 100.0
)

func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// Random returns n points with distinct X in shuffled input order.
// Slot i holds X in [i*10, i*10+9); Y is uniform in [-50, 50).
//
// Complexity: O(n).
func Random(n int, seed int64) Set {
	if n < 0 {
		n = 0
	}

	var (
		rng  = rngFromSeed(seed)
		pts  = make([]geom.Coord, n)
		perm = rng.Perm(n)
		i    int
	)
	for i = 0; i < n; i++ {
		pts[perm[i]] = geom.Coord{
			X: float64(i)*xStride + rng.Float64()*xJitter,
			Y: rng.Float64()*ySpan - ySpan/2,
		}
	}

	return Set{Name: fmt.Sprintf("random-n%d-s%d", n, seed), Points: pts}
}

// DeriveSeed mixes a parent seed and a stream id into an independent seed
// (SplitMix64 finalizer). Use it to derive per-instance seeds from one
// user-supplied seed.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
