package bitonic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_PackedOffsetsAreDense(t *testing.T) {
	const n = 9
	tb := newTable[float64](n, PackedLayout, 0)
	require.Equal(t, n*(n-1)/2, tb.cells())

	seen := make(map[int]bool, tb.cells())
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			off := tb.offset(i, j)
			require.GreaterOrEqual(t, off, 0)
			require.Less(t, off, tb.cells())
			require.False(t, seen[off], "offset %d reused at (%d,%d)", off, i, j)
			seen[off] = true
		}
	}
	assert.Len(t, seen, tb.cells())
}

func TestTable_FillAndAccess(t *testing.T) {
	dense := newTable[int32](5, DenseLayout, unsetRank)
	packed := newTable[int32](5, PackedLayout, unsetRank)
	assert.Equal(t, 25, dense.cells())
	assert.Equal(t, 10, packed.cells())

	for _, tb := range []*table[int32]{&dense, &packed} {
		assert.Equal(t, unsetRank, tb.at(4, 3))
		tb.set(4, 3, 2)
		assert.Equal(t, int32(2), tb.at(4, 3))
		assert.Equal(t, unsetRank, tb.at(4, 2))
	}
}

func newFilledSolver(t *testing.T, n int, layout TableLayout) *solver {
	t.Helper()
	pts := make([]Point, n)
	for i := range pts {
		// Distinct x, irregular y.
		pts[i] = Point{X: float64(i) * 3, Y: float64((i * i * 7) % 11)}
	}
	s := newSolver(pts, layout)
	require.NoError(t, s.fill(context.Background()))

	return s
}

func TestSolver_BestCostCacheMatchesTable(t *testing.T) {
	s := newFilledSolver(t, 12, DenseLayout)
	for i := 1; i+1 < s.n; i++ {
		k := s.split.at(i+1, i)
		require.NotEqual(t, unsetRank, k)
		require.Less(t, int(k), i)
		assert.Equal(t, s.cost.at(i, int(k))+s.d(int(k), i+1), s.best[i+1], "row %d", i+1)
	}
}

func TestSolver_ReconstructDetectsUnsetSplit(t *testing.T) {
	s := newFilledSolver(t, 6, PackedLayout)
	s.split.set(s.n-1, s.n-2, unsetRank)

	_, err := s.reconstruct()
	assert.ErrorIs(t, err, ErrCorruptTable)
}

func TestSolver_ReconstructReadsOnlyWrittenCells(t *testing.T) {
	for n := 2; n <= 20; n++ {
		s := newFilledSolver(t, n, DenseLayout)
		edges, err := s.reconstruct()
		require.NoError(t, err, "n=%d", n)
		require.Len(t, edges, n)
		require.NoError(t, ValidateEdges(edges, n))
	}
}

// The walk keeps the larger open endpoint first. After a chain-extension
// step (a, a-1) the state is (a-1, b); writing it as (b, a-1) would read
// N[b][a-1] from the wrong triangle and emit edges of another tour.
func TestSolver_ReconstructAfterChainExtension(t *testing.T) {
	pts := []Point{{X: 0}, {X: 1}, {X: 2}, {X: 3}}
	s := newSolver(pts, DenseLayout)
	require.NoError(t, s.fill(context.Background()))

	// (3,2) splits to 0, leaving (2,0); (2,1) is the extension step.
	edges, err := s.reconstruct()
	require.NoError(t, err)
	assert.Equal(t, []Edge{{U: 3, V: 2}, {U: 3, V: 0}, {U: 2, V: 1}, {U: 1, V: 0}}, edges)

	for n := 4; n <= 20; n++ {
		s = newFilledSolver(t, n, PackedLayout)
		edges, err = s.reconstruct()
		require.NoError(t, err, "n=%d", n)

		var sum float64
		for _, e := range edges {
			sum += s.d(e.U, e.V)
		}
		assert.InEpsilon(t, s.length(), sum, 1e-12, "n=%d: edges disagree with the table", n)
	}
}
