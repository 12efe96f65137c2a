// Package bitonic - flat storage for the DP tables.
//
// Both tables are addressed by (i, j) with i > j only. Storage is a single
// contiguous slice per table; no per-row allocation.
//
//   - DenseLayout:  offset = i*n + j,          len = n*n.
//   - PackedLayout: offset = i*(i-1)/2 + j,    len = n*(n-1)/2.
//
// Complexity quicksheet: newTable O(cells); at/set O(1).
package bitonic

// unsetRank marks a BestSplitTable cell that has not been written yet.
// Compared by value; rank 0 is a legitimate split.
const unsetRank int32 = -1

// cell is the element type a table may hold.
type cell interface {
	~float64 | ~int32
}

// table is an n×n lower-triangular table over one of the two layouts.
type table[T cell] struct {
	n      int
	packed bool
	data   []T
}

// newTable allocates a table for n ranks with every cell set to fill.
func newTable[T cell](n int, layout TableLayout, fill T) table[T] {
	var size int
	if layout == PackedLayout {
		size = n * (n - 1) / 2
	} else {
		size = n * n
	}

	data := make([]T, size)
	if fill != 0 {
		var k int
		for k = range data {
			data[k] = fill
		}
	}

	return table[T]{n: n, packed: layout == PackedLayout, data: data}
}

// offset maps (i, j), i > j, to a slice index.
func (t *table[T]) offset(i, j int) int {
	if t.packed {
		return i*(i-1)/2 + j
	}

	return i*t.n + j
}

func (t *table[T]) at(i, j int) T { return t.data[t.offset(i, j)] }

func (t *table[T]) set(i, j int, v T) { t.data[t.offset(i, j)] = v }

// cells reports the number of allocated cells.
func (t *table[T]) cells() int { return len(t.data) }
