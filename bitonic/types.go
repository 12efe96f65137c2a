package bitonic

import (
	"errors"
	"fmt"

	"github.com/jbeda/geom"
)

// Point is a location in the plane. Only X participates in ranking.
type Point = geom.Coord

var (
	// ErrTooFewPoints indicates fewer than two input points.
	ErrTooFewPoints = errors.New("bitonic: at least two points are required")

	// ErrTooManyPoints indicates the input exceeds Options.MaxPoints.
	ErrTooManyPoints = errors.New("bitonic: too many points")

	// ErrDuplicateX indicates two points sharing an x-coordinate.
	ErrDuplicateX = errors.New("bitonic: duplicate x-coordinate")

	// ErrNonFinite indicates a NaN or infinite coordinate.
	ErrNonFinite = errors.New("bitonic: non-finite coordinate")

	// ErrCoincident indicates two distinct ranks whose distance is zero or
	// not representable.
	ErrCoincident = errors.New("bitonic: degenerate distance between distinct points")

	// ErrLengthOverflow indicates a tour whose length exceeds MaxFloat64.
	ErrLengthOverflow = errors.New("bitonic: tour length overflows")

	// ErrBadOptions indicates an inconsistent Options value.
	ErrBadOptions = errors.New("bitonic: invalid options")

	// ErrInvalidTour indicates an edge list that is not a single Hamiltonian cycle.
	ErrInvalidTour = errors.New("bitonic: invalid tour")

	// ErrCorruptTable indicates that reconstruction reached a split cell the
	// forward pass never wrote.
	ErrCorruptTable = errors.New("bitonic: best-split table read before write")
)

// InvalidInputError reports a precondition violation on the input points.
type InvalidInputError struct {
	Reason string
	Err    error
}

func (e *InvalidInputError) Error() string {
	return "bitonic: invalid input: " + e.Reason
}

func (e *InvalidInputError) Unwrap() error { return e.Err }

// NumericDegeneracyError reports geometrically malformed input: non-finite
// coordinates, or distinct points whose distance collapses to zero or
// overflows.
type NumericDegeneracyError struct {
	Reason string
	Err    error
}

func (e *NumericDegeneracyError) Error() string {
	return "bitonic: numeric degeneracy: " + e.Reason
}

func (e *NumericDegeneracyError) Unwrap() error { return e.Err }

// TableLayout selects how the two DP tables are stored.
type TableLayout int

const (
	// DenseLayout stores n×n cells, offset i*n + j.
	DenseLayout TableLayout = iota

	// PackedLayout stores only the strictly lower triangle,
	// offset i*(i-1)/2 + j, roughly halving memory.
	PackedLayout
)

// String returns the flag-friendly name of the layout.
func (l TableLayout) String() string {
	switch l {
	case DenseLayout:
		return "dense"
	case PackedLayout:
		return "packed"
	default:
		return "unknown"
	}
}

// ParseLayout maps "dense" or "packed" to a TableLayout.
func ParseLayout(s string) (TableLayout, error) {
	switch s {
	case "dense", "":
		return DenseLayout, nil
	case "packed":
		return PackedLayout, nil
	default:
		return 0, fmt.Errorf("%w: unknown layout %q", ErrBadOptions, s)
	}
}

// Options configures a solve.
type Options struct {
	// Layout selects table storage. Results do not depend on it.
	Layout TableLayout

	// MaxPoints rejects larger inputs before allocation. 0 means unlimited.
	MaxPoints int
}

// DefaultOptions returns dense tables and no size ceiling.
func DefaultOptions() Options {
	return Options{
		Layout:    DenseLayout,
		MaxPoints: 0,
	}
}

// Edge joins two ranks (or two input indices, see Result.OriginalEdges).
type Edge struct {
	U, V int
}

// Result is the optimal bitonic tour of one point set.
type Result struct {
	// Edges holds n edges in rank space, in reconstruction order: the first
	// edge joins ranks n-1 and n-2, the last one reaches rank 0. For n == 2
	// the single segment appears twice.
	Edges []Edge

	// Points are the input points in rank order (ascending X).
	Points []Point

	// Ranks maps rank -> index in the caller's input slice.
	Ranks []int

	// Length is the total tour length, stabilized to 1e-9.
	Length float64
}
