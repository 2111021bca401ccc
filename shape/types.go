// Package shape defines core types and sentinel errors for the shape
// subpackage of github.com/oceanum/gsw.
package shape

import (
	"errors"
)

// Sentinel errors for shape construction and access.
var (
	// ErrGridShape indicates grid extents that are non-positive or
	// inconsistent with the payload length (Rows*Cols != len(Data)).
	ErrGridShape = errors.New("shape: rows*cols must match data length and be positive")
	// ErrNotGrid indicates a grid accessor used on a scalar or sequence.
	ErrNotGrid = errors.New("shape: value is not a grid")
	// ErrOutOfRange indicates a cell index outside the grid extents.
	ErrOutOfRange = errors.New("shape: cell index out of range")
)

// Kind tags how a Value's payload is organized: a single scalar,
// a flat ordered sequence, or a two-dimensional grid.
type Kind int

const (
	// Scalar is a single numeric value.
	Scalar Kind = iota
	// Sequence is a flat ordered sequence of numeric values.
	Sequence
	// Grid is a two-dimensional field with fixed row/column extents.
	Grid
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Sequence:
		return "sequence"
	case Grid:
		return "grid"
	default:
		return "unknown"
	}
}

// Descriptor captures the shape of one argument: its Kind, total
// element count, and (for grids) the row/column extents.
// Invariant: Rows*Cols == Length when Kind == Grid; Rows and Cols are
// zero otherwise.
type Descriptor struct {
	Kind   Kind
	Length int
	Rows   int
	Cols   int
}

// Value is an immutable physical-quantity argument: a Descriptor plus
// the flat payload. Constructors copy their input, so a Value never
// aliases caller-owned memory. Treat Data as read-only.
//
// Grid payloads are column-major: Data[j*Rows+i] holds cell (i, j).
type Value struct {
	Desc Descriptor
	Data []float64
}
