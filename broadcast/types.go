// Package broadcast defines core types, options, and sentinel errors
// for the broadcast subpackage of github.com/oceanum/gsw.
package broadcast

import (
	"errors"

	"github.com/oceanum/gsw/shape"
)

// ErrGridUnsupported is returned when a paired-output operation is
// invoked with a grid-shaped primary argument. The n-1 paired results
// cannot be reshaped onto the n-element grid, so the call fails before
// any kernel invocation.
var ErrGridUnsupported = errors.New("broadcast: paired operation does not accept a grid primary")

// Options configures kernel dispatch.
//   - Workers: number of parallel workers for the dispatch loop.
//     Values <= 1 select the serial path. Kernel invocations are pure
//     and independent per index, so parallel results are identical to
//     serial ones.
type Options struct {
	Workers int
}

// DefaultOptions returns serial dispatch (Workers=1).
func DefaultOptions() Options {
	return Options{Workers: 1}
}

// Set is a reconciled argument set: the primary argument's original
// descriptor plus one flat column of length N per argument, primary
// first. Columns are read-only once built; dispatch never mutates
// them.
type Set struct {
	Desc shape.Descriptor
	N    int
	Cols [][]float64
}
