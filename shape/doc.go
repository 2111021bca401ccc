// Package shape classifies and carries the physical-quantity arguments
// accepted by the public TEOS-10 operations: a single scalar, a flat
// ordered sequence, or a two-dimensional grid.
//
// What:
//
//   - Kind tags a value as Scalar, Sequence or Grid.
//   - Descriptor records the Kind plus element count and, for grids,
//     the row/column extents (Rows*Cols == Length).
//   - Value is the immutable carrier: a Descriptor plus a flat
//     []float64 payload. Grids are stored column-major, so Data[j*Rows+i]
//     holds cell (i, j) and the first extent varies fastest.
//
// Why:
//
//   - The Descriptor is extracted once from an operation's primary
//     argument and threaded explicitly through reconciliation and
//     reshaping, instead of re-inspecting values at every step.
//   - Column-major storage makes grid flattening coincide with the
//     geographic axis-expansion order used by the salinity conversions.
//
// Errors:
//
//   - ErrGridShape: grid extents are non-positive or Rows*Cols does not
//     equal the payload length.
//   - ErrNotGrid: a grid accessor was called on a scalar or sequence.
//   - ErrOutOfRange: a cell index lies outside the grid extents.
package shape
