package shape

// FromScalar wraps a single numeric value.
func FromScalar(x float64) Value {
	return Value{
		Desc: Descriptor{Kind: Scalar, Length: 1},
		Data: []float64{x},
	}
}

// FromSlice wraps a flat ordered sequence. The input slice is copied.
// An empty (or nil) slice yields a zero-length sequence; dispatching
// over it performs no kernel invocations.
func FromSlice(xs []float64) Value {
	data := make([]float64, len(xs))
	copy(data, xs)

	return Value{
		Desc: Descriptor{Kind: Sequence, Length: len(data)},
		Data: data,
	}
}

// FromGrid wraps a two-dimensional field with the given extents.
// The payload is column-major: data[j*rows+i] holds cell (i, j).
// Returns ErrGridShape when rows or cols is non-positive or
// rows*cols != len(data). The input slice is copied.
func FromGrid(rows, cols int, data []float64) (Value, error) {
	if rows < 1 || cols < 1 || rows*cols != len(data) {
		return Value{}, ErrGridShape
	}
	buf := make([]float64, len(data))
	copy(buf, data)

	return Value{
		Desc: Descriptor{Kind: Grid, Length: len(buf), Rows: rows, Cols: cols},
		Data: buf,
	}, nil
}

// Len reports the total element count.
func (v Value) Len() int { return v.Desc.Length }

// Float unwraps a scalar Value. The second result is false when the
// value is not a scalar.
func (v Value) Float() (float64, bool) {
	if v.Desc.Kind != Scalar || len(v.Data) != 1 {
		return 0, false
	}

	return v.Data[0], true
}

// At returns grid cell (i, j). Only valid for Kind == Grid.
func (v Value) At(i, j int) (float64, error) {
	if v.Desc.Kind != Grid {
		return 0, ErrNotGrid
	}
	if i < 0 || i >= v.Desc.Rows || j < 0 || j >= v.Desc.Cols {
		return 0, ErrOutOfRange
	}

	return v.Data[j*v.Desc.Rows+i], nil
}

// Apply reattaches the descriptor to a flat result sequence: this is a
// relabeling, not a data transformation. The flat slice is adopted,
// not copied; callers hand over ownership.
//
// A Scalar descriptor wraps the single element; a Grid descriptor
// reinterprets the slice with the original extents. If the slice
// length no longer matches the grid extents the result degrades to a
// flat sequence rather than failing (the dispatch layer always passes
// a matching length).
func (d Descriptor) Apply(flat []float64) Value {
	switch d.Kind {
	case Scalar:
		if len(flat) == 1 {
			return Value{Desc: Descriptor{Kind: Scalar, Length: 1}, Data: flat}
		}
	case Grid:
		if d.Rows*d.Cols == len(flat) {
			return Value{
				Desc: Descriptor{Kind: Grid, Length: len(flat), Rows: d.Rows, Cols: d.Cols},
				Data: flat,
			}
		}
	case Sequence:
		// fall through to the sequence default below
	}

	return Value{Desc: Descriptor{Kind: Sequence, Length: len(flat)}, Data: flat}
}
