package shape_test

import (
	"testing"

	"github.com/oceanum/gsw/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromScalar verifies descriptor derivation and scalar unwrapping.
func TestFromScalar(t *testing.T) {
	v := shape.FromScalar(35.5)

	assert.Equal(t, shape.Scalar, v.Desc.Kind)
	assert.Equal(t, 1, v.Len())

	x, ok := v.Float()
	assert.True(t, ok, "scalar must unwrap")
	assert.Equal(t, 35.5, x)
}

// TestFromSlice_Copies ensures a Value never aliases caller memory.
func TestFromSlice_Copies(t *testing.T) {
	src := []float64{1, 2, 3}
	v := shape.FromSlice(src)

	src[0] = 99
	assert.Equal(t, 1.0, v.Data[0], "mutating the source slice must not affect the Value")
	assert.Equal(t, shape.Sequence, v.Desc.Kind)
	assert.Equal(t, 3, v.Len())
}

// TestFromSlice_Empty permits zero-length sequences.
func TestFromSlice_Empty(t *testing.T) {
	v := shape.FromSlice(nil)

	assert.Equal(t, shape.Sequence, v.Desc.Kind)
	assert.Equal(t, 0, v.Len())

	_, ok := v.Float()
	assert.False(t, ok, "a sequence never unwraps as a scalar")
}

// TestFromGrid_Valid checks the Rows*Cols == Length invariant and the
// column-major cell accessor: Data[j*Rows+i] holds cell (i,j).
func TestFromGrid_Valid(t *testing.T) {
	// 3 rows x 2 cols, column-major: column 0 then column 1.
	v, err := shape.FromGrid(3, 2, []float64{10, 11, 12, 20, 21, 22})
	require.NoError(t, err)

	assert.Equal(t, shape.Grid, v.Desc.Kind)
	assert.Equal(t, 6, v.Len())
	assert.Equal(t, 3, v.Desc.Rows)
	assert.Equal(t, 2, v.Desc.Cols)

	got, err := v.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 22.0, got, "At(2,1) must read Data[1*3+2]")

	got, err = v.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 10.0, got)
}

// TestFromGrid_BadExtents rejects inconsistent or non-positive extents.
func TestFromGrid_BadExtents(t *testing.T) {
	_, err := shape.FromGrid(3, 2, []float64{1, 2, 3})
	assert.ErrorIs(t, err, shape.ErrGridShape, "rows*cols != len(data) must error")

	_, err = shape.FromGrid(0, 2, nil)
	assert.ErrorIs(t, err, shape.ErrGridShape, "zero rows must error")

	_, err = shape.FromGrid(2, -1, []float64{1, 2})
	assert.ErrorIs(t, err, shape.ErrGridShape, "negative cols must error")
}

// TestAt_Errors covers the grid accessor error surface.
func TestAt_Errors(t *testing.T) {
	seq := shape.FromSlice([]float64{1, 2})
	_, err := seq.At(0, 0)
	assert.ErrorIs(t, err, shape.ErrNotGrid)

	g, err := shape.FromGrid(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	_, err = g.At(2, 0)
	assert.ErrorIs(t, err, shape.ErrOutOfRange)
	_, err = g.At(0, -1)
	assert.ErrorIs(t, err, shape.ErrOutOfRange)
}

// TestDescriptorApply_RoundTrip verifies that reapplying a grid
// descriptor to the flattened payload reproduces the original cells.
func TestDescriptorApply_RoundTrip(t *testing.T) {
	g, err := shape.FromGrid(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	flat := make([]float64, g.Len())
	copy(flat, g.Data)

	out := g.Desc.Apply(flat)
	assert.Equal(t, g.Desc, out.Desc, "descriptor must survive the round trip")
	for j := 0; j < 3; j++ {
		for i := 0; i < 2; i++ {
			want, err := g.At(i, j)
			require.NoError(t, err)
			got, err := out.At(i, j)
			require.NoError(t, err)
			assert.Equal(t, want, got, "cell (%d,%d)", i, j)
		}
	}
}

// TestDescriptorApply_Scalar wraps a single element back into a scalar.
func TestDescriptorApply_Scalar(t *testing.T) {
	d := shape.FromScalar(7).Desc
	out := d.Apply([]float64{42})

	x, ok := out.Float()
	assert.True(t, ok)
	assert.Equal(t, 42.0, x)
}

// TestDescriptorApply_LengthFallback degrades to a flat sequence when
// the flat length no longer matches the grid extents.
func TestDescriptorApply_LengthFallback(t *testing.T) {
	g, err := shape.FromGrid(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	out := g.Desc.Apply([]float64{1, 2, 3})
	assert.Equal(t, shape.Sequence, out.Desc.Kind)
	assert.Equal(t, 3, out.Len())
}

// TestKindString pins the kind names used in documentation.
func TestKindString(t *testing.T) {
	assert.Equal(t, "scalar", shape.Scalar.String())
	assert.Equal(t, "sequence", shape.Sequence.String())
	assert.Equal(t, "grid", shape.Grid.String())
	assert.Equal(t, "unknown", shape.Kind(42).String())
}
