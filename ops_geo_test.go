package gsw_test

import (
	"testing"

	"github.com/oceanum/gsw"
	"github.com/oceanum/gsw/kernel"
	"github.com/oceanum/gsw/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// coordSet overrides SAFromSP with a kernel that encodes the
// coordinates it received: lon*1000 + lat. in = (SP, p, lon, lat).
func coordSet() kernel.Set {
	s := testSet()
	s.SAFromSP = func(in []float64) float64 {
		return in[2]*1000 + in[3]
	}

	return s
}

// TestSAFromSP_GridExpansion: a 3x2 grid primary with axes of lengths
// 3 and 2 delivers (lon[i], lat[j]) to the kernel at flat index
// k = j*3 + i.
func TestSAFromSP_GridExpansion(t *testing.T) {
	lib, err := gsw.New(coordSet(), nil)
	require.NoError(t, err)

	sp, err := shape.FromGrid(3, 2, make([]float64, 6))
	require.NoError(t, err)
	lon := shape.FromSlice([]float64{100, 110, 120})
	lat := shape.FromSlice([]float64{-10, 10})

	out := lib.SAFromSP(sp, shape.FromScalar(0), lon, lat)

	require.Equal(t, shape.Grid, out.Desc.Kind)
	require.Equal(t, 3, out.Desc.Rows)
	require.Equal(t, 2, out.Desc.Cols)
	for j := 0; j < 2; j++ {
		for i := 0; i < 3; i++ {
			got, err := out.At(i, j)
			require.NoError(t, err)
			assert.Equal(t, lon.Data[i]*1000+lat.Data[j], got, "cell (%d,%d)", i, j)
		}
	}
}

// TestSAFromSP_SequenceNoExpansion: with a sequence primary the axes
// recycle like ordinary arguments.
func TestSAFromSP_SequenceNoExpansion(t *testing.T) {
	lib, err := gsw.New(coordSet(), nil)
	require.NoError(t, err)

	sp := shape.FromSlice([]float64{0, 0, 0, 0})
	lon := shape.FromSlice([]float64{100, 110}) // recycles to {100,110,100,110}
	lat := shape.FromScalar(5)

	out := lib.SAFromSP(sp, shape.FromScalar(0), lon, lat)
	assert.Equal(t, []float64{100005, 110005, 100005, 110005}, out.Data)
}

// TestSAFromSP_MismatchedAxesFallThrough: axis lengths that do not
// match the grid extents skip expansion silently and recycle instead.
func TestSAFromSP_MismatchedAxesFallThrough(t *testing.T) {
	lib, err := gsw.New(coordSet(), nil)
	require.NoError(t, err)

	sp, err := shape.FromGrid(3, 2, make([]float64, 6))
	require.NoError(t, err)
	lon := shape.FromSlice([]float64{100, 110}) // 2 != Rows(3): no expansion
	lat := shape.FromSlice([]float64{-10, 10})

	out := lib.SAFromSP(sp, shape.FromScalar(0), lon, lat)

	// Both axes recycle to length 6 by the i mod k law.
	want := []float64{
		100*1000 - 10, 110*1000 + 10, 100*1000 - 10,
		110*1000 + 10, 100*1000 - 10, 110*1000 + 10,
	}
	assert.Equal(t, want, out.Data)
	assert.Equal(t, shape.Grid, out.Desc.Kind, "output still carries the primary's shape")
}

// TestSPFromSA_GridExpansion: the second geographic conversion shares
// the same expansion path.
func TestSPFromSA_GridExpansion(t *testing.T) {
	s := testSet()
	s.SPFromSA = func(in []float64) float64 { return in[2]*1000 + in[3] }
	lib, err := gsw.New(s, nil)
	require.NoError(t, err)

	sa, err := shape.FromGrid(2, 2, make([]float64, 4))
	require.NoError(t, err)
	lon := shape.FromSlice([]float64{30, 40})
	lat := shape.FromSlice([]float64{-5, 5})

	out := lib.SPFromSA(sa, shape.FromScalar(0), lon, lat)
	assert.Equal(t, []float64{30*1000 - 5, 40*1000 - 5, 30*1000 + 5, 40*1000 + 5}, out.Data)
}
