package broadcast

import (
	"math"

	"github.com/oceanum/gsw/shape"
)

// Recycle repeats src cyclically to exactly n elements: out[i] equals
// src[i mod len(src)]. There is no divisibility requirement — a
// non-integer multiple produces a partial final repetition, and a
// target shorter than src truncates. This looseness is deliberate and
// documented; callers must not rely on a length-mismatch error.
//
// An empty src with n > 0 yields all-NaN, the same sentinel the
// kernels use for invalid domains, keeping element-wise operations
// total.
//
// Complexity: O(n). Memory: O(n).
func Recycle(src []float64, n int) []float64 {
	if n < 0 {
		n = 0
	}
	out := make([]float64, n)
	if len(src) == 0 {
		for i := range out {
			out[i] = math.NaN()
		}

		return out
	}
	for i := 0; i < n; i++ {
		out[i] = src[i%len(src)]
	}

	return out
}

// Reconcile builds a Set from the primary argument and the remaining
// arguments in declaration order. The target count n is the primary's
// element count; every other argument is used as-is when it already
// has length n and recycled cyclically otherwise. Scalars broadcast as
// length-1 recycles.
//
// The primary's descriptor is carried on the Set so that grid extents
// relabel the output later; reconciliation itself is a pure
// transformation with no failure mode.
//
// Complexity: O(n·a) for a arguments. Memory: O(n) per recycled column.
func Reconcile(primary shape.Value, rest ...shape.Value) *Set {
	n := primary.Len()
	cols := make([][]float64, 0, len(rest)+1)
	cols = append(cols, primary.Data)
	for _, v := range rest {
		if len(v.Data) == n {
			cols = append(cols, v.Data)
			continue
		}
		cols = append(cols, Recycle(v.Data, n))
	}

	return &Set{Desc: primary.Desc, N: n, Cols: cols}
}
