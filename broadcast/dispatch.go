package broadcast

import (
	"golang.org/x/sync/errgroup"

	"github.com/oceanum/gsw/kernel"
	"github.com/oceanum/gsw/shape"
)

// Map invokes fn once per index 0..N-1, passing the reconciled values
// at that index in column order, and reapplies the primary argument's
// descriptor to the flat result. NaN results propagate unchanged.
//
// nil opts selects DefaultOptions (serial). With Workers > 1 the index
// range splits into disjoint chunks dispatched concurrently; each
// worker writes only its own output slots, so no locking is needed and
// the result is identical to the serial path.
//
// Complexity: O(N·a) for a columns. Memory: O(N) output + O(a) per worker.
func Map(set *Set, fn kernel.Func, opts *Options) shape.Value {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	out := make([]float64, set.N)
	if o.Workers > 1 && set.N > 1 {
		mapParallel(set, fn, o.Workers, out)

		return set.Desc.Apply(out)
	}

	args := make([]float64, len(set.Cols))
	for i := 0; i < set.N; i++ {
		gather(set, i, args)
		out[i] = fn(args)
	}

	return set.Desc.Apply(out)
}

// MapPairs invokes fn once per adjacent index pair (i, i+1) for
// i in 0..N-2, yielding three flat sequences of length N-1: two
// derived quantities plus a midpoint coordinate. The results are never
// reshaped; a grid primary is rejected with ErrGridUnsupported before
// any kernel invocation, since n-1 results cannot be laid back onto an
// n-element grid.
//
// A primary with fewer than two elements yields three empty sequences.
//
// Complexity: O(N·a). Memory: O(N) per output.
func MapPairs(set *Set, fn kernel.PairFunc) (q1, q2, mid []float64, err error) {
	if set.Desc.Kind == shape.Grid {
		return nil, nil, nil, ErrGridUnsupported
	}

	m := set.N - 1
	if m < 0 {
		m = 0
	}
	q1 = make([]float64, m)
	q2 = make([]float64, m)
	mid = make([]float64, m)

	lo := make([]float64, len(set.Cols))
	hi := make([]float64, len(set.Cols))
	for i := 0; i < m; i++ {
		gather(set, i, lo)
		gather(set, i+1, hi)
		q1[i], q2[i], mid[i] = fn(lo, hi)
	}

	return q1, q2, mid, nil
}

// gather copies the reconciled values at index i into dst, one per
// column in declaration order.
func gather(set *Set, i int, dst []float64) {
	for c, col := range set.Cols {
		dst[c] = col[i]
	}
}

// mapParallel splits [0, N) into index-disjoint chunks, one goroutine
// per chunk, each with its own argument buffer. Kernels are pure, so
// the group only joins; it never observes an error.
func mapParallel(set *Set, fn kernel.Func, workers int, out []float64) {
	if workers > set.N {
		workers = set.N
	}
	chunk := (set.N + workers - 1) / workers

	var g errgroup.Group
	for lo := 0; lo < set.N; lo += chunk {
		hi := lo + chunk
		if hi > set.N {
			hi = set.N
		}
		lo, hi := lo, hi
		g.Go(func() error {
			args := make([]float64, len(set.Cols))
			for i := lo; i < hi; i++ {
				gather(set, i, args)
				out[i] = fn(args)
			}

			return nil
		})
	}
	_ = g.Wait()
}
