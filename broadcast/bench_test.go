package broadcast_test

import (
	"math/rand"
	"testing"

	"github.com/oceanum/gsw/broadcast"
	"github.com/oceanum/gsw/shape"
)

// benchSet builds a reconciled set of n elements with three columns
// (one full-length primary, one recycled, one broadcast scalar).
func benchSet(n int) *broadcast.Set {
	rng := rand.New(rand.NewSource(42))
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = rng.Float64() * 40
	}

	return broadcast.Reconcile(
		shape.FromSlice(xs),
		shape.FromSlice([]float64{0, 500, 1000}),
		shape.FromScalar(35),
	)
}

// BenchmarkMap_Serial measures the serial dispatch loop on 100k elements.
func BenchmarkMap_Serial(b *testing.B) {
	set := benchSet(100_000)
	fn := func(in []float64) float64 { return in[0] + in[1]*0.1 + in[2] }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = broadcast.Map(set, fn, nil)
	}
}

// BenchmarkMap_Parallel measures the chunked worker path on the same
// workload with 8 workers.
func BenchmarkMap_Parallel(b *testing.B) {
	set := benchSet(100_000)
	fn := func(in []float64) float64 { return in[0] + in[1]*0.1 + in[2] }
	opts := &broadcast.Options{Workers: 8}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = broadcast.Map(set, fn, opts)
	}
}

// BenchmarkMapPairs measures adjacent-pair dispatch on 100k elements.
func BenchmarkMapPairs(b *testing.B) {
	set := benchSet(100_000)
	fn := func(lo, hi []float64) (float64, float64, float64) {
		return hi[0] - lo[0], hi[0] + lo[0], (lo[1] + hi[1]) / 2
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _, _ = broadcast.MapPairs(set, fn)
	}
}
