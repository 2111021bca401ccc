// Package gsw is a broadcasting and dispatch layer over the TEOS-10
// seawater property equations: hand any operation a mix of scalars,
// sequences, and 2-D grids, and get results shaped like your input.
//
// 🚀 What is gsw?
//
//	A pure-Go argument-reconciliation engine over an injected set of
//	closed-form property kernels:
//		• Shape handling: scalar / sequence / grid inputs, shape-preserving outputs
//		• Recycling: shorter arguments repeat cyclically to the primary's length
//		• Geographic grids: 1-D longitude/latitude axes expand to per-cell coordinates
//		• Paired operations: stability quantities over adjacent samples (n-1 outputs)
//		• Optional data-parallel dispatch across index-disjoint chunks
//
// ✨ Why choose gsw?
//
//   - Uniform surface – every property function broadcasts the same, unsurprising way
//   - Honest numerics – NaN kernel sentinels pass through untouched, never raised
//   - Testable core – the numeric kernels are injected, so the dispatch
//     engine runs against stubs with no physics compiled in
//
// Under the hood, everything is organized under three subpackages:
//
//	shape/     — scalar/sequence/grid descriptors and the immutable Value carrier
//	broadcast/ — reconciliation, geographic expansion, kernel dispatch, reshaping
//	kernel/    — the injected per-element and per-pair kernel boundary
//
// Quick sketch:
//
//	lib, _ := gsw.New(bindings, nil)            // bindings: a kernel.Set
//	sa := shape.FromSlice([]float64{34.7, 35})  // primary: output takes its shape
//	ct := shape.FromScalar(10)                  // broadcast
//	p := shape.FromScalar(500)                  // broadcast
//	rho := lib.Rho(sa, ct, p)                   // sequence of length 2
//
//	go get github.com/oceanum/gsw
package gsw
