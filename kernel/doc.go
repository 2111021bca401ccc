// Package kernel declares the boundary between the broadcasting layer
// and the closed-form TEOS-10 property equations.
//
// What:
//
//   - Func is a pure per-element kernel: one float64 per named
//     parameter, in the order the owning operation declares them, one
//     float64 result.
//   - PairFunc is a pure per-adjacent-pair kernel: two full parameter
//     tuples (samples i and i+1), three results — two derived
//     quantities plus a midpoint coordinate such as a mid pressure.
//   - Set holds one kernel per public operation and is injected into
//     gsw.New, so the dispatch core can be exercised against stub
//     kernels independent of the real physics bindings.
//
// Numeric policy:
//
//   - Kernels signal physically invalid input combinations by returning
//     NaN, never by failing the call. The dispatch layer propagates
//     such sentinels through reshaping unchanged.
//
// Errors:
//
//   - ErrIncomplete: a Set is missing one or more kernels.
package kernel
