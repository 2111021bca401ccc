// Package broadcast reconciles mixed-shape physical arguments into
// aligned element tuples, dispatches a pure numeric kernel across
// them, and reshapes the flat results to the caller's input shape.
//
// What:
//
//   - Recycle repeats a shorter sequence cyclically to a target length
//     (truncating when the target is shorter; no divisibility rule).
//   - Reconcile derives the target count n from the primary argument
//     and recycles every other argument up to n, producing a Set of
//     aligned columns.
//   - ExpandGeoAxes promotes 1-D longitude/latitude axes to full
//     per-cell coordinate sequences when the primary argument is a
//     grid with matching extents (longitude varies fastest).
//   - Map invokes a kernel once per index and reapplies the primary
//     argument's descriptor to the flat result.
//   - MapPairs invokes a paired kernel once per adjacent index pair,
//     yielding three flat sequences of length n-1; grid primaries are
//     rejected before any kernel invocation.
//
// Why:
//
//   - Every public TEOS-10 operation shares this one reconciliation/
//     dispatch/reshape path, so the ~40 property functions reduce to
//     one-line kernel delegations.
//
// Numeric policy:
//
//   - NaN kernel results pass through reshaping untouched; they mark
//     physically invalid domains, not dispatch failures.
//
// Options:
//
//   - Options.Workers: number of parallel dispatch workers. Kernel
//     invocations are pure and index-independent, so work splits into
//     index-disjoint chunks with no locking; results are identical to
//     the serial path.
//
// Errors:
//
//   - ErrGridUnsupported: a paired-output operation received a grid
//     primary. There is no defined way to reshape n-1 results onto an
//     n-element grid, so the call fails before any kernel runs.
//
// Complexity: O(n·a) per call for n elements and a arguments;
// memory O(n·a) for the reconciled columns plus O(n) per result.
package broadcast
