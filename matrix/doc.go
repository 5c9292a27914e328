// Package matrix offers the dense numeric layer of the ahp engine.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with error-returning accessors and
//     an optional NaN/Inf ingestion policy.
//   - Validators for the structural invariants of reciprocal matrices
//     (positivity, unit diagonal, reciprocity) that report the offending cell
//     through *CellError.
//   - Vector kernels (MatVec, RowSums, ColSums, NormalizeL1).
//   - Dominant, the eigenpair with the largest real part, computed either by
//     a full general eigen decomposition or by power iteration.
//
// Comparison matrices are small (single digits to low hundreds), so every
// kernel favors determinism and clear errors over raw throughput.
//
// See the examples in this package and in pairwise for usage patterns.
package matrix
