// Package pairwise implements the AHP comparison matrix: a labeled, square,
// positive, reciprocal matrix of judgments plus the queries derived from it.
//
// Construction
//
//	New(labels, rows)                 complete matrix, validated once
//	FromJudgments(labels, judgments)  seeded with ones, filled judgment by judgment
//	FromJudgmentMap(labels, pairs)    same, map input applied in sorted key order
//
// Validation order for New (first failure wins):
//
//	labels (non-empty, unique)        modelerr.ErrStructure
//	shape  (n×n, n = len(labels))     modelerr.ErrStructure
//	positivity (finite, > 0)          modelerr.ErrNormalization
//	unit diagonal                     modelerr.ErrStructure
//	reciprocity  A[i,j]·A[j,i] ≈ 1    modelerr.ErrConsistency
//
// New does not require entries to lie on the Saaty scale; a matrix supplied
// whole may come from elsewhere. Judgments, on the other hand, are checked
// against the scale one by one (see package scale), and a conflicting
// restatement of a pair fails with modelerr.ErrConsistency.
//
// Queries
//
// PrincipalEigen, Priorities, PriorityMap and ConsistencyRatio are pure: the
// eigenpair is computed on first use and memoized per instance. A Comparison
// is immutable after construction and safe for concurrent reads.
//
// Complexity: construction O(n²); the first query costs one dense eigen
// decomposition, O(n³).
package pairwise
