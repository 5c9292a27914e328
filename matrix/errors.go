// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels (optionally wrapped with an op tag via
// %w) and tests match them via errors.Is. No kernel panics on user input.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping.
// Wrap with fmt.Errorf("ctx: %w", ErrX) at the boundary; callers keep errors.Is.
//
// ERROR PRIORITY (enforced in validators and tests):
// nil -> shape -> NaN/Inf -> positivity -> diagonal -> reciprocity.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// a non-square matrix where a square one is required, or ragged rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNonPositive signals an entry ≤ 0 in a matrix that must be strictly positive.
	ErrNonPositive = errors.New("matrix: entry is not positive")

	// ErrNonUnitDiagonal signals a diagonal entry that is not 1 within tolerance.
	ErrNonUnitDiagonal = errors.New("matrix: diagonal entry is not 1 within tol")

	// ErrNotReciprocal signals a pair with A[i,j]*A[j,i] != 1 within tolerance.
	ErrNotReciprocal = errors.New("matrix: matrix is not reciprocal within tol")

	// ErrEigenFailed indicates that an eigen routine failed to factorize or
	// converge under the given tolerance/iterations.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")

	// ErrComplexEigen indicates that the dominant eigenvalue has a non-negligible
	// imaginary part, so no real principal eigenpair exists.
	ErrComplexEigen = errors.New("matrix: dominant eigenvalue is complex")
)

// CellError pins a sentinel to the matrix cell that triggered it.
// Validators return it so callers can translate (Row, Col) into their own
// coordinates (e.g. labels) via errors.As.
type CellError struct {
	Op       string  // validator or kernel tag
	Row, Col int     // offending coordinates
	Value    float64 // offending value (A[Row,Col])
	Err      error   // underlying sentinel
}

// Error implements error.
func (e *CellError) Error() string {
	return fmt.Sprintf("%s(%d,%d)=%g: %v", e.Op, e.Row, e.Col, e.Value, e.Err)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *CellError) Unwrap() error { return e.Err }

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
