// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil/structure checks here.
//
// Determinism & Performance:
//  - All checks are pure and deterministic; cell scans run in fixed i→j order,
//    so the first reported violation is stable for a given input.
//  - Structural checks that locate a bad cell return *CellError wrapping the sentinel.
//
// Note:
//  - Each validator describes what it validates and what it assumes (e.g. no nil check).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil with length n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix) // reuse the "nil argument" sentinel
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidatePositive checks every entry is finite and strictly positive.
//
// Assumes: m is non-nil.
// Returns *CellError wrapping ErrNaNInf (non-finite) or ErrNonPositive (≤ 0)
// for the first offending cell in row-major order.
// Complexity: O(r*c).
func ValidatePositive(m Matrix) error {
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidatePositive", err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return &CellError{Op: "ValidatePositive", Row: i, Col: j, Value: v, Err: ErrNaNInf}
			}
			if v <= 0 {
				return &CellError{Op: "ValidatePositive", Row: i, Col: j, Value: v, Err: ErrNonPositive}
			}
		}
	}

	return nil
}

// ValidateUnitDiagonal checks |A[i,i] − 1| ≤ tol for all i.
//
// Assumes: m is square.
// Returns *CellError wrapping ErrNonUnitDiagonal for the first offending i.
// Complexity: O(n).
func ValidateUnitDiagonal(m Matrix, tol float64) error {
	tol = math.Abs(tol)
	var v float64
	var err error
	for i := 0; i < m.Rows(); i++ {
		if v, err = m.At(i, i); err != nil {
			return validatorErrorf("ValidateUnitDiagonal", err)
		}
		if math.Abs(v-1.0) > tol {
			return &CellError{Op: "ValidateUnitDiagonal", Row: i, Col: i, Value: v, Err: ErrNonUnitDiagonal}
		}
	}

	return nil
}

// ValidateReciprocal checks |A[i,j]·A[j,i] − 1| ≤ tol for all i<j.
//
// Assumes: m is square with positive entries.
// Returns *CellError (Row=i, Col=j, Value=A[i,j]) wrapping ErrNotReciprocal for
// the first offending pair in upper-triangle i→j order.
// Complexity: O(n^2) over the strict upper triangle. Space: O(1).
func ValidateReciprocal(m Matrix, tol float64) error {
	tol = math.Abs(tol)
	n := m.Rows()
	var (
		i, j     int
		aij, aji float64
		err      error
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if aij, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateReciprocal", err)
			}
			if aji, err = m.At(j, i); err != nil {
				return validatorErrorf("ValidateReciprocal", err)
			}
			if math.Abs(aij*aji-1.0) > tol {
				return &CellError{Op: "ValidateReciprocal", Row: i, Col: j, Value: aij, Err: ErrNotReciprocal}
			}
		}
	}

	return nil
}
