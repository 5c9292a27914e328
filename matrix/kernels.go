// SPDX-License-Identifier: MIT
// Package matrix - vector kernels shared by the eigen solvers and callers.
//
// Purpose:
//   - MatVec, row/column sums and L1 normalization with a *Dense fast-path.
//
// Notes:
//   - All kernels use central validators and wrap errors with an op tag.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value of every accumulator.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMatVec    = "MatVec"
	opRowSums   = "RowSums"
	opColSums   = "ColSums"
	opNormalize = "NormalizeL1"
)

// MatVec computes y = m·x.
// Implementation:
//   - Stage 1: ValidateNotNil(m), ValidateVecLen(x, Cols).
//   - Stage 2: *Dense fast-path over the flat buffer; otherwise At-based fallback.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with "MatVec").
// Complexity: Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// RowSums returns r where r[i] = Σ_j m[i,j] (MatVec against ones).
// Complexity: O(r*c).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	ones := make([]float64, m.Cols())
	for j := range ones {
		ones[j] = 1.0
	}
	y, err := MatVec(m, ones)
	if err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}

	return y, nil
}

// ColSums returns c where c[j] = Σ_i m[i,j].
// Complexity: O(r*c).
func ColSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColSums, err)
	}
	out := make([]float64, m.Cols())
	var v float64
	var err error
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opColSums, err)
			}
			out[j] += v
		}
	}

	return out, nil
}

// NormalizeL1 returns |x| / Σ|x| as a fresh slice, plus the L1 norm.
// Taking absolute values first removes the sign ambiguity of eigenvectors.
//
// Errors: ErrNilMatrix (nil/empty x), ErrNaNInf (non-finite entry or zero norm).
// Complexity: O(n).
func NormalizeL1(x []float64) ([]float64, float64, error) {
	if len(x) == 0 {
		return nil, 0, matrixErrorf(opNormalize, ErrNilMatrix)
	}
	norm := ZeroSum
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, 0, matrixErrorf(opNormalize, ErrNaNInf)
		}
		norm += math.Abs(v)
	}
	if norm == 0 {
		return nil, 0, matrixErrorf(opNormalize, fmt.Errorf("zero norm: %w", ErrNaNInf))
	}
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = math.Abs(v) / norm
	}

	return out, norm, nil
}
