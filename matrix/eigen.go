// SPDX-License-Identifier: MIT
// Package matrix - dominant eigenpair of a general (non-symmetric) square matrix.
//
// Purpose:
//   - Dominant returns the eigenpair whose eigenvalue has the largest real part.
//   - Two interchangeable backends, selected by WithSolver:
//     SolverGeneral (dense Hessenberg/QR eigen decomposition from gonum/mat) and
//     SolverPower (deterministic power iteration on the flat Dense buffer).
//
// Determinism:
//   - Fixed loop orders; power iteration starts from the uniform vector.
//   - The eigenvector is returned as computed (sign is solver-defined);
//     use NormalizeL1 to obtain a sign-free, sum-to-one vector.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const opDominant = "Dominant"

// complexTol bounds |Im λ| / max(1, |Re λ|) for an accepted dominant eigenvalue.
const complexTol = 1e-9

// Dominant computes the eigenpair (λ, v) of m with the largest Re(λ).
// Implementation:
//   - Stage 1: ValidateSquare; reject non-finite entries (ErrNaNInf).
//   - Stage 2: dispatch to the configured solver.
//
// Inputs:
//   - m: square Matrix.
//   - opts: WithSolver, WithTolerance, WithMaxIter.
//
// Returns:
//   - float64: λ (real part; the imaginary part is verified negligible).
//   - []float64: v, a real eigenvector for λ (not normalized).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf, ErrNonPositive (power only),
//     ErrEigenFailed, ErrComplexEigen; all wrapped with "Dominant".
//
// Complexity:
//   - General: O(n^3) time, O(n^2) space.
//   - Power: O(k·n^2) time for k iterations, O(n) extra space.
func Dominant(m Matrix, opts ...Option) (float64, []float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, nil, matrixErrorf(opDominant, err)
	}
	o := gatherOptions(opts...)

	var (
		lambda float64
		vec    []float64
		err    error
	)
	switch o.solver {
	case SolverPower:
		lambda, vec, err = dominantPower(m, o)
	default:
		lambda, vec, err = dominantGeneral(m)
	}
	if err != nil {
		return 0, nil, matrixErrorf(opDominant, err)
	}

	return lambda, vec, nil
}

// dominantGeneral factorizes m with gonum's general eigen solver and picks the
// eigenvalue with the largest real part.
func dominantGeneral(m Matrix) (float64, []float64, error) {
	n := m.Rows()
	flat := make([]float64, 0, n*n)
	var v float64
	var err error
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return 0, nil, err
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, nil, &CellError{Op: opDominant, Row: i, Col: j, Value: v, Err: ErrNaNInf}
			}
			flat = append(flat, v)
		}
	}

	var eig mat.Eigen
	if ok := eig.Factorize(mat.NewDense(n, n, flat), mat.EigenRight); !ok {
		return 0, nil, ErrEigenFailed
	}
	values := eig.Values(nil)
	best := 0
	for k := 1; k < len(values); k++ {
		if real(values[k]) > real(values[best]) {
			best = k
		}
	}
	lambda := values[best]
	if math.Abs(imag(lambda)) > complexTol*math.Max(1, math.Abs(real(lambda))) {
		return 0, nil, fmt.Errorf("λ=%v: %w", lambda, ErrComplexEigen)
	}

	var vectors mat.CDense
	eig.VectorsTo(&vectors)
	vec := make([]float64, n)
	for i := 0; i < n; i++ {
		vec[i] = real(vectors.At(i, best))
	}

	return real(lambda), vec, nil
}

// dominantPower runs power iteration x_{k+1} = A·x_k / ‖A·x_k‖₁ from x_0 = 1/n.
// For a strictly positive A the iterates stay positive and converge to the
// Perron vector; λ is recovered as Σ(A·x)/Σx.
// Stops when max_i |x_{k+1,i} − x_{k,i}| < tol; ErrEigenFailed after maxIter.
func dominantPower(m Matrix, o Options) (float64, []float64, error) {
	if err := ValidatePositive(m); err != nil {
		return 0, nil, err
	}
	n := m.Rows()
	x := make([]float64, n)
	for i := range x {
		x[i] = 1.0 / float64(n)
	}

	var (
		iter      int
		y, next   []float64
		diff, sum float64
		err       error
		converged bool
	)
	for iter = 0; iter < o.maxIter; iter++ {
		if y, err = MatVec(m, x); err != nil {
			return 0, nil, err
		}
		if next, _, err = NormalizeL1(y); err != nil {
			return 0, nil, err
		}
		diff = ZeroSum
		for i := range x {
			diff = math.Max(diff, math.Abs(next[i]-x[i]))
		}
		x = next
		if diff < o.tol {
			converged = true
			break
		}
	}
	if !converged {
		return 0, nil, fmt.Errorf("no convergence after %d iterations: %w", o.maxIter, ErrEigenFailed)
	}

	// x sums to 1, so λ = Σ(A·x).
	if y, err = MatVec(m, x); err != nil {
		return 0, nil, err
	}
	sum = ZeroSum
	for _, yi := range y {
		sum += yi
	}

	return sum, x, nil
}
