// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for ingestion and eigen kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// Solver selects the algorithm used by Dominant.
type Solver uint8

const (
	// SolverGeneral runs a full dense general (non-symmetric) eigen
	// decomposition and picks the eigenvalue with the largest real part.
	SolverGeneral Solver = iota

	// SolverPower runs deterministic power iteration from the uniform vector.
	// Converges for strictly positive matrices (Perron–Frobenius), which is
	// exactly the class of reciprocal comparison matrices.
	SolverPower
)

// String returns a stable solver name for logs and reports.
func (s Solver) String() string {
	switch s {
	case SolverGeneral:
		return "general"
	case SolverPower:
		return "power"
	default:
		return "unknown"
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true

	// DefaultSolver is the eigen backend used by Dominant.
	DefaultSolver = SolverGeneral

	// DefaultTolerance is the convergence threshold of power iteration
	// (max-norm of the change between successive L1-normalized iterates).
	DefaultTolerance = 1e-12

	// DefaultMaxIter caps power-iteration steps.
	DefaultMaxIter = 10000
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid = "matrix: WithTolerance: tol must be finite, positive"
	panicMaxIterInvalid   = "matrix: WithMaxIter: n must be > 0"
	panicSolverInvalid    = "matrix: WithSolver: unknown solver"
)

// Option mutates internal options. Safe to apply repeatedly (last-writer-wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	validateNaNInf bool    // DefaultValidateNaNInf
	solver         Solver  // DefaultSolver
	tol            float64 // DefaultTolerance
	maxIter        int     // DefaultMaxIter
}

// WithValidateNaNInf enables NaN/Inf rejection on ingestion (default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf rejection on ingestion.
// Intended for callers that sanitize upstream; downstream validators still
// reject non-finite entries where positivity is required.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithSolver selects the eigen backend used by Dominant.
// Panics on an unknown Solver value (programmer error).
func WithSolver(s Solver) Option {
	if s != SolverGeneral && s != SolverPower {
		panic(panicSolverInvalid)
	}

	return func(o *Options) { o.solver = s }
}

// WithTolerance sets the power-iteration convergence tolerance.
// Panics when tol is NaN, Inf or ≤ 0.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxIter caps the number of power-iteration steps. Panics when n ≤ 0.
func WithMaxIter(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// gatherOptions applies user-provided setters on top of defaults, in order.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
		solver:         DefaultSolver,
		tol:            DefaultTolerance,
		maxIter:        DefaultMaxIter,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
