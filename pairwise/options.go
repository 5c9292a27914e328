// SPDX-License-Identifier: MIT

package pairwise

import (
	"math"

	"github.com/katalvlaran/ahp/matrix"
)

const (
	// DefaultTolerance bounds |A[i,i] − 1| and |A[i,j]·A[j,i] − 1| for New.
	DefaultTolerance = 1e-5

	// AcceptableRatio is Saaty's threshold: CR ≤ 0.10 is considered consistent.
	AcceptableRatio = 0.10
)

const panicToleranceInvalid = "pairwise: WithTolerance: tol must be finite, non-negative"

// Option configures construction and queries of a Comparison.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	tol      float64
	solver   matrix.Solver
	sentinel bool
}

// WithTolerance sets the diagonal and reciprocity tolerance used by New.
// Panics when tol is NaN, Inf or negative.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithSolver selects the eigen backend for PrincipalEigen.
func WithSolver(s matrix.Solver) Option {
	// matrix.WithSolver panics on unknown values; reuse its check.
	_ = matrix.WithSolver(s)

	return func(o *Options) { o.solver = s }
}

// WithSentinelUnset makes FromJudgments treat a pair reading (1, 1) as unset,
// the way scale.ApplyJudgment does, instead of tracking presence explicitly.
// An explicit judgment of 1 may then be overwritten by a later judgment.
func WithSentinelUnset() Option {
	return func(o *Options) { o.sentinel = true }
}

func gatherOptions(opts ...Option) Options {
	o := Options{tol: DefaultTolerance, solver: matrix.DefaultSolver}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
