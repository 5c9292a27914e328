// SPDX-License-Identifier: MIT
package matrix

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDefaultOptions_Documented verifies that gatherOptions() equals documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := gatherOptions()

	assert.Equal(t, DefaultValidateNaNInf, o.validateNaNInf)
	assert.Equal(t, DefaultSolver, o.solver)
	assert.Equal(t, DefaultTolerance, o.tol)
	assert.Equal(t, DefaultMaxIter, o.maxIter)
}

// TestOptions_LastWriterWins checks that setters apply in order and nil setters are skipped.
func TestOptions_LastWriterWins(t *testing.T) {
	o := gatherOptions(
		WithSolver(SolverPower),
		WithNoValidateNaNInf(),
		nil,
		WithTolerance(1e-6),
		WithTolerance(1e-9),
		WithMaxIter(5),
		WithValidateNaNInf(),
	)

	assert.Equal(t, SolverPower, o.solver)
	assert.True(t, o.validateNaNInf)
	assert.Equal(t, 1e-9, o.tol)
	assert.Equal(t, 5, o.maxIter)
}

// TestOptions_PanicsOnNonsense covers every guarded constructor.
func TestOptions_PanicsOnNonsense(t *testing.T) {
	for name, fn := range map[string]func(){
		"tol zero":     func() { WithTolerance(0) },
		"tol NaN":      func() { WithTolerance(math.NaN()) },
		"tol Inf":      func() { WithTolerance(math.Inf(1)) },
		"maxIter zero": func() { WithMaxIter(0) },
		"solver":       func() { WithSolver(Solver(7)) },
	} {
		assert.Panics(t, fn, name)
	}
	assert.Equal(t, "unknown", Solver(7).String())
}
