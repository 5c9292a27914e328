// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ahp/matrix"
)

func TestMatVec_FastPathMatchesFallback(t *testing.T) {
	t.Parallel()

	m := MustRows(t, saatyRows)
	x := []float64{0.4, 0.3, 0.2, 0.1}
	fast, err := matrix.MatVec(m, x)
	require.NoError(t, err)
	slow, err := matrix.MatVec(hide{m}, x)
	require.NoError(t, err)
	assert.InDeltaSlice(t, fast, slow, 1e-15)

	_, err = matrix.MatVec(m, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestRowAndColSums(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]float64{{1, 2, 4}, {0.5, 1, 2}, {0.25, 0.5, 1}})
	rs, err := matrix.RowSums(m)
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 3.5, 1.75}, rs)

	cs, err := matrix.ColSums(m)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.75, 3.5, 7}, cs)
}

func TestNormalizeL1(t *testing.T) {
	t.Parallel()

	out, norm, err := matrix.NormalizeL1([]float64{-2, -1, -1})
	require.NoError(t, err)
	assert.Equal(t, 4.0, norm)
	assert.Equal(t, []float64{0.5, 0.25, 0.25}, out)

	_, _, err = matrix.NormalizeL1([]float64{0, 0})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
	_, _, err = matrix.NormalizeL1([]float64{1, math.NaN()})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
	_, _, err = matrix.NormalizeL1(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
