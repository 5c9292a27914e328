// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ahp/matrix"
)

func TestValidateSquare(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.ErrorIs(t, matrix.ValidateSquare(m), matrix.ErrDimensionMismatch)
	assert.NoError(t, matrix.ValidateSquare(MustRows(t, [][]float64{{1}})))
}

func TestValidateVecLen(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, matrix.ValidateVecLen(nil, 1), matrix.ErrNilMatrix)
	assert.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	assert.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
}

// TestValidators_ReportOffendingCell checks every structural validator
// returns a *CellError pointing at the first violation in i→j order.
func TestValidators_ReportOffendingCell(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		rows     [][]float64
		check    func(matrix.Matrix) error
		sentinel error
		row, col int
	}{
		{
			name:     "non-positive",
			rows:     [][]float64{{1, -2}, {-0.5, 1}},
			check:    matrix.ValidatePositive,
			sentinel: matrix.ErrNonPositive,
			row:      0, col: 1,
		},
		{
			name:     "zero entry",
			rows:     [][]float64{{1, 2}, {0, 1}},
			check:    matrix.ValidatePositive,
			sentinel: matrix.ErrNonPositive,
			row:      1, col: 0,
		},
		{
			name:     "diagonal",
			rows:     [][]float64{{1, 2}, {0.5, 2}},
			check:    func(m matrix.Matrix) error { return matrix.ValidateUnitDiagonal(m, 1e-9) },
			sentinel: matrix.ErrNonUnitDiagonal,
			row:      1, col: 1,
		},
		{
			name:     "reciprocal",
			rows:     [][]float64{{1, 2, 4}, {0.5, 1, 3}, {0.25, 0.5, 1}},
			check:    func(m matrix.Matrix) error { return matrix.ValidateReciprocal(m, 1e-9) },
			sentinel: matrix.ErrNotReciprocal,
			row:      1, col: 2,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.check(MustRows(t, tc.rows))
			require.ErrorIs(t, err, tc.sentinel)
			var cell *matrix.CellError
			require.True(t, errors.As(err, &cell))
			assert.Equal(t, tc.row, cell.Row)
			assert.Equal(t, tc.col, cell.Col)
		})
	}
}

func TestValidators_AcceptReciprocalMatrix(t *testing.T) {
	t.Parallel()

	m := MustRows(t, saatyRows)
	assert.NoError(t, matrix.ValidatePositive(m))
	assert.NoError(t, matrix.ValidateUnitDiagonal(m, 1e-12))
	assert.NoError(t, matrix.ValidateReciprocal(m, 1e-12))
	assert.NoError(t, matrix.ValidateReciprocal(hide{m}, 1e-12))
}
