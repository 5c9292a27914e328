package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ahp/matrix"
)

// ExampleDominant extracts the Perron eigenpair of a consistent judgment
// matrix and turns the eigenvector into weights summing to one.
func ExampleDominant() {
	m, err := matrix.NewFromRows([][]float64{
		{1, 2, 4},
		{0.5, 1, 2},
		{0.25, 0.5, 1},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	lambda, vec, err := matrix.Dominant(m, matrix.WithSolver(matrix.SolverPower))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	w, _, _ := matrix.NormalizeL1(vec)
	fmt.Printf("lambda=%.3f\nweights=[%.3f %.3f %.3f]\n", lambda, w[0], w[1], w[2])
	// Output:
	// lambda=3.000
	// weights=[0.571 0.286 0.143]
}

// ExampleValidateReciprocal shows how the offending cell is recovered.
func ExampleValidateReciprocal() {
	m, _ := matrix.NewFromRows([][]float64{{1, 2}, {0.6, 1}})
	err := matrix.ValidateReciprocal(m, 1e-6)

	var cell *matrix.CellError
	if errors.As(err, &cell) {
		fmt.Println(cell.Row, cell.Col, errors.Is(err, matrix.ErrNotReciprocal))
	}
	// Output:
	// 0 1 true
}
