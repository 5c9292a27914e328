// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for validators and eigen kernels.
//   • Keep all data finite and well-formed unless a test targets the numeric policy.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/ahp/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the At/Set fallback paths in kernels.
type hide struct{ matrix.Matrix }

// MustRows builds a *Dense from a row literal or fails the test.
func MustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		t.Fatalf("NewFromRows(%v): %v", rows, err)
	}

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// ConsistentRows returns the perfectly consistent matrix w_i/w_j.
func ConsistentRows(w []float64) [][]float64 {
	rows := make([][]float64, len(w))
	for i := range w {
		rows[i] = make([]float64, len(w))
		for j := range w {
			rows[i][j] = w[i] / w[j]
		}
	}

	return rows
}

// saatyRows is a classic slightly inconsistent 4×4 judgment matrix.
var saatyRows = [][]float64{
	{1, 3, 5, 9},
	{1.0 / 3, 1, 2, 4},
	{1.0 / 5, 1.0 / 2, 1, 3},
	{1.0 / 9, 1.0 / 4, 1.0 / 3, 1},
}
