// Package matrix_test provides benchmarks for the eigen backends,
// using deterministic random reciprocal matrices.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/ahp/matrix"
)

// benchSizes cover the realistic range of comparison matrices.
var benchSizes = []int{3, 9, 15, 64}

// sinks to defeat dead-code elimination
var (
	sinkV []float64
	sinkF float64
)

// randomReciprocal fills an n×n reciprocal matrix with judgments from 1..9.
func randomReciprocal(b *testing.B, n int, seed int64) *matrix.Dense {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewFilled(n, 1)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := float64(rng.Intn(9) + 1)
			if rng.Intn(2) == 0 {
				v = 1 / v
			}
			_ = m.Set(i, j, v)
			_ = m.Set(j, i, 1/v)
		}
	}

	return m
}

func BenchmarkDominant(b *testing.B) {
	for _, s := range solvers {
		for _, n := range benchSizes {
			b.Run(fmt.Sprintf("%s/n=%d", s, n), func(b *testing.B) {
				m := randomReciprocal(b, n, 1337)
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					lambda, vec, err := matrix.Dominant(m, matrix.WithSolver(s))
					if err != nil {
						b.Fatal(err)
					}
					sinkF, sinkV = lambda, vec
				}
			})
		}
	}
}
