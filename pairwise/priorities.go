// SPDX-License-Identifier: MIT

package pairwise

import (
	"fmt"

	"github.com/katalvlaran/ahp/matrix"
	"github.com/katalvlaran/ahp/modelerr"
	"github.com/katalvlaran/ahp/scale"
)

// Consistency summarizes how transitive a set of judgments is.
type Consistency struct {
	Ratio     float64 // CR = CI / RI(n); 0 for n ≤ 2
	Index     float64 // CI = (λmax − n) / (n − 1); 0 for n = 1
	LambdaMax float64 // principal eigenvalue, ≥ n
}

// Acceptable reports CR ≤ AcceptableRatio.
func (c Consistency) Acceptable() bool { return c.Ratio <= AcceptableRatio }

// eigen computes and memoizes the principal eigenpair.
func (c *Comparison) eigen() {
	c.once.Do(func() {
		lambda, vec, err := matrix.Dominant(c.m, matrix.WithSolver(c.opts.solver))
		if err != nil {
			c.eigenErr = fmt.Errorf("pairwise.PrincipalEigen: %w", err)
			return
		}
		p, _, err := matrix.NormalizeL1(vec)
		if err != nil {
			c.eigenErr = fmt.Errorf("pairwise.PrincipalEigen: %w", err)
			return
		}
		// λmax ≥ n holds for positive reciprocal matrices; anything below is
		// round-off on a consistent matrix.
		if n := float64(len(c.labels)); lambda < n {
			lambda = n
		}
		c.lambdaMax, c.priorities = lambda, p
	})
}

// PrincipalEigen returns λmax and the priority vector: the dominant
// eigenvector taken element-wise absolute and normalized to sum to 1, in
// label order. Repeated calls return identical results.
func (c *Comparison) PrincipalEigen() (float64, []float64, error) {
	c.eigen()
	if c.eigenErr != nil {
		return 0, nil, c.eigenErr
	}

	return c.lambdaMax, append([]float64(nil), c.priorities...), nil
}

// Priorities returns the priority vector only.
func (c *Comparison) Priorities() ([]float64, error) {
	_, p, err := c.PrincipalEigen()

	return p, err
}

// PriorityMap returns the priority of each label.
func (c *Comparison) PriorityMap() (map[string]float64, error) {
	p, err := c.Priorities()
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(p))
	for i, l := range c.labels {
		out[l] = p[i]
	}

	return out, nil
}

// ConsistencyRatio returns CR, CI and λmax.
// Orders above scale.MaxOrder have no Random Index and fail with
// modelerr.ErrStructure.
func (c *Comparison) ConsistencyRatio() (Consistency, error) {
	n := len(c.labels)
	ri, err := scale.RandomIndex(n)
	if err != nil {
		return Consistency{}, modelerr.Newf(modelerr.KindStructure, "pairwise.ConsistencyRatio",
			"no Random Index for %d labels", n).Wrap(err)
	}
	lambda, _, err := c.PrincipalEigen()
	if err != nil {
		return Consistency{}, err
	}

	res := Consistency{LambdaMax: lambda}
	if n > 1 {
		res.Index = (lambda - float64(n)) / float64(n-1)
	}
	if n > 2 {
		res.Ratio = res.Index / ri
	}

	return res, nil
}

// ApproximatePriorities returns the additive-normalization estimate of the
// priority vector: every column is divided by its sum and the rows of the
// result are averaged. It equals Priorities when the judgments are perfectly
// consistent and drifts from it as CR grows, which makes it a cheap cross-check
// of the eigenvector.
func (c *Comparison) ApproximatePriorities() ([]float64, error) {
	const op = "pairwise.ApproximatePriorities"
	cols, err := matrix.ColSums(c.m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	n := len(c.labels)
	norm := c.m.Clone()
	var v float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v, err = norm.At(i, j); err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
			if err = norm.Set(i, j, v/cols[j]); err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
		}
	}

	w, err := matrix.RowSums(norm)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for i := range w {
		w[i] /= float64(n)
	}

	return w, nil
}
