// SPDX-License-Identifier: MIT

package pairwise

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/ahp/matrix"
	"github.com/katalvlaran/ahp/modelerr"
)

const (
	opNew = "pairwise.New"
	opAt  = "pairwise.At"
)

// Comparison is a validated AHP comparison matrix over an ordered label set.
// Construct it with New, FromJudgments or FromJudgmentMap; the zero value is
// not usable. A *Comparison must not be copied.
type Comparison struct {
	labels []string
	index  map[string]int
	m      *matrix.Dense
	judged int
	opts   Options

	once       sync.Once
	lambdaMax  float64
	priorities []float64
	eigenErr   error
}

// New validates a complete comparison matrix and binds it to labels.
// rows is copied; later changes to it do not affect the Comparison.
//
// Errors (first failing check wins):
//   - modelerr.ErrStructure: empty or duplicate labels, rows not n×n,
//     diagonal entry not 1 within tolerance.
//   - modelerr.ErrNormalization: an entry is ≤ 0, NaN or Inf.
//   - modelerr.ErrConsistency: A[i,j]·A[j,i] differs from 1 beyond tolerance.
func New(labels []string, rows [][]float64, opts ...Option) (*Comparison, error) {
	o := gatherOptions(opts...)
	c, err := newComparison(opNew, labels, o)
	if err != nil {
		return nil, err
	}
	n := len(labels)

	// Stage 1: shape.
	if len(rows) != n {
		return nil, modelerr.Newf(modelerr.KindStructure, opNew,
			"matrix shape: %d rows, want %d (one per label)", len(rows), n)
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, modelerr.Newf(modelerr.KindStructure, opNew,
				"matrix shape: row %d (%s) has %d columns, want %d", i, labels[i], len(row), n)
		}
	}
	// NaN/Inf are reported as positivity failures below, not at ingestion.
	if c.m, err = matrix.NewFromRows(rows, matrix.WithNoValidateNaNInf()); err != nil {
		return nil, modelerr.New(modelerr.KindStructure, opNew, "matrix shape").Wrap(err)
	}

	// Stage 2: positivity.
	if err = matrix.ValidatePositive(c.m); err != nil {
		return nil, c.cellError(modelerr.KindNormalization, "all comparison values must be positive", err)
	}

	// Stage 3: diagonal.
	if err = matrix.ValidateUnitDiagonal(c.m, o.tol); err != nil {
		return nil, c.cellError(modelerr.KindStructure, "all diagonal values must be 1.0", err)
	}

	// Stage 4: reciprocity.
	if err = matrix.ValidateReciprocal(c.m, o.tol); err != nil {
		return nil, c.cellError(modelerr.KindConsistency, "matrix is not reciprocal", err)
	}

	return c, nil
}

// newComparison checks labels and builds the label index.
func newComparison(op string, labels []string, o Options) (*Comparison, error) {
	if len(labels) == 0 {
		return nil, modelerr.New(modelerr.KindStructure, op, "at least one label is required")
	}
	index := make(map[string]int, len(labels))
	for i, l := range labels {
		if _, dup := index[l]; dup {
			return nil, modelerr.Newf(modelerr.KindStructure, op, "duplicate label %q", l).WithLabels(l)
		}
		index[l] = i
	}

	return &Comparison{
		labels: append([]string(nil), labels...),
		index:  index,
		opts:   o,
	}, nil
}

// cellError translates a matrix validator failure into a model error that
// names the offending labels.
func (c *Comparison) cellError(k modelerr.Kind, msg string, err error) error {
	e := modelerr.New(k, opNew, msg).Wrap(err)
	var ce *matrix.CellError
	if errors.As(err, &ce) {
		e.WithValues(ce.Value)
		if ce.Row == ce.Col {
			e.WithLabels(c.labels[ce.Row])
		} else {
			e.WithLabels(c.labels[ce.Row], c.labels[ce.Col])
		}
	}

	return e
}

// Labels returns a copy of the ordered label set.
func (c *Comparison) Labels() []string { return append([]string(nil), c.labels...) }

// Order returns n, the number of compared items.
func (c *Comparison) Order() int { return len(c.labels) }

// Judged returns the number of distinct pairs recorded by FromJudgments or
// FromJudgmentMap. It is 0 for a Comparison built with New.
func (c *Comparison) Judged() int { return c.judged }

// At returns the judgment "a over b". Unknown labels fail with
// modelerr.ErrUnknownLabel.
func (c *Comparison) At(a, b string) (float64, error) {
	i, err := c.lookup(opAt, a)
	if err != nil {
		return 0, err
	}
	j, err := c.lookup(opAt, b)
	if err != nil {
		return 0, err
	}

	return c.m.At(i, j)
}

// Rows returns a copy of the matrix, one slice per label.
func (c *Comparison) Rows() [][]float64 {
	rows, _ := matrix.ToRows(c.m) // c.m is never nil after construction

	return rows
}

// Matrix returns a copy of the underlying dense matrix.
func (c *Comparison) Matrix() matrix.Matrix { return c.m.Clone() }

// String identifies the entity and its labels, for logs.
func (c *Comparison) String() string {
	return fmt.Sprintf("pairwise.Comparison{labels: %v}", c.labels)
}

func (c *Comparison) lookup(op, label string) (int, error) {
	if i, ok := c.index[label]; ok {
		return i, nil
	}

	return 0, modelerr.Newf(modelerr.KindUnknownLabel, op, "label %q is not declared", label).
		WithLabels(label).
		WithAllowed(c.labels)
}
