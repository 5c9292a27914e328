// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"io"

	"github.com/katalvlaran/ahp/modelerr"
	"github.com/katalvlaran/ahp/pairwise"
	"github.com/katalvlaran/ahp/scale"
)

// Judgment is one "a over b" statement.
type Judgment struct {
	A     string `yaml:"a" validate:"required"`
	B     string `yaml:"b" validate:"required"`
	Value string `yaml:"value" validate:"required"`
}

// Comparison holds either judgments or a complete matrix, never both.
// Neither means "all items equally important".
type Comparison struct {
	Judgments []Judgment `yaml:"judgments" validate:"omitempty,dive"`
	Matrix    [][]string `yaml:"matrix" validate:"omitempty,excluded_with=Judgments,dive,dive,required"`
}

// Build parses the values and constructs the comparison over labels.
func (c Comparison) Build(labels []string, opts ...pairwise.Option) (*pairwise.Comparison, error) {
	if c.Matrix != nil {
		rows := make([][]float64, len(c.Matrix))
		for i, row := range c.Matrix {
			rows[i] = make([]float64, len(row))
			for j, s := range row {
				v, err := scale.Parse(s)
				if err != nil {
					return nil, err
				}
				rows[i][j] = v
			}
		}

		return pairwise.New(labels, rows, opts...)
	}

	js := make([]pairwise.Judgment, len(c.Judgments))
	for k, j := range c.Judgments {
		v, err := scale.Parse(j.Value)
		if err != nil {
			var me *modelerr.Error
			if errors.As(err, &me) {
				me.WithLabels(j.A, j.B)
			}

			return nil, err
		}
		js[k] = pairwise.Judgment{A: j.A, B: j.B, Value: v}
	}

	return pairwise.FromJudgments(labels, js, opts...)
}

// ComparisonDoc is the document read by "ahp priorities".
type ComparisonDoc struct {
	Settings   `yaml:",inline"`
	Labels     []string `yaml:"labels" validate:"required,min=1,unique,dive,required"`
	Comparison `yaml:",inline"`
}

// Build constructs the comparison described by d.
func (d *ComparisonDoc) Build() (*pairwise.Comparison, error) {
	opts, err := d.Options()
	if err != nil {
		return nil, err
	}

	return d.Comparison.Build(d.Labels, opts...)
}

// ReadComparison decodes and validates a comparison document.
func ReadComparison(r io.Reader) (*ComparisonDoc, error) {
	var d ComparisonDoc
	if err := decode(r, &d); err != nil {
		return nil, err
	}

	return &d, nil
}

// LoadComparison reads a comparison document from path.
func LoadComparison(path string) (*ComparisonDoc, error) {
	var d ComparisonDoc
	if err := decodeFile(path, &d); err != nil {
		return nil, err
	}

	return &d, nil
}
