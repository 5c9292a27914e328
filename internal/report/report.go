// SPDX-License-Identifier: MIT

// Package report renders engine results for the ahp command as a terminal
// table (lipgloss), JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ahp/hierarchy"
	"github.com/katalvlaran/ahp/pairwise"
	"github.com/katalvlaran/ahp/scale"
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts text, json or yaml.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("report: unknown format %q (want text, json or yaml)", s)
	}
}

// Consistency mirrors pairwise.Consistency with stable field names.
type Consistency struct {
	LambdaMax  float64 `json:"lambda_max" yaml:"lambda_max"`
	Index      float64 `json:"ci" yaml:"ci"`
	Ratio      float64 `json:"cr" yaml:"cr"`
	Acceptable bool    `json:"acceptable" yaml:"acceptable"`
}

func fromConsistency(c pairwise.Consistency) Consistency {
	return Consistency{LambdaMax: c.LambdaMax, Index: c.Index, Ratio: c.Ratio, Acceptable: c.Acceptable()}
}

// Weight is one label and its priority. Approximate is the
// additive-normalization estimate, set for standalone comparisons only.
type Weight struct {
	Label       string  `json:"label" yaml:"label"`
	Priority    float64 `json:"priority" yaml:"priority"`
	Approximate float64 `json:"approximate,omitempty" yaml:"approximate,omitempty"`
}

func weights(labels []string, p []float64) []Weight {
	out := make([]Weight, len(labels))
	for i, l := range labels {
		out[i] = Weight{Label: l, Priority: p[i]}
	}

	return out
}

// Comparison is the result of one comparison.
type Comparison struct {
	Name        string      `json:"name,omitempty" yaml:"name,omitempty"`
	Judged      int         `json:"judged" yaml:"judged"`
	Weights     []Weight    `json:"weights" yaml:"weights"`
	Consistency Consistency `json:"consistency" yaml:"consistency"`
}

// FromComparison evaluates c.
func FromComparison(c *pairwise.Comparison) (Comparison, error) {
	p, err := c.Priorities()
	if err != nil {
		return Comparison{}, err
	}
	approx, err := c.ApproximatePriorities()
	if err != nil {
		return Comparison{}, err
	}
	cr, err := c.ConsistencyRatio()
	if err != nil {
		return Comparison{}, err
	}

	ws := weights(c.Labels(), p)
	for i := range ws {
		ws[i].Approximate = approx[i]
	}

	return Comparison{Judged: c.Judged(), Weights: ws, Consistency: fromConsistency(cr)}, nil
}

// Score is one ranked alternative.
type Score struct {
	Rank  int     `json:"rank" yaml:"rank"`
	Label string  `json:"label" yaml:"label"`
	Score float64 `json:"score" yaml:"score"`
}

// Model is the result of a whole hierarchy.
type Model struct {
	Goal         string       `json:"goal" yaml:"goal"`
	Comparisons  []Comparison `json:"comparisons" yaml:"comparisons"`
	Ranking      []Score      `json:"ranking" yaml:"ranking"`
	Inconsistent []string     `json:"inconsistent,omitempty" yaml:"inconsistent,omitempty"`
}

// FromReport converts a hierarchy report.
func FromReport(r hierarchy.Report) Model {
	out := Model{Goal: r.Goal, Inconsistent: r.Inconsistent()}
	for _, s := range r.Sections {
		out.Comparisons = append(out.Comparisons, Comparison{
			Name:        s.Name,
			Weights:     weights(s.Labels, s.Priorities),
			Consistency: fromConsistency(s.Consistency),
		})
	}
	for i, rk := range r.Ranking {
		out.Ranking = append(out.Ranking, Score{Rank: i + 1, Label: rk.Label, Score: rk.Score})
	}

	return out
}

// ScaleEntry is one Random Index row.
type ScaleEntry struct {
	Order       int     `json:"n" yaml:"n"`
	RandomIndex float64 `json:"ri" yaml:"ri"`
}

// Scale describes the judgment scale and the Random Index table.
type Scale struct {
	Values      []string     `json:"values" yaml:"values"`
	RandomIndex []ScaleEntry `json:"random_index" yaml:"random_index"`
}

// ScaleInfo collects the scale constants.
func ScaleInfo() Scale {
	s := Scale{Values: scale.PrettyScale()}
	tbl := scale.RandomIndexTable()
	for n := scale.MinOrder; n <= scale.MaxOrder; n++ {
		s.RandomIndex = append(s.RandomIndex, ScaleEntry{Order: n, RandomIndex: tbl[n]})
	}

	return s
}

// encode writes v as JSON or YAML.
func encode(w io.Writer, f Format, v any) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}

		return enc.Close()
	default:
		return fmt.Errorf("report: format %q is not a data encoding", f)
	}
}
