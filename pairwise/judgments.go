// SPDX-License-Identifier: MIT

package pairwise

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/ahp/matrix"
	"github.com/katalvlaran/ahp/modelerr"
	"github.com/katalvlaran/ahp/scale"
)

const opFromJudgments = "pairwise.FromJudgments"

// Judgment states that A is Value times as important as B.
type Judgment struct {
	A, B  string
	Value float64
}

// Pair is an ordered label pair, the key of FromJudgmentMap.
type Pair struct {
	A, B string
}

// FromJudgments builds a Comparison from sparse judgments applied in slice
// order. Pairs never judged stay at 1 (equal importance).
//
// Implementation:
//   - Stage 1: validate labels and seed an n×n matrix of ones.
//   - Stage 2: for each judgment resolve both labels (modelerr.ErrUnknownLabel)
//     and record it through the scale package, which rejects off-scale values
//     (modelerr.ErrInvalidSaatyScale) and conflicting restatements of a pair
//     (modelerr.ErrConsistency).
//
// Presence is tracked explicitly, so an explicit 1 conflicts with a later 3
// for the same pair; WithSentinelUnset restores the permissive behavior.
// No partially built Comparison is ever returned.
func FromJudgments(labels []string, judgments []Judgment, opts ...Option) (*Comparison, error) {
	o := gatherOptions(opts...)
	c, err := newComparison(opFromJudgments, labels, o)
	if err != nil {
		return nil, err
	}
	if c.m, err = matrix.NewFilled(len(labels), 1); err != nil {
		return nil, modelerr.New(modelerr.KindStructure, opFromJudgments, "seed matrix").Wrap(err)
	}

	ledger := scale.NewLedger(len(labels))
	seen := make(map[[2]int]struct{}) // sentinel mode only
	var i, j int
	for _, jd := range judgments {
		if i, err = c.lookup(opFromJudgments, jd.A); err != nil {
			return nil, err
		}
		if j, err = c.lookup(opFromJudgments, jd.B); err != nil {
			return nil, err
		}
		if o.sentinel {
			err = scale.ApplyJudgment(c.m, i, j, jd.Value, jd.A, jd.B)
			if err == nil && i != j {
				seen[[2]int{min(i, j), max(i, j)}] = struct{}{}
			}
		} else {
			err = ledger.Apply(c.m, i, j, jd.Value, jd.A, jd.B)
		}
		if err != nil {
			return nil, err
		}
	}

	c.judged = ledger.Count()
	if o.sentinel {
		c.judged = len(seen)
	}

	return c, nil
}

// FromJudgmentMap is FromJudgments over a map. Keys are applied sorted by
// (A, B) so that the first reported failure is stable across runs.
func FromJudgmentMap(labels []string, judgments map[Pair]float64, opts ...Option) (*Comparison, error) {
	keys := make([]Pair, 0, len(judgments))
	for k := range judgments {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(x, y Pair) int {
		return cmp.Or(cmp.Compare(x.A, y.A), cmp.Compare(x.B, y.B))
	})

	list := make([]Judgment, len(keys))
	for k, p := range keys {
		list[k] = Judgment{A: p.A, B: p.B, Value: judgments[p]}
	}

	return FromJudgments(labels, list, opts...)
}
