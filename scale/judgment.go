// SPDX-License-Identifier: MIT

package scale

import (
	"math"

	"github.com/katalvlaran/ahp/matrix"
	"github.com/katalvlaran/ahp/modelerr"
)

const opApply = "scale.ApplyJudgment"

// ApplyJudgment records "labelI is value times as important as labelJ" into m:
// m[i,j] = value and m[j,i] = 1/value.
//
// Implementation:
//   - Stage 1: reject off-scale value (ErrInvalidSaatyScale, allowed list attached).
//   - Stage 2: read the current pair; it counts as unset when both entries are
//     ≈1 (the all-ones start of a fresh comparison matrix).
//   - Stage 3: when set, the new (value, 1/value) must match the recorded pair
//     within Tolerance, else ErrConsistency with both pairs attached.
//   - Stage 4: write both entries.
//
// A genuine judgment of 1 is indistinguishable from unset here, so a later
// conflicting judgment silently replaces it; Ledger.Apply closes that gap.
// Self-comparison (i == j) accepts only 1 and leaves m unchanged.
func ApplyJudgment(m matrix.Matrix, i, j int, value float64, labelI, labelJ string) error {
	return apply(m, i, j, value, labelI, labelJ, nil)
}

// Ledger tracks which unordered pairs of an n×n comparison matrix have been
// explicitly judged. It replaces the unit sentinel of ApplyJudgment.
// A Ledger belongs to one matrix and is not safe for concurrent use.
type Ledger struct {
	n     int
	seen  []bool // n*n, only the upper triangle (i<j) is used
	count int
}

// NewLedger returns an empty ledger for an n×n matrix.
func NewLedger(n int) *Ledger {
	if n < 0 {
		n = 0
	}

	return &Ledger{n: n, seen: make([]bool, n*n)}
}

// Recorded reports whether the unordered pair {i, j} has a judgment.
// Out-of-range indices and the diagonal report false.
func (l *Ledger) Recorded(i, j int) bool {
	if i > j {
		i, j = j, i
	}
	if i < 0 || j >= l.n || i == j {
		return false
	}

	return l.seen[i*l.n+j]
}

// Count returns the number of distinct judged pairs.
func (l *Ledger) Count() int { return l.count }

// Apply has the ApplyJudgment contract, except that "unset" means "never
// recorded in this ledger": an explicit judgment of 1 is protected like any
// other value.
func (l *Ledger) Apply(m matrix.Matrix, i, j int, value float64, labelI, labelJ string) error {
	if i < 0 || j < 0 || i >= l.n || j >= l.n {
		return modelerr.Newf(modelerr.KindStructure, opApply,
			"pair (%d,%d) outside ledger of order %d", i, j, l.n).WithLabels(labelI, labelJ)
	}
	recorded := l.Recorded(i, j)
	if err := apply(m, i, j, value, labelI, labelJ, &recorded); err != nil {
		return err
	}
	if i != j && !recorded {
		lo, hi := min(i, j), max(i, j)
		l.seen[lo*l.n+hi] = true
		l.count++
	}

	return nil
}

// apply is the shared judgment kernel. recorded == nil selects the unit
// sentinel; otherwise *recorded is the explicit presence flag.
func apply(m matrix.Matrix, i, j int, value float64, labelI, labelJ string, recorded *bool) error {
	if !IsValid(value) {
		return modelerr.Newf(modelerr.KindInvalidScale, opApply,
			"judgment (%s vs %s) = %s must be in Saaty's scale", labelI, labelJ, Format(value)).
			WithLabels(labelI, labelJ).
			WithValues(value).
			WithAllowed(PrettyScale())
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return modelerr.New(modelerr.KindStructure, opApply, "comparison matrix must be square").Wrap(err)
	}
	if i == j {
		if math.Abs(value-1) <= Tolerance {
			return nil
		}

		return modelerr.Newf(modelerr.KindStructure, opApply,
			"self-comparison of %q must be 1", labelI).WithLabels(labelI).WithValues(value)
	}

	reciprocal, err := Reciprocal(value)
	if err != nil {
		return err
	}
	existing, err := m.At(i, j)
	if err != nil {
		return modelerr.New(modelerr.KindStructure, opApply, "pair index out of range").
			WithLabels(labelI, labelJ).Wrap(err)
	}
	existingRec, err := m.At(j, i)
	if err != nil {
		return modelerr.New(modelerr.KindStructure, opApply, "pair index out of range").
			WithLabels(labelI, labelJ).Wrap(err)
	}

	var unset bool
	if recorded == nil {
		unset = closeTo(existing, 1) && closeTo(existingRec, 1)
	} else {
		unset = !*recorded
	}
	if !unset && !(closeTo(existing, value) && closeTo(existingRec, reciprocal)) {
		return modelerr.Newf(modelerr.KindConsistency, opApply,
			"inconsistent judgments for (%s, %s): existing=(%g, %g), new=(%g, %g)",
			labelI, labelJ, existing, existingRec, value, reciprocal).
			WithLabels(labelI, labelJ).
			WithValues(existing, existingRec, value, reciprocal)
	}

	if err = m.Set(i, j, value); err != nil {
		return modelerr.New(modelerr.KindStructure, opApply, "write failed").Wrap(err)
	}
	if err = m.Set(j, i, reciprocal); err != nil {
		return modelerr.New(modelerr.KindStructure, opApply, "write failed").Wrap(err)
	}

	return nil
}

func closeTo(a, b float64) bool { return math.Abs(a-b) <= Tolerance }
