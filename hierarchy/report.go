// SPDX-License-Identifier: MIT

package hierarchy

import "github.com/katalvlaran/ahp/pairwise"

// Section is the outcome of one comparison of the model.
type Section struct {
	Name        string // "criteria" or the criterion the alternatives were compared under
	Labels      []string
	Priorities  []float64
	Consistency pairwise.Consistency
}

// Report gathers every local result and the final ranking.
type Report struct {
	Goal     string
	Sections []Section // criteria first, then one per criterion in order
	Ranking  []Ranked
}

// Inconsistent returns the names of sections whose CR exceeds
// pairwise.AcceptableRatio.
func (r Report) Inconsistent() []string {
	var out []string
	for _, s := range r.Sections {
		if !s.Consistency.Acceptable() {
			out = append(out, s.Name)
		}
	}

	return out
}

// Report evaluates every comparison. It fails like Rank on an incomplete
// model and with modelerr.ErrStructure when a cluster is larger than the
// Random Index table.
func (m *Model) Report() (Report, error) {
	if err := m.complete("hierarchy.Report"); err != nil {
		return Report{}, err
	}
	rep := Report{Goal: m.goal}

	sec, err := section(m.criteria.Name(), m.criteriaCmp)
	if err != nil {
		return Report{}, err
	}
	rep.Sections = append(rep.Sections, sec)
	for _, crit := range m.criteria.Labels() {
		if sec, err = section(crit, m.localCmp[crit]); err != nil {
			return Report{}, err
		}
		rep.Sections = append(rep.Sections, sec)
	}

	if rep.Ranking, err = m.Rank(); err != nil {
		return Report{}, err
	}

	return rep, nil
}

func section(name string, c *pairwise.Comparison) (Section, error) {
	p, err := c.Priorities()
	if err != nil {
		return Section{}, err
	}
	cr, err := c.ConsistencyRatio()
	if err != nil {
		return Section{}, err
	}

	return Section{Name: name, Labels: c.Labels(), Priorities: p, Consistency: cr}, nil
}
