// SPDX-License-Identifier: MIT

package hierarchy

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/ahp/modelerr"
	"github.com/katalvlaran/ahp/pairwise"
)

// Model is a goal with one criteria cluster and one alternatives cluster.
type Model struct {
	goal         string
	criteria     *Cluster
	alternatives *Cluster
	clusters     []*Cluster
	opts         []pairwise.Option

	criteriaCmp *pairwise.Comparison
	localCmp    map[string]*pairwise.Comparison // keyed by criterion
}

// Ranked is one alternative with its synthesized global score.
type Ranked struct {
	Label string
	Score float64
}

// NewModel registers both clusters. opts are passed to every comparison the
// model builds. The two clusters must have different names
// (modelerr.ErrDuplicatedCluster).
func NewModel(goal string, criteria, alternatives *Cluster, opts ...pairwise.Option) (*Model, error) {
	const op = "hierarchy.NewModel"
	if criteria == nil || alternatives == nil {
		return nil, modelerr.New(modelerr.KindStructure, op, "criteria and alternatives clusters are required")
	}
	m := &Model{
		goal:         goal,
		criteria:     criteria,
		alternatives: alternatives,
		opts:         opts,
		localCmp:     make(map[string]*pairwise.Comparison, criteria.Size()),
	}
	if err := m.AddCluster(criteria); err != nil {
		return nil, err
	}
	if err := m.AddCluster(alternatives); err != nil {
		return nil, err
	}

	return m, nil
}

// AddCluster registers an extra cluster. Names are unique within a model.
func (m *Model) AddCluster(c *Cluster) error {
	const op = "hierarchy.AddCluster"
	if c == nil {
		return modelerr.New(modelerr.KindStructure, op, "nil cluster")
	}
	for _, have := range m.clusters {
		if have.Name() == c.Name() {
			return modelerr.Newf(modelerr.KindDuplicatedCluster, op,
				"cluster %q already registered", c.Name()).WithLabels(c.Name())
		}
	}
	m.clusters = append(m.clusters, c)

	return nil
}

// Goal returns the goal description.
func (m *Model) Goal() string { return m.goal }

// Criteria returns the criteria cluster.
func (m *Model) Criteria() *Cluster { return m.criteria }

// Alternatives returns the alternatives cluster.
func (m *Model) Alternatives() *Cluster { return m.alternatives }

// Clusters returns every registered cluster in registration order.
func (m *Model) Clusters() []*Cluster { return append([]*Cluster(nil), m.clusters...) }

// CompareCriteria builds the criteria comparison from judgments, replacing
// any previous one.
func (m *Model) CompareCriteria(judgments []pairwise.Judgment) (*pairwise.Comparison, error) {
	c, err := pairwise.FromJudgments(m.criteria.Labels(), judgments, m.opts...)
	if err != nil {
		return nil, err
	}
	m.criteriaCmp = c

	return c, nil
}

// SetCriteriaComparison installs a prebuilt comparison; its labels must be
// the criteria labels in order.
func (m *Model) SetCriteriaComparison(c *pairwise.Comparison) error {
	if err := sameLabels("hierarchy.SetCriteriaComparison", m.criteria, c); err != nil {
		return err
	}
	m.criteriaCmp = c

	return nil
}

// CompareAlternatives builds the comparison of the alternatives with
// respect to one criterion. Unknown criteria fail with
// modelerr.ErrUnknownLabel.
func (m *Model) CompareAlternatives(criterion string, judgments []pairwise.Judgment) (*pairwise.Comparison, error) {
	if err := m.checkCriterion("hierarchy.CompareAlternatives", criterion); err != nil {
		return nil, err
	}
	c, err := pairwise.FromJudgments(m.alternatives.Labels(), judgments, m.opts...)
	if err != nil {
		return nil, err
	}
	m.localCmp[criterion] = c

	return c, nil
}

// SetAlternativeComparison installs a prebuilt comparison of the
// alternatives with respect to criterion.
func (m *Model) SetAlternativeComparison(criterion string, c *pairwise.Comparison) error {
	const op = "hierarchy.SetAlternativeComparison"
	if err := m.checkCriterion(op, criterion); err != nil {
		return err
	}
	if err := sameLabels(op, m.alternatives, c); err != nil {
		return err
	}
	m.localCmp[criterion] = c

	return nil
}

// CriteriaComparison returns the criteria comparison, or nil if unset.
func (m *Model) CriteriaComparison() *pairwise.Comparison { return m.criteriaCmp }

// AlternativeComparison returns the comparison under criterion, or nil.
func (m *Model) AlternativeComparison(criterion string) *pairwise.Comparison {
	return m.localCmp[criterion]
}

// Rank synthesizes global scores and returns the alternatives sorted by
// descending score, ties broken by label.
func (m *Model) Rank() ([]Ranked, error) {
	const op = "hierarchy.Rank"
	if err := m.complete(op); err != nil {
		return nil, err
	}
	weights, err := m.criteriaCmp.Priorities()
	if err != nil {
		return nil, err
	}

	alts := m.alternatives.Labels()
	scores := make([]float64, len(alts))
	for ci, crit := range m.criteria.Labels() {
		local, err := m.localCmp[crit].Priorities()
		if err != nil {
			return nil, err
		}
		for ai := range alts {
			scores[ai] += weights[ci] * local[ai]
		}
	}

	out := make([]Ranked, len(alts))
	for i, a := range alts {
		out[i] = Ranked{Label: a, Score: scores[i]}
	}
	slices.SortStableFunc(out, func(x, y Ranked) int {
		return cmp.Or(cmp.Compare(y.Score, x.Score), cmp.Compare(x.Label, y.Label))
	})

	return out, nil
}

func (m *Model) complete(op string) error {
	if m.criteriaCmp == nil {
		return modelerr.New(modelerr.KindStructure, op, "criteria have not been compared")
	}
	for _, crit := range m.criteria.Labels() {
		if m.localCmp[crit] == nil {
			return modelerr.Newf(modelerr.KindStructure, op,
				"alternatives have not been compared under %q", crit).WithLabels(crit)
		}
	}

	return nil
}

func (m *Model) checkCriterion(op, criterion string) error {
	if !m.criteria.Contains(criterion) {
		return modelerr.Newf(modelerr.KindUnknownLabel, op, "criterion %q is not declared", criterion).
			WithLabels(criterion).
			WithAllowed(m.criteria.Labels())
	}

	return nil
}

func sameLabels(op string, cl *Cluster, c *pairwise.Comparison) error {
	if c == nil {
		return modelerr.New(modelerr.KindStructure, op, "nil comparison")
	}
	if !slices.Equal(cl.Labels(), c.Labels()) {
		return modelerr.Newf(modelerr.KindStructure, op,
			"comparison labels %v do not match cluster %q", c.Labels(), cl.Name()).
			WithLabels(c.Labels()...).
			WithAllowed(cl.Labels())
	}

	return nil
}
