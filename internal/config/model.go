// SPDX-License-Identifier: MIT

package config

import (
	"io"

	"github.com/katalvlaran/ahp/hierarchy"
	"github.com/katalvlaran/ahp/modelerr"
)

// Node is a criterion or an alternative.
type Node struct {
	Name        string `yaml:"name" validate:"required"`
	Description string `yaml:"description"`
}

// Cluster is a named group of nodes.
type Cluster struct {
	Name  string `yaml:"name" validate:"required"`
	Nodes []Node `yaml:"nodes" validate:"required,min=1,dive"`
}

func (c Cluster) build() (*hierarchy.Cluster, error) {
	nodes := make([]hierarchy.Node, len(c.Nodes))
	for i, n := range c.Nodes {
		nodes[i] = hierarchy.NewNode(n.Name, n.Description)
	}

	return hierarchy.NewCluster(c.Name, nodes...)
}

// ModelDoc is the document read by "ahp rank".
type ModelDoc struct {
	Settings `yaml:",inline"`

	Goal         string  `yaml:"goal" validate:"required"`
	Criteria     Cluster `yaml:"criteria"`
	Alternatives Cluster `yaml:"alternatives"`

	// CriteriaComparison compares the criteria with each other.
	CriteriaComparison Comparison `yaml:"criteria_comparison"`

	// AlternativeComparisons compares the alternatives under each criterion,
	// keyed by criterion name.
	AlternativeComparisons map[string]Comparison `yaml:"alternative_comparisons" validate:"required,dive"`
}

// Build constructs and fills the model. Comparisons keyed by an undeclared
// criterion fail with modelerr.ErrUnknownLabel.
func (d *ModelDoc) Build() (*hierarchy.Model, error) {
	criteria, err := d.Criteria.build()
	if err != nil {
		return nil, err
	}
	alternatives, err := d.Alternatives.build()
	if err != nil {
		return nil, err
	}
	opts, err := d.Options()
	if err != nil {
		return nil, err
	}
	m, err := hierarchy.NewModel(d.Goal, criteria, alternatives, opts...)
	if err != nil {
		return nil, err
	}

	c, err := d.CriteriaComparison.Build(criteria.Labels(), opts...)
	if err != nil {
		return nil, err
	}
	if err = m.SetCriteriaComparison(c); err != nil {
		return nil, err
	}

	for crit := range d.AlternativeComparisons {
		if !criteria.Contains(crit) {
			return nil, modelerr.Newf(modelerr.KindUnknownLabel, "config.ModelDoc.Build",
				"alternative comparison for undeclared criterion %q", crit).
				WithLabels(crit).
				WithAllowed(criteria.Labels())
		}
	}
	// Criteria order keeps the first reported failure stable.
	for _, crit := range criteria.Labels() {
		cmp, ok := d.AlternativeComparisons[crit]
		if !ok {
			continue
		}
		local, err := cmp.Build(alternatives.Labels(), opts...)
		if err != nil {
			return nil, err
		}
		if err = m.SetAlternativeComparison(crit, local); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// ReadModel decodes and validates a model document.
func ReadModel(r io.Reader) (*ModelDoc, error) {
	var d ModelDoc
	if err := decode(r, &d); err != nil {
		return nil, err
	}

	return &d, nil
}

// LoadModel reads a model document from path.
func LoadModel(path string) (*ModelDoc, error) {
	var d ModelDoc
	if err := decodeFile(path, &d); err != nil {
		return nil, err
	}

	return &d, nil
}
