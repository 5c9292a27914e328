// SPDX-License-Identifier: MIT

package hierarchy

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/ahp/modelerr"
)

// Node is one element of a hierarchy: a criterion or an alternative.
type Node struct {
	Name        string
	Description string
}

// NewNode returns a Node; description may be empty.
func NewNode(name, description string) Node {
	return Node{Name: name, Description: description}
}

// Cluster is a named, ordered group of uniquely named nodes. The node order
// is the label order of every comparison over the cluster.
type Cluster struct {
	name  string
	nodes []Node
	index map[string]int
}

// NewCluster validates and groups nodes. An empty cluster name, an empty
// node name or a repeated node name fail with modelerr.ErrStructure.
func NewCluster(name string, nodes ...Node) (*Cluster, error) {
	const op = "hierarchy.NewCluster"
	if strings.TrimSpace(name) == "" {
		return nil, modelerr.New(modelerr.KindStructure, op, "cluster name is empty")
	}
	if len(nodes) == 0 {
		return nil, modelerr.Newf(modelerr.KindStructure, op, "cluster %q has no nodes", name)
	}
	index := make(map[string]int, len(nodes))
	for i, n := range nodes {
		if strings.TrimSpace(n.Name) == "" {
			return nil, modelerr.Newf(modelerr.KindStructure, op, "cluster %q: node %d has no name", name, i)
		}
		if _, dup := index[n.Name]; dup {
			return nil, modelerr.Newf(modelerr.KindStructure, op,
				"cluster %q: duplicate node %q", name, n.Name).WithLabels(n.Name)
		}
		index[n.Name] = i
	}

	return &Cluster{name: name, nodes: append([]Node(nil), nodes...), index: index}, nil
}

// Name returns the cluster name.
func (c *Cluster) Name() string { return c.name }

// Size returns the number of nodes.
func (c *Cluster) Size() int { return len(c.nodes) }

// Nodes returns a copy of the nodes in order.
func (c *Cluster) Nodes() []Node { return append([]Node(nil), c.nodes...) }

// Labels returns the node names in order.
func (c *Cluster) Labels() []string {
	out := make([]string, len(c.nodes))
	for i, n := range c.nodes {
		out[i] = n.Name
	}

	return out
}

// Contains reports whether a node with that name belongs to c.
func (c *Cluster) Contains(name string) bool {
	_, ok := c.index[name]

	return ok
}

// String renders "hierarchy.Cluster{name: criteria, nodes: [price quality]}".
func (c *Cluster) String() string {
	return fmt.Sprintf("hierarchy.Cluster{name: %s, nodes: %v}", c.name, c.Labels())
}
