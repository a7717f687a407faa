// SPDX-License-Identifier: MIT
//
// File: entity.go
// Role: Graph adapter over entitygraph.Graph.

package adapter

import (
	"slices"

	"github.com/katalvlaran/hypernest/entitygraph"
)

// EntityGraph adapts an *entitygraph.Graph. Node types come from the
// "node_type" attribute.
type EntityGraph struct {
	g *entitygraph.Graph
}

// NewEntityGraph wraps g.
func NewEntityGraph(g *entitygraph.Graph) *EntityGraph { return &EntityGraph{g: g} }

// IsValidNode implements Graph.
func (a *EntityGraph) IsValidNode(id string) bool { return a.g.HasNode(id) }

// NodeType implements Graph.
func (a *EntityGraph) NodeType(id string) string {
	if n, ok := a.g.Node(id); ok {
		return n.Type()
	}
	return ""
}

// Neighbors implements Graph.
func (a *EntityGraph) Neighbors(id string) []string {
	set := make(neighborSet)
	for _, e := range a.g.Edges() {
		if e.Touches(id) {
			set.add(e.Connected...)
		}
	}

	return set.sorted(id)
}

// EdgeScore implements Graph.
func (a *EntityGraph) EdgeScore(x, y string) float64 { return a.scan(x, y).score }

// EdgeWeight implements Weighter.
func (a *EntityGraph) EdgeWeight(x, y string) (float64, bool) {
	b := a.scan(x, y)
	return b.weight, b.found
}

func (a *EntityGraph) scan(x, y string) best {
	var b best
	for _, e := range a.g.Edges() {
		if slices.Contains(e.Connected, x) && slices.Contains(e.Connected, y) {
			b.observe(e.AlphaBeta(), e.EffectiveWeight())
		}
	}

	return b
}
