// SPDX-License-Identifier: MIT
//
// File: hypergraph.go
// Role: Graph adapter over hypergraph.Hypergraph.

package adapter

import (
	"slices"

	"github.com/katalvlaran/hypernest/core"
	"github.com/katalvlaran/hypernest/hypergraph"
)

// Hypergraph adapts a *hypergraph.Hypergraph. Aggregator edges are ignored.
type Hypergraph struct {
	h *hypergraph.Hypergraph
}

// NewHypergraph wraps h.
func NewHypergraph(h *hypergraph.Hypergraph) *Hypergraph { return &Hypergraph{h: h} }

// IsValidNode implements Graph.
func (a *Hypergraph) IsValidNode(id string) bool { return a.h.HasNode(id) }

// NodeType implements Graph.
func (a *Hypergraph) NodeType(id string) string {
	if n, ok := a.h.Node(id); ok {
		return n.Type
	}
	return ""
}

// Neighbors implements Graph.
func (a *Hypergraph) Neighbors(id string) []string {
	set := make(neighborSet)
	for _, e := range a.h.Edges() {
		set.add(reach(e, id)...)
	}

	return set.sorted(id)
}

// EdgeScore implements Graph.
func (a *Hypergraph) EdgeScore(x, y string) float64 { return a.scan(x, y).score }

// EdgeWeight implements Weighter.
func (a *Hypergraph) EdgeWeight(x, y string) (float64, bool) {
	b := a.scan(x, y)
	return b.weight, b.found
}

func (a *Hypergraph) scan(x, y string) best {
	var b best
	for _, e := range a.h.Edges() {
		if joins(e, x, y) {
			head := e.Head()
			b.observe(head.AlphaBeta(), head.EffectiveWeight())
		}
	}

	return b
}

// reach returns the node IDs e makes adjacent to id.
func reach(e core.Hyperedge, id string) []string {
	switch x := e.(type) {
	case *core.Simple:
		if slices.Contains(x.Nodes, id) {
			return x.Nodes
		}
	case *core.Directed, *core.NodeDirected:
		src, tgt, _ := core.Endpoints(x)
		if slices.Contains(src, id) {
			return tgt
		}
		if slices.Contains(tgt, id) {
			return src
		}
	}

	return nil
}

// joins reports whether e connects a and b in either orientation.
func joins(e core.Hyperedge, a, b string) bool {
	switch x := e.(type) {
	case *core.Simple:
		return slices.Contains(x.Nodes, a) && slices.Contains(x.Nodes, b)
	case *core.Directed, *core.NodeDirected:
		src, tgt, _ := core.Endpoints(x)
		return (slices.Contains(src, a) && slices.Contains(tgt, b)) ||
			(slices.Contains(src, b) && slices.Contains(tgt, a))
	default:
		return false
	}
}
