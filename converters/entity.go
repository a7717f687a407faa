// SPDX-License-Identifier: MIT
//
// File: entity.go
// Role: Entity graph <-> hypergraph conversion and entity-graph embedding.

package converters

import (
	"fmt"
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/katalvlaran/hypernest/core"
	"github.com/katalvlaran/hypernest/entitygraph"
	"github.com/katalvlaran/hypernest/hypergraph"
)

// Embedding constants used by IntegrateEntityGraph.
const (
	HypergraphNodeType    = "hypergraph"
	EmbeddedHypergraphKey = "embedded_hypergraph"
	entityHypergraphIDFmt = "hg_%s"
)

// EntityToHypergraph converts g into a hypergraph named "hg_<name>".
//
// Implementation:
//   - Stage 1: copy nodes (attributes and metadata).
//   - Stage 2: group edges by Origin in first-appearance order; each group is
//     merged into one hyperedge of its OriginKind. Edges without an Origin
//     convert one to one.
//
// Complexity:
//   - Time O(V·A + Σ|e|), Space O(V + E).
func EntityToHypergraph(g *entitygraph.Graph) (*hypergraph.Hypergraph, error) {
	h := hypergraph.New(fmt.Sprintf(entityHypergraphIDFmt, g.Name))
	for _, n := range g.Nodes() {
		typ := n.Type()
		if typ == "" {
			typ = core.DefaultNodeType
		}
		node := core.NewNode(n.ID, typ, core.WithAttributes(n.Attributes), core.WithNodeMetadata(n.Metadata))
		if err := h.AddNode(node); err != nil {
			return nil, err
		}
	}

	groups := orderedmap.New[string, []*entitygraph.Edge]()
	for _, e := range g.Edges() {
		key := e.Origin
		if key == "" {
			key = e.ID
		}
		prev, _ := groups.Get(key)
		groups.Set(key, append(prev, e))
	}
	for p := groups.Oldest(); p != nil; p = p.Next() {
		if err := h.AddEdge(mergeEntityEdges(p.Key, p.Value)); err != nil {
			return nil, err
		}
	}

	return h, nil
}

// mergeEntityEdges rebuilds one hyperedge from the edges sharing an origin.
func mergeEntityEdges(id string, parts []*entitygraph.Edge) core.Hyperedge {
	first := parts[0]
	opts := []core.EdgeOption{core.WithWeight(first.Weight), core.WithEdgeMetadata(first.Metadata.Clone())}

	kind := first.OriginKind
	if first.Origin == "" {
		kind = core.KindSimple
		if first.Directed() {
			kind = core.KindNodeDirected
		}
	}
	switch kind {
	case core.KindDirected, core.KindNodeDirected:
		var sources, targets []string
		for _, e := range parts {
			sources = appendUnique(sources, e.Sources...)
			targets = appendUnique(targets, e.Targets...)
		}
		if kind == core.KindDirected {
			return core.NewDirected(id, sources, targets, first.Modality, opts...)
		}
		return core.NewNodeDirected(id, sources, targets, first.Modality, opts...)
	default:
		if len(parts) == 1 {
			return core.NewSimple(id, append([]string(nil), first.Connected...), first.Modality, opts...)
		}
		var members []string
		for _, e := range parts {
			members = appendUnique(members, e.Connected...)
		}
		return core.NewSimple(id, members, first.Modality, opts...)
	}
}

// HypergraphToEntity converts h into an entity graph called name.
//
// Behavior highlights:
//   - Node attributes and metadata are copied; a non-default node type is
//     written to the "node_type" attribute unless one is already present.
//   - Split edges record the hyperedge in Origin/OriginKind and carry a clone
//     of its metadata and its base weight.
//   - Aggregators are skipped.
func HypergraphToEntity(h *hypergraph.Hypergraph, name string) (*entitygraph.Graph, error) {
	g := entitygraph.New(name)
	for _, n := range h.Nodes() {
		en := entitygraph.NewNode(n.ID, n.Attributes(), n.Metadata)
		if _, ok := en.Attribute(entitygraph.NodeTypeKey); !ok && n.Type != core.DefaultNodeType {
			en.SetAttribute(entitygraph.NodeTypeKey, n.Type)
		}
		if err := g.AddNode(en); err != nil {
			return nil, err
		}
	}

	for _, he := range h.Edges() {
		head := he.Head()
		var parts []*entitygraph.Edge
		switch x := he.(type) {
		case *core.Simple:
			for i := 0; i < len(x.Nodes); i++ {
				for j := i + 1; j < len(x.Nodes); j++ {
					id := fmt.Sprintf("%s_e%d_%d", head.ID, i, j)
					parts = append(parts, entitygraph.NewEdge(id, []string{x.Nodes[i], x.Nodes[j]}, head.Modality))
				}
			}
		case *core.Directed, *core.NodeDirected:
			src, tgt, _ := core.Endpoints(x)
			for i, s := range src {
				for j, t := range tgt {
					id := fmt.Sprintf("%s_d%d_%d", head.ID, i, j)
					parts = append(parts, entitygraph.NewDirectedEdge(id, []string{s}, []string{t}, head.Modality))
				}
			}
		}
		for _, e := range parts {
			e.Origin, e.OriginKind = head.ID, he.Kind()
			e.Weight = head.Weight
			e.Metadata = head.Metadata.Clone()
			if err := g.AddEdge(e); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// IntegrateEntityGraph converts g with EntityToHypergraph and adds a node of
// type "hypergraph" to host whose metadata holds the sub-hypergraph under
// "embedded_hypergraph". The sub-hypergraph is returned.
func IntegrateEntityGraph(host *hypergraph.Hypergraph, g *entitygraph.Graph) (*hypergraph.Hypergraph, error) {
	sub, err := EntityToHypergraph(g)
	if err != nil {
		return nil, err
	}
	node := core.NewNode(sub.ID, HypergraphNodeType, core.WithNodeMetadata(map[string]any{EmbeddedHypergraphKey: sub}))
	if err := host.AddNode(node); err != nil {
		return nil, err
	}

	return sub, nil
}

// EmbeddedHypergraph returns the sub-hypergraph stored on an integration node.
func EmbeddedHypergraph(n *core.Node) (*hypergraph.Hypergraph, bool) {
	if n == nil {
		return nil, false
	}
	sub, ok := n.Metadata[EmbeddedHypergraphKey].(*hypergraph.Hypergraph)

	return sub, ok
}

func appendUnique(dst []string, ids ...string) []string {
	for _, id := range ids {
		if !slices.Contains(dst, id) {
			dst = append(dst, id)
		}
	}

	return dst
}
