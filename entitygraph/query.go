// SPDX-License-Identifier: MIT
//
// File: query.go
// Role: Node and edge lookups by attribute, metadata and node score.

package entitygraph

import (
	"reflect"
	"strings"
)

// QueryNodesByMetadata returns nodes whose Metadata[key] equals value.
func (g *Graph) QueryNodesByMetadata(key string, value any) []*Node {
	return g.filterNodes(func(n *Node) bool { return equalAt(n.Metadata, key, value) })
}

// QueryNodesByAttribute returns nodes whose attribute key (case-insensitive) equals value.
func (g *Graph) QueryNodesByAttribute(key string, value any) []*Node {
	lk := strings.ToLower(key)
	return g.filterNodes(func(n *Node) bool { return equalAt(n.Attributes, lk, value) })
}

// QueryNodesByAttributeOrMetadata combines QueryNodesByAttribute and QueryNodesByMetadata.
func (g *Graph) QueryNodesByAttributeOrMetadata(key string, value any) []*Node {
	lk := strings.ToLower(key)
	return g.filterNodes(func(n *Node) bool {
		return equalAt(n.Attributes, lk, value) || equalAt(n.Metadata, key, value)
	})
}

// QueryEdgesByMetadata returns edges whose free-form metadata (Extra[key]) equals value.
func (g *Graph) QueryEdgesByMetadata(key string, value any) []*Edge {
	out := make([]*Edge, 0)
	for p := g.edges.Oldest(); p != nil; p = p.Next() {
		if equalAt(p.Value.Extra, key, value) {
			out = append(out, p.Value)
		}
	}

	return out
}

// FindEdgesByNodeScoreThreshold returns edges whose node score for
// (nodeID, scoreType) is at least minScore. Missing scores read as 0, so a
// non-positive minScore matches every edge.
func (g *Graph) FindEdgesByNodeScoreThreshold(nodeID, scoreType string, minScore float64) []*Edge {
	out := make([]*Edge, 0)
	for p := g.edges.Oldest(); p != nil; p = p.Next() {
		if p.Value.NodeScore(nodeID, scoreType, 0) >= minScore {
			out = append(out, p.Value)
		}
	}

	return out
}

func (g *Graph) filterNodes(keep func(*Node) bool) []*Node {
	out := make([]*Node, 0)
	for p := g.nodes.Oldest(); p != nil; p = p.Next() {
		if keep(p.Value) {
			out = append(out, p.Value)
		}
	}

	return out
}

func equalAt(m map[string]any, key string, value any) bool {
	v, ok := m[key]
	return ok && reflect.DeepEqual(v, value)
}
