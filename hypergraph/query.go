// SPDX-License-Identifier: MIT
//
// File: query.go
// Role: Attribute/metadata lookups over nodes.

package hypergraph

import (
	"reflect"
	"strings"

	"github.com/katalvlaran/hypernest/core"
)

// QueryMetadata returns the nodes whose attribute key, or metadata entry
// under the lower-cased key, equals value. Nodes are returned in insertion order.
func (h *Hypergraph) QueryMetadata(key string, value any) []*core.Node {
	lk := strings.ToLower(key)
	out := make([]*core.Node, 0)
	for p := h.nodes.Oldest(); p != nil; p = p.Next() {
		n := p.Value
		if v, ok := n.Attribute(lk); ok && reflect.DeepEqual(v, value) {
			out = append(out, n)
			continue
		}
		if v, ok := n.Metadata[lk]; ok && reflect.DeepEqual(v, value) {
			out = append(out, n)
		}
	}

	return out
}

// EdgesOf returns the non-aggregator edges that reference nodeID, in insertion order.
func (h *Hypergraph) EdgesOf(nodeID string) []core.Hyperedge {
	out := make([]core.Hyperedge, 0)
	for p := h.edges.Oldest(); p != nil; p = p.Next() {
		if _, nested := p.Value.(*core.Aggregator); nested {
			continue
		}
		for _, id := range core.NodeIDs(p.Value) {
			if id == nodeID {
				out = append(out, p.Value)
				break
			}
		}
	}

	return out
}
