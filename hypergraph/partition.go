// SPDX-License-Identifier: MIT
//
// File: partition.go
// Role: Required-attribute partitions over nodes and hyperedges.

package hypergraph

import (
	"reflect"
	"sort"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/katalvlaran/hypernest/core"
)

// Partition is the subset of a hypergraph whose nodes carry every required
// attribute, together with the edges that only reference such nodes.
type Partition struct {
	ID string
	// Required holds the lower-cased required attribute keys, sorted.
	Required []string

	nodes *orderedmap.OrderedMap[string, *core.Node]
	edges *orderedmap.OrderedMap[string, core.Hyperedge]
}

// NewPartition creates an empty partition. Keys are matched case-insensitively.
func NewPartition(id string, required ...string) *Partition {
	keys := make([]string, 0, len(required))
	seen := make(map[string]struct{}, len(required))
	for _, k := range required {
		k = strings.ToLower(k)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return &Partition{
		ID:       id,
		Required: keys,
		nodes:    orderedmap.New[string, *core.Node](),
		edges:    orderedmap.New[string, core.Hyperedge](),
	}
}

// Admits reports whether n carries every required attribute.
func (p *Partition) Admits(n *core.Node) bool {
	if n == nil {
		return false
	}
	for _, k := range p.Required {
		if !n.HasAttribute(k) {
			return false
		}
	}

	return true
}

// AddNode adds n if it carries every required attribute and reports whether it did.
func (p *Partition) AddNode(n *core.Node) bool {
	if !p.Admits(n) {
		return false
	}
	p.nodes.Set(n.ID, n)

	return true
}

// AddEdge adds e if every node it references (aggregators resolved
// recursively) is already in the partition, and reports whether it did.
// An edge referencing no nodes is admitted.
func (p *Partition) AddEdge(e core.Hyperedge) bool {
	if e == nil {
		return false
	}
	for _, id := range core.NodeIDs(e) {
		if !p.HasNode(id) {
			return false
		}
	}
	p.edges.Set(e.Head().ID, e)

	return true
}

// HasNode reports whether id is a partition node.
func (p *Partition) HasNode(id string) bool {
	_, ok := p.nodes.Get(id)
	return ok
}

// HasEdge reports whether id is a partition edge.
func (p *Partition) HasEdge(id string) bool {
	_, ok := p.edges.Get(id)
	return ok
}

// NodeIDs returns partition node IDs in insertion order.
func (p *Partition) NodeIDs() []string {
	out := make([]string, 0, p.nodes.Len())
	for pr := p.nodes.Oldest(); pr != nil; pr = pr.Next() {
		out = append(out, pr.Key)
	}

	return out
}

// EdgeIDs returns partition edge IDs in insertion order.
func (p *Partition) EdgeIDs() []string {
	out := make([]string, 0, p.edges.Len())
	for pr := p.edges.Oldest(); pr != nil; pr = pr.Next() {
		out = append(out, pr.Key)
	}

	return out
}

// Edges returns partition edges in insertion order.
func (p *Partition) Edges() []core.Hyperedge {
	out := make([]core.Hyperedge, 0, p.edges.Len())
	for pr := p.edges.Oldest(); pr != nil; pr = pr.Next() {
		out = append(out, pr.Value)
	}

	return out
}

// FilterByMetadata returns the partition edges whose free-form metadata
// (Metadata.Extra) holds value under key.
func (p *Partition) FilterByMetadata(key string, value any) []core.Hyperedge {
	out := make([]core.Hyperedge, 0)
	for pr := p.edges.Oldest(); pr != nil; pr = pr.Next() {
		if v, ok := pr.Value.Head().ExtraValue(key); ok && reflect.DeepEqual(v, value) {
			out = append(out, pr.Value)
		}
	}

	return out
}

// CreatePartition builds a partition from h's current nodes and edges,
// stores it under id (replacing an older one) and returns it.
//
// Complexity:
//   - Time O(V·R + Σ|e|) for R required keys.
func (h *Hypergraph) CreatePartition(id string, required ...string) *Partition {
	part := NewPartition(id, required...)
	for pr := h.nodes.Oldest(); pr != nil; pr = pr.Next() {
		part.AddNode(pr.Value)
	}
	for pr := h.edges.Oldest(); pr != nil; pr = pr.Next() {
		part.AddEdge(pr.Value)
	}
	h.partitions.Set(id, part)

	return part
}

// Partition returns a partition created earlier by CreatePartition.
func (h *Hypergraph) Partition(id string) (*Partition, bool) {
	return h.partitions.Get(id)
}

// PartitionIDs returns partition IDs in creation order.
func (h *Hypergraph) PartitionIDs() []string {
	out := make([]string, 0, h.partitions.Len())
	for pr := h.partitions.Oldest(); pr != nil; pr = pr.Next() {
		out = append(out, pr.Key)
	}

	return out
}
