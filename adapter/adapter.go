// SPDX-License-Identifier: MIT
//
// File: adapter.go
// Role: Capability interfaces shared by every graph representation.

package adapter

import "sort"

// Graph is the capability set the traversal engine depends on.
type Graph interface {
	// IsValidNode reports whether id is a node of the graph.
	IsValidNode(id string) bool
	// NodeType returns the type tag of id, or "" when id is unknown.
	NodeType(id string) string
	// Neighbors returns the sorted IDs adjacent to id, excluding id itself.
	Neighbors(id string) []string
	// EdgeScore returns the highest alpha*beta over edges joining a and b, or 0.
	EdgeScore(a, b string) float64
}

// Weighter is implemented by graphs that can report traversal costs.
type Weighter interface {
	// EdgeWeight returns the smallest effective weight over edges joining a
	// and b; ok is false when no edge joins them.
	EdgeWeight(a, b string) (w float64, ok bool)
}

// neighborSet accumulates neighbor IDs and returns them sorted without self.
type neighborSet map[string]struct{}

func (s neighborSet) add(ids ...string) {
	for _, id := range ids {
		s[id] = struct{}{}
	}
}

func (s neighborSet) sorted(self string) []string {
	delete(s, self)
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// best tracks the maximum score and the minimum weight over matching edges.
type best struct {
	score  float64
	weight float64
	found  bool
}

func (b *best) observe(score, weight float64) {
	if score > b.score {
		b.score = score
	}
	if !b.found || weight < b.weight {
		b.weight = weight
	}
	b.found = true
}

var (
	_ Graph    = (*Hypergraph)(nil)
	_ Graph    = (*HetNet)(nil)
	_ Graph    = (*EntityGraph)(nil)
	_ Weighter = (*Hypergraph)(nil)
	_ Weighter = (*HetNet)(nil)
	_ Weighter = (*EntityGraph)(nil)
)
