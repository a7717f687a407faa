// SPDX-License-Identifier: MIT
//
// File: hypergraph.go
// Role: Container construction, node/edge storage and lookup.

package hypergraph

import (
	"errors"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/hypernest/core"
)

// Sentinel errors for container operations.
var (
	// ErrNilNode indicates AddNode was called with nil.
	ErrNilNode = errors.New("hypergraph: node is nil")

	// ErrNilEdge indicates AddEdge was called with nil.
	ErrNilEdge = errors.New("hypergraph: hyperedge is nil")

	// ErrDimensionMismatch indicates matrices (or feature vectors) whose shapes
	// cannot be stacked along the requested axis.
	ErrDimensionMismatch = errors.New("hypergraph: dimension mismatch")

	// ErrBadAxis indicates a concatenation axis other than 0 (rows) or 1 (columns).
	ErrBadAxis = errors.New("hypergraph: axis must be 0 or 1")
)

// Hypergraph owns nodes, hyperedges and partitions.
type Hypergraph struct {
	ID string

	nodes      *orderedmap.OrderedMap[string, *core.Node]
	edges      *orderedmap.OrderedMap[string, core.Hyperedge]
	partitions *orderedmap.OrderedMap[string, *Partition]

	// incidence is nil until IncidenceMatrix runs.
	incidence *mat.Dense
}

// New creates an empty hypergraph.
func New(id string) *Hypergraph {
	return &Hypergraph{
		ID:         id,
		nodes:      orderedmap.New[string, *core.Node](),
		edges:      orderedmap.New[string, core.Hyperedge](),
		partitions: orderedmap.New[string, *Partition](),
	}
}

// AddNode stores n under n.ID. A node with an existing ID replaces the old
// one in place. The incidence cache is dropped.
func (h *Hypergraph) AddNode(n *core.Node) error {
	if n == nil {
		return ErrNilNode
	}
	if n.ID == "" {
		return fmt.Errorf("AddNode: %w", core.ErrEmptyID)
	}
	h.nodes.Set(n.ID, n)
	h.incidence = nil

	return nil
}

// AddEdge stores e under its ID without checking that its nodes exist.
// An edge with an existing ID replaces the old one in place. The incidence
// cache is dropped.
func (h *Hypergraph) AddEdge(e core.Hyperedge) error {
	if e == nil {
		return ErrNilEdge
	}
	id := e.Head().ID
	if id == "" {
		return fmt.Errorf("AddEdge: %w", core.ErrEmptyID)
	}
	h.edges.Set(id, e)
	h.incidence = nil

	return nil
}

// Node returns the node with the given ID. It makes *Hypergraph a core.NodeLookup.
func (h *Hypergraph) Node(id string) (*core.Node, bool) {
	return h.nodes.Get(id)
}

// HasNode reports whether id is a node of h.
func (h *Hypergraph) HasNode(id string) bool {
	_, ok := h.nodes.Get(id)
	return ok
}

// Edge returns the hyperedge with the given ID.
func (h *Hypergraph) Edge(id string) (core.Hyperedge, bool) {
	return h.edges.Get(id)
}

// NodeCount returns the number of nodes.
func (h *Hypergraph) NodeCount() int { return h.nodes.Len() }

// EdgeCount returns the number of hyperedges, aggregators included.
func (h *Hypergraph) EdgeCount() int { return h.edges.Len() }

// Nodes returns the nodes in insertion order.
func (h *Hypergraph) Nodes() []*core.Node {
	out := make([]*core.Node, 0, h.nodes.Len())
	for p := h.nodes.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Value)
	}

	return out
}

// NodeIDs returns node IDs in insertion order (matrix row order).
func (h *Hypergraph) NodeIDs() []string {
	out := make([]string, 0, h.nodes.Len())
	for p := h.nodes.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key)
	}

	return out
}

// Edges returns the hyperedges in insertion order.
func (h *Hypergraph) Edges() []core.Hyperedge {
	out := make([]core.Hyperedge, 0, h.edges.Len())
	for p := h.edges.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Value)
	}

	return out
}

// EdgeIDs returns hyperedge IDs in insertion order (incidence column order).
func (h *Hypergraph) EdgeIDs() []string {
	out := make([]string, 0, h.edges.Len())
	for p := h.edges.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key)
	}

	return out
}

// nodeIndex maps node ID to matrix row.
func (h *Hypergraph) nodeIndex() map[string]int {
	idx := make(map[string]int, h.nodes.Len())
	i := 0
	for p := h.nodes.Oldest(); p != nil; p = p.Next() {
		idx[p.Key] = i
		i++
	}

	return idx
}
