// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Entity-graph nodes, edges and the Graph container.

package entitygraph

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/katalvlaran/hypernest/core"
)

// Sentinel errors.
var (
	// ErrNilNode indicates AddNode was called with nil.
	ErrNilNode = errors.New("entitygraph: node is nil")

	// ErrNilEdge indicates AddEdge was called with nil.
	ErrNilEdge = errors.New("entitygraph: edge is nil")

	// ErrBadPattern indicates a value pattern that does not compile.
	ErrBadPattern = errors.New("entitygraph: invalid pattern")
)

// NodeTypeKey is the attribute read as a node's type.
const NodeTypeKey = "node_type"

// Node is an entity-graph node.
type Node struct {
	ID string
	// Attributes has lower-cased keys; use SetAttribute to keep that invariant.
	Attributes map[string]any
	Metadata   map[string]any
}

// NewNode creates a node, lower-casing attribute keys. Nil maps become empty ones.
func NewNode(id string, attributes, metadata map[string]any) *Node {
	n := &Node{ID: id, Attributes: make(map[string]any, len(attributes)), Metadata: make(map[string]any, len(metadata))}
	for k, v := range attributes {
		n.Attributes[strings.ToLower(k)] = v
	}
	for k, v := range metadata {
		n.Metadata[k] = v
	}

	return n
}

// SetAttribute stores value under the lower-cased key.
func (n *Node) SetAttribute(key string, value any) { n.Attributes[strings.ToLower(key)] = value }

// Attribute looks key up case-insensitively.
func (n *Node) Attribute(key string) (any, bool) {
	v, ok := n.Attributes[strings.ToLower(key)]
	return v, ok
}

// Type returns the "node_type" attribute as a string, or "".
func (n *Node) Type() string {
	if v, ok := n.Attributes[NodeTypeKey]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}

	return ""
}

// AttributeKeys returns the attribute keys sorted.
func (n *Node) AttributeKeys() []string {
	keys := make([]string, 0, len(n.Attributes))
	for k := range n.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Edge connects one or more nodes of an entity graph.
type Edge struct {
	ID        string
	Connected []string
	Modality  string
	// Weight is the base weight (default core.DefaultWeight); Scores["weight"] overrides it.
	Weight float64

	// Sources and Targets, when both set, mark the edge as directed.
	Sources []string
	Targets []string

	// Origin is the ID of the hyperedge this edge was split from ("" if none);
	// OriginKind is that hyperedge's kind.
	Origin     string
	OriginKind core.Kind

	core.Metadata
}

// NewEdge creates an undirected edge over connected.
func NewEdge(id string, connected []string, modality string) *Edge {
	return &Edge{ID: id, Connected: connected, Modality: modality, Weight: core.DefaultWeight, Metadata: core.NewMetadata()}
}

// EffectiveWeight returns Scores["weight"] if set, otherwise Weight.
func (e *Edge) EffectiveWeight() float64 { return e.Scores.Get(core.ScoreWeight, e.Weight) }

// NewDirectedEdge creates an edge from sources to targets; Connected lists both sides.
func NewDirectedEdge(id string, sources, targets []string, modality string) *Edge {
	connected := make([]string, 0, len(sources)+len(targets))
	connected = append(connected, sources...)
	connected = append(connected, targets...)
	e := NewEdge(id, connected, modality)
	e.Sources, e.Targets = sources, targets

	return e
}

// Directed reports whether both Sources and Targets are set.
func (e *Edge) Directed() bool { return len(e.Sources) > 0 && len(e.Targets) > 0 }

// Touches reports whether id is one of the connected nodes.
func (e *Edge) Touches(id string) bool { return slices.Contains(e.Connected, id) }

// SetAllPairScores stores value for every pair (i < j) of connected nodes,
// canonicalized unless directed.
func (e *Edge) SetAllPairScores(scoreType string, value float64, directed bool) {
	for i := 0; i < len(e.Connected); i++ {
		for j := i + 1; j < len(e.Connected); j++ {
			e.SetPairScore(e.Connected[i], e.Connected[j], scoreType, value, directed)
		}
	}
}

// Graph is a named single-entity graph.
type Graph struct {
	Name     string
	Metadata map[string]any

	nodes *orderedmap.OrderedMap[string, *Node]
	edges *orderedmap.OrderedMap[string, *Edge]
}

// New creates an empty graph.
func New(name string) *Graph {
	return &Graph{
		Name:     name,
		Metadata: make(map[string]any),
		nodes:    orderedmap.New[string, *Node](),
		edges:    orderedmap.New[string, *Edge](),
	}
}

// AddNode stores n, replacing a node with the same ID.
func (g *Graph) AddNode(n *Node) error {
	if n == nil {
		return ErrNilNode
	}
	if n.ID == "" {
		return fmt.Errorf("AddNode: %w", core.ErrEmptyID)
	}
	g.nodes.Set(n.ID, n)

	return nil
}

// AddEdge stores e, replacing an edge with the same ID. Connected nodes are not checked.
func (g *Graph) AddEdge(e *Edge) error {
	if e == nil {
		return ErrNilEdge
	}
	if e.ID == "" {
		return fmt.Errorf("AddEdge: %w", core.ErrEmptyID)
	}
	g.edges.Set(e.ID, e)

	return nil
}

// Node returns the node with the given ID.
func (g *Graph) Node(id string) (*Node, bool) { return g.nodes.Get(id) }

// HasNode reports whether id is a node of g.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes.Get(id)
	return ok
}

// Edge returns the edge with the given ID.
func (g *Graph) Edge(id string) (*Edge, bool) { return g.edges.Get(id) }

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return g.nodes.Len() }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return g.edges.Len() }

// Nodes returns nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, g.nodes.Len())
	for p := g.nodes.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Value)
	}

	return out
}

// NodeIDs returns node IDs in insertion order.
func (g *Graph) NodeIDs() []string {
	out := make([]string, 0, g.nodes.Len())
	for p := g.nodes.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key)
	}

	return out
}

// Edges returns edges in insertion order.
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, 0, g.edges.Len())
	for p := g.edges.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Value)
	}

	return out
}

// EdgeIDs returns edge IDs in insertion order.
func (g *Graph) EdgeIDs() []string {
	out := make([]string, 0, g.edges.Len())
	for p := g.edges.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key)
	}

	return out
}
