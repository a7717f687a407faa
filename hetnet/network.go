// SPDX-License-Identifier: MIT
//
// File: network.go
// Role: Network storage with strict endpoint checks, and the Edge record.

package hetnet

import (
	"errors"
	"fmt"
	"strconv"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/katalvlaran/hypernest/core"
)

// Sentinel errors for network construction.
var (
	// ErrReferentialIntegrity indicates an edge whose source or target is not a node of the network.
	ErrReferentialIntegrity = errors.New("hetnet: edge endpoint is not a node of the network")

	// ErrNilNode indicates AddNode was called with nil.
	ErrNilNode = errors.New("hetnet: node is nil")

	// ErrNilEdge indicates AddEdge was called with nil.
	ErrNilEdge = errors.New("hetnet: edge is nil")

	// ErrEdgeColumns indicates fewer than two edge columns were given to FromRecords.
	ErrEdgeColumns = errors.New("hetnet: need source and target edge columns")
)

// DefaultModality labels edges that were given no modality.
const DefaultModality = "default"

// Edge is a pairwise record between two nodes.
type Edge struct {
	ID     string
	Source string
	Target string

	// Kind is the hyperedge kind this edge converts to (default core.KindSimple).
	Kind     core.Kind
	Modality string
	Weight   float64

	// Optional node lists used on conversion instead of Source/Target:
	// Sources/Targets for directed kinds, Connected for simple edges.
	Sources   []string
	Targets   []string
	Connected []string

	// Origin is the hyperedge this edge was split from, if any, and
	// OriginKind that hyperedge's kind. Edges sharing an Origin convert
	// back into one hyperedge.
	Origin     string
	OriginKind core.Kind

	core.Metadata
}

// EdgeOption configures an Edge at construction.
type EdgeOption func(*Edge)

// WithKind sets the kind the edge converts to.
func WithKind(k core.Kind) EdgeOption { return func(e *Edge) { e.Kind = k } }

// WithModality sets the modality label.
func WithModality(m string) EdgeOption { return func(e *Edge) { e.Modality = m } }

// WithWeight sets the base weight (default core.DefaultWeight).
func WithWeight(w float64) EdgeOption { return func(e *Edge) { e.Weight = w } }

// WithEndpoints sets the source and target node lists used on conversion.
func WithEndpoints(sources, targets []string) EdgeOption {
	return func(e *Edge) { e.Sources, e.Targets = sources, targets }
}

// WithConnected sets the member list used when the edge converts to a simple hyperedge.
func WithConnected(nodes []string) EdgeOption { return func(e *Edge) { e.Connected = nodes } }

// WithOrigin records the hyperedge the edge was split from.
func WithOrigin(id string, kind core.Kind) EdgeOption {
	return func(e *Edge) { e.Origin, e.OriginKind = id, kind }
}

// WithExtra stores free-form annotations.
func WithExtra(extra map[string]any) EdgeOption {
	return func(e *Edge) {
		for k, v := range extra {
			e.SetExtra(k, v)
		}
	}
}

// NewEdge creates an edge from source to target.
func NewEdge(id, source, target string, opts ...EdgeOption) *Edge {
	e := &Edge{
		ID:       id,
		Source:   source,
		Target:   target,
		Kind:     core.KindSimple,
		Modality: DefaultModality,
		Weight:   core.DefaultWeight,
		Metadata: core.NewMetadata(),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// EffectiveWeight returns Scores["weight"] if set, otherwise Weight.
func (e *Edge) EffectiveWeight() float64 { return e.Scores.Get(core.ScoreWeight, e.Weight) }

// Connects reports whether e joins a and b in either orientation.
func (e *Edge) Connects(a, b string) bool {
	return (e.Source == a && e.Target == b) || (e.Source == b && e.Target == a)
}

// Network is a heterogeneous edge-list graph.
type Network struct {
	ID string

	nodes   *orderedmap.OrderedMap[string, *core.Node]
	edges   *orderedmap.OrderedMap[string, *Edge]
	counter int
}

// New creates an empty network.
func New(id string) *Network {
	return &Network{
		ID:    id,
		nodes: orderedmap.New[string, *core.Node](),
		edges: orderedmap.New[string, *Edge](),
	}
}

// AddNode stores n, replacing a node with the same ID.
func (nw *Network) AddNode(n *core.Node) error {
	if n == nil {
		return ErrNilNode
	}
	if n.ID == "" {
		return fmt.Errorf("AddNode: %w", core.ErrEmptyID)
	}
	nw.nodes.Set(n.ID, n)

	return nil
}

// AddEdge stores e after checking that both endpoints exist.
//
// Errors:
//   - ErrNilEdge, core.ErrEmptyID.
//   - ErrReferentialIntegrity (wrapped with the edge and endpoint IDs).
func (nw *Network) AddEdge(e *Edge) error {
	if e == nil {
		return ErrNilEdge
	}
	if e.ID == "" {
		return fmt.Errorf("AddEdge: %w", core.ErrEmptyID)
	}
	for _, end := range []string{e.Source, e.Target} {
		if !nw.HasNode(end) {
			return fmt.Errorf("AddEdge %q (%s -> %s): endpoint %q: %w",
				e.ID, e.Source, e.Target, end, ErrReferentialIntegrity)
		}
	}
	nw.edges.Set(e.ID, e)

	return nil
}

// NextEdgeID returns a fresh "edge_<n>" identifier.
func (nw *Network) NextEdgeID() string {
	id := "edge_" + strconv.Itoa(nw.counter)
	nw.counter++

	return id
}

// Node returns the node with the given ID.
func (nw *Network) Node(id string) (*core.Node, bool) { return nw.nodes.Get(id) }

// HasNode reports whether id is a node of the network.
func (nw *Network) HasNode(id string) bool {
	_, ok := nw.nodes.Get(id)
	return ok
}

// Edge returns the edge with the given ID.
func (nw *Network) Edge(id string) (*Edge, bool) { return nw.edges.Get(id) }

// NodeCount returns the number of nodes.
func (nw *Network) NodeCount() int { return nw.nodes.Len() }

// EdgeCount returns the number of edges.
func (nw *Network) EdgeCount() int { return nw.edges.Len() }

// Nodes returns the nodes in insertion order.
func (nw *Network) Nodes() []*core.Node {
	out := make([]*core.Node, 0, nw.nodes.Len())
	for p := nw.nodes.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Value)
	}

	return out
}

// NodeIDs returns node IDs in insertion order.
func (nw *Network) NodeIDs() []string {
	out := make([]string, 0, nw.nodes.Len())
	for p := nw.nodes.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key)
	}

	return out
}

// Edges returns the edges in insertion order.
func (nw *Network) Edges() []*Edge {
	out := make([]*Edge, 0, nw.edges.Len())
	for p := nw.edges.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Value)
	}

	return out
}

// EdgeIDs returns edge IDs in insertion order.
func (nw *Network) EdgeIDs() []string {
	out := make([]string, 0, nw.edges.Len())
	for p := nw.edges.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key)
	}

	return out
}
