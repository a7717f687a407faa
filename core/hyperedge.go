// SPDX-License-Identifier: MIT
//
// File: hyperedge.go
// Role: Concrete hyperedge kinds, aggregator back-reference tagging and the
//       per-kind node extraction used by every other package.

package core

import "slices"

// Simple connects an ordered list of member nodes. Membership is not deduplicated.
type Simple struct {
	Header
	Nodes []string
}

// NewSimple builds a simple hyperedge over a copy of nodes.
func NewSimple(id string, nodes []string, modality string, opts ...EdgeOption) *Simple {
	h, _ := newHeader(id, modality, opts)
	return &Simple{Header: h, Nodes: slices.Clone(nodes)}
}

// Kind implements Hyperedge.
func (s *Simple) Kind() Kind { return KindSimple }

// Directed connects every source to every target.
type Directed struct {
	Header
	Sources []string
	Targets []string
}

// NewDirected builds a directed hyperedge. Sources and targets are copied.
func NewDirected(id string, sources, targets []string, modality string, opts ...EdgeOption) *Directed {
	h, _ := newHeader(id, modality, opts)
	return &Directed{Header: h, Sources: slices.Clone(sources), Targets: slices.Clone(targets)}
}

// Kind implements Hyperedge.
func (d *Directed) Kind() Kind { return KindDirected }

// NodeDirected has the same shape and adjacency semantics as Directed. Its
// separate kind records that source and target are node collections.
type NodeDirected struct {
	Header
	Sources []string
	Targets []string
}

// NewNodeDirected builds a node-directed hyperedge. Sources and targets are copied.
func NewNodeDirected(id string, sources, targets []string, modality string, opts ...EdgeOption) *NodeDirected {
	h, _ := newHeader(id, modality, opts)
	return &NodeDirected{Header: h, Sources: slices.Clone(sources), Targets: slices.Clone(targets)}
}

// Kind implements Hyperedge.
func (d *NodeDirected) Kind() Kind { return KindNodeDirected }

// Aggregator is a hyperedge whose members are other hyperedges.
//
// The aggregator owns its children. Each child records the aggregator by ID
// in its NestingInfo; the relation is never stored as a pointer.
type Aggregator struct {
	Header
	Children []Hyperedge
}

// NewAggregator builds an aggregator over children and, unless
// WithoutHierarchyTracking is given, tags each child as nested. Nil children
// are dropped.
// Complexity: O(C·P) for C children with P parents each.
func NewAggregator(id string, children []Hyperedge, modality string, opts ...EdgeOption) *Aggregator {
	h, cfg := newHeader(id, modality, opts)
	a := &Aggregator{Header: h, Children: make([]Hyperedge, 0, len(children))}
	for _, c := range children {
		if c == nil {
			continue
		}
		a.Children = append(a.Children, c)
		if !cfg.untracked {
			a.TagChild(c)
		}
	}

	return a
}

// Kind implements Hyperedge.
func (a *Aggregator) Kind() Kind { return KindNesting }

// ChildrenCount returns the number of immediate children.
func (a *Aggregator) ChildrenCount() int { return len(a.Children) }

// TagChild marks child as nested under a. It is idempotent:
//   - Nested is set once.
//   - OriginalKind is captured once and never overwritten.
//   - a.ID is appended to Parents only if absent; ParentsCount tracks len(Parents).
func (a *Aggregator) TagChild(child Hyperedge) {
	if child == nil {
		return
	}
	info := &child.Head().Nesting
	if !info.Nested {
		info.Nested = true
	}
	if info.OriginalKind == "" {
		info.OriginalKind = child.Kind()
	}
	if !slices.Contains(info.Parents, a.ID) {
		info.Parents = append(info.Parents, a.ID)
	}
	info.ParentsCount = len(info.Parents)
}

// AddChild appends child and tags it.
//
// Errors:
//   - ErrNilHyperedge if child is nil.
//   - ErrCyclicNesting if child is a itself or transitively contains a.
func (a *Aggregator) AddChild(child Hyperedge) error {
	if child == nil {
		return ErrNilHyperedge
	}
	if Contains(child, a) {
		return ErrCyclicNesting
	}
	a.Children = append(a.Children, child)
	a.TagChild(child)

	return nil
}

// Contains reports whether target is root or is reachable from root through
// aggregator children. Identity is pointer identity. Aggregators already on
// the search stack are not re-entered, so pre-existing cycles terminate.
func Contains(root, target Hyperedge) bool {
	return contains(root, target, make(map[*Aggregator]bool))
}

func contains(root, target Hyperedge, onPath map[*Aggregator]bool) bool {
	if root == target {
		return true
	}
	agg, ok := root.(*Aggregator)
	if !ok || onPath[agg] {
		return false
	}
	onPath[agg] = true
	defer delete(onPath, agg)
	for _, c := range agg.Children {
		if contains(c, target, onPath) {
			return true
		}
	}

	return false
}

// Endpoints returns the source and target lists of a Directed or NodeDirected
// hyperedge; ok is false for any other kind.
func Endpoints(e Hyperedge) (sources, targets []string, ok bool) {
	switch x := e.(type) {
	case *Directed:
		return x.Sources, x.Targets, true
	case *NodeDirected:
		return x.Sources, x.Targets, true
	default:
		return nil, nil, false
	}
}

// NodeIDs returns the node IDs referenced by e.
//
// Per kind:
//   - Simple:                member list as stored (duplicates kept).
//   - Directed/NodeDirected: sources followed by targets.
//   - Aggregator:            union over all descendants, first-appearance order.
//
// Aggregators already on the current recursion path are skipped, so a cyclic
// structure yields the nodes reachable without re-entering the cycle.
func NodeIDs(e Hyperedge) []string {
	switch x := e.(type) {
	case nil:
		return nil
	case *Simple:
		return slices.Clone(x.Nodes)
	case *Directed:
		return append(slices.Clone(x.Sources), x.Targets...)
	case *NodeDirected:
		return append(slices.Clone(x.Sources), x.Targets...)
	case *Aggregator:
		seen := make(map[string]struct{})
		out := make([]string, 0)
		collectNested(x, seen, &out, make(map[*Aggregator]bool))
		return out
	default:
		return nil
	}
}

func collectNested(a *Aggregator, seen map[string]struct{}, out *[]string, onPath map[*Aggregator]bool) {
	if onPath[a] {
		return
	}
	onPath[a] = true
	defer delete(onPath, a)
	for _, c := range a.Children {
		if sub, ok := c.(*Aggregator); ok {
			collectNested(sub, seen, out, onPath)
			continue
		}
		for _, id := range NodeIDs(c) {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			*out = append(*out, id)
		}
	}
}

// NodeSet returns NodeIDs(e) as a set.
func NodeSet(e Hyperedge) map[string]struct{} {
	ids := NodeIDs(e)
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return set
}
