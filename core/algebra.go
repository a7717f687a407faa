// SPDX-License-Identifier: MIT
//
// File: algebra.go
// Role: Intersection and union of same-kind hyperedges.
// Policy:
//   - Results are fresh hyperedges with IDs "<a>_intersect_<b>" / "<a>_union_<b>"
//     and modality "<a.modality>_<b.modality>".
//   - Scores, metadata and weights are not carried over.
//   - Member order: first operand order, then second operand (union only); duplicates removed.

package core

import "fmt"

// IntersectID and UnionID build derived identifiers for set-algebra results.
func IntersectID(a, b string) string { return a + "_intersect_" + b }

// UnionID builds the identifier of a union result.
func UnionID(a, b string) string { return a + "_union_" + b }

func joinModality(a, b string) string { return a + "_" + b }

// Intersect returns a new hyperedge of the shared kind with the members common
// to a and b. Aggregators intersect their children by ID.
//
// Errors:
//   - ErrNilHyperedge if either operand is nil.
//   - ErrKindMismatch if the kinds differ.
func Intersect(a, b Hyperedge) (Hyperedge, error) {
	if err := sameKind(a, b); err != nil {
		return nil, err
	}
	switch x := a.(type) {
	case *Simple:
		return x.Intersect(b.(*Simple)), nil
	case *Directed:
		return x.Intersect(b.(*Directed)), nil
	case *NodeDirected:
		return x.Intersect(b.(*NodeDirected)), nil
	case *Aggregator:
		return x.Intersect(b.(*Aggregator)), nil
	}

	return nil, fmt.Errorf("Intersect: %w", ErrKindMismatch)
}

// Union returns a new hyperedge of the shared kind combining the members of a and b.
//
// Errors:
//   - ErrNilHyperedge if either operand is nil.
//   - ErrKindMismatch if the kinds differ.
func Union(a, b Hyperedge) (Hyperedge, error) {
	if err := sameKind(a, b); err != nil {
		return nil, err
	}
	switch x := a.(type) {
	case *Simple:
		return x.Union(b.(*Simple)), nil
	case *Directed:
		return x.Union(b.(*Directed)), nil
	case *NodeDirected:
		return x.Union(b.(*NodeDirected)), nil
	case *Aggregator:
		return x.Union(b.(*Aggregator)), nil
	}

	return nil, fmt.Errorf("Union: %w", ErrKindMismatch)
}

func sameKind(a, b Hyperedge) error {
	if a == nil || b == nil {
		return ErrNilHyperedge
	}
	if a.Kind() != b.Kind() {
		return fmt.Errorf("%w: %s vs %s", ErrKindMismatch, a.Kind(), b.Kind())
	}

	return nil
}

// Intersect returns the members common to s and o.
func (s *Simple) Intersect(o *Simple) *Simple {
	return NewSimple(IntersectID(s.ID, o.ID), intersect(s.Nodes, o.Nodes), joinModality(s.Modality, o.Modality))
}

// Union returns the members of s and o.
func (s *Simple) Union(o *Simple) *Simple {
	return NewSimple(UnionID(s.ID, o.ID), union(s.Nodes, o.Nodes), joinModality(s.Modality, o.Modality))
}

// Intersect keeps the common sources and the common targets.
func (d *Directed) Intersect(o *Directed) *Directed {
	return NewDirected(IntersectID(d.ID, o.ID),
		intersect(d.Sources, o.Sources), intersect(d.Targets, o.Targets),
		joinModality(d.Modality, o.Modality))
}

// Union combines sources and targets.
func (d *Directed) Union(o *Directed) *Directed {
	return NewDirected(UnionID(d.ID, o.ID),
		union(d.Sources, o.Sources), union(d.Targets, o.Targets),
		joinModality(d.Modality, o.Modality))
}

// Intersect keeps the common sources and the common targets.
func (d *NodeDirected) Intersect(o *NodeDirected) *NodeDirected {
	return NewNodeDirected(IntersectID(d.ID, o.ID),
		intersect(d.Sources, o.Sources), intersect(d.Targets, o.Targets),
		joinModality(d.Modality, o.Modality))
}

// Union combines sources and targets.
func (d *NodeDirected) Union(o *NodeDirected) *NodeDirected {
	return NewNodeDirected(UnionID(d.ID, o.ID),
		union(d.Sources, o.Sources), union(d.Targets, o.Targets),
		joinModality(d.Modality, o.Modality))
}

// Intersect keeps the children of a whose ID also appears among o's children.
// The result tags the kept children with its own ID.
func (a *Aggregator) Intersect(o *Aggregator) *Aggregator {
	other := make(map[string]struct{}, len(o.Children))
	for _, c := range o.Children {
		other[c.Head().ID] = struct{}{}
	}
	kept := make([]Hyperedge, 0)
	for _, c := range dedupeChildren(a.Children) {
		if _, ok := other[c.Head().ID]; ok {
			kept = append(kept, c)
		}
	}

	return NewAggregator(IntersectID(a.ID, o.ID), kept, joinModality(a.Modality, o.Modality))
}

// Union keeps the children of both, deduplicated by ID (first occurrence wins).
func (a *Aggregator) Union(o *Aggregator) *Aggregator {
	all := make([]Hyperedge, 0, len(a.Children)+len(o.Children))
	all = append(all, a.Children...)
	all = append(all, o.Children...)

	return NewAggregator(UnionID(a.ID, o.ID), dedupeChildren(all), joinModality(a.Modality, o.Modality))
}

func dedupeChildren(in []Hyperedge) []Hyperedge {
	seen := make(map[string]struct{}, len(in))
	out := make([]Hyperedge, 0, len(in))
	for _, c := range in {
		if c == nil {
			continue
		}
		id := c.Head().ID
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, c)
	}

	return out
}

func intersect(a, b []string) []string {
	inB := make(map[string]struct{}, len(b))
	for _, x := range b {
		inB[x] = struct{}{}
	}
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, x := range a {
		if _, ok := inB[x]; !ok {
			continue
		}
		if _, dup := seen[x]; dup {
			continue
		}
		seen[x] = struct{}{}
		out = append(out, x)
	}

	return out
}

func union(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, x := range list {
			if _, dup := seen[x]; dup {
				continue
			}
			seen[x] = struct{}{}
			out = append(out, x)
		}
	}

	return out
}
