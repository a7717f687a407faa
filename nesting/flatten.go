// SPDX-License-Identifier: MIT
//
// File: flatten.go
// Role: Aggregator trees unwound into plain hypergraphs, and the matrices derived from them.

package nesting

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/hypernest/core"
	"github.com/katalvlaran/hypernest/hypergraph"
)

// FlattenedID is the ID of hypergraphs produced by Flatten.
const FlattenedID = "flattened"

// Flatten unwinds agg into a new hypergraph holding every leaf (non-aggregator)
// descendant, in pre-order, and a node for every ID those leaves reference.
// Leaves are stored by pointer, so identity, scores and nesting tags are kept.
//
// Nodes are taken from WithNodes when found there, otherwise created as
// core.DefaultNodeType nodes without attributes.
//
// Errors:
//   - core.ErrNilHyperedge, core.ErrCyclicNesting (from Walk).
func Flatten(agg *core.Aggregator, opts ...Option) (*hypergraph.Hypergraph, error) {
	o := gather(opts)
	all, err := Walk(agg, WithRecurse())
	if err != nil {
		return nil, err
	}
	h := hypergraph.New(FlattenedID)
	for _, e := range all {
		if _, nested := e.(*core.Aggregator); nested {
			continue
		}
		for _, id := range core.NodeIDs(e) {
			if h.HasNode(id) || id == "" {
				continue
			}
			n := core.NewNode(id, core.DefaultNodeType)
			if o.Nodes != nil {
				if existing, ok := o.Nodes.Node(id); ok && existing != nil {
					n = existing
				}
			}
			if err := h.AddNode(n); err != nil {
				return nil, err
			}
		}
		if err := h.AddEdge(e); err != nil {
			return nil, err
		}
	}

	return h, nil
}

// FlattenedDegreeMatrix returns the degree matrix of Flatten(aggs[0]).
// An empty list yields an empty matrix.
func FlattenedDegreeMatrix(aggs []*core.Aggregator, opts ...Option) (*mat.Dense, error) {
	if len(aggs) == 0 {
		return &mat.Dense{}, nil
	}
	h, err := Flatten(aggs[0], opts...)
	if err != nil {
		return nil, err
	}

	return h.DegreeMatrix(), nil
}

// FlattenedAdjacencyMatrix returns an unweighted adjacency matrix over the
// nodes of Flatten(aggs[0]) (rows in its node order).
//
// Implementation:
//   - Stage 1 (direct): every pair of members of a simple leaf adds 1 in both
//     directions; every source/target pair of a directed leaf adds 1 one way.
//   - Stage 2 (indirect): for each aggregator in aggs, every unordered pair of
//     distinct nodes anywhere below it adds 1 in both directions.
//
// Nodes outside the first aggregator are ignored.
func FlattenedAdjacencyMatrix(aggs []*core.Aggregator, opts ...Option) (*mat.Dense, error) {
	if len(aggs) == 0 {
		return &mat.Dense{}, nil
	}
	h, err := Flatten(aggs[0], opts...)
	if err != nil {
		return nil, err
	}
	ids := h.NodeIDs()
	if len(ids) == 0 {
		return &mat.Dense{}, nil
	}
	idx := make(map[string]int, len(ids))
	for i, id := range ids {
		idx[id] = i
	}
	m := mat.NewDense(len(ids), len(ids), nil)
	bump := func(a, b string, both bool) {
		i, okA := idx[a]
		j, okB := idx[b]
		if !okA || !okB || a == b {
			return
		}
		m.Set(i, j, m.At(i, j)+1)
		if both {
			m.Set(j, i, m.At(j, i)+1)
		}
	}

	for _, e := range h.Edges() {
		switch x := e.(type) {
		case *core.Simple:
			for i, a := range x.Nodes {
				for _, b := range x.Nodes[i+1:] {
					bump(a, b, true)
				}
			}
		case *core.Directed, *core.NodeDirected:
			src, tgt, _ := core.Endpoints(x)
			for _, s := range src {
				for _, t := range tgt {
					bump(s, t, false)
				}
			}
		}
	}
	for _, agg := range aggs {
		if agg == nil {
			continue
		}
		involved := core.NodeIDs(agg)
		for i, a := range involved {
			for _, b := range involved[i+1:] {
				bump(a, b, true)
			}
		}
	}

	return m, nil
}
