// SPDX-License-Identifier: MIT
//
// File: features.go
// Role: Hyperedge feature vectors as the element-wise mean of member node vectors.

package core

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// NodeLookup resolves node IDs; *hypergraph.Hypergraph and plain maps (via NodeMap) satisfy it.
type NodeLookup interface {
	Node(id string) (*Node, bool)
}

// NodeMap adapts a map of nodes to NodeLookup.
type NodeMap map[string]*Node

// Node implements NodeLookup.
func (m NodeMap) Node(id string) (*Node, bool) {
	n, ok := m[id]
	return n, ok
}

// ComputeFeatures sets e's feature vector to the element-wise mean of the
// feature vectors of its referenced nodes (see NodeIDs), and overwrites any
// previous vector.
//
// Implementation:
//   - Stage 1: Resolve each referenced ID through lookup; skip unknown IDs,
//     nodes without a computed vector, and zero-length vectors.
//   - Stage 2: Require one common dimension; sum with floats.Add and divide.
//   - Stage 3: With no qualifying node the result is the single-element vector [0].
//
// Errors:
//   - ErrNilHyperedge if e is nil.
//   - ErrFeatureDimension (wrapped with the edge ID) when qualifying vectors differ
//     in length; the previous vector is left untouched.
//
// Complexity:
//   - Time O(M·D) for M referenced nodes of dimension D, Space O(D).
func ComputeFeatures(e Hyperedge, lookup NodeLookup) error {
	if e == nil {
		return ErrNilHyperedge
	}
	h := e.Head()
	var sum []float64
	count := 0
	for _, id := range NodeIDs(e) {
		n, ok := lookup.Node(id)
		if !ok || n == nil || len(n.Features) == 0 {
			continue
		}
		if sum == nil {
			sum = slices.Clone(n.Features)
			count = 1
			continue
		}
		if len(n.Features) != len(sum) {
			return fmt.Errorf("hyperedge %q: node %q has %d features, want %d: %w",
				h.ID, id, len(n.Features), len(sum), ErrFeatureDimension)
		}
		floats.Add(sum, n.Features)
		count++
	}
	if count == 0 {
		h.Features = []float64{0}
		return nil
	}
	floats.Scale(1/float64(count), sum)
	h.Features = sum

	return nil
}

// ComputeFeatures averages member node vectors; see the package-level ComputeFeatures.
func (s *Simple) ComputeFeatures(lookup NodeLookup) error { return ComputeFeatures(s, lookup) }

// ComputeFeatures averages source and target node vectors.
func (d *Directed) ComputeFeatures(lookup NodeLookup) error { return ComputeFeatures(d, lookup) }

// ComputeFeatures averages source and target node vectors.
func (d *NodeDirected) ComputeFeatures(lookup NodeLookup) error { return ComputeFeatures(d, lookup) }

// ComputeFeatures averages the vectors of every distinct node below the aggregator.
func (a *Aggregator) ComputeFeatures(lookup NodeLookup) error { return ComputeFeatures(a, lookup) }
