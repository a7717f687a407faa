// SPDX-License-Identifier: MIT
//
// File: matrices.go
// Role: Incidence, adjacency, degree and feature matrices plus incidence concatenation.
// Determinism:
//   - Rows follow node insertion order, columns follow edge insertion order.
//   - Aggregator hyperedges keep their incidence column but it stays all-zero.

package hypergraph

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/hypernest/core"
)

// Incidence entry values.
const (
	incidenceMember = 1.0
	incidenceSource = -1.0
	incidenceTarget = 1.0
)

// IncidenceMatrix returns the nodes × edges incidence matrix.
//
// Implementation:
//   - Stage 1: Reuse the cached matrix if present.
//   - Stage 2: For each edge column: simple members get +1; directed and
//     node-directed sources get -1, then targets get +1 (a node listed on both
//     sides ends up +1). Unknown node IDs are skipped.
//   - Stage 3: Cache the result.
//
// The returned matrix is a copy; mutating it does not affect the cache.
//
// Complexity:
//   - Time O(V·E + Σ|e|), Space O(V·E).
func (h *Hypergraph) IncidenceMatrix() *mat.Dense {
	if h.incidence == nil {
		h.incidence = h.buildIncidence()
	}

	return cloneDense(h.incidence)
}

// InvalidateIncidence drops the cached incidence matrix. Call it after
// mutating an edge that is already stored in h.
func (h *Hypergraph) InvalidateIncidence() { h.incidence = nil }

func (h *Hypergraph) buildIncidence() *mat.Dense {
	m := newDense(h.nodes.Len(), h.edges.Len())
	if m.IsEmpty() {
		return m
	}
	idx := h.nodeIndex()
	col := 0
	for p := h.edges.Oldest(); p != nil; p = p.Next() {
		switch e := p.Value.(type) {
		case *core.Simple:
			for _, id := range e.Nodes {
				if r, ok := idx[id]; ok {
					m.Set(r, col, incidenceMember)
				}
			}
		case *core.Directed, *core.NodeDirected:
			src, tgt, _ := core.Endpoints(e)
			for _, id := range src {
				if r, ok := idx[id]; ok {
					m.Set(r, col, incidenceSource)
				}
			}
			for _, id := range tgt {
				if r, ok := idx[id]; ok {
					m.Set(r, col, incidenceTarget)
				}
			}
		}
		col++
	}

	return m
}

// AdjacencyMatrix returns the nodes × nodes weighted adjacency matrix.
//
// Behavior highlights:
//   - Simple edge: adds Weight to [a][b] and [b][a] for every pair of
//     distinct members (positions i != j, IDs differ).
//   - Directed / node-directed edge: adds Weight to [s][t] for every source s and
//     target t with s != t; the reverse cell is untouched.
//   - Aggregators are not expanded. Unknown node IDs are skipped.
//
// Complexity:
//   - Time O(V² + Σ|e|²), Space O(V²).
func (h *Hypergraph) AdjacencyMatrix() *mat.Dense {
	n := h.nodes.Len()
	m := newDense(n, n)
	if m.IsEmpty() {
		return m
	}
	idx := h.nodeIndex()
	add := func(a, b string, w float64) {
		if a == b {
			return
		}
		i, okA := idx[a]
		j, okB := idx[b]
		if okA && okB {
			m.Set(i, j, m.At(i, j)+w)
		}
	}
	for p := h.edges.Oldest(); p != nil; p = p.Next() {
		switch e := p.Value.(type) {
		case *core.Simple:
			for i, a := range e.Nodes {
				for j, b := range e.Nodes {
					if i != j {
						add(a, b, e.Weight)
					}
				}
			}
		case *core.Directed, *core.NodeDirected:
			src, tgt, _ := core.Endpoints(e)
			w := e.Head().Weight
			for _, s := range src {
				for _, t := range tgt {
					add(s, t, w)
				}
			}
		}
	}

	return m
}

// DegreeMatrix returns a diagonal matrix whose [i][i] entry counts how many
// times node i appears in simple, directed and node-directed edges.
// Duplicated membership counts once per occurrence.
//
// Complexity:
//   - Time O(V² + Σ|e|), Space O(V²).
func (h *Hypergraph) DegreeMatrix() *mat.Dense {
	n := h.nodes.Len()
	m := newDense(n, n)
	if m.IsEmpty() {
		return m
	}
	idx := h.nodeIndex()
	for p := h.edges.Oldest(); p != nil; p = p.Next() {
		if _, nested := p.Value.(*core.Aggregator); nested {
			continue
		}
		for _, id := range core.NodeIDs(p.Value) {
			if i, ok := idx[id]; ok {
				m.Set(i, i, m.At(i, i)+1)
			}
		}
	}

	return m
}

// NodeFeatureMatrix stacks node feature vectors (rows in node order). Nodes
// without a vector get one from Node.ComputeFeatures first.
//
// Errors:
//   - core.ErrNonNumericFeature from feature computation.
//   - ErrDimensionMismatch if vectors differ in length.
func (h *Hypergraph) NodeFeatureMatrix() (*mat.Dense, error) {
	rows := make([][]float64, 0, h.nodes.Len())
	for p := h.nodes.Oldest(); p != nil; p = p.Next() {
		n := p.Value
		if !n.HasFeatures() {
			if err := n.ComputeFeatures(); err != nil {
				return nil, fmt.Errorf("NodeFeatureMatrix: %w", err)
			}
		}
		rows = append(rows, n.Features)
	}

	return stackRows(rows)
}

// HyperedgeFeatureMatrix stacks hyperedge feature vectors (rows in edge order).
// Edges without a vector get one from core.ComputeFeatures, using h as lookup.
//
// Errors:
//   - core.ErrFeatureDimension from feature averaging.
//   - ErrDimensionMismatch if vectors differ in length.
func (h *Hypergraph) HyperedgeFeatureMatrix() (*mat.Dense, error) {
	rows := make([][]float64, 0, h.edges.Len())
	for p := h.edges.Oldest(); p != nil; p = p.Next() {
		e := p.Value
		if e.Head().Features == nil {
			if err := core.ComputeFeatures(e, h); err != nil {
				return nil, fmt.Errorf("HyperedgeFeatureMatrix: %w", err)
			}
		}
		rows = append(rows, e.Head().Features)
	}

	return stackRows(rows)
}

// ConcatenateMatrices stacks h's incidence matrix with other's and stores the
// result as h's cached incidence matrix. Missing incidence matrices are
// computed first. Axis 0 stacks rows (column counts must match), axis 1 places
// the matrices side by side (row counts must match). An empty operand leaves
// the other unchanged.
//
// Errors:
//   - ErrBadAxis for an axis other than 0 or 1.
//   - ErrDimensionMismatch for a nil other or incompatible shapes.
func (h *Hypergraph) ConcatenateMatrices(other *Hypergraph, axis int) (*mat.Dense, error) {
	if axis != 0 && axis != 1 {
		return nil, fmt.Errorf("ConcatenateMatrices: axis %d: %w", axis, ErrBadAxis)
	}
	if other == nil {
		return nil, fmt.Errorf("ConcatenateMatrices: nil operand: %w", ErrDimensionMismatch)
	}
	if h.incidence == nil {
		h.incidence = h.buildIncidence()
	}
	if other.incidence == nil {
		other.incidence = other.buildIncidence()
	}
	a, b := h.incidence, other.incidence

	var out *mat.Dense
	switch {
	case b.IsEmpty():
		out = cloneDense(a)
	case a.IsEmpty():
		out = cloneDense(b)
	default:
		ar, ac := a.Dims()
		br, bc := b.Dims()
		out = &mat.Dense{}
		if axis == 0 {
			if ac != bc {
				return nil, fmt.Errorf("ConcatenateMatrices: %d vs %d columns: %w", ac, bc, ErrDimensionMismatch)
			}
			out.Stack(a, b)
		} else {
			if ar != br {
				return nil, fmt.Errorf("ConcatenateMatrices: %d vs %d rows: %w", ar, br, ErrDimensionMismatch)
			}
			out.Augment(a, b)
		}
	}
	h.incidence = out

	return cloneDense(out), nil
}

// ToRows copies m into a row-major [][]float64. An empty matrix yields an empty slice.
func ToRows(m mat.Matrix) [][]float64 {
	if m == nil {
		return [][]float64{}
	}
	if d, ok := m.(*mat.Dense); ok && d.IsEmpty() {
		return [][]float64{}
	}
	r, c := m.Dims()
	out := make([][]float64, r)
	for i := 0; i < r; i++ {
		out[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			out[i][j] = m.At(i, j)
		}
	}

	return out
}

// newDense allocates an r×c zero matrix, or an empty Dense when either
// dimension is zero (gonum rejects zero-length shapes).
func newDense(r, c int) *mat.Dense {
	if r == 0 || c == 0 {
		return &mat.Dense{}
	}

	return mat.NewDense(r, c, nil)
}

func cloneDense(m *mat.Dense) *mat.Dense {
	if m == nil || m.IsEmpty() {
		return &mat.Dense{}
	}

	return mat.DenseCopyOf(m)
}

// stackRows builds a matrix from equally sized rows. All-empty input yields an empty matrix.
func stackRows(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 {
		return &mat.Dense{}, nil
	}
	width := len(rows[0])
	for i, r := range rows {
		if len(r) != width {
			return nil, fmt.Errorf("row %d has %d values, want %d: %w", i, len(r), width, ErrDimensionMismatch)
		}
	}
	if width == 0 {
		return &mat.Dense{}, nil
	}
	data := make([]float64, 0, len(rows)*width)
	for _, r := range rows {
		data = append(data, r...)
	}

	return mat.NewDense(len(rows), width, data), nil
}
