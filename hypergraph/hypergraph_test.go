// SPDX-License-Identifier: MIT
// Package hypergraph_test verifies container storage and matrix derivation.

package hypergraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypernest/core"
	"github.com/katalvlaran/hypernest/hypergraph"
)

// buildSample returns nodes a,b,c,d with a simple edge {a,b,c} (weight 2)
// and a directed edge {a} -> {d}.
func buildSample(t *testing.T) *hypergraph.Hypergraph {
	t.Helper()
	h := hypergraph.New("sample")
	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, h.AddNode(core.NewNode(id, "gene")))
	}
	require.NoError(t, h.AddEdge(core.NewSimple("s1", []string{"a", "b", "c"}, "pathway", core.WithWeight(2))))
	require.NoError(t, h.AddEdge(core.NewDirected("d1", []string{"a"}, []string{"d"}, "regulates")))

	return h
}

func TestAddRejectsInvalid(t *testing.T) {
	h := hypergraph.New("g")
	require.ErrorIs(t, h.AddNode(nil), hypergraph.ErrNilNode)
	require.ErrorIs(t, h.AddNode(core.NewNode("", "x")), core.ErrEmptyID)
	require.ErrorIs(t, h.AddEdge(nil), hypergraph.ErrNilEdge)
	require.ErrorIs(t, h.AddEdge(core.NewSimple("", nil, "m")), core.ErrEmptyID)
}

func TestInsertionOrder(t *testing.T) {
	h := buildSample(t)
	assert.Equal(t, []string{"a", "b", "c", "d"}, h.NodeIDs())
	assert.Equal(t, []string{"s1", "d1"}, h.EdgeIDs())
	assert.Equal(t, 4, h.NodeCount())
	assert.Equal(t, 2, h.EdgeCount())

	// Replacing keeps the original position.
	require.NoError(t, h.AddNode(core.NewNode("b", "protein")))
	assert.Equal(t, []string{"a", "b", "c", "d"}, h.NodeIDs())
	n, ok := h.Node("b")
	require.True(t, ok)
	assert.Equal(t, "protein", n.Type)
}

func TestIncidenceMatrix(t *testing.T) {
	h := buildSample(t)
	got := hypergraph.ToRows(h.IncidenceMatrix())
	want := [][]float64{
		{1, -1},
		{1, 0},
		{1, 0},
		{0, 1},
	}
	assert.Equal(t, want, got)
}

func TestIncidenceMatrix_SkipsDanglingAndAggregators(t *testing.T) {
	h := hypergraph.New("g")
	require.NoError(t, h.AddNode(core.NewNode("a", "")))
	leaf := core.NewSimple("leaf", []string{"a", "ghost"}, "m")
	require.NoError(t, h.AddEdge(leaf))
	require.NoError(t, h.AddEdge(core.NewAggregator("agg", []core.Hyperedge{leaf}, "m")))

	assert.Equal(t, [][]float64{{1, 0}}, hypergraph.ToRows(h.IncidenceMatrix()))
}

func TestIncidenceMatrix_Cache(t *testing.T) {
	h := buildSample(t)
	first := h.IncidenceMatrix()
	first.Set(0, 0, 42)
	assert.Equal(t, 1.0, h.IncidenceMatrix().At(0, 0), "returned matrix must be a copy")

	// A direct mutation is only visible after invalidation.
	e, ok := h.Edge("s1")
	require.True(t, ok)
	e.(*core.Simple).Nodes = []string{"d"}
	assert.Equal(t, 1.0, h.IncidenceMatrix().At(0, 0))
	h.InvalidateIncidence()
	assert.Equal(t, 0.0, h.IncidenceMatrix().At(0, 0))
	assert.Equal(t, 1.0, h.IncidenceMatrix().At(3, 0))

	// AddNode drops the cache.
	require.NoError(t, h.AddNode(core.NewNode("e", "")))
	r, _ := h.IncidenceMatrix().Dims()
	assert.Equal(t, 5, r)
}

func TestAdjacencyMatrix(t *testing.T) {
	h := buildSample(t)
	adj := h.AdjacencyMatrix()
	ids := h.NodeIDs()

	// Simple edge contributions are symmetric and carry the weight.
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, adj.At(i, j), adj.At(j, i), "%s/%s", ids[i], ids[j])
			if i != j {
				assert.Equal(t, 2.0, adj.At(i, j))
			}
		}
	}
	// Directed contribution is one-way.
	assert.Equal(t, 1.0, adj.At(0, 3))
	assert.Equal(t, 0.0, adj.At(3, 0))
	// No self loops.
	assert.Equal(t, 0.0, adj.At(0, 0))
}

func TestAdjacencyMatrix_AccumulatesWeights(t *testing.T) {
	h := hypergraph.New("g")
	require.NoError(t, h.AddNode(core.NewNode("a", "")))
	require.NoError(t, h.AddNode(core.NewNode("b", "")))
	require.NoError(t, h.AddEdge(core.NewSimple("e1", []string{"a", "b"}, "m", core.WithWeight(0.5))))
	require.NoError(t, h.AddEdge(core.NewSimple("e2", []string{"b", "a"}, "m", core.WithWeight(1.5))))
	require.NoError(t, h.AddEdge(core.NewNodeDirected("e3", []string{"b"}, []string{"a"}, "m")))

	assert.Equal(t, [][]float64{{0, 2}, {3, 0}}, hypergraph.ToRows(h.AdjacencyMatrix()))
}

func TestDegreeMatrix(t *testing.T) {
	h := buildSample(t)
	deg := hypergraph.ToRows(h.DegreeMatrix())
	assert.Equal(t, [][]float64{
		{2, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}, deg)
}

func TestEmptyContainer(t *testing.T) {
	h := hypergraph.New("empty")
	assert.True(t, h.IncidenceMatrix().IsEmpty())
	assert.True(t, h.AdjacencyMatrix().IsEmpty())
	assert.True(t, h.DegreeMatrix().IsEmpty())
	nf, err := h.NodeFeatureMatrix()
	require.NoError(t, err)
	assert.True(t, nf.IsEmpty())
	assert.Empty(t, hypergraph.ToRows(nf))
}

func TestFeatureMatrices(t *testing.T) {
	h := hypergraph.New("g")
	require.NoError(t, h.AddNode(core.NewNode("a", "", core.WithAttributes(map[string]any{"x": 1, "y": 2}))))
	require.NoError(t, h.AddNode(core.NewNode("b", "", core.WithAttributes(map[string]any{"x": 3, "y": 4}))))
	require.NoError(t, h.AddEdge(core.NewSimple("e", []string{"a", "b"}, "m")))

	nf, err := h.NodeFeatureMatrix()
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, hypergraph.ToRows(nf))

	ef, err := h.HyperedgeFeatureMatrix()
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{2, 3}}, hypergraph.ToRows(ef))
}

func TestNodeFeatureMatrix_DimensionMismatch(t *testing.T) {
	h := hypergraph.New("g")
	require.NoError(t, h.AddNode(core.NewNode("a", "", core.WithAttribute("x", 1))))
	require.NoError(t, h.AddNode(core.NewNode("b", "", core.WithAttribute("x", 1), core.WithAttribute("y", 1))))

	_, err := h.NodeFeatureMatrix()
	require.ErrorIs(t, err, hypergraph.ErrDimensionMismatch)
}

func TestConcatenateMatrices(t *testing.T) {
	small := func(id string, nodes int) *hypergraph.Hypergraph {
		h := hypergraph.New(id)
		ids := make([]string, 0, nodes)
		for i := 0; i < nodes; i++ {
			nid := id + string(rune('a'+i))
			ids = append(ids, nid)
			require.NoError(t, h.AddNode(core.NewNode(nid, "")))
		}
		require.NoError(t, h.AddEdge(core.NewSimple(id+"e", ids, "m")))
		return h
	}

	h1, h2 := small("x", 2), small("y", 2)
	rows, err := h1.ConcatenateMatrices(h2, 0)
	require.NoError(t, err)
	r, c := rows.Dims()
	assert.Equal(t, []int{4, 1}, []int{r, c})

	// The stacked result becomes the cached incidence matrix.
	r, _ = h1.IncidenceMatrix().Dims()
	assert.Equal(t, 4, r)

	h3, h4 := small("p", 2), small("q", 2)
	cols, err := h3.ConcatenateMatrices(h4, 1)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 1}, {1, 1}}, hypergraph.ToRows(cols))

	_, err = small("m", 2).ConcatenateMatrices(small("n", 3), 1)
	require.ErrorIs(t, err, hypergraph.ErrDimensionMismatch)
	_, err = h1.ConcatenateMatrices(h2, 2)
	require.ErrorIs(t, err, hypergraph.ErrBadAxis)

	same, err := small("k", 2).ConcatenateMatrices(hypergraph.New("empty"), 0)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1}, {1}}, hypergraph.ToRows(same))
}

func TestCreatePartition(t *testing.T) {
	h := hypergraph.New("g")
	require.NoError(t, h.AddNode(core.NewNode("n1", "", core.WithAttribute("type", "x"))))
	require.NoError(t, h.AddNode(core.NewNode("n2", "")))
	require.NoError(t, h.AddEdge(core.NewSimple("e1", []string{"n1", "n2"}, "m")))
	only := core.NewSimple("e2", []string{"n1"}, "m")
	require.NoError(t, h.AddEdge(only))
	require.NoError(t, h.AddEdge(core.NewAggregator("agg", []core.Hyperedge{only}, "m")))

	p := h.CreatePartition("typed", "TYPE")
	assert.Equal(t, []string{"n1"}, p.NodeIDs())
	assert.False(t, p.HasEdge("e1"))
	assert.Equal(t, []string{"e2", "agg"}, p.EdgeIDs())

	got, ok := h.Partition("typed")
	require.True(t, ok)
	assert.Same(t, p, got)
	assert.Equal(t, []string{"typed"}, h.PartitionIDs())
}

func TestPartition_FilterByMetadata(t *testing.T) {
	p := hypergraph.NewPartition("p")
	require.True(t, p.AddNode(core.NewNode("a", "")))
	e1 := core.NewSimple("e1", []string{"a"}, "m")
	e1.SetExtra("source", "curated")
	e2 := core.NewSimple("e2", []string{"a"}, "m")
	require.True(t, p.AddEdge(e1))
	require.True(t, p.AddEdge(e2))
	assert.False(t, p.AddEdge(core.NewSimple("e3", []string{"b"}, "m")))

	got := p.FilterByMetadata("source", "curated")
	require.Len(t, got, 1)
	assert.Equal(t, "e1", got[0].Head().ID)
}

func TestQueryMetadata(t *testing.T) {
	h := hypergraph.New("g")
	require.NoError(t, h.AddNode(core.NewNode("a", "", core.WithAttribute("Tissue", "liver"))))
	require.NoError(t, h.AddNode(core.NewNode("b", "", core.WithNodeMetadata(map[string]any{"tissue": "liver"}))))
	require.NoError(t, h.AddNode(core.NewNode("c", "", core.WithAttribute("tissue", "lung"))))

	got := h.QueryMetadata("TISSUE", "liver")
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
}

func TestEdgesOf(t *testing.T) {
	h := buildSample(t)
	var ids []string
	for _, e := range h.EdgesOf("a") {
		ids = append(ids, e.Head().ID)
	}
	assert.Equal(t, []string{"s1", "d1"}, ids)
	assert.Empty(t, h.EdgesOf("zzz"))
}
