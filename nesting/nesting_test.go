// SPDX-License-Identifier: MIT
// Package nesting_test verifies walking, duplicate detection, connectivity and flattening.

package nesting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypernest/core"
	"github.com/katalvlaran/hypernest/hypergraph"
	"github.com/katalvlaran/hypernest/nesting"
)

func ids(es []core.Hyperedge) []string {
	out := make([]string, 0, len(es))
	for _, e := range es {
		out = append(out, e.Head().ID)
	}
	return out
}

func TestWalk(t *testing.T) {
	c1 := core.NewSimple("c1", []string{"a"}, "m")
	c2 := core.NewSimple("c2", []string{"b"}, "m")
	c3 := core.NewSimple("c3", []string{"c"}, "m")
	inner := core.NewAggregator("inner", []core.Hyperedge{c2, c3}, "m")
	outer := core.NewAggregator("outer", []core.Hyperedge{c1, inner}, "m")

	flat, err := nesting.Walk(outer)
	require.NoError(t, err)
	assert.Equal(t, []string{"c1", "inner"}, ids(flat))

	deep, err := nesting.Walk(outer, nesting.WithRecurse())
	require.NoError(t, err)
	assert.Equal(t, []string{"c1", "inner", "c2", "c3"}, ids(deep))

	_, err = nesting.Walk(nil)
	require.ErrorIs(t, err, core.ErrNilHyperedge)
}

func TestWalk_DetectsCycles(t *testing.T) {
	a := core.NewAggregator("a", nil, "m")
	b := core.NewAggregator("b", []core.Hyperedge{a}, "m")
	a.Children = append(a.Children, b) // bypasses AddChild on purpose

	_, err := nesting.Walk(a, nesting.WithRecurse())
	require.ErrorIs(t, err, core.ErrCyclicNesting)

	// Immediate children are still listable.
	flat, err := nesting.Walk(a)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, ids(flat))

	_, err = nesting.Flatten(a)
	require.ErrorIs(t, err, core.ErrCyclicNesting)
}

func TestFindDuplicateNodes(t *testing.T) {
	c1 := core.NewSimple("C1", []string{"a", "b"}, "m")
	c2 := core.NewSimple("C2", []string{"b", "c"}, "m")
	agg := core.NewAggregator("agg", []core.Hyperedge{c1, c2}, "m")

	dups, err := nesting.FindDuplicateNodes(agg)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, dups)
}

func TestFindDuplicateNodes_OneCountPerChild(t *testing.T) {
	c1 := core.NewSimple("C1", []string{"a", "a"}, "m")
	c2 := core.NewDirected("C2", []string{"x"}, []string{"a"}, "m")
	c3 := core.NewSimple("C3", []string{"x"}, "m")
	agg := core.NewAggregator("agg", []core.Hyperedge{c1, c2, c3}, "m")

	dups, err := nesting.FindDuplicateNodes(agg)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "x"}, dups)
}

func TestFindDuplicatePairs(t *testing.T) {
	c1 := core.NewSimple("c1", []string{"a", "b"}, "m")
	c1.SetPairScore("b", "a", "w", 1, true)
	c2 := core.NewSimple("c2", []string{"a", "b"}, "m")
	c2.SetPairScore("a", "b", "w", 2, false)
	agg := core.NewAggregator("agg", []core.Hyperedge{c1, c2}, "m")

	canonical, err := nesting.FindDuplicatePairs(agg)
	require.NoError(t, err)
	assert.Equal(t, []core.Pair{{"a", "b"}}, canonical)

	directed, err := nesting.FindDuplicatePairs(agg, nesting.WithRespectDirection())
	require.NoError(t, err)
	assert.Empty(t, directed)
}

func TestDuplicateScores(t *testing.T) {
	c1 := core.NewSimple("c1", []string{"a", "b"}, "m")
	c1.SetNodeScore("b", "confidence", 0.5)
	c1.SetPairScore("a", "b", "weight", 0.25, false)
	c2 := core.NewSimple("c2", []string{"a", "b", "c"}, "m")
	c3 := core.NewSimple("c3", []string{"c"}, "m")
	agg := core.NewAggregator("agg", []core.Hyperedge{c1, c2, c3}, "m")

	nodes, err := nesting.DuplicateNodeScores(agg, []string{"b"})
	require.NoError(t, err)
	assert.Equal(t, []nesting.ScoreRecord{
		{HyperedgeID: "c1", Scores: core.Scores{"confidence": 0.5}},
		{HyperedgeID: "c2", Scores: core.Scores{}},
	}, nodes["b"])

	pairs, err := nesting.DuplicatePairScores(agg, []core.Pair{{"b", "a"}})
	require.NoError(t, err)
	assert.Equal(t, []nesting.ScoreRecord{
		{HyperedgeID: "c1", Scores: core.Scores{"weight": 0.25}},
		{HyperedgeID: "c2", Scores: core.Scores{}},
	}, pairs[core.Pair{"b", "a"}])
}

func TestDescribeConnectivity(t *testing.T) {
	c1 := core.NewSimple("c1", []string{"a", "b"}, "m")
	c2 := core.NewSimple("c2", []string{"c", "b"}, "m")
	c3 := core.NewSimple("c3", []string{"x"}, "m")
	c3.SetPairScore("a", "b", "w", 1, false)
	c1.SetPairScore("a", "b", "w", 1, false)
	agg := core.NewAggregator("agg", []core.Hyperedge{c1, c2, c3}, "m")

	links, err := nesting.DescribeConnectivity(agg)
	require.NoError(t, err)

	assert.Equal(t, []nesting.Link{
		{OtherID: "c2", SharedNodes: []string{"b"}, SharedPairs: []core.Pair{}},
		{OtherID: "c3", SharedNodes: []string{}, SharedPairs: []core.Pair{{"a", "b"}}},
	}, links["c1"])
	assert.Len(t, links["c2"], 1)
	assert.Equal(t, "c1", links["c3"][0].OtherID)
}

func buildTree() (*core.Aggregator, *core.Simple) {
	leaf := core.NewSimple("c1", []string{"a", "b"}, "m")
	leaf.SetNodeScore("a", "w", 0.5)
	d := core.NewDirected("d", []string{"a"}, []string{"c"}, "m")
	inner := core.NewAggregator("inner", []core.Hyperedge{d}, "m")
	outer := core.NewAggregator("outer", []core.Hyperedge{leaf, inner}, "m")

	return outer, leaf
}

func TestFlatten(t *testing.T) {
	outer, leaf := buildTree()
	known := core.NewNode("b", "gene", core.WithAttribute("symbol", "TP53"))

	h, err := nesting.Flatten(outer, nesting.WithNodes(core.NodeMap{"b": known}))
	require.NoError(t, err)
	assert.Equal(t, nesting.FlattenedID, h.ID)
	assert.Equal(t, []string{"a", "b", "c"}, h.NodeIDs())
	assert.Equal(t, []string{"c1", "d"}, h.EdgeIDs())

	got, ok := h.Edge("c1")
	require.True(t, ok)
	assert.Same(t, leaf, got)
	assert.Equal(t, 0.5, got.Head().NodeScore("a", "w", 0))

	a, _ := h.Node("a")
	assert.Equal(t, core.DefaultNodeType, a.Type)
	b, _ := h.Node("b")
	assert.Same(t, known, b)
}

func TestFlattenedMatrices(t *testing.T) {
	outer, _ := buildTree()

	deg, err := nesting.FlattenedDegreeMatrix([]*core.Aggregator{outer})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{2, 0, 0}, {0, 1, 0}, {0, 0, 1}}, hypergraph.ToRows(deg))

	adj, err := nesting.FlattenedAdjacencyMatrix([]*core.Aggregator{outer})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{
		{0, 2, 2},
		{2, 0, 1},
		{1, 1, 0},
	}, hypergraph.ToRows(adj))

	empty, err := nesting.FlattenedAdjacencyMatrix(nil)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
}
