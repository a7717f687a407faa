// SPDX-License-Identifier: MIT
// Package traversal_test exercises shortest paths, best-first search and path metrics.

package traversal_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypernest/adapter"
	"github.com/katalvlaran/hypernest/core"
	"github.com/katalvlaran/hypernest/hypergraph"
	"github.com/katalvlaran/hypernest/traversal"
)

// triangle builds A-B (1), B-C (1), A-C (5) plus an isolated node X.
func triangle(t *testing.T) *adapter.Hypergraph {
	t.Helper()
	h := hypergraph.New("tri")
	for _, id := range []string{"A", "B", "C", "X"} {
		require.NoError(t, h.AddNode(core.NewNode(id, "")))
	}
	require.NoError(t, h.AddEdge(core.NewSimple("ab", []string{"A", "B"}, "m", core.WithWeight(1))))
	require.NoError(t, h.AddEdge(core.NewSimple("bc", []string{"B", "C"}, "m", core.WithWeight(1))))
	require.NoError(t, h.AddEdge(core.NewSimple("ac", []string{"A", "C"}, "m", core.WithWeight(5))))

	return adapter.NewHypergraph(h)
}

// scored builds S(disease) with two routes to D(drug):
//
//	S-A 0.5, A-D 0.5, S-B 0.25, B-D 1.0
func scored(t *testing.T) *adapter.Hypergraph {
	t.Helper()
	h := hypergraph.New("scored")
	for _, n := range []struct{ id, typ string }{{"S", "disease"}, {"A", "gene"}, {"B", "gene"}, {"D", "drug"}} {
		require.NoError(t, h.AddNode(core.NewNode(n.id, n.typ)))
	}
	add := func(id, a, b string, alpha float64) {
		e := core.NewSimple(id, []string{a, b}, "m")
		e.SetScore(core.ScoreAlpha, alpha)
		require.NoError(t, h.AddEdge(e))
	}
	add("sa", "S", "A", 0.5)
	add("ad", "A", "D", 0.5)
	add("sb", "S", "B", 0.25)
	add("bd", "B", "D", 1.0)

	return adapter.NewHypergraph(h)
}

// unweighted hides the Weighter capability of an adapter.
type unweighted struct{ adapter.Graph }

func TestShortestPath(t *testing.T) {
	g := triangle(t)

	path, err := traversal.ShortestPath(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, path)

	path, err = traversal.ShortestPath(g, "A", "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, path)

	path, err = traversal.ShortestPath(g, "A", "X")
	require.NoError(t, err)
	assert.Nil(t, path, "unreachable target is absence, not an error")

	path, err = traversal.ShortestPath(g, "A", "missing")
	require.NoError(t, err)
	assert.Nil(t, path)

	path, err = traversal.ShortestPath(unweighted{g}, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, path, "unit weights prefer the direct hop")

	_, err = traversal.ShortestPath(nil, "A", "C")
	require.ErrorIs(t, err, traversal.ErrNilGraph)
}

func TestShortestPath_MetadataWeightAndDirection(t *testing.T) {
	h := hypergraph.New("d")
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, h.AddNode(core.NewNode(id, "")))
	}
	slow := core.NewDirected("ab", []string{"A"}, []string{"B"}, "m")
	slow.SetScore(core.ScoreWeight, 10)
	require.NoError(t, h.AddEdge(slow))
	require.NoError(t, h.AddEdge(core.NewNodeDirected("bc", []string{"B"}, []string{"C"}, "m")))
	require.NoError(t, h.AddEdge(core.NewSimple("ac", []string{"A", "C"}, "m", core.WithWeight(3))))

	path, err := traversal.ShortestPath(adapter.NewHypergraph(h), "A", "B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "B"}, path, "target-to-source hop is allowed")
}

func TestShortestPath_NegativeWeight(t *testing.T) {
	h := hypergraph.New("neg")
	require.NoError(t, h.AddNode(core.NewNode("A", "")))
	require.NoError(t, h.AddNode(core.NewNode("B", "")))
	require.NoError(t, h.AddEdge(core.NewSimple("ab", []string{"A", "B"}, "m", core.WithWeight(-1))))

	_, err := traversal.ShortestPath(adapter.NewHypergraph(h), "A", "B")
	require.ErrorIs(t, err, traversal.ErrNegativeWeight)
}

func TestFindPaths_Defaults(t *testing.T) {
	res, err := traversal.FindPaths(scored(t), "S")
	require.NoError(t, err)

	want := []traversal.Result{
		{Path: []string{"S"}, Score: 1},
		{Path: []string{"S", "A"}, Score: 0.5},
		{Path: []string{"S", "B"}, Score: 0.25},
		{Path: []string{"S", "A", "D"}, Score: 0.25},
		{Path: []string{"S", "B", "D"}, Score: 0.25},
		{Path: []string{"S", "A", "D", "B"}, Score: 0.25},
		{Path: []string{"S", "B", "D", "A"}, Score: 0.125},
	}
	assert.Equal(t, want, res)
}

func TestFindPaths_Options(t *testing.T) {
	g := scored(t)

	cases := []struct {
		name string
		opts []traversal.Option
		want [][]string
	}{
		{"end type", []traversal.Option{traversal.WithEndType("drug")},
			[][]string{{"S", "A", "D"}, {"S", "B", "D"}}},
		{"tau prunes", []traversal.Option{traversal.WithTau(0.3)},
			[][]string{{"S"}, {"S", "A"}}},
		{"one hop", []traversal.Option{traversal.WithMaxHops(1)},
			[][]string{{"S"}, {"S", "A"}, {"S", "B"}}},
		{"zero hops", []traversal.Option{traversal.WithMaxHops(0)},
			[][]string{{"S"}}},
		{"first only", []traversal.Option{traversal.WithCollectAll(false)},
			[][]string{{"S"}}},
		{"first drug", []traversal.Option{traversal.WithCollectAll(false), traversal.WithEndType("drug")},
			[][]string{{"S", "A", "D"}}},
		{"coarse dedup", []traversal.Option{traversal.WithDedupPrecision(0)},
			[][]string{{"S"}, {"S", "A"}, {"S", "B"}, {"S", "A", "D"}, {"S", "B", "D"}, {"S", "A", "D", "B"}, {"S", "B", "D", "A"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := traversal.FindPaths(g, "S", tc.opts...)
			require.NoError(t, err)
			got := make([][]string, len(res))
			for i, r := range res {
				got[i] = r.Path
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFindPaths_Bounds(t *testing.T) {
	for _, tau := range []float64{0, 0.1, 0.25, 0.5} {
		for hops := 0; hops <= 4; hops++ {
			res, err := traversal.FindPaths(scored(t), "S", traversal.WithTau(tau), traversal.WithMaxHops(hops))
			require.NoError(t, err)
			for _, r := range res {
				assert.GreaterOrEqual(t, r.Score, tau)
				assert.LessOrEqual(t, r.Hops(), hops)
			}
		}
	}
}

func TestFindPaths_Errors(t *testing.T) {
	g := scored(t)

	res, err := traversal.FindPaths(g, "nobody")
	require.NoError(t, err)
	assert.Empty(t, res)

	for _, opt := range []traversal.Option{
		traversal.WithTau(-0.1),
		traversal.WithMaxHops(-1),
		traversal.WithDedupPrecision(16),
	} {
		_, err = traversal.FindPaths(g, "S", opt)
		require.ErrorIs(t, err, traversal.ErrOptionViolation)
	}

	_, err = traversal.FindPaths(nil, "S")
	require.ErrorIs(t, err, traversal.ErrNilGraph)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = traversal.FindPaths(g, "S", traversal.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestPathMetrics(t *testing.T) {
	g := triangle(t)

	assert.Equal(t, 0, traversal.PathLength(nil))
	assert.Equal(t, 0, traversal.PathLength([]string{"A"}))
	assert.Equal(t, 2, traversal.PathLength([]string{"A", "B", "C"}))

	assert.Equal(t, 2.0, traversal.PathWeight(g, []string{"A", "B", "C"}))
	assert.Equal(t, 5.0, traversal.PathWeight(g, []string{"A", "C", "X"}))

	assert.Equal(t, 2, traversal.PathConnectivity(g, []string{"A", "B", "C"}))
	assert.Equal(t, 1, traversal.PathConnectivity(g, []string{"A", "C", "X"}))
}

func TestNeighborhood(t *testing.T) {
	g := scored(t)

	r, err := traversal.Neighborhood(g, "S")
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "A", "B", "D"}, r.Order)
	assert.Equal(t, map[string]int{"S": 0, "A": 1, "B": 1, "D": 2}, r.Depth)
	assert.Equal(t, "A", r.Parent["D"], "first discoverer wins")
	assert.Equal(t, []string{"S", "A", "D"}, r.PathTo("D"))
	assert.Equal(t, []string{"S"}, r.PathTo("S"))
	assert.Nil(t, r.PathTo("nobody"))

	r, err = traversal.Neighborhood(g, "S", traversal.WithMaxHops(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "A", "B"}, r.Order)

	r, err = traversal.Neighborhood(g, "nobody")
	require.NoError(t, err)
	assert.Nil(t, r)

	_, err = traversal.Neighborhood(nil, "S")
	require.ErrorIs(t, err, traversal.ErrNilGraph)
	_, err = traversal.Neighborhood(g, "S", traversal.WithMaxHops(-1))
	require.ErrorIs(t, err, traversal.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = traversal.Neighborhood(g, "S", traversal.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
