// SPDX-License-Identifier: MIT
// Package core_test verifies hyperedge scores, nesting tags and set algebra.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypernest/core"
)

func TestHyperedge_Defaults(t *testing.T) {
	e := core.NewSimple("e1", []string{"a", "b"}, "col")
	assert.Equal(t, core.KindSimple, e.Kind())
	assert.Equal(t, core.DefaultWeight, e.Weight)
	assert.Nil(t, e.Features)
	assert.NotNil(t, e.NodeScores)
	assert.NotNil(t, e.PairScores)

	w := core.NewDirected("d1", []string{"a"}, []string{"b"}, "m", core.WithWeight(2.5))
	assert.Equal(t, 2.5, w.Weight)
	assert.Equal(t, 2.5, w.EffectiveWeight())
	w.SetScore(core.ScoreWeight, 0.5)
	assert.Equal(t, 0.5, w.EffectiveWeight())
}

func TestHyperedge_ConstructorsCopyNodeLists(t *testing.T) {
	members := []string{"a", "b"}
	sources, targets := []string{"a"}, []string{"b"}

	s := core.NewSimple("s", members, "m")
	d := core.NewDirected("d", sources, targets, "m")
	nd := core.NewNodeDirected("nd", sources, targets, "m")

	members[0] = "x"
	sources[0], targets[0] = "y", "z"
	members = append(members, "c")

	assert.Equal(t, []string{"a", "b"}, s.Nodes)
	assert.Equal(t, []string{"a"}, d.Sources)
	assert.Equal(t, []string{"b"}, d.Targets)
	assert.Equal(t, []string{"a"}, nd.Sources)
	assert.Equal(t, []string{"b"}, nd.Targets)
	assert.Len(t, members, 3)
}

func TestHyperedge_NodeScores(t *testing.T) {
	e := core.NewSimple("e1", []string{"a", "b"}, "m")
	e.SetNodeScore("a", "confidence", 0.75)

	assert.Equal(t, 0.75, e.NodeScore("a", "confidence", 1))
	assert.Equal(t, 1.0, e.NodeScore("a", "weight", 1))
	assert.Equal(t, 0.25, e.NodeScore("b", "confidence", 0.25))
}

func TestHyperedge_PairScores(t *testing.T) {
	e := core.NewNodeDirected("e1", []string{"a"}, []string{"b"}, "m")

	e.SetPairScore("b", "a", "weight", 0.5, false)
	assert.Equal(t, 0.5, e.PairScore("a", "b", "weight", 0, false))
	assert.Contains(t, e.PairScores, core.Pair{"a", "b"})

	e.SetPairScore("b", "a", "flow", 2, true)
	assert.Equal(t, 2.0, e.PairScore("b", "a", "flow", 0, true))
	assert.Equal(t, 0.0, e.PairScore("a", "b", "flow", 0, true))
	assert.Contains(t, e.PairScores, core.Pair{"b", "a"})

	assert.Equal(t, []core.Pair{{"a", "b"}, {"b", "a"}}, e.PairKeys(true))
	assert.Equal(t, []core.Pair{{"a", "b"}}, e.PairKeys(false))
}

func TestHyperedge_AlphaBeta(t *testing.T) {
	e := core.NewSimple("e", nil, "m")
	assert.Equal(t, 1.0, e.AlphaBeta())
	e.SetScore(core.ScoreAlpha, 0.5)
	e.SetScore(core.ScoreBeta, 0.5)
	assert.Equal(t, 0.25, e.AlphaBeta())
}

func TestNodeIDs(t *testing.T) {
	s := core.NewSimple("s", []string{"a", "b", "a"}, "m")
	d := core.NewDirected("d", []string{"b"}, []string{"c"}, "m")
	inner := core.NewAggregator("inner", []core.Hyperedge{d}, "m")
	outer := core.NewAggregator("outer", []core.Hyperedge{s, inner}, "m")

	assert.Equal(t, []string{"a", "b", "a"}, core.NodeIDs(s))
	assert.Equal(t, []string{"b", "c"}, core.NodeIDs(d))
	assert.Equal(t, []string{"a", "b", "c"}, core.NodeIDs(outer))
	assert.Nil(t, core.NodeIDs(nil))
}

func TestAggregator_TagChildIsIdempotent(t *testing.T) {
	child := core.NewSimple("c", []string{"a"}, "m")
	agg := core.NewAggregator("agg", []core.Hyperedge{child}, "m")

	info := child.Nesting
	require.True(t, info.Nested)
	assert.Equal(t, core.KindSimple, info.OriginalKind)
	assert.Equal(t, []string{"agg"}, info.Parents)
	assert.Equal(t, 1, info.ParentsCount)

	agg.TagChild(child)
	agg.TagChild(child)
	assert.Equal(t, 1, child.Nesting.ParentsCount)
	assert.Len(t, child.Nesting.Parents, 1)

	other := core.NewAggregator("agg2", []core.Hyperedge{child}, "m")
	assert.Equal(t, []string{"agg", "agg2"}, child.Nesting.Parents)
	assert.Equal(t, 2, child.Nesting.ParentsCount)
	assert.Equal(t, 1, other.ChildrenCount())
}

func TestAggregator_Untracked(t *testing.T) {
	child := core.NewSimple("c", []string{"a"}, "m")
	core.NewAggregator("agg", []core.Hyperedge{child, nil}, "m", core.WithoutHierarchyTracking())
	assert.False(t, child.Nesting.Nested)
	assert.Empty(t, child.Nesting.Parents)
}

func TestAggregator_AddChildRejectsCycles(t *testing.T) {
	a := core.NewAggregator("a", nil, "m")
	b := core.NewAggregator("b", []core.Hyperedge{a}, "m")

	require.ErrorIs(t, a.AddChild(a), core.ErrCyclicNesting)
	require.ErrorIs(t, a.AddChild(b), core.ErrCyclicNesting)
	require.ErrorIs(t, a.AddChild(nil), core.ErrNilHyperedge)

	leaf := core.NewSimple("leaf", []string{"x"}, "m")
	require.NoError(t, a.AddChild(leaf))
	assert.True(t, core.Contains(b, leaf))
	assert.Equal(t, 1, a.ChildrenCount())
}

func TestIntersect_Simple(t *testing.T) {
	a := core.NewSimple("a", []string{"a", "b", "c"}, "m1")
	b := core.NewSimple("b", []string{"b", "c", "d"}, "m2")
	a.SetNodeScore("b", "w", 3)

	got, err := core.Intersect(a, b)
	require.NoError(t, err)
	s := got.(*core.Simple)
	assert.Equal(t, "a_intersect_b", s.ID)
	assert.Equal(t, "m1_m2", s.Modality)
	assert.ElementsMatch(t, []string{"b", "c"}, s.Nodes)
	assert.Empty(t, s.NodeScores)
}

func TestUnion_Directed(t *testing.T) {
	a := core.NewDirected("a", []string{"s1"}, []string{"t1"}, "x")
	b := core.NewDirected("b", []string{"s1", "s2"}, []string{"t2"}, "y")

	got, err := core.Union(a, b)
	require.NoError(t, err)
	d := got.(*core.Directed)
	assert.Equal(t, "a_union_b", d.ID)
	assert.Equal(t, []string{"s1", "s2"}, d.Sources)
	assert.Equal(t, []string{"t1", "t2"}, d.Targets)

	in := a.Intersect(b)
	assert.Equal(t, []string{"s1"}, in.Sources)
	assert.Empty(t, in.Targets)
}

func TestSetAlgebra_KindMismatch(t *testing.T) {
	a := core.NewDirected("a", nil, nil, "x")
	b := core.NewNodeDirected("b", nil, nil, "y")
	_, err := core.Union(a, b)
	require.ErrorIs(t, err, core.ErrKindMismatch)
	_, err = core.Intersect(a, nil)
	require.ErrorIs(t, err, core.ErrNilHyperedge)
}

func TestSetAlgebra_Aggregator(t *testing.T) {
	c1 := core.NewSimple("c1", []string{"a"}, "m")
	c2 := core.NewSimple("c2", []string{"b"}, "m")
	c3 := core.NewSimple("c3", []string{"c"}, "m")
	x := core.NewAggregator("x", []core.Hyperedge{c1, c2}, "m")
	y := core.NewAggregator("y", []core.Hyperedge{c2, c3}, "m")

	in := x.Intersect(y)
	require.Len(t, in.Children, 1)
	assert.Equal(t, "c2", in.Children[0].Head().ID)
	assert.Contains(t, c2.Nesting.Parents, "x_intersect_y")

	un := x.Union(y)
	assert.Equal(t, 3, un.ChildrenCount())
}

func TestComputeFeatures_Average(t *testing.T) {
	a := core.NewNode("a", "t")
	a.Features = []float64{1, 2}
	b := core.NewNode("b", "t")
	b.Features = []float64{3, 4}
	c := core.NewNode("c", "t") // no vector: skipped
	lookup := core.NodeMap{"a": a, "b": b, "c": c}

	e := core.NewSimple("e", []string{"a", "b", "c", "ghost"}, "m")
	require.NoError(t, e.ComputeFeatures(lookup))
	assert.Equal(t, []float64{2, 3}, e.Features)

	empty := core.NewDirected("d", []string{"c"}, []string{"ghost"}, "m")
	require.NoError(t, empty.ComputeFeatures(lookup))
	assert.Equal(t, []float64{0}, empty.Features)
}

func TestComputeFeatures_DimensionMismatch(t *testing.T) {
	a := core.NewNode("a", "t")
	a.Features = []float64{1}
	b := core.NewNode("b", "t")
	b.Features = []float64{1, 2}

	e := core.NewSimple("e", []string{"a", "b"}, "m")
	err := e.ComputeFeatures(core.NodeMap{"a": a, "b": b})
	require.ErrorIs(t, err, core.ErrFeatureDimension)
	assert.Nil(t, e.Features)
}

func TestParseKind(t *testing.T) {
	assert.Equal(t, core.KindDirected, core.ParseKind("directed"))
	assert.Equal(t, core.KindNodeDirected, core.ParseKind("node_directed"))
	assert.Equal(t, core.KindSimple, core.ParseKind("whatever"))
}
