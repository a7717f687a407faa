// SPDX-License-Identifier: MIT
// Package hetnet_test verifies strict edge insertion and tabular construction.

package hetnet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypernest/core"
	"github.com/katalvlaran/hypernest/hetnet"
)

func TestAddEdge_ReferentialIntegrity(t *testing.T) {
	nw := hetnet.New("net")
	require.NoError(t, nw.AddNode(core.NewNode("a", "gene")))

	err := nw.AddEdge(hetnet.NewEdge("e1", "a", "b"))
	require.ErrorIs(t, err, hetnet.ErrReferentialIntegrity)
	assert.Contains(t, err.Error(), `"b"`)
	assert.Zero(t, nw.EdgeCount())

	require.NoError(t, nw.AddNode(core.NewNode("b", "disease")))
	require.NoError(t, nw.AddEdge(hetnet.NewEdge("e1", "a", "b")))
	assert.Equal(t, []string{"e1"}, nw.EdgeIDs())
}

func TestAddInvalid(t *testing.T) {
	nw := hetnet.New("net")
	require.ErrorIs(t, nw.AddNode(nil), hetnet.ErrNilNode)
	require.ErrorIs(t, nw.AddNode(core.NewNode("", "")), core.ErrEmptyID)
	require.ErrorIs(t, nw.AddEdge(nil), hetnet.ErrNilEdge)
	require.ErrorIs(t, nw.AddEdge(hetnet.NewEdge("", "a", "b")), core.ErrEmptyID)
}

func TestNewEdge_Defaults(t *testing.T) {
	e := hetnet.NewEdge("e", "a", "b")
	assert.Equal(t, core.KindSimple, e.Kind)
	assert.Equal(t, hetnet.DefaultModality, e.Modality)
	assert.Equal(t, core.DefaultWeight, e.Weight)
	assert.NotNil(t, e.Scores)
	assert.True(t, e.Connects("b", "a"))
	assert.False(t, e.Connects("a", "c"))

	e.SetScore(core.ScoreWeight, 3)
	assert.Equal(t, 3.0, e.EffectiveWeight())

	d := hetnet.NewEdge("d", "a", "b",
		hetnet.WithKind(core.KindDirected),
		hetnet.WithModality("regulation"),
		hetnet.WithWeight(0.5),
		hetnet.WithEndpoints([]string{"a", "x"}, []string{"b"}),
		hetnet.WithConnected([]string{"a", "b", "x"}),
	)
	assert.Equal(t, core.KindDirected, d.Kind)
	assert.Equal(t, "regulation", d.Modality)
	assert.Equal(t, 0.5, d.EffectiveWeight())
	assert.Equal(t, []string{"a", "x"}, d.Sources)
	assert.Equal(t, []string{"a", "b", "x"}, d.Connected)
}

func TestFromRecords(t *testing.T) {
	rows := []map[string]any{
		{"gene": "TP53", "disease": "cancer", "pmid": 101},
		{"gene": "BRCA1", "disease": "cancer", "pmid": 102},
		{"gene": "TP53", "disease": "li-fraumeni", "pmid": nil},
	}
	nw := hetnet.New("net")
	require.NoError(t, nw.FromRecords(rows, []string{"gene", "disease"}, []string{"gene", "disease", "pmid"}))

	assert.Equal(t, []string{"TP53", "BRCA1", "cancer", "li-fraumeni"}, nw.NodeIDs())
	assert.Equal(t, []string{"edge_0", "edge_1", "edge_2"}, nw.EdgeIDs())

	e, ok := nw.Edge("edge_1")
	require.True(t, ok)
	assert.Equal(t, "BRCA1", e.Source)
	assert.Equal(t, "cancer", e.Target)
	v, ok := e.ExtraValue("pmid")
	require.True(t, ok)
	assert.Equal(t, 102, v)

	n, _ := nw.Node("TP53")
	assert.Equal(t, core.DefaultNodeType, n.Type)

	// Counter continues across calls.
	assert.Equal(t, "edge_3", nw.NextEdgeID())
}

func TestFromRecords_Errors(t *testing.T) {
	nw := hetnet.New("net")
	require.ErrorIs(t, nw.FromRecords(nil, nil, []string{"only"}), hetnet.ErrEdgeColumns)

	rows := []map[string]any{{"a": "x", "b": "y"}}
	err := nw.FromRecords(rows, []string{"a"}, []string{"a", "b"})
	require.ErrorIs(t, err, hetnet.ErrReferentialIntegrity)
}

func TestFormatIDNumbers(t *testing.T) {
	nw := hetnet.New("net")
	rows := []map[string]any{{"s": 1.0, "t": 2}}
	require.NoError(t, nw.FromRecords(rows, []string{"s", "t"}, []string{"s", "t"}))
	assert.Equal(t, []string{"1", "2"}, nw.NodeIDs())
}
