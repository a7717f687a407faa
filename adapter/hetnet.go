// SPDX-License-Identifier: MIT
//
// File: hetnet.go
// Role: Graph adapter over hetnet.Network.

package adapter

import "github.com/katalvlaran/hypernest/hetnet"

// HetNet adapts a *hetnet.Network. Only the Source/Target pair of each edge
// is considered; Sources, Targets and Connected describe conversions, not
// adjacency.
type HetNet struct {
	nw *hetnet.Network
}

// NewHetNet wraps nw.
func NewHetNet(nw *hetnet.Network) *HetNet { return &HetNet{nw: nw} }

// IsValidNode implements Graph.
func (a *HetNet) IsValidNode(id string) bool { return a.nw.HasNode(id) }

// NodeType implements Graph.
func (a *HetNet) NodeType(id string) string {
	if n, ok := a.nw.Node(id); ok {
		return n.Type
	}
	return ""
}

// Neighbors implements Graph.
func (a *HetNet) Neighbors(id string) []string {
	set := make(neighborSet)
	for _, e := range a.nw.Edges() {
		switch id {
		case e.Source:
			set.add(e.Target)
		case e.Target:
			set.add(e.Source)
		}
	}

	return set.sorted(id)
}

// EdgeScore implements Graph.
func (a *HetNet) EdgeScore(x, y string) float64 { return a.scan(x, y).score }

// EdgeWeight implements Weighter.
func (a *HetNet) EdgeWeight(x, y string) (float64, bool) {
	b := a.scan(x, y)
	return b.weight, b.found
}

func (a *HetNet) scan(x, y string) best {
	var b best
	for _, e := range a.nw.Edges() {
		if e.Connects(x, y) {
			b.observe(e.AlphaBeta(), e.EffectiveWeight())
		}
	}

	return b
}
