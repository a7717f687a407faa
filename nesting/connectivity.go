// SPDX-License-Identifier: MIT
//
// File: connectivity.go
// Role: Pairwise overlap between the children of an aggregator.

package nesting

import "github.com/katalvlaran/hypernest/core"

// Link records that a child hyperedge overlaps with another child.
type Link struct {
	OtherID     string
	SharedNodes []string    // sorted
	SharedPairs []core.Pair // sorted
}

// DescribeConnectivity maps each listed child ID to its links with the other
// children. Two children are linked when they share a node or a pair-score key
// (canonicalized unless WithRespectDirection). Links are recorded on both sides
// and appear in listing order.
//
// Complexity:
//   - Time O(k²·m) for k listed children of at most m nodes/pairs each.
func DescribeConnectivity(agg *core.Aggregator, opts ...Option) (map[string][]Link, error) {
	children, err := Walk(agg, opts...)
	if err != nil {
		return nil, err
	}
	o := gather(opts)

	nodes := nodeSets(children)
	pairs := make([]map[core.Pair]struct{}, len(children))
	for i, c := range children {
		keys := c.Head().PairKeys(o.RespectDirection)
		pairs[i] = make(map[core.Pair]struct{}, len(keys))
		for _, k := range keys {
			pairs[i][k] = struct{}{}
		}
	}

	out := make(map[string][]Link)
	for i := 0; i < len(children); i++ {
		for j := i + 1; j < len(children); j++ {
			shared := make(map[string]struct{})
			for id := range nodes[i] {
				if _, ok := nodes[j][id]; ok {
					shared[id] = struct{}{}
				}
			}
			sharedPairs := make([]core.Pair, 0)
			for k := range pairs[i] {
				if _, ok := pairs[j][k]; ok {
					sharedPairs = append(sharedPairs, k)
				}
			}
			if len(shared) == 0 && len(sharedPairs) == 0 {
				continue
			}
			sharedNodes := sortedKeys(shared)
			core.SortPairs(sharedPairs)

			a, b := children[i].Head().ID, children[j].Head().ID
			out[a] = append(out[a], Link{OtherID: b, SharedNodes: sharedNodes, SharedPairs: sharedPairs})
			out[b] = append(out[b], Link{OtherID: a, SharedNodes: sharedNodes, SharedPairs: sharedPairs})
		}
	}

	return out, nil
}
