// SPDX-License-Identifier: MIT
//
// File: nesting.go
// Role: "nesting" subcommand.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/hypernest/core"
	"github.com/katalvlaran/hypernest/hypergraph"
	"github.com/katalvlaran/hypernest/nesting"
)

type linkOutput struct {
	Other       string      `json:"other"`
	SharedNodes []string    `json:"shared_nodes"`
	SharedPairs []core.Pair `json:"shared_pairs"`
}

type flatOutput struct {
	Nodes     []string    `json:"nodes"`
	Edges     []string    `json:"edges"`
	Adjacency [][]float64 `json:"adjacency"`
	Degree    [][]float64 `json:"degree"`
}

type nestingOutput struct {
	Aggregator     string                  `json:"aggregator"`
	Children       []string                `json:"children"`
	DuplicateNodes []string                `json:"duplicate_nodes"`
	DuplicatePairs []core.Pair             `json:"duplicate_pairs"`
	Connectivity   map[string][]linkOutput `json:"connectivity"`
	Flattened      *flatOutput             `json:"flattened,omitempty"`
}

func (a *app) nestingCmd() *cobra.Command {
	var recurse, direction, flatten bool
	cmd := &cobra.Command{
		Use:   "nesting <aggregator-id>",
		Short: "Report duplicates and overlaps among an aggregator's children",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := a.load()
			if err != nil {
				return err
			}
			agg, err := aggregator(h, args[0])
			if err != nil {
				return err
			}
			opts := []nesting.Option{nesting.WithNodes(h)}
			if recurse {
				opts = append(opts, nesting.WithRecurse())
			}
			if direction {
				opts = append(opts, nesting.WithRespectDirection())
			}

			out, err := describeNesting(agg, flatten, opts)
			if err != nil {
				return err
			}
			a.log.Info("nesting described",
				zap.String("aggregator", agg.ID),
				zap.Int("children", len(out.Children)),
				zap.Int("duplicate_nodes", len(out.DuplicateNodes)),
				zap.Int("duplicate_pairs", len(out.DuplicatePairs)),
			)

			return writeJSON(cmd.OutOrStdout(), out)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&recurse, "recurse", false, "descend into nested aggregators")
	f.BoolVar(&direction, "respect-direction", false, "keep pair keys ordered")
	f.BoolVar(&flatten, "flatten", false, "include the flattened hypergraph and its matrices")

	return cmd
}

func aggregator(h *hypergraph.Hypergraph, id string) (*core.Aggregator, error) {
	e, ok := h.Edge(id)
	if !ok {
		return nil, fmt.Errorf("hyperedge %q not found", id)
	}
	agg, ok := e.(*core.Aggregator)
	if !ok {
		return nil, fmt.Errorf("hyperedge %q is %s, not an aggregator", id, e.Kind())
	}

	return agg, nil
}

func describeNesting(agg *core.Aggregator, flatten bool, opts []nesting.Option) (nestingOutput, error) {
	out := nestingOutput{Aggregator: agg.ID}

	children, err := nesting.Walk(agg, opts...)
	if err != nil {
		return out, err
	}
	out.Children = make([]string, 0, len(children))
	for _, c := range children {
		out.Children = append(out.Children, c.Head().ID)
	}

	if out.DuplicateNodes, err = nesting.FindDuplicateNodes(agg, opts...); err != nil {
		return out, err
	}
	if out.DuplicatePairs, err = nesting.FindDuplicatePairs(agg, opts...); err != nil {
		return out, err
	}
	links, err := nesting.DescribeConnectivity(agg, opts...)
	if err != nil {
		return out, err
	}
	out.Connectivity = make(map[string][]linkOutput, len(links))
	for id, ls := range links {
		row := make([]linkOutput, 0, len(ls))
		for _, l := range ls {
			row = append(row, linkOutput{Other: l.OtherID, SharedNodes: l.SharedNodes, SharedPairs: l.SharedPairs})
		}
		out.Connectivity[id] = row
	}
	if out.DuplicateNodes == nil {
		out.DuplicateNodes = []string{}
	}
	if out.DuplicatePairs == nil {
		out.DuplicatePairs = []core.Pair{}
	}

	if flatten {
		flat, err := nesting.Flatten(agg, opts...)
		if err != nil {
			return out, err
		}
		adj, err := nesting.FlattenedAdjacencyMatrix([]*core.Aggregator{agg}, opts...)
		if err != nil {
			return out, err
		}
		out.Flattened = &flatOutput{
			Nodes:     flat.NodeIDs(),
			Edges:     flat.EdgeIDs(),
			Adjacency: hypergraph.ToRows(adj),
			Degree:    hypergraph.ToRows(flat.DegreeMatrix()),
		}
	}

	return out, nil
}
