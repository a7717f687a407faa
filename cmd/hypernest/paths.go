// SPDX-License-Identifier: MIT
//
// File: paths.go
// Role: "shortest" and "paths" subcommands.

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/hypernest/traversal"
)

type shortestOutput struct {
	Path   []string `json:"path"`
	Length int      `json:"length"`
	Weight float64  `json:"weight"`
	Found  bool     `json:"found"`
}

type pathsOutput struct {
	Start   string             `json:"start"`
	EndType string             `json:"end_type,omitempty"`
	Results []traversal.Result `json:"results"`
}

func (a *app) shortestCmd() *cobra.Command {
	var repr string
	cmd := &cobra.Command{
		Use:   "shortest <source> <target>",
		Short: "Print the minimum-weight path between two nodes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := a.load()
			if err != nil {
				return err
			}
			g, err := view(h, repr)
			if err != nil {
				return err
			}
			path, err := traversal.ShortestPath(g, args[0], args[1])
			if err != nil {
				return err
			}
			out := shortestOutput{Path: path, Found: path != nil}
			if out.Found {
				out.Length = traversal.PathLength(path)
				out.Weight = traversal.PathWeight(g, path)
			} else {
				out.Path = []string{}
			}
			a.log.Info("shortest path",
				zap.String("source", args[0]),
				zap.String("target", args[1]),
				zap.String("representation", repr),
				zap.Bool("found", out.Found),
			)

			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVarP(&repr, "representation", "r", reprHypergraph, "graph view: hypergraph, hetnet or entity")

	return cmd
}

func (a *app) pathsCmd() *cobra.Command {
	var (
		repr      string
		endType   string
		tau       float64
		maxHops   int
		first     bool
		precision int
		timeout   time.Duration
	)
	cmd := &cobra.Command{
		Use:   "paths <start>",
		Short: "Enumerate scored paths from a node",
		Long: `paths runs a best-first search from <start>. A path is reported when its
score reaches --tau and, if --end-type is set, its last node has that type.
Defaults come from the configuration; flags given on the command line win.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := a.load()
			if err != nil {
				return err
			}
			g, err := view(h, repr)
			if err != nil {
				return err
			}

			search := a.cfg.Search
			flags := cmd.Flags()
			if flags.Changed("tau") {
				search.Tau = tau
			}
			if flags.Changed("max-hops") {
				search.MaxHops = maxHops
			}
			if flags.Changed("first") {
				search.CollectAll = !first
			}
			if flags.Changed("precision") {
				search.DedupPrecision = precision
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			opts := append(search.Options(), traversal.WithContext(ctx), traversal.WithEndType(endType))
			results, err := traversal.FindPaths(g, args[0], opts...)
			if err != nil {
				return err
			}
			if results == nil {
				results = []traversal.Result{}
			}
			a.log.Info("paths found",
				zap.String("start", args[0]),
				zap.String("end_type", endType),
				zap.Float64("tau", search.Tau),
				zap.Int("max_hops", search.MaxHops),
				zap.Int("results", len(results)),
			)

			return writeJSON(cmd.OutOrStdout(), pathsOutput{Start: args[0], EndType: endType, Results: results})
		},
	}

	f := cmd.Flags()
	f.StringVarP(&repr, "representation", "r", reprHypergraph, "graph view: hypergraph, hetnet or entity")
	f.StringVar(&endType, "end-type", "", "only report paths ending at nodes of this type")
	f.Float64Var(&tau, "tau", traversal.DefaultTau, "minimum path score")
	f.IntVar(&maxHops, "max-hops", traversal.DefaultMaxHops, "maximum path length in edges")
	f.BoolVar(&first, "first", false, "stop at the first qualifying path")
	f.IntVar(&precision, "precision", traversal.DefaultDedupPrecision, "decimal places used to deduplicate scores")
	f.DurationVar(&timeout, "timeout", 0, "abort the search after this long (0 = no limit)")

	return cmd
}

func (a *app) neighborsCmd() *cobra.Command {
	var (
		repr  string
		depth int
	)
	cmd := &cobra.Command{
		Use:   "neighbors <start>",
		Short: "List nodes within --depth hops, breadth-first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := a.load()
			if err != nil {
				return err
			}
			g, err := view(h, repr)
			if err != nil {
				return err
			}
			reach, err := traversal.Neighborhood(g, args[0], traversal.WithMaxHops(depth))
			if err != nil {
				return err
			}
			if reach == nil {
				return fmt.Errorf("node %q not found", args[0])
			}
			a.log.Info("neighborhood", zap.String("start", args[0]), zap.Int("depth", depth), zap.Int("reached", len(reach.Order)))

			return writeJSON(cmd.OutOrStdout(), reach)
		},
	}
	cmd.Flags().StringVarP(&repr, "representation", "r", reprHypergraph, "graph view: hypergraph, hetnet or entity")
	cmd.Flags().IntVar(&depth, "depth", 1, "maximum hop distance")

	return cmd
}
