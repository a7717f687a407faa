// SPDX-License-Identifier: MIT
//
// File: partition.go
// Role: "partition" subcommand.

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type partitionOutput struct {
	ID       string   `json:"id"`
	Required []string `json:"required"`
	Nodes    []string `json:"nodes"`
	Edges    []string `json:"edges"`
}

func (a *app) partitionCmd() *cobra.Command {
	var required []string
	cmd := &cobra.Command{
		Use:   "partition <id>",
		Short: "Print the sub-hypergraph of nodes carrying the required attributes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := a.load()
			if err != nil {
				return err
			}
			p := h.CreatePartition(args[0], required...)
			out := partitionOutput{
				ID:       p.ID,
				Required: p.Required,
				Nodes:    p.NodeIDs(),
				Edges:    p.EdgeIDs(),
			}
			if out.Required == nil {
				out.Required = []string{}
			}
			a.log.Info("partition created",
				zap.String("partition", p.ID),
				zap.Strings("required", required),
				zap.Int("nodes", len(out.Nodes)),
				zap.Int("edges", len(out.Edges)),
			)

			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringSliceVar(&required, "require", nil, "attribute keys every partition node must have")

	return cmd
}
