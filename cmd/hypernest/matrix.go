// SPDX-License-Identifier: MIT
//
// File: matrix.go
// Role: "matrix" subcommand.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/hypernest/hypergraph"
)

// Matrix kinds accepted by the matrix subcommand.
const (
	matIncidence    = "incidence"
	matAdjacency    = "adjacency"
	matDegree       = "degree"
	matNodeFeatures = "node-features"
	matEdgeFeatures = "edge-features"
)

type matrixOutput struct {
	Kind   string      `json:"kind"`
	RowIDs []string    `json:"row_ids"`
	ColIDs []string    `json:"col_ids,omitempty"`
	Rows   int         `json:"rows"`
	Cols   int         `json:"cols"`
	Data   [][]float64 `json:"data"`
}

func (a *app) matrixCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "matrix <incidence|adjacency|degree|node-features|edge-features>",
		Short:     "Print a matrix view of the hypergraph",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{matIncidence, matAdjacency, matDegree, matNodeFeatures, matEdgeFeatures},
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := a.load()
			if err != nil {
				return err
			}
			out, err := buildMatrix(h, args[0])
			if err != nil {
				return err
			}
			a.log.Debug("matrix built", zap.String("kind", out.Kind), zap.Int("rows", out.Rows), zap.Int("cols", out.Cols))

			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
}

func buildMatrix(h *hypergraph.Hypergraph, kind string) (matrixOutput, error) {
	var (
		m    *mat.Dense
		err  error
		out  = matrixOutput{Kind: kind}
		node = h.NodeIDs()
		edge = h.EdgeIDs()
	)
	switch kind {
	case matIncidence:
		m, out.RowIDs, out.ColIDs = h.IncidenceMatrix(), node, edge
	case matAdjacency:
		m, out.RowIDs, out.ColIDs = h.AdjacencyMatrix(), node, node
	case matDegree:
		m, out.RowIDs, out.ColIDs = h.DegreeMatrix(), node, node
	case matNodeFeatures:
		m, err = h.NodeFeatureMatrix()
		out.RowIDs = node
	case matEdgeFeatures:
		m, err = h.HyperedgeFeatureMatrix()
		out.RowIDs = edge
	default:
		return out, fmt.Errorf("unknown matrix kind %q", kind)
	}
	if err != nil {
		return out, err
	}
	out.Data = hypergraph.ToRows(m)
	out.Rows = len(out.Data)
	if out.Rows > 0 {
		out.Cols = len(out.Data[0])
	}

	return out, nil
}
