// SPDX-License-Identifier: MIT
//
// File: records.go
// Role: Network construction from tabular rows.

package hetnet

import (
	"fmt"

	"github.com/katalvlaran/hypernest/core"
)

// FromRecords adds nodes and edges described by rows.
//
// Implementation:
//   - Stage 1: every distinct non-empty value of each node column becomes a
//     core.DefaultNodeType node (existing nodes are kept).
//   - Stage 2: every row becomes an edge NextEdgeID() from edgeColumns[0] to
//     edgeColumns[1]; values of the remaining edge columns go to Metadata.Extra.
//
// Errors:
//   - ErrEdgeColumns if fewer than two edge columns are given.
//   - ErrReferentialIntegrity if a row's endpoint is not a node (e.g. the edge
//     columns are not among the node columns). Edges added before the failing
//     row are kept.
func (nw *Network) FromRecords(rows []map[string]any, nodeColumns, edgeColumns []string) error {
	if len(edgeColumns) < 2 {
		return fmt.Errorf("FromRecords: got %d: %w", len(edgeColumns), ErrEdgeColumns)
	}
	for _, col := range nodeColumns {
		for _, row := range rows {
			id, ok := core.FormatID(row[col])
			if !ok || nw.HasNode(id) {
				continue
			}
			if err := nw.AddNode(core.NewNode(id, core.DefaultNodeType)); err != nil {
				return err
			}
		}
	}
	for i, row := range rows {
		src, _ := core.FormatID(row[edgeColumns[0]])
		tgt, _ := core.FormatID(row[edgeColumns[1]])
		extra := make(map[string]any, len(edgeColumns)-2)
		for _, col := range edgeColumns[2:] {
			extra[col] = row[col]
		}
		e := NewEdge(nw.NextEdgeID(), src, tgt, WithExtra(extra))
		if err := nw.AddEdge(e); err != nil {
			return fmt.Errorf("FromRecords row %d: %w", i, err)
		}
	}

	return nil
}
