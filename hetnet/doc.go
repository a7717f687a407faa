// Package hetnet implements the heterogeneous edge-list network: typed nodes
// joined by pairwise source/target edges.
//
// Unlike hypergraph.Hypergraph, a Network enforces referential integrity:
// AddEdge fails with ErrReferentialIntegrity unless both endpoints are
// already nodes of the network.
//
// An Edge may also describe the hyperedge it should become when converted
// (see converters.HetNetToHypergraph): Kind selects simple, directed or
// node-directed, and Sources/Targets/Connected override the plain
// source/target pair.
//
// FromRecords builds a network from tabular rows: node IDs come from the
// unique values of the node columns, and every row yields one edge
// "edge_<n>" from the first edge column to the second, with the remaining
// edge columns stored as free-form metadata.
package hetnet
