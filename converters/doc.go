// Package converters provides two-way adapters between the graph
// representations of hypernest:
//   - entitygraph.Graph  <-> hypergraph.Hypergraph
//   - hetnet.Network     <-> hypergraph.Hypergraph
//   - []*hypergraph.Hypergraph -> hetnet.Network (one node per hypergraph)
//
// Entity graph -> hypergraph:
//   - Nodes become core nodes; the type is the "node_type" attribute or
//     core.DefaultNodeType. Attributes and metadata are copied.
//   - Edges split out of a hyperedge (Origin set) are merged back into that
//     hyperedge. Other edges become node-directed hyperedges when they have
//     Sources and Targets, simple hyperedges otherwise.
//
// Hypergraph -> entity graph:
//   - Simple hyperedges split into one edge per member pair, "<id>_e<i>_<j>".
//   - Directed and node-directed hyperedges split into one edge per
//     source/target pair, "<id>_d<i>_<j>" (source index, target index).
//   - Aggregators are skipped; flatten them first if their leaves matter.
//
// Edge-list network -> hypergraph:
//   - Edges sharing an Origin merge back into that hyperedge. Every other
//     network edge becomes "he_<edge id>" of the edge's Kind, or, with
//     WithClustering, every cluster becomes "he_cluster_<i>".
//
// Hypergraph -> edge-list network:
//   - Hyperedges split the same way as for entity graphs: "<id>_e<i>_<j>"
//     per member pair, "<id>_d<i>_<j>" per source/target pair. The network
//     therefore offers the same adjacency as the hypergraph.
//   - Network edges are strict, so a hyperedge referencing an unknown node
//     fails with hetnet.ErrReferentialIntegrity.
//
// Metadata is cloned on every conversion; converted structures never share
// score maps with their source.
package converters
