// Package hypergraph provides the in-memory container that owns nodes and
// hyperedges and derives numeric matrices from them.
//
// Overview:
//
//   - A Hypergraph keeps nodes and hyperedges in insertion order. That order is
//     the row/column order of every matrix it produces.
//   - Adding an edge never checks that its nodes exist. Dangling references are
//     skipped when matrices are built (compare hetnet, which rejects them).
//   - Matrices are gonum *mat.Dense values. A matrix with a zero dimension is
//     returned as an empty &mat.Dense{} (IsEmpty() == true); ToRows exports any
//     matrix as plain [][]float64.
//
// Matrices:
//
//   - IncidenceMatrix   nodes × edges; simple +1, directed sources -1 / targets +1. Cached.
//   - AdjacencyMatrix   nodes × nodes; simple edges symmetric, directed edges source→target only.
//   - DegreeMatrix      diagonal of per-node membership counts.
//   - NodeFeatureMatrix / HyperedgeFeatureMatrix: stacked feature vectors,
//     computed on demand.
//
// Aggregator (nesting) hyperedges do not contribute to incidence, adjacency or
// degree. Flatten them first with nesting.Flatten when leaf-level structure is wanted.
//
// Caching:
//
//   - Only the incidence matrix is cached. AddNode and AddEdge drop the cache;
//     changes made directly to an edge struct after insertion require an explicit
//     InvalidateIncidence call.
//
// Partitions:
//
//   - CreatePartition(id, required...) keeps the nodes that carry every required
//     attribute and the edges whose referenced nodes (resolved through aggregators)
//     all passed that filter.
//
// Errors:
//
//   - ErrNilNode, ErrNilEdge          nil arguments to AddNode / AddEdge.
//   - core.ErrEmptyID                 empty node or edge identifier.
//   - ErrDimensionMismatch            incompatible shapes in concatenation or
//     feature stacking.
//   - ErrBadAxis                      concatenation axis other than 0 or 1.
//
// Thread safety:
//
//   - A Hypergraph is meant for one session at a time; synchronize externally
//     if it is shared between goroutines.
package hypergraph
