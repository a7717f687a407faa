// Package nesting analyzes aggregator (nesting) hyperedges: it walks their
// children, finds nodes and scored pairs shared between children, describes
// how children connect, and flattens an aggregator tree into a plain
// hypergraph.Hypergraph.
//
// Walking:
//
//   - Walk returns the immediate children, or with WithRecurse a pre-order
//     listing in which every nested aggregator is followed by its own descendants.
//   - Aggregators are tracked on the current recursion path; meeting one
//     again fails with core.ErrCyclicNesting instead of looping forever.
//
// Duplicates:
//
//   - FindDuplicateNodes: node IDs referenced by more than one listed child
//     (a child counts once per node, however often it lists it).
//   - FindDuplicatePairs: pair-score keys stored by more than one listed child,
//     canonicalized unless WithRespectDirection is given.
//   - DuplicateNodeScores / DuplicatePairScores: per duplicate, one ScoreRecord
//     for every listed child that references it. A child containing both nodes of a
//     pair but no explicit pair score contributes a record with empty Scores.
//
// Connectivity:
//
//   - DescribeConnectivity compares every pair of listed children (O(k²)) and
//     records a Link in both directions whenever they share nodes or pair keys.
//
// Flattening:
//
//   - Flatten copies every leaf hyperedge (by pointer, identity and metadata
//     intact) into a new hypergraph named "flattened", creating plain
//     core.DefaultNodeType nodes for IDs it has not seen (or reusing nodes from
//     WithNodes).
//   - FlattenedDegreeMatrix / FlattenedAdjacencyMatrix derive matrices from the
//     first aggregator's flattened form; the adjacency also counts indirect
//     co-membership inside each aggregator.
package nesting
