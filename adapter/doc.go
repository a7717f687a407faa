// Package adapter exposes hypergraphs, heterogeneous edge-list networks and
// entity graphs through one small capability interface, so path search can
// run over any of them without knowing which representation it walks.
//
// Overview:
//
//	Graph is the four-method capability set used by package traversal:
//	  - IsValidNode(id)   membership test;
//	  - NodeType(id)      the node's type tag, "" for unknown nodes;
//	  - Neighbors(id)     node IDs one hop away, sorted, self excluded;
//	  - EdgeScore(a, b)   max over connecting edges of alpha*beta, 0 if none.
//
//	Weighter is an optional extension reporting the cheapest effective weight
//	between two adjacent nodes. Every adapter in this package implements it;
//	traversal.ShortestPath falls back to unit weights for graphs that do not.
//
// Neighbor rules per representation:
//
//	Hypergraph:
//	  - Simple:                every other member of an edge containing id.
//	  - Directed/NodeDirected: the targets when id is a source, otherwise the
//	                           sources when id is a target.
//	  - Aggregator:            ignored; flatten first (nesting.Flatten) to walk
//	                           nested structure.
//	HetNet:      the opposite endpoint of every edge whose Source or Target is id.
//	EntityGraph: every other node listed in Connected of an edge touching id.
//
// Edge scores read Scores["alpha"] and Scores["beta"] from the connecting
// edge's metadata, each defaulting to 1.0. When several edges join the same
// pair the strongest one wins. A directed edge connects a pair in either
// orientation for scoring, matching the neighbor rules above.
//
// Complexity:
//
//	Adapters hold no index; every call scans the edges of the wrapped graph.
//	  - Neighbors: O(Σ|e|) plus O(k log k) to sort k neighbors.
//	  - EdgeScore, EdgeWeight: O(Σ|e|).
//
// Thread safety:
//
//	Adapters are read-only views. Concurrent reads are safe as long as the
//	wrapped graph is not mutated at the same time.
package adapter
