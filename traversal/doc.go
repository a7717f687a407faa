// Package traversal runs path queries over any adapter.Graph: Dijkstra
// shortest paths and a best-first multi-hop search whose path score decays
// multiplicatively with every traversed edge.
//
// Overview:
//
//   - ShortestPath(g, source, target) returns the cheapest node sequence from
//     source to target. Edge costs come from adapter.Weighter when g
//     implements it (the effective weight of the cheapest connecting edge);
//     otherwise every hop costs 1.
//   - FindPaths(g, start, opts...) expands the highest-scoring partial path
//     first. A path starts at score 1.0 and is multiplied by EdgeScore for each
//     hop; extensions whose score would fall below Tau are pruned, and no path
//     grows beyond MaxHops edges. Every popped path that still meets Tau and
//     whose last node matches EndType (if set) is recorded, so one expansion
//     can yield several results sharing a prefix.
//   - Neighborhood(g, start, opts...) lists every node within MaxHops hops in
//     breadth-first order, with hop depths and parent links.
//   - PathLength, PathWeight and PathConnectivity evaluate a finished path.
//
// Determinism:
//
//   - Adapters return sorted neighbor lists and both priority queues break
//     ties by push order, so repeated runs over the same graph give identical
//     output. Among equal-cost shortest paths the first one pushed wins.
//   - FindPaths sorts results by descending score with a stable sort, so equal
//     scores keep discovery order.
//   - Expansions are deduplicated on (path, score rounded to DedupPrecision
//     decimals). The rounding is a heuristic equality; tests should use scores
//     exactly representable at that precision.
//
// Options (FindPaths):
//
//   - WithEndType(t)          record only paths ending on a node of type t.
//   - WithTau(x)              pruning threshold, default 0.05, must be >= 0.
//   - WithMaxHops(n)          edge budget per path, default 3, must be >= 0.
//   - WithCollectAll(false)   stop at the first recorded result.
//   - WithDedupPrecision(p)   signature rounding, default 6, 0..15.
//   - WithContext(ctx)        cancel a long search between expansions.
//
// Errors:
//
//   - ErrNilGraph:        g is nil.
//   - ErrOptionViolation: an option received an out-of-range value.
//   - ErrNegativeWeight:  ShortestPath met a negative edge weight.
//   - ctx.Err():          FindPaths was cancelled.
//
// Absence is not an error: an unknown endpoint or an unreachable target
// yields a nil path, an unknown start node yields no results.
//
// Complexity:
//
//   - ShortestPath: O((V + E) log V) heap work plus the adapter's per-call
//     scan cost for every Neighbors and EdgeWeight call.
//   - Neighborhood: O(V + E) adapter calls.
//   - FindPaths: bounded by the number of simple paths of length <= MaxHops
//     whose score stays >= Tau; each pushed path costs O(MaxHops) to copy.
//
// Thread safety:
//
//   - No state survives a call. Concurrent searches are safe while the
//     underlying graph is not being mutated.
package traversal
