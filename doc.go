// Package hypernest is an in-memory toolkit for building, nesting and
// querying hypergraphs, the multi-way relationships behind tabular
// biomedical and knowledge data.
//
// What is in the box:
//
//	core/         nodes, hyperedge variants (simple, directed, node-directed,
//	              nesting aggregator), metadata scores and edge algebra
//	hypergraph/   the ordered container, gonum matrices, partitions, queries
//	nesting/      aggregator walks, duplicate detection, connectivity, flattening
//	hetnet/       heterogeneous pairwise network with typed nodes
//	entitygraph/  single-entity graphs, attribute queries, multilayer stacks
//	converters/   hypergraph <-> hetnet <-> entity graph conversions
//	adapter/      one read-only Graph interface over all three representations
//	traversal/    Dijkstra shortest paths, scored best-first search, BFS reach
//	ingest/       build hypergraphs from CSV rows or YAML datasets
//	config/       YAML + .env + HYPERNEST_* configuration
//	cmd/hypernest the command-line front end
//
// Quick ASCII example:
//
//	TP53 ──┐                  ┌── aspirin
//	EGFR ──┼── he_gene_drug ──┼── gefitinib
//	BRCA1 ─┘                  └── olaparib
//
// is one directed hyperedge with three sources and three targets.
//
//	go get github.com/katalvlaran/hypernest
package hypernest
