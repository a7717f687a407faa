// Package ingest turns tabular rows into a hypergraph according to a column
// selection.
//
// Overview:
//
//	A Spec names three kinds of columns:
//	  - NodeColumns:    their distinct values become nodes.
//	  - EdgeColumns:    each column becomes one simple hyperedge "he_<col>"
//	                    whose members are the column's values, row by row.
//	  - DirectedPairs:  each (source, target) pair becomes one directed or
//	                    node-directed hyperedge "he_<src>_<tgt>" with the
//	                    source column's values as sources and the target
//	                    column's values as targets.
//	Values of every referenced column become nodes, so no edge dangles.
//	FeatureColumns are copied onto the nodes found in NodeColumns (first row
//	wins) and every node then computes its feature vector from them.
//	With Nest set, the built hyperedges become children of one aggregator
//	"nest1" (modality "nested") and only the aggregator is added.
//
// Input formats:
//
//	Build works on []Record. ReadCSV produces records from a header row plus
//	data rows; DecodeDataset reads a YAML document carrying both a Spec and
//	inline rows.
//
// Errors:
//
//	ErrNoColumns     the Spec selects no column at all.
//	ErrColumnPair    a DirectedPairs entry has an empty side.
//	ErrDecode        the input could not be parsed.
//	Feature conversion failures surface as core.ErrNonNumericFeature.
//
// Determinism:
//
//	Nodes are added in row-major order over the selected columns; edges in
//	the order their columns are listed.
package ingest
