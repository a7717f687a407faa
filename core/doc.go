// Package core defines the entity and relationship model of hypernest:
// typed nodes with case-insensitive attributes and optional feature vectors,
// and four kinds of hyperedges that share one header.
//
// Hyperedge kinds:
//
//	– Simple       an ordered list of member node IDs (duplicates are not rejected).
//	– Directed     a source list and a target list with all-to-all semantics.
//	– NodeDirected same shape and adjacency semantics as Directed, separate kind tag
//	               so provenance survives conversions.
//	– Aggregator   an ordered list of child hyperedges of any kind, including
//	               further aggregators ("nesting").
//
// Every hyperedge carries a Header: ID, modality label, weight (default 1.0),
// an optional feature vector, scoring Metadata and, once it has been placed
// inside an aggregator, NestingInfo back-references. Back-references are IDs,
// never pointers: aggregators own their children, children only name parents.
//
// Kind dispatch is centralized in a handful of functions (NodeIDs, Endpoints,
// ComputeFeatures, Intersect, Union) that switch on the concrete type, so the
// per-kind rules live in one place.
//
// Errors (sentinel):
//
//	– ErrEmptyID            node or hyperedge ID is empty.
//	– ErrNilHyperedge       a nil hyperedge was supplied.
//	– ErrCyclicNesting      an aggregator would (or does) contain itself.
//	– ErrKindMismatch       set algebra between hyperedges of different kinds.
//	– ErrFeatureDimension   feature vectors of different length were averaged.
//	– ErrNonNumericFeature  an attribute value could not be read as a number.
//
// Thread safety:
//
//	Values in this package are plain data and are not synchronized. A model is
//	built and queried from one logical session at a time.
package core
