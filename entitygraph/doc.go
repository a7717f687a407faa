// Package entitygraph implements the single-entity graph: a light, named
// graph describing one entity's local neighborhood, and a Multilayer
// container that compares several such graphs.
//
// Nodes carry lower-cased attributes and separate metadata; the node type used
// by adapters is the "node_type" attribute. Edges list their connected nodes
// and carry the same node/pair/edge score metadata as hyperedges (core.Metadata).
// An edge split out of a hyperedge remembers the hyperedge in Origin and
// OriginKind so converters can merge the pieces back.
//
// FindSharedAttributes and Multilayer.CrossLayerAnalysis match values with
// github.com/dlclark/regexp2, case-insensitively and anchored at the start of
// the value.
package entitygraph
