// SPDX-License-Identifier: MIT
//
// File: hetnet.go
// Role: Edge-list network <-> hypergraph conversion and hypergraph-of-hypergraphs networks.

package converters

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/katalvlaran/hypernest/core"
	"github.com/katalvlaran/hypernest/hetnet"
	"github.com/katalvlaran/hypernest/hypergraph"
)

// Identifiers and labels produced by the network conversions.
const (
	ClusterModality        = "cluster"
	HypergraphLinkModality = "hypergraph_link"
	SimilarityKey          = "similarity"

	// DefaultSimilarityThreshold is the similarity a pair of hypergraphs must exceed to be linked.
	DefaultSimilarityThreshold = 0.5
)

// ClusterFunc groups the nodes of a network; each group becomes one simple hyperedge.
type ClusterFunc func(nw *hetnet.Network) [][]string

// SimilarityFunc scores two hypergraphs, higher meaning more alike.
type SimilarityFunc func(a, b *hypergraph.Hypergraph) float64

// Options configures the network conversions.
type Options struct {
	Cluster             ClusterFunc
	Similarity          SimilarityFunc
	SimilarityThreshold float64
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions converts edge by edge and links hypergraphs whose node-ID
// Jaccard similarity exceeds 0.5.
func DefaultOptions() Options {
	return Options{Similarity: JaccardSimilarity, SimilarityThreshold: DefaultSimilarityThreshold}
}

// WithClustering makes HetNetToHypergraph build one hyperedge per cluster.
func WithClustering(fn ClusterFunc) Option { return func(o *Options) { o.Cluster = fn } }

// WithSimilarity replaces the similarity used by HypergraphsToHetNet.
func WithSimilarity(fn SimilarityFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Similarity = fn
		}
	}
}

// WithSimilarityThreshold sets the strict lower bound for linking hypergraphs.
func WithSimilarityThreshold(t float64) Option { return func(o *Options) { o.SimilarityThreshold = t } }

func gather(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// HetNetToHypergraph converts nw into a hypergraph with the given ID. Nodes
// are shared with nw (same pointers).
//
// Without clustering:
//   - edges sharing an Origin (as produced by HypergraphToHetNet) merge back
//     into one hyperedge of their OriginKind, named after the origin, with
//     members (or sources and targets) deduplicated in first-seen order;
//   - every other edge e becomes "he_<e.ID>" (see HyperedgeFromEdge).
//
// With WithClustering every cluster i becomes simple hyperedge
// "he_cluster_<i>" with modality "cluster" and the network edges are not converted.
func HetNetToHypergraph(nw *hetnet.Network, id string, opts ...Option) (*hypergraph.Hypergraph, error) {
	o := gather(opts)
	h := hypergraph.New(id)
	for _, n := range nw.Nodes() {
		if err := h.AddNode(n); err != nil {
			return nil, err
		}
	}

	if o.Cluster != nil {
		for i, cluster := range o.Cluster(nw) {
			members := append([]string(nil), cluster...)
			if err := h.AddEdge(core.NewSimple(fmt.Sprintf("he_cluster_%d", i), members, ClusterModality)); err != nil {
				return nil, err
			}
		}
		return h, nil
	}

	groups := orderedmap.New[edgeGroup, []*hetnet.Edge]()
	for _, e := range nw.Edges() {
		key := edgeGroup{origin: e.Origin}
		if e.Origin == "" {
			key.edge = e.ID
		}
		prev, _ := groups.Get(key)
		groups.Set(key, append(prev, e))
	}
	for p := groups.Oldest(); p != nil; p = p.Next() {
		he := HyperedgeFromEdge(p.Value[0])
		if p.Key.origin != "" {
			he = mergeNetworkEdges(p.Key.origin, p.Value)
		}
		if err := h.AddEdge(he); err != nil {
			return nil, err
		}
	}

	return h, nil
}

// edgeGroup keys network edges by origin hyperedge; edges without an origin
// stand alone under their own ID.
type edgeGroup struct {
	origin string
	edge   string
}

// mergeNetworkEdges rebuilds one hyperedge from the edges split out of it.
func mergeNetworkEdges(id string, parts []*hetnet.Edge) core.Hyperedge {
	first := parts[0]
	opts := []core.EdgeOption{core.WithWeight(first.Weight), core.WithEdgeMetadata(first.Metadata.Clone())}

	switch first.OriginKind {
	case core.KindDirected, core.KindNodeDirected:
		var sources, targets []string
		for _, e := range parts {
			sources = appendUnique(sources, e.Source)
			targets = appendUnique(targets, e.Target)
		}
		if first.OriginKind == core.KindDirected {
			return core.NewDirected(id, sources, targets, first.Modality, opts...)
		}
		return core.NewNodeDirected(id, sources, targets, first.Modality, opts...)
	default:
		var members []string
		for _, e := range parts {
			members = appendUnique(members, e.Source, e.Target)
		}
		return core.NewSimple(id, members, first.Modality, opts...)
	}
}

// HyperedgeFromEdge builds the hyperedge "he_<e.ID>" described by a network edge:
//   - directed / node-directed: e.Sources and e.Targets, falling back to
//     [e.Source] and [e.Target];
//   - simple (and anything else): e.Connected, falling back to [e.Source, e.Target].
func HyperedgeFromEdge(e *hetnet.Edge) core.Hyperedge {
	id := "he_" + e.ID
	opts := []core.EdgeOption{core.WithWeight(e.Weight), core.WithEdgeMetadata(e.Metadata.Clone())}

	switch e.Kind {
	case core.KindDirected, core.KindNodeDirected:
		sources, targets := e.Sources, e.Targets
		if len(sources) == 0 {
			sources = []string{e.Source}
		}
		if len(targets) == 0 {
			targets = []string{e.Target}
		}
		if e.Kind == core.KindDirected {
			return core.NewDirected(id, sources, targets, e.Modality, opts...)
		}
		return core.NewNodeDirected(id, sources, targets, e.Modality, opts...)
	default:
		members := e.Connected
		if len(members) == 0 {
			members = []string{e.Source, e.Target}
		}
		return core.NewSimple(id, members, e.Modality, opts...)
	}
}

// HypergraphToHetNet converts h into a network with the given ID. Nodes are
// shared with h. Every non-aggregator hyperedge is split into pairwise edges
// of its kind, each recording the hyperedge in Origin/OriginKind and carrying
// a clone of its metadata and its base weight:
//   - simple: one edge per member pair (i < j), "<id>_e<i>_<j>"; a single
//     member becomes the self edge "<id>_e0_0";
//   - directed kinds: one edge per source/target pair, "<id>_d<i>_<j>".
//
// Directed hyperedges with an empty side produce no edges.
//
// Errors:
//   - hetnet.ErrReferentialIntegrity if a hyperedge references a node missing from h.
func HypergraphToHetNet(h *hypergraph.Hypergraph, id string) (*hetnet.Network, error) {
	nw := hetnet.New(id)
	for _, n := range h.Nodes() {
		if err := nw.AddNode(n); err != nil {
			return nil, err
		}
	}
	for _, he := range h.Edges() {
		if _, nested := he.(*core.Aggregator); nested {
			continue
		}
		head := he.Head()
		for _, nid := range core.NodeIDs(he) {
			if !nw.HasNode(nid) {
				return nil, fmt.Errorf("HypergraphToHetNet: hyperedge %q: node %q: %w",
					head.ID, nid, hetnet.ErrReferentialIntegrity)
			}
		}
		for _, e := range splitHyperedge(he) {
			e.Metadata = head.Metadata.Clone()
			if err := nw.AddEdge(e); err != nil {
				return nil, fmt.Errorf("HypergraphToHetNet: %w", err)
			}
		}
	}

	return nw, nil
}

// splitHyperedge lists the pairwise network edges of he.
func splitHyperedge(he core.Hyperedge) []*hetnet.Edge {
	head := he.Head()
	opts := []hetnet.EdgeOption{
		hetnet.WithKind(he.Kind()),
		hetnet.WithModality(head.Modality),
		hetnet.WithWeight(head.Weight),
		hetnet.WithOrigin(head.ID, he.Kind()),
	}

	var out []*hetnet.Edge
	switch x := he.(type) {
	case *core.Simple:
		if len(x.Nodes) == 1 {
			return []*hetnet.Edge{hetnet.NewEdge(head.ID+"_e0_0", x.Nodes[0], x.Nodes[0], opts...)}
		}
		for i := 0; i < len(x.Nodes); i++ {
			for j := i + 1; j < len(x.Nodes); j++ {
				out = append(out, hetnet.NewEdge(fmt.Sprintf("%s_e%d_%d", head.ID, i, j), x.Nodes[i], x.Nodes[j], opts...))
			}
		}
	case *core.Directed, *core.NodeDirected:
		src, tgt, _ := core.Endpoints(x)
		for i, s := range src {
			for j, t := range tgt {
				out = append(out, hetnet.NewEdge(fmt.Sprintf("%s_d%d_%d", head.ID, i, j), s, t, opts...))
			}
		}
	}

	return out
}

// HypergraphsToHetNet builds a network with one "hypergraph" node per input
// (attributes size and edge_count) and a "hypergraph_link" edge
// "edge_<a>_<b>" for every pair whose similarity exceeds the threshold. The
// similarity is stored under Extra["similarity"].
func HypergraphsToHetNet(hs []*hypergraph.Hypergraph, id string, opts ...Option) (*hetnet.Network, error) {
	o := gather(opts)
	nw := hetnet.New(id)
	for _, h := range hs {
		n := core.NewNode(h.ID, HypergraphNodeType,
			core.WithAttribute("size", h.NodeCount()),
			core.WithAttribute("edge_count", h.EdgeCount()),
			core.WithNodeMetadata(map[string]any{"hypergraph_embedded": true}),
		)
		if err := nw.AddNode(n); err != nil {
			return nil, err
		}
	}
	for i := 0; i < len(hs); i++ {
		for j := i + 1; j < len(hs); j++ {
			sim := o.Similarity(hs[i], hs[j])
			if sim <= o.SimilarityThreshold {
				continue
			}
			e := hetnet.NewEdge(fmt.Sprintf("edge_%s_%s", hs[i].ID, hs[j].ID), hs[i].ID, hs[j].ID,
				hetnet.WithModality(HypergraphLinkModality),
				hetnet.WithExtra(map[string]any{SimilarityKey: sim}),
			)
			if err := nw.AddEdge(e); err != nil {
				return nil, err
			}
		}
	}

	return nw, nil
}

// JaccardSimilarity returns |A∩B| / |A∪B| over the node IDs of a and b, or 0
// when both are empty.
func JaccardSimilarity(a, b *hypergraph.Hypergraph) float64 {
	ids := make(map[string]struct{}, a.NodeCount())
	for _, id := range a.NodeIDs() {
		ids[id] = struct{}{}
	}
	inter := 0
	for _, id := range b.NodeIDs() {
		if _, ok := ids[id]; ok {
			inter++
		}
	}
	union := a.NodeCount() + b.NodeCount() - inter
	if union == 0 {
		return 0
	}

	return float64(inter) / float64(union)
}
