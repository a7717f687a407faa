// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors, kind tags, score containers and the shared hyperedge header.

package core

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
)

// Sentinel errors for model construction and per-edge computations.
var (
	// ErrEmptyID indicates that a node or hyperedge was given an empty identifier.
	ErrEmptyID = errors.New("core: empty identifier")

	// ErrNilHyperedge indicates that a nil hyperedge was passed where one is required.
	ErrNilHyperedge = errors.New("core: hyperedge is nil")

	// ErrCyclicNesting indicates that an aggregator is reachable from itself.
	ErrCyclicNesting = errors.New("core: cyclic nesting")

	// ErrKindMismatch indicates a set operation between hyperedges of different kinds.
	ErrKindMismatch = errors.New("core: hyperedge kinds differ")

	// ErrFeatureDimension indicates that node feature vectors of different
	// lengths were combined into one hyperedge feature vector.
	ErrFeatureDimension = errors.New("core: feature dimension mismatch")

	// ErrNonNumericFeature indicates that an attribute value selected for a
	// feature vector cannot be interpreted as a number.
	ErrNonNumericFeature = errors.New("core: non-numeric feature value")
)

// Kind tags the concrete variant of a Hyperedge.
type Kind string

const (
	// KindSimple tags *Simple hyperedges.
	KindSimple Kind = "simple"
	// KindDirected tags *Directed hyperedges.
	KindDirected Kind = "directed"
	// KindNodeDirected tags *NodeDirected hyperedges.
	KindNodeDirected Kind = "node_directed"
	// KindNesting tags *Aggregator hyperedges.
	KindNesting Kind = "nesting"
)

// ParseKind maps a free-form label onto a Kind. Unknown or empty labels
// fall back to KindSimple, matching how ingested edges without an explicit
// type are treated.
func ParseKind(label string) Kind {
	switch Kind(label) {
	case KindDirected, KindNodeDirected, KindNesting:
		return Kind(label)
	default:
		return KindSimple
	}
}

// DefaultWeight is the base weight assigned to hyperedges and network edges.
const DefaultWeight = 1.0

// Score keys read by the adapters and the traversal engine.
const (
	ScoreAlpha  = "alpha"
	ScoreBeta   = "beta"
	ScoreWeight = "weight"
)

// Scores maps a score type (e.g. "weight", "confidence") to its value.
type Scores map[string]float64

// Get returns the value stored under scoreType, or def when absent.
func (s Scores) Get(scoreType string, def float64) float64 {
	if v, ok := s[scoreType]; ok {
		return v
	}

	return def
}

// Clone returns an independent copy (nil stays nil).
func (s Scores) Clone() Scores {
	if s == nil {
		return nil
	}
	out := make(Scores, len(s))
	for k, v := range s {
		out[k] = v
	}

	return out
}

// Pair is a key for pair-level scores. Undirected pairs are stored in
// canonical (sorted) order, directed pairs keep the order given.
type Pair [2]string

// MakePair builds a pair key for (a, b). Unless directed is true the two IDs
// are sorted so that (a, b) and (b, a) address the same scores.
func MakePair(a, b string, directed bool) Pair {
	if !directed && b < a {
		return Pair{b, a}
	}

	return Pair{a, b}
}

// Canonical returns the sorted form of p.
func (p Pair) Canonical() Pair { return MakePair(p[0], p[1], false) }

// SortPairs orders pairs lexicographically in place and returns the slice.
func SortPairs(pairs []Pair) []Pair {
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})

	return pairs
}

// NestingInfo records that a hyperedge has been placed inside one or more aggregators.
//
// Parents holds aggregator IDs (never pointers); ParentsCount mirrors len(Parents).
// OriginalKind is captured the first time the edge is nested and never overwritten.
type NestingInfo struct {
	Nested       bool
	OriginalKind Kind
	Parents      []string
	ParentsCount int
}

// Header holds the fields shared by every hyperedge kind.
//
// Metadata is embedded so score accessors are available directly on every
// concrete hyperedge (e.g. simple.SetNodeScore(...)).
type Header struct {
	// ID uniquely identifies the hyperedge inside one container.
	ID string

	// Modality is a free-form label for the semantic category of the relationship.
	Modality string

	// Weight is the base weight; Metadata.Scores["weight"] overrides it for path costs.
	Weight float64

	// Features is nil until ComputeFeatures runs.
	Features []float64

	Metadata

	// Nesting is populated by the aggregators that reference this hyperedge.
	Nesting NestingInfo
}

// Head returns the receiver; it lets *Header satisfy the header half of Hyperedge.
func (h *Header) Head() *Header { return h }

// EffectiveWeight returns the metadata weight override if set, otherwise Weight.
func (h *Header) EffectiveWeight() float64 {
	return h.Scores.Get(ScoreWeight, h.Weight)
}

// Hyperedge is implemented by *Simple, *Directed, *NodeDirected and *Aggregator.
type Hyperedge interface {
	// Kind reports the variant tag.
	Kind() Kind
	// Head exposes the shared header for reading and mutation.
	Head() *Header
}

// EdgeOption configures the shared header of a hyperedge at construction.
type EdgeOption func(*edgeSettings)

type edgeSettings struct {
	weight    float64
	metadata  *Metadata
	untracked bool
}

// WithWeight sets the base weight (default 1.0).
func WithWeight(w float64) EdgeOption {
	return func(s *edgeSettings) { s.weight = w }
}

// WithEdgeMetadata installs md as the edge metadata. The maps inside md are
// used as given, not copied.
func WithEdgeMetadata(md Metadata) EdgeOption {
	return func(s *edgeSettings) { s.metadata = &md }
}

// WithoutHierarchyTracking stops an aggregator from tagging its children
// at construction. It has no effect on other kinds.
func WithoutHierarchyTracking() EdgeOption {
	return func(s *edgeSettings) { s.untracked = true }
}

func newHeader(id, modality string, opts []EdgeOption) (Header, edgeSettings) {
	cfg := edgeSettings{weight: DefaultWeight}
	for _, opt := range opts {
		opt(&cfg)
	}
	h := Header{ID: id, Modality: modality, Weight: cfg.weight}
	if cfg.metadata != nil {
		h.Metadata = *cfg.metadata
	}
	h.Metadata.ensure()

	return h, cfg
}

// FormatID renders a tabular cell value as an identifier. Nil and empty
// strings report ok=false; integral floats print without a fraction.
func FormatID(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		return x, x != ""
	case float64:
		if x == math.Trunc(x) && !math.IsInf(x, 0) {
			return strconv.FormatInt(int64(x), 10), true
		}
		return strconv.FormatFloat(x, 'f', -1, 64), true
	default:
		return fmt.Sprint(x), true
	}
}
