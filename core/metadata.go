// SPDX-License-Identifier: MIT
//
// File: metadata.go
// Role: Node-level, pair-level and edge-level score storage shared by hyperedges,
//       network edges and entity-graph edges.

package core

// Metadata carries framework scores and free-form annotations for an edge.
//
//	NodeScores: node ID -> {score type -> value}
//	PairScores: pair key -> {score type -> value}; keys are canonical unless stored as directed
//	Scores:     edge-level scores; "alpha", "beta" and "weight" are read by traversal
//	Extra:      arbitrary caller annotations
//
// The zero value is usable; setters allocate maps lazily.
type Metadata struct {
	NodeScores map[string]Scores
	PairScores map[Pair]Scores
	Scores     Scores
	Extra      map[string]any
}

// NewMetadata returns Metadata with every map allocated.
func NewMetadata() Metadata {
	var m Metadata
	m.ensure()

	return m
}

// ensure allocates the score maps so reads of a freshly built edge never
// need nil checks on the outer maps.
func (m *Metadata) ensure() {
	if m.NodeScores == nil {
		m.NodeScores = make(map[string]Scores)
	}
	if m.PairScores == nil {
		m.PairScores = make(map[Pair]Scores)
	}
	if m.Scores == nil {
		m.Scores = make(Scores)
	}
	if m.Extra == nil {
		m.Extra = make(map[string]any)
	}
}

// SetNodeScore stores value under (nodeID, scoreType).
// Complexity: O(1).
func (m *Metadata) SetNodeScore(nodeID, scoreType string, value float64) {
	m.ensure()
	s, ok := m.NodeScores[nodeID]
	if !ok {
		s = make(Scores)
		m.NodeScores[nodeID] = s
	}
	s[scoreType] = value
}

// NodeScore returns the score stored under (nodeID, scoreType), or def when absent.
func (m *Metadata) NodeScore(nodeID, scoreType string, def float64) float64 {
	return m.NodeScores[nodeID].Get(scoreType, def)
}

// SetPairScore stores value for the pair (a, b). Unless directed is true the
// pair is canonicalized, so (a, b) and (b, a) share one entry.
// Complexity: O(1).
func (m *Metadata) SetPairScore(a, b, scoreType string, value float64, directed bool) {
	m.ensure()
	key := MakePair(a, b, directed)
	s, ok := m.PairScores[key]
	if !ok {
		s = make(Scores)
		m.PairScores[key] = s
	}
	s[scoreType] = value
}

// PairScore returns the score for (a, b), or def when absent. The directed
// flag must match the one used when the score was stored.
func (m *Metadata) PairScore(a, b, scoreType string, def float64, directed bool) float64 {
	return m.PairScores[MakePair(a, b, directed)].Get(scoreType, def)
}

// PairKeys returns the stored pair keys, canonicalized unless respectDirection
// is set, deduplicated and sorted.
func (m *Metadata) PairKeys(respectDirection bool) []Pair {
	seen := make(map[Pair]struct{}, len(m.PairScores))
	out := make([]Pair, 0, len(m.PairScores))
	for k := range m.PairScores {
		if !respectDirection {
			k = k.Canonical()
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}

	return SortPairs(out)
}

// SetScore stores an edge-level score (e.g. "alpha", "beta", "weight").
func (m *Metadata) SetScore(scoreType string, value float64) {
	m.ensure()
	m.Scores[scoreType] = value
}

// Score returns an edge-level score, or def when absent.
func (m *Metadata) Score(scoreType string, def float64) float64 {
	return m.Scores.Get(scoreType, def)
}

// AlphaBeta returns Scores["alpha"] * Scores["beta"], each defaulting to 1.0.
func (m *Metadata) AlphaBeta() float64 {
	return m.Scores.Get(ScoreAlpha, 1.0) * m.Scores.Get(ScoreBeta, 1.0)
}

// SetExtra stores a free-form annotation.
func (m *Metadata) SetExtra(key string, value any) {
	m.ensure()
	m.Extra[key] = value
}

// ExtraValue returns a free-form annotation.
func (m *Metadata) ExtraValue(key string) (any, bool) {
	v, ok := m.Extra[key]
	return v, ok
}

// Clone returns a deep copy of the score maps and a shallow copy of Extra.
func (m *Metadata) Clone() Metadata {
	out := Metadata{
		NodeScores: make(map[string]Scores, len(m.NodeScores)),
		PairScores: make(map[Pair]Scores, len(m.PairScores)),
		Scores:     m.Scores.Clone(),
		Extra:      make(map[string]any, len(m.Extra)),
	}
	for k, v := range m.NodeScores {
		out.NodeScores[k] = v.Clone()
	}
	for k, v := range m.PairScores {
		out.PairScores[k] = v.Clone()
	}
	for k, v := range m.Extra {
		out.Extra[k] = v
	}
	if out.Scores == nil {
		out.Scores = make(Scores)
	}

	return out
}
