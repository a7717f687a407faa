// SPDX-License-Identifier: MIT
//
// File: spec.go
// Role: Column selection describing how rows map onto a hypergraph.

package ingest

// Record is one tabular row keyed by column name.
type Record = map[string]any

// Identifiers produced by Build.
const (
	DefaultGraphID  = "user_hg"
	NestID          = "nest1"
	NestModality    = "nested"
	edgeIDPrefix    = "he_"
	pairModalitySep = "_"
)

// ColumnPair selects a source and a target column for one directed hyperedge.
type ColumnPair struct {
	Source       string `yaml:"source" json:"source"`
	Target       string `yaml:"target" json:"target"`
	NodeDirected bool   `yaml:"node_directed" json:"node_directed"`
}

// Spec selects the columns that define nodes, hyperedges and features.
type Spec struct {
	GraphID        string       `yaml:"graph_id" json:"graph_id"`
	NodeColumns    []string     `yaml:"node_columns" json:"node_columns"`
	EdgeColumns    []string     `yaml:"edge_columns" json:"edge_columns"`
	DirectedPairs  []ColumnPair `yaml:"directed_pairs" json:"directed_pairs"`
	FeatureColumns []string     `yaml:"feature_columns" json:"feature_columns"`
	NodeType       string       `yaml:"node_type" json:"node_type"`
	Nest           bool         `yaml:"nest" json:"nest"`
}

// Validate checks that s selects at least one column and that every pair is complete.
func (s Spec) Validate() error {
	if len(s.NodeColumns)+len(s.EdgeColumns)+len(s.DirectedPairs) == 0 {
		return ErrNoColumns
	}
	for i, p := range s.DirectedPairs {
		if p.Source == "" || p.Target == "" {
			return wrapf(methodBuild, "pair %d (%q,%q): %w", i, p.Source, p.Target, ErrColumnPair)
		}
	}

	return nil
}

// idColumns lists every column whose values become nodes, without repeats.
func (s Spec) idColumns() []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(cols ...string) {
		for _, c := range cols {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	add(s.NodeColumns...)
	add(s.EdgeColumns...)
	for _, p := range s.DirectedPairs {
		add(p.Source, p.Target)
	}

	return out
}
