// SPDX-License-Identifier: MIT
//
// File: shared.go
// Role: Shared-attribute analysis between entity graphs and the Multilayer container.

package entitygraph

import (
	"fmt"
	"sort"

	"github.com/dlclark/regexp2"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// FindSharedAttributes returns the attribute values this graph shares with
// other, sorted. Values are grouped per attribute key across all nodes, and
// list values ([]any, []string) contribute each element. Values compare by
// their fmt.Sprint form.
//
// Without a pattern, a key present in both graphs contributes the values found
// in both. With a pattern, such a key contributes all of this graph's values
// as soon as one of other's values for the key matches the pattern
// (case-insensitive, anchored at the start).
//
// Errors:
//   - ErrBadPattern if pattern does not compile.
func (g *Graph) FindSharedAttributes(other *Graph, pattern string) ([]string, error) {
	var re *regexp2.Regexp
	if pattern != "" {
		var err error
		re, err = regexp2.Compile(`\A(?:`+pattern+`)`, regexp2.IgnoreCase)
		if err != nil {
			return nil, fmt.Errorf("FindSharedAttributes %q: %w: %v", pattern, ErrBadPattern, err)
		}
	}
	mine, theirs := g.valuesByKey(), other.valuesByKey()

	shared := make(map[string]struct{})
	for key, values := range mine {
		otherValues, ok := theirs[key]
		if !ok {
			continue
		}
		if re == nil {
			for v := range values {
				if _, both := otherValues[v]; both {
					shared[v] = struct{}{}
				}
			}
			continue
		}
		matched, err := anyMatch(re, otherValues)
		if err != nil {
			return nil, fmt.Errorf("FindSharedAttributes %q: %w: %v", pattern, ErrBadPattern, err)
		}
		if matched {
			for v := range values {
				shared[v] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(shared))
	for v := range shared {
		out = append(out, v)
	}
	sort.Strings(out)

	return out, nil
}

func anyMatch(re *regexp2.Regexp, values map[string]struct{}) (bool, error) {
	for v := range values {
		ok, err := re.MatchString(v)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}

	return false, nil
}

// valuesByKey groups every attribute value by key, expanding lists.
func (g *Graph) valuesByKey() map[string]map[string]struct{} {
	out := make(map[string]map[string]struct{})
	add := func(key string, v any) {
		set, ok := out[key]
		if !ok {
			set = make(map[string]struct{})
			out[key] = set
		}
		set[fmt.Sprint(v)] = struct{}{}
	}
	for p := g.nodes.Oldest(); p != nil; p = p.Next() {
		for key, v := range p.Value.Attributes {
			switch list := v.(type) {
			case []any:
				for _, x := range list {
					add(key, x)
				}
			case []string:
				for _, x := range list {
					add(key, x)
				}
			default:
				add(key, v)
			}
		}
	}

	return out
}

// Multilayer holds several entity graphs keyed by name.
type Multilayer struct {
	graphs *orderedmap.OrderedMap[string, *Graph]
}

// NewMultilayer creates an empty multilayer network.
func NewMultilayer() *Multilayer {
	return &Multilayer{graphs: orderedmap.New[string, *Graph]()}
}

// Add stores g under g.Name, replacing a graph with the same name. Nil is ignored.
func (m *Multilayer) Add(g *Graph) {
	if g == nil {
		return
	}
	m.graphs.Set(g.Name, g)
}

// Graph returns the layer with the given name.
func (m *Multilayer) Graph(name string) (*Graph, bool) { return m.graphs.Get(name) }

// Names returns layer names in insertion order.
func (m *Multilayer) Names() []string {
	out := make([]string, 0, m.graphs.Len())
	for p := m.graphs.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key)
	}

	return out
}

// CrossLayerKey names the result entry for layers a and b.
func CrossLayerKey(a, b string) string { return a + " & " + b }

// CrossLayerAnalysis runs FindSharedAttributes on every pair of layers (in
// insertion order) and keeps the non-empty results under CrossLayerKey(a, b).
func (m *Multilayer) CrossLayerAnalysis(pattern string) (map[string][]string, error) {
	layers := make([]*Graph, 0, m.graphs.Len())
	for p := m.graphs.Oldest(); p != nil; p = p.Next() {
		layers = append(layers, p.Value)
	}
	out := make(map[string][]string)
	for i := 0; i < len(layers); i++ {
		for j := i + 1; j < len(layers); j++ {
			shared, err := layers[i].FindSharedAttributes(layers[j], pattern)
			if err != nil {
				return nil, err
			}
			if len(shared) > 0 {
				out[CrossLayerKey(layers[i].Name, layers[j].Name)] = shared
			}
		}
	}

	return out, nil
}

// QueryEdgeMetadata runs QueryEdgesByMetadata on every layer and keeps non-empty results by layer name.
func (m *Multilayer) QueryEdgeMetadata(key string, value any) map[string][]*Edge {
	return m.collect(func(g *Graph) []*Edge { return g.QueryEdgesByMetadata(key, value) })
}

// FindEdgesByNodeScoreThreshold runs the per-graph threshold query on every
// layer and keeps non-empty results by layer name.
func (m *Multilayer) FindEdgesByNodeScoreThreshold(nodeID, scoreType string, minScore float64) map[string][]*Edge {
	return m.collect(func(g *Graph) []*Edge { return g.FindEdgesByNodeScoreThreshold(nodeID, scoreType, minScore) })
}

func (m *Multilayer) collect(query func(*Graph) []*Edge) map[string][]*Edge {
	out := make(map[string][]*Edge)
	for p := m.graphs.Oldest(); p != nil; p = p.Next() {
		if edges := query(p.Value); len(edges) > 0 {
			out[p.Key] = edges
		}
	}

	return out
}
