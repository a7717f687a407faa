// SPDX-License-Identifier: MIT
//
// File: node.go
// Role: Node construction, case-insensitive attributes and feature vectors.
// Determinism:
//   - Attribute order is insertion order; maps handed to WithAttributes are
//     inserted in lexicographic key order.

package core

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// DefaultNodeType is used for nodes created implicitly (flattening, ingestion).
const DefaultNodeType = "entity"

// Node is an entity with identity, a type tag, attributes and metadata.
//
// Attribute keys are stored lower-cased. Metadata holds framework annotations
// and is kept apart from user attributes. Features stays nil until
// ComputeFeatures runs and is not refreshed automatically afterwards.
type Node struct {
	ID       string
	Type     string
	Metadata map[string]any
	Features []float64

	attrs *orderedmap.OrderedMap[string, any]
}

// NodeOption configures a Node at construction.
type NodeOption func(*Node)

// WithAttributes adds every entry of attrs. Keys are lower-cased and inserted
// in lexicographic order so feature vectors built from them are reproducible.
func WithAttributes(attrs map[string]any) NodeOption {
	return func(n *Node) {
		keys := make([]string, 0, len(attrs))
		for k := range attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			n.SetAttribute(k, attrs[k])
		}
	}
}

// WithAttribute adds a single attribute in call order.
func WithAttribute(key string, value any) NodeOption {
	return func(n *Node) { n.SetAttribute(key, value) }
}

// WithNodeMetadata copies md into the node metadata.
func WithNodeMetadata(md map[string]any) NodeOption {
	return func(n *Node) {
		for k, v := range md {
			n.Metadata[k] = v
		}
	}
}

// NewNode creates a node. An empty nodeType becomes DefaultNodeType.
// Complexity: O(A log A) for A attributes passed via WithAttributes.
func NewNode(id, nodeType string, opts ...NodeOption) *Node {
	if nodeType == "" {
		nodeType = DefaultNodeType
	}
	n := &Node{
		ID:       id,
		Type:     nodeType,
		Metadata: make(map[string]any),
		attrs:    orderedmap.New[string, any](),
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// SetAttribute stores value under the lower-cased key. Re-setting an existing
// key keeps its original position.
func (n *Node) SetAttribute(key string, value any) {
	if n.attrs == nil {
		n.attrs = orderedmap.New[string, any]()
	}
	n.attrs.Set(strings.ToLower(key), value)
}

// Attribute looks up key case-insensitively.
func (n *Node) Attribute(key string) (any, bool) {
	if n.attrs == nil {
		return nil, false
	}
	return n.attrs.Get(strings.ToLower(key))
}

// HasAttribute reports whether key is present (case-insensitive).
func (n *Node) HasAttribute(key string) bool {
	_, ok := n.Attribute(key)
	return ok
}

// AttributeCount returns the number of attributes.
func (n *Node) AttributeCount() int {
	if n.attrs == nil {
		return 0
	}
	return n.attrs.Len()
}

// AttributeKeys returns the attribute keys in insertion order.
func (n *Node) AttributeKeys() []string {
	keys := make([]string, 0, n.AttributeCount())
	n.EachAttribute(func(k string, _ any) { keys = append(keys, k) })

	return keys
}

// EachAttribute calls fn for every attribute in insertion order.
func (n *Node) EachAttribute(fn func(key string, value any)) {
	if n.attrs == nil {
		return
	}
	for p := n.attrs.Oldest(); p != nil; p = p.Next() {
		fn(p.Key, p.Value)
	}
}

// Attributes returns a copy of the attributes as a plain map.
func (n *Node) Attributes() map[string]any {
	out := make(map[string]any, n.AttributeCount())
	n.EachAttribute(func(k string, v any) { out[k] = v })

	return out
}

// HasFeatures reports whether a feature vector has been computed.
func (n *Node) HasFeatures() bool { return n.Features != nil }

// ComputeFeatures builds the node feature vector and overwrites any previous one.
//
// Implementation:
//   - With keys: one entry per key in the given order; missing keys read as 0.
//   - Without keys: every attribute value in insertion order.
//
// Behavior highlights:
//   - No attributes and no keys yields a non-nil, zero-length vector.
//   - Values are read as numbers: ints, uints, floats, bools (1/0) and numeric
//     strings; nil and blank strings read as 0.
//
// Errors:
//   - ErrNonNumericFeature (wrapped with node ID and key) for any other value;
//     the previous vector is left untouched in that case.
//
// Complexity:
//   - Time O(K) or O(A), Space O(K) or O(A).
func (n *Node) ComputeFeatures(keys ...string) error {
	var out []float64
	if len(keys) > 0 {
		out = make([]float64, len(keys))
		for i, k := range keys {
			v, ok := n.Attribute(k)
			if !ok {
				continue
			}
			f, err := toFloat(v)
			if err != nil {
				return fmt.Errorf("node %q attribute %q: %w", n.ID, k, err)
			}
			out[i] = f
		}
	} else {
		out = make([]float64, 0, n.AttributeCount())
		var convErr error
		n.EachAttribute(func(k string, v any) {
			if convErr != nil {
				return
			}
			f, err := toFloat(v)
			if err != nil {
				convErr = fmt.Errorf("node %q attribute %q: %w", n.ID, k, err)
				return
			}
			out = append(out, f)
		})
		if convErr != nil {
			return convErr
		}
	}
	n.Features = out

	return nil
}

// toFloat converts a scalar attribute value to float64.
func toFloat(v any) (float64, error) {
	switch x := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int8:
		return float64(x), nil
	case int16:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case uint8:
		return float64(x), nil
	case uint16:
		return float64(x), nil
	case uint32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case bool:
		if x {
			return 1, nil
		}
		return 0, nil
	case string:
		x = strings.TrimSpace(x)
		if x == "" {
			return 0, nil
		}
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrNonNumericFeature, x)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrNonNumericFeature, v)
	}
}
