// SPDX-License-Identifier: MIT
//
// File: nesting.go
// Role: Options, cycle-guarded pre-order walk and duplicate analysis.

package nesting

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/hypernest/core"
)

// Options controls how aggregator children are listed and compared.
type Options struct {
	// Recurse lists descendants of nested aggregators, not only immediate children.
	Recurse bool
	// RespectDirection keeps pair keys in stored order instead of canonicalizing them.
	RespectDirection bool
	// Nodes, if set, supplies existing node objects to Flatten.
	Nodes core.NodeLookup
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions lists immediate children only and canonicalizes pair keys.
func DefaultOptions() Options { return Options{} }

// WithRecurse includes the descendants of nested aggregators.
func WithRecurse() Option { return func(o *Options) { o.Recurse = true } }

// WithRespectDirection compares pair keys in stored order.
func WithRespectDirection() Option { return func(o *Options) { o.RespectDirection = true } }

// WithNodes makes Flatten reuse nodes found in lookup.
func WithNodes(lookup core.NodeLookup) Option { return func(o *Options) { o.Nodes = lookup } }

func gather(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// ScoreRecord is one mention of a duplicate node or pair inside a child hyperedge.
type ScoreRecord struct {
	HyperedgeID string
	Scores      core.Scores
}

// Walk lists agg's children, pre-order when WithRecurse is given.
//
// Errors:
//   - core.ErrNilHyperedge if agg is nil.
//   - core.ErrCyclicNesting (wrapped with the aggregator ID) if recursion meets
//     an aggregator already on the current path.
//
// Complexity:
//   - Time O(N) over the listed hyperedges, Space O(depth).
func Walk(agg *core.Aggregator, opts ...Option) ([]core.Hyperedge, error) {
	if agg == nil {
		return nil, core.ErrNilHyperedge
	}
	o := gather(opts)
	out := make([]core.Hyperedge, 0, len(agg.Children))
	onPath := map[*core.Aggregator]bool{agg: true}
	if err := walk(agg, o.Recurse, onPath, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func walk(agg *core.Aggregator, recurse bool, onPath map[*core.Aggregator]bool, out *[]core.Hyperedge) error {
	for _, c := range agg.Children {
		if c == nil {
			continue
		}
		*out = append(*out, c)
		sub, ok := c.(*core.Aggregator)
		if !recurse || !ok {
			continue
		}
		if onPath[sub] {
			return fmt.Errorf("Walk: aggregator %q: %w", sub.ID, core.ErrCyclicNesting)
		}
		onPath[sub] = true
		if err := walk(sub, recurse, onPath, out); err != nil {
			return err
		}
		delete(onPath, sub)
	}

	return nil
}

// FindDuplicateNodes returns the node IDs referenced by more than one listed
// child, in order of first appearance.
func FindDuplicateNodes(agg *core.Aggregator, opts ...Option) ([]string, error) {
	children, err := Walk(agg, opts...)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, c := range children {
		for id := range core.NodeSet(c) {
			counts[id]++
		}
	}
	dups := make([]string, 0)
	for _, id := range firstAppearance(children, len(counts)) {
		if counts[id] > 1 {
			dups = append(dups, id)
		}
	}

	return dups, nil
}

// firstAppearance lists every referenced node ID once, in listing order.
func firstAppearance(children []core.Hyperedge, size int) []string {
	seen := make(map[string]struct{}, size)
	out := make([]string, 0, size)
	for _, c := range children {
		for _, id := range core.NodeIDs(c) {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}

	return out
}

// FindDuplicatePairs returns the pair-score keys stored by more than one
// listed child, sorted.
func FindDuplicatePairs(agg *core.Aggregator, opts ...Option) ([]core.Pair, error) {
	children, err := Walk(agg, opts...)
	if err != nil {
		return nil, err
	}
	o := gather(opts)
	counts := make(map[core.Pair]int)
	for _, c := range children {
		for _, k := range c.Head().PairKeys(o.RespectDirection) {
			counts[k]++
		}
	}
	dups := make([]core.Pair, 0)
	for k, n := range counts {
		if n > 1 {
			dups = append(dups, k)
		}
	}

	return core.SortPairs(dups), nil
}

// DuplicateNodeScores maps each ID in duplicates to one record per listed child
// that references it, holding that child's node scores for the ID (empty if none).
func DuplicateNodeScores(agg *core.Aggregator, duplicates []string, opts ...Option) (map[string][]ScoreRecord, error) {
	children, err := Walk(agg, opts...)
	if err != nil {
		return nil, err
	}
	sets := nodeSets(children)
	out := make(map[string][]ScoreRecord, len(duplicates))
	for _, id := range duplicates {
		for i, c := range children {
			if _, ok := sets[i][id]; !ok {
				continue
			}
			h := c.Head()
			out[id] = append(out[id], ScoreRecord{HyperedgeID: h.ID, Scores: scoresOrEmpty(h.NodeScores[id])})
		}
	}

	return out, nil
}

// DuplicatePairScores maps each pair in duplicates to one record per listed child
// that either stores a score for it or contains both of its nodes.
func DuplicatePairScores(agg *core.Aggregator, duplicates []core.Pair, opts ...Option) (map[core.Pair][]ScoreRecord, error) {
	children, err := Walk(agg, opts...)
	if err != nil {
		return nil, err
	}
	o := gather(opts)
	sets := nodeSets(children)
	out := make(map[core.Pair][]ScoreRecord, len(duplicates))
	for _, pair := range duplicates {
		key := core.MakePair(pair[0], pair[1], o.RespectDirection)
		for i, c := range children {
			h := c.Head()
			if s, ok := h.PairScores[key]; ok {
				out[pair] = append(out[pair], ScoreRecord{HyperedgeID: h.ID, Scores: s.Clone()})
				continue
			}
			_, hasA := sets[i][pair[0]]
			_, hasB := sets[i][pair[1]]
			if hasA && hasB {
				out[pair] = append(out[pair], ScoreRecord{HyperedgeID: h.ID, Scores: core.Scores{}})
			}
		}
	}

	return out, nil
}

func nodeSets(children []core.Hyperedge) []map[string]struct{} {
	sets := make([]map[string]struct{}, len(children))
	for i, c := range children {
		sets[i] = core.NodeSet(c)
	}

	return sets
}

func scoresOrEmpty(s core.Scores) core.Scores {
	if s == nil {
		return core.Scores{}
	}

	return s.Clone()
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
