// SPDX-License-Identifier: MIT
//
// File: paths.go
// Role: Best-first multi-hop search with multiplicative score decay.

package traversal

import (
	"container/heap"
	"context"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/hypernest/adapter"
)

// FindPaths explores simple paths from start in descending score order.
//
// Implementation:
//   - Stage 1: push [start] with score 1.0.
//   - Stage 2: pop the best path. Record it if score >= Tau and its last node
//     matches EndType (any type when EndType is ""). With CollectAll false the
//     first recorded path is returned immediately.
//   - Stage 3: unless the path already has MaxHops edges, extend it by every
//     neighbor not yet on the path. The extension scores
//     score * EdgeScore(last, neighbor); it is dropped below Tau or when its
//     (path, rounded score) signature was already pushed.
//   - Stage 4: stable-sort the results by descending score.
//
// Returns nil when start is not a node of g.
//
// Errors:
//   - ErrNilGraph, ErrOptionViolation, or the context error on cancellation.
func FindPaths(g adapter.Graph, start string, opts ...Option) ([]Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.IsValidNode(start) {
		return nil, nil
	}

	w := &walker{g: g, opts: o, ctx: o.Ctx, seen: make(map[string]struct{})}

	return w.run(start)
}

// walker encapsulates mutable best-first search state.
type walker struct {
	g    adapter.Graph
	opts Options
	ctx  context.Context
	pq   pathPQ
	seen map[string]struct{}
	seq  int
}

func (w *walker) run(start string) ([]Result, error) {
	heap.Init(&w.pq)
	w.push([]string{start}, 1.0)

	results := make([]Result, 0)
	for w.pq.Len() > 0 {
		if err := w.ctx.Err(); err != nil {
			return nil, err
		}
		item := heap.Pop(&w.pq).(*pathItem)

		if w.qualifies(item) {
			results = append(results, Result{Path: item.path, Score: item.score})
			if !w.opts.CollectAll {
				return results, nil
			}
		}
		if len(item.path)-1 >= w.opts.MaxHops {
			continue
		}
		w.expand(item)
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })

	return results, nil
}

func (w *walker) qualifies(item *pathItem) bool {
	if item.score < w.opts.Tau {
		return false
	}
	if w.opts.EndType == "" {
		return true
	}
	return w.g.NodeType(item.last()) == w.opts.EndType
}

func (w *walker) expand(item *pathItem) {
	cur := item.last()
	for _, nbr := range w.g.Neighbors(cur) {
		if slices.Contains(item.path, nbr) {
			continue
		}
		score := item.score * w.g.EdgeScore(cur, nbr)
		if score < w.opts.Tau {
			continue
		}
		next := make([]string, len(item.path)+1)
		copy(next, item.path)
		next[len(item.path)] = nbr

		key := w.signature(next, score)
		if _, dup := w.seen[key]; dup {
			continue
		}
		w.seen[key] = struct{}{}
		w.push(next, score)
	}
}

// signature identifies an expansion by its node sequence and rounded score.
func (w *walker) signature(path []string, score float64) string {
	return strings.Join(path, "\x1f") + "|" + strconv.FormatFloat(score, 'f', w.opts.DedupPrecision, 64)
}

func (w *walker) push(path []string, score float64) {
	heap.Push(&w.pq, &pathItem{path: path, score: score, seq: w.seq})
	w.seq++
}

// pathItem is a partial path on the frontier.
type pathItem struct {
	path  []string
	score float64
	seq   int
}

func (p *pathItem) last() string { return p.path[len(p.path)-1] }

// pathPQ is a max-heap on score; equal scores pop in push order.
type pathPQ []*pathItem

func (pq pathPQ) Len() int { return len(pq) }

func (pq pathPQ) Less(i, j int) bool {
	if pq[i].score != pq[j].score {
		return pq[i].score > pq[j].score
	}
	return pq[i].seq < pq[j].seq
}

func (pq pathPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *pathPQ) Push(x interface{}) { *pq = append(*pq, x.(*pathItem)) }

func (pq *pathPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
