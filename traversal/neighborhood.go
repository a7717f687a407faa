// SPDX-License-Identifier: MIT
//
// File: neighborhood.go
// Role: Breadth-first reachability with hop depth and parent links.

package traversal

import (
	"context"

	"github.com/katalvlaran/hypernest/adapter"
)

// Reach is the outcome of Neighborhood.
type Reach struct {
	// Order lists nodes in visit order, start first.
	Order []string `json:"order"`
	// Depth maps each reached node to its hop distance from the start.
	Depth map[string]int `json:"depth"`
	// Parent maps each reached node (except the start) to its BFS predecessor.
	Parent map[string]string `json:"parent"`
}

// PathTo rebuilds the hop-minimal path from the start to id, or nil if id
// was not reached.
func (r *Reach) PathTo(id string) []string {
	if _, ok := r.Depth[id]; !ok {
		return nil
	}
	path := []string{id}
	for cur := id; ; {
		p, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Neighborhood visits every node within MaxHops hops of start in
// breadth-first order. Only WithContext and WithMaxHops are consulted; scores
// and node types play no part.
//
// Returns a nil Reach when start is not a node of g.
//
// Errors:
//   - ErrNilGraph, ErrOptionViolation, or the context error on cancellation.
//
// Complexity:
//   - O(V + E) adapter calls, each at the adapter's scan cost.
func Neighborhood(g adapter.Graph, start string, opts ...Option) (*Reach, error) {
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

	w := &bfsWalker{
		g:     g,
		ctx:   o.Ctx,
		limit: o.MaxHops,
		res: &Reach{
			Depth:  make(map[string]int),
			Parent: make(map[string]string),
		},
	}
	w.enqueue(start, 0, "")

	return w.res, w.loop()
}

// queueItem pairs a node ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// bfsWalker encapsulates mutable BFS state.
type bfsWalker struct {
	g     adapter.Graph
	ctx   context.Context
	limit int
	queue []queueItem
	res   *Reach
}

// enqueue marks id reached at depth d and records its parent.
func (w *bfsWalker) enqueue(id string, d int, parent string) {
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

func (w *bfsWalker) loop() error {
	for len(w.queue) > 0 {
		if err := w.ctx.Err(); err != nil {
			return err
		}
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)

		if item.depth >= w.limit {
			continue
		}
		for _, nbr := range w.g.Neighbors(item.id) {
			if _, seen := w.res.Depth[nbr]; !seen {
				w.enqueue(nbr, item.depth+1, item.id)
			}
		}
	}

	return nil
}
