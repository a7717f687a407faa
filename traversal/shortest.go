// SPDX-License-Identifier: MIT
//
// File: shortest.go
// Role: Dijkstra shortest path over the adapter capability interface.

package traversal

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/hypernest/adapter"
)

// ShortestPath returns the minimum-cost node sequence from source to target.
//
// Edge cost is Weighter.EdgeWeight when g implements adapter.Weighter, else 1.
// The path is returned as soon as target is popped from the frontier.
//
// Returns:
//   - nil, nil when either endpoint is not a node of g or target is unreachable.
//   - []string{source}, nil when source == target.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrNegativeWeight if a relaxed hop has a negative cost.
//
// Complexity:
//   - Time:  O((V + E) log V) heap operations.
//   - Space: O(V + E) under lazy decrease-key.
func ShortestPath(g adapter.Graph, source, target string) ([]string, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.IsValidNode(source) || !g.IsValidNode(target) {
		return nil, nil
	}

	r := &runner{
		g:       g,
		target:  target,
		weight:  unitWeight,
		dist:    make(map[string]float64),
		prev:    make(map[string]string),
		visited: make(map[string]bool),
	}
	if w, ok := g.(adapter.Weighter); ok {
		r.weight = w.EdgeWeight
	}

	r.init(source)
	found, err := r.process()
	if err != nil || !found {
		return nil, err
	}

	return r.pathTo(source), nil
}

func unitWeight(string, string) (float64, bool) { return 1, true }

// runner holds the mutable state for a single shortest-path execution.
type runner struct {
	g       adapter.Graph
	target  string
	weight  func(a, b string) (float64, bool)
	dist    map[string]float64 // absent means +Inf
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
	seq     int
}

// init sets the source distance to zero and seeds the heap.
func (r *runner) init(source string) {
	r.dist[source] = 0
	heap.Init(&r.pq)
	r.push(source, 0)
}

func (r *runner) push(id string, d float64) {
	heap.Push(&r.pq, &nodeItem{id: id, dist: d, seq: r.seq})
	r.seq++
}

func (r *runner) distance(id string) float64 {
	if d, ok := r.dist[id]; ok {
		return d
	}
	return math.Inf(1)
}

// process pops vertices in distance order until the target is reached or the
// frontier is exhausted.
func (r *runner) process() (bool, error) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if u == r.target {
			return true, nil
		}
		// stale entry
		if r.visited[u] {
			continue
		}
		r.visited[u] = true

		if err := r.relax(u, item.dist); err != nil {
			return false, err
		}
	}

	return false, nil
}

// relax improves the distance of every unvisited neighbor of u.
func (r *runner) relax(u string, d float64) error {
	for _, v := range r.g.Neighbors(u) {
		if r.visited[v] {
			continue
		}
		w, ok := r.weight(u, v)
		if !ok {
			continue
		}
		if w < 0 {
			return fmt.Errorf("%w: %s→%s weight=%v", ErrNegativeWeight, u, v, w)
		}
		nd := d + w
		if nd >= r.distance(v) {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		r.push(v, nd)
	}

	return nil
}

// pathTo walks the predecessor links back from the target.
func (r *runner) pathTo(source string) []string {
	path := []string{r.target}
	for cur := r.target; cur != source; {
		cur = r.prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// nodeItem is a frontier entry; seq breaks distance ties by push order.
type nodeItem struct {
	id   string
	dist float64
	seq  int
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
