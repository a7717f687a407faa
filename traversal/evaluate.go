// SPDX-License-Identifier: MIT
//
// File: evaluate.go
// Role: Metrics over a finished path.

package traversal

import (
	"slices"

	"github.com/katalvlaran/hypernest/adapter"
)

// PathLength returns the number of edges in path (0 for an empty path).
func PathLength(path []string) int {
	if len(path) == 0 {
		return 0
	}
	return len(path) - 1
}

// PathWeight sums the cheapest connecting weight of every consecutive pair.
// Pairs with no connecting edge contribute nothing.
func PathWeight(w adapter.Weighter, path []string) float64 {
	total := 0.0
	for i := 0; i+1 < len(path); i++ {
		if x, ok := w.EdgeWeight(path[i], path[i+1]); ok {
			total += x
		}
	}

	return total
}

// PathConnectivity counts consecutive pairs where the second node is a
// neighbor of the first.
func PathConnectivity(g adapter.Graph, path []string) int {
	n := 0
	for i := 0; i+1 < len(path); i++ {
		if slices.Contains(g.Neighbors(path[i]), path[i+1]) {
			n++
		}
	}

	return n
}
