// SPDX-License-Identifier: MIT
//
// File: main.go
// Role: Entry point of the hypernest command.

// Command hypernest builds a hypergraph from a tabular dataset and prints
// matrices, paths, partitions and nesting reports as JSON.
//
//	hypernest --data genes.yaml matrix adjacency
//	hypernest --data genes.csv --nodes gene --edges pathway shortest TP53 EGFR
//	hypernest --data genes.yaml paths TP53 --end-type drug --tau 0.1
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
