package hypergraph_test

import (
	"fmt"

	"github.com/katalvlaran/hypernest/core"
	"github.com/katalvlaran/hypernest/hypergraph"
)

// ExampleHypergraph_AdjacencyMatrix builds a three-gene pathway plus one
// regulation edge and prints the adjacency rows.
func ExampleHypergraph_AdjacencyMatrix() {
	h := hypergraph.New("demo")
	for _, id := range []string{"TP53", "MDM2", "CDKN1A"} {
		_ = h.AddNode(core.NewNode(id, "gene"))
	}
	_ = h.AddEdge(core.NewSimple("p53_pathway", []string{"TP53", "MDM2"}, "pathway"))
	_ = h.AddEdge(core.NewDirected("activates", []string{"TP53"}, []string{"CDKN1A"}, "regulation", core.WithWeight(0.5)))

	for _, row := range hypergraph.ToRows(h.AdjacencyMatrix()) {
		fmt.Println(row)
	}
	// Output:
	// [0 1 0.5]
	// [1 0 0]
	// [0 0 0]
}

// ExampleHypergraph_CreatePartition keeps only nodes carrying a "tissue" attribute.
func ExampleHypergraph_CreatePartition() {
	h := hypergraph.New("demo")
	_ = h.AddNode(core.NewNode("n1", "", core.WithAttribute("tissue", "liver")))
	_ = h.AddNode(core.NewNode("n2", ""))
	_ = h.AddEdge(core.NewSimple("e1", []string{"n1", "n2"}, "m"))

	p := h.CreatePartition("by-tissue", "tissue")
	fmt.Println(p.NodeIDs(), p.EdgeIDs())
	// Output: [n1] []
}
