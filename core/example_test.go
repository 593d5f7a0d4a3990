package core_test

import (
	"fmt"

	"github.com/katalvlaran/fivecolor/core"
)

// ExampleGraph_RemoveVertex demonstrates the remove/restore undo pair.
func ExampleGraph_RemoveVertex() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "C")
	_ = g.AddEdge("C", "A")

	nbrs, _ := g.RemoveVertex("B")
	fmt.Println("removed B, neighbors:", nbrs)
	fmt.Println("edge A—B exists?", g.HasEdge("A", "B"))

	_ = g.RestoreVertex("B", nbrs)
	fmt.Println("restored, edge A—B exists?", g.HasEdge("A", "B"))

	// Output:
	// removed B, neighbors: [A C]
	// edge A—B exists? false
	// restored, edge A—B exists? true
}
