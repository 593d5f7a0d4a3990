package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/fivecolor/bfs"
	"github.com/katalvlaran/fivecolor/core"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on a 3×3 grid (9 vertices).
func ExampleBFS_gridTraversal() {
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			// connect to right neighbor
			if j+1 < 3 {
				_ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i, j+1))
			}
			// connect to down neighbor
			if i+1 < 3 {
				_ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i+1, j))
			}
		}
	}

	res, err := bfs.BFS(g, "0_0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0_0 0_1 1_0 0_2 1_1 2_0 1_2 2_1 2_2]
}

// ExampleConnectedComponent finds a Kempe-style chain inside a filtered view:
// only the vertices labelled "r" or "g" are kept.
func ExampleConnectedComponent() {
	g := core.NewGraph()
	_ = g.AddEdge("r1", "g1")
	_ = g.AddEdge("g1", "b1")
	_ = g.AddEdge("b1", "r2")
	_ = g.AddEdge("g1", "r3")

	sub := core.InducedSubgraph(g, func(id string) bool { return id[0] == 'r' || id[0] == 'g' })
	chain, _ := bfs.ConnectedComponent(sub, "r1")
	joined, _ := bfs.PathExists(sub, "r1", "r2")
	fmt.Println(chain, joined)
	// Output:
	// [r1 g1 r3] false
}
