package coloring_test

import (
	"fmt"

	"github.com/katalvlaran/fivecolor/builder"
	"github.com/katalvlaran/fivecolor/coloring"
)

// ExampleFiveColor colors a wheel with a degree-5 hub. The graph is consumed,
// so a clone is kept for validation.
func ExampleFiveColor() {
	g, _ := builder.BuildGraph(nil, builder.Wheel(6))
	orig := g.Clone()

	col, err := coloring.FiveColor(g)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, v := range orig.Vertices() {
		fmt.Printf("%s: %s\n", v, col[v])
	}
	fmt.Println("proper:", coloring.IsProper(orig, col))
	// Output:
	// Center: white
	// 0: green
	// 1: red
	// 2: blue
	// 3: red
	// 4: blue
	// proper: true
}
