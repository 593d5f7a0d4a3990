// Package fivecolor colors planar graphs with at most five colors, following
// the constructive proof of the five-color theorem.
//
// 🚀 What is in the box?
//
//	• core/     thread-safe undirected simple graph with reversible vertex removal
//	• bfs/      breadth-first traversal, reachability and connected components
//	• coloring/ the five-color palette, Kempe chains, the colorer and validators
//	• builder/  deterministic planar fixtures: wheels, grids, platonic solids,
//	            stacked triangulations
//	• graphio/  .graphe graph files, coloring files, YAML layouts, Graphviz DOT
//	• store/    BadgerDB cache of finished colorings keyed by graph digest
//	• render/   Graphviz subprocess for DOT to image
//	• cmd/fivecolor  the command line front end
//
// Quick example:
//
//	    A───B
//	    │ ╲ │
//	    D───C
//
//	g, _ := graphio.LoadGraph("res", "square")
//	orig := g.Clone()
//	col, err := coloring.FiveColor(g)   // g is consumed
//	if err == nil {
//	    err = coloring.Verify(orig, col)
//	}
//
//	go install github.com/katalvlaran/fivecolor/cmd/fivecolor@latest
package fivecolor
