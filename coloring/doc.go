// Package coloring computes proper five-colorings of planar graphs by the
// constructive proof of the five-color theorem.
//
// What
//
//   - Color, Set: the fixed five-color palette and bitmask subsets of it.
//   - Coloring: vertex → Color, plus NeighborColors and Available.
//   - KempeSubgraph, SwapColors: two-color induced subgraphs and the color
//     interchange along one of their components.
//   - FiveColor: reduce the graph one vertex of degree ≤ 5 at a time, then
//     extend the coloring back in reverse, resolving the hard case with a
//     Kempe chain swap.
//   - IsProper, Conflicts, Verify: post-hoc checks.
//
// Ownership
//
//	FiveColor mutates the graph it is given. Keep a Clone for validation:
//
//	    orig := g.Clone()
//	    col, err := coloring.FiveColor(g)
//	    if err == nil && coloring.IsProper(orig, col) { ... }
//
// Concurrency
//
//	A run is sequential and owns its graph and coloring. Separate runs on
//	separate graphs may proceed in parallel.
//
// Errors
//
//   - ErrGraphNil          nil graph.
//   - ErrNotPlanar         no vertex of degree ≤ 5 left, or no Kempe chain
//     frees a color.
//   - ErrUncolored         a neighbor has no color yet (integrity bug).
//   - ErrNoAvailableColor  all five colors taken at reinsertion.
//   - ErrForeignColor      a swap component holds a third color.
//   - ErrIncomplete, ErrImproper, ErrUnknownColor from Verify.
package coloring
