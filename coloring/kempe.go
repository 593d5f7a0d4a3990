package coloring

import (
	"fmt"

	"github.com/katalvlaran/fivecolor/core"
)

// KempeSubgraph returns the subgraph of g induced by the vertices colored a
// or b under c. Uncolored vertices are left out. The result is a fresh,
// read-only value; g is not touched.
//
// Complexity: O(V + E).
func KempeSubgraph(g *core.Graph, c Coloring, a, b Color) *core.Graph {
	return core.InducedSubgraph(g, func(id string) bool {
		col, ok := c[id]
		return ok && (col == a || col == b)
	})
}

// SwapColors interchanges a and b across component: a vertex colored a
// becomes b and every other vertex becomes a. Only the vertices named in
// component are touched.
//
// The binary swap is only sound because component was taken from a Kempe
// subgraph of the pair (a, b). That is checked up front: a vertex that is
// uncolored or carries a third color fails with ErrUncolored or
// ErrForeignColor and c is left unmodified.
//
// Complexity: O(len(component)).
func SwapColors(component []string, c Coloring, a, b Color) error {
	for _, id := range component {
		col, ok := c[id]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUncolored, id)
		}
		if col != a && col != b {
			return fmt.Errorf("%w: %q is %s, pair is %s/%s", ErrForeignColor, id, col, a, b)
		}
	}
	for _, id := range component {
		if c[id] == a {
			c[id] = b
		} else {
			c[id] = a
		}
	}

	return nil
}
