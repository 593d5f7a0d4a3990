package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/fivecolor/core"
)

// addVertices inserts ids in order, wrapping core errors with method context.
// Complexity: O(len(ids)).
func addVertices(g *core.Graph, method string, ids []string) error {
	for _, id := range ids {
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}
	return nil
}

// addEdge adds u—v, wrapping core errors with method context.
func addEdge(g *core.Graph, method, u, v string) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s—%s): %w", method, u, v, err)
	}
	return nil
}

// indexIDs returns idFn(0..n-1).
// Complexity: O(n) time and space.
func indexIDs(idFn IDFn, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = idFn(i)
	}
	return ids
}

// gridVertexID formats a 2D grid coordinate as "r_c".
// The underscore keeps IDs valid in the .graphe line format, where ',' separates neighbors.
func gridVertexID(r, c int) string {
	return strconv.Itoa(r) + "_" + strconv.Itoa(c)
}
