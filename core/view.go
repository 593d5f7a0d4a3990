// File: view.go
// Role: Non-mutating graph views.
// Concurrency:
//   - Read lock on source; result is a fresh graph instance.
package core

// InducedSubgraph returns a new Graph induced by the vertices for which keep
// returns true: it contains exactly those vertices, in the source's insertion
// order, and every edge whose endpoints are both kept, in the source's
// neighbor order. The input graph is not mutated.
//
// A nil keep keeps nothing.
//
// Complexity: O(V + E). Concurrency: read lock only on source.
func InducedSubgraph(g *Graph, keep func(id string) bool) *Graph {
	out := NewGraph()
	if g == nil || keep == nil {
		return out
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	kept := make(map[string]bool, len(g.order))
	for _, id := range g.order {
		if keep(id) {
			kept[id] = true
			out.order = append(out.order, id)
		}
	}
	for _, id := range out.order {
		var nbrs []string
		for _, v := range g.adj[id] {
			if kept[v] {
				nbrs = append(nbrs, v)
			}
		}
		out.adj[id] = nbrs
	}

	return out
}
