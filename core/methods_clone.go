// File: methods_clone.go
// Role: Cloning, snapshots and clearing.
//
// Concurrency:
//   - Read lock for snapshotting; the source graph is never mutated.
package core

// Clone returns a deep copy of the Graph: vertex order and every neighbor
// list, order preserved.
//
// Callers that hand a graph to a destructive algorithm keep a Clone for
// anything they need afterwards (validation, rendering).
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		order: append([]string(nil), g.order...),
		adj:   make(map[string][]string, len(g.adj)),
	}
	for id, nbrs := range g.adj {
		clone.adj[id] = append([]string(nil), nbrs...)
	}

	return clone
}

// AdjacencyList returns a snapshot copy of the vertex → neighbors mapping.
// Complexity: O(V + E)
func (g *Graph) AdjacencyList() map[string][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string][]string, len(g.adj))
	for id, nbrs := range g.adj {
		out[id] = append([]string(nil), nbrs...)
	}

	return out
}

// Clear resets the graph to an empty state.
// Complexity: O(1)
func (g *Graph) Clear() {
	g.mu.Lock()
	g.order = nil
	g.adj = make(map[string][]string)
	g.mu.Unlock()
}
