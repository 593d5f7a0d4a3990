// File: methods_edges.go
// Role: Edge lifecycle & neighbor queries.
//
// Determinism:
//   - Neighbors() reports edges in the order they were added to the vertex.
package core

// AddEdge connects u and v with an undirected edge, auto-adding missing
// endpoints. The edge is appended to both neighbor lists.
//
// Errors:
//   - ErrEmptyVertexID: if u or v is empty.
//   - ErrLoopNotAllowed: if u == v.
//   - ErrMultiEdgeNotAllowed: if u and v are already adjacent.
//
// Complexity: O(deg(u)) for the duplicate check.
func (g *Graph) AddEdge(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if u == v {
		return errorf("AddEdge", "%q: %w", u, ErrLoopNotAllowed)
	}
	if err := g.AddVertex(u); err != nil {
		return err
	}
	if err := g.AddVertex(v); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if contains(g.adj[u], v) {
		return errorf("AddEdge", "%q—%q: %w", u, v, ErrMultiEdgeNotAllowed)
	}
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)

	return nil
}

// HasEdge reports whether u and v are adjacent.
// Complexity: O(deg(u)).
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return contains(g.adj[u], v)
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	total := 0
	for _, nbrs := range g.adj {
		total += len(nbrs)
	}

	return total / 2
}

// Neighbors returns a copy of id's ordered neighbor list.
//
// Errors:
//   - ErrEmptyVertexID: if id is empty.
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adj[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return append([]string(nil), nbrs...), nil
}
