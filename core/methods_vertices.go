// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs in insertion order; RestoreVertex appends, so a
//     removed-then-restored vertex moves to the end.
//
// Concurrency:
//   - Every method takes g.mu; mutations hold the write lock for their whole
//     duration, so removal and restoration are atomic to readers.
package core

// AddVertex inserts a vertex if missing (idempotent).
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.adj[id]; exists {
		return nil // no-op for existing vertex
	}
	g.adj[id] = nil
	g.order = append(g.order, id)

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[id]

	return ok
}

// RemoveVertex deletes a vertex together with every edge incident to it and
// returns the neighbor list the vertex had at the moment of removal.
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Acquire the write lock for an atomic topology update.
//   - Stage 3: Verify vertex presence (ErrVertexNotFound).
//   - Stage 4: Strip id from the neighbor list of every other vertex.
//   - Stage 5: Delete id from the catalog and the insertion order.
//
// Behavior highlights:
//   - After return, id is neither a key nor an element of any neighbor list.
//   - The returned slice is owned by the caller and keeps the original order,
//     which is what RestoreVertex and the colorer's neighbor labelling need.
//
// Complexity:
//   - Time O(V + E) (every list is scanned once), Space O(1) extra.
func (g *Graph) RemoveVertex(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	nbrs, exists := g.adj[id]
	if !exists {
		return nil, ErrVertexNotFound
	}

	for _, u := range g.order {
		if u == id {
			continue
		}
		g.adj[u] = without(g.adj[u], id)
	}
	delete(g.adj, id)
	g.order = without(g.order, id)

	return nbrs, nil
}

// RestoreVertex re-inserts a previously removed vertex with the given
// neighbor list, mirroring each edge onto the neighbor. It is the inverse of
// RemoveVertex and replays one record of an undo log.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrMultiEdgeNotAllowed: if id is already present.
//   - ErrVertexNotFound: if a listed neighbor is absent.
//   - ErrLoopNotAllowed: if id lists itself.
//
// Nothing is mutated when an error is returned.
//
// Complexity: O(V + deg(id)).
func (g *Graph) RestoreVertex(id string, nbrs []string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.adj[id]; exists {
		return errorf("RestoreVertex", "%q already present: %w", id, ErrMultiEdgeNotAllowed)
	}
	for _, v := range nbrs {
		if v == id {
			return errorf("RestoreVertex", "%q: %w", id, ErrLoopNotAllowed)
		}
		if _, ok := g.adj[v]; !ok {
			return errorf("RestoreVertex", "%q lists %q: %w", id, v, ErrVertexNotFound)
		}
	}

	g.adj[id] = append([]string(nil), nbrs...)
	g.order = append(g.order, id)
	for _, v := range nbrs {
		g.adj[v] = append(g.adj[v], id)
	}

	return nil
}

// Vertices returns all vertex IDs in insertion order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]string(nil), g.order...)
}

// VertexCount returns the current number of vertices in the graph.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// Empty reports whether the graph has no vertices left.
func (g *Graph) Empty() bool { return g.VertexCount() == 0 }

// Degree returns the size of id's neighbor list.
//
// Errors:
//   - ErrEmptyVertexID: if id is empty.
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adj[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(nbrs), nil
}

// FirstWithDegreeAtMost returns the first vertex, in insertion order, whose
// degree is ≤ max. ok is false when no such vertex exists.
//
// Complexity: O(V).
func (g *Graph) FirstWithDegreeAtMost(max int) (id string, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, v := range g.order {
		if len(g.adj[v]) <= max {
			return v, true
		}
	}

	return "", false
}
