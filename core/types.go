// Package core defines the Graph type, its sentinel errors and the View
// interface implemented by every graph handed to a traversal.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrAsymmetricAdjacency indicates an adjacency mapping lists u→v but not v→u.
	ErrAsymmetricAdjacency = errors.New("core: adjacency is not symmetric")
)

// View is the read-only surface traversals depend on. *Graph implements it,
// and so does every induced subgraph built from one.
type View interface {
	// HasVertex reports whether id is a vertex of the view.
	HasVertex(id string) bool

	// Neighbors returns the ordered neighbor list of id, or ErrVertexNotFound.
	Neighbors(id string) ([]string, error)
}

// Graph is an undirected simple graph stored as ordered adjacency lists.
//
// order keeps vertex insertion order; adj maps a vertex to its neighbors in
// edge insertion order. mu guards both.
type Graph struct {
	mu sync.RWMutex

	order []string
	adj   map[string][]string
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{adj: make(map[string][]string)}
}

// FromAdjacency builds a Graph from a vertex order and an adjacency mapping,
// the shape an external loader produces.
//
// Vertices are registered in the given order, then each vertex's neighbor
// list is copied verbatim so neighbor order survives. Every vertex in adj
// must appear in order and vice versa.
//
// Errors:
//   - ErrEmptyVertexID for an empty ID.
//   - ErrVertexNotFound if a neighbor or an adj key is not in order.
//   - ErrLoopNotAllowed / ErrMultiEdgeNotAllowed for non-simple lists.
//   - ErrAsymmetricAdjacency if u lists v but v does not list u.
//
// Complexity: O(V + E·d) where d is the maximum degree.
func FromAdjacency(order []string, adj map[string][]string) (*Graph, error) {
	g := NewGraph()
	for _, id := range order {
		if err := g.AddVertex(id); err != nil {
			return nil, err
		}
	}
	for id := range adj {
		if _, ok := g.adj[id]; !ok {
			return nil, errorf("FromAdjacency", "vertex %q not declared: %w", id, ErrVertexNotFound)
		}
	}

	for _, u := range order {
		seen := make(map[string]struct{}, len(adj[u]))
		for _, v := range adj[u] {
			if v == u {
				return nil, errorf("FromAdjacency", "%q: %w", u, ErrLoopNotAllowed)
			}
			if _, ok := g.adj[v]; !ok {
				return nil, errorf("FromAdjacency", "%q lists %q: %w", u, v, ErrVertexNotFound)
			}
			if _, dup := seen[v]; dup {
				return nil, errorf("FromAdjacency", "%q lists %q twice: %w", u, v, ErrMultiEdgeNotAllowed)
			}
			seen[v] = struct{}{}
			if !contains(adj[v], u) {
				return nil, errorf("FromAdjacency", "%q lists %q: %w", u, v, ErrAsymmetricAdjacency)
			}
		}
		g.adj[u] = append([]string(nil), adj[u]...)
	}

	return g, nil
}
