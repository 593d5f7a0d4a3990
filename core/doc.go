// Package core provides the mutable, undirected adjacency-list Graph consumed
// by the five-color algorithm, together with the read-only View surface that
// traversals run over.
//
// The Graph G = (V,E) keeps:
//
//   - an insertion-ordered vertex catalog (Vertices() reports it verbatim), so
//     "the first vertex with degree ≤ k" is a deterministic question;
//   - an ordered neighbor list per vertex; Neighbors(v) returns it in the
//     order the edges were added, which is the order the colorer labels the
//     neighbors of a degree-5 vertex;
//   - a single sync.RWMutex that makes every mutation atomic to observers.
//
// Invariants:
//
//   - Adjacency is symmetric: u ∈ N(v) ⇔ v ∈ N(u).
//   - No self-loops, no parallel edges.
//   - RemoveVertex strips v from every neighbor list and deletes v under one
//     write lock; no reader observes a half-removed vertex.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                      // O(1) amortized
//	HasVertex(id string) bool                       // O(1)
//	RemoveVertex(id string) ([]string, error)       // O(V + Σdeg(N(v)))
//	RestoreVertex(id string, nbrs []string) error   // O(V + deg(v))
//
//	// Edge lifecycle
//	AddEdge(u, v string) error                      // O(deg(u)+deg(v))
//	HasEdge(u, v string) bool                       // O(deg(u))
//
//	// Query
//	Degree(id string) (int, error)                  // O(1)
//	Neighbors(id string) ([]string, error)          // O(deg), copy
//	Vertices() []string                             // O(V), insertion order
//	AdjacencyList() map[string][]string             // O(V+E), copy
//
//	// Copies and views
//	Clone() *Graph                                  // O(V+E)
//	InducedSubgraph(g, keep) *Graph                 // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID        – zero-length vertex ID
//	ErrVertexNotFound       – missing vertex
//	ErrLoopNotAllowed       – edge from a vertex to itself
//	ErrMultiEdgeNotAllowed  – second edge between the same endpoints
//	ErrAsymmetricAdjacency  – FromAdjacency input lists u→v without v→u
package core
