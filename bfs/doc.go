// Package bfs provides breadth-first search over any core.View (the full
// graph or an induced, color-filtered subgraph of it).
//
// What
//
//   - BFS: visit order, depth and parent maps from a start vertex.
//   - PathExists: reachability test that stops the instant the target is
//     dequeued.
//   - ConnectedComponent: every vertex reachable from the start, start first.
//   - BFSResult.PathTo: the tree path to a reached vertex, used to report
//     the chain that joins two Kempe terminals.
//   - Hooks: OnEnqueue, OnVisit (may abort with an error).
//
// Why
//
//   - The five-color reinsertion step asks two questions of a two-color
//     subgraph: "are these two vertices joined?" and "which vertices share a
//     Kempe chain with this one?". Both are single BFS runs.
//
// Determinism
//
//	Neighbors are enqueued in the order View.Neighbors reports them, and the
//	frontier is FIFO, so for a fixed view the visit order is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges| of the view)
//
//   - Time:   O(V + E)
//   - Memory: O(V)   (queue, visited set, depth and parent maps)
//
// Usage
//
//	joined, err := bfs.PathExists(sub, "a", "c")
//	chain, err := bfs.ConnectedComponent(sub, "b")
//
// Errors
//
//   - ErrGraphNil             if the view is nil.
//   - ErrStartVertexNotFound  if the start vertex is not in the view.
//   - ErrUnreached            from PathTo for a vertex outside the tree.
//   - ErrNeighbors            if View.Neighbors fails for a visited vertex.
//   - Wrapped user-supplied hook errors from OnVisit.
//
// The view is only read; traversals never mutate it.
package bfs
