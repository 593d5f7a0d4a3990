package bfs

import (
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned for a nil view.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start is not in the view.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrNeighbors wraps a failing View.Neighbors call.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")

	// ErrUnreached is returned by PathTo for a vertex the walk never saw.
	ErrUnreached = errors.New("bfs: vertex not reached")
)

// Option sets a traversal hook.
type Option func(*BFSOptions)

// BFSOptions carries the hooks of one walk. Both are never nil after
// DefaultOptions.
type BFSOptions struct {
	// OnEnqueue sees each vertex with its depth when it joins the frontier.
	OnEnqueue func(id string, depth int)

	// OnVisit sees each vertex when it leaves the frontier. A non-nil error
	// ends the walk and is returned wrapped.
	OnVisit func(id string, depth int) error
}

// DefaultOptions returns no-op hooks.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		OnEnqueue: func(string, int) {},
		OnVisit:   func(string, int) error { return nil },
	}
}

// WithOnEnqueue sets the enqueue hook. nil keeps the default.
func WithOnEnqueue(fn func(id string, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit sets the visit hook. nil keeps the default.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// BFSResult is the BFS tree of one walk.
type BFSResult struct {
	Order  []string          // visit order, start first
	Depth  map[string]int    // edges from the start
	Parent map[string]string // tree predecessor; the start has none
}

// PathTo walks Parent links back from dest and returns the tree path
// start..dest, which is a shortest path in the view.
//
// Complexity: O(depth of dest).
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnreached, dest)
	}
	path := make([]string, d+1)
	for i, cur := d, dest; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}
	return path, nil
}
