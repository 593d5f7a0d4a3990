package bfs

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/queues/arrayqueue"

	"github.com/katalvlaran/fivecolor/core"
)

// errFound stops a walk as soon as the target is dequeued.
var errFound = errors.New("bfs: target found")

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	view    core.View
	opts    BFSOptions
	queue   *arrayqueue.Queue
	visited map[string]bool
	res     *BFSResult
}

// BFS runs breadth-first search on view starting from startID,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrNeighbors for view failures, or any user-supplied hook error.
func BFS(view core.View, startID string, opts ...Option) (*BFSResult, error) {
	w, err := newWalker(view, startID, opts)
	if err != nil {
		return nil, err
	}

	return w.res, w.loop()
}

// PathExists reports whether target is reachable from start within view.
// It returns true the instant target is dequeued and false once the frontier
// is exhausted. A target absent from the view is simply unreachable.
//
// Complexity: O(V + E) of the view.
func PathExists(view core.View, start, target string, opts ...Option) (bool, error) {
	w, err := newWalker(view, start, opts)
	if err != nil {
		return false, err
	}
	if !view.HasVertex(target) {
		return false, nil
	}

	visit := w.opts.OnVisit
	w.opts.OnVisit = func(id string, depth int) error {
		if err := visit(id, depth); err != nil {
			return err
		}
		if id == target {
			return errFound
		}
		return nil
	}

	err = w.loop()
	switch {
	case errors.Is(err, errFound):
		return true, nil
	case err != nil:
		return false, err
	default:
		return false, nil
	}
}

// ConnectedComponent returns every vertex reachable from start within view,
// in BFS visit order. start itself is always the first element, even when it
// has no edges in the view.
//
// Complexity: O(V + E) of the view.
func ConnectedComponent(view core.View, start string, opts ...Option) ([]string, error) {
	res, err := BFS(view, start, opts...)
	if err != nil {
		return nil, err
	}

	return res.Order, nil
}

func newWalker(view core.View, startID string, opts []Option) (*walker, error) {
	if view == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !view.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	w := &walker{
		view:    view,
		opts:    o,
		queue:   arrayqueue.New(),
		visited: make(map[string]bool),
		res: &BFSResult{
			Depth:  make(map[string]int),
			Parent: make(map[string]string),
		},
	}
	w.enqueue(startID, 0, "")

	return w, nil
}

// enqueue marks id visited at depth d, calls OnEnqueue, records its parent,
// and adds it to the queue.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue.Enqueue(queueItem{id: id, depth: d})
}

// loop processes the queue until empty or error.
func (w *walker) loop() error {
	for !w.queue.Empty() {
		v, _ := w.queue.Dequeue()
		item := v.(queueItem)

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			if errors.Is(err, errFound) {
				return err
			}
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors enqueues each unseen neighbor of item one level deeper.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.view.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, item.id, err)
	}
	for _, nbr := range neighbors {
		if !w.visited[nbr] {
			w.enqueue(nbr, item.depth+1, item.id)
		}
	}

	return nil
}
