package coloring

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/fivecolor/bfs"
	"github.com/katalvlaran/fivecolor/core"
)

// MaxReducibleDegree is the largest degree a vertex may have to be removed.
// Every planar graph has at least one such vertex.
const MaxReducibleDegree = 5

// Case names the reinsertion branch taken for a vertex.
type Case uint8

const (
	// CaseLow: fewer than five neighbors, a color is always left over.
	CaseLow Case = iota
	// CaseSpare: five neighbors sharing at most four colors.
	CaseSpare
	// CaseKempe: five neighbors with five distinct colors; a Kempe chain
	// interchange frees one of them.
	CaseKempe
)

func (c Case) String() string {
	switch c {
	case CaseLow:
		return "low"
	case CaseSpare:
		return "spare"
	case CaseKempe:
		return "kempe"
	}
	return fmt.Sprintf("case(%d)", uint8(c))
}

// Step describes one reinsertion. It is handed to the WithTrace hook after
// the vertex has its final color.
type Step struct {
	Vertex    string
	Neighbors []string // neighbor list recorded at removal time
	Case      Case
	Color     Color

	// Set only for CaseKempe. Labels holds the neighbor colors α..ε in
	// neighbor order; ε never takes part in the interchange.
	Labels    [NumColors]Color
	Swap      [2]Color // the interchanged pair
	Component []string // the Kempe chain that was swapped
	Fallback  bool     // the α/γ, β/δ pairing did not free a color

	// Blocking is a shortest α..γ path in the α/γ subgraph when one exists,
	// the reason the interchange moved to the β/δ pair.
	Blocking []string
}

// Stats accumulates counters over one FiveColor run.
type Stats struct {
	Removed   int `json:"removed" yaml:"removed" msgpack:"removed"` // vertices pushed on the undo stack
	Low       int `json:"low" yaml:"low" msgpack:"low"`
	Spare     int `json:"spare" yaml:"spare" msgpack:"spare"`
	Kempe     int `json:"kempe" yaml:"kempe" msgpack:"kempe"`
	Swapped   int `json:"swapped" yaml:"swapped" msgpack:"swapped"` // vertices recolored by the last interchange of each Kempe step
	Fallbacks int `json:"fallbacks" yaml:"fallbacks" msgpack:"fallbacks"`
}

// Option configures FiveColor.
type Option func(*options)

type options struct {
	trace func(Step)
	stats *Stats
}

// WithTrace registers fn to receive a Step for every reinserted vertex, in
// reinsertion order.
func WithTrace(fn func(Step)) Option {
	return func(o *options) { o.trace = fn }
}

// WithStats makes FiveColor fill s. s is reset at the start of the run.
func WithStats(s *Stats) Option {
	return func(o *options) { o.stats = s }
}

// removal is one undo-log record: a vertex and its neighbors at the moment
// it left the graph.
type removal struct {
	id   string
	nbrs []string
}

// FiveColor computes a proper coloring of g with at most five colors.
//
// Ownership: g is consumed. The removal phase strips every vertex out of it;
// the unwind phase puts them back, so on success g holds the same vertices
// and edges again, but neighbor order and vertex order are not preserved and
// on failure g is left partly reduced. Callers that need the original graph
// afterwards (validation, rendering) must pass a Clone.
//
// Implementation:
//   - Stage 1 (removal): while g is non-empty, remove the first vertex in
//     insertion order whose degree is at most MaxReducibleDegree and push
//     (vertex, neighbors) on an explicit stack. If no such vertex exists the
//     input is not planar and ErrNotPlanar is returned.
//   - Stage 2 (unwind): pop records in LIFO order. Each popped vertex is
//     colored against the graph reduced exactly as it was when the vertex
//     left, then restored into g so the next record sees its own reduced
//     graph.
//
// Coloring a vertex x with neighbor list N:
//   - |N| < 5, or |N| == 5 with repeated colors: lowest available color.
//   - |N| == 5, five distinct colors α..ε (in N order): if the α and γ
//     neighbors are joined in the α/γ subgraph, swap β↔δ on the β neighbor's
//     chain; otherwise swap α↔γ on the α neighbor's chain. Then take the
//     freed color. Because N is not the planar rotation in general, a swap
//     may leave five colors in place; every neighbor pair is then tried in
//     turn until one is found whose two-color chain does not join them.
//
// Complexity: O(V·(V+E)) time in the worst case (one Kempe BFS per vertex),
// O(V+E) extra memory.
//
// Determinism: fixed by g's insertion order and neighbor order.
func FiveColor(g *core.Graph, opts ...Option) (Coloring, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.stats != nil {
		*o.stats = Stats{}
	}

	stack := arraystack.New()
	for !g.Empty() {
		id, ok := g.FirstWithDegreeAtMost(MaxReducibleDegree)
		if !ok {
			return nil, fmt.Errorf("%w: %d vertices remain, none of degree ≤ %d",
				ErrNotPlanar, g.VertexCount(), MaxReducibleDegree)
		}
		nbrs, err := g.RemoveVertex(id)
		if err != nil {
			return nil, fmt.Errorf("coloring: remove %q: %w", id, err)
		}
		stack.Push(removal{id: id, nbrs: nbrs})
		if o.stats != nil {
			o.stats.Removed++
		}
	}
	klog.V(1).Infof("coloring: reduced %d vertices", stack.Size())

	col := make(Coloring, stack.Size())
	for !stack.Empty() {
		top, _ := stack.Pop()
		r := top.(removal)

		step, err := extend(g, col, r.id, r.nbrs)
		if err != nil {
			return nil, err
		}
		if err = g.RestoreVertex(r.id, r.nbrs); err != nil {
			return nil, fmt.Errorf("coloring: restore %q: %w", r.id, err)
		}
		record(&o, step)
	}

	return col, nil
}

func record(o *options, s Step) {
	klog.V(2).Infof("coloring: %s deg=%d case=%s color=%s", s.Vertex, len(s.Neighbors), s.Case, s.Color)
	if s.Case == CaseKempe {
		klog.V(3).Infof("coloring: %s swapped %s/%s on %d vertices fallback=%t blocked_by=%v",
			s.Vertex, s.Swap[0], s.Swap[1], len(s.Component), s.Fallback, s.Blocking)
	}
	if o.stats != nil {
		switch s.Case {
		case CaseLow:
			o.stats.Low++
		case CaseSpare:
			o.stats.Spare++
		case CaseKempe:
			o.stats.Kempe++
			o.stats.Swapped += len(s.Component)
			if s.Fallback {
				o.stats.Fallbacks++
			}
		}
	}
	if o.trace != nil {
		o.trace(s)
	}
}

// extend colors id, whose neighbors nbrs are all colored in col, against the
// reduced graph g (id itself absent). It may recolor other vertices through
// a Kempe interchange.
func extend(g *core.Graph, col Coloring, id string, nbrs []string) (Step, error) {
	step := Step{Vertex: id, Neighbors: nbrs}
	if _, done := col[id]; done {
		return step, fmt.Errorf("%w: %q", ErrAlreadyColored, id)
	}

	used, err := NeighborColors(nbrs, col)
	if err != nil {
		return step, fmt.Errorf("coloring: reinsert %q: %w", id, err)
	}

	switch {
	case len(nbrs) < MaxReducibleDegree:
		step.Case = CaseLow
	case used.Len() < NumColors:
		step.Case = CaseSpare
	default:
		step.Case = CaseKempe
		if used, err = kempe(g, col, nbrs, &step); err != nil {
			return step, fmt.Errorf("coloring: reinsert %q: %w", id, err)
		}
	}

	c, ok := Available(used).First()
	if !ok {
		return step, fmt.Errorf("%w: %q with neighbor colors %s", ErrNoAvailableColor, id, used)
	}
	col[id] = c
	step.Color = c

	return step, nil
}

// kempe resolves the five-distinct-colors case and returns the neighbor
// colors after the interchange.
func kempe(g *core.Graph, col Coloring, nbrs []string, step *Step) (Set, error) {
	for i, n := range nbrs[:NumColors] {
		step.Labels[i] = col[n]
	}
	alpha, beta, gamma, delta := nbrs[0], nbrs[1], nbrs[2], nbrs[3]

	ag := KempeSubgraph(g, col, col[alpha], col[gamma])
	joined, err := bfs.PathExists(ag, alpha, gamma)
	if err != nil {
		return 0, err
	}
	from, to := alpha, gamma
	if joined {
		from, to = beta, delta
		if step.Blocking, err = blockingPath(ag, alpha, gamma); err != nil {
			return 0, err
		}
	}
	chain, err := chainOf(g, col, from, to)
	if err != nil {
		return 0, err
	}
	if err = swap(col, chain, from, to, step); err != nil {
		return 0, err
	}

	used, err := NeighborColors(nbrs, col)
	if err != nil || used.Len() < NumColors {
		return used, err
	}

	// nbrs was not in rotation order and the chain also held the second
	// terminal. Some pair of neighbors must be separated.
	step.Fallback = true
	for i := 0; i < len(nbrs); i++ {
		for j := i + 1; j < len(nbrs); j++ {
			chain, err = chainOf(g, col, nbrs[i], nbrs[j])
			if err != nil {
				return 0, err
			}
			if containsID(chain, nbrs[j]) {
				continue
			}
			if err = swap(col, chain, nbrs[i], nbrs[j], step); err != nil {
				return 0, err
			}
			return NeighborColors(nbrs, col)
		}
	}

	return used, fmt.Errorf("%w: no Kempe chain separates the neighbors", ErrNotPlanar)
}

func blockingPath(sub *core.Graph, from, to string) ([]string, error) {
	tree, err := bfs.BFS(sub, from)
	if err != nil {
		return nil, err
	}
	return tree.PathTo(to)
}

// chainOf returns the Kempe chain through from in the subgraph colored like
// from or to.
func chainOf(g *core.Graph, col Coloring, from, to string) ([]string, error) {
	return bfs.ConnectedComponent(KempeSubgraph(g, col, col[from], col[to]), from)
}

func swap(col Coloring, chain []string, from, to string, step *Step) error {
	a, b := col[from], col[to]
	if err := SwapColors(chain, col, a, b); err != nil {
		return err
	}
	step.Swap = [2]Color{a, b}
	step.Component = chain

	return nil
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
