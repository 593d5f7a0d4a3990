package bfs_test

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fivecolor/bfs"
	"github.com/katalvlaran/fivecolor/core"
)

// chain builds v0—v1—…—vn.
func chain(n int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1))
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := core.NewGraph()
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
}

// TestCycleAndDepths covers a simple cycle and checks depths and order.
func TestCycleAndDepths(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "C")
	_ = g.AddEdge("C", "D")
	_ = g.AddEdge("D", "A")

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}, res.Depth)

	path, err := res.PathTo("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, path)
}

// TestBFS_Disconnected ensures BFS only explores the component of the start vertex.
func TestBFS_Disconnected(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge("X", "Y")
	_ = g.AddEdge("P", "Q")

	resX, _ := bfs.BFS(g, "X")
	if !reflect.DeepEqual(resX.Order, []string{"X", "Y"}) {
		t.Errorf("From X: got %v; want [X Y]", resX.Order)
	}
	_, err := resX.PathTo("P")
	assert.ErrorIs(t, err, bfs.ErrUnreached)

	path, err := resX.PathTo("X")
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, path)
}

// TestBFS_Hooks asserts that hooks fire in the expected sequence.
func TestBFS_Hooks(t *testing.T) {
	g := chain(2)
	var enq, vis []string
	_, err := bfs.BFS(g, "v0",
		bfs.WithOnEnqueue(func(id string, d int) { enq = append(enq, id+"@"+strconv.Itoa(d)) }),
		bfs.WithOnVisit(func(id string, d int) error { vis = append(vis, id+"@"+strconv.Itoa(d)); return nil }),
	)
	require.NoError(t, err)
	want := []string{"v0@0", "v1@1", "v2@2"}
	assert.Equal(t, want, enq)
	assert.Equal(t, want, vis)

	boom := errors.New("boom")
	_, err = bfs.BFS(g, "v0", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "v1" {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
}

func TestPathExists(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "C")
	_ = g.AddEdge("X", "Y")
	_ = g.AddVertex("Z")

	tests := []struct {
		name          string
		start, target string
		want          bool
	}{
		{"self", "A", "A", true},
		{"two hops", "A", "C", true},
		{"reverse", "C", "A", true},
		{"other component", "A", "Y", false},
		{"isolated target", "A", "Z", false},
		{"target outside view", "A", "nope", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := bfs.PathExists(g, tc.start, tc.target)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := bfs.PathExists(g, "nope", "A")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
}

// TestPathExists_StopsAtTarget checks the search ends when the target is dequeued.
func TestPathExists_StopsAtTarget(t *testing.T) {
	g := chain(10)
	visited := 0
	ok, err := bfs.PathExists(g, "v0", "v3", bfs.WithOnVisit(func(string, int) error {
		visited++
		return nil
	}))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 4, visited)
}

func TestConnectedComponent(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("A", "C")
	_ = g.AddEdge("C", "D")
	_ = g.AddEdge("X", "Y")
	_ = g.AddVertex("Z")

	comp, err := bfs.ConnectedComponent(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, comp)

	comp, err = bfs.ConnectedComponent(g, "Z")
	require.NoError(t, err)
	assert.Equal(t, []string{"Z"}, comp)

	_, err = bfs.ConnectedComponent(g, "nope")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
}

// TestTraversal_OverInducedView runs both primitives over a filtered view and
// checks the source graph is untouched.
func TestTraversal_OverInducedView(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "C")
	_ = g.AddEdge("A", "D")
	_ = g.AddEdge("D", "C")

	sub := core.InducedSubgraph(g, func(id string) bool { return id != "B" })
	ok, err := bfs.PathExists(sub, "A", "C")
	require.NoError(t, err)
	assert.True(t, ok)

	sub = core.InducedSubgraph(g, func(id string) bool { return id == "A" || id == "C" })
	ok, err = bfs.PathExists(sub, "A", "C")
	require.NoError(t, err)
	assert.False(t, ok)
	comp, err := bfs.ConnectedComponent(sub, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, comp)

	assert.Equal(t, 4, g.EdgeCount())
}
