package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fivecolor/builder"
	"github.com/katalvlaran/fivecolor/coloring"
	"github.com/katalvlaran/fivecolor/core"
	"github.com/katalvlaran/fivecolor/store"
)

func build(t *testing.T, kind string, n int) *core.Graph {
	t.Helper()
	cons, err := builder.ByName(kind, n)
	require.NoError(t, err)
	g, err := builder.BuildGraph(nil, cons)
	require.NoError(t, err)
	return g
}

func stores(t *testing.T) map[string]store.Store {
	t.Helper()
	b, err := store.NewBadger(store.BadgerOptions{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })

	return map[string]store.Store{
		"memory": store.NewMemory(),
		"badger": b,
	}
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	g := build(t, "wheel", 6)
	col, err := coloring.FiveColor(g.Clone())
	require.NoError(t, err)
	d := store.DigestOf(g)

	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Get(ctx, d)
			assert.ErrorIs(t, err, store.ErrNotFound)

			rec := &store.Record{
				Coloring: col,
				Stats:    coloring.Stats{Removed: 6, Low: 6},
				RunID:    "run-1",
				Created:  time.Unix(1700000000, 0).UTC(),
			}
			require.NoError(t, s.Put(ctx, d, rec))

			got, err := s.Get(ctx, d)
			require.NoError(t, err)
			assert.Equal(t, col, got.Coloring)
			assert.Equal(t, rec.Stats, got.Stats)
			assert.Equal(t, "run-1", got.RunID)
			assert.True(t, rec.Created.Equal(got.Created))
			assert.NoError(t, coloring.Verify(g, got.Coloring))

			require.NoError(t, s.Delete(ctx, d))
			_, err = s.Get(ctx, d)
			assert.ErrorIs(t, err, store.ErrNotFound)
			assert.NoError(t, s.Delete(ctx, d))
		})
	}
}

func TestStore_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			rec := &store.Record{Coloring: coloring.Coloring{"A": coloring.Blue}}
			require.NoError(t, s.Put(ctx, 1, rec))
			rec.Coloring["A"] = coloring.Red

			got, err := s.Get(ctx, 1)
			require.NoError(t, err)
			assert.Equal(t, coloring.Blue, got.Coloring["A"])
		})
	}
}

func TestMemory_Closed(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()
	require.NoError(t, m.Close())
	_, err := m.Get(ctx, 1)
	assert.ErrorIs(t, err, store.ErrClosed)
	assert.ErrorIs(t, m.Put(ctx, 1, &store.Record{}), store.ErrClosed)
	assert.ErrorIs(t, m.Delete(ctx, 1), store.ErrClosed)
}

func TestNewBadger_RequiresDir(t *testing.T) {
	_, err := store.NewBadger(store.BadgerOptions{})
	assert.Error(t, err)
}

func TestBadger_OnDisk(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	rec := &store.Record{Coloring: coloring.Coloring{"A": coloring.Green, "B": coloring.Black}}

	b, err := store.NewBadger(store.BadgerOptions{Dir: dir})
	require.NoError(t, err)
	require.NoError(t, b.Put(ctx, 42, rec))
	require.NoError(t, b.Close())

	b, err = store.NewBadger(store.BadgerOptions{Dir: dir})
	require.NoError(t, err)
	defer b.Close()
	got, err := b.Get(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, rec.Coloring, got.Coloring)
}

func TestDigestOf_OrderIndependent(t *testing.T) {
	g1, err := core.FromAdjacency([]string{"A", "B", "C"}, map[string][]string{
		"A": {"B", "C"}, "B": {"A", "C"}, "C": {"A", "B"},
	})
	require.NoError(t, err)
	g2, err := core.FromAdjacency([]string{"C", "A", "B"}, map[string][]string{
		"C": {"B", "A"}, "A": {"C", "B"}, "B": {"C", "A"},
	})
	require.NoError(t, err)

	assert.Equal(t, store.DigestOf(g1), store.DigestOf(g2))
}

func TestDigestOf_Sensitive(t *testing.T) {
	path := build(t, "path", 4)
	cycle := build(t, "cycle", 4)
	assert.NotEqual(t, store.DigestOf(path), store.DigestOf(cycle))

	iso := core.NewGraph()
	require.NoError(t, iso.AddVertex("A"))
	require.NoError(t, iso.AddVertex("B"))
	edge := core.NewGraph()
	require.NoError(t, edge.AddEdge("A", "B"))
	assert.NotEqual(t, store.DigestOf(iso), store.DigestOf(edge))
}

func TestDigest_String(t *testing.T) {
	d := store.Digest(0xabc)
	assert.Equal(t, "0000000000000abc", d.String())
	back, err := store.ParseDigest(d.String())
	require.NoError(t, err)
	assert.Equal(t, d, back)
}
