package graphio_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fivecolor/builder"
	"github.com/katalvlaran/fivecolor/graphio"
)

const square = `4
A:[B,D,C]
B:[A,C]
C:[B,D,A]
D:[C,A]
`

func TestReadGraph(t *testing.T) {
	g, err := graphio.ReadGraph(strings.NewReader(square))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())
	assert.Equal(t, 5, g.EdgeCount())
	nbrs, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "D", "C"}, nbrs, "neighbor order is kept")
}

func TestReadGraph_Variants(t *testing.T) {
	tests := []struct {
		name  string
		input string
		edges int
	}{
		{"no brackets", "2\nA:B\nB:A\n", 1},
		{"spaces", "3\n  v1 : [ v2 , v3 ]\nv2: [v1]\n\nv3:[v1]\n", 2},
		{"space separated", "3\nx:[y z]\ny:[x]\nz:[x]\n", 2},
		{"isolated", "2\nA:[]\nB:\n", 0},
		{"empty graph", "0\n", 0},
		{"crlf", "2\r\nA:[B]\r\nB:[A]\r\n", 1},
		{"grid ids", "2\n0_0:[0_1]\n0_1:[0_0]\n", 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := graphio.ReadGraph(strings.NewReader(tc.input))
			require.NoError(t, err)
			assert.Equal(t, tc.edges, g.EdgeCount())
		})
	}
}

// Malformed input is reported before anything else happens.
func TestReadGraph_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"no count", "A:[B]\nB:[A]\n"},
		{"signed count", "-2\nA:[B]\nB:[A]\n"},
		{"count too high", "3\nA:[B]\nB:[A]\n"},
		{"count too low", "1\nA:[B]\nB:[A]\n"},
		{"missing colon", "1\nA [B]\n"},
		{"junk", "1\nA:[B]]]x:\n"},
		{"duplicate entry", "2\nA:[B]\nA:[B]\n"},
		{"dangling neighbor", "1\nA:[Z]\n"},
		{"asymmetric", "2\nA:[B]\nB:[]\n"},
		{"self loop", "1\nA:[A]\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := graphio.ReadGraph(strings.NewReader(tc.input))
			assert.ErrorIs(t, err, graphio.ErrMalformed)
			assert.Nil(t, g)
		})
	}
}

func TestWriteGraph_RoundTrip(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.TriGrid(4, 5))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graphio.WriteGraph(&buf, g))
	back, err := graphio.ReadGraph(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.Vertices(), back.Vertices())
	assert.Equal(t, g.AdjacencyList(), back.AdjacencyList())
}

// A hub line far past 64 KiB still loads.
func TestReadGraph_LongLine(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Star(15000))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graphio.WriteGraph(&buf, g))
	require.Greater(t, buf.Len(), 64*1024)

	back, err := graphio.ReadGraph(&buf)
	require.NoError(t, err)
	assert.Equal(t, 15000, back.VertexCount())
	deg, err := back.Degree(builder.CenterVertexID)
	require.NoError(t, err)
	assert.Equal(t, 14999, deg)
}

func TestValidID(t *testing.T) {
	for _, id := range []string{"A", "0_1", "v.2", "x-y", "Center"} {
		assert.True(t, graphio.ValidID(id), id)
	}
	for _, id := range []string{"", "a b", "a:b", "a,b", "[a]", "é"} {
		assert.False(t, graphio.ValidID(id), id)
	}
}

func TestLoadGraph(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sq"+graphio.Ext), []byte(square), 0o644))

	g, err := graphio.LoadGraph(dir, "sq")
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())

	_, err = graphio.LoadGraph(dir, "missing")
	assert.True(t, os.IsNotExist(errorsCause(err)))
}
