package coloring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/fivecolor/coloring"
	"github.com/katalvlaran/fivecolor/core"
)

func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	_ = g.AddEdge("a", "b")
	_ = g.AddEdge("b", "c")
	_ = g.AddEdge("c", "a")
	return g
}

func TestValidator(t *testing.T) {
	g := triangle(t)
	good := coloring.Coloring{"a": coloring.Blue, "b": coloring.Red, "c": coloring.Green}
	bad := coloring.Coloring{"a": coloring.Blue, "b": coloring.Red, "c": coloring.Blue}
	partial := coloring.Coloring{"a": coloring.Blue, "b": coloring.Red}
	odd := coloring.Coloring{"a": coloring.Blue, "b": coloring.Red, "c": coloring.Color(11)}

	tests := []struct {
		name   string
		col    coloring.Coloring
		proper bool
		err    error
	}{
		{"proper", good, true, nil},
		{"shared color", bad, false, coloring.ErrImproper},
		{"missing vertex", partial, false, coloring.ErrIncomplete},
		{"outside palette", odd, true, coloring.ErrUnknownColor},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.proper, coloring.IsProper(g, tc.col))
			assert.Equal(t, coloring.IsProper(g, tc.col), coloring.IsProper(g, tc.col), "idempotent")
			err := coloring.Verify(g, tc.col)
			if tc.err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.err)
			}
		})
	}

	assert.Equal(t, []coloring.Conflict{{U: "a", V: "c", Color: coloring.Blue}}, coloring.Conflicts(g, bad))
	assert.False(t, coloring.IsProper(nil, good))
	assert.ErrorIs(t, coloring.Verify(nil, good), coloring.ErrGraphNil)
}
