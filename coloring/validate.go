package coloring

import (
	"fmt"

	"github.com/katalvlaran/fivecolor/core"
)

// Conflict is an edge whose endpoints share a color.
type Conflict struct {
	U, V  string
	Color Color
}

// IsProper reports whether no edge of g joins two equally colored vertices.
// A vertex missing from c makes the coloring not proper. Read-only; repeated
// calls on the same inputs return the same answer.
//
// Complexity: O(V + E).
func IsProper(g *core.Graph, c Coloring) bool {
	if g == nil {
		return false
	}
	for _, v := range g.Vertices() {
		if _, ok := c[v]; !ok {
			return false
		}
	}
	return len(Conflicts(g, c)) == 0
}

// Conflicts lists every improperly colored edge once, as (U, V) with U
// earlier than V in g's vertex order. Uncolored vertices are skipped.
func Conflicts(g *core.Graph, c Coloring) []Conflict {
	if g == nil {
		return nil
	}
	var out []Conflict
	seen := make(map[string]bool, g.VertexCount())
	for _, u := range g.Vertices() {
		seen[u] = true
		cu, ok := c[u]
		if !ok {
			continue
		}
		nbrs, err := g.Neighbors(u)
		if err != nil {
			continue
		}
		for _, v := range nbrs {
			if seen[v] {
				continue
			}
			if cv, ok := c[v]; ok && cv == cu {
				out = append(out, Conflict{U: u, V: v, Color: cu})
			}
		}
	}
	return out
}

// Verify is the strict post-condition check: c must color every vertex of
// g, use only palette colors, and be proper. It returns ErrIncomplete,
// ErrUnknownColor or ErrImproper respectively.
func Verify(g *core.Graph, c Coloring) error {
	if g == nil {
		return ErrGraphNil
	}
	for _, v := range g.Vertices() {
		col, ok := c[v]
		if !ok {
			return fmt.Errorf("%w: %q", ErrIncomplete, v)
		}
		if !col.Valid() {
			return fmt.Errorf("%w: %q is %s", ErrUnknownColor, v, col)
		}
	}
	if cs := Conflicts(g, c); len(cs) > 0 {
		return fmt.Errorf("%w: %d edges, first %s–%s both %s",
			ErrImproper, len(cs), cs[0].U, cs[0].V, cs[0].Color)
	}
	return nil
}
