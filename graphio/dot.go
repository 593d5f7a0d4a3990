package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/katalvlaran/fivecolor/coloring"
	"github.com/katalvlaran/fivecolor/core"
)

// WriteDOT emits g as an undirected Graphviz graph. Vertices carry the fill
// color from col (gray if absent) and, when l has a position for them, a
// pinned pos attribute for neato. Each edge is written once, from the
// endpoint that comes first in g's vertex order.
func WriteDOT(w io.Writer, g *core.Graph, col coloring.Coloring, l Layout) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "graph fivecolor {")
	fmt.Fprintln(bw, `  node [shape=circle, style=filled, fontname="Helvetica"];`)

	ids := g.Vertices()
	for _, id := range ids {
		fill, font := "#808080", "black"
		if c, ok := col[id]; ok {
			fill = c.Hex()
			if c == coloring.Black || c == coloring.Blue {
				font = "white"
			}
		}
		fmt.Fprintf(bw, "  %s [fillcolor=%q, fontcolor=%s", strconv.Quote(id), fill, font)
		if p, ok := l[id]; ok {
			fmt.Fprintf(bw, ", pos=\"%g,%g!\"", p[0], p[1])
		}
		fmt.Fprintln(bw, "];")
	}

	seen := make(map[string]bool, len(ids))
	for _, u := range ids {
		seen[u] = true
		nbrs, err := g.Neighbors(u)
		if err != nil {
			return errors.Wrapf(err, "graphio: dot %q", u)
		}
		for _, v := range nbrs {
			if !seen[v] {
				fmt.Fprintf(bw, "  %s -- %s;\n", strconv.Quote(u), strconv.Quote(v))
			}
		}
	}
	fmt.Fprintln(bw, "}")

	return errors.Wrap(bw.Flush(), "graphio: write dot")
}
