package graphio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/katalvlaran/fivecolor/coloring"
)

// WriteColoring writes the count line then `<id>: <color>` for each id in
// order. Every id must be colored.
func WriteColoring(w io.Writer, order []string, col coloring.Coloring) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, len(order))
	for _, id := range order {
		c, ok := col[id]
		if !ok {
			return errors.Wrapf(coloring.ErrIncomplete, "graphio: vertex %q", id)
		}
		fmt.Fprintf(bw, "%s: %s\n", id, c)
	}
	return errors.Wrap(bw.Flush(), "graphio: write coloring")
}

// ReadColoring parses a file produced by WriteColoring. It also returns the
// vertex order of the file.
func ReadColoring(r io.Reader) (coloring.Coloring, []string, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, nil, errors.Wrap(err, "graphio: read coloring")
	}
	want, body, err := splitCount(lines)
	if err != nil {
		return nil, nil, err
	}

	col := make(coloring.Coloring, len(body))
	order := make([]string, 0, len(body))
	for _, ln := range body {
		entry, err := colorParser.ParseString("", ln.text)
		if err != nil {
			return nil, nil, errors.Wrapf(ErrMalformed, "line %d: %v", ln.no, err)
		}
		if _, dup := col[entry.Vertex]; dup {
			return nil, nil, errors.Wrapf(ErrMalformed, "line %d: vertex %q listed twice", ln.no, entry.Vertex)
		}
		c, err := coloring.ParseColor(entry.Color)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "line %d", ln.no)
		}
		col[entry.Vertex] = c
		order = append(order, entry.Vertex)
	}
	if len(order) != want {
		return nil, nil, errors.Wrapf(ErrMalformed, "count line says %d vertices, found %d", want, len(order))
	}
	return col, order, nil
}
