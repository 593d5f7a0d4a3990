package graphio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/fivecolor/core"
)

// Ext is the file extension of graph resources.
const Ext = ".graphe"

var (
	// ErrMalformed marks input that does not follow the line formats: a bad
	// count line, a count that disagrees with the entries, an unparseable
	// entry, or an inconsistent adjacency.
	ErrMalformed = errors.New("graphio: malformed input")
)

// LoadGraph reads dir/name.graphe.
func LoadGraph(dir, name string) (*core.Graph, error) {
	path := filepath.Join(dir, name+Ext)
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "graphio: open graph %q", name)
	}
	defer f.Close()

	g, err := readGraph(f, path)
	if err != nil {
		return nil, err
	}
	klog.V(1).Infof("graphio: loaded %s (%d vertices, %d edges)", path, g.VertexCount(), g.EdgeCount())
	return g, nil
}

// ReadGraph parses the .graphe format from r.
func ReadGraph(r io.Reader) (*core.Graph, error) {
	return readGraph(r, "")
}

func readGraph(r io.Reader, source string) (*core.Graph, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, errors.Wrapf(err, "graphio: read %s", source)
	}
	want, body, err := splitCount(lines)
	if err != nil {
		return nil, err
	}

	order := make([]string, 0, len(body))
	adj := make(map[string][]string, len(body))
	for _, ln := range body {
		entry, err := adjacencyParser.ParseString(source, ln.text)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformed, "line %d: %v", ln.no, err)
		}
		if _, dup := adj[entry.Vertex]; dup {
			return nil, errors.Wrapf(ErrMalformed, "line %d: vertex %q declared twice", ln.no, entry.Vertex)
		}
		order = append(order, entry.Vertex)
		adj[entry.Vertex] = entry.Neighbors
	}
	if len(order) != want {
		return nil, errors.Wrapf(ErrMalformed, "count line says %d vertices, found %d", want, len(order))
	}

	g, err := core.FromAdjacency(order, adj)
	if err != nil {
		return nil, errors.Wrap(ErrMalformed, err.Error())
	}
	return g, nil
}

// WriteGraph writes g in the .graphe format, vertices in insertion order.
func WriteGraph(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	ids := g.Vertices()
	fmt.Fprintln(bw, len(ids))
	for _, id := range ids {
		nbrs, err := g.Neighbors(id)
		if err != nil {
			return errors.Wrapf(err, "graphio: write %q", id)
		}
		fmt.Fprintf(bw, "%s:[%s]\n", id, strings.Join(nbrs, ","))
	}
	return errors.Wrap(bw.Flush(), "graphio: write graph")
}

type line struct {
	no   int
	text string
}

// maxLineBytes bounds one line; a hub of a large star easily passes the
// scanner's 64 KiB default.
var maxLineBytes = 64 << 20

func readLines(r io.Reader) ([]line, error) {
	var out []line
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(64*1024, maxLineBytes)), maxLineBytes)
	n := 1
	for ; sc.Scan(); n++ {
		if t := strings.TrimSpace(sc.Text()); t != "" {
			out = append(out, line{no: n, text: t})
		}
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, errors.Wrapf(ErrMalformed, "line %d exceeds %d bytes", n, maxLineBytes)
		}
		return nil, err
	}
	return out, nil
}

// splitCount parses the leading count line, which must be a bare decimal.
func splitCount(lines []line) (int, []line, error) {
	if len(lines) == 0 {
		return 0, nil, errors.Wrap(ErrMalformed, "empty input, expected a vertex count")
	}
	head := lines[0]
	if strings.Trim(head.text, "0123456789") != "" {
		return 0, nil, errors.Wrapf(ErrMalformed, "line %d: %q is not a vertex count", head.no, head.text)
	}
	n, err := strconv.Atoi(head.text)
	if err != nil {
		return 0, nil, errors.Wrapf(ErrMalformed, "line %d: %v", head.no, err)
	}
	return n, lines[1:], nil
}
