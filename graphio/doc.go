// Package graphio provides two-way adapters between core.Graph / coloring
// values and the text formats around the colorer:
//   - .graphe adjacency files (read and write)
//   - coloring result files (read and write)
//   - YAML vertex layouts
//   - Graphviz DOT with pinned positions and fill colors
//
// Graph format:
//
//	4
//	A:[B,C,D]
//	B:[A,C]
//	C:[A,B,D]
//	D:[A,C]
//
// The first non-blank line is the vertex count. Each following non-blank
// line declares one vertex and its ordered neighbor list; brackets are
// optional and neighbors may be separated by commas or spaces. Vertex IDs
// are runs of letters, digits, '_', '.' and '-'.
//
// Every loader failure wraps ErrMalformed, and no graph is returned.
package graphio
