package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/goccy/go-yaml"

	"github.com/katalvlaran/fivecolor/coloring"
	"github.com/katalvlaran/fivecolor/graphio"
)

// Output formats.
const (
	FormatText  = "text"
	FormatYAML  = "yaml"
	FormatJSON  = "json"
	FormatTable = "table"
)

// Assignment is one vertex and its color name.
type Assignment struct {
	Vertex string `json:"vertex" yaml:"vertex"`
	Color  string `json:"color" yaml:"color"`
}

// Result is what a coloring run reports in the structured formats.
type Result struct {
	RunID    string         `json:"run_id" yaml:"run_id"`
	Graph    string         `json:"graph" yaml:"graph"`
	Vertices int            `json:"vertices" yaml:"vertices"`
	Edges    int            `json:"edges" yaml:"edges"`
	Colors   int            `json:"colors" yaml:"colors"`
	Cached   bool           `json:"cached" yaml:"cached"`
	Digest   string         `json:"digest" yaml:"digest"`
	Stats    coloring.Stats `json:"stats" yaml:"stats"`
	Coloring []Assignment   `json:"coloring" yaml:"coloring"`

	order []string
	col   coloring.Coloring
}

func newResult(order []string, col coloring.Coloring) *Result {
	r := &Result{order: order, col: col, Vertices: len(order), Colors: col.Used().Len()}
	r.Coloring = make([]Assignment, 0, len(order))
	for _, id := range order {
		r.Coloring = append(r.Coloring, Assignment{Vertex: id, Color: col[id].String()})
	}
	return r
}

func writeResult(w io.Writer, format string, r *Result) error {
	switch format {
	case FormatText, "":
		return graphio.WriteColoring(w, r.order, r.col)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		data, err := yaml.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
		_, err = w.Write(data)
		return err
	case FormatTable:
		_, err := fmt.Fprintln(w, renderTable(r))
		return err
	}
	return fmt.Errorf("unsupported output format: %s", format)
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681"))
)

func swatch(c coloring.Color) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("●")
}

func renderTable(r *Result) string {
	rows := make([][]string, 0, len(r.order))
	for _, id := range r.order {
		c := r.col[id]
		rows = append(rows, []string{id, swatch(c) + " " + c.String()})
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Headers("VERTEX", "COLOR").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	counts := r.col.Counts()
	used := make([]coloring.Color, 0, len(counts))
	for c := range counts {
		used = append(used, c)
	}
	sort.Slice(used, func(i, j int) bool { return used[i] < used[j] })
	summary := fmt.Sprintf("%s: %d vertices, %d edges, %d colors", r.Graph, r.Vertices, r.Edges, r.Colors)
	for _, c := range used {
		summary += fmt.Sprintf("  %s %s×%d", swatch(c), c, counts[c])
	}
	if r.Cached {
		summary += dimStyle.Render("  (cached)")
	}
	return lipgloss.JoinVertical(lipgloss.Left, t.Render(), summary)
}
