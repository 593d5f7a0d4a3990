package graphio

import (
	"regexp"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

const identPattern = `[A-Za-z0-9_.\-]+`

var identRE = regexp.MustCompile(`^` + identPattern + `$`)

// ValidID reports whether id can be written as a vertex in the line formats.
func ValidID(id string) bool { return identRE.MatchString(id) }

var lineLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: identPattern},
	{Name: "Punct", Pattern: `[:,\[\]]`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
})

// adjacencyLine is one `<id>:[<id>,...]` entry.
type adjacencyLine struct {
	Vertex    string   `parser:"@Ident \":\""`
	Neighbors []string `parser:"\"[\"? ( @Ident \",\"? )* \"]\"?"`
}

// colorLine is one `<id>: <color>` entry.
type colorLine struct {
	Vertex string `parser:"@Ident \":\""`
	Color  string `parser:"@Ident"`
}

var (
	adjacencyParser = participle.MustBuild[adjacencyLine](
		participle.Lexer(lineLexer),
		participle.Elide("Whitespace"),
	)
	colorParser = participle.MustBuild[colorLine](
		participle.Lexer(lineLexer),
		participle.Elide("Whitespace"),
	)
)
