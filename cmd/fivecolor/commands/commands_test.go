package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fivecolor/builder"
	"github.com/katalvlaran/fivecolor/coloring"
	"github.com/katalvlaran/fivecolor/graphio"
)

// setupRes points the config lookup at an empty dir and returns a resource
// dir with a few graphs in it.
func setupRes(t *testing.T) string {
	t.Helper()
	t.Setenv("FIVECOLOR_CONFIG_DIR", t.TempDir())

	res := t.TempDir()
	writeFixture(t, res, "wheel", "wheel", 6)
	writeFixture(t, res, "ico", "icosahedron", 0)
	writeFixture(t, res, "k6", "complete", 6)
	require.NoError(t, os.WriteFile(filepath.Join(res, "bad"+graphio.Ext), []byte("3\nA:[B]\nB:[A]\n"), 0o644))
	return res
}

func writeFixture(t *testing.T, dir, name, kind string, n int) {
	t.Helper()
	cons, err := builder.ByName(kind, n)
	require.NoError(t, err)
	g, err := builder.BuildGraph(nil, cons)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, graphio.WriteGraph(&buf, g))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+graphio.Ext), buf.Bytes(), 0o644))
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd(nil)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRoot_NoArgs(t *testing.T) {
	setupRes(t)
	out, err := runCmd(t)
	require.Error(t, err)
	u, ok := AsUsage(err)
	require.True(t, ok)
	assert.Contains(t, u.Usage, "fivecolor [flags] <graph>")
	assert.Equal(t, ExitUsage, ExitCode(err))
	assert.Empty(t, out)
}

func TestRoot_ColorsText(t *testing.T) {
	res := setupRes(t)
	out, err := runCmd(t, "--res-dir", res, "ico")
	require.NoError(t, err)

	col, order, err := graphio.ReadColoring(strings.NewReader(out))
	require.NoError(t, err)
	assert.Len(t, order, 12)

	g, err := graphio.LoadGraph(res, "ico")
	require.NoError(t, err)
	assert.NoError(t, coloring.Verify(g, col))
	assert.Equal(t, g.Vertices(), order, "output follows input order")
}

func TestRoot_Malformed(t *testing.T) {
	res := setupRes(t)
	_, err := runCmd(t, "--res-dir", res, "bad")
	assert.ErrorIs(t, err, graphio.ErrMalformed)
	assert.Equal(t, ExitError, ExitCode(err))
}

func TestRoot_MissingGraph(t *testing.T) {
	res := setupRes(t)
	_, err := runCmd(t, "--res-dir", res, "nope")
	assert.Error(t, err)
	assert.Equal(t, ExitError, ExitCode(err))
}

func TestRoot_NotPlanar(t *testing.T) {
	res := setupRes(t)
	_, err := runCmd(t, "--res-dir", res, "k6")
	assert.ErrorIs(t, err, ErrNoColoring)
	assert.ErrorContains(t, err, "no coloring found")
	assert.Equal(t, ExitNoColoring, ExitCode(err))
}

func TestRoot_Formats(t *testing.T) {
	res := setupRes(t)

	out, err := runCmd(t, "--res-dir", res, "--format", "json", "wheel")
	require.NoError(t, err)
	var r Result
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "wheel", r.Graph)
	assert.Equal(t, 6, r.Vertices)
	assert.Equal(t, 10, r.Edges)
	assert.Len(t, r.Coloring, 6)
	assert.False(t, r.Cached)
	assert.Equal(t, 6, r.Stats.Removed)
	assert.Contains(t, out, `"removed": 6`)
	assert.NotContains(t, out, `"Removed"`)

	out, err = runCmd(t, "--res-dir", res, "--format", "yaml", "wheel")
	require.NoError(t, err)
	assert.Contains(t, out, "graph: wheel")
	assert.Contains(t, out, "removed: 6")

	out, err = runCmd(t, "--res-dir", res, "--format", "table", "wheel")
	require.NoError(t, err)
	assert.Contains(t, out, "VERTEX")
	assert.Contains(t, out, "Center")

	_, err = runCmd(t, "--res-dir", res, "--format", "xml", "wheel")
	assert.Equal(t, ExitUsage, ExitCode(err))
}

func TestRoot_Cache(t *testing.T) {
	res := setupRes(t)
	cache := t.TempDir()

	var first, second Result
	out, err := runCmd(t, "--res-dir", res, "--cache-dir", cache, "--format", "json", "ico")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &first))
	assert.False(t, first.Cached)

	out, err = runCmd(t, "--res-dir", res, "--cache-dir", cache, "--format", "json", "ico")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &second))
	assert.True(t, second.Cached)
	assert.Equal(t, first.Digest, second.Digest)
	assert.Equal(t, first.Coloring, second.Coloring)
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestRoot_OutAndDot(t *testing.T) {
	res := setupRes(t)
	dir := t.TempDir()
	outPath := filepath.Join(dir, "wheel.coloring")
	dotPath := filepath.Join(dir, "wheel.dot")

	_, err := runCmd(t, "--res-dir", res, "--out", outPath, "--dot", dotPath, "wheel")
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "6\n"))

	dot, err := os.ReadFile(dotPath)
	require.NoError(t, err)
	assert.Contains(t, string(dot), "graph fivecolor {")
	assert.Contains(t, string(dot), `"Center"`)
}

func TestRoot_Config(t *testing.T) {
	res := setupRes(t)
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("res_dir: "+res+"\nformat: yaml\n"), 0o644))

	out, err := runCmd(t, "--config", cfgPath, "wheel")
	require.NoError(t, err)
	assert.Contains(t, out, "graph: wheel")

	out, err = runCmd(t, "--config", cfgPath, "--format", "text", "wheel")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "6\n"), "flag overrides config")

	_, err = runCmd(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "wheel")
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	res := setupRes(t)
	dir := t.TempDir()

	good := filepath.Join(dir, "good")
	_, err := runCmd(t, "--res-dir", res, "--out", good, "wheel")
	require.NoError(t, err)
	out, err := runCmd(t, "check", "--res-dir", res, "wheel", good)
	require.NoError(t, err)
	assert.Contains(t, out, "ok: 6 vertices")

	bad := filepath.Join(dir, "bad")
	require.NoError(t, os.WriteFile(bad, []byte("6\nCenter: blue\n0: blue\n1: red\n2: green\n3: red\n4: green\n"), 0o644))
	out, err = runCmd(t, "check", "--res-dir", res, "wheel", bad)
	assert.ErrorIs(t, err, ErrInvalidColoring)
	assert.Equal(t, ExitNoColoring, ExitCode(err))
	assert.Contains(t, out, "conflict: Center - 0 both blue")

	extra := filepath.Join(dir, "extra")
	require.NoError(t, os.WriteFile(extra, []byte("1\nZ: blue\n"), 0o644))
	_, err = runCmd(t, "check", "--res-dir", res, "wheel", extra)
	assert.ErrorIs(t, err, ErrInvalidColoring)

	_, err = runCmd(t, "check", "wheel")
	assert.Equal(t, ExitUsage, ExitCode(err))
}

func TestGen(t *testing.T) {
	res := setupRes(t)

	out, err := runCmd(t, "gen", "apollonian", "30", "--seed", "7")
	require.NoError(t, err)
	g, err := graphio.ReadGraph(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 30, g.VertexCount())
	assert.Equal(t, 3*30-6, g.EdgeCount())

	out, err = runCmd(t, "gen", "--res-dir", res, "--name", "grid", "grid", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "16 vertices")
	_, err = runCmd(t, "--res-dir", res, "grid")
	assert.NoError(t, err)

	out, err = runCmd(t, "gen", "--ids", "symbol:v", "path", "3")
	require.NoError(t, err)
	_, err = graphio.ReadGraph(strings.NewReader(out))
	require.NoError(t, err)

	_, err = runCmd(t, "gen", "--ids", "symbol:a b", "path", "3")
	assert.Equal(t, ExitUsage, ExitCode(err))
	_, err = runCmd(t, "gen", "--ids", "symbol:a:b", "path", "3")
	assert.Equal(t, ExitUsage, ExitCode(err))

	_, err = runCmd(t, "gen", "moebius", "4")
	assert.Error(t, err)
	_, err = runCmd(t, "gen", "cycle", "x")
	assert.Equal(t, ExitUsage, ExitCode(err))
}

func TestVersion(t *testing.T) {
	setupRes(t)
	out, err := runCmd(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "fivecolor dev")
}
