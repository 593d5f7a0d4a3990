// Package commands implements the fivecolor command tree.
package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/fivecolor/coloring"
	"github.com/katalvlaran/fivecolor/core"
	"github.com/katalvlaran/fivecolor/graphio"
	"github.com/katalvlaran/fivecolor/render"
	"github.com/katalvlaran/fivecolor/store"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	resDir     string
	format     string
	cacheDir   string
}

// colorFlags only apply to the root coloring run.
type colorFlags struct {
	out    string
	dot    string
	render string
	layout string
	radius float64
}

// NewRootCmd builds the command tree. goFlags, if non-nil, is merged into
// the persistent flags (klog registers -v there).
func NewRootCmd(goFlags *flag.FlagSet) *cobra.Command {
	gf := &globalFlags{}
	cf := &colorFlags{}

	root := &cobra.Command{
		Use:   "fivecolor [flags] <graph>",
		Short: "Color a planar graph with at most five colors",
		Long: `fivecolor - five-color a planar graph.

The graph is read from <res-dir>/<graph>.graphe: a vertex count line, then
one "<vertex>: [<neighbor>, ...]" line per vertex. The coloring uses blue,
red, green, white and black and is printed as a vertex count followed by
one "<vertex>: <color>" line per vertex.

A non-planar input, or a result that fails validation, ends with
"no coloring found" and exit status 2.

Examples:
  fivecolor map
  fivecolor --res-dir ./graphs --dot map.dot --render map.png map
  fivecolor --format table --cache-dir ~/.cache/fivecolor map
  fivecolor check map map.coloring
  fivecolor gen apollonian 40 > res/apollo.graphe`,
		Args:          usageArgs(cobra.ExactArgs(1)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := gf.resolve(cmd)
			if err != nil {
				return err
			}
			return runColor(cmd, cfg, cf, args[0])
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&gf.configPath, "config", "", "config file (default <config dir>/fivecolor/config.yaml)")
	pf.StringVar(&gf.resDir, "res-dir", DefaultResDir, "directory holding <graph>.graphe files")
	pf.StringVar(&gf.format, "format", FormatText, "output format: text, yaml, json or table")
	pf.StringVar(&gf.cacheDir, "cache-dir", "", "directory for the coloring cache (disabled when empty)")
	if goFlags != nil {
		pf.AddGoFlagSet(goFlags)
		goFlags.VisitAll(func(f *flag.Flag) {
			if f.Name != "v" {
				_ = pf.MarkHidden(f.Name)
			}
		})
	}

	fl := root.Flags()
	fl.StringVar(&cf.out, "out", "", "also write the coloring to this file")
	fl.StringVar(&cf.dot, "dot", "", "write a Graphviz DOT file")
	fl.StringVar(&cf.render, "render", "", "render an image to this path (needs Graphviz)")
	fl.StringVar(&cf.layout, "layout", "", "YAML vertex positions for --dot and --render")
	fl.Float64Var(&cf.radius, "radius", DefaultRadius, "circle radius for vertices missing from the layout")

	root.AddCommand(newCheckCmd(gf), newGenCmd(gf), newVersionCmd())
	return root
}

// Execute runs the command tree with os.Args.
func Execute(goFlags *flag.FlagSet) error {
	return NewRootCmd(goFlags).ExecuteContext(context.Background())
}

func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return &UsageError{Err: err, Usage: cmd.UsageString()}
		}
		return nil
	}
}

// resolve loads the config file and lays changed flags over it.
func (gf *globalFlags) resolve(cmd *cobra.Command) (*Config, error) {
	cfg, err := LoadConfig(gf.configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("res-dir") || cfg.ResDir == "" {
		cfg.ResDir = gf.resDir
	}
	if flags.Changed("format") || cfg.Format == "" {
		cfg.Format = gf.format
	}
	if flags.Changed("cache-dir") {
		cfg.CacheDir = gf.cacheDir
	}
	switch cfg.Format {
	case FormatText, FormatYAML, FormatJSON, FormatTable:
	default:
		return nil, &UsageError{
			Err:   fmt.Errorf("unsupported output format: %s", cfg.Format),
			Usage: cmd.UsageString(),
		}
	}
	if cfg.Path() != "" {
		klog.V(1).Infof("config: loaded %s", cfg.Path())
	}
	return cfg, nil
}

func runColor(cmd *cobra.Command, cfg *Config, cf *colorFlags, name string) error {
	ctx := cmd.Context()
	runID := uuid.NewString()
	start := time.Now()

	g, err := graphio.LoadGraph(cfg.ResDir, name)
	if err != nil {
		return err
	}
	// FiveColor consumes its graph; validation and output use the original.
	orig := g.Clone()
	order := orig.Vertices()
	digest := store.DigestOf(orig)
	klog.V(1).Infof("[%s] %s: %d vertices, %d edges, digest %s",
		runID, name, orig.VertexCount(), orig.EdgeCount(), digest)

	col, stats, cached, err := colorCached(ctx, cfg, g, orig, digest, runID)
	if err != nil {
		return err
	}
	if err = coloring.Verify(orig, col); err != nil {
		klog.Errorf("[%s] %s: %v", runID, name, err)
		return fmt.Errorf("%w: %v", ErrNoColoring, err)
	}
	klog.V(1).Infof("[%s] %s: %d colors in %s (cached=%t)",
		runID, name, col.Used().Len(), time.Since(start), cached)

	res := newResult(order, col)
	res.RunID = runID
	res.Graph = name
	res.Edges = orig.EdgeCount()
	res.Cached = cached
	res.Digest = digest.String()
	res.Stats = stats

	if err = writeResult(cmd.OutOrStdout(), cfg.Format, res); err != nil {
		return err
	}
	if cf.out != "" {
		if err = writeFile(cf.out, func(f *os.File) error {
			return graphio.WriteColoring(f, order, col)
		}); err != nil {
			return err
		}
	}
	if cf.dot != "" || cf.render != "" {
		return writePicture(ctx, cfg, cf, orig, col)
	}
	return nil
}

// colorCached returns a cached coloring when one exists and still verifies
// against orig, and computes (and caches) a fresh one otherwise.
func colorCached(ctx context.Context, cfg *Config, g, orig *core.Graph, d store.Digest, runID string) (coloring.Coloring, coloring.Stats, bool, error) {
	var stats coloring.Stats

	var st store.Store
	if cfg.CacheDir != "" {
		b, err := store.NewBadger(store.BadgerOptions{Dir: cfg.CacheDir})
		if err != nil {
			return nil, stats, false, err
		}
		defer b.Close()
		st = b

		rec, err := st.Get(ctx, d)
		switch {
		case err == nil && coloring.Verify(orig, rec.Coloring) == nil:
			klog.V(1).Infof("[%s] cache hit %s from run %s", runID, d, rec.RunID)
			return rec.Coloring, rec.Stats, true, nil
		case err == nil:
			klog.Warningf("[%s] cached coloring for %s does not verify, recomputing", runID, d)
		case !errors.Is(err, store.ErrNotFound):
			klog.Warningf("[%s] cache read %s: %v", runID, d, err)
		}
	}

	col, err := coloring.FiveColor(g, coloring.WithStats(&stats), coloring.WithTrace(func(s coloring.Step) {
		if s.Case == coloring.CaseKempe {
			klog.V(2).Infof("[%s] kempe at %s: %s/%s over %d vertices", runID, s.Vertex, s.Swap[0], s.Swap[1], len(s.Component))
		}
	}))
	if err != nil {
		return nil, stats, false, fmt.Errorf("%w: %v", ErrNoColoring, err)
	}

	if st != nil && coloring.Verify(orig, col) == nil {
		rec := &store.Record{Coloring: col, Stats: stats, RunID: runID, Created: time.Now().UTC()}
		if err := st.Put(ctx, d, rec); err != nil {
			klog.Warningf("[%s] cache write %s: %v", runID, d, err)
		}
	}
	return col, stats, false, nil
}

func writePicture(ctx context.Context, cfg *Config, cf *colorFlags, g *core.Graph, col coloring.Coloring) error {
	var l graphio.Layout
	if cf.layout != "" {
		var err error
		if l, err = graphio.LoadLayout(cf.layout); err != nil {
			return err
		}
	}
	radius := cf.radius
	if radius == DefaultRadius && cfg.Radius > 0 {
		radius = cfg.Radius
	}
	l = l.Fill(g.Vertices(), radius)

	dotPath := cf.dot
	if dotPath == "" {
		tmp, err := os.CreateTemp("", "fivecolor-*.dot")
		if err != nil {
			return err
		}
		dotPath = tmp.Name()
		tmp.Close()
		defer os.Remove(dotPath)
	}
	if err := writeFile(dotPath, func(f *os.File) error {
		return graphio.WriteDOT(f, g, col, l)
	}); err != nil {
		return err
	}
	if cf.render == "" {
		return nil
	}

	r := render.Renderer{Command: cfg.Renderer.Command, Format: cfg.Renderer.Format}
	if ext := strings.TrimPrefix(filepath.Ext(cf.render), "."); ext != "" {
		r.Format = ext
	}
	return r.Render(ctx, dotPath, cf.render)
}

func writeFile(path string, fn func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err = fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
