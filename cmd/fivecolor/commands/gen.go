package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fivecolor/builder"
	"github.com/katalvlaran/fivecolor/graphio"
)

func newGenCmd(gf *globalFlags) *cobra.Command {
	var (
		seed int64
		ids  string
		name string
	)
	cmd := &cobra.Command{
		Use:   "gen <kind> <n>",
		Short: "Generate a planar test graph in .graphe format",
		Long: fmt.Sprintf(`Generate a graph and print it in .graphe format, or write it to
<res-dir>/<name>.graphe with --name.

Kinds: %s

n is the vertex count (the side length for grid and trigrid; ignored by
the platonic solids). complete with n >= 5 is not planar.`, strings.Join(builder.Kinds(), ", ")),
		Args:          usageArgs(cobra.ExactArgs(2)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return &UsageError{Err: fmt.Errorf("n must be an integer: %q", args[1]), Usage: cmd.UsageString()}
			}
			cons, err := builder.ByName(args[0], n)
			if err != nil {
				return err
			}

			var bopts []builder.BuilderOption
			if cmd.Flags().Changed("seed") {
				bopts = append(bopts, builder.WithSeed(seed))
			}
			switch {
			case ids == "" || ids == "default":
			case ids == "excel":
				bopts = append(bopts, builder.WithExcelColumnIDs())
			case strings.HasPrefix(ids, "symbol:"):
				prefix := strings.TrimPrefix(ids, "symbol:")
				if prefix != "" && !graphio.ValidID(prefix) {
					return &UsageError{
						Err:   fmt.Errorf("id prefix %q must use only letters, digits, '_', '.' or '-'", prefix),
						Usage: cmd.UsageString(),
					}
				}
				bopts = append(bopts, builder.WithSymbNumb(prefix))
			default:
				return &UsageError{Err: fmt.Errorf("unknown id scheme %q", ids), Usage: cmd.UsageString()}
			}

			g, err := builder.BuildGraph(bopts, cons)
			if err != nil {
				return err
			}
			if name == "" {
				return graphio.WriteGraph(cmd.OutOrStdout(), g)
			}

			cfg, err := gf.resolve(cmd)
			if err != nil {
				return err
			}
			path := filepath.Join(cfg.ResDir, name+graphio.Ext)
			if err = writeFile(path, func(f *os.File) error { return graphio.WriteGraph(f, g) }); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: %d vertices, %d edges\n", path, g.VertexCount(), g.EdgeCount())
			return nil
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for the apollonian face choice")
	cmd.Flags().StringVar(&ids, "ids", "default", "vertex ids: default, excel or symbol:<prefix>")
	cmd.Flags().StringVar(&name, "name", "", "write <res-dir>/<name>.graphe instead of stdout")
	return cmd
}
