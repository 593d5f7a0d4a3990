package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fivecolor/coloring"
	"github.com/katalvlaran/fivecolor/graphio"
)

func newCheckCmd(gf *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check <graph> <coloring-file>",
		Short: "Validate an existing coloring against a graph",
		Long: `Validate a coloring file (as written by fivecolor or --out) against
<res-dir>/<graph>.graphe. Every vertex must be colored, no extra vertices
may appear, and no edge may join two vertices of the same color.`,
		Args:          usageArgs(cobra.ExactArgs(2)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := gf.resolve(cmd)
			if err != nil {
				return err
			}
			g, err := graphio.LoadGraph(cfg.ResDir, args[0])
			if err != nil {
				return err
			}
			f, err := os.Open(args[1])
			if err != nil {
				return err
			}
			defer f.Close()
			col, order, err := graphio.ReadColoring(f)
			if err != nil {
				return err
			}

			for _, id := range order {
				if !g.HasVertex(id) {
					return fmt.Errorf("%w: vertex %q is not in %s", ErrInvalidColoring, id, args[0])
				}
			}
			out := cmd.OutOrStdout()
			if err = coloring.Verify(g, col); err != nil {
				for _, c := range coloring.Conflicts(g, col) {
					fmt.Fprintf(out, "conflict: %s - %s both %s\n", c.U, c.V, c.Color)
				}
				return fmt.Errorf("%w: %v", ErrInvalidColoring, err)
			}
			fmt.Fprintf(out, "ok: %d vertices, %d colors\n", g.VertexCount(), col.Used().Len())
			return nil
		},
	}
}
