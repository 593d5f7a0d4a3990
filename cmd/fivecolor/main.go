// Command fivecolor colors a planar graph with at most five colors.
//
// Usage:
//
//	fivecolor [flags] <graph>
//	fivecolor check <graph> <coloring>
//	fivecolor gen <kind> <n>
//	fivecolor version
//
// The graph is read from <res-dir>/<graph>.graphe. The coloring is printed
// as a vertex count followed by one "<vertex>: <color>" line per vertex.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/fivecolor/cmd/fivecolor/commands"
)

func main() {
	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	fset.Set("v", "0")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	err := commands.Execute(fset)
	klog.Flush()
	if err != nil {
		fmt.Fprintf(os.Stderr, "fivecolor: %v\n", err)
		if u, ok := commands.AsUsage(err); ok {
			fmt.Fprint(os.Stderr, u.Usage)
		}
		os.Exit(commands.ExitCode(err))
	}
}
