package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/hanoi/internal/presentation/graph"
	"github.com/aretw0/hanoi/pkg/solver"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the recursion tree visualization",
	Long:  `Computes the recursion trace and outputs a Mermaid diagram (graph TD) of the call tree. With --at, calls are colored by their phase at that event index.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		from, aux, to, err := cfg.Pegs()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		trace, err := solver.Trace(cfg.DiskCount, from, aux, to)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		var overlay *graph.Overlay
		if cmd.Flags().Changed("at") {
			at, _ := cmd.Flags().GetInt("at")
			overlay = &graph.Overlay{EventIndex: at}
		}

		fmt.Print(graph.GenerateMermaid(trace, overlay))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().IntP("disks", "n", 5, "Number of disks (3-10)")
	graphCmd.Flags().Int("at", 0, "Color calls by phase after this many events")
}
