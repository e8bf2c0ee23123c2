package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/hanoi/pkg/solver"
)

// solveCmd prints the optimal move sequence without animation.
var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Print the optimal move sequence",
	Long:  `Computes the optimal 2^n - 1 move solution and prints it one move per line.`,
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

		moves, err := solver.Solve(cfg.DiskCount, from, aux, to)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		for i, m := range moves {
			fmt.Printf("%4d. %s\n", i+1, m)
		}
		fmt.Printf("\n%d disks solved in %d moves\n", cfg.DiskCount, len(moves))
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().IntP("disks", "n", 5, "Number of disks (3-10)")
}
