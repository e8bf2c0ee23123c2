package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/hanoi/internal/presentation/tui"
)

const explainMarkdown = `# How the solver works

Moving a tower of **n** disks from peg A to peg C splits into three steps:

1. Move the top *n−1* disks out of the way, from A to B (using C as the spare).
2. Move the largest disk directly: **A → C**.
3. Move the *n−1* stack home, from B to C (using A as the spare).

Each of the two sub-steps is the same problem one disk smaller, so the
recursion bottoms out at a single disk and produces exactly **2ⁿ − 1**
moves, which is optimal.

The tracer records every recursive call as a node in a tree: a call turns
*active* when entered and *completed* once its sub-calls finished and its
own move was emitted. Replaying those events in order is exactly watching
the algorithm run.

Try it:

    hanoi play -n 4
    hanoi graph -n 3 --at 10
`

// explainCmd renders a short walkthrough of the algorithm.
var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Explain the recursive algorithm",
	Run: func(cmd *cobra.Command, args []string) {
		render := tui.NewMarkdownRenderer()
		out, err := render(explainMarkdown)
		if err != nil {
			// Fall back to the raw markdown on renderer failure.
			fmt.Print(explainMarkdown)
			os.Exit(0)
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(explainCmd)
}
