package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/hanoi"
	"github.com/aretw0/hanoi/internal/presentation/tui"
	"github.com/aretw0/hanoi/pkg/domain"
	"github.com/aretw0/hanoi/pkg/solver"
)

// playCmd replays the traced solve as a terminal animation.
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Animate the solve in the terminal",
	Long:  `Replays the recursion trace on a timer, drawing the board after every move. Ctrl+C stops the replay.`,
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

		headless, _ := cmd.Flags().GetBool("headless")
		if !headless {
			tui.PrintBanner(hanoi.Version)
		}

		initial, err := domain.InitialState(cfg.DiskCount, from)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(tui.RenderBoard(initial))

		runner := hanoi.NewRunner()
		runner.Delay = cfg.StepDelay()
		runner.Headless = headless
		if !headless {
			runner.Renderer = tui.RenderBoard
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := runner.Run(ctx, trace); err != nil && ctx.Err() == nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().IntP("disks", "n", 5, "Number of disks (3-10)")
	playCmd.Flags().Int("delay", 500, "Milliseconds between steps (100-2000)")
	playCmd.Flags().Bool("headless", false, "Replay without delays or colors (useful for piping)")
}
