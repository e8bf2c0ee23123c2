package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/hanoi/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "hanoi",
	Short: "Hanoi is a Tower of Hanoi solver with a recursion tracer",
	Long:  `Hanoi solves the Tower of Hanoi puzzle and can replay the recursive call tree that produces the optimal solution, as an animation, a mermaid diagram, or a JSON API.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "hanoi.yaml", "Path to the configuration file")
}

// loadConfig resolves the effective configuration: file first, then flag
// overrides for the knobs the command declares.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if cmd.Flags().Changed("disks") {
		cfg.DiskCount, _ = cmd.Flags().GetInt("disks")
	}
	if cmd.Flags().Changed("delay") {
		cfg.StepDelayMs, _ = cmd.Flags().GetInt("delay")
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
