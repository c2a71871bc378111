package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-runner/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the simulation constants",
	Long: `Print the constants compiled into this binary, then check them.

Examples:
  dino config`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	fmt.Print(string(config.DefaultYAML()))

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Printf("# speed reaches %.1f at score %d\n", cfg.Speed.Max, cfg.Speed.ScoreAtMax())
	fmt.Printf("# standing height %.0f, ducking height %.0f\n", cfg.Actor.Height, cfg.Actor.DuckHeight())
}
