// dino is an endless side-scrolling runner for the terminal.
//
// Usage:
//
//	dino play               - Play in this terminal
//	dino run                - Run headlessly from an input script
//	dino scores             - Show the run journal
//	dino serve              - Start SSH server for remote play
//	dino config             - Print the simulation constants
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible runs
//	--db <path>          - Set journal path (default: ~/.dino/runs.db)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dino",
	Short: "Dino Runner - an endless runner in your terminal",
	Long: `Dino Runner is a terminal endless runner: jump over cacti and rocks,
duck under pterodactyls, and keep going as the world speeds up.

Available commands:
  play     - Play in this terminal
  run      - Replay an input script headlessly
  scores   - View the run journal
  serve    - Start SSH server for remote play
  config   - Print the simulation constants

Examples:
  dino play
  dino play --seed 42
  dino run --script ./runs/jumpy.yaml
  dino serve --ssh :2222
  dino scores`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dino/runs.db", "Path to the run journal database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates a logger writing to w. Terminals get the text format,
// everything else gets logfmt.
func newLogger(w io.Writer) *log.Logger {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: unknown log level %q, using info\n", flagLogLevel)
		level = log.InfoLevel
	}

	formatter := log.LogfmtFormatter
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		formatter = log.TextFormatter
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: true,
	})
}

// seed returns the --seed flag, or a clock-based seed when it is zero.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
