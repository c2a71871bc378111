package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/driver"
	"github.com/vovakirdan/dino-runner/internal/platform/tui"
	"github.com/vovakirdan/dino-runner/internal/runner"
	"github.com/vovakirdan/dino-runner/internal/storage"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a run in the current terminal.

Controls:
  Space/Up   - Jump
  Down/S     - Duck (hold)
  P/Esc      - Pause
  R          - Restart
  Ctrl+S     - Save a screenshot to ~/.dino/screenshots
  Q/Ctrl+C   - Quit

The terminal is owned by the game while playing, so logs are discarded
unless --log-file is given.

Examples:
  dino play
  dino play --seed 42
  dino play --log-file /tmp/dino.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while playing")
}

func runPlay(_ *cobra.Command, _ []string) {
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut)

	cfg, err := config.Load()
	if err != nil {
		logger.Warn("embedded constants rejected, using built-in defaults", "error", err)
	}

	rt := core.DefaultConfig()
	rt.TickRate = cfg.World.TickRate
	rt.Seed = seed()
	game := runner.NewGame(cfg, rt)

	opts := driver.Options{Logger: logger}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run journal: %v\n", err)
	} else {
		opts.Sink = store
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	session := tui.NewSession(game, driver.NewTicker(rt.TickRate), opts)
	runErr := tui.Run(ctx, session)
	stop()

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
