package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/logging"
	"github.com/vovakirdan/tui-dodge/internal/platform/tui"
	"github.com/vovakirdan/tui-dodge/internal/session"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

var (
	flagConfig   string
	flagNoRecord bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session",
	Long: `Start the game in the terminal.

Controls:
  Left/A/H     - Move left
  Right/D/L    - Move right
  Mouse        - Move toward the side of the screen the pointer is on
  Enter/Space  - Start
  P/Esc        - Pause
  R            - Restart (after game over)
  ?            - Toggle full help
  Q/Ctrl+C     - Quit

Every finished session is recorded to the replay database unless
--no-record is given.

Examples:
  dodge play
  dodge play --seed 42
  dodge play --config ./my-dodge.yaml
  dodge play --log-file /tmp/dodge.log --debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagNoRecord, "no-record", false, "Do not record replays")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadDodge(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := logging.Open(flagLogFile, "dodge", flagDebug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := session.Options{
		Logger: logger,
		Record: !flagNoRecord,
	}
	if opts.Record {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open replay database: %v\n", err)
			// Continue without storage - game still works
		} else {
			opts.Store = store
		}
	}

	runErr := tui.Run(cfg, runtimeConfig(), opts)

	// Close store before potential exit
	if opts.Store != nil {
		opts.Store.Close()
	}
	//nolint:errcheck // Best-effort close, nothing left to log to
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
