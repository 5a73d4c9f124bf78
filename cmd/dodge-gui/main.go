// dodge-gui plays dodge in a desktop window.
//
// Usage:
//
//	dodge-gui [--config <path>] [--no-record]
//
// Arrow keys or A/D move, as does touching or pointing at either half of
// the window. Enter, Space or a click starts and restarts; P pauses; Q quits.
// Recorded sessions share the database used by 'dodge replays'.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/logging"
	"github.com/vovakirdan/tui-dodge/internal/platform/gui"
	"github.com/vovakirdan/tui-dodge/internal/session"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagDebug    bool
	flagConfig   string
	flagNoRecord bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodge-gui",
	Short: "Dodge in a desktop window",
	Args:  cobra.NoArgs,
	RunE:  runGUI,
}

func init() {
	rootCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagDBPath, "db", "~/.dodge/replays.db", "Path to replays database")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: stderr)")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Log debug events")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.Flags().BoolVar(&flagNoRecord, "no-record", false, "Do not record replays")
}

func runGUI(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadDodge(flagConfig)
	if err != nil {
		return err
	}

	// The window does not own the terminal, so default to stderr.
	logger := logging.New(os.Stderr, "dodge-gui", flagDebug)
	if flagLogFile != "" {
		fileLogger, closeLog, err := logging.Open(flagLogFile, "dodge-gui", flagDebug)
		if err != nil {
			return err
		}
		//nolint:errcheck // Best-effort close on exit
		defer closeLog()
		logger = fileLogger
	}

	opts := session.Options{
		Logger: logger,
		Record: !flagNoRecord,
	}
	if opts.Record {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open replay database", "error", err)
		} else {
			defer store.Close()
			opts.Store = store
		}
	}

	rc := core.DefaultConfig()
	rc.TickRate = flagFPS
	rc.Seed = flagSeed

	return gui.Run(cfg, rc, opts)
}
