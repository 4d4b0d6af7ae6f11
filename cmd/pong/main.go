// pong is a two-player Pong played on an emulated 16x8 LED matrix.
//
// Usage:
//
//	pong play                - Play on the local terminal
//	pong serve               - Start SSH server, one board per session
//	pong results             - Show recorded matches
//	pong config              - Print the effective configuration
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible matches
//	--db <path>         - Set database path (default: ~/.pong/matches.db)
//	--config <path>     - Use a custom config YAML
//	--log-file <path>   - Write logs to a file while the board is on screen
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/matrix-pong/internal/config"
	"github.com/vovakirdan/matrix-pong/internal/storage"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Matrix Pong - two-player Pong on an emulated LED matrix",
	Long: `Matrix Pong is a two-player Pong played on a 12x8 board, drawn on an
emulated 16x8 LED matrix with a seven-segment score display and a serial
console.

Available commands:
  play     - Play on this terminal
  serve    - Start SSH server for remote play
  results  - View recorded matches
  config   - Print the effective configuration

Examples:
  pong play
  pong play --speed hard
  pong serve --ssh :2222
  pong results --plain`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to match database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the config and applies a speed preset override.
func loadConfig(speed string) (config.PongConfig, error) {
	cfg, err := config.LoadPong(flagConfig)
	if err != nil {
		return cfg, err
	}
	if speed != "" {
		preset, err := config.ParseSpeedPreset(speed)
		if err != nil {
			return cfg, err
		}
		config.ApplySpeedPreset(&cfg, preset)
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// newLogger builds the logger. fallback receives output when --log-file is
// not set. The returned closer must be called on exit.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}
