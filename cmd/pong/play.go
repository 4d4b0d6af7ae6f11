package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/matrix-pong/internal/platform/tui"
	"github.com/vovakirdan/matrix-pong/internal/storage"
)

// Smallest terminal that fits the board, segments and console side by side.
const (
	minTermWidth  = 72
	minTermHeight = 16
)

var flagSpeed string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play on this terminal",
	Long: `Start a two-player match on this terminal.

Buttons (hold to auto-repeat):
  R / F      - Player 1 up / down
  Up / Down  - Player 2 up / down

Serial console:
  W / S      - Player 1 up / down (S also starts a match)
  O / K      - Player 2 up / down
  1-4        - Game speed
  P          - Pause / resume
  Ctrl+S     - Save a screenshot to ~/.pong/screenshots
  Q / Esc    - Quit

Speed presets:
  easy    - 500ms per ball step
  normal  - 300ms
  hard    - 200ms
  insane  - 125ms

Examples:
  pong play
  pong play --speed hard
  pong play --seed 42
  pong play --config ./my-pong.yaml --log-file pong.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSpeed, "speed", "", "Speed preset: easy, normal, hard, insane")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig(flagSpeed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The board owns the terminal, so logs only go to a file
	logger, closeLog, err := newLogger("pong", io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < minTermWidth || h < minTermHeight {
			fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the board needs at least %dx%d\n",
				w, h, minTermWidth, minTermHeight)
		}
	}

	// Open match storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open match database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	opts := tui.Options{
		Config: cfg,
		Seed:   flagSeed,
		Logger: logger,
		Source: "local",
	}
	if store != nil {
		opts.Recorder = store
	}

	runErr := tui.Run(opts)

	// Close before potential exit
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
