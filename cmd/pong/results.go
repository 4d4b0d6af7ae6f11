package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/matrix-pong/internal/platform/tui"
	"github.com/vovakirdan/matrix-pong/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show recorded matches",
	Long: `Display recorded matches, newest first, with a win summary.

Runs an interactive table on a terminal; use --plain for text output.

Examples:
  pong results
  pong results --plain --limit 10
  pong results --clear`,
	Args: cobra.NoArgs,
	Run:  runResults,
}

func init() {
	resultsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain text table")
	resultsCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of matches to show")
	resultsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded match")
}

func runResults(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening match database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearMatches(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All matches deleted.")
		return
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		height := 24
		if _, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			height = h
		}
		if err := tui.RunResults(store, flagLimit, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := printResults(store, flagLimit); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printResults(store *storage.Store, limit int) error {
	matches, err := store.RecentMatches(limit)
	if err != nil {
		return err
	}
	stats, err := store.WinCounts()
	if err != nil {
		return err
	}

	fmt.Println("Match Results")
	fmt.Println()
	fmt.Println(tui.Summary(stats))

	if len(matches) == 0 {
		fmt.Println()
		fmt.Println("Play 'pong play' to record the first match!")
		return nil
	}

	columns := tui.ResultColumns()
	header := make([]string, len(columns))
	rule := make([]string, len(columns))
	for i, c := range columns {
		header[i] = fmt.Sprintf("%-*s", c.Width, c.Title)
		rule[i] = fmt.Sprintf("%-*s", c.Width, strings.Repeat("-", len(c.Title)))
	}

	fmt.Println()
	fmt.Println("  " + strings.Join(header, " "))
	fmt.Println("  " + strings.Join(rule, " "))
	for _, row := range tui.ResultRows(matches) {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = fmt.Sprintf("%-*s", columns[i].Width, cell)
		}
		fmt.Println("  " + strings.TrimRight(strings.Join(cells, " "), " "))
	}
	return nil
}
