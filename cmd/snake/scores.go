package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/term-snake/internal/platform/tui"
	"github.com/vovakirdan/term-snake/internal/storage"
)

var (
	flagLimit       int
	flagPlayer      string
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the score history",
	Long: `Display the best recorded games, or the latest games of one player.

Examples:
  snake scores
  snake scores --limit 20
  snake scores --player alice
  snake scores --interactive
  snake scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of games to show")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Only show this player's latest games")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded games")
}

func runScores(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cfg.Storage.Disabled {
		fmt.Fprintln(os.Stderr, "Error: score history is disabled")
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	showErr := showScores(cmd.OutOrStdout(), store)
	store.Close()

	if showErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", showErr)
		os.Exit(1)
	}
}

func showScores(out io.Writer, store *storage.Store) error {
	if flagClear {
		if err := store.ClearScores(); err != nil {
			return err
		}
		fmt.Fprintln(out, "Score history cleared.")
		return nil
	}

	if flagInteractive {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunScoreboard(store, width, height)
	}

	var scores []storage.ScoreEntry
	var err error
	if flagPlayer != "" {
		scores, err = store.PlayerScores(flagPlayer, flagLimit)
		fmt.Fprintf(out, "Latest games - %s\n", flagPlayer)
	} else {
		scores, err = store.TopScores(flagLimit)
		fmt.Fprintln(out, "High Scores - Snake")
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'snake play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Fprintf(out, "  %-4s  %-12s  %-6s  %-6s  %-6s  %-7s  %s\n", "Rank", "Player", "Score", "Ticks", "End", "Grid", "Date")
	fmt.Fprintf(out, "  %-4s  %-12s  %-6s  %-6s  %-6s  %-7s  %s\n", "----", "------", "-----", "-----", "---", "----", "----")

	for i, e := range scores {
		player := e.Player
		if player == "" {
			player = "-"
		}
		fmt.Fprintf(out, "  %-4d  %-12s  %-6d  %-6d  %-6s  %-7s  %s\n",
			i+1, player, e.Score, e.Ticks, e.Collision,
			fmt.Sprintf("%dx%d", e.Width, e.Height),
			e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetStats()
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d  Games: %d  Average: %.1f\n", stats.HighScore, stats.GamesPlayed, stats.AverageScore)
	}
	return nil
}
