package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/term-snake/internal/board"
	"github.com/vovakirdan/term-snake/internal/platform/tui"
	"github.com/vovakirdan/term-snake/internal/snake"
	"github.com/vovakirdan/term-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game of Snake in this terminal.

The snake starts in the middle of the grid heading right. Each bite of food
adds one to the score and the snake grows one cell on the next tick.
The game ends when the head touches the border or the snake's body.

Controls:
  Arrows/WASD/HJKL - Steer
  R                - New game (after game over)
  ?                - Toggle help
  Q/Esc/Ctrl+C     - Quit

Examples:
  snake play
  snake play --width 20 --height 12
  snake play --seed 42 --no-db
  snake play --log-file snake.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The board plus the help line must fit on screen
	needW, needH := board.Size(snake.Snapshot{
		Width:  cfg.Grid.Width,
		Height: cfg.Grid.Height,
		Score:  snake.InitialScore,
	})
	needH++
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && (w < needW || h < needH) {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the game needs %dx%d\n", w, h, needW, needH)
	}

	// The game owns the terminal, so logs go to --log-file or nowhere
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	var store *storage.Store
	if !cfg.Storage.Disabled {
		store, err = storage.Open(cfg.Storage.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
			// Continue without storage - game still works
			store = nil
		}
	}

	result, runErr := tui.Run(tui.Options{
		Width:    cfg.Grid.Width,
		Height:   cfg.Grid.Height,
		Interval: cfg.Tick.Interval,
		Seed:     cfg.Seed,
		Player:   os.Getenv("USER"),
		Store:    store,
		Logger:   logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	if result.Final.Terminal() {
		fmt.Println(board.GameOverText(result.Score))
	} else {
		fmt.Printf("Quit. Score: %d\n", result.Score)
	}
}
