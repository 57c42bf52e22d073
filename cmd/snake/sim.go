package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term-snake/internal/board"
	"github.com/vovakirdan/term-snake/internal/loop"
	"github.com/vovakirdan/term-snake/internal/snake"
)

var (
	flagMoves    string
	flagFrames   bool
	flagRealtime bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a scripted game without a terminal",
	Long: `Run one game headlessly, feeding one scripted move per tick.

Moves are u/d/l/r, one letter per tick, and '.' for no input.
Commas and spaces are ignored. After the script runs out the snake keeps
its heading until the game ends. With the same --seed and --moves the
result is always the same.

Examples:
  snake sim --seed 42 --moves "uuurrrddd"
  snake sim --seed 42 --moves "u,.,.,r" --frames
  snake sim --width 10 --height 10 --seed 1 --realtime --frames`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagMoves, "moves", "", "Scripted moves, one per tick")
	simCmd.Flags().BoolVar(&flagFrames, "frames", false, "Print every frame")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Wait the tick interval between frames")
}

func runSim(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	script, err := loop.ParseScript(flagMoves)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	seed := snake.ResolveSeed(cfg.Seed)
	game, err := snake.New(cfg.Grid.Width, cfg.Grid.Height, snake.NewRand(seed))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out := cmd.OutOrStdout()
	driver := &loop.Driver{
		Game:   game,
		Input:  script,
		Logger: logger.With("seed", seed),
	}
	var frames *loop.TextRenderer
	if flagFrames {
		frames = loop.NewTextRenderer(out)
		driver.Renderer = frames
	}
	if flagRealtime {
		driver.Interval = cfg.Tick.Interval
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, runErr := driver.Run(ctx)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
	if frames != nil {
		if err := frames.Err(); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing frames: %v\n", err)
			os.Exit(1)
		}
	} else {
		fmt.Fprint(out, result.Final.Dump())
	}

	if result.Final.Terminal() {
		fmt.Fprintln(out, board.GameOverText(result.Score))
	} else {
		fmt.Fprintf(out, "Interrupted. Score: %d\n", result.Score)
	}
	fmt.Fprintf(out, "ticks=%d collision=%s seed=%d\n", result.Ticks, result.Collision, seed)
}
