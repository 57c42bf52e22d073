// snake is a terminal Snake game.
//
// Usage:
//
//	snake play               - Play in this terminal
//	snake sim --moves <dirs> - Run a scripted game without a terminal
//	snake scores             - Show the score history
//	snake serve              - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Config file (default: ~/.snake/config.yaml)
//	--width/--height - Grid size, border included (default: 32x16)
//	--tick <dur>     - Delay between ticks (default: 200ms)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.snake/scores.db)
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/term-snake/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagWidth    int
	flagHeight   int
	flagTick     time.Duration
	flagSeed     int64
	flagDBPath   string
	flagNoDB     bool
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
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is the classic arcade game played on a bordered grid in your terminal.
Steer the snake to the food, grow, and avoid the walls and your own tail.

Available commands:
  play     - Play in this terminal
  sim      - Run a scripted game headlessly
  scores   - View the score history
  serve    - Start SSH server for remote play

Examples:
  snake play
  snake play --width 40 --height 20 --tick 120ms
  snake sim --seed 42 --moves "uurrdd" --frames
  snake scores --interactive
  snake serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagWidth, "width", 0, "Grid width including the border")
	rootCmd.PersistentFlags().IntVar(&flagHeight, "height", 0, "Grid height including the border")
	rootCmd.PersistentFlags().DurationVar(&flagTick, "tick", 0, "Delay between ticks")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database")
	rootCmd.PersistentFlags().BoolVar(&flagNoDB, "no-db", false, "Do not record scores")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the config file and applies the global flags that were
// set on the command line.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Grid.Width = flagWidth
	}
	if flags.Changed("height") {
		cfg.Grid.Height = flagHeight
	}
	if flags.Changed("tick") {
		cfg.Tick.Interval = flagTick
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("db") {
		cfg.Storage.Path = flagDBPath
	}
	if flagNoDB {
		cfg.Storage.Disabled = true
	}

	return cfg, cfg.Validate()
}

// newLogger returns a logger writing to --log-file, or to fallback when no
// file was given. The returned close func is never nil.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})
	return logger, closeFn, nil
}
