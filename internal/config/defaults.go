package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/term-snake/internal/snake"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the hardcoded default configuration.
// It matches defaults/snake.yaml.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:  snake.DefaultWidth,
			Height: snake.DefaultHeight,
		},
		Tick: TickConfig{
			Interval: 200 * time.Millisecond,
		},
		Seed: 0,
		Storage: StorageConfig{
			Path: "~/.snake/scores.db",
		},
		SSH: SSHConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
	}
}
