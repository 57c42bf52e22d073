// Package config provides YAML-based configuration loading for the snake
// game, with embedded defaults.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/term-snake/internal/snake"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("config: invalid")

// Config contains all settings for a snake process.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Tick    TickConfig    `yaml:"tick"`
	Seed    int64         `yaml:"seed"` // 0 = random based on time
	Storage StorageConfig `yaml:"storage"`
	SSH     SSHConfig     `yaml:"ssh"`
}

// GridConfig defines the board size, border included.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TickConfig defines simulation timing.
type TickConfig struct {
	Interval time.Duration `yaml:"interval"`
}

// StorageConfig defines where score history is kept.
type StorageConfig struct {
	Path     string `yaml:"path"`
	Disabled bool   `yaml:"disabled"`
}

// SSHConfig defines the remote play server.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"` // Empty = ~/.snake/host_key
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Validate checks that the config can start a game.
func (c Config) Validate() error {
	if c.Grid.Width < snake.MinGridSize || c.Grid.Height < snake.MinGridSize {
		return fmt.Errorf("%w: grid %dx%d is smaller than %dx%d",
			ErrInvalidConfig, c.Grid.Width, c.Grid.Height, snake.MinGridSize, snake.MinGridSize)
	}
	if c.Tick.Interval <= 0 {
		return fmt.Errorf("%w: tick interval must be positive, got %v", ErrInvalidConfig, c.Tick.Interval)
	}
	if c.SSH.IdleTimeout < 0 {
		return fmt.Errorf("%w: negative ssh idle timeout %v", ErrInvalidConfig, c.SSH.IdleTimeout)
	}
	return nil
}
