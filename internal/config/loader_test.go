package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded defaults invalid: %v", err)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, expected defaults", cfg)
	}
}

func TestLoadCustomPathPartial(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "snake.yaml", `
grid:
  width: 20
tick:
  interval: 150ms
seed: 42
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Grid.Width != 20 {
		t.Errorf("Grid.Width = %d, expected 20", cfg.Grid.Width)
	}
	if cfg.Grid.Height != Default().Grid.Height {
		t.Errorf("Grid.Height = %d, expected default %d", cfg.Grid.Height, Default().Grid.Height)
	}
	if cfg.Tick.Interval != 150*time.Millisecond {
		t.Errorf("Tick.Interval = %v, expected 150ms", cfg.Tick.Interval)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, expected 42", cfg.Seed)
	}
	if cfg.Storage.Path != Default().Storage.Path {
		t.Errorf("Storage.Path = %q, expected default", cfg.Storage.Path)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	writeConfig(t, home, filepath.Join(".snake", "config.yaml"), "grid:\n  height: 24\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Grid.Height != 24 {
		t.Errorf("Grid.Height = %d, expected 24 from user config", cfg.Grid.Height)
	}
}

func TestLoadLocalConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	wd := t.TempDir()
	t.Chdir(wd)
	writeConfig(t, wd, filepath.Join("configs", "snake.yaml"), "ssh:\n  address: \":2222\"\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.SSH.Address != ":2222" {
		t.Errorf("SSH.Address = %q, expected :2222", cfg.SSH.Address)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		invalid bool
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), false},
		{"bad yaml", writeConfig(t, dir, "bad.yaml", "grid: [1, 2"), false},
		{"grid too small", writeConfig(t, dir, "small.yaml", "grid:\n  width: 4\n"), true},
		{"zero interval", writeConfig(t, dir, "tick.yaml", "tick:\n  interval: 0s\n"), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(tc.path)
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if got := errors.Is(err, ErrInvalidConfig); got != tc.invalid {
				t.Errorf("errors.Is(err, ErrInvalidConfig) = %v, expected %v (err: %v)", got, tc.invalid, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"minimum grid", func(c *Config) { c.Grid = GridConfig{Width: 5, Height: 5} }, true},
		{"short grid", func(c *Config) { c.Grid.Height = 4 }, false},
		{"negative interval", func(c *Config) { c.Tick.Interval = -time.Second }, false},
		{"negative idle timeout", func(c *Config) { c.SSH.IdleTimeout = -time.Minute }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}
