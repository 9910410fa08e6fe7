// Package config loads placepath settings from YAML and turns them into
// grid and solver options.
//
// Load starts from the embedded defaults.yaml and overlays an optional user
// file, then validates the result and computes derived values.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/placepath/grid"
	"github.com/katalvlaran/placepath/heuristic"
	"github.com/katalvlaran/placepath/solver"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalidConfig indicates a setting outside its allowed range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds all placepath settings.
type Config struct {
	Grid   GridConfig   `yaml:"grid"`
	Solver SolverConfig `yaml:"solver"`
	Log    LogConfig    `yaml:"log"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// GridConfig holds grid construction settings.
type GridConfig struct {
	Diagonals       bool           `yaml:"diagonals"`
	Heuristic       heuristic.Kind `yaml:"heuristic"`
	PathfinderSizes []float64      `yaml:"pathfinder_sizes"`
	Precompute      bool           `yaml:"precompute"`
}

// SolverConfig holds per-solve settings.
type SolverConfig struct {
	PathfinderSize float64 `yaml:"pathfinder_size"`
	MaxIterations  int     `yaml:"max_iterations"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

// DerivedConfig holds values computed from the loaded configuration.
type DerivedConfig struct {
	// LogLevel is the parsed Log.Level.
	LogLevel slog.Level

	// CacheSizes is Grid.PathfinderSizes plus Solver.PathfinderSize when positive,
	// de-duplicated.
	CacheSizes []float64
}

// Load reads the embedded defaults and, if path is non-empty, overlays the
// YAML file at path.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

func (c *Config) validate() error {
	for _, s := range c.Grid.PathfinderSizes {
		if s < 0 {
			return fmt.Errorf("%w: grid.pathfinder_sizes contains %g", ErrInvalidConfig, s)
		}
	}
	if c.Grid.Diagonals && c.Grid.Heuristic == heuristic.KindManhattan {
		return fmt.Errorf("%w: manhattan heuristic overestimates when diagonals are enabled", ErrInvalidConfig)
	}
	if c.Solver.PathfinderSize < 0 {
		return fmt.Errorf("%w: solver.pathfinder_size is %g", ErrInvalidConfig, c.Solver.PathfinderSize)
	}
	if c.Solver.MaxIterations <= 0 {
		return fmt.Errorf("%w: solver.max_iterations is %d", ErrInvalidConfig, c.Solver.MaxIterations)
	}
	if err := c.Derived.LogLevel.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}

	return nil
}

// computeDerived fills the derived values validate has not already set.
func (c *Config) computeDerived() {
	sizes := slices.Clone(c.Grid.PathfinderSizes)
	if c.Solver.PathfinderSize > 0 {
		sizes = append(sizes, c.Solver.PathfinderSize)
	}
	slices.Sort(sizes)
	c.Derived.CacheSizes = slices.Compact(sizes)
}

// Logger returns a text logger writing to w at the configured level.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.Derived.LogLevel}))
}

// GridOptions returns the grid.Option set described by the configuration.
// The solver's pathfinder size is registered with the cache too. A nil
// logger discards.
func (c *Config) GridOptions(l *slog.Logger) []grid.Option {
	return []grid.Option{
		grid.WithDiagonals(c.Grid.Diagonals),
		grid.WithHeuristic(c.Grid.Heuristic),
		grid.WithPathfinderSizes(c.Derived.CacheSizes...),
		grid.WithPrecompute(c.Grid.Precompute),
		grid.WithLogger(l),
	}
}

// SolverOptions returns the solver.Option set described by the configuration.
// A nil logger discards.
func (c *Config) SolverOptions(l *slog.Logger) []solver.Option {
	return []solver.Option{
		solver.WithPathfinderSize(c.Solver.PathfinderSize),
		solver.WithMaxIterations(c.Solver.MaxIterations),
		solver.WithLogger(l),
	}
}
