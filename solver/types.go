package solver

import (
	"context"
	"errors"
	"log/slog"
)

// Sentinel errors returned or raised by the solver.
var (
	// ErrIterationLimit indicates the frontier was popped MaxIterations times
	// without settling the target.
	ErrIterationLimit = errors.New("solver: iteration limit reached")

	// ErrBadPathfinderSize indicates a negative pathfinder diameter.
	ErrBadPathfinderSize = errors.New("solver: pathfinder size must be non-negative")

	// ErrBadMaxIterations indicates a non-positive iteration cap.
	ErrBadMaxIterations = errors.New("solver: max iterations must be positive")
)

// DefaultMaxIterations caps the number of frontier pops per solve.
const DefaultMaxIterations = 1_000_000

// Options configures SolvePath and SolvePathAStar.
//
// PathfinderSize – footprint diameter passed to Graph.IsBlocked. 0 is a point.
// Ctx            – checked before every frontier pop.
// MaxIterations  – frontier pops allowed before ErrIterationLimit.
// Logger         – outcome at Debug, iteration-limit aborts at Warn.
// Metrics        – Prometheus collectors; nil records nothing.
type Options struct {
	PathfinderSize float64
	Ctx            context.Context
	MaxIterations  int
	Logger         *slog.Logger
	Metrics        *Metrics
}

// Option represents a functional option for configuring a solve.
type Option func(*Options)

// DefaultOptions returns a point pathfinder, a background context,
// DefaultMaxIterations and a discarding logger.
func DefaultOptions() Options {
	return Options{
		PathfinderSize: 0,
		Ctx:            context.Background(),
		MaxIterations:  DefaultMaxIterations,
		Logger:         slog.New(slog.DiscardHandler),
	}
}

// WithPathfinderSize sets the footprint diameter. Panics if size < 0.
// On a grid, sizes not registered with grid.WithPathfinderSizes are probed
// on every IsBlocked call instead of being served from the fit cache.
func WithPathfinderSize(size float64) Option {
	return func(o *Options) {
		if size < 0 {
			panic(ErrBadPathfinderSize.Error())
		}
		o.PathfinderSize = size
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxIterations caps frontier pops. Panics if n <= 0.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadMaxIterations.Error())
		}
		o.MaxIterations = n
	}
}

// WithLogger sets the structured logger. A nil logger discards.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		o.Logger = l
	}
}

// WithMetrics records every solve into m.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}

// Result is the outcome of one solve.
//
// When Found is false no path exists under the movement rules: Path is nil
// and Cost is 0. Partial paths are never returned.
type Result[L comparable] struct {
	// Path runs from start to target inclusive.
	Path []L

	// Cost is the sum of CostToLeave along Path.
	Cost float64

	// Found reports whether the target was reached.
	Found bool

	// Settled counts places whose cost was finalized, the target included.
	Settled int
}
