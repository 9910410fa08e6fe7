package network

import (
	"log/slog"
	"sync"

	"github.com/katalvlaran/placepath/core"
)

// Edge declares an undirected connection between two labelled places.
// Cost is the price of moving along the edge in either direction; 0 is
// accepted at build time and treated as impassable by IsBlocked.
type Edge struct {
	From, To string
	Cost     float64
}

// Options configures BuildFromEdges and NewBuilder.
type Options struct {
	// Logger receives build and terrain-edit events at Debug level.
	Logger *slog.Logger
}

// Option represents a functional option for configuring a Network.
type Option func(*Options)

// DefaultOptions returns Options with a discarding logger.
func DefaultOptions() Options {
	return Options{Logger: slog.New(slog.DiscardHandler)}
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

// pair is an ordered (from, to) key into the cost table.
type pair struct{ from, to string }

// Network is a graph of string-labelled places with explicit, symmetric
// edge costs and an optional per-place terrain cost.
//
// Topology is fixed once built. Terrain defaults to 1 for every place and is
// the only mutable state; a terrain cost of 0 closes the place to entry.
//
// Network is safe for concurrent readers; SetTerrainCost takes the write lock.
type Network struct {
	mu sync.RWMutex

	// order is the declaration order of the places.
	order  []string
	places map[string]*core.Place[string]
	// costs holds both directions of every edge.
	costs   map[pair]float64
	terrain map[string]float64

	log *slog.Logger
}

var (
	_ core.Graph[string]         = (*Network)(nil)
	_ core.TerrainEditor[string] = (*Network)(nil)
)
