package grid

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/katalvlaran/placepath/core"
	"github.com/katalvlaran/placepath/heuristic"
	"github.com/katalvlaran/placepath/obstacle"
)

// Sentinel errors for option validation. Option constructors panic with them.
var (
	// ErrBadConnectivity indicates a Connectivity value other than Conn4 or Conn8.
	ErrBadConnectivity = errors.New("grid: connectivity must be Conn4 or Conn8")

	// ErrBadPathfinderSize indicates a negative pathfinder diameter.
	ErrBadPathfinderSize = errors.New("grid: pathfinder size must be non-negative")

	// ErrInadmissibleHeuristic indicates a heuristic that can overestimate
	// under the chosen connectivity (Manhattan with diagonal moves).
	ErrInadmissibleHeuristic = errors.New("grid: heuristic overestimates under this connectivity")
)

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}

	return "conn4"
}

// Options configures BuildFromGrid.
type Options struct {
	// Conn chooses 4- or 8-directional movement.
	Conn Connectivity

	// Heuristic scales HeuristicDistance; see Grid.HeuristicDistance.
	Heuristic heuristic.Kind

	// PathfinderSizes are registered with the obstacle-fit cache at build time.
	PathfinderSizes []float64

	// Precompute fills the cache for every registered size during build.
	Precompute bool

	// Logger receives build, edit and cache events at Debug level.
	Logger *slog.Logger
}

// Option represents a functional option for configuring BuildFromGrid.
type Option func(*Options)

// DefaultOptions returns Conn8 movement, Euclidean heuristic, no registered
// pathfinder sizes, precomputation on and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Conn:       Conn8,
		Heuristic:  heuristic.KindEuclidean,
		Precompute: true,
		Logger:     slog.New(slog.DiscardHandler),
	}
}

// WithConnectivity selects Conn4 or Conn8. Panics on any other value.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) {
		if c != Conn4 && c != Conn8 {
			panic(ErrBadConnectivity.Error())
		}
		o.Conn = c
	}
}

// WithDiagonals is shorthand for WithConnectivity(Conn8) or WithConnectivity(Conn4).
func WithDiagonals(on bool) Option {
	if on {
		return WithConnectivity(Conn8)
	}

	return WithConnectivity(Conn4)
}

// WithHeuristic selects the distance used by HeuristicDistance.
// KindManhattan is only accepted with Conn4; BuildFromGrid rejects it under
// Conn8 with ErrInadmissibleHeuristic.
func WithHeuristic(k heuristic.Kind) Option {
	return func(o *Options) {
		o.Heuristic = k
	}
}

// WithPathfinderSizes registers footprint diameters with the obstacle-fit
// cache. Zero is accepted and ignored; negative sizes panic.
func WithPathfinderSizes(sizes ...float64) Option {
	for _, s := range sizes {
		if s < 0 {
			panic(ErrBadPathfinderSize.Error())
		}
	}

	return func(o *Options) {
		o.PathfinderSizes = append(o.PathfinderSizes, sizes...)
	}
}

// WithPrecompute toggles build-time cache precomputation.
func WithPrecompute(on bool) Option {
	return func(o *Options) {
		o.Precompute = on
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

// Grid is a rectangular cost matrix viewed as a graph of Coord-labelled places.
//
// Topology is fixed at build time: every cell is a place whose neighbours are
// its in-bounds cells under Conn. Passability lives in the terrain and is
// applied by IsBlocked and CostToLeave, so terrain edits never change the
// neighbour sets.
//
// Grid is safe for concurrent readers; SetTerrainCost takes the write lock.
type Grid struct {
	mu sync.RWMutex

	width, height int
	conn          Connectivity
	offsets       []Coord
	places        []*core.Place[Coord] // row-major
	labels        []Coord              // row-major

	terrain *obstacle.Intersector
	fits    *obstacle.Cache
	minCost float64 // smallest positive terrain cost; 0 if none
	dist    heuristic.Func
	kind    heuristic.Kind

	log *slog.Logger
}

var (
	_ core.Measurable[Coord]    = (*Grid)(nil)
	_ core.TerrainEditor[Coord] = (*Grid)(nil)
)
