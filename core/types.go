// File: types.go
// Role: Place, and the Graph capability interfaces consumed by the solver and
// the connectivity sweep.
package core

import "fmt"

// Place is a graph node identified by a comparable label.
//
// A Place only records the labels of its neighbours; the neighbours themselves
// are owned by the Graph that owns this Place and are looked up there by label.
// The neighbour order is the order in which adjacency was declared, so callers
// iterating Neighbors observe a stable sequence.
type Place[L comparable] struct {
	label     L
	neighbors []L
	index     map[L]int
}

// NewPlace creates a Place with the given label and neighbour labels.
// Repeated neighbour labels are collapsed, keeping the first occurrence.
// Complexity: O(len(neighbors)).
func NewPlace[L comparable](label L, neighbors ...L) *Place[L] {
	p := &Place[L]{
		label:     label,
		neighbors: make([]L, 0, len(neighbors)),
		index:     make(map[L]int, len(neighbors)),
	}
	for _, n := range neighbors {
		p.Link(n)
	}

	return p
}

// Label returns the identifying label of the place.
func (p *Place[L]) Label() L { return p.label }

// Neighbors returns a copy of the neighbour labels in declaration order.
// Complexity: O(deg).
func (p *Place[L]) Neighbors() []L {
	out := make([]L, len(p.neighbors))
	copy(out, p.neighbors)

	return out
}

// IsNeighbor reports whether other is declared adjacent to p.
// Complexity: O(1).
func (p *Place[L]) IsNeighbor(other L) bool {
	_, ok := p.index[other]

	return ok
}

// Degree returns the number of declared neighbours.
func (p *Place[L]) Degree() int { return len(p.neighbors) }

// String renders the label with fmt's default verb.
func (p *Place[L]) String() string { return fmt.Sprint(p.label) }

// Link declares n as a neighbour of p unless it is already present and
// reports whether the neighbour list changed. It is meant for graph builders
// while a graph is being assembled; a Place reachable from a built Graph must
// not be mutated.
func (p *Place[L]) Link(n L) bool {
	if _, ok := p.index[n]; ok {
		return false
	}
	p.index[n] = len(p.neighbors)
	p.neighbors = append(p.neighbors, n)

	return true
}

// Graph is the read-only capability set the solver and the connectivity sweep
// need from a graph. It is the sole authority on edge cost and legality.
//
// Implementations must be safe for concurrent readers.
type Graph[L comparable] interface {
	// Labels returns every place label in a deterministic order.
	Labels() []L

	// HasPlace reports whether label names a place on the graph.
	HasPlace(label L) bool

	// Neighbors returns the adjacency of label in a deterministic order.
	// Returns an error wrapping ErrPlaceNotOnGraph if label is absent.
	Neighbors(label L) ([]L, error)

	// CostToLeave returns the cost of moving from one place to an adjacent one.
	// A value <= 0 means the transition is impassable or not an edge.
	CostToLeave(from, to L) float64

	// IsBlocked reports whether a pathfinder of the given footprint diameter
	// may not move from one place to the other.
	IsBlocked(from, to L, pathfinderSize float64) bool
}

// Measurable is a Graph whose labels support an admissible heuristic
// distance. Only the A* entry point requires it.
type Measurable[L comparable] interface {
	Graph[L]

	// HeuristicDistance estimates the remaining cost between two places and
	// must never exceed the true shortest-path cost.
	HeuristicDistance(a, b L) float64
}

// TerrainEditor is implemented by graphs that keep a per-place terrain cost
// and accept live edits to it.
type TerrainEditor[L comparable] interface {
	// TerrainCost returns the cost to enter label. <= 0 means impassable.
	TerrainCost(label L) (float64, error)

	// SetTerrainCost replaces the cost to enter label. Negative costs are
	// rejected with a *BuildError of kind InvalidCost.
	SetTerrainCost(label L, cost float64) error
}
