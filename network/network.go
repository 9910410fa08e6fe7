package network

import (
	"fmt"
	"math"

	"github.com/katalvlaran/placepath/core"
)

// BuildFromEdges constructs a Network from a list of undirected edges.
// Places are labelled in order of first appearance. See Builder.AddEdge for
// the validation rules; the first invalid edge aborts the build.
// Complexity: O(E).
func BuildFromEdges(edges []Edge, opts ...Option) (*Network, error) {
	b := NewBuilder(opts...)
	for _, e := range edges {
		if err := b.AddEdge(e.From, e.To, e.Cost); err != nil {
			return nil, err
		}
	}

	return b.Build()
}

// Labels returns every place label in declaration order.
func (n *Network) Labels() []string {
	out := make([]string, len(n.order))
	copy(out, n.order)

	return out
}

// HasPlace reports whether label names a place.
func (n *Network) HasPlace(label string) bool {
	_, ok := n.places[label]

	return ok
}

// Place returns the place for label, or an error wrapping core.ErrPlaceNotOnGraph.
func (n *Network) Place(label string) (*core.Place[string], error) {
	p, ok := n.places[label]
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrPlaceNotOnGraph, label)
	}

	return p, nil
}

// Neighbors returns the neighbours of label in edge-declaration order.
func (n *Network) Neighbors(label string) ([]string, error) {
	p, err := n.Place(label)
	if err != nil {
		return nil, err
	}

	return p.Neighbors(), nil
}

// CostToLeave returns the declared cost of the edge from one place to the
// other, or -1 if they share no edge.
func (n *Network) CostToLeave(from, to string) float64 {
	c, ok := n.costs[pair{from, to}]
	if !ok {
		return -1
	}

	return c
}

// IsBlocked reports whether the move from one place to the other is not
// allowed: no such edge, an edge cost <= 0, or a closed destination. The
// pathfinder size has no geometric meaning here and is ignored.
func (n *Network) IsBlocked(from, to string, _ float64) bool {
	if n.CostToLeave(from, to) <= 0 {
		return true
	}
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.terrain[to] <= 0
}

// TerrainCost returns the terrain cost of label.
func (n *Network) TerrainCost(label string) (float64, error) {
	if !n.HasPlace(label) {
		return 0, fmt.Errorf("%w: %q", core.ErrPlaceNotOnGraph, label)
	}
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.terrain[label], nil
}

// SetTerrainCost replaces the terrain cost of label. 0 closes the place;
// a negative cost is rejected with a *core.BuildError of kind InvalidCost.
func (n *Network) SetTerrainCost(label string, cost float64) error {
	if cost < 0 || math.IsNaN(cost) {
		return &core.BuildError{Kind: core.InvalidCost, Cost: cost, Location: label}
	}
	if !n.HasPlace(label) {
		return fmt.Errorf("%w: %q", core.ErrPlaceNotOnGraph, label)
	}
	n.mu.Lock()
	old := n.terrain[label]
	n.terrain[label] = cost
	n.mu.Unlock()
	n.log.Debug("terrain cost set", "place", label, "old", old, "new", cost)

	return nil
}
