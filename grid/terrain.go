package grid

import (
	"fmt"
	"math"

	"github.com/katalvlaran/placepath/core"
	"github.com/katalvlaran/placepath/obstacle"
)

// TerrainCost returns the cost to enter c.
func (g *Grid) TerrainCost(c Coord) (float64, error) {
	if !g.InBounds(c) {
		return 0, fmt.Errorf("%w: %v", core.ErrPlaceNotOnGraph, c)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.terrain.Cost(c.X, c.Y), nil
}

// Terrain returns a copy of the cost matrix, indexed [y][x].
func (g *Grid) Terrain() [][]float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.terrain.Snapshot()
}

// SetTerrainCost replaces the cost to enter c.
//
// A negative cost is rejected with a *core.BuildError of kind InvalidCost.
// When the edit flips the cell between passable and impassable, every
// obstacle-fit entry within reach of c is recomputed before the call returns;
// cost changes that keep passability leave the cache untouched.
//
// Complexity: O(1), plus O(W·H) when the cheapest cost is raised and
// O(Σ ceil(s/2)⁴) over registered sizes on a passability flip.
func (g *Grid) SetTerrainCost(c Coord, cost float64) error {
	if cost < 0 || math.IsNaN(cost) {
		return &core.BuildError{Kind: core.InvalidCost, Cost: cost, Location: c.String()}
	}
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v", core.ErrPlaceNotOnGraph, c)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	old, err := g.terrain.SetCost(c.X, c.Y, cost)
	if err != nil {
		return err
	}

	// 1) Keep the heuristic scale exact.
	switch {
	case cost > 0 && (g.minCost == 0 || cost < g.minCost):
		g.minCost = cost
	case old == g.minCost && cost != old:
		g.minCost = g.scanMinCost()
	}

	// 2) Fit answers depend on passability alone.
	flipped := (old > 0) != (cost > 0)
	if flipped {
		g.fits.Invalidate(c.X, c.Y)
	}
	g.log.Debug("terrain cost set",
		"cell", c.String(), "old", old, "new", cost, "invalidated", flipped)

	return nil
}

// PathfinderCanFit reports whether a disc of diameter size can stand in c,
// and where. size <= 0 is a point pathfinder and only needs c to be passable.
// Sizes not registered at build time are computed on each call and not cached.
func (g *Grid) PathfinderCanFit(c Coord, size float64) (obstacle.Fit, error) {
	if !g.InBounds(c) {
		return obstacle.Fit{Probe: -1}, fmt.Errorf("%w: %v", core.ErrPlaceNotOnGraph, c)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.fits.Get(c.X, c.Y, size)
}

// PathfinderSizes returns the footprints held by the obstacle-fit cache,
// largest first.
func (g *Grid) PathfinderSizes() []float64 {
	return g.fits.Sizes()
}

// scanMinCost returns the smallest positive terrain cost, or 0 if every cell
// is impassable. Caller holds mu or owns g exclusively.
func (g *Grid) scanMinCost() float64 {
	minCost := 0.0
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := g.terrain.Cost(x, y)
			if c > 0 && (minCost == 0 || c < minCost) {
				minCost = c
			}
		}
	}

	return minCost
}
