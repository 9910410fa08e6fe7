package grid

import (
	"fmt"
	"math"

	"github.com/katalvlaran/placepath/core"
	"github.com/katalvlaran/placepath/heuristic"
	"github.com/katalvlaran/placepath/obstacle"
)

var (
	conn8Offsets = []Coord{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	conn4Offsets = []Coord{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
)

// BuildFromGrid constructs a Grid from a non-empty, rectangular cost matrix.
// costs[y][x] is the cost to enter cell (x, y); 0 marks it impassable.
// The input is deep-copied.
//
// Returns a *core.BuildError of kind:
//   - EmptyGrid if costs has no rows or no columns,
//   - NonRectangular naming the first row whose length differs from row 0,
//   - InvalidCost naming the first negative cell in row-major order.
//
// Manhattan distance combined with Conn8 returns ErrInadmissibleHeuristic
// before the matrix is inspected.
//
// Complexity: O(W·H·d) plus precomputation when enabled.
func BuildFromGrid(costs [][]float64, opts ...Option) (*Grid, error) {
	// 1) Apply options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Conn == Conn8 && cfg.Heuristic == heuristic.KindManhattan {
		return nil, fmt.Errorf("%w: %v with %v", ErrInadmissibleHeuristic, cfg.Heuristic, cfg.Conn)
	}

	// 2) Validate shape, then costs.
	if len(costs) == 0 || len(costs[0]) == 0 {
		return nil, &core.BuildError{Kind: core.EmptyGrid}
	}
	h, w := len(costs), len(costs[0])
	for y, row := range costs {
		if len(row) != w {
			return nil, &core.BuildError{Kind: core.NonRectangular, Row: y, RowLen: len(row), WantLen: w}
		}
	}
	for y, row := range costs {
		for x, c := range row {
			if c < 0 || math.IsNaN(c) {
				return nil, &core.BuildError{Kind: core.InvalidCost, Cost: c, Location: Coord{x, y}.String()}
			}
		}
	}

	// 3) Hand the matrix to the terrain store.
	terrain := obstacle.NewIntersector()
	if err := terrain.SetTerrain(costs); err != nil {
		return nil, err
	}

	g := &Grid{
		width:   w,
		height:  h,
		conn:    cfg.Conn,
		offsets: conn4Offsets,
		terrain: terrain,
		fits:    obstacle.NewCache(terrain),
		kind:    cfg.Heuristic,
		dist:    cfg.Heuristic.Func(),
		log:     cfg.Logger,
	}
	if cfg.Conn == Conn8 {
		g.offsets = conn8Offsets
	}

	// 4) Link every cell to its in-bounds neighbours.
	g.places = make([]*core.Place[Coord], 0, w*h)
	g.labels = make([]Coord, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			here := Coord{x, y}
			p := core.NewPlace(here)
			for _, d := range g.offsets {
				if n := here.Add(d); g.InBounds(n) {
					p.Link(n)
				}
			}
			g.places = append(g.places, p)
			g.labels = append(g.labels, here)
		}
	}
	g.minCost = g.scanMinCost()

	// 5) Register footprints and optionally fill the cache.
	g.fits.Register(cfg.PathfinderSizes...)
	if cfg.Precompute && len(cfg.PathfinderSizes) > 0 {
		if err := g.fits.Precompute(); err != nil {
			return nil, err
		}
		g.log.Debug("obstacle cache precomputed", "sizes", g.fits.Sizes())
	}
	g.log.Debug("grid built",
		"width", w, "height", h,
		"conn", g.conn.String(),
		"heuristic", g.kind.String(),
		"min_cost", g.minCost)

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Connectivity returns the movement connectivity chosen at build time.
func (g *Grid) Connectivity() Connectivity { return g.conn }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// index maps c to a row-major index: y*Width + x.
func (g *Grid) index(c Coord) int {
	return c.Y*g.width + c.X
}

// Coordinate converts a row-major index back to a Coord.
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{idx % g.width, idx / g.width}
}

// Labels returns every cell in row-major order.
func (g *Grid) Labels() []Coord {
	out := make([]Coord, len(g.labels))
	copy(out, g.labels)

	return out
}

// HasPlace reports whether c is a cell of the grid.
func (g *Grid) HasPlace(c Coord) bool { return g.InBounds(c) }

// Place returns the place at c, or an error wrapping core.ErrPlaceNotOnGraph.
func (g *Grid) Place(c Coord) (*core.Place[Coord], error) {
	if !g.InBounds(c) {
		return nil, fmt.Errorf("%w: %v", core.ErrPlaceNotOnGraph, c)
	}

	return g.places[g.index(c)], nil
}

// Neighbors returns the in-bounds neighbours of c, clockwise from north.
// Impassable neighbours are included; IsBlocked filters them.
func (g *Grid) Neighbors(c Coord) ([]Coord, error) {
	p, err := g.Place(c)
	if err != nil {
		return nil, err
	}

	return p.Neighbors(), nil
}
