package obstacle

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/placepath/core"
)

// Probes are the offsets, relative to a cell centre, at which a pathfinder may
// stand inside that cell: the centre first, then the four corners.
var Probes = [...]r2.Vec{
	{X: 0, Y: 0},
	{X: 0.5, Y: 0.5},
	{X: -0.5, Y: 0.5},
	{X: -0.5, Y: -0.5},
	{X: 0.5, Y: -0.5},
}

// Fit is the answer to "can a disc of this diameter stand in this cell".
type Fit struct {
	// Point is the disc centre, in grid coordinates, where the pathfinder fits.
	// Zero when OK is false.
	Point r2.Vec

	// Probe indexes Probes for Point; -1 when OK is false.
	Probe int

	// OK reports whether the pathfinder fits anywhere in the cell.
	OK bool
}

// blockedFit is the value returned for cells where nothing fits.
var blockedFit = Fit{Probe: -1}

// Intersector owns a rectangular terrain-cost matrix and answers geometric
// fit queries against it without memoization.
//
// Costs are indexed [y][x]. A cost <= 0 marks an impassable cell, and every
// cell outside the matrix is treated as impassable.
//
// Intersector is not safe for concurrent mutation; the owning graph serializes
// writes against reads.
type Intersector struct {
	costs         [][]float64
	width, height int
}

// NewIntersector returns an Intersector with no terrain. Every query fails with
// core.ErrUninitialized until SetTerrain is called.
func NewIntersector() *Intersector {
	return &Intersector{}
}

// SetTerrain replaces the terrain with a deep copy of costs.
// costs must be non-empty and rectangular. Caches built over the Intersector
// must be Reset afterwards.
// Complexity: O(W·H).
func (in *Intersector) SetTerrain(costs [][]float64) error {
	if len(costs) == 0 || len(costs[0]) == 0 {
		return &core.BuildError{Kind: core.EmptyGrid}
	}
	w := len(costs[0])
	cells := make([][]float64, len(costs))
	for y, row := range costs {
		if len(row) != w {
			return &core.BuildError{Kind: core.NonRectangular, Row: y, RowLen: len(row), WantLen: w}
		}
		cells[y] = make([]float64, w)
		copy(cells[y], row)
	}
	in.costs = cells
	in.width, in.height = w, len(costs)

	return nil
}

// Initialized reports whether terrain has been set.
func (in *Intersector) Initialized() bool { return in.costs != nil }

// Width returns the number of columns.
func (in *Intersector) Width() int { return in.width }

// Height returns the number of rows.
func (in *Intersector) Height() int { return in.height }

// InBounds reports whether (x, y) lies inside the terrain matrix.
func (in *Intersector) InBounds(x, y int) bool {
	return x >= 0 && x < in.width && y >= 0 && y < in.height
}

// Cost returns the terrain cost of (x, y); 0 outside the matrix.
func (in *Intersector) Cost(x, y int) float64 {
	if !in.InBounds(x, y) {
		return 0
	}

	return in.costs[y][x]
}

// SetCost overwrites the terrain cost of one in-bounds cell and returns the
// previous value. Negative costs are accepted here; validation belongs to the
// owning graph.
func (in *Intersector) SetCost(x, y int, cost float64) (float64, error) {
	if !in.Initialized() {
		return 0, core.ErrUninitialized
	}
	if !in.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d, %d)", core.ErrPlaceNotOnGraph, x, y)
	}
	old := in.costs[y][x]
	in.costs[y][x] = cost

	return old, nil
}

// Snapshot returns a deep copy of the terrain matrix.
func (in *Intersector) Snapshot() [][]float64 {
	out := make([][]float64, len(in.costs))
	for y, row := range in.costs {
		out[y] = make([]float64, len(row))
		copy(out[y], row)
	}

	return out
}

// Fit reports whether a disc of diameter size can be centred at one of the
// probe points of cell (x, y) without overlapping an impassable cell, and
// where. The first fitting probe in Probes order is returned.
//
// A size <= 0 is a point pathfinder: it fits wherever the cell is passable.
// Complexity: O(ceil(size/2)²).
func (in *Intersector) Fit(x, y int, size float64) (Fit, error) {
	if !in.Initialized() {
		return blockedFit, core.ErrUninitialized
	}

	return in.fit(x, y, size, len(Probes)), nil
}

// IntersectsObstacles is the negation of Fit(x, y, size).OK.
func (in *Intersector) IntersectsObstacles(x, y int, size float64) (bool, error) {
	f, err := in.Fit(x, y, size)
	if err != nil {
		return true, err
	}

	return !f.OK, nil
}

// fit tests probes [0, limit) in order and returns the first that fits.
// The caller guarantees the terrain is initialized.
func (in *Intersector) fit(x, y int, size float64, limit int) Fit {
	// 1) An impassable cell admits nothing, whatever the footprint.
	if in.Cost(x, y) <= 0 {
		return blockedFit
	}
	centre := r2.Vec{X: float64(x), Y: float64(y)}
	if size <= 0 {
		return Fit{Point: centre, Probe: 0, OK: true}
	}

	// 2) Collect impassable cells within Chebyshev radius ceil(r). No probe
	//    can reach a square farther away than that.
	r := size / 2
	rSq := r * r
	reach := int(math.Ceil(r))
	var walls []r2.Box
	for cy := y - reach; cy <= y+reach; cy++ {
		for cx := x - reach; cx <= x+reach; cx++ {
			if in.Cost(cx, cy) <= 0 {
				walls = append(walls, cellSquare(cx, cy))
			}
		}
	}

	// 3) The pathfinder fits if any probe's disc misses every wall.
	for i := 0; i < limit; i++ {
		p := r2.Add(centre, Probes[i])
		if !discHitsAny(p, rSq, walls) {
			return Fit{Point: p, Probe: i, OK: true}
		}
	}

	return blockedFit
}

// cellSquare is the unit square centred on integer cell (x, y).
func cellSquare(x, y int) r2.Box {
	return r2.Box{
		Min: r2.Vec{X: float64(x) - 0.5, Y: float64(y) - 0.5},
		Max: r2.Vec{X: float64(x) + 0.5, Y: float64(y) + 0.5},
	}
}

// discHitsAny reports whether the open disc (centre, sqrt(rSq)) overlaps any box.
func discHitsAny(centre r2.Vec, rSq float64, boxes []r2.Box) bool {
	for _, b := range boxes {
		if discHitsBox(centre, rSq, b) {
			return true
		}
	}

	return false
}

// discHitsBox clamps the centre onto the box to find its closest point and
// compares squared distances. Touching (distance == r) is not an overlap.
func discHitsBox(centre r2.Vec, rSq float64, b r2.Box) bool {
	closest := r2.Vec{
		X: math.Max(b.Min.X, math.Min(centre.X, b.Max.X)),
		Y: math.Max(b.Min.Y, math.Min(centre.Y, b.Max.Y)),
	}

	return r2.Norm2(r2.Sub(centre, closest)) < rSq
}
