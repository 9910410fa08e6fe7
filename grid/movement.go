package grid

import "math"

// step classifies a move under the grid's connectivity: 1 for straight,
// math.Sqrt2 for diagonal, 0 when to is not a neighbour of from.
func (g *Grid) step(from, to Coord) float64 {
	if !g.InBounds(from) || !g.InBounds(to) {
		return 0
	}
	switch {
	case from.IsStraightTo(to):
		return 1
	case g.conn == Conn8 && from.IsDiagonalTo(to):
		return math.Sqrt2
	default:
		return 0
	}
}

// CostToLeave returns the cost of moving from one cell to an adjacent one:
// the destination's terrain cost, times sqrt(2) on a diagonal. Returns -1
// when the cells are not neighbours and 0 when the destination is impassable.
func (g *Grid) CostToLeave(from, to Coord) float64 {
	s := g.step(from, to)
	if s == 0 {
		return -1
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.terrain.Cost(to.X, to.Y) * s
}

// IsBlocked reports whether a pathfinder of footprint diameter size may not
// move from one cell to the other. A move is blocked when:
//
//   - the cells are not neighbours,
//   - the destination is impassable,
//   - the pathfinder does not fit in the destination (size > 0),
//   - the move is diagonal and either orthogonal cell framing it is impassable.
func (g *Grid) IsBlocked(from, to Coord, size float64) bool {
	s := g.step(from, to)
	if s == 0 {
		return true
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.terrain.Cost(to.X, to.Y) <= 0 {
		return true
	}
	if s != 1 && g.cutsCorner(from, to) {
		return true
	}
	if size > 0 {
		f, err := g.fits.Get(to.X, to.Y, size)
		if err != nil || !f.OK {
			return true
		}
	}

	return false
}

// cutsCorner reports whether a diagonal move squeezes past an impassable
// orthogonal cell. Caller holds mu.
func (g *Grid) cutsCorner(from, to Coord) bool {
	return g.terrain.Cost(to.X, from.Y) <= 0 || g.terrain.Cost(from.X, to.Y) <= 0
}

// HeuristicDistance is the configured distance between cell centres, scaled
// by the cheapest passable terrain cost. Euclidean and octile distances are
// admissible under either connectivity; Manhattan only under Conn4.
func (g *Grid) HeuristicDistance(a, b Coord) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.dist(a.Vec(), b.Vec()) * g.minCost
}
