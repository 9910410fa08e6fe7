// Package obstacle answers whether a circular pathfinder of a given diameter
// can stand in a grid cell without overlapping impassable terrain.
//
// What:
//
//   - Intersector owns the terrain-cost matrix and performs the geometric
//     test directly: a disc of radius size/2, centred at one of five probe
//     points in the cell, against the unit squares of every impassable cell
//     within Chebyshev radius ceil(size/2). Cells outside the matrix count as
//     impassable.
//   - Cache memoizes Intersector answers per registered size, fills lazily or
//     eagerly (Precompute), and recomputes only the neighbourhood of an edited
//     cell (Invalidate). Unregistered sizes pass straight through to the
//     Intersector.
//
// Probe order is the centre, then (+½,+½), (−½,+½), (−½,−½), (+½,−½). The
// first probe whose disc misses every obstacle is retained as Fit.Point.
//
// A disc overlaps a square when the squared distance from its centre to the
// square's closest point is strictly less than r². A disc exactly touching a
// wall therefore fits.
//
// Complexity:
//
//   - Intersector.Fit: O(ceil(size/2)²).
//   - Cache.Get: O(1) when memoized.
//   - Cache.Invalidate: O(Σ ceil(sᵢ/2)² · ceil(sᵢ/2)²) over registered sizes.
package obstacle
