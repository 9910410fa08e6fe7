// Package grid treats a rectangular matrix of terrain costs as a graph of
// Coord-labelled places, with movement rules for pathfinders of any size.
//
// What:
//
//   - BuildFromGrid validates and deep-copies a [][]float64 (rows are y,
//     columns x) and links every cell to its in-bounds neighbours.
//   - Conn4 (N, E, S, W) or Conn8 (adds NE, SE, SW, NW) movement.
//   - CostToLeave is the destination's terrain cost, times sqrt(2) on a
//     diagonal.
//   - IsBlocked rejects impassable destinations, footprints that do not fit,
//     and diagonals that cut an impassable corner.
//   - SetTerrainCost edits a cell live; the obstacle-fit cache is refreshed
//     around the cell only when passability flips.
//   - HeuristicDistance scales the configured distance by the cheapest
//     passable cost, so A* stays admissible at any cost scale.
//
// Complexity:
//
//   - BuildFromGrid: O(W×H×d), plus precomputation when sizes are registered.
//   - CostToLeave, IsBlocked: O(1) with a warm cache.
//
// Options:
//
//   - WithConnectivity / WithDiagonals: Conn8 by default.
//   - WithHeuristic: heuristic.KindEuclidean by default; Manhattan needs Conn4.
//   - WithPathfinderSizes, WithPrecompute: obstacle-fit cache layers.
//   - WithLogger: *slog.Logger, discarding by default.
//
// Errors:
//
//   - *core.BuildError (EmptyGrid, NonRectangular, InvalidCost).
//   - core.ErrPlaceNotOnGraph for coordinates outside the grid.
package grid
