// Package core provides the place/graph model that unifies explicit and
// geometric adjacency under one cost model.
//
// What:
//
//   - Place[L]: a node identified by a comparable label with an ordered set of
//     neighbour labels. Places never own other places.
//   - Graph[L]: the capability set every graph shape implements (labels,
//     neighbours, CostToLeave, IsBlocked). The graph is the sole authority on
//     edge cost and legality.
//   - Measurable[L]: a Graph that also supports an admissible heuristic
//     distance; required only by A*.
//   - TerrainEditor[L]: per-place terrain cost with live edits.
//
// Label types:
//
//   - network.Network uses string labels (explicit edges).
//   - grid.Grid uses grid.Coord labels (geometric adjacency).
//
// Errors:
//
//   - *BuildError (Kind: InvalidCost, DuplicateEdge, NonRectangular,
//     EmptyGrid, EmptyLabel, SelfLoop) for construction and terrain edits.
//   - ErrDisjointGraph and *PlaceNotFoundError for solve-time topology checks.
//   - ErrUninitialized for terrain queries before the store is populated.
//
// PathCost recomputes the cost of a label sequence, which is how callers
// confirm that a reconstructed path matches the solver's reported total.
package core
