// Package network builds graphs of string-labelled places joined by explicit,
// symmetric edge costs.
//
// What:
//
//   - BuildFromEdges: one call from a list of Edge values.
//   - Builder: incremental AddPlace / AddEdge, including isolated places.
//   - Every declaration writes both directions, so CostToLeave(a, b) equals
//     CostToLeave(b, a) for every pair.
//   - Per-place terrain cost (default 1) that can be edited live; 0 closes
//     the place.
//
// Errors (*core.BuildError kinds): EmptyLabel, SelfLoop, InvalidCost,
// DuplicateEdge. A duplicate is the same unordered pair declared twice in
// any orientation.
//
// A Network does not implement core.Measurable: explicit labels carry no
// geometry, so only the Dijkstra entry point of package solver applies.
package network
