// Package solver finds cheapest paths on any core.Graph.
//
// What:
//
//   - SolvePath: Dijkstra's algorithm on any core.Graph.
//   - SolvePathAStar: A* on a core.Measurable, ordered by cost plus
//     HeuristicDistance to the target.
//
// Both entry points share one search loop. The graph alone decides which
// moves are legal (IsBlocked, with the configured pathfinder size) and what
// they cost (CostToLeave); the solver never inspects terrain itself.
//
// Before searching, every solve checks that the graph is connected and that
// both endpoints are on it, in that order.
//
// Complexity:
//
//   - Time:  O((V + E) log V). Lazy decrease-key: improved costs are pushed
//     again and stale records are skipped when popped.
//   - Space: O(V + E) for the cost and predecessor maps and the heap.
//
// Determinism: neighbours are relaxed in the order the graph returns them,
// and equal priorities pop in push order, so repeated solves on an unchanged
// graph return identical paths.
//
// Options:
//
//   - WithPathfinderSize(d): footprint diameter handed to IsBlocked.
//   - WithContext(ctx):      cancellation, checked between frontier pops.
//   - WithMaxIterations(n):  cap on frontier pops (DefaultMaxIterations).
//   - WithLogger(l):         structured outcome logging.
//   - WithMetrics(m):        Prometheus solve counters and histograms (NewMetrics).
//
// Search state is local to each call; concurrent solves on one graph are safe
// as long as the graph is safe for concurrent readers.
package solver
