// Package placepath is a generic shortest-path engine over places.
//
// A place is a node identified by a comparable label. Two graph shapes are
// provided, both behind the same core.Graph capability set:
//
//	core/          Place, Graph/Measurable/TerrainEditor interfaces, BuildError, PathCost
//	network/       explicit undirected edges with per-edge cost (string labels)
//	grid/          2D terrain-cost grids with 4- or 8-way movement (Coord labels)
//	obstacle/      disc-vs-obstacle intersection and the per-size fit cache
//	heuristic/     Euclidean, octile and Manhattan distance estimates
//	connectivity/  single-component check and component listing
//	solver/        Dijkstra (SolvePath) and A* (SolvePathAStar)
//	config/        YAML configuration producing grid and solver options
//
// Quick start:
//
//	g, _ := grid.BuildFromGrid(costs, grid.WithPathfinderSizes(1.5))
//	res, err := solver.SolvePathAStar[grid.Coord](g, grid.Coord{X: 0, Y: 0}, grid.Coord{X: 7, Y: 3},
//		solver.WithPathfinderSize(1.5))
//	if err == nil && res.Found {
//		fmt.Println(res.Path, res.Cost)
//	}
//
// A missing path is not an error: Result.Found is false. Errors are reserved
// for invalid input (see core.BuildError), disjoint graphs and unknown places.
//
// Grids accept live terrain edits through SetTerrainCost; only the obstacle
// fit entries around the edited cell are recomputed.
package placepath
