package solver_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/placepath/core"
	"github.com/katalvlaran/placepath/grid"
	"github.com/katalvlaran/placepath/network"
	"github.com/katalvlaran/placepath/solver"
)

//	         E -3- F -3- G
//	         |           |
//	         2           2
//	         |           |
//	   A -2- B -5- C -2- D
func loopNetwork(t testing.TB) *network.Network {
	t.Helper()
	n, err := network.BuildFromEdges([]network.Edge{
		{From: "A", To: "B", Cost: 2},
		{From: "B", To: "C", Cost: 5},
		{From: "C", To: "D", Cost: 2},
		{From: "D", To: "G", Cost: 2},
		{From: "G", To: "F", Cost: 3},
		{From: "F", To: "E", Cost: 3},
		{From: "E", To: "B", Cost: 2},
	})
	require.NoError(t, err)

	return n
}

func c(x, y int) grid.Coord { return grid.Coord{X: x, Y: y} }

// gapCosts is a 9×9 open field split by a wall at x=4 from y=0 to y=5, with a
// one-cell gap at (4, 1). Three open rows run beneath the wall.
func gapCosts() [][]float64 {
	costs := make([][]float64, 9)
	for y := range costs {
		costs[y] = []float64{1, 1, 1, 1, 1, 1, 1, 1, 1}
		if y <= 5 && y != 1 {
			costs[y][4] = 0
		}
	}

	return costs
}

//----------------------------------------------------------------------------//
// Preconditions
//----------------------------------------------------------------------------//

func TestSolvePath_Disjoint(t *testing.T) {
	b := network.NewBuilder()
	require.NoError(t, b.AddEdge("A", "B", 1))
	require.NoError(t, b.AddEdge("C", "D", 1))
	n, err := b.Build()
	require.NoError(t, err)

	// Connectivity is checked before the endpoints.
	_, err = solver.SolvePath[string](n, "A", "nowhere")
	require.ErrorIs(t, err, core.ErrDisjointGraph)
}

func TestSolvePath_EndpointsNotOnGraph(t *testing.T) {
	n := loopNetwork(t)

	_, err := solver.SolvePath[string](n, "H", "Z")
	var pe *core.PlaceNotFoundError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "start", pe.Role)
	assert.Equal(t, `core: the start place ("H") is not on the graph`, err.Error())
	require.ErrorIs(t, err, core.ErrPlaceNotOnGraph)

	_, err = solver.SolvePath[string](n, "A", "Z")
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "target", pe.Role)
	assert.Equal(t, "Z", pe.Label)
}

//----------------------------------------------------------------------------//
// Explicit networks
//----------------------------------------------------------------------------//

func TestSolvePath_Loop(t *testing.T) {
	n := loopNetwork(t)

	res, err := solver.SolvePath[string](n, "A", "G")
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []string{"A", "B", "E", "F", "G"}, res.Path)
	assert.Equal(t, 10.0, res.Cost)
	assert.Positive(t, res.Settled)

	// The reverse direction costs the same.
	back, err := solver.SolvePath[string](n, "G", "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"G", "F", "E", "B", "A"}, back.Path)
	assert.Equal(t, 10.0, back.Cost)

	// Pathfinder size has no meaning on explicit graphs.
	big, err := solver.SolvePath[string](n, "A", "G", solver.WithPathfinderSize(50))
	require.NoError(t, err)
	assert.Equal(t, res.Path, big.Path)
}

func TestSolvePath_ClosedPlaceReroutes(t *testing.T) {
	n := loopNetwork(t)
	require.NoError(t, n.SetTerrainCost("F", 0))

	res, err := solver.SolvePath[string](n, "A", "G")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "G"}, res.Path)
	assert.Equal(t, 11.0, res.Cost)
}

func TestSolvePath_NoPath(t *testing.T) {
	n := loopNetwork(t)
	require.NoError(t, n.SetTerrainCost("B", 0))

	res, err := solver.SolvePath[string](n, "A", "G")
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Path)
	assert.Zero(t, res.Cost)
}

func TestSolvePath_StartIsTarget(t *testing.T) {
	res, err := solver.SolvePath[string](loopNetwork(t), "C", "C")
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []string{"C"}, res.Path)
	assert.Zero(t, res.Cost)
	assert.Equal(t, 1, res.Settled)
}

func TestSolvePath_ZeroCostEdgeIsBlocked(t *testing.T) {
	n, err := network.BuildFromEdges([]network.Edge{
		{From: "A", To: "B", Cost: 0},
		{From: "A", To: "C", Cost: 1},
		{From: "C", To: "B", Cost: 1},
	})
	require.NoError(t, err)

	res, err := solver.SolvePath[string](n, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "B"}, res.Path)
}

//----------------------------------------------------------------------------//
// Grids
//----------------------------------------------------------------------------//

func TestSolve_GridWallNoPath(t *testing.T) {
	g, err := grid.BuildFromGrid([][]float64{
		{1, 0, 1},
		{1, 0, 1},
		{1, 0, 1},
	})
	require.NoError(t, err)

	res, err := solver.SolvePathAStar[grid.Coord](g, c(0, 0), c(2, 0))
	require.NoError(t, err)
	assert.False(t, res.Found)
}

func TestSolve_GridDiagonals(t *testing.T) {
	costs := [][]float64{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	}
	g8, err := grid.BuildFromGrid(costs)
	require.NoError(t, err)
	g4, err := grid.BuildFromGrid(costs, grid.WithDiagonals(false))
	require.NoError(t, err)

	res, err := solver.SolvePathAStar[grid.Coord](g8, c(0, 0), c(2, 2))
	require.NoError(t, err)
	assert.Equal(t, []grid.Coord{c(0, 0), c(1, 1), c(2, 2)}, res.Path)
	assert.InDelta(t, 2*1.4142135623730951, res.Cost, 1e-12)

	res, err = solver.SolvePathAStar[grid.Coord](g4, c(0, 0), c(2, 2))
	require.NoError(t, err)
	assert.Len(t, res.Path, 5)
	assert.Equal(t, 4.0, res.Cost)
}

func TestSolve_GridCornerCutDetour(t *testing.T) {
	g, err := grid.BuildFromGrid([][]float64{
		{1, 0, 1},
		{1, 1, 1},
		{1, 1, 1},
	})
	require.NoError(t, err)

	// Both diagonals touching (1, 0) would squeeze past it, so the path goes
	// around in straight steps.
	res, err := solver.SolvePath[grid.Coord](g, c(0, 0), c(2, 0))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []grid.Coord{c(0, 0), c(0, 1), c(1, 1), c(2, 1), c(2, 0)}, res.Path)
	assert.Equal(t, 4.0, res.Cost)
	for i := 1; i < len(res.Path); i++ {
		assert.False(t, g.IsBlocked(res.Path[i-1], res.Path[i], 0))
	}
}

func TestSolve_PathfinderSize(t *testing.T) {
	g, err := grid.BuildFromGrid(gapCosts(), grid.WithPathfinderSizes(1.5))
	require.NoError(t, err)
	start, target := c(1, 1), c(7, 1)

	point, err := solver.SolvePathAStar[grid.Coord](g, start, target)
	require.NoError(t, err)
	require.True(t, point.Found)
	assert.Equal(t, 6.0, point.Cost)
	assert.Contains(t, point.Path, c(4, 1))

	large, err := solver.SolvePathAStar[grid.Coord](g, start, target, solver.WithPathfinderSize(1.5))
	require.NoError(t, err)
	require.True(t, large.Found)
	assert.Greater(t, large.Cost, point.Cost)
	assert.NotContains(t, large.Path, c(4, 1))
	for _, at := range large.Path[1:] {
		f, err := g.PathfinderCanFit(at, 1.5)
		require.NoError(t, err)
		assert.True(t, f.OK, "%v", at)
	}

	dij, err := solver.SolvePath[grid.Coord](g, start, target, solver.WithPathfinderSize(1.5))
	require.NoError(t, err)
	assert.InDelta(t, dij.Cost, large.Cost, 1e-9)
}

func TestSolve_TerrainEditBetweenSolves(t *testing.T) {
	g, err := grid.BuildFromGrid(gapCosts(), grid.WithPathfinderSizes(1.5))
	require.NoError(t, err)

	// Closing the gap forces even a point pathfinder around the wall.
	require.NoError(t, g.SetTerrainCost(c(4, 1), 0))
	res, err := solver.SolvePath[grid.Coord](g, c(1, 1), c(7, 1))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Greater(t, res.Cost, 6.0)

	require.NoError(t, g.SetTerrainCost(c(4, 1), 1))
	res, err = solver.SolvePath[grid.Coord](g, c(1, 1), c(7, 1))
	require.NoError(t, err)
	assert.Equal(t, 6.0, res.Cost)
}

func TestSolve_PathCostRoundTrip(t *testing.T) {
	g, err := grid.BuildFromGrid([][]float64{
		{1, 3, 1, 1, 2},
		{2, 0, 5, 0, 1},
		{1, 1, 1, 0, 1},
		{4, 0, 2, 1, 1},
	})
	require.NoError(t, err)

	res, err := solver.SolvePathAStar[grid.Coord](g, c(0, 0), c(4, 3))
	require.NoError(t, err)
	require.True(t, res.Found)
	cost, err := core.PathCost[grid.Coord](g, res.Path)
	require.NoError(t, err)
	assert.InDelta(t, res.Cost, cost, 1e-12)
}

func TestSolve_Deterministic(t *testing.T) {
	g, err := grid.BuildFromGrid([][]float64{
		{1, 1, 1, 1},
		{1, 1, 1, 1},
		{1, 1, 1, 1},
		{1, 1, 1, 1},
	}, grid.WithDiagonals(false))
	require.NoError(t, err)

	first, err := solver.SolvePath[grid.Coord](g, c(0, 0), c(3, 3))
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := solver.SolvePath[grid.Coord](g, c(0, 0), c(3, 3))
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

//----------------------------------------------------------------------------//
// Cancellation, limits, options, logging
//----------------------------------------------------------------------------//

func TestSolve_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := solver.SolvePath[string](loopNetwork(t), "A", "G", solver.WithContext(ctx))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestSolve_IterationLimit(t *testing.T) {
	g, err := grid.BuildFromGrid(gapCosts())
	require.NoError(t, err)

	_, err = solver.SolvePath[grid.Coord](g, c(0, 0), c(8, 8), solver.WithMaxIterations(3))
	require.ErrorIs(t, err, solver.ErrIterationLimit)

	res, err := solver.SolvePath[grid.Coord](g, c(0, 0), c(0, 1), solver.WithMaxIterations(3))
	require.NoError(t, err)
	assert.True(t, res.Found)
}

func TestOptions(t *testing.T) {
	o := solver.DefaultOptions()
	assert.Equal(t, solver.DefaultMaxIterations, o.MaxIterations)
	assert.Zero(t, o.PathfinderSize)
	assert.NotNil(t, o.Ctx)

	var nilCtx context.Context
	solver.WithContext(nilCtx)(&o)
	assert.NotNil(t, o.Ctx)

	assert.Panics(t, func() { solver.WithPathfinderSize(-1)(&o) })
	assert.Panics(t, func() { solver.WithMaxIterations(0)(&o) })
}

func TestSolve_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := solver.SolvePath[string](loopNetwork(t), "A", "G", solver.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "solve finished")
	assert.Contains(t, buf.String(), "algorithm=dijkstra")
	assert.Contains(t, buf.String(), "cost=10")

	buf.Reset()
	g, err := grid.BuildFromGrid(gapCosts())
	require.NoError(t, err)
	_, err = solver.SolvePathAStar[grid.Coord](g, c(0, 0), c(8, 8),
		solver.WithLogger(logger), solver.WithMaxIterations(2))
	require.ErrorIs(t, err, solver.ErrIterationLimit)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "algorithm=astar")
}
