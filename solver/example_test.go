package solver_test

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/placepath/grid"
	"github.com/katalvlaran/placepath/network"
	"github.com/katalvlaran/placepath/solver"
)

// ExampleSolvePath finds the cheaper of two routes around a loop.
//
//	      E -3- F -3- G
//	      |           |
//	      2           2
//	      |           |
//	A -2- B -5- C -2- D
func ExampleSolvePath() {
	n, err := network.BuildFromEdges([]network.Edge{
		{From: "A", To: "B", Cost: 2},
		{From: "B", To: "C", Cost: 5},
		{From: "C", To: "D", Cost: 2},
		{From: "D", To: "G", Cost: 2},
		{From: "G", To: "F", Cost: 3},
		{From: "F", To: "E", Cost: 3},
		{From: "E", To: "B", Cost: 2},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := solver.SolvePath[string](n, "A", "G")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path, res.Cost)

	// Output: [A B E F G] 10
}

// ExampleSolvePathAStar routes a point and a wide pathfinder past a wall
// with a one-cell gap.
func ExampleSolvePathAStar() {
	g, err := grid.BuildFromGrid([][]float64{
		{1, 1, 0, 1, 1},
		{1, 1, 1, 1, 1},
		{1, 1, 0, 1, 1},
		{1, 1, 0, 1, 1},
		{1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1},
	}, grid.WithDiagonals(false))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	start, target := grid.Coord{X: 0, Y: 1}, grid.Coord{X: 4, Y: 1}
	gap := grid.Coord{X: 2, Y: 1}

	for _, size := range []float64{0, 1.2} {
		res, err := solver.SolvePathAStar[grid.Coord](g, start, target, solver.WithPathfinderSize(size))
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("size %.1f: cost %.0f, through gap: %v\n", size, res.Cost, slices.Contains(res.Path, gap))
	}

	// Output:
	// size 0.0: cost 4, through gap: true
	// size 1.2: cost 10, through gap: false
}
