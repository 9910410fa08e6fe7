package grid_test

import (
	"fmt"

	"github.com/katalvlaran/placepath/grid"
)

// ExampleBuildFromGrid shows the movement rules on a 3×3 ring of costs
// around an impassable centre.
func ExampleBuildFromGrid() {
	g, err := grid.BuildFromGrid([][]float64{
		{1, 2, 3},
		{8, 0, 4},
		{7, 6, 5},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	nbrs, _ := g.Neighbors(grid.Coord{X: 0, Y: 0})
	fmt.Println("neighbours of (0, 0):", nbrs)
	fmt.Printf("cost (0, 0)->(1, 0): %.0f\n", g.CostToLeave(grid.Coord{X: 0, Y: 0}, grid.Coord{X: 1, Y: 0}))
	fmt.Printf("cost (1, 0)->(2, 1): %.3f\n", g.CostToLeave(grid.Coord{X: 1, Y: 0}, grid.Coord{X: 2, Y: 1}))
	fmt.Println("corner cut blocked:", g.IsBlocked(grid.Coord{X: 1, Y: 0}, grid.Coord{X: 2, Y: 1}, 0))

	// Output:
	// neighbours of (0, 0): [(1, 0) (1, 1) (0, 1)]
	// cost (0, 0)->(1, 0): 2
	// cost (1, 0)->(2, 1): 5.657
	// corner cut blocked: true
}

// ExampleGrid_PathfinderCanFit shows a disc as wide as a corridor fitting
// only from the seam between the corridor's two rows.
func ExampleGrid_PathfinderCanFit() {
	g, _ := grid.BuildFromGrid([][]float64{
		{0, 0, 0, 0},
		{1, 1, 1, 1},
		{1, 1, 1, 1},
		{0, 0, 0, 0},
	}, grid.WithPathfinderSizes(2))

	for _, size := range []float64{1, 2, 2.5} {
		f, _ := g.PathfinderCanFit(grid.Coord{X: 1, Y: 1}, size)
		fmt.Printf("size %.1f: fits=%v at (%.1f, %.1f)\n", size, f.OK, f.Point.X, f.Point.Y)
	}

	// Output:
	// size 1.0: fits=true at (1.0, 1.0)
	// size 2.0: fits=true at (1.5, 1.5)
	// size 2.5: fits=false at (0.0, 0.0)
}
