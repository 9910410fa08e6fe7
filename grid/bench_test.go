package grid_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/placepath/grid"
)

// benchCosts returns an n×n grid where about one cell in five is impassable.
func benchCosts(n int) [][]float64 {
	r := rand.New(rand.NewPCG(42, 42))
	costs := make([][]float64, n)
	for y := range costs {
		costs[y] = make([]float64, n)
		for x := range costs[y] {
			if r.IntN(5) > 0 {
				costs[y][x] = float64(1 + r.IntN(4))
			}
		}
	}

	return costs
}

// BenchmarkBuildFromGrid_Precompute measures building a 200×200 grid with
// three cached pathfinder sizes.
func BenchmarkBuildFromGrid_Precompute(b *testing.B) {
	costs := benchCosts(200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := grid.BuildFromGrid(costs, grid.WithPathfinderSizes(1, 2, 3)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGrid_SetTerrainCostFlip measures a passability flip with three
// cached sizes, which recomputes the cache around the edited cell.
func BenchmarkGrid_SetTerrainCostFlip(b *testing.B) {
	g, err := grid.BuildFromGrid(benchCosts(200), grid.WithPathfinderSizes(1, 2, 3))
	if err != nil {
		b.Fatal(err)
	}
	at := grid.Coord{X: 100, Y: 100}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.SetTerrainCost(at, float64(i%2))
	}
}
