package core

import "fmt"

// PathCost sums CostToLeave along consecutive pairs of path.
//
// An empty or single-place path costs 0. Every label must be on the graph and
// every consecutive pair must be a passable transition (CostToLeave > 0);
// otherwise the returned error wraps ErrPlaceNotOnGraph or ErrNotAdjacent.
//
// Complexity: O(len(path)).
func PathCost[L comparable](g Graph[L], path []L) (float64, error) {
	var total float64
	for i, label := range path {
		if !g.HasPlace(label) {
			return 0, fmt.Errorf("%w: %v at index %d", ErrPlaceNotOnGraph, label, i)
		}
		if i == 0 {
			continue
		}
		c := g.CostToLeave(path[i-1], label)
		if c <= 0 {
			return 0, fmt.Errorf("%w: %s at index %d", ErrNotAdjacent, PairLocation(path[i-1], label), i)
		}
		total += c
	}

	return total, nil
}
