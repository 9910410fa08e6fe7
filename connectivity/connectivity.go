// Package connectivity decides whether every place of a graph can reach every
// other place through declared adjacency.
//
// Reachability here is topological: terrain costs, blocked moves and
// pathfinder sizes are not consulted. A graph that passes Check may still
// hold start/target pairs with no usable path; the solver reports those as
// Result.Found == false.
//
// Complexity: O(V + E) time, O(V) memory, for both Check and Components.
package connectivity

import (
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/placepath/core"
)

// Check sweeps g from its first label with an explicit stack and returns an
// error wrapping core.ErrDisjointGraph if any place is left unvisited.
// A graph with zero or one place is connected.
func Check[L comparable](g core.Graph[L]) error {
	labels := g.Labels()
	if len(labels) == 0 {
		return nil
	}
	visited, err := sweep(g, labels[0], mapset.New[L]())
	if err != nil {
		return err
	}
	if visited.Size() != len(labels) {
		return fmt.Errorf("%w: reached %d of %d places from %v",
			core.ErrDisjointGraph, visited.Size(), len(labels), labels[0])
	}

	return nil
}

// Components returns every connected component of g. Components are ordered
// by their first label in g.Labels(), and each component lists its members
// in that same order.
func Components[L comparable](g core.Graph[L]) ([][]L, error) {
	labels := g.Labels()
	rank := make(map[L]int, len(labels))
	for i, l := range labels {
		rank[l] = i
	}

	seen := mapset.New[L]()
	var comps [][]L
	for _, l := range labels {
		if seen.Has(l) {
			continue
		}
		comp := mapset.New[L]()
		if _, err := sweep(g, l, comp); err != nil {
			return nil, err
		}
		members := make([]L, 0, comp.Size())
		comp.Each(func(m L) {
			seen.Put(m)
			members = append(members, m)
		})
		slices.SortFunc(members, func(a, b L) int { return rank[a] - rank[b] })
		comps = append(comps, members)
	}

	return comps, nil
}

// sweep adds every place reachable from start to visited and returns it.
func sweep[L comparable](g core.Graph[L], start L, visited mapset.Set[L]) (mapset.Set[L], error) {
	stack := []L{start}
	visited.Put(start)
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		nbrs, err := g.Neighbors(u)
		if err != nil {
			return visited, fmt.Errorf("connectivity: neighbours of %v: %w", u, err)
		}
		for _, v := range nbrs {
			if visited.Has(v) {
				continue
			}
			visited.Put(v)
			stack = append(stack, v)
		}
	}

	return visited, nil
}
