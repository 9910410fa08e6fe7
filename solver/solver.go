package solver

import (
	"fmt"
	"slices"
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/placepath/connectivity"
	"github.com/katalvlaran/placepath/core"
)

// SolvePath finds a cheapest path from start to target with Dijkstra's
// algorithm.
//
// Preconditions, checked in order:
//  1. g is connected (error wrapping core.ErrDisjointGraph).
//  2. start is on g (*core.PlaceNotFoundError, role "start").
//  3. target is on g (*core.PlaceNotFoundError, role "target").
//
// An unreachable target is not an error: Result.Found is false.
// Cancellation returns the context's error wrapped; exhausting MaxIterations
// returns ErrIterationLimit.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
func SolvePath[L comparable](g core.Graph[L], start, target L, opts ...Option) (Result[L], error) {
	return solve[L](g, nil, "dijkstra", start, target, opts)
}

// SolvePathAStar is SolvePath ordered by cost plus g.HeuristicDistance to the
// target. With an admissible, consistent heuristic it returns a path of the
// same cost as SolvePath while settling no more places.
func SolvePathAStar[L comparable](g core.Measurable[L], start, target L, opts ...Option) (Result[L], error) {
	return solve[L](g, g.HeuristicDistance, "astar", start, target, opts)
}

// runner holds the mutable state of a single solve. Nothing outlives the call.
type runner[L comparable] struct {
	g       core.Graph[L]
	h       func(a, b L) float64 // nil under Dijkstra
	target  L
	cfg     Options
	dist    map[L]float64
	prev    map[L]L
	settled mapset.Set[L]
	pq      *frontier[L]
}

func solve[L comparable](g core.Graph[L], h func(a, b L) float64, algo string, start, target L, opts []Option) (res Result[L], err error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	defer func(begin time.Time) {
		cfg.Metrics.observe(algo, res.Found, res.Settled, err, time.Since(begin))
	}(time.Now())

	// 2) Validate topology, then the endpoints.
	if err := connectivity.Check(g); err != nil {
		return Result[L]{}, err
	}
	if !g.HasPlace(start) {
		return Result[L]{}, core.NewPlaceNotFound("start", start)
	}
	if !g.HasPlace(target) {
		return Result[L]{}, core.NewPlaceNotFound("target", target)
	}

	// 3) Search.
	r := &runner[L]{
		g:       g,
		h:       h,
		target:  target,
		cfg:     cfg,
		dist:    make(map[L]float64),
		prev:    make(map[L]L),
		settled: mapset.New[L](),
		pq:      newFrontier[L](),
	}
	r.init(start)
	found, err := r.process()
	log := cfg.Logger.With("algorithm", algo, "start", start, "target", target)
	if err != nil {
		log.Warn("solve aborted", "settled", r.settled.Size(), "err", err)
		return Result[L]{Settled: r.settled.Size()}, err
	}

	// 4) Reconstruct.
	res = Result[L]{Settled: r.settled.Size()}
	if found {
		res.Found = true
		res.Cost = r.dist[target]
		res.Path = r.path(start)
	}
	log.Debug("solve finished",
		"found", res.Found, "cost", res.Cost,
		"settled", res.Settled, "path_len", len(res.Path))

	return res, nil
}

// init seeds the frontier with start at cost 0.
func (r *runner[L]) init(start L) {
	r.dist[start] = 0
	r.pq.push(start, 0, r.estimate(start))
}

// estimate is the heuristic remainder from label, or 0 under Dijkstra.
func (r *runner[L]) estimate(label L) float64 {
	if r.h == nil {
		return 0
	}

	return r.h(label, r.target)
}

// process pops the frontier until the target is settled or the frontier is
// empty. It reports whether the target was reached.
func (r *runner[L]) process() (bool, error) {
	pops := 0
	for r.pq.len() > 0 {
		// 1) Cancellation check between pops.
		select {
		case <-r.cfg.Ctx.Done():
			return false, fmt.Errorf("solver: %w", r.cfg.Ctx.Err())
		default:
		}

		// 2) Iteration cap.
		if pops >= r.cfg.MaxIterations {
			return false, fmt.Errorf("%w: %d pops", ErrIterationLimit, pops)
		}
		pops++

		// 3) Pop; skip stale records.
		e, _ := r.pq.pop()
		if r.settled.Has(e.label) || e.cost > r.dist[e.label] {
			continue
		}
		r.settled.Put(e.label)

		// 4) Target settled: its cost is final.
		if e.label == r.target {
			return true, nil
		}

		if err := r.relax(e.label); err != nil {
			return false, err
		}
	}

	return false, nil
}

// relax offers a cheaper route through u to every unblocked neighbour.
func (r *runner[L]) relax(u L) error {
	nbrs, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("solver: neighbours of %v: %w", u, err)
	}
	for _, v := range nbrs {
		if r.settled.Has(v) || r.g.IsBlocked(u, v, r.cfg.PathfinderSize) {
			continue
		}
		step := r.g.CostToLeave(u, v)
		if step <= 0 {
			continue
		}
		// Strictly better only; equal costs keep the first predecessor.
		nd := r.dist[u] + step
		if old, ok := r.dist[v]; ok && nd >= old {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		r.pq.push(v, nd, nd+r.estimate(v))
	}

	return nil
}

// path walks predecessors back from the target.
func (r *runner[L]) path(start L) []L {
	p := []L{r.target}
	for at := r.target; at != start; {
		at = r.prev[at]
		p = append(p, at)
	}
	slices.Reverse(p)

	return p
}
