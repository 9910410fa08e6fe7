package solver

import "github.com/zyedidia/generic/heap"

// entry is one frontier record. Stale records are skipped when popped.
type entry[L comparable] struct {
	label    L
	cost     float64 // cost from start when pushed
	priority float64 // cost, plus the heuristic under A*
	seq      uint64  // push order; breaks priority ties
}

// frontier is a min-heap of entries ordered by (priority, seq), so equal
// priorities pop in push order and every solve is reproducible.
type frontier[L comparable] struct {
	h   *heap.Heap[entry[L]]
	seq uint64
}

func newFrontier[L comparable]() *frontier[L] {
	return &frontier[L]{
		h: heap.New(func(a, b entry[L]) bool {
			if a.priority != b.priority {
				return a.priority < b.priority
			}

			return a.seq < b.seq
		}),
	}
}

func (f *frontier[L]) push(label L, cost, priority float64) {
	f.h.Push(entry[L]{label: label, cost: cost, priority: priority, seq: f.seq})
	f.seq++
}

func (f *frontier[L]) pop() (entry[L], bool) { return f.h.Pop() }

func (f *frontier[L]) len() int { return f.h.Size() }
