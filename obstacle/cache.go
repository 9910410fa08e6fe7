package obstacle

import (
	"math"
	"slices"
	"sync"

	"github.com/katalvlaran/placepath/core"
)

// state is the tri-state of one (size, cell) entry.
type state uint8

const (
	unknown state = iota
	fits
	blocked
)

// layer memoizes fit answers for one pathfinder size, indexed y*width+x.
type layer struct {
	size   float64
	states []state
	probes []int8
}

func newLayer(size float64, cells int) *layer {
	return &layer{
		size:   size,
		states: make([]state, cells),
		probes: make([]int8, cells),
	}
}

// Cache memoizes Intersector answers per registered pathfinder size.
//
// Entries start unknown and are filled on first query or by Precompute.
// Invalidate clears and recomputes every entry whose answer could depend on an
// edited cell. When a larger size is known to fit a cell at probe k, every
// smaller size fits at some probe <= k, so only the earlier probes are tested.
//
// Get, Precompute, Invalidate and Reset are serialized by an internal mutex;
// the terrain itself must not be mutated concurrently with them.
type Cache struct {
	mu     sync.Mutex
	in     *Intersector
	layers []*layer // sorted by size, largest first
}

// NewCache returns an empty cache over in.
func NewCache(in *Intersector) *Cache {
	return &Cache{in: in}
}

// Register adds a layer for each positive size not already present.
// Sizes <= 0 are ignored: they are answered from passability alone.
func (c *Cache) Register(sizes ...float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, s := range sizes {
		c.layerFor(s)
	}
}

// Sizes returns the registered sizes, largest first.
func (c *Cache) Sizes() []float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]float64, len(c.layers))
	for i, l := range c.layers {
		out[i] = l.size
	}

	return out
}

// Get returns the fit of a size-diameter disc in cell (x, y). Registered sizes
// are computed on first use and memoized; any other size is answered directly
// from the Intersector and never stored, so the cache only grows through
// Register. Out-of-bounds cells are blocked.
func (c *Cache) Get(x, y int, size float64) (Fit, error) {
	if !c.in.Initialized() {
		return blockedFit, core.ErrUninitialized
	}
	if size <= 0 {
		return c.in.fit(x, y, 0, len(Probes)), nil
	}
	if !c.in.InBounds(x, y) {
		return blockedFit, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	i, ok := c.find(size)
	if !ok {
		return c.in.fit(x, y, size, len(Probes)), nil
	}
	idx := y*c.in.Width() + x
	if c.layers[i].states[idx] == unknown {
		c.compute(i, x, y)
	}

	return c.entry(i, x, y), nil
}

// Precompute fills every layer for every cell, largest size first so that the
// smaller layers can reuse the larger answers.
// Complexity: O(S·W·H·ceil(smax/2)²) in the worst case.
func (c *Cache) Precompute() error {
	if !c.in.Initialized() {
		return core.ErrUninitialized
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resize()
	w, h := c.in.Width(), c.in.Height()
	for i := range c.layers {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c.compute(i, x, y)
			}
		}
	}

	return nil
}

// Invalidate recomputes every cached entry that can observe cell (x, y): for
// each size, the cells within Chebyshev radius ceil(size/2), largest size
// first. Entries that were never computed stay unknown.
func (c *Cache) Invalidate(x, y int) {
	if !c.in.Initialized() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// 1) Clear every affected entry before recomputing any, so a smaller layer
	//    never reuses a stale answer from a larger one.
	type cell struct{ x, y int }
	dirty := make([][]cell, len(c.layers))
	w := c.in.Width()
	for i, l := range c.layers {
		reach := int(math.Ceil(l.size / 2))
		for cy := y - reach; cy <= y+reach; cy++ {
			for cx := x - reach; cx <= x+reach; cx++ {
				if !c.in.InBounds(cx, cy) {
					continue
				}
				idx := cy*w + cx
				if l.states[idx] == unknown {
					continue
				}
				l.states[idx] = unknown
				dirty[i] = append(dirty[i], cell{cx, cy})
			}
		}
	}

	// 2) Recompute, largest layer first.
	for i, cells := range dirty {
		for _, p := range cells {
			c.compute(i, p.x, p.y)
		}
	}
}

// Reset forgets every memoized answer and resizes the layers to the current
// terrain. Registered sizes are kept.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resize()
	for _, l := range c.layers {
		clear(l.states)
		clear(l.probes)
	}
}

// find locates the layer for size in the descending layer list. When absent,
// i is the insertion position. Caller holds mu.
func (c *Cache) find(size float64) (i int, found bool) {
	return slices.BinarySearchFunc(c.layers, size, func(l *layer, s float64) int {
		switch {
		case l.size > s:
			return -1
		case l.size < s:
			return 1
		default:
			return 0
		}
	})
}

// layerFor returns the index of the layer for size, inserting one in
// descending position if absent. Caller holds mu.
func (c *Cache) layerFor(size float64) int {
	if size <= 0 {
		return -1
	}
	i, found := c.find(size)
	if !found {
		c.layers = slices.Insert(c.layers, i, newLayer(size, c.in.Width()*c.in.Height()))
	}

	return i
}

// resize reallocates layers whose length no longer matches the terrain.
// Caller holds mu.
func (c *Cache) resize() {
	n := c.in.Width() * c.in.Height()
	for _, l := range c.layers {
		if len(l.states) != n {
			l.states = make([]state, n)
			l.probes = make([]int8, n)
		}
	}
}

// compute fills layer i at (x, y). If the next larger layer knows the cell
// fits at probe k, only probes before k are tested and k is the fallback.
// Caller holds mu.
func (c *Cache) compute(i, x, y int) {
	l := c.layers[i]
	idx := y*c.in.Width() + x

	limit := len(Probes)
	fallback := -1
	if i > 0 {
		larger := c.layers[i-1]
		if larger.states[idx] == fits {
			fallback = int(larger.probes[idx])
			limit = fallback
		}
	}

	f := c.in.fit(x, y, l.size, limit)
	switch {
	case f.OK:
		l.states[idx], l.probes[idx] = fits, int8(f.Probe)
	case fallback >= 0:
		l.states[idx], l.probes[idx] = fits, int8(fallback)
	default:
		l.states[idx], l.probes[idx] = blocked, -1
	}
}

// entry materializes the memoized answer of layer i at (x, y). Caller holds mu.
func (c *Cache) entry(i, x, y int) Fit {
	l := c.layers[i]
	idx := y*c.in.Width() + x
	if l.states[idx] != fits {
		return blockedFit
	}
	k := int(l.probes[idx])
	p := Probes[k]
	p.X += float64(x)
	p.Y += float64(y)

	return Fit{Point: p, Probe: k, OK: true}
}
