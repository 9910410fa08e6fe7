package network

import (
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/placepath/core"
)

// Builder assembles a Network one place or edge at a time. Places are kept
// in first-declaration order, which becomes the Network's label order.
//
// A Builder is not safe for concurrent use and must not be reused after Build.
type Builder struct {
	opts   Options
	order  []string
	places map[string]*core.Place[string]
	costs  map[pair]float64
	edges  int

	// seen holds unordered pairs, smaller label first.
	seen mapset.Set[pair]
}

// NewBuilder returns an empty Builder.
func NewBuilder(opts ...Option) *Builder {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Builder{
		opts:   cfg,
		places: make(map[string]*core.Place[string]),
		costs:  make(map[pair]float64),
		seen:   mapset.New[pair](),
	}
}

// AddPlace declares a place. Declaring an existing place is a no-op, so
// isolated places can be added before or after their edges.
func (b *Builder) AddPlace(label string) error {
	if label == "" {
		return &core.BuildError{Kind: core.EmptyLabel}
	}
	b.place(label)

	return nil
}

// AddEdge declares an undirected edge and both of its places.
//
// Returns a *core.BuildError of kind EmptyLabel, SelfLoop, InvalidCost (cost
// < 0) or DuplicateEdge (the unordered pair was already declared, in either
// orientation). Nothing is recorded when an error is returned.
func (b *Builder) AddEdge(from, to string, cost float64) error {
	if from == "" || to == "" {
		return &core.BuildError{Kind: core.EmptyLabel, Location: core.PairLocation(from, to)}
	}
	if from == to {
		return &core.BuildError{Kind: core.SelfLoop, Location: core.PairLocation(from, to)}
	}
	if cost < 0 || math.IsNaN(cost) {
		return &core.BuildError{Kind: core.InvalidCost, Cost: cost, Location: core.PairLocation(from, to)}
	}
	key := pair{from, to}
	if to < from {
		key = pair{to, from}
	}
	if b.seen.Has(key) {
		return &core.BuildError{Kind: core.DuplicateEdge, Location: core.PairLocation(from, to)}
	}
	b.seen.Put(key)

	b.place(from).Link(to)
	b.place(to).Link(from)
	b.costs[pair{from, to}] = cost
	b.costs[pair{to, from}] = cost
	b.edges++

	return nil
}

// Build returns the assembled Network. Every place starts with terrain cost 1.
func (b *Builder) Build() (*Network, error) {
	n := &Network{
		order:   b.order,
		places:  b.places,
		costs:   b.costs,
		terrain: make(map[string]float64, len(b.order)),
		log:     b.opts.Logger,
	}
	for _, l := range b.order {
		n.terrain[l] = 1
	}
	n.log.Debug("network built", "places", len(b.order), "edges", b.edges)

	return n, nil
}

// place returns the place for label, creating it on first use.
func (b *Builder) place(label string) *core.Place[string] {
	if p, ok := b.places[label]; ok {
		return p
	}
	p := core.NewPlace(label)
	b.places[label] = p
	b.order = append(b.order, label)

	return p
}
