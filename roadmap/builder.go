// SPDX-License-Identifier: MIT
//
// File: builder.go
// Role: Builder collects locations and neighbor lists, Build validates and freezes them.
// Determinism:
//   - Locations keep declaration order; each neighbor list keeps its own declared order.
//   - Edges() order is the order in which each undirected edge was first declared.

package roadmap

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb"
)

// Builder accumulates declarations for a Graph. It is not safe for concurrent use;
// the Graph it builds is.
type Builder struct {
	locs []*location
	byID map[string]*location
	err  error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{byID: make(map[string]*location)}
}

// AddLocation declares a location with its heuristic coordinate.
// The first error recorded by any Add* call is returned by Build.
func (b *Builder) AddLocation(id string, coord orb.Point, opts ...LocationOption) *Builder {
	if b.err != nil {
		return b
	}
	if id == "" {
		b.err = ErrEmptyLocation
		return b
	}
	for _, l := range b.locs {
		if strings.EqualFold(l.id, id) {
			b.err = fmt.Errorf("%w: %q", ErrDuplicateLocation, id)
			return b
		}
	}
	l := &location{id: id, coord: coord}
	for _, opt := range opts {
		opt(l)
	}
	b.locs = append(b.locs, l)
	b.byID[id] = l

	return b
}

// AddNeighbors appends neighbors to id's adjacency list in the given order.
// id must already be declared; neighbors are checked by Build.
func (b *Builder) AddNeighbors(id string, nbs ...Neighbor) *Builder {
	if b.err != nil {
		return b
	}
	l, ok := b.byID[id]
	if !ok {
		b.err = fmt.Errorf("%w: %q", ErrLocationNotFound, id)
		return b
	}
	l.neighbors = append(l.neighbors, nbs...)

	return b
}

// Build validates the declarations and returns the frozen Graph.
//
// Validation order per location: self-loop, weight, unknown neighbor,
// duplicate neighbor; then symmetry over every edge.
func (b *Builder) Build() (*Graph, error) {
	if b.err != nil {
		return nil, b.err
	}

	n := len(b.locs)
	g := &Graph{
		order:  make([]string, 0, n),
		adj:    make(map[string][]Neighbor, n),
		weight: make(map[string]map[string]int64, n),
		fold:   make(map[string]string, n),
		coord:  make(map[string]orb.Point, n),
		layout: make(map[string]orb.Point, n),
	}

	for _, l := range b.locs {
		g.order = append(g.order, l.id)
		g.fold[strings.ToLower(l.id)] = l.id
		g.coord[l.id] = l.coord
		if l.hasLayout {
			g.layout[l.id] = l.layout
		}
	}

	for _, l := range b.locs {
		w := make(map[string]int64, len(l.neighbors))
		for _, nb := range l.neighbors {
			switch {
			case nb.ID == l.id:
				return nil, fmt.Errorf("%w: %q", ErrSelfLoop, l.id)
			case nb.Weight <= 0:
				return nil, fmt.Errorf("%w: %q→%q weight=%d", ErrNonPositiveWeight, l.id, nb.ID, nb.Weight)
			}
			if _, ok := b.byID[nb.ID]; !ok {
				return nil, fmt.Errorf("%w: %q→%q", ErrUnknownNeighbor, l.id, nb.ID)
			}
			if _, dup := w[nb.ID]; dup {
				return nil, fmt.Errorf("%w: %q→%q", ErrDuplicateNeighbor, l.id, nb.ID)
			}
			w[nb.ID] = nb.Weight
		}
		g.weight[l.id] = w
		g.adj[l.id] = append([]Neighbor(nil), l.neighbors...)
	}

	// Symmetry, and the undirected edge list in first-declared order.
	seen := make(map[[2]string]bool)
	for _, id := range g.order {
		for _, nb := range g.adj[id] {
			back, ok := g.weight[nb.ID][id]
			if !ok || back != nb.Weight {
				return nil, fmt.Errorf("%w: %q→%q weight=%d", ErrAsymmetricEdge, id, nb.ID, nb.Weight)
			}
			key := [2]string{id, nb.ID}
			if nb.ID < id {
				key = [2]string{nb.ID, id}
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			g.edges = append(g.edges, Edge{From: id, To: nb.ID, Weight: nb.Weight})
		}
	}

	return g, nil
}

// MustBuild is like Build but panics on error. It is meant for compiled-in datasets.
func (b *Builder) MustBuild() *Graph {
	g, err := b.Build()
	if err != nil {
		panic(err)
	}

	return g
}
