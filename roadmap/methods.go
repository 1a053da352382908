// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Read-only queries over a built Graph.
// Determinism:
//   - Locations() returns declaration order.
//   - Neighbors(id) returns id's declared neighbor order.
// Concurrency:
//   - No locks; the Graph is never written after Build.

package roadmap

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb"
)

// Locations returns all location names in declaration order.
// The returned slice is a copy.
func (g *Graph) Locations() []string {
	return append([]string(nil), g.order...)
}

// LocationCount returns the number of locations.
func (g *Graph) LocationCount() int { return len(g.order) }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// HasLocation reports whether id is a canonical location name (case-sensitive).
func (g *Graph) HasLocation(id string) bool {
	_, ok := g.adj[id]
	return ok
}

// Resolve maps name to its canonical location key by exact case-insensitive
// match. No trimming and no partial matching is performed.
func (g *Graph) Resolve(name string) (string, bool) {
	id, ok := g.fold[strings.ToLower(name)]
	return id, ok
}

// Neighbors returns id's neighbors in declared order.
// Returns ErrLocationNotFound for an unknown id. The returned slice is a copy.
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	nbs, ok := g.adj[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrLocationNotFound, id)
	}

	return append([]Neighbor(nil), nbs...), nil
}

// HasEdge reports whether from and to are adjacent.
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.weight[from][to]
	return ok
}

// EdgeWeight returns the weight of the edge from→to and whether it exists.
func (g *Graph) EdgeWeight(from, to string) (int64, bool) {
	w, ok := g.weight[from][to]
	return w, ok
}

// Edges returns every undirected edge once, in first-declared order.
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// Coordinate returns the heuristic coordinate of id.
func (g *Graph) Coordinate(id string) (orb.Point, bool) {
	p, ok := g.coord[id]
	return p, ok
}

// Layout returns the display coordinate of id, if one was declared.
func (g *Graph) Layout(id string) (orb.Point, bool) {
	p, ok := g.layout[id]
	return p, ok
}

// PathCost returns the sum of edge weights along path.
// A path of zero or one location costs 0. If any consecutive pair is not
// adjacent, PathCost returns ErrInconsistentEdge naming the pair; callers
// must treat that as a broken invariant, not as a zero cost.
func (g *Graph) PathCost(path []string) (int64, error) {
	var cost int64
	for i := 0; i+1 < len(path); i++ {
		w, ok := g.weight[path[i]][path[i+1]]
		if !ok {
			return 0, fmt.Errorf("%w: %q→%q at step %d", ErrInconsistentEdge, path[i], path[i+1], i)
		}
		cost += w
	}

	return cost, nil
}
