// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors, Neighbor/Edge/Graph types and location options.

package roadmap

import (
	"errors"

	"github.com/paulmach/orb"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrEmptyLocation indicates a location was declared with an empty name.
	ErrEmptyLocation = errors.New("roadmap: location name is empty")

	// ErrDuplicateLocation indicates the same name was declared twice, ignoring case.
	ErrDuplicateLocation = errors.New("roadmap: duplicate location")

	// ErrLocationNotFound indicates a query referenced an unknown location.
	ErrLocationNotFound = errors.New("roadmap: location not found")

	// ErrUnknownNeighbor indicates a neighbor list names an undeclared location.
	ErrUnknownNeighbor = errors.New("roadmap: neighbor is not a declared location")

	// ErrDuplicateNeighbor indicates a neighbor appears twice in one list.
	ErrDuplicateNeighbor = errors.New("roadmap: duplicate neighbor")

	// ErrSelfLoop indicates a location lists itself as a neighbor.
	ErrSelfLoop = errors.New("roadmap: self-loop not allowed")

	// ErrNonPositiveWeight indicates an edge weight of zero or less.
	ErrNonPositiveWeight = errors.New("roadmap: edge weight must be positive")

	// ErrAsymmetricEdge indicates A→B exists without a matching B→A of equal weight.
	ErrAsymmetricEdge = errors.New("roadmap: edge is not symmetric")

	// ErrInconsistentEdge indicates two consecutive path locations share no edge.
	ErrInconsistentEdge = errors.New("roadmap: no edge between consecutive path locations")
)

// Neighbor is one entry of a location's adjacency list.
type Neighbor struct {
	// ID is the neighbor's canonical location name.
	ID string `json:"id"`

	// Weight is the positive cost of the edge to ID.
	Weight int64 `json:"weight"`
}

// Edge is an undirected edge reported once, From being the endpoint declared first.
type Edge struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Weight int64  `json:"weight"`
}

// LocationOption configures a location when it is declared.
type LocationOption func(*location)

// WithLayout attaches display coordinates to a location. Layout coordinates
// are a separate input from heuristic coordinates and never feed the heuristic.
func WithLayout(p orb.Point) LocationOption {
	return func(l *location) {
		l.layout = p
		l.hasLayout = true
	}
}

// location is the builder-side record of a declared location.
type location struct {
	id        string
	coord     orb.Point
	layout    orb.Point
	hasLayout bool
	neighbors []Neighbor
}

// Graph is an immutable weighted undirected graph of named locations.
//
// order keeps declaration order for Locations(); adj keeps each location's
// neighbors in declared order; weight mirrors adj for O(1) edge lookups;
// fold maps lower-cased names to canonical keys for Resolve.
type Graph struct {
	order  []string
	adj    map[string][]Neighbor
	weight map[string]map[string]int64
	fold   map[string]string
	coord  map[string]orb.Point
	layout map[string]orb.Point
	edges  []Edge
}
