// Package heuristic provides straight-line distance estimates between
// locations of a roadmap.Graph, used to rank greedy best-first candidates.
//
// The estimate is computed from the graph's heuristic coordinates, never from
// its display layout.
package heuristic

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/addisroute/roadmap"
)

// ErrNoCoordinate is returned when a location has no heuristic coordinate.
var ErrNoCoordinate = errors.New("heuristic: location has no coordinate")

// Func estimates the distance from node to goal. Implementations must be
// pure: the same inputs always yield the same value.
type Func func(node, goal string) (float64, error)

// Euclidean returns a Func computing planar straight-line distance between
// the heuristic coordinates of node and goal in g.
func Euclidean(g *roadmap.Graph) Func {
	return func(node, goal string) (float64, error) {
		p, ok := g.Coordinate(node)
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrNoCoordinate, node)
		}
		q, ok := g.Coordinate(goal)
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrNoCoordinate, goal)
		}

		return planar.Distance(p, q), nil
	}
}

// Zero returns a Func that always estimates 0. Under it, greedy search
// orders candidates by accumulated cost alone.
func Zero() Func {
	return func(string, string) (float64, error) { return 0, nil }
}
