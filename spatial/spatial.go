// Package spatial snaps free points in display space to the nearest location
// of a roadmap.Graph, the way a map click selects a landmark.
//
// Locations are indexed by their layout coordinates in an R-tree. Locations
// declared without a layout are not indexed. Ties in distance resolve to the
// location declared first.
package spatial

import (
	"errors"
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/addisroute/roadmap"
)

var (
	// ErrGraphNil is returned when NewIndex is given a nil graph.
	ErrGraphNil = errors.New("spatial: graph is nil")

	// ErrEmptyIndex is returned by Nearest when no location has a layout.
	ErrEmptyIndex = errors.New("spatial: index is empty")

	// ErrInvalidPoint is returned by Nearest for a NaN or infinite coordinate.
	ErrInvalidPoint = errors.New("spatial: point is not finite")
)

// pointTolerance is the half-width of the box each point occupies in the tree.
const pointTolerance = 1e-6

// candidates is how many R-tree neighbors Nearest re-ranks exactly.
const candidates = 4

// Match is one location found by a query.
type Match struct {
	ID       string    `json:"id"`
	Point    orb.Point `json:"point"`
	Distance float64   `json:"distance"`
}

// entry is one indexed location.
type entry struct {
	id    string
	order int
	point orb.Point
	box   rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *entry) Bounds() rtreego.Rect { return e.box }

// Index is a read-only R-tree over layout coordinates. Safe for concurrent queries.
type Index struct {
	tree    *rtreego.Rtree
	entries []*entry
}

// NewIndex indexes every location of g that has a layout coordinate.
func NewIndex(g *roadmap.Graph) (*Index, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	tree := rtreego.NewTree(2, 2, 8)
	idx := &Index{tree: tree}
	for i, id := range g.Locations() {
		p, ok := g.Layout(id)
		if !ok {
			continue
		}
		e := &entry{
			id:    id,
			order: i,
			point: p,
			box:   rtreego.Point{p.X(), p.Y()}.ToRect(pointTolerance),
		}
		tree.Insert(e)
		idx.entries = append(idx.entries, e)
	}

	return idx, nil
}

// Len returns the number of indexed locations.
func (x *Index) Len() int { return len(x.entries) }

// Nearest returns the location closest to p.
func (x *Index) Nearest(p orb.Point) (Match, error) {
	if !Finite(p) {
		return Match{}, ErrInvalidPoint
	}
	ms := x.NearestN(p, 1)
	if len(ms) == 0 {
		return Match{}, ErrEmptyIndex
	}

	return ms[0], nil
}

// NearestN returns up to k locations ordered by distance from p.
//
// The R-tree window may hold an arbitrary subset of equally distant
// locations. When the k-th match ties with the farthest candidate, the
// query is widened to every location within that distance so ties still
// resolve in declaration order.
func (x *Index) NearestN(p orb.Point, k int) []Match {
	if k <= 0 || len(x.entries) == 0 || !Finite(p) {
		return []Match{}
	}

	n := k + candidates
	if n > len(x.entries) {
		n = len(x.entries)
	}
	found := x.tree.NearestNeighbors(n, rtreego.Point{p.X(), p.Y()})
	out := x.rank(p, found)
	if n < len(x.entries) && len(out) >= k && out[k-1].Distance == out[len(out)-1].Distance {
		out = x.Within(p, out[k-1].Distance)
	}
	if len(out) > k {
		out = out[:k]
	}

	return out
}

// Within returns every location at most radius away from p, nearest first.
func (x *Index) Within(p orb.Point, radius float64) []Match {
	if !(radius >= 0) || math.IsInf(radius, 1) || !Finite(p) {
		return []Match{}
	}
	box, err := rtreego.NewRect(
		rtreego.Point{p.X() - radius, p.Y() - radius},
		[]float64{2*radius + pointTolerance, 2*radius + pointTolerance},
	)
	if err != nil {
		return []Match{}
	}

	out := x.rank(p, x.tree.SearchIntersect(box))
	keep := out[:0]
	for _, m := range out {
		if m.Distance <= radius {
			keep = append(keep, m)
		}
	}

	return keep
}

// Finite reports whether both coordinates of p are neither NaN nor infinite.
func Finite(p orb.Point) bool {
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// rank measures exact distances from p and sorts by (distance, declaration order).
func (x *Index) rank(p orb.Point, found []rtreego.Spatial) []Match {
	hits := make([]*entry, 0, len(found))
	for _, s := range found {
		if e, ok := s.(*entry); ok && e != nil {
			hits = append(hits, e)
		}
	}

	dist := make(map[string]float64, len(hits))
	for _, e := range hits {
		dist[e.id] = planar.Distance(p, e.point)
	}
	sort.Slice(hits, func(i, j int) bool {
		di, dj := dist[hits[i].id], dist[hits[j].id]
		if di != dj {
			return di < dj
		}
		return hits[i].order < hits[j].order
	})

	out := make([]Match, len(hits))
	for i, e := range hits {
		out[i] = Match{ID: e.id, Point: e.point, Distance: dist[e.id]}
	}

	return out
}
