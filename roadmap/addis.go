package roadmap

import (
	"sync"

	"github.com/paulmach/orb"
)

// Addis Ababa landmark names, as they appear in the compiled-in graph.
const (
	MeskelSquare = "Meskel Square"
	Bole         = "Bole"
	Megenagna    = "Megenagna"
	FourKilo     = "4 Kilo"
	SixKilo      = "6 Kilo"
	Piazza       = "Piazza"
	Merkato      = "Merkato"
	Mexico       = "Mexico"
	Sarbet       = "Sarbet"
	Gotera       = "Gotera"
	CMC          = "CMC"
	Kality       = "Kality"
	Mekanisa     = "Mekanisa"
)

// addisLocation is one row of the compiled-in dataset.
type addisLocation struct {
	id        string
	coord     orb.Point // heuristic space, roughly km-ish grid units
	layout    orb.Point // display space, 0..100 on both axes
	neighbors []Neighbor
}

// addisData is the hand-authored dataset. Edge weights are approximate
// relative travel distances; neighbor order is significant.
var addisData = []addisLocation{
	{MeskelSquare, orb.Point{0, 0}, orb.Point{50, 50}, []Neighbor{{Bole, 5}, {Megenagna, 6}, {FourKilo, 4}, {Mexico, 3}, {Gotera, 5}}},
	{Bole, orb.Point{5, 1}, orb.Point{80, 55}, []Neighbor{{MeskelSquare, 5}, {Megenagna, 4}, {Gotera, 6}, {CMC, 7}}},
	{Megenagna, orb.Point{4, 4}, orb.Point{75, 30}, []Neighbor{{Bole, 4}, {MeskelSquare, 6}, {FourKilo, 5}, {CMC, 5}}},
	{FourKilo, orb.Point{0, 4}, orb.Point{50, 25}, []Neighbor{{MeskelSquare, 4}, {Megenagna, 5}, {Piazza, 3}, {SixKilo, 2}}},
	{SixKilo, orb.Point{0, 6}, orb.Point{50, 10}, []Neighbor{{FourKilo, 2}, {Piazza, 3}}},
	{Piazza, orb.Point{-3, 4}, orb.Point{35, 25}, []Neighbor{{FourKilo, 3}, {SixKilo, 3}, {Mexico, 4}, {Merkato, 2}}},
	{Merkato, orb.Point{-5, 2}, orb.Point{20, 35}, []Neighbor{{Piazza, 2}, {Mexico, 3}}},
	{Mexico, orb.Point{-3, 0}, orb.Point{35, 50}, []Neighbor{{MeskelSquare, 3}, {Piazza, 4}, {Merkato, 3}, {Sarbet, 4}}},
	{Sarbet, orb.Point{-3, -4}, orb.Point{30, 70}, []Neighbor{{Mexico, 4}, {Gotera, 5}, {Mekanisa, 4}}},
	{Gotera, orb.Point{1, -5}, orb.Point{60, 75}, []Neighbor{{MeskelSquare, 5}, {Bole, 6}, {Sarbet, 5}, {Kality, 6}}},
	{CMC, orb.Point{9, 5}, orb.Point{95, 35}, []Neighbor{{Bole, 7}, {Megenagna, 5}}},
	{Kality, orb.Point{2, -9}, orb.Point{65, 95}, []Neighbor{{Gotera, 6}}},
	{Mekanisa, orb.Point{-5, -6}, orb.Point{20, 85}, []Neighbor{{Sarbet, 4}}},
}

var (
	addisOnce  sync.Once
	addisGraph *Graph
)

// AddisAbaba returns the compiled-in Addis Ababa landmark graph.
// The same immutable *Graph is returned on every call.
func AddisAbaba() *Graph {
	addisOnce.Do(func() {
		b := NewBuilder()
		for _, l := range addisData {
			b.AddLocation(l.id, l.coord, WithLayout(l.layout))
		}
		for _, l := range addisData {
			b.AddNeighbors(l.id, l.neighbors...)
		}
		addisGraph = b.MustBuild()
	})

	return addisGraph
}
