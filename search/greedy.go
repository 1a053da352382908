package search

import (
	"container/heap"
	"fmt"
)

// greedy runs greedy best-first search from start.
//
// The frontier is ordered by heuristic distance to the goal only. The
// accumulated edge cost is carried solely to break heuristic ties (lower
// first); equal (heuristic, cost) pairs pop in insertion order. This is not
// A*: the cost never joins the priority key, so the returned path need not
// be the cheapest.
func (w *walker) greedy(start string) ([]string, error) {
	h, err := w.estimate(start)
	if err != nil {
		return nil, err
	}

	pq := make(frontierPQ, 0, w.graph.LocationCount())
	heap.Init(&pq)
	var seq uint64
	heap.Push(&pq, &frontierItem{h: h, g: 0, seq: seq, node: start, path: []string{start}})

	processed := make(map[string]bool, w.graph.LocationCount())
	for pq.Len() > 0 {
		if err = w.tick(); err != nil {
			return nil, err
		}

		item := heap.Pop(&pq).(*frontierItem)
		if processed[item.node] {
			continue
		}
		processed[item.node] = true
		if err = w.explore(item.node); err != nil {
			return nil, err
		}
		if item.node == w.goal {
			return item.path, nil
		}

		nbs, err := w.neighbors(item.node)
		if err != nil {
			return nil, err
		}
		for _, nb := range nbs {
			if processed[nb.ID] || w.blocked.Contains(nb.ID) {
				continue
			}
			if h, err = w.estimate(nb.ID); err != nil {
				return nil, err
			}
			seq++
			heap.Push(&pq, &frontierItem{
				h:    h,
				g:    item.g + nb.Weight,
				seq:  seq,
				node: nb.ID,
				path: extend(item.path, nb.ID),
			})
		}
	}

	return nil, nil
}

// estimate returns the heuristic distance from node to the goal.
func (w *walker) estimate(node string) (float64, error) {
	h, err := w.heuristic(node, w.goal)
	if err != nil {
		return 0, fmt.Errorf("search: heuristic %q→%q: %w", node, w.goal, err)
	}

	return h, nil
}

// frontierItem is one greedy frontier entry.
type frontierItem struct {
	h    float64  // straight-line distance to goal; the priority
	g    int64    // accumulated edge cost from start; first tie-break
	seq  uint64   // insertion order; second tie-break
	node string   // last location of path
	path []string // start … node
}

// frontierPQ is a min-heap of *frontierItem ordered by (h, g, seq).
// Entries for already-processed locations are left in place and skipped when popped.
type frontierPQ []*frontierItem

// Len returns the number of items in the heap.
func (pq frontierPQ) Len() int { return len(pq) }

// Less orders by heuristic, then accumulated cost, then insertion order.
func (pq frontierPQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.h != b.h {
		return a.h < b.h
	}
	if a.g != b.g {
		return a.g < b.g
	}

	return a.seq < b.seq
}

// Swap swaps two elements in the heap.
func (pq frontierPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap. Called by heap.Push.
func (pq *frontierPQ) Push(x interface{}) { *pq = append(*pq, x.(*frontierItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *frontierPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
