package search

import (
	"container/heap"
	"context"
	"math"

	"github.com/katalvlaran/addisroute/constraint"
)

// CheapestCost returns the minimum total edge weight from start to goal
// that never enters a blocked location, and false when no such route exists
// or an endpoint is blocked.
//
// It is a reference figure, not a search Algorithm: none of BFS, DFS or
// Greedy is guaranteed to return a route this cheap. Names resolve as in
// Search.
//
// Complexity: O((V + E) log V).
func (e *Engine) CheapestCost(ctx context.Context, start, goal string, blocked constraint.Set) (int64, bool, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	src, ok := e.graph.Resolve(start)
	if !ok {
		return 0, false, &LocationError{Role: RoleStart, Name: start}
	}
	dst, ok := e.graph.Resolve(goal)
	if !ok {
		return 0, false, &LocationError{Role: RoleGoal, Name: goal}
	}
	blocked, _ = blocked.Canonical(e.graph)
	if blocked.Contains(src) || blocked.Contains(dst) {
		return 0, false, nil
	}

	r := &costRunner{
		e:       e,
		blocked: blocked,
		dist:    make(map[string]int64, e.graph.LocationCount()),
		done:    make(map[string]bool, e.graph.LocationCount()),
	}
	d, err := r.run(ctx, src, dst)
	if err != nil {
		return 0, false, err
	}
	if d == math.MaxInt64 {
		return 0, false, nil
	}

	return d, true, nil
}

// costRunner holds the state of one CheapestCost call.
type costRunner struct {
	e       *Engine
	blocked constraint.Set
	dist    map[string]int64 // best known distance from the source
	done    map[string]bool  // distance finalized
	pq      costPQ
}

// run settles locations in distance order until dst is settled.
func (r *costRunner) run(ctx context.Context, src, dst string) (int64, error) {
	for _, id := range r.e.graph.Locations() {
		r.dist[id] = math.MaxInt64
	}
	r.dist[src] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &costItem{id: src, dist: 0})

	for r.pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*costItem)
		if r.done[item.id] {
			continue
		}
		r.done[item.id] = true
		if item.id == dst {
			return item.dist, nil
		}

		nbs, err := r.e.graph.Neighbors(item.id)
		if err != nil {
			return 0, err
		}
		for _, nb := range nbs {
			if r.done[nb.ID] || r.blocked.Contains(nb.ID) {
				continue
			}
			if nd := item.dist + nb.Weight; nd < r.dist[nb.ID] {
				r.dist[nb.ID] = nd
				heap.Push(&r.pq, &costItem{id: nb.ID, dist: nd})
			}
		}
	}

	return math.MaxInt64, nil
}

// costItem is one lazy priority-queue entry.
type costItem struct {
	id   string
	dist int64
}

// costPQ is a min-heap of *costItem by dist. Stale entries are skipped on pop.
type costPQ []*costItem

func (pq costPQ) Len() int           { return len(pq) }
func (pq costPQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq costPQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *costPQ) Push(x interface{}) { *pq = append(*pq, x.(*costItem)) }

func (pq *costPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
