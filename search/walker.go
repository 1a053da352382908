package search

import (
	"context"
	"fmt"

	"github.com/katalvlaran/addisroute/constraint"
	"github.com/katalvlaran/addisroute/heuristic"
	"github.com/katalvlaran/addisroute/roadmap"
)

// walker encapsulates the mutable state of one search run.
// A walker is used once and discarded.
type walker struct {
	ctx       context.Context
	graph     *roadmap.Graph
	heuristic heuristic.Func
	goal      string
	blocked   constraint.Set
	opts      Options
	explored  []string
	pops      int
}

func newWalker(ctx context.Context, e *Engine, goal string, blocked constraint.Set, o Options) *walker {
	return &walker{
		ctx:       ctx,
		graph:     e.graph,
		heuristic: e.heuristic,
		goal:      goal,
		blocked:   blocked,
		opts:      o,
		explored:  make([]string, 0, e.graph.LocationCount()),
	}
}

// tick is called once per frontier pop: it honors cancellation and the
// expansion budget.
func (w *walker) tick() error {
	select {
	case <-w.ctx.Done():
		return w.ctx.Err()
	default:
	}

	w.pops++
	if w.opts.MaxExpansions > 0 && w.pops > w.opts.MaxExpansions {
		return fmt.Errorf("%w: %d", ErrExpansionLimit, w.opts.MaxExpansions)
	}

	return nil
}

// explore appends id to the explored order and runs the hook.
func (w *walker) explore(id string) error {
	idx := len(w.explored)
	w.explored = append(w.explored, id)
	if err := w.opts.OnExplore(id, idx); err != nil {
		return fmt.Errorf("%w at %q: %w", ErrHook, id, err)
	}

	return nil
}

// neighbors returns node's declared neighbors.
func (w *walker) neighbors(node string) ([]roadmap.Neighbor, error) {
	nbs, err := w.graph.Neighbors(node)
	if err != nil {
		return nil, fmt.Errorf("search: neighbors of %q: %w", node, err)
	}

	return nbs, nil
}

// extend returns a fresh slice path+[id]; frontier entries never share backing arrays.
func extend(path []string, id string) []string {
	out := make([]string, len(path)+1)
	copy(out, path)
	out[len(path)] = id

	return out
}
