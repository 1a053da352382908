package search

import (
	"context"
	"fmt"

	"github.com/katalvlaran/addisroute/heuristic"
	"github.com/katalvlaran/addisroute/roadmap"
)

// Engine runs searches over one immutable graph. It holds no per-search
// state and is safe for concurrent use.
type Engine struct {
	graph     *roadmap.Graph
	heuristic heuristic.Func
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithHeuristic replaces the default Euclidean heuristic used by Greedy.
func WithHeuristic(h heuristic.Func) EngineOption {
	return func(e *Engine) {
		if h != nil {
			e.heuristic = h
		}
	}
}

// NewEngine returns an Engine over g. Greedy uses heuristic.Euclidean(g)
// unless WithHeuristic says otherwise.
func NewEngine(g *roadmap.Graph, opts ...EngineOption) (*Engine, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	e := &Engine{graph: g, heuristic: heuristic.Euclidean(g)}
	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Graph returns the graph the engine searches.
func (e *Engine) Graph() *roadmap.Graph { return e.graph }

// Search resolves req's endpoints, applies the degenerate checks and runs
// the selected algorithm.
//
// Preconditions and checks, in order:
//  1. opts are valid (ErrOptionViolation).
//  2. start, then goal, resolve case-insensitively (*LocationError).
//  3. req.Algorithm is BFS, DFS or Greedy (ErrUnknownAlgorithm).
//  4. start blocked → StatusStartBlocked, empty result.
//  5. goal blocked → StatusGoalBlocked, empty result.
//  6. start == goal → StatusSameLocation, Path = Explored = [start].
//
// Blocked names are canonicalized against the graph first, so "gotera"
// blocks Gotera. Expected outcomes are reported through Result.Status with a
// nil error; errors are reserved for bad input, cancellation
// (ctx.Err()), ErrExpansionLimit, hook failures and ErrInconsistentGraphEdge.
func (e *Engine) Search(ctx context.Context, req Request, opts ...Option) (*Result, error) {
	o, err := BuildOptions(opts...)
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	start, ok := e.graph.Resolve(req.Start)
	if !ok {
		return nil, &LocationError{Role: RoleStart, Name: req.Start}
	}
	goal, ok := e.graph.Resolve(req.Goal)
	if !ok {
		return nil, &LocationError{Role: RoleGoal, Name: req.Goal}
	}
	if !req.Algorithm.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, req.Algorithm)
	}
	blocked, _ := req.Blocked.Canonical(e.graph)

	switch {
	case blocked.Contains(start):
		return emptyResult(req.Algorithm, StatusStartBlocked), nil
	case blocked.Contains(goal):
		return emptyResult(req.Algorithm, StatusGoalBlocked), nil
	case start == goal:
		if err = o.OnExplore(start, 0); err != nil {
			return nil, fmt.Errorf("%w at %q: %w", ErrHook, start, err)
		}
		return &Result{
			Algorithm: req.Algorithm,
			Status:    StatusSameLocation,
			Path:      []string{start},
			Explored:  []string{start},
			Found:     true,
		}, nil
	}

	w := newWalker(ctx, e, goal, blocked, o)
	var path []string
	switch req.Algorithm {
	case BFS:
		path, err = w.bfs(start)
	case DFS:
		path, err = w.dfs(start)
	case Greedy:
		path, err = w.greedy(start)
	}
	if err != nil {
		return nil, err
	}

	if path == nil {
		res := emptyResult(req.Algorithm, StatusUnreachable)
		res.Explored = w.explored
		return res, nil
	}

	cost, err := e.graph.PathCost(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInconsistentGraphEdge, err)
	}

	return &Result{
		Algorithm:  req.Algorithm,
		Status:     StatusFound,
		Path:       path,
		Explored:   w.explored,
		Found:      true,
		PathLength: len(path) - 1,
		PathCost:   cost,
	}, nil
}

// emptyResult returns a not-found result with non-nil empty slices.
func emptyResult(alg Algorithm, st Status) *Result {
	return &Result{
		Algorithm: alg,
		Status:    st,
		Path:      []string{},
		Explored:  []string{},
	}
}
