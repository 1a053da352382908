// Package search finds a route between two locations of a roadmap.Graph with
// one of three strategies and reports both the route and the order in which
// locations were explored.
//
// What
//
//   - BFS: FIFO frontier of full paths; a location is visited and explored
//     when first enqueued. Returns a fewest-edges path (not cheapest).
//   - DFS: LIFO frontier of full paths; a location is visited and explored
//     when popped, so duplicates may sit on the stack and are discarded at pop.
//     Neighbors are pushed in reverse declared order.
//   - Greedy: min-heap ordered by straight-line distance to the goal, ties
//     broken by accumulated edge cost, then by insertion order. Never A*.
//   - All three skip blocked locations when growing the frontier.
//   - Engine.CheapestCost runs Dijkstra for the minimum achievable cost. It is
//     a yardstick for the three strategies, not a selectable Algorithm.
//
// Degenerate inputs are decided before any algorithm runs, in this order:
// start blocked, goal blocked, start == goal.
//
// Determinism
//
//	Neighbors are taken in the graph's declared order and the greedy heap
//	has a total order, so identical calls return identical Path, Explored
//	and PathCost.
//
// Cancellation
//
//	Every algorithm checks ctx.Done() once per frontier pop. WithMaxExpansions
//	bounds the number of pops independently of wall time.
//
// Complexity (V = locations, E = edges, L = longest path)
//
//   - BFS:    Time O((V + E)·L), each enqueue copies its path.
//   - DFS:    Time O(E·L), up to one stack entry per edge traversal.
//   - Greedy: Time O(E·(log E + L)).
//
// Usage
//
//	engine, err := search.NewEngine(roadmap.AddisAbaba())
//	if err != nil {
//	    return err
//	}
//	res, err := engine.Search(ctx, search.Request{
//	    Start:     "4 kilo",
//	    Goal:      "Merkato",
//	    Algorithm: search.BFS,
//	    Blocked:   constraint.New("Gotera"),
//	})
//	switch {
//	case err != nil:
//	    // *LocationError, ErrUnknownAlgorithm, ctx.Err(), ErrExpansionLimit, ...
//	case res.Found:
//	    fmt.Println(res.Path, res.PathCost)
//	default:
//	    fmt.Println(res.Status.Message(), res.Explored)
//	}
//
// Errors
//
//   - ErrGraphNil              NewEngine given a nil graph.
//   - ErrOptionViolation       invalid Option (e.g. negative MaxExpansions).
//   - ErrUnknownAlgorithm      Algorithm outside BFS, DFS, Greedy.
//   - ErrUnknownLocation       via *LocationError; reports start or goal.
//   - ErrExpansionLimit        WithMaxExpansions exceeded.
//   - ErrHook                  wraps an OnExplore hook error.
//   - ErrInconsistentGraphEdge a returned path is not edge-consistent.
//   - context.Canceled / context.DeadlineExceeded.
package search
