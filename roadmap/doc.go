// Package roadmap provides the immutable, weighted, undirected road graph the
// search engine walks: named locations, per-location neighbor lists in their
// declared order, heuristic coordinates and display layout coordinates.
//
// What
//
//   - Graph: built once by a Builder, never mutated afterwards.
//   - Neighbors(id) returns neighbors in the order they were declared for id,
//     not sorted. Search visitation order depends on it.
//   - Resolve(name) maps any-case input to the canonical location key.
//   - PathCost(path) sums edge weights along a path and reports
//     ErrInconsistentEdge if two consecutive locations are not adjacent.
//   - AddisAbaba() returns the compiled-in landmark graph.
//
// Invariants (checked by Builder.Build)
//
//   - every location has a heuristic coordinate (AddLocation requires one);
//   - no self-loops, no duplicate neighbors, weights > 0;
//   - every neighbor is a declared location;
//   - the graph is symmetric: A→B(w) implies B→A(w).
//
// Concurrency
//
//	A built Graph holds no locks: nothing writes to it after Build, so any
//	number of goroutines may read it at once.
//
// Complexity
//
//   - Resolve, HasEdge, EdgeWeight: O(1) map lookups.
//   - Neighbors: O(d) copy of the declared list.
//   - PathCost: O(len(path)).
//   - Build: O(V + E).
package roadmap
