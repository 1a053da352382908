// Package addisroute finds routes between Addis Ababa landmarks and shows
// how uninformed and informed search explore the same small city graph.
//
// 🚀 What is addisroute?
//
//	An in-memory route finder built around one immutable landmark graph:
//		• Graph store: 13 landmarks, 20 weighted two-way roads
//		• Searches: breadth-first, depth-first, greedy best-first
//		• Constraints: blocked landmarks are never entered
//		• Explored order: every search reports what it expanded, in order
//		• Delivery: Go API, HTTP + websocket service, CLI
//
// ✨ Why addisroute?
//
//   - Deterministic: same request, same path, same explored order
//   - Honest results: blocked and unreachable are outcomes, not errors
//   - One contract: local engine and remote client return identical results
//
// Packages:
//
//	roadmap/          immutable weighted graph + the Addis Ababa dataset
//	heuristic/        straight-line distance estimates for greedy search
//	constraint/       immutable blocked-location sets
//	search/           BFS, DFS, Greedy engine and the JSON wire shapes
//	spatial/          R-tree snapping of map points to landmarks
//	remote/           rate-limited client for a remote search service
//	internal/config   YAML, .env and environment configuration
//	internal/server   HTTP + websocket service
//	cmd/addisroute    CLI: search, serve, graph, nearest
//
// Quick ASCII example (part of the graph):
//
//	  6 Kilo
//	    │
//	  4 Kilo───Piazza───Merkato
//	    │        │        │
//	Meskel Sq───Mexico────┘
//
//	BFS 4 Kilo → Merkato: [4 Kilo Piazza Merkato], cost 5
//
//	go install github.com/katalvlaran/addisroute/cmd/addisroute@latest
package addisroute
