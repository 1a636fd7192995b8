// Package metronav is a route planner for metro networks: stations tagged
// with the lines that serve them, joined by undirected connections measured
// in kilometres.
//
// 🚇 What is in the box?
//
//	• Core primitives: a station graph with line sets parsed from "Name~LINES"
//	• Shortest routes: Dijkstra on an indexed heap, by distance or travel time
//	• Depth-first searches: reachability and an exhaustive best-path search
//	• Fewest stops and catchment queries by breadth-first search
//	• Interchange analysis: where a route changes lines
//	• A seeded Delhi reference network and a command-line front-end
//
// Packages:
//
//	pqueue/      indexed binary min-heap with handles and decrease-key
//	core/        Graph, Station, line-set helpers
//	dijkstra/    shortest cost and shortest path under a CostModel
//	dfs/         HasPath and the exhaustive BestPath
//	bfs/         fewest-stops routes and catchments
//	interchange/ interchange markers and counts for a route
//	network/     YAML network files, the embedded Delhi network, station codes
//	metro/       Navigator: precondition gates, strategies, logging
//	config/      viper-based configuration (file, METRONAV_* env, flags)
//	logging/     slog loggers in text, logfmt or JSON
//	cmd/metronav the metronav command
//
// Travel time is modelled as a fixed dwell per hop plus a per-kilometre
// running time (120 s + 40 s/km by default).
//
// Quick start:
//
//	n, _ := metro.NewDefault()
//	km, _ := n.ShortestCost("Yamuna Bank~B", "Rajiv Chowk~BY", false) // 6
//	route, _ := n.BestPath("Vaishali~B", "Saket~Y", true)
//	report := n.Interchanges(route)
//
// Install the command:
//
//	go install github.com/katalvlaran/metronav/cmd/metronav@latest
package metronav
