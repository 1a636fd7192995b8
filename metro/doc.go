// Package metro is the entry point of metronav: a Navigator owns one station
// graph and answers routing queries about it.
//
// The routing engines in dijkstra and dfs treat unreachable destinations and
// unknown stations as caller preconditions. Navigator enforces them before it
// dispatches:
//
//   - both endpoints must be stations of the graph (ErrUnknownStation);
//   - the destination must be reachable according to dfs.HasPath
//     (ErrUnreachable). A query from a station to itself skips this gate.
//
// Two cost models are available on every query: distance in kilometres, and
// travel time in seconds under a TimeModel (120 s dwell per hop plus 40 s per
// km unless configured otherwise). Path queries run one of two strategies:
//
//	StrategyDijkstra    optimal; the default.
//	StrategyExhaustive  depth-first search that keeps the first arrival at
//	                    every station. Exact on trees, approximate elsewhere.
//	StrategyFewestStops breadth-first search minimizing the number of stops.
//
// Nearby answers catchment queries ("what is within three stops of here, on
// line Y?") with the same breadth-first search.
//
// A Navigator is not safe for concurrent use. Mutations must not overlap
// with queries.
package metro
