// Package dfs implements the depth-first searches of metronav on core.Graph:
// a reachability probe and an exhaustive best-path search. Both keep their
// frontier on an explicit stack, so their depth is bounded by heap memory
// rather than by the goroutine stack.
//
// Key features:
//   - HasPath(g, a, b): true as soon as a station with a direct edge to b is
//     reached from a. Used as the precondition gate before cost queries.
//   - BestPath(g, src, dst, metric): depth-first enumeration of routes from src,
//     keeping the cheapest arrival at dst by distance or by travel time, and
//     returning the full station sequence.
//
// Visiting policy of BestPath:
//
//	A station is finalized the first time it is popped. Because the frontier
//	is a stack rather than a cost-ordered queue, the first arrival is not
//	necessarily the cheapest, so on irregular graphs BestPath can return a
//	suboptimal route. On trees (and on the reference network) it is exact.
//	Use dijkstra.ShortestPath when optimality is required.
//
// Complexity:
//
//   - Time:   O(V + E) for both searches.
//   - Memory: O(V + E) frames; BestPath frames carry their own path copy,
//     so memory is O(E·L) where L is the longest explored path.
//
// Errors:
//
//   - ErrGraphNil        if g is nil.
//   - ErrStartNotFound   if the source station is missing (BestPath).
//   - ErrNoPath          if BestPath never reaches the destination.
package dfs
