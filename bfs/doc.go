// Package bfs counts stops: it runs a breadth-first search over a core.Graph
// that ignores kilometres and measures every route in hops.
//
// What
//
//   - Search(g, start, opts...) visits stations in non-decreasing number of
//     stops from start and returns a Result with:
//   - Order:  visit sequence
//   - Stops:  station → stops from start
//   - Parent: station → predecessor on a fewest-stops route
//   - Result.PathTo(dst) rebuilds the fewest-stops route to dst.
//   - FewestStops(g, src, dst) is the one-call form of the two.
//
// Determinism
//
//	Neighbors are expanded in lexicographic order (core.Graph.NeighborNames),
//	so among routes with equal stop counts the lexicographically earliest
//	predecessor wins and the visit order is reproducible.
//
// Options
//
//   - WithContext(ctx):        cancel a long search.
//   - WithMaxStops(n):         do not go beyond n stops (n > 0); 0 means no limit.
//   - WithLine(code):          ride only stations served by line code.
//   - WithFilterNeighbor(fn):  skip hops for which fn(curr, next) is false.
//   - WithOnVisit(fn):         hook per visited station; an error aborts.
//
// Complexity
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - ErrStartNotFound     if the start station does not exist.
//   - ErrOptionViolation   for an invalid Option (negative stop limit, empty line).
//   - ErrNoPath            from PathTo when dst was not reached.
//   - Wrapped hook errors from OnVisit, or the context error.
package bfs
