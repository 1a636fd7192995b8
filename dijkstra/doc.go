// Package dijkstra computes least-cost routes between two stations of a
// core.Graph with Dijkstra's algorithm driven by an indexed priority queue.
//
// Overview:
//
//   - Every station gets one search record. The source starts at cost 0, all
//     others at Infinity, and every record is queued up front.
//   - The cheapest record is extracted and finalized; its live neighbors are
//     relaxed. An improved record is updated in place and re-prioritized
//     through its pqueue.Handle (true decrease-key, no duplicate entries).
//   - The search stops as soon as the destination is extracted.
//
// Cost models:
//
//   - Distance: an edge of weight w costs w (kilometres).
//   - TimeModel{Dwell, PerKm}: an edge of weight w costs Dwell + PerKm·w seconds.
//     DefaultTime is {120, 40}: two minutes of dwell per stop plus forty
//     seconds per kilometre.
//
// API reference:
//
//	cost, err := dijkstra.ShortestCost(g, src, dst, dijkstra.WithTimeModel())
//	res, err  := dijkstra.ShortestPath(g, src, dst)  // res.Cost, res.Path
//
// Unreachable destinations are not an error: the queue drains and the cost is
// the Infinity sentinel (Result.Path is nil). Callers that must distinguish
// should check reachability first (dfs.HasPath).
//
// Complexity:
//
//   - Time:  O((V + E) log V), each station extracted once, each relaxation O(log V).
//   - Space: O(V) records and heap slots.
//
// Errors (sentinel):
//
//   - ErrNilGraph          graph pointer is nil.
//   - ErrStationNotFound   source or destination is not in the graph.
//   - ErrOptionViolation   an invalid Option was supplied (nil or negative cost model).
//
// Thread safety:
//
//   - Not safe if the same graph is mutated concurrently.
package dijkstra
