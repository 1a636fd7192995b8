package dfs

import "github.com/katalvlaran/metronav/core"

// HasPath reports whether b can be reached from a.
//
// Implementation:
//   - Stage 1: If {a,b} is an edge, succeed immediately.
//   - Stage 2: Push a. Pop a station; succeed if it has a direct edge to b;
//     otherwise mark it visited and push every unvisited neighbor.
//   - Stage 3: Fail once the stack drains.
//
// Unknown stations are simply unreachable (false, nil). HasPath(a, a) is true
// when a has at least one neighbor, since a neighbor has a direct edge back.
//
// Complexity: O(V + E) time, O(V) memory.
func HasPath(g *core.Graph, a, b string) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if !g.HasStation(a) || !g.HasStation(b) {
		return false, nil
	}

	visited := make(map[string]bool, g.StationCount())
	stack := []string{a}
	var cur string
	var nbrs []string
	for len(stack) > 0 {
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[cur] {
			continue
		}
		if g.HasEdge(cur, b) {
			return true, nil
		}
		visited[cur] = true

		nbrs, _ = g.NeighborNames(cur)
		// Reverse push so the lexicographically first neighbor is explored first.
		for i := len(nbrs) - 1; i >= 0; i-- {
			if !visited[nbrs[i]] {
				stack = append(stack, nbrs[i])
			}
		}
	}

	return false, nil
}
