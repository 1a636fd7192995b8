// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Weight/EdgeCount/Edges.
//
// Policy:
//   - AddEdge and RemoveEdge are permissive: a missing station or an already
//     present (respectively absent) edge is a silent no-op, not an error.
//   - Invariant violations (non-positive weight, self-loop) are errors.
package core

import "sort"

// Edge is one undirected connection as reported by Edges.
// From < To lexicographically.
type Edge struct {
	From   string
	To     string
	Weight int64
}

// AddEdge inserts the undirected edge {a,b} with the given weight in km.
//
// Implementation:
//   - Stage 1: Reject invariant violations (ErrEmptyStationName, ErrLoopNotAllowed, ErrBadWeight).
//   - Stage 2: If either station is missing or the edge already exists, return nil (no-op).
//   - Stage 3: Install b→a and a→b with the same weight.
//
// Complexity: O(1).
func (g *Graph) AddEdge(a, b string, weight int64) error {
	if a == "" || b == "" {
		return ErrEmptyStationName
	}
	if a == b {
		return ErrLoopNotAllowed
	}
	if weight <= 0 {
		return ErrBadWeight
	}

	na, okA := g.adjacency[a]
	nb, okB := g.adjacency[b]
	if !okA || !okB {
		return nil
	}
	if _, exists := na[b]; exists {
		return nil
	}

	na[b] = weight
	nb[a] = weight

	return nil
}

// RemoveEdge deletes both directions of {a,b} when the edge exists; otherwise it does nothing.
// Complexity: O(1).
func (g *Graph) RemoveEdge(a, b string) {
	if _, ok := g.adjacency[a][b]; !ok {
		return
	}
	delete(g.adjacency[a], b)
	delete(g.adjacency[b], a)
}

// HasEdge reports whether {a,b} exists. Symmetric by construction.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	_, ok := g.adjacency[a][b]
	return ok
}

// Weight returns the weight of {a,b} and whether the edge exists.
func (g *Graph) Weight(a, b string) (int64, bool) {
	w, ok := g.adjacency[a][b]
	return w, ok
}

// EdgeCount returns the number of undirected edges, computed as half the sum
// of all neighbor-map sizes.
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	total := 0
	var nbrs map[string]int64
	for _, nbrs = range g.adjacency {
		total += len(nbrs)
	}

	return total / 2
}

// Edges returns every edge once, sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.EdgeCount())
	var a, b string
	var w int64
	var nbrs map[string]int64
	for a, nbrs = range g.adjacency {
		for b, w = range nbrs {
			if a < b {
				out = append(out, Edge{From: a, To: b, Weight: w})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}
