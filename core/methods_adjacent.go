package core

import "sort"

// Neighbors returns a copy of the neighbor→weight map of the named station.
// Iteration order of the returned map is unspecified; use NeighborNames for a
// deterministic order.
//
// Errors:
//   - ErrStationNotFound: if the station does not exist.
//
// Complexity: O(d).
func (g *Graph) Neighbors(name string) (map[string]int64, error) {
	nbrs, ok := g.adjacency[name]
	if !ok {
		return nil, ErrStationNotFound
	}

	out := make(map[string]int64, len(nbrs))
	var nbr string
	var w int64
	for nbr, w = range nbrs {
		out[nbr] = w
	}

	return out, nil
}

// NeighborNames returns the neighbor names of the station sorted ascending.
// Complexity: O(d log d).
func (g *Graph) NeighborNames(name string) ([]string, error) {
	nbrs, ok := g.adjacency[name]
	if !ok {
		return nil, ErrStationNotFound
	}

	names := make([]string, 0, len(nbrs))
	var nbr string
	for nbr = range nbrs {
		names = append(names, nbr)
	}
	sort.Strings(names)

	return names, nil
}

// Degree returns the number of neighbors of the station.
func (g *Graph) Degree(name string) (int, error) {
	nbrs, ok := g.adjacency[name]
	if !ok {
		return 0, ErrStationNotFound
	}

	return len(nbrs), nil
}
