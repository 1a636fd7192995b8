// File: methods_stations.go
// Role: Station lifecycle & queries.
//
// Determinism:
//   - Stations() returns names sorted lexicographically ascending.
package core

import "sort"

// AddStation inserts a station with an empty neighbor map (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty name (ErrEmptyStationName).
//   - Stage 2: If the station exists, return (no duplicate detection error).
//   - Stage 3: Parse line codes from the name and register the station and its adjacency bucket.
//
// Complexity:
//   - Time O(len(name)), Space O(1) amortized.
func (g *Graph) AddStation(name string) error {
	if name == "" {
		return ErrEmptyStationName
	}
	if _, exists := g.stations[name]; exists {
		return nil // no-op for existing station
	}

	g.stations[name] = &Station{Name: name, Lines: ParseLines(name)}
	g.adjacency[name] = make(map[string]int64)

	return nil
}

// HasStation reports whether the station exists (empty name ⇒ false).
// Complexity: O(1).
func (g *Graph) HasStation(name string) bool {
	_, ok := g.stations[name]
	return ok
}

// RemoveStation deletes a station and every back-reference to it.
//
// Implementation:
//   - Stage 1: Validate name and presence (ErrEmptyStationName, ErrStationNotFound).
//   - Stage 2: For each neighbor, delete the mirrored entry pointing back at name.
//   - Stage 3: Delete the station and its adjacency bucket.
//
// Behavior highlights:
//   - The mutual-consistency invariant holds after return.
//
// Complexity:
//   - Time O(deg(name)), Space O(1).
func (g *Graph) RemoveStation(name string) error {
	if name == "" {
		return ErrEmptyStationName
	}
	nbrs, ok := g.adjacency[name]
	if !ok {
		return ErrStationNotFound
	}

	var nbr string
	for nbr = range nbrs {
		delete(g.adjacency[nbr], name)
	}
	delete(g.adjacency, name)
	delete(g.stations, name)

	return nil
}

// Station returns the station record for name.
// The returned pointer is live; treat it as read-only.
func (g *Graph) Station(name string) (*Station, bool) {
	s, ok := g.stations[name]
	return s, ok
}

// Lines returns the line codes of the named station, or nil when it is absent.
func (g *Graph) Lines(name string) []string {
	if s, ok := g.stations[name]; ok {
		return s.Lines
	}

	return nil
}

// Stations returns all station names in lexicographic ascending order.
// Complexity: O(V log V).
func (g *Graph) Stations() []string {
	names := make([]string, 0, len(g.stations))
	var name string
	for name = range g.stations {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// StationCount returns the number of stations.
// Complexity: O(1).
func (g *Graph) StationCount() int { return len(g.stations) }
