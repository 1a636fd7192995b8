// Package core provides the in-memory station graph used by every routing
// algorithm in metronav.
//
// The Graph G = (V,E) is an undirected, positively weighted simple graph:
//
//   - Vertices are stations, identified by a unique name such as "Rajiv Chowk~BY".
//     The suffix after '~' lists the single-letter codes of the lines serving the
//     station; it is parsed once into Station.Lines.
//   - Edges are unordered station pairs with an integer weight in kilometres.
//     AddEdge(a,b,w) installs b in a's neighbor map and a in b's neighbor map
//     with the same weight.
//   - No self-loops, at most one edge per pair, weight > 0.
//
// Storage:
//
//	stations[name]        = *Station
//	adjacency[name][nbr]  = weight   (mirrored: adjacency[nbr][name] == weight)
//
// Core Methods:
//
//	// Station lifecycle
//	AddStation(name string) error        // O(1), idempotent
//	HasStation(name string) bool         // O(1)
//	RemoveStation(name string) error     // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(a, b string, km int64) error // O(1), silent no-op on missing station or existing edge
//	RemoveEdge(a, b string)              // O(1), silent no-op on missing edge
//	HasEdge(a, b string) bool            // O(1)
//	Weight(a, b string) (int64, bool)    // O(1)
//
//	// Query
//	Neighbors(name string) (map[string]int64, error) // O(d), copy
//	NeighborNames(name string) ([]string, error)     // O(d log d), sorted
//	Stations() []string                              // O(V log V), sorted
//	Station(name string) (*Station, bool)            // O(1)
//	StationCount() int                               // O(1)
//	EdgeCount() int                                  // O(V), half the sum of degrees
//
// Errors:
//
//	ErrEmptyStationName - zero-length station name
//	ErrStationNotFound  - missing station (RemoveStation, Neighbors, ...)
//	ErrBadWeight        - weight <= 0
//	ErrLoopNotAllowed   - AddEdge(a, a, w)
//
// Concurrency:
//
//	Graph holds no locks. It is built once, then mutated only between queries,
//	never while a search is running; callers own that ordering.
package core
