package core

import "errors"

// Sentinel errors for station graph operations.
var (
	// ErrEmptyStationName indicates that an empty string was used as a station name.
	ErrEmptyStationName = errors.New("core: station name is empty")

	// ErrStationNotFound indicates an operation referenced a station absent from the graph.
	ErrStationNotFound = errors.New("core: station not found")

	// ErrBadWeight indicates a non-positive edge weight.
	ErrBadWeight = errors.New("core: edge weight must be positive")

	// ErrLoopNotAllowed indicates an edge from a station to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// LineSeparator separates the display name of a station from its line codes.
const LineSeparator = '~'

// Station is a vertex of the transit graph.
//
// Name is the unique key, including the line suffix ("New Delhi~YO").
// Lines holds the sorted, de-duplicated line codes parsed from that suffix
// (["O","Y"]). A station with two or more lines is an interchange candidate.
type Station struct {
	// Name is the unique identifier for this Station.
	Name string

	// Lines are the codes of the lines serving this Station, sorted ascending.
	Lines []string
}

// Graph is an undirected weighted station graph.
//
// adjacency[a][b] is the weight of edge {a,b}; every key of stations has a
// (possibly empty) adjacency bucket.
type Graph struct {
	stations  map[string]*Station
	adjacency map[string]map[string]int64
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		stations:  make(map[string]*Station),
		adjacency: make(map[string]map[string]int64),
	}
}
