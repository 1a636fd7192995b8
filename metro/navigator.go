package metro

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/metronav/core"
	"github.com/katalvlaran/metronav/dfs"
	"github.com/katalvlaran/metronav/dijkstra"
	"github.com/katalvlaran/metronav/network"
)

// Navigator answers routing queries over a station graph it owns.
type Navigator struct {
	graph    *core.Graph
	log      *slog.Logger
	time     dijkstra.TimeModel
	strategy Strategy
}

// New returns a Navigator over g. The Navigator takes ownership of g.
func New(g *core.Graph, opts ...Option) (*Navigator, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	return &Navigator{
		graph:    g,
		log:      cfg.Logger,
		time:     cfg.Time,
		strategy: cfg.Strategy,
	}, nil
}

// NewDefault returns a Navigator over a fresh copy of the embedded Delhi network.
func NewDefault(opts ...Option) (*Navigator, error) {
	g, err := network.Default()
	if err != nil {
		return nil, err
	}

	return New(g, opts...)
}

// Graph returns the underlying graph for read-only inspection.
func (n *Navigator) Graph() *core.Graph { return n.graph }

// TimeModel returns the configured travel-time model.
func (n *Navigator) TimeModel() dijkstra.TimeModel { return n.time }

// Strategy returns the configured path algorithm.
func (n *Navigator) Strategy() Strategy { return n.strategy }

// AddStation adds a station; adding an existing one is a no-op.
func (n *Navigator) AddStation(name string) error {
	return n.graph.AddStation(name)
}

// RemoveStation deletes a station and all its edges.
// The error matches both ErrUnknownStation and core.ErrStationNotFound.
func (n *Navigator) RemoveStation(name string) error {
	if err := n.graph.RemoveStation(name); err != nil {
		return fmt.Errorf("%w: %w", ErrUnknownStation, err)
	}

	return nil
}

// AddEdge connects a and b with a weight in km. Missing stations and existing
// edges are silently ignored; invalid weights and self-loops are errors.
func (n *Navigator) AddEdge(a, b string, km int64) error {
	return n.graph.AddEdge(a, b, km)
}

// RemoveEdge disconnects a and b if they are connected.
func (n *Navigator) RemoveEdge(a, b string) { n.graph.RemoveEdge(a, b) }

// HasStation reports whether name is a station.
func (n *Navigator) HasStation(name string) bool { return n.graph.HasStation(name) }

// HasEdge reports whether a and b are directly connected.
func (n *Navigator) HasEdge(a, b string) bool { return n.graph.HasEdge(a, b) }

// StationCount returns the number of stations.
func (n *Navigator) StationCount() int { return n.graph.StationCount() }

// EdgeCount returns the number of undirected connections.
func (n *Navigator) EdgeCount() int { return n.graph.EdgeCount() }

// Stations returns station names in ascending order.
func (n *Navigator) Stations() []string { return n.graph.Stations() }

// Neighbors returns a copy of the neighbor map of name.
func (n *Navigator) Neighbors(name string) (map[string]int64, error) {
	nbrs, err := n.graph.Neighbors(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnknownStation, err)
	}

	return nbrs, nil
}

// HasPath reports whether b is reachable from a.
func (n *Navigator) HasPath(a, b string) bool {
	ok, _ := dfs.HasPath(n.graph, a, b)
	return ok
}
