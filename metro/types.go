package metro

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/metronav/dfs"
	"github.com/katalvlaran/metronav/dijkstra"
	"github.com/katalvlaran/metronav/interchange"
	"github.com/katalvlaran/metronav/logging"
)

var (
	// ErrNilGraph indicates New was given a nil graph.
	ErrNilGraph = errors.New("metro: graph is nil")

	// ErrUnknownStation indicates a query or mutation named a station absent from the graph.
	ErrUnknownStation = errors.New("metro: unknown station")

	// ErrUnreachable indicates there is no route between the two stations.
	ErrUnreachable = errors.New("metro: destination unreachable")

	// ErrBadStrategy indicates an unsupported path strategy.
	ErrBadStrategy = errors.New("metro: unsupported strategy")
)

// Strategy selects the algorithm behind path queries.
type Strategy string

const (
	// StrategyDijkstra runs the indexed-heap Dijkstra search and returns an optimal route.
	StrategyDijkstra Strategy = "dijkstra"
	// StrategyExhaustive runs the depth-first best-path search.
	StrategyExhaustive Strategy = "exhaustive"
	// StrategyFewestStops ignores kilometres and minimizes the number of stops.
	StrategyFewestStops Strategy = "stops"
)

func (s Strategy) valid() bool {
	return s == StrategyDijkstra || s == StrategyExhaustive || s == StrategyFewestStops
}

// ParseStrategy converts a configuration value to a Strategy.
// An empty value selects StrategyDijkstra.
func ParseStrategy(s string) (Strategy, error) {
	st := Strategy(strings.ToLower(strings.TrimSpace(s)))
	switch {
	case st == "":
		return StrategyDijkstra, nil
	case st.valid():
		return st, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrBadStrategy, s)
	}
}

// Options configures a Navigator.
//
// Logger   – receives query traces at Debug and rejections at Warn. Default discards.
// Time     – the travel-time model. Default is dijkstra.DefaultTime.
// Strategy – the path algorithm. Default is StrategyDijkstra.
type Options struct {
	Logger   *slog.Logger
	Time     dijkstra.TimeModel
	Strategy Strategy

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for New.
type Option func(*Options)

// DefaultOptions returns the defaults listed on Options.
func DefaultOptions() Options {
	return Options{
		Logger:   logging.Discard(),
		Time:     dijkstra.DefaultTime,
		Strategy: StrategyDijkstra,
	}
}

// WithLogger sets the logger. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithTimeModel sets the travel-time model. A model with a negative
// component makes New fail with dijkstra.ErrOptionViolation.
func WithTimeModel(tm dijkstra.TimeModel) Option {
	return func(o *Options) {
		if err := tm.Validate(); err != nil {
			o.err = err
			return
		}
		o.Time = tm
	}
}

// WithStrategy sets the path algorithm.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if !s.valid() {
			o.err = fmt.Errorf("%w: %q", ErrBadStrategy, s)
			return
		}
		o.Strategy = s
	}
}

// Route is the structured answer to a path query.
type Route struct {
	// Source and Destination are the queried endpoints.
	Source, Destination string
	// Stations lists the route from Source to Destination inclusive.
	Stations []string
	// Distance is the route length in km.
	Distance int64
	// Time is the travel time in seconds.
	Time int64
	// UseTime records which metric the route was optimized for.
	UseTime bool
	// Strategy is the algorithm that produced the route.
	Strategy Strategy
	// Interchanges annotates Stations with line changes.
	Interchanges interchange.Report
}

// Metric returns the dfs metric matching UseTime.
func (r *Route) Metric() dfs.Metric {
	if r.UseTime {
		return dfs.ByTime
	}

	return dfs.ByDistance
}

// Minutes returns Time rounded up to whole minutes.
func (r *Route) Minutes() int64 { return r.path().Minutes() }

// Total returns the optimized figure: km, or whole minutes.
func (r *Route) Total() int64 { return r.path().Total(r.Metric()) }

// Format renders the route as double-space-delimited stations followed by Total.
func (r *Route) Format() string { return r.path().Format(r.Metric()) }

func (r *Route) path() *dfs.Path {
	return &dfs.Path{Stations: r.Stations, Distance: r.Distance, Time: r.Time}
}
