package dfs

import (
	"fmt"
	"math"

	"github.com/katalvlaran/metronav/core"
	"github.com/katalvlaran/metronav/dijkstra"
)

// Options configures BestPath.
//
// Time – the model used to accumulate travel time. Default is dijkstra.DefaultTime.
type Options struct {
	Time dijkstra.TimeModel
}

// Option represents a functional option for BestPath.
type Option func(*Options)

// DefaultOptions returns Options with the reference time model.
func DefaultOptions() Options {
	return Options{Time: dijkstra.DefaultTime}
}

// WithTimeModel sets the model used for the time total.
func WithTimeModel(tm dijkstra.TimeModel) Option {
	return func(o *Options) { o.Time = tm }
}

// frame is one immutable stack entry: a station reached along path with the
// accumulated distance and time. Extending a frame copies its path.
type frame struct {
	station  string
	path     []string
	distance int64
	time     int64
}

func (f frame) metric(m Metric) int64 {
	if m == ByTime {
		return f.time
	}

	return f.distance
}

// extend returns the frame for stepping from f to nbr over an edge of km.
func (f frame) extend(nbr string, km int64, tm dijkstra.TimeModel) frame {
	path := make([]string, len(f.path)+1)
	copy(path, f.path)
	path[len(f.path)] = nbr

	return frame{
		station:  nbr,
		path:     path,
		distance: f.distance + km,
		time:     f.time + tm.Cost(km),
	}
}

// BestPath searches depth-first from src and returns the cheapest arrival at
// dst under metric m, with the full station sequence and both totals.
//
// Implementation:
//   - Stage 1: Push the source frame (path [src], totals 0).
//   - Stage 2: Pop a frame; discard it if its station is already visited; mark visited.
//   - Stage 3: At dst, keep the frame if it beats the best so far and keep draining.
//   - Stage 4: Elsewhere, push one extended frame per unvisited neighbor.
//
// See the package documentation for the first-visited-wins caveat.
func BestPath(g *core.Graph, src, dst string, m Metric, opts ...Option) (*Path, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if err := cfg.Time.Validate(); err != nil {
		return nil, err
	}
	if !g.HasStation(src) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, src)
	}

	visited := make(map[string]bool, g.StationCount())
	stack := []frame{{station: src, path: []string{src}}}

	var best *frame
	bestMetric := int64(math.MaxInt64)

	var top frame
	var nbrs []string
	var nbr string
	var km int64
	for len(stack) > 0 {
		top = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[top.station] {
			continue
		}
		visited[top.station] = true

		if top.station == dst {
			if v := top.metric(m); v < bestMetric {
				found := top
				best, bestMetric = &found, v
			}
			continue
		}

		nbrs, _ = g.NeighborNames(top.station)
		for _, nbr = range nbrs {
			if visited[nbr] {
				continue
			}
			km, _ = g.Weight(top.station, nbr)
			stack = append(stack, top.extend(nbr, km, cfg.Time))
		}
	}

	if best == nil {
		return nil, fmt.Errorf("%w: %q -> %q", ErrNoPath, src, dst)
	}

	return &Path{Stations: best.path, Distance: best.distance, Time: best.time}, nil
}
