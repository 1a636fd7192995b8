package metro

import (
	"fmt"

	"github.com/katalvlaran/metronav/bfs"
	"github.com/katalvlaran/metronav/dfs"
	"github.com/katalvlaran/metronav/dijkstra"
	"github.com/katalvlaran/metronav/interchange"
)

// check enforces the routing preconditions.
func (n *Navigator) check(op, src, dst string) error {
	var name string
	for _, name = range []string{src, dst} {
		if !n.graph.HasStation(name) {
			n.log.Warn("rejected query", "op", op, "station", name, "reason", "unknown station")
			return fmt.Errorf("%w: %q", ErrUnknownStation, name)
		}
	}
	if src != dst && !n.HasPath(src, dst) {
		n.log.Warn("rejected query", "op", op, "src", src, "dst", dst, "reason", "unreachable")
		return fmt.Errorf("%w: %q -> %q", ErrUnreachable, src, dst)
	}

	return nil
}

func (n *Navigator) model(useTime bool) dijkstra.CostModel {
	if useTime {
		return n.time
	}

	return dijkstra.Distance
}

// ShortestCost returns the minimal cost from src to dst: km when useTime is
// false, seconds under the configured TimeModel when it is true.
//
// Implementation:
//   - Stage 1: Reject unknown stations and unreachable destinations.
//   - Stage 2: Run dijkstra.ShortestCost with the selected model.
func (n *Navigator) ShortestCost(src, dst string, useTime bool) (int64, error) {
	if err := n.check("shortest-cost", src, dst); err != nil {
		return 0, err
	}
	if src == dst {
		return 0, nil
	}

	model := n.model(useTime)
	cost, err := dijkstra.ShortestCost(n.graph, src, dst, dijkstra.WithCostModel(model))
	if err != nil {
		return 0, err
	}
	if cost == dijkstra.Infinity {
		return 0, fmt.Errorf("%w: %q -> %q", ErrUnreachable, src, dst)
	}
	n.log.Debug("shortest cost", "src", src, "dst", dst, "use_time", useTime, "cost", cost)

	return cost, nil
}

// Route returns the best route from src to dst under the configured strategy,
// with both totals and its interchange annotation.
//
// Implementation:
//   - Stage 1: Reject unknown stations and unreachable destinations.
//   - Stage 2: Find the station sequence with the configured strategy.
//   - Stage 3: Total distance and time along the sequence and annotate it.
func (n *Navigator) Route(src, dst string, useTime bool) (*Route, error) {
	if err := n.check("route", src, dst); err != nil {
		return nil, err
	}

	var stations []string
	switch n.strategy {
	case StrategyFewestStops:
		path, err := bfs.FewestStops(n.graph, src, dst)
		if err != nil {
			return nil, err
		}
		stations = path
	case StrategyExhaustive:
		metric := dfs.ByDistance
		if useTime {
			metric = dfs.ByTime
		}
		p, err := dfs.BestPath(n.graph, src, dst, metric, dfs.WithTimeModel(n.time))
		if err != nil {
			return nil, err
		}
		stations = p.Stations
	default:
		res, err := dijkstra.ShortestPath(n.graph, src, dst, dijkstra.WithCostModel(n.model(useTime)))
		if err != nil {
			return nil, err
		}
		if !res.Reachable() {
			return nil, fmt.Errorf("%w: %q -> %q", ErrUnreachable, src, dst)
		}
		stations = res.Path
	}

	r := &Route{
		Source:      src,
		Destination: dst,
		Stations:    stations,
		UseTime:     useTime,
		Strategy:    n.strategy,
	}
	var km int64
	for i := 1; i < len(stations); i++ {
		km, _ = n.graph.Weight(stations[i-1], stations[i])
		r.Distance += km
		r.Time += n.time.Cost(km)
	}
	r.Interchanges = interchange.AnalyzeGraph(n.graph, stations)
	r.Interchanges.Total = fmt.Sprint(r.Total())

	n.log.Debug("route",
		"src", src,
		"dst", dst,
		"strategy", string(n.strategy),
		"hops", len(stations)-1,
		"km", r.Distance,
		"seconds", r.Time,
		"interchanges", r.Interchanges.Count,
	)

	return r, nil
}

// BestPath returns the best route from src to dst formatted as its stations,
// each followed by two spaces, then the distance in km or the time in whole
// minutes.
func (n *Navigator) BestPath(src, dst string, useTime bool) (string, error) {
	r, err := n.Route(src, dst, useTime)
	if err != nil {
		return "", err
	}

	return r.Format(), nil
}

// Interchanges annotates a route string produced by BestPath, reading line
// sets from the graph.
func (n *Navigator) Interchanges(path string) interchange.Report {
	stations, total := interchange.Parse(path)
	r := interchange.AnalyzeGraph(n.graph, stations)
	r.Total = total

	return r
}

// Nearby lists the stations within maxStops stops of station, optionally
// riding only stations of one line. maxStops == 0 means no limit.
func (n *Navigator) Nearby(station string, maxStops int, line string) (*bfs.Result, error) {
	if !n.graph.HasStation(station) {
		n.log.Warn("rejected query", "op", "nearby", "station", station, "reason", "unknown station")
		return nil, fmt.Errorf("%w: %q", ErrUnknownStation, station)
	}
	opts := []bfs.Option{bfs.WithMaxStops(maxStops)}
	if line != "" {
		opts = append(opts, bfs.WithLine(line))
	}
	res, err := bfs.Search(n.graph, station, opts...)
	if err != nil {
		return nil, err
	}
	n.log.Debug("nearby", "station", station, "max_stops", maxStops, "line", line, "found", len(res.Order))

	return res, nil
}
