package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/metronav/core"
)

// queueItem pairs a station with its stop count.
type queueItem struct {
	station string
	stops   int
}

// walker encapsulates mutable search state.
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// Search runs a breadth-first search on g from start.
// Returns ErrGraphNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any error returned by the visit hook.
func Search(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasStation(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}

	n := g.StationCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]string, 0, n),
			Stops:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.enqueue(start, 0, "")

	return w.res, w.loop()
}

// FewestStops returns a route from src to dst with the fewest stops.
func FewestStops(g *core.Graph, src, dst string, opts ...Option) ([]string, error) {
	res, err := Search(g, src, opts...)
	if err != nil {
		return nil, err
	}

	return res.PathTo(dst)
}

// enqueue records station at stops with its parent and queues it.
func (w *walker) enqueue(station string, stops int, parent string) {
	w.res.Stops[station] = stops
	if parent != "" {
		w.res.Parent[station] = parent
	}
	w.queue = append(w.queue, queueItem{station: station, stops: stops})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	var item queueItem
	for len(w.queue) > 0 {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		item = w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.station)
		if err := w.opts.OnVisit(item.station, item.stops); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.station, err)
		}
		w.expand(item)
	}

	return nil
}

// expand queues every unseen neighbor of item allowed by the filter and the stop limit.
func (w *walker) expand(item queueItem) {
	next := item.stops + 1
	if w.opts.MaxStops > 0 && next > w.opts.MaxStops {
		return
	}

	nbrs, _ := w.graph.NeighborNames(item.station)
	var nbr string
	for _, nbr = range nbrs {
		if _, seen := w.res.Stops[nbr]; seen {
			continue
		}
		if !w.opts.FilterNeighbor(item.station, nbr) {
			continue
		}
		w.enqueue(nbr, next, item.station)
	}
}
