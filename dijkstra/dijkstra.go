package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/metronav/core"
	"github.com/katalvlaran/metronav/pqueue"
)

// ShortestCost returns the minimum cost from src to dst under the configured
// cost model (Distance by default). The cost is in kilometres for Distance and
// seconds for a TimeModel. If dst is unreachable the result is Infinity with a
// nil error.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. options must be valid (ErrOptionViolation).
//  3. src and dst must exist (ErrStationNotFound).
func ShortestCost(g *core.Graph, src, dst string, opts ...Option) (int64, error) {
	r, err := newRunner(g, src, dst, opts)
	if err != nil {
		return 0, err
	}

	return r.run(), nil
}

// ShortestPath runs the same search as ShortestCost and also reconstructs the
// station sequence of the cheapest route.
func ShortestPath(g *core.Graph, src, dst string, opts ...Option) (*Result, error) {
	r, err := newRunner(g, src, dst, opts)
	if err != nil {
		return nil, err
	}

	res := &Result{Source: src, Target: dst, Cost: r.run()}
	if res.Reachable() {
		res.Path = r.path(dst)
	}

	return res, nil
}

// record is the mutable per-station search state. prev links to the record
// of the predecessor on the best known route, so the path-so-far of any record
// is the prev chain read backwards.
type record struct {
	station string
	cost    int64
	prev    *record
}

// runner holds the state for a single search.
type runner struct {
	g       *core.Graph
	model   CostModel
	src     string
	dst     string
	records map[string]*record
	live    map[string]pqueue.Handle // not yet finalized
	pq      *pqueue.Queue[*record]
}

func newRunner(g *core.Graph, src, dst string, opts []Option) (*runner, error) {
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

	if !g.HasStation(src) {
		return nil, fmt.Errorf("%w: %q", ErrStationNotFound, src)
	}
	if !g.HasStation(dst) {
		return nil, fmt.Errorf("%w: %q", ErrStationNotFound, dst)
	}

	return &runner{g: g, model: cfg.CostModel, src: src, dst: dst}, nil
}

// init queues one record per station: cost 0 for the source, Infinity otherwise.
func (r *runner) init() {
	stations := r.g.Stations()
	r.records = make(map[string]*record, len(stations))
	r.live = make(map[string]pqueue.Handle, len(stations))
	r.pq = pqueue.New[*record](func(a, b *record) bool { return a.cost < b.cost }, len(stations))

	var name string
	for _, name = range stations {
		rec := &record{station: name, cost: Infinity}
		if name == r.src {
			rec.cost = 0
		}
		r.records[name] = rec
		r.live[name] = r.pq.Insert(rec)
	}
}

// run executes the main loop and returns the destination cost.
//
// Loop termination conditions:
//
//   - The destination is extracted: its cost is final.
//   - The extracted minimum is Infinity: nothing left is reachable.
//   - The queue is empty.
func (r *runner) run() int64 {
	r.init()

	for !r.pq.IsEmpty() {
		// 1) Extract the cheapest live record. The queue is non-empty, so no error.
		rec, _ := r.pq.ExtractTop()

		// 2) The destination's cost is final once extracted.
		if rec.station == r.dst {
			return rec.cost
		}

		// 3) Finalize.
		delete(r.live, rec.station)

		// 4) Everything still queued is unreachable; relaxing would overflow.
		if rec.cost == Infinity {
			break
		}

		r.relax(rec)
	}

	return Infinity
}

// relax improves every live neighbor of u reachable through u more cheaply.
func (r *runner) relax(u *record) {
	// Sorted neighbor order keeps tie resolution reproducible.
	nbrs, _ := r.g.NeighborNames(u.station)

	var nbr string
	var km, candidate int64
	for _, nbr = range nbrs {
		h, ok := r.live[nbr]
		if !ok {
			continue
		}
		km, _ = r.g.Weight(u.station, nbr)
		candidate = u.cost + r.model.Cost(km)

		v := r.records[nbr]
		if candidate >= v.cost {
			continue
		}
		v.cost = candidate
		v.prev = u
		_ = r.pq.Reprioritize(h) // h is live, so it is queued
	}
}

// path walks the prev chain from the target record back to the source.
func (r *runner) path(target string) []string {
	var rev []string
	for rec := r.records[target]; rec != nil; rec = rec.prev {
		rev = append(rev, rec.station)
	}

	out := make([]string, len(rev))
	for i := range rev {
		out[i] = rev[len(rev)-1-i]
	}

	return out
}
