package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the routing functions.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrStationNotFound indicates that the source or destination is not in the graph.
	ErrStationNotFound = errors.New("dijkstra: station not found in graph")

	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Infinity is the cost of a station that has not been reached.
const Infinity int64 = math.MaxInt64

// CostModel maps the physical length of one edge, in kilometres, to the cost
// of traversing it. Implementations must return a non-negative cost for every
// positive weight.
type CostModel interface {
	Cost(km int64) int64
}

// DistanceModel charges the raw edge weight.
type DistanceModel struct{}

// Cost returns km unchanged.
func (DistanceModel) Cost(km int64) int64 { return km }

// String implements fmt.Stringer.
func (DistanceModel) String() string { return "distance" }

// TimeModel charges a fixed dwell time per traversed edge plus a per-kilometre
// running time, both in seconds.
type TimeModel struct {
	Dwell int64
	PerKm int64
}

// Cost returns Dwell + PerKm·km.
func (m TimeModel) Cost(km int64) int64 { return m.Dwell + m.PerKm*km }

// String implements fmt.Stringer.
func (m TimeModel) String() string {
	return fmt.Sprintf("time(dwell=%ds, per_km=%ds)", m.Dwell, m.PerKm)
}

// Validate reports whether the model can only produce non-negative costs.
func (m TimeModel) Validate() error {
	if m.Dwell < 0 || m.PerKm < 0 {
		return fmt.Errorf("%w: time model %v has a negative component", ErrOptionViolation, m)
	}

	return nil
}

var (
	// Distance is the raw-distance cost model.
	Distance CostModel = DistanceModel{}

	// DefaultTime is the reference time model: 120 s dwell + 40 s/km.
	DefaultTime = TimeModel{Dwell: 120, PerKm: 40}
)

// ModelFor maps the boolean cost-model selector used by the console front-end:
// false selects Distance, true selects DefaultTime.
func ModelFor(useTime bool) CostModel {
	if useTime {
		return DefaultTime
	}

	return Distance
}

// Options configures a routing run.
//
// CostModel – edge cost transform. Default is Distance.
type Options struct {
	CostModel CostModel

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring a routing run.
type Option func(*Options)

// DefaultOptions returns Options using the Distance cost model.
func DefaultOptions() Options {
	return Options{CostModel: Distance}
}

// WithCostModel selects the edge cost transform. A nil model, or a TimeModel
// with a negative component, is recorded and reported as ErrOptionViolation.
func WithCostModel(m CostModel) Option {
	return func(o *Options) {
		if m == nil {
			o.err = fmt.Errorf("%w: nil cost model", ErrOptionViolation)
			return
		}
		if tm, ok := m.(TimeModel); ok {
			if err := tm.Validate(); err != nil {
				o.err = err
				return
			}
		}
		o.CostModel = m
	}
}

// WithTimeModel is shorthand for WithCostModel(DefaultTime).
func WithTimeModel() Option {
	return WithCostModel(DefaultTime)
}

// Result is the outcome of ShortestPath.
type Result struct {
	// Source and Target are the queried endpoints.
	Source, Target string

	// Cost is the total cost under the selected model, or Infinity if Target is unreachable.
	Cost int64

	// Path lists the stations from Source to Target inclusive; nil if unreachable.
	Path []string
}

// Reachable reports whether Target was reached.
func (r *Result) Reachable() bool { return r.Cost != Infinity }
