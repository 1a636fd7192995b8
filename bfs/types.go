package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/metronav/core"
)

// Sentinel errors for stop-count searches.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNotFound is returned when the start station is absent.
	ErrStartNotFound = errors.New("bfs: start station not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo when the destination was not reached.
	ErrNoPath = errors.New("bfs: no path to station")
)

// Option configures Search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Search.
type Option func(*Options)

// Options holds the parameters and callbacks of a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a station. If it returns an error,
	// the search aborts and propagates that error.
	OnVisit func(station string, stops int) error

	// MaxStops, if > 0, stops exploring beyond this many stops.
	MaxStops int

	// FilterNeighbor can skip hops by returning false.
	FilterNeighbor func(curr, next string) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, no stop limit,
// no filtering and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(string, int) error { return nil },
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(station string, stops int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxStops limits the search radius.
//
//	n > 0: limit to n stops
//	n == 0: no limit
//	n < 0: ErrOptionViolation
func WithMaxStops(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxStops cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxStops = n
	}
}

// WithFilterNeighbor skips hops when fn returns false. Filters compose:
// every registered filter must accept a hop.
func WithFilterNeighbor(fn func(curr, next string) bool) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		prev := o.FilterNeighbor
		o.FilterNeighbor = func(curr, next string) bool {
			return prev(curr, next) && fn(curr, next)
		}
	}
}

// WithLine restricts the search to hops between stations that both serve
// the given line code, as parsed from station names.
func WithLine(code string) Option {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return func(o *Options) {
			o.err = fmt.Errorf("%w: empty line code", ErrOptionViolation)
		}
	}

	return WithFilterNeighbor(func(curr, next string) bool {
		return slices.Contains(core.ParseLines(curr), code) &&
			slices.Contains(core.ParseLines(next), code)
	})
}

// Result holds the outcome of a search.
type Result struct {
	// Start is the station the search began from.
	Start string
	// Order lists stations in visit sequence.
	Order []string
	// Stops maps each reached station to its stop count from Start.
	Stops map[string]int
	// Parent maps each reached station except Start to its predecessor.
	Parent map[string]string
}

// Reached reports whether station was reached.
func (r *Result) Reached(station string) bool {
	_, ok := r.Stops[station]
	return ok
}

// PathTo reconstructs the fewest-stops route from Start to dst.
func (r *Result) PathTo(dst string) ([]string, error) {
	if !r.Reached(dst) {
		return nil, fmt.Errorf("%w: %q", ErrNoPath, dst)
	}
	path := make([]string, 0, r.Stops[dst]+1)
	for cur := dst; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	slices.Reverse(path)

	return path, nil
}
