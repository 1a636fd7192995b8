package dfs

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNotFound indicates that the source station does not exist in the graph.
	ErrStartNotFound = errors.New("dfs: start station not found")

	// ErrNoPath indicates that the destination was never reached.
	ErrNoPath = errors.New("dfs: no path to destination")
)

// Metric selects what BestPath minimizes.
type Metric int

const (
	// ByDistance minimizes the summed edge weights (km).
	ByDistance Metric = iota
	// ByTime minimizes travel time in seconds under the reference time model.
	ByTime
)

// String implements fmt.Stringer.
func (m Metric) String() string {
	if m == ByTime {
		return "time"
	}

	return "distance"
}

// PathSeparator follows every station in a formatted path.
const PathSeparator = "  "

// Path is a route found by BestPath together with both of its totals.
type Path struct {
	// Stations from source to destination inclusive.
	Stations []string
	// Distance in km.
	Distance int64
	// Time in seconds.
	Time int64
}

// Minutes returns Time rounded up to whole minutes.
func (p *Path) Minutes() int64 { return (p.Time + 59) / 60 }

// Total returns the figure reported for metric m: km for ByDistance, whole
// minutes for ByTime.
func (p *Path) Total(m Metric) int64 {
	if m == ByTime {
		return p.Minutes()
	}

	return p.Distance
}

// Format renders the path as each station followed by two spaces, then the
// total for metric m:
//
//	"Moti Nagar~B  Janak Puri West~BO  Dwarka Sector 21~B  13"
func (p *Path) Format(m Metric) string {
	var b strings.Builder
	var s string
	for _, s = range p.Stations {
		b.WriteString(s)
		b.WriteString(PathSeparator)
	}
	b.WriteString(strconv.FormatInt(p.Total(m), 10))

	return b.String()
}
