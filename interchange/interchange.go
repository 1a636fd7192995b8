package interchange

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/metronav/core"
)

// Marker joins an interchange station to the station after it.
const Marker = " ==> "

// Separator delimits tokens of a formatted route string.
const Separator = "  "

// Report is the annotated form of a route.
type Report struct {
	// Waypoints are stations and interchange markers in travel order.
	Waypoints []string
	// Count is the number of interchanges.
	Count int
	// Total is the trailing distance or time figure of a parsed route, if any.
	Total string
}

// LinesFunc returns the sorted line codes of a station.
type LinesFunc func(station string) []string

// Analyze annotates stations using the line codes encoded in their names.
func Analyze(stations []string) Report {
	return AnalyzeWith(stations, core.ParseLines)
}

// AnalyzeGraph annotates stations using the line sets recorded in g.
// Stations unknown to g fall back to the codes in their names.
func AnalyzeGraph(g *core.Graph, stations []string) Report {
	return AnalyzeWith(stations, func(name string) []string {
		if s, ok := g.Station(name); ok {
			return s.Lines
		}
		return core.ParseLines(name)
	})
}

// AnalyzeWith annotates stations, asking lines for each station's line set.
//
// Implementation:
//   - Stage 1: Emit the first station.
//   - Stage 2: For each interior station i, if it serves exactly two lines
//     and lines(i-1) differs from lines(i+1), emit "i ==> i+1", skip i+1 and
//     count it; otherwise emit i.
//   - Stage 3: Emit the last station unless Stage 2 consumed it.
//
// Complexity: O(n) line lookups.
func AnalyzeWith(stations []string, lines LinesFunc) Report {
	var r Report
	n := len(stations)
	if n == 0 {
		return r
	}

	r.Waypoints = make([]string, 0, n)
	r.Waypoints = append(r.Waypoints, stations[0])
	if n == 1 {
		return r
	}

	i := 1
	for ; i < n-1; i++ {
		if len(lines(stations[i])) != 2 ||
			core.SameLines(lines(stations[i-1]), lines(stations[i+1])) {
			r.Waypoints = append(r.Waypoints, stations[i])
			continue
		}
		r.Waypoints = append(r.Waypoints, stations[i]+Marker+stations[i+1])
		r.Count++
		i++
	}
	// i == n-1 unless the final marker consumed the last station.
	if i == n-1 {
		r.Waypoints = append(r.Waypoints, stations[n-1])
	}

	return r
}

// Parse splits a formatted route into its stations and trailing figure.
// A route whose last token is not an integer has no figure.
func Parse(path string) (stations []string, total string) {
	var tok string
	for _, tok = range strings.Split(strings.TrimSpace(path), Separator) {
		if tok = strings.TrimSpace(tok); tok != "" {
			stations = append(stations, tok)
		}
	}
	if len(stations) == 0 {
		return nil, ""
	}

	last := stations[len(stations)-1]
	if _, err := strconv.ParseInt(last, 10, 64); err == nil {
		return stations[:len(stations)-1], last
	}

	return stations, ""
}

// Interchanges parses a formatted route and annotates it.
func Interchanges(path string) Report {
	stations, total := Parse(path)
	r := Analyze(stations)
	r.Total = total

	return r
}
