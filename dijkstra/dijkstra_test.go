// Package dijkstra_test validates the shortest-cost engine on small graphs
// and on the Delhi reference network.
package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metronav/core"
	"github.com/katalvlaran/metronav/dijkstra"
	"github.com/katalvlaran/metronav/network"
)

func delhi(t *testing.T) *core.Graph {
	t.Helper()
	g, err := network.Default()
	require.NoError(t, err)

	return g
}

// build creates a graph from (a, b, km) triples, adding stations on the fly.
func build(t *testing.T, edges ...edge) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		require.NoError(t, g.AddStation(e.a))
		require.NoError(t, g.AddStation(e.b))
		require.NoError(t, g.AddEdge(e.a, e.b, e.km))
	}

	return g
}

type edge struct {
	a, b string
	km   int64
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestShortestCost_NilGraph(t *testing.T) {
	_, err := dijkstra.ShortestCost(nil, "A", "B")
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestShortestCost_UnknownStation(t *testing.T) {
	g := build(t, edge{"A~X", "B~X", 1})
	_, err := dijkstra.ShortestCost(g, "Z~X", "B~X")
	assert.ErrorIs(t, err, dijkstra.ErrStationNotFound)
	_, err = dijkstra.ShortestPath(g, "A~X", "Z~X")
	assert.ErrorIs(t, err, dijkstra.ErrStationNotFound)
}

func TestShortestCost_BadOptions(t *testing.T) {
	g := build(t, edge{"A~X", "B~X", 1})
	_, err := dijkstra.ShortestCost(g, "A~X", "B~X", dijkstra.WithCostModel(nil))
	assert.ErrorIs(t, err, dijkstra.ErrOptionViolation)

	_, err = dijkstra.ShortestCost(g, "A~X", "B~X",
		dijkstra.WithCostModel(dijkstra.TimeModel{Dwell: -1, PerKm: 40}))
	assert.ErrorIs(t, err, dijkstra.ErrOptionViolation)
}

// ------------------------------------------------------------------------
// 2. Cost models
// ------------------------------------------------------------------------

func TestCostModels(t *testing.T) {
	assert.Equal(t, int64(6), dijkstra.Distance.Cost(6))
	assert.Equal(t, int64(120+40*6), dijkstra.DefaultTime.Cost(6))
	assert.Equal(t, dijkstra.Distance, dijkstra.ModelFor(false))
	assert.Equal(t, dijkstra.CostModel(dijkstra.DefaultTime), dijkstra.ModelFor(true))
	assert.NoError(t, dijkstra.DefaultTime.Validate())
}

func TestShortestPath_ModelChangesRoute(t *testing.T) {
	// Direct A-B is 5 km; the detour A-C-D-B is 3 km over three hops.
	// Distance prefers the detour, time (120 s per hop) prefers the direct edge.
	g := build(t,
		edge{"A~X", "B~X", 5},
		edge{"A~X", "C~X", 1},
		edge{"C~X", "D~X", 1},
		edge{"D~X", "B~X", 1},
	)

	res, err := dijkstra.ShortestPath(g, "A~X", "B~X")
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Cost)
	assert.Equal(t, []string{"A~X", "C~X", "D~X", "B~X"}, res.Path)

	res, err = dijkstra.ShortestPath(g, "A~X", "B~X", dijkstra.WithTimeModel())
	require.NoError(t, err)
	assert.Equal(t, int64(120+40*5), res.Cost)
	assert.Equal(t, []string{"A~X", "B~X"}, res.Path)
}

// ------------------------------------------------------------------------
// 3. Properties
// ------------------------------------------------------------------------

func TestShortestCost_SelfIsZero(t *testing.T) {
	g := delhi(t)
	for _, s := range g.Stations() {
		for _, useTime := range []bool{false, true} {
			c, err := dijkstra.ShortestCost(g, s, s, dijkstra.WithCostModel(dijkstra.ModelFor(useTime)))
			require.NoError(t, err)
			assert.Equal(t, int64(0), c, s)
		}
	}

	res, err := dijkstra.ShortestPath(g, "Saket~Y", "Saket~Y")
	require.NoError(t, err)
	assert.Equal(t, []string{"Saket~Y"}, res.Path)
}

func TestShortestCost_Symmetric(t *testing.T) {
	g := delhi(t)
	names := g.Stations()
	for i, a := range names {
		for _, b := range names[i+1:] {
			ab, err := dijkstra.ShortestCost(g, a, b)
			require.NoError(t, err)
			ba, err := dijkstra.ShortestCost(g, b, a)
			require.NoError(t, err)
			assert.Equal(t, ab, ba, "%s <-> %s", a, b)
		}
	}
}

func TestShortestPath_CostMatchesPathWeights(t *testing.T) {
	g := delhi(t)
	names := g.Stations()
	for _, a := range names {
		for _, b := range names {
			res, err := dijkstra.ShortestPath(g, a, b, dijkstra.WithTimeModel())
			require.NoError(t, err)
			require.True(t, res.Reachable())
			require.Equal(t, a, res.Path[0])
			require.Equal(t, b, res.Path[len(res.Path)-1])

			var sum int64
			for i := 1; i < len(res.Path); i++ {
				km, ok := g.Weight(res.Path[i-1], res.Path[i])
				require.True(t, ok)
				sum += dijkstra.DefaultTime.Cost(km)
			}
			assert.Equal(t, res.Cost, sum)
		}
	}
}

// ------------------------------------------------------------------------
// 4. Reference network
// ------------------------------------------------------------------------

func TestShortestCost_ReferenceNetwork(t *testing.T) {
	g := delhi(t)
	cases := []struct {
		src, dst string
		useTime  bool
		want     int64
	}{
		{"Yamuna Bank~B", "Rajiv Chowk~BY", false, 6},
		{"Yamuna Bank~B", "Rajiv Chowk~BY", true, 360},
		{"Noida Sector 62~B", "IGI Airport~O", false, 42},
		{"Noida Sector 62~B", "IGI Airport~O", true, 7*120 + 40*42},
		{"Huda City Center~Y", "Dwarka Sector 21~B", false, 50},
		{"Moti Nagar~B", "Dwarka Sector 21~B", false, 13},
	}
	for _, tc := range cases {
		got, err := dijkstra.ShortestCost(g, tc.src, tc.dst, dijkstra.WithCostModel(dijkstra.ModelFor(tc.useTime)))
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s -> %s (time=%v)", tc.src, tc.dst, tc.useTime)
	}
}

func TestShortestPath_Unreachable(t *testing.T) {
	g := build(t, edge{"A~X", "B~X", 1}, edge{"C~Y", "D~Y", 1})

	c, err := dijkstra.ShortestCost(g, "A~X", "D~Y")
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Infinity, c)

	res, err := dijkstra.ShortestPath(g, "A~X", "D~Y")
	require.NoError(t, err)
	assert.False(t, res.Reachable())
	assert.Nil(t, res.Path)
}
