package metro_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metronav/core"
	"github.com/katalvlaran/metronav/dijkstra"
	"github.com/katalvlaran/metronav/metro"
)

func TestShortestCost_Gates(t *testing.T) {
	n := delhi(t)

	_, err := n.ShortestCost("Atlantis~Z", "Saket~Y", false)
	assert.ErrorIs(t, err, metro.ErrUnknownStation)
	_, err = n.ShortestCost("Saket~Y", "Atlantis~Z", true)
	assert.ErrorIs(t, err, metro.ErrUnknownStation)

	require.NoError(t, n.AddStation("Depot~Z"))
	_, err = n.ShortestCost("Saket~Y", "Depot~Z", false)
	assert.ErrorIs(t, err, metro.ErrUnreachable)
	_, err = n.BestPath("Depot~Z", "Saket~Y", true)
	assert.ErrorIs(t, err, metro.ErrUnreachable)

	// A station is always at zero cost from itself, even when isolated.
	c, err := n.ShortestCost("Depot~Z", "Depot~Z", true)
	require.NoError(t, err)
	assert.Zero(t, c)
}

func TestShortestCost_ReferenceValues(t *testing.T) {
	n := delhi(t)

	c, err := n.ShortestCost("Yamuna Bank~B", "Rajiv Chowk~BY", false)
	require.NoError(t, err)
	assert.Equal(t, int64(6), c)

	c, err = n.ShortestCost("Yamuna Bank~B", "Rajiv Chowk~BY", true)
	require.NoError(t, err)
	assert.Equal(t, int64(120+40*6), c)

	c, err = n.ShortestCost("Noida Sector 62~B", "IGI Airport~O", false)
	require.NoError(t, err)
	assert.Equal(t, int64(42), c)

	c, err = n.ShortestCost("Noida Sector 62~B", "IGI Airport~O", true)
	require.NoError(t, err)
	assert.Equal(t, int64(7*120+40*42), c)
}

func TestShortestCost_ZeroAndSymmetric(t *testing.T) {
	n := delhi(t)
	names := n.Stations()
	for _, a := range names {
		c, err := n.ShortestCost(a, a, false)
		require.NoError(t, err)
		assert.Zero(t, c, a)

		for _, b := range names {
			ab, err := n.ShortestCost(a, b, false)
			require.NoError(t, err)
			ba, err := n.ShortestCost(b, a, false)
			require.NoError(t, err)
			assert.Equal(t, ab, ba, "%s <-> %s", a, b)
		}
	}
}

func TestShortestCost_CustomTimeModel(t *testing.T) {
	n := delhi(t, metro.WithTimeModel(dijkstra.TimeModel{Dwell: 60, PerKm: 60}))
	c, err := n.ShortestCost("Yamuna Bank~B", "Rajiv Chowk~BY", true)
	require.NoError(t, err)
	assert.Equal(t, int64(60+60*6), c)
}

func TestRoute_CrossLine(t *testing.T) {
	n := delhi(t)
	r, err := n.Route("Vaishali~B", "Saket~Y", true)
	require.NoError(t, err)

	assert.Equal(t, []string{"Vaishali~B", "Yamuna Bank~B", "Rajiv Chowk~BY", "AIIMS~Y", "Saket~Y"}, r.Stations)
	assert.Equal(t, int64(27), r.Distance)
	assert.Equal(t, int64(4*120+40*27), r.Time)
	assert.Equal(t, int64(26), r.Minutes())
	assert.Equal(t, int64(26), r.Total())
	assert.Equal(t, metro.StrategyDijkstra, r.Strategy)

	assert.Equal(t, 1, r.Interchanges.Count)
	assert.Equal(t, "26", r.Interchanges.Total)
	assert.Equal(t, []string{"Vaishali~B", "Yamuna Bank~B", "Rajiv Chowk~BY ==> AIIMS~Y", "Saket~Y"}, r.Interchanges.Waypoints)
}

func TestRoute_PassThroughInterchangeStation(t *testing.T) {
	n := delhi(t)
	r, err := n.Route("Moti Nagar~B", "Dwarka Sector 21~B", false)
	require.NoError(t, err)
	assert.Equal(t, int64(13), r.Distance)
	assert.Zero(t, r.Interchanges.Count)
	assert.Equal(t, "Moti Nagar~B  Janak Puri West~BO  Dwarka Sector 21~B  13", r.Format())
}

func TestBestPath_StrategiesAgreeOnReferenceNetwork(t *testing.T) {
	opt := delhi(t)
	exh := delhi(t, metro.WithStrategy(metro.StrategyExhaustive))

	names := opt.Stations()
	for _, a := range names {
		for _, b := range names {
			for _, useTime := range []bool{false, true} {
				p1, err := opt.BestPath(a, b, useTime)
				require.NoError(t, err)
				p2, err := exh.BestPath(a, b, useTime)
				require.NoError(t, err)
				assert.Equal(t, p1, p2, "%s -> %s (time=%v)", a, b, useTime)
			}
		}
	}
}

func TestBestPath_StrategiesDifferOnCycles(t *testing.T) {
	build := func(opts ...metro.Option) *metro.Navigator {
		g := core.NewGraph()
		for _, s := range []string{"A~X", "B~X", "C~X"} {
			require.NoError(t, g.AddStation(s))
		}
		require.NoError(t, g.AddEdge("A~X", "B~X", 1))
		require.NoError(t, g.AddEdge("B~X", "C~X", 1))
		require.NoError(t, g.AddEdge("A~X", "C~X", 5))
		n, err := metro.New(g, opts...)
		require.NoError(t, err)
		return n
	}

	p, err := build().BestPath("A~X", "C~X", false)
	require.NoError(t, err)
	assert.Equal(t, "A~X  B~X  C~X  2", p)

	p, err = build(metro.WithStrategy(metro.StrategyExhaustive)).BestPath("A~X", "C~X", false)
	require.NoError(t, err)
	assert.Equal(t, "A~X  C~X  5", p)
}

func TestNavigator_Interchanges(t *testing.T) {
	n := delhi(t)
	p, err := n.BestPath("Yamuna Bank~B", "AIIMS~Y", false)
	require.NoError(t, err)
	assert.Equal(t, "Yamuna Bank~B  Rajiv Chowk~BY  AIIMS~Y  13", p)

	r := n.Interchanges(p)
	assert.Equal(t, 1, r.Count)
	assert.Equal(t, "13", r.Total)

	r = n.Interchanges("Noida Sector 62~B  Botanical Garden~B  Yamuna Bank~B  18")
	assert.Zero(t, r.Count)
}

func TestRoute_FewestStops(t *testing.T) {
	g := core.NewGraph()
	for _, s := range []string{"A~X", "B~X", "C~X", "D~X"} {
		require.NoError(t, g.AddStation(s))
	}
	require.NoError(t, g.AddEdge("A~X", "B~X", 1))
	require.NoError(t, g.AddEdge("B~X", "C~X", 1))
	require.NoError(t, g.AddEdge("C~X", "D~X", 1))
	require.NoError(t, g.AddEdge("A~X", "D~X", 10))

	n, err := metro.New(g, metro.WithStrategy(metro.StrategyFewestStops))
	require.NoError(t, err)
	r, err := n.Route("A~X", "D~X", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"A~X", "D~X"}, r.Stations)
	assert.Equal(t, int64(10), r.Distance)
	assert.Equal(t, metro.StrategyFewestStops, r.Strategy)

	opt, err := metro.New(g)
	require.NoError(t, err)
	p, err := opt.BestPath("A~X", "D~X", false)
	require.NoError(t, err)
	assert.Equal(t, "A~X  B~X  C~X  D~X  3", p)
}

func TestNearby(t *testing.T) {
	n := delhi(t)

	res, err := n.Nearby("New Delhi~YO", 1, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"New Delhi~YO", "Chandni Chowk~Y", "Rajiv Chowk~BY", "Shivaji Stadium~O"}, res.Order)

	res, err = n.Nearby("New Delhi~YO", 0, "O")
	require.NoError(t, err)
	assert.Equal(t, []string{"New Delhi~YO", "Shivaji Stadium~O", "DDS Campus~O", "IGI Airport~O"}, res.Order)
	assert.Equal(t, 3, res.Stops["IGI Airport~O"])

	_, err = n.Nearby("Atlantis~Z", 1, "")
	assert.ErrorIs(t, err, metro.ErrUnknownStation)
}
