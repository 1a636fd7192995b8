package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metronav/bfs"
	"github.com/katalvlaran/metronav/core"
	"github.com/katalvlaran/metronav/network"
)

func delhi(t testing.TB) *core.Graph {
	t.Helper()
	g, err := network.Default()
	require.NoError(t, err)

	return g
}

// square builds the cycle A–B–C–D–A with unit weights.
func square(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, s := range []string{"A~X", "B~X", "C~X", "D~X"} {
		require.NoError(t, g.AddStation(s))
	}
	require.NoError(t, g.AddEdge("A~X", "B~X", 1))
	require.NoError(t, g.AddEdge("B~X", "C~X", 9))
	require.NoError(t, g.AddEdge("C~X", "D~X", 1))
	require.NoError(t, g.AddEdge("D~X", "A~X", 1))

	return g
}

// TestSearch_Errors verifies that invalid inputs and options are rejected.
func TestSearch_Errors(t *testing.T) {
	_, err := bfs.Search(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := square(t)
	_, err = bfs.Search(g, "Z~X")
	assert.ErrorIs(t, err, bfs.ErrStartNotFound)

	_, err = bfs.Search(g, "A~X", bfs.WithMaxStops(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	_, err = bfs.Search(g, "A~X", bfs.WithLine("  "))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestSearch_CycleStopsIgnoreWeights checks that stop counts ignore km and
// that ties resolve to the lexicographically first predecessor.
func TestSearch_CycleStopsIgnoreWeights(t *testing.T) {
	res, err := bfs.Search(square(t), "A~X")
	require.NoError(t, err)

	assert.Equal(t, []string{"A~X", "B~X", "D~X", "C~X"}, res.Order)
	assert.Equal(t, map[string]int{"A~X": 0, "B~X": 1, "D~X": 1, "C~X": 2}, res.Stops)

	path, err := res.PathTo("C~X")
	require.NoError(t, err)
	assert.Equal(t, []string{"A~X", "B~X", "C~X"}, path)

	path, err = res.PathTo("A~X")
	require.NoError(t, err)
	assert.Equal(t, []string{"A~X"}, path)
}

func TestFewestStops_Reference(t *testing.T) {
	g := delhi(t)
	path, err := bfs.FewestStops(g, "Vaishali~B", "Saket~Y")
	require.NoError(t, err)
	assert.Equal(t, []string{"Vaishali~B", "Yamuna Bank~B", "Rajiv Chowk~BY", "AIIMS~Y", "Saket~Y"}, path)
}

func TestSearch_MaxStops(t *testing.T) {
	g := delhi(t)
	res, err := bfs.Search(g, "Rajiv Chowk~BY", bfs.WithMaxStops(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"Rajiv Chowk~BY", "AIIMS~Y", "Moti Nagar~B", "New Delhi~YO", "Yamuna Bank~B"}, res.Order)

	_, err = res.PathTo("Saket~Y")
	assert.ErrorIs(t, err, bfs.ErrNoPath)
	assert.False(t, res.Reached("Saket~Y"))

	// Zero means no limit.
	res, err = bfs.Search(g, "Rajiv Chowk~BY", bfs.WithMaxStops(0))
	require.NoError(t, err)
	assert.Len(t, res.Order, g.StationCount())
}

func TestSearch_WithLine(t *testing.T) {
	g := delhi(t)
	res, err := bfs.Search(g, "Rajiv Chowk~BY", bfs.WithLine("y"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"Rajiv Chowk~BY", "AIIMS~Y", "New Delhi~YO", "Saket~Y",
		"Chandni Chowk~Y", "Huda City Center~Y", "Vishwavidyalaya~Y",
	}, res.Order)

	_, err = bfs.FewestStops(g, "Rajiv Chowk~BY", "Vaishali~B", bfs.WithLine("Y"))
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

func TestSearch_FiltersCompose(t *testing.T) {
	g := delhi(t)
	res, err := bfs.Search(g, "Rajiv Chowk~BY",
		bfs.WithLine("Y"),
		bfs.WithFilterNeighbor(func(_, next string) bool { return next != "New Delhi~YO" }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"Rajiv Chowk~BY", "AIIMS~Y", "Saket~Y", "Huda City Center~Y"}, res.Order)
}

func TestSearch_HookAndCancel(t *testing.T) {
	g := delhi(t)
	stop := errors.New("enough")
	_, err := bfs.Search(g, "Saket~Y", bfs.WithOnVisit(func(station string, stops int) error {
		if stops == 2 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.Search(g, "Saket~Y", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
