package core_test

import (
	"fmt"

	"github.com/katalvlaran/metronav/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	g := core.NewGraph()
	_ = g.AddStation("Yamuna Bank~B")
	_ = g.AddStation("Rajiv Chowk~BY")
	_ = g.AddStation("AIIMS~Y")

	_ = g.AddEdge("Yamuna Bank~B", "Rajiv Chowk~BY", 6)
	_ = g.AddEdge("Rajiv Chowk~BY", "AIIMS~Y", 7)

	fmt.Println("Stations:", g.StationCount(), "Edges:", g.EdgeCount())
	fmt.Println("AIIMS→Rajiv Chowk exists?", g.HasEdge("AIIMS~Y", "Rajiv Chowk~BY"))

	_ = g.RemoveStation("Rajiv Chowk~BY")
	fmt.Println("After removal:", g.Stations(), "Edges:", g.EdgeCount())

	// Output:
	// Stations: 3 Edges: 2
	// AIIMS→Rajiv Chowk exists? true
	// After removal: [AIIMS~Y Yamuna Bank~B] Edges: 0
}
