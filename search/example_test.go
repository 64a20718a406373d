package search_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/mazeagent/gridgraph"
	"github.com/katalvlaran/mazeagent/search"
)

// ExampleBreadthFirst finds a shortest route across an open 3×3 grid.
func ExampleBreadthFirst() {
	g := gridgraph.MustParse("...\n...\n...")
	res, err := search.BreadthFirst(g, gridgraph.Cell{}, gridgraph.Cell{Row: 2, Col: 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path, res.Steps(), res.Expanded)
	// Output:
	// [(0,0) (0,1) (0,2) (1,2) (2,2)] 4 8
}

// ExampleDepthFirst shows the LIFO discipline: the last pushed neighbor
// (up, then left, then down, then right) is explored first.
func ExampleDepthFirst() {
	g := gridgraph.MustParse("...\n...\n...")
	res, _ := search.DepthFirst(g, gridgraph.Cell{}, gridgraph.Cell{Row: 2, Col: 2})
	fmt.Println(res.Path)
	fmt.Println("steps:", res.Steps())
	// Output:
	// [(0,0) (1,0) (2,0) (2,1) (1,1) (0,1) (0,2) (1,2) (2,2)]
	// steps: 8
}

// ExampleAStarSearch routes around a wall with the Manhattan heuristic.
func ExampleAStarSearch() {
	g := gridgraph.MustParse("S.#\n..#\n#.G")
	res, _ := search.AStarSearch(g, gridgraph.Cell{}, gridgraph.Cell{Row: 2, Col: 2})
	fmt.Println(res.Found, res.Path)
	// Output:
	// true [(0,0) (0,1) (1,1) (2,1) (2,2)]
}

// ExampleFindPath_notFound: an unreachable goal is a result, not an error.
func ExampleFindPath_notFound() {
	g := gridgraph.MustParse("...\n..#\n.#.")
	res, err := search.FindPath(g, gridgraph.Cell{}, gridgraph.Cell{Row: 2, Col: 2}, search.AStar)
	fmt.Println(res.Found, res.Path == nil, err)
	// Output:
	// false true <nil>
}

// ExampleRace compares path lengths of all three strategies.
func ExampleRace() {
	g := gridgraph.MustParse("...\n...\n...")
	results, err := search.Race(context.Background(), g, gridgraph.Cell{}, gridgraph.Cell{Row: 2, Col: 2}, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, r := range results {
		fmt.Printf("%-5s steps=%d\n", r.Strategy, r.Steps())
	}
	// Output:
	// bfs   steps=4
	// dfs   steps=8
	// astar steps=4
}
