package search_test

import (
	"fmt"

	"github.com/katalvlaran/hpath/grid"
	"github.com/katalvlaran/hpath/search"
)

// ExampleAStar finds the cheapest route across a 3×3 grid whose center
// tile is a swamp costing 10.
func ExampleAStar() {
	rows := [][]grid.Cost{
		{1, 1, 1},
		{1, 10, 1},
		{1, 1, 1},
	}
	nb, _ := grid.NewManhattanNeighborhood(3, 3)
	view := search.NewGridView(
		func(p grid.Point) grid.Cost { return rows[p.Y][p.X] },
		nb,
		grid.NewRect(0, 0, 3, 3),
		false,
	)

	res, ok, _ := search.AStar[grid.Point](view, grid.Point{X: 0, Y: 0}, grid.Point{X: 2, Y: 2}, view.Heuristic())
	fmt.Println(ok, res.Cost, len(res.Nodes))
	// Output:
	// true 4 5
}

// ExampleDijkstra reaches two goals at once; the blocked one is absent
// from the result map.
func ExampleDijkstra() {
	rows := [][]grid.Cost{{1, 1, -1, 1}}
	nb, _ := grid.NewManhattanNeighborhood(4, 1)
	view := search.NewGridView(
		func(p grid.Point) grid.Cost { return rows[p.Y][p.X] },
		nb,
		grid.NewRect(0, 0, 4, 1),
		false,
	)

	goals := []grid.Point{{X: 1, Y: 0}, {X: 3, Y: 0}}
	res, _ := search.Dijkstra[grid.Point](view, grid.Point{X: 0, Y: 0}, goals)

	fmt.Println(len(res), res[goals[0]].Cost)
	// Output:
	// 1 1
}
