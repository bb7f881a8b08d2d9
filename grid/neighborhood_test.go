package grid_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/katalvlaran/hpath/grid"
)

//----------------------------------------------------------------------------//
// Constructor validation
//----------------------------------------------------------------------------//

// TestNeighborhood_BadDimensions verifies that every constructor rejects
// non-positive grid dimensions with ErrBadDimensions.
func TestNeighborhood_BadDimensions(t *testing.T) {
	cases := []struct {
		name string
		w, h int
	}{
		{"ZeroWidth", 0, 5},
		{"ZeroHeight", 5, 0},
		{"NegativeWidth", -1, 5},
		{"BothZero", 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := grid.NewManhattanNeighborhood(tc.w, tc.h); !errors.Is(err, grid.ErrBadDimensions) {
				t.Errorf("NewManhattanNeighborhood(%d,%d) error = %v; want ErrBadDimensions", tc.w, tc.h, err)
			}
			if _, err := grid.NewMooreNeighborhood(tc.w, tc.h); !errors.Is(err, grid.ErrBadDimensions) {
				t.Errorf("NewMooreNeighborhood(%d,%d) error = %v; want ErrBadDimensions", tc.w, tc.h, err)
			}
			if _, err := grid.NewCustomNeighborhood(tc.w, tc.h, [][2]int{{1, 0}}); !errors.Is(err, grid.ErrBadDimensions) {
				t.Errorf("NewCustomNeighborhood(%d,%d) error = %v; want ErrBadDimensions", tc.w, tc.h, err)
			}
		})
	}
}

//----------------------------------------------------------------------------//
// Neighbor enumeration
//----------------------------------------------------------------------------//

func sortedNeighbors(t *testing.T, nb grid.Neighborhood, p grid.Point) []grid.Point {
	t.Helper()
	out := nb.Neighbors(p, nil)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// TestManhattan_Neighbors checks clipping on corners, edges and interior
// of a 3×3 grid.
func TestManhattan_Neighbors(t *testing.T) {
	nb, err := grid.NewManhattanNeighborhood(3, 3)
	if err != nil {
		t.Fatalf("NewManhattanNeighborhood error: %v", err)
	}

	cases := []struct {
		name string
		p    grid.Point
		want []grid.Point
	}{
		{"Corner", grid.Point{X: 0, Y: 0}, []grid.Point{{X: 1, Y: 0}, {X: 0, Y: 1}}},
		{"Edge", grid.Point{X: 1, Y: 0}, []grid.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 1}}},
		{"Center", grid.Point{X: 1, Y: 1}, []grid.Point{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := sortedNeighbors(t, nb, tc.p)
			if len(got) != len(tc.want) {
				t.Fatalf("Neighbors(%v) = %v; want %v", tc.p, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("Neighbors(%v)[%d] = %v; want %v", tc.p, i, got[i], tc.want[i])
				}
			}
		})
	}
}

// TestMoore_Neighbors checks that diagonals appear and are clipped.
func TestMoore_Neighbors(t *testing.T) {
	nb, err := grid.NewMooreNeighborhood(3, 3)
	if err != nil {
		t.Fatalf("NewMooreNeighborhood error: %v", err)
	}

	if got := nb.Neighbors(grid.Point{X: 1, Y: 1}, nil); len(got) != 8 {
		t.Errorf("center Neighbors = %d tiles; want 8", len(got))
	}
	if got := nb.Neighbors(grid.Point{X: 0, Y: 0}, nil); len(got) != 3 {
		t.Errorf("corner Neighbors = %d tiles; want 3", len(got))
	}
}

// TestCustom_Neighbors verifies knight-move offsets and the missing estimate.
func TestCustom_Neighbors(t *testing.T) {
	offsets := [][2]int{{1, 2}, {2, 1}, {-1, 2}, {-2, 1}, {1, -2}, {2, -1}, {-1, -2}, {-2, -1}}
	nb, err := grid.NewCustomNeighborhood(5, 5, offsets)
	if err != nil {
		t.Fatalf("NewCustomNeighborhood error: %v", err)
	}

	if nb.Estimable() {
		t.Error("custom neighborhood must not be estimable")
	}
	if h := nb.Heuristic(grid.Point{}, grid.Point{X: 4, Y: 4}); h != 0 {
		t.Errorf("Heuristic = %d; want 0 for non-estimable neighborhood", h)
	}
	if got := nb.Neighbors(grid.Point{X: 2, Y: 2}, nil); len(got) != 8 {
		t.Errorf("knight Neighbors from center = %d tiles; want 8", len(got))
	}
	if got := nb.Neighbors(grid.Point{X: 0, Y: 0}, nil); len(got) != 2 {
		t.Errorf("knight Neighbors from corner = %d tiles; want 2", len(got))
	}
}

//----------------------------------------------------------------------------//
// Heuristics and basic types
//----------------------------------------------------------------------------//

// TestHeuristics verifies the Manhattan and Chebyshev estimates.
func TestHeuristics(t *testing.T) {
	man, _ := grid.NewManhattanNeighborhood(10, 10)
	moo, _ := grid.NewMooreNeighborhood(10, 10)

	a, b := grid.Point{X: 1, Y: 2}, grid.Point{X: 4, Y: 8}
	if h := man.Heuristic(a, b); h != 9 {
		t.Errorf("Manhattan Heuristic = %d; want 9", h)
	}
	if h := moo.Heuristic(a, b); h != 6 {
		t.Errorf("Moore Heuristic = %d; want 6", h)
	}
	if !man.Estimable() || !moo.Estimable() {
		t.Error("built-in neighborhoods must be estimable")
	}
}

// TestCostAndRect covers Cost.Blocked and Rect geometry.
func TestCostAndRect(t *testing.T) {
	if grid.Cost(0).Blocked() || grid.Cost(7).Blocked() {
		t.Error("non-negative costs must be walkable")
	}
	if !grid.Cost(-1).Blocked() {
		t.Error("negative cost must be blocked")
	}

	r := grid.NewRect(3, 4, 2, 3)
	if r.Dx() != 2 || r.Dy() != 3 || r.Area() != 6 {
		t.Errorf("Rect geometry = %dx%d area %d; want 2x3 area 6", r.Dx(), r.Dy(), r.Area())
	}
	if !r.Contains(grid.Point{X: 3, Y: 4}) || !r.Contains(grid.Point{X: 4, Y: 6}) {
		t.Error("Rect must contain its min corner and interior")
	}
	if r.Contains(grid.Point{X: 5, Y: 4}) || r.Contains(grid.Point{X: 3, Y: 7}) {
		t.Error("Rect must exclude its max edges (half-open)")
	}
}
