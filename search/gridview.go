package search

import "github.com/katalvlaran/hpath/grid"

// GridView presents a rectangular region of a grid as a Graph over tile
// coordinates. Tiles outside the region or with a blocked cost are never
// yielded, so any search through the view terminates within the region.
//
// Orientation follows the module's cost convention: a forward view charges
// the tile being entered; a reverse view charges the tile being left.
// Walking the same tile sequence costs the same in both orientations,
// which is what makes reverse search exact for connecting a goal tile to
// the entrance graph under asymmetric tile costs.
//
// A GridView is immutable and safe for concurrent use as long as the
// underlying CostFunc is.
type GridView struct {
	cost    grid.CostFunc
	nb      grid.Neighborhood
	bounds  grid.Rect
	reverse bool
}

// NewGridView builds a view of the region bounds over the given cost
// function and movement policy. Neighborhood adjacency must be symmetric
// (b reachable from a implies a reachable from b) for reverse views to be
// meaningful; the built-in neighborhoods are.
func NewGridView(cost grid.CostFunc, nb grid.Neighborhood, bounds grid.Rect, reverse bool) *GridView {
	return &GridView{cost: cost, nb: nb, bounds: bounds, reverse: reverse}
}

// Neighbors implements Graph[grid.Point] over the bounded region.
// Complexity: O(d) neighborhood enumerations plus one cost lookup each.
func (v *GridView) Neighbors(p grid.Point, out []Neighbor[grid.Point]) []Neighbor[grid.Point] {
	var buf [8]grid.Point
	var stepCost grid.Cost
	if v.reverse {
		stepCost = v.cost(p)
	}
	for _, q := range v.nb.Neighbors(p, buf[:0]) {
		if !v.bounds.Contains(q) {
			continue
		}
		c := v.cost(q)
		if c.Blocked() {
			continue
		}
		if v.reverse {
			out = append(out, Neighbor[grid.Point]{To: q, Cost: stepCost})
		} else {
			out = append(out, Neighbor[grid.Point]{To: q, Cost: c})
		}
	}

	return out
}

// Heuristic adapts the neighborhood estimate to the engine's Heuristic
// type, or returns nil when the neighborhood has none, selecting Dijkstra
// ordering instead.
func (v *GridView) Heuristic() Heuristic[grid.Point] {
	if !v.nb.Estimable() {
		return nil
	}

	return v.nb.Heuristic
}
