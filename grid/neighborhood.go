package grid

// Neighborhood is the movement policy of a grid: which tiles are adjacent
// to a given tile, and optionally how far apart two tiles are at best.
//
// Implementations are pure and safe for concurrent use; the hierarchical
// cache dispatches on Estimable once per instance to decide between A*
// and Dijkstra, not per tile.
type Neighborhood interface {
	// Neighbors appends the in-bounds neighbor tiles of p to out and
	// returns the extended slice. The cost of stepping onto a neighbor is
	// the neighbor tile's own walk cost (see the package cost convention);
	// Neighbors itself performs no cost lookups.
	Neighbors(p Point, out []Point) []Point

	// Heuristic returns an admissible lower bound on the cost of
	// traveling from a to b, assuming every tile costs at least 1.
	// Implementations without a usable estimate return 0.
	Heuristic(a, b Point) Cost

	// Estimable reports whether Heuristic is informative. When false,
	// searches must not rely on the estimate and fall back to Dijkstra.
	Estimable() bool
}

var (
	manhattanOffsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	mooreOffsets     = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// offsetNeighborhood enumerates neighbors from a fixed offset table,
// clipped to the grid bounds. All provided neighborhoods share it.
type offsetNeighborhood struct {
	width, height int
	offsets       [][2]int
	estimate      func(a, b Point) Cost
}

// Neighbors appends every in-bounds p+offset to out.
// Complexity: O(d) with d = len(offsets).
func (n *offsetNeighborhood) Neighbors(p Point, out []Point) []Point {
	var q Point
	for _, d := range n.offsets {
		q = Point{X: p.X + d[0], Y: p.Y + d[1]}
		if q.X < 0 || q.X >= n.width || q.Y < 0 || q.Y >= n.height {
			continue
		}
		out = append(out, q)
	}

	return out
}

// Heuristic returns the configured estimate, or 0 when none exists.
func (n *offsetNeighborhood) Heuristic(a, b Point) Cost {
	if n.estimate == nil {
		return 0
	}

	return n.estimate(a, b)
}

// Estimable reports whether a distance estimate was configured.
func (n *offsetNeighborhood) Estimable() bool {
	return n.estimate != nil
}

// NewManhattanNeighborhood returns the orthogonal (4-directional) movement
// policy for a width×height grid. Its heuristic is the Manhattan distance
// |dx| + |dy|, admissible for any cost function with per-tile cost ≥ 1.
// Returns ErrBadDimensions if width or height is not positive.
func NewManhattanNeighborhood(width, height int) (Neighborhood, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadDimensions
	}

	return &offsetNeighborhood{
		width:   width,
		height:  height,
		offsets: manhattanOffsets,
		estimate: func(a, b Point) Cost {
			return Cost(abs(a.X-b.X) + abs(a.Y-b.Y))
		},
	}, nil
}

// NewMooreNeighborhood returns the orthogonal+diagonal (8-directional)
// movement policy for a width×height grid. Its heuristic is the Chebyshev
// distance max(|dx|, |dy|), admissible because a diagonal step advances
// both axes at once.
// Returns ErrBadDimensions if width or height is not positive.
func NewMooreNeighborhood(width, height int) (Neighborhood, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadDimensions
	}

	return &offsetNeighborhood{
		width:   width,
		height:  height,
		offsets: mooreOffsets,
		estimate: func(a, b Point) Cost {
			return Cost(max(abs(a.X-b.X), abs(a.Y-b.Y)))
		},
	}, nil
}

// NewCustomNeighborhood returns a movement policy with caller-defined step
// offsets (for example knight moves). The offset table is copied. No
// admissible estimate can be assumed for arbitrary offsets, so Estimable
// reports false and searches use Dijkstra. Reverse GridViews and the
// hierarchical cache retrace steps, so offset sets used there must be
// symmetric: for every offset its negation must also be present.
// Returns ErrBadDimensions if width or height is not positive.
func NewCustomNeighborhood(width, height int, offsets [][2]int) (Neighborhood, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadDimensions
	}
	own := make([][2]int, len(offsets))
	copy(own, offsets)

	return &offsetNeighborhood{
		width:   width,
		height:  height,
		offsets: own,
		// estimate deliberately nil: arbitrary offsets admit no safe bound.
	}, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
