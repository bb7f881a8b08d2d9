package pathcache

import (
	"sort"

	"github.com/katalvlaran/hpath/grid"
	"github.com/katalvlaran/hpath/search"
)

// chunk is one fixed-size rectangular partition of the grid. It owns the
// IDs of the entrance nodes on its own border; the nodes themselves live
// in the cache's arena.
type chunk struct {
	rect  grid.Rect
	nodes map[NodeID]struct{}
}

// edgeSpec is one intra-edge computed off to the side during a chunk
// (re)build, applied to the arena only at swap time.
type edgeSpec struct {
	from, to grid.Point
	cost     grid.Cost
	tiles    []grid.Point
}

// side offsets in N, E, S, W order.
var sideOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// entranceCandidates derives the entrance tiles of the chunk covering
// rect, in deterministic (y, x) order.
//
// A border tile qualifies when it is walkable and at least one of its
// neighborhood neighbors in the adjacent chunk is walkable. Tiles whose
// directly-opposite counterpart is walkable form mirror-symmetric runs
// with the adjacent chunk; with CoalesceEntrances each run collapses to
// its middle tile, and the mirrored run collapses to the matching tile,
// keeping the crossing intact. Tiles reachable only through a diagonal
// squeeze never coalesce — their crossing partner is in the same
// situation on the other side, so both keep a node and stay connected.
//
// Corner tiles adjacent to a walkable tile of a diagonally-touching
// chunk also qualify, covering corner-to-corner crossings.
//
// Complexity: O(perimeter × d) cost lookups.
func (c *PathCache) entranceCandidates(rect grid.Rect, cost grid.CostFunc) []grid.Point {
	cand := make(map[grid.Point]struct{})
	ccx, ccy := c.chunkCoordsAt(grid.Point{X: rect.MinX, Y: rect.MinY})

	var nbBuf [8]grid.Point
	walkable := func(p grid.Point) bool {
		return !cost(p).Blocked()
	}

	for side, off := range sideOffsets {
		// Skip sides on the grid edge: no adjacent chunk, no entrances.
		ncx, ncy := ccx+off[0], ccy+off[1]
		if ncx < 0 || ncx >= c.chunkCols || ncy < 0 || ncy >= c.chunkRows {
			continue
		}
		neighborRect := c.chunkRect(ncx, ncy)

		// Enumerate the border tiles of this side in ascending order.
		tiles := sideTiles(rect, side)

		var run []grid.Point
		flush := func() {
			if len(run) == 0 {
				return
			}
			if c.cfg.CoalesceEntrances {
				cand[run[len(run)/2]] = struct{}{}
			} else {
				for _, p := range run {
					cand[p] = struct{}{}
				}
			}
			run = run[:0]
		}

		for _, t := range tiles {
			classic := walkable(t) && walkable(grid.Point{X: t.X + off[0], Y: t.Y + off[1]})
			if classic {
				run = append(run, t)

				continue
			}
			flush()

			if !walkable(t) {
				continue
			}
			// Diagonal-squeeze opening: usable crossing without a walkable
			// direct counterpart. Always an individual node.
			for _, q := range c.nb.Neighbors(t, nbBuf[:0]) {
				if neighborRect.Contains(q) && walkable(q) {
					cand[t] = struct{}{}

					break
				}
			}
		}
		flush()
	}

	// Corner crossings into diagonally-touching chunks.
	corners := [4]grid.Point{
		{X: rect.MinX, Y: rect.MinY},
		{X: rect.MaxX - 1, Y: rect.MinY},
		{X: rect.MinX, Y: rect.MaxY - 1},
		{X: rect.MaxX - 1, Y: rect.MaxY - 1},
	}
	for _, t := range corners {
		if !walkable(t) {
			continue
		}
		for _, q := range c.nb.Neighbors(t, nbBuf[:0]) {
			if !c.bounds.Contains(q) {
				continue
			}
			qcx, qcy := c.chunkCoordsAt(q)
			if qcx != ccx && qcy != ccy && walkable(q) {
				cand[t] = struct{}{}

				break
			}
		}
	}

	out := make([]grid.Point, 0, len(cand))
	for p := range cand {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}

		return out[i].X < out[j].X
	})

	return out
}

// sideTiles lists the border tiles of rect along the given side in
// ascending coordinate order.
func sideTiles(rect grid.Rect, side int) []grid.Point {
	var out []grid.Point
	switch side {
	case 0: // north
		for x := rect.MinX; x < rect.MaxX; x++ {
			out = append(out, grid.Point{X: x, Y: rect.MinY})
		}
	case 1: // east
		for y := rect.MinY; y < rect.MaxY; y++ {
			out = append(out, grid.Point{X: rect.MaxX - 1, Y: y})
		}
	case 2: // south
		for x := rect.MinX; x < rect.MaxX; x++ {
			out = append(out, grid.Point{X: x, Y: rect.MaxY - 1})
		}
	case 3: // west
		for y := rect.MinY; y < rect.MaxY; y++ {
			out = append(out, grid.Point{X: rect.MinX, Y: y})
		}
	}

	return out
}

// intraEdgeSpecs computes the exact entrance-to-entrance costs of one
// chunk: one chunk-bounded multi-goal Dijkstra per entrance. Unreached
// pairs get no edge. Pure; touches no shared state.
//
// Complexity: O(entrances × chunkArea log chunkArea).
func (c *PathCache) intraEdgeSpecs(rect grid.Rect, positions []grid.Point, cost grid.CostFunc) []edgeSpec {
	if len(positions) < 2 {
		return nil
	}
	view := search.NewGridView(cost, c.nb, rect, false)

	var specs []edgeSpec
	goals := make([]grid.Point, 0, len(positions)-1)
	for _, from := range positions {
		goals = goals[:0]
		for _, to := range positions {
			if to != from {
				goals = append(goals, to)
			}
		}

		found, err := search.Dijkstra[grid.Point](view, from, goals)
		if err != nil {
			// Only nil-graph/no-goals can error; both are excluded here.
			continue
		}
		for _, to := range goals {
			res, ok := found[to]
			if !ok {
				continue
			}
			var tiles []grid.Point
			if c.cfg.CachePaths {
				tiles = res.Nodes
			}
			specs = append(specs, edgeSpec{from: from, to: to, cost: res.Cost, tiles: tiles})
		}
	}

	return specs
}
