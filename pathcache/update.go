package pathcache

import (
	"fmt"
	"sort"
	"time"

	"github.com/katalvlaran/hpath/grid"
)

// TilesChanged announces that the cost of the given tiles changed and
// repairs the cache incrementally: chunks containing a changed tile are
// rebuilt; adjacent chunks are rebuilt only when the change alters their
// entrance layout. The supplied cost function must already reflect the
// new costs.
//
// The update is atomic with respect to queries: all recomputation happens
// off to the side, then results are swapped in sequentially. Calling
// TilesChanged with tiles whose cost did not actually change is safe and
// leaves the graph equivalent.
//
// Returns ErrOutOfBounds (with the offending coordinate) if any tile is
// outside the grid; the cache is untouched in that case.
func (c *PathCache) TilesChanged(tiles []grid.Point, cost grid.CostFunc) error {
	for _, t := range tiles {
		if !c.bounds.Contains(t) {
			return fmt.Errorf("%w: %v", ErrOutOfBounds, t)
		}
	}
	if len(tiles) == 0 {
		return nil
	}
	started := time.Now()

	// Chunks holding a changed tile are always rebuilt. Chunks within one
	// tile of a change read it during entrance derivation and may need a
	// rebuild too; a corner change reaches the diagonal chunk this way.
	dirty := make(map[int]struct{})
	touched := make(map[int]struct{})
	for _, t := range tiles {
		ti := c.chunkIndexAt(t)
		dirty[ti] = struct{}{}
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				q := grid.Point{X: t.X + dx, Y: t.Y + dy}
				if !c.bounds.Contains(q) {
					continue
				}
				if qi := c.chunkIndexAt(q); qi != ti {
					touched[qi] = struct{}{}
				}
			}
		}
	}

	rebuild := make([]int, 0, len(dirty))
	for idx := range dirty {
		rebuild = append(rebuild, idx)
	}
	// A touched neighbor rebuilds only when its entrance layout moved:
	// its intra-edges read no tile outside its own rect, and fresh
	// inter-edges are restored by connectAdjacent either way.
	for idx := range touched {
		if _, isDirty := dirty[idx]; isDirty {
			continue
		}
		if !c.samePositions(idx, c.entranceCandidates(c.chunks[idx].rect, cost)) {
			rebuild = append(rebuild, idx)
		}
	}
	sort.Ints(rebuild)

	fresh := c.rebuildChunks(rebuild, cost)
	c.connectAdjacent(fresh)

	if c.cfg.Logger != nil {
		c.cfg.Logger.Debug("pathcache: tiles changed",
			"tiles", len(tiles), "rebuilt", len(rebuild),
			"nodes", c.nodes.len(), "elapsed", time.Since(started))
	}

	return nil
}

// samePositions reports whether the chunk's current entrance positions
// equal want. Both sides are compared in (y, x) order; want must already
// be sorted, as entranceCandidates returns it.
func (c *PathCache) samePositions(idx int, want []grid.Point) bool {
	ch := c.chunks[idx]
	if len(ch.nodes) != len(want) {
		return false
	}
	have := make([]grid.Point, 0, len(ch.nodes))
	for id := range ch.nodes {
		have = append(have, c.nodes.at(id).pos)
	}
	sort.Slice(have, func(i, j int) bool {
		if have[i].Y != have[j].Y {
			return have[i].Y < have[j].Y
		}

		return have[i].X < have[j].X
	})
	for i := range have {
		if have[i] != want[i] {
			return false
		}
	}

	return true
}
