// Package path provides the immutable Path value returned by the
// hierarchical cache: an ordered tile sequence with its total cost.
//
// What:
//
//   - Path owns a private copy of its tiles; it stays valid and unchanged
//     no matter what happens to the cache that produced it.
//   - Tiles() yields a lazy, finite, restartable iteration from start to
//     goal inclusive; Slice() materializes a fresh copy.
//
// Why:
//
//   - Callers typically consume a path over many game ticks while the
//     grid, and hence the cache, keeps mutating underneath them.
//
// Complexity:
//
//   - New: O(n) (one copy). Cost/Len/At: O(1). Tiles/Slice: O(n).
package path

import (
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/hpath/grid"
)

// Path is an ordered sequence of tile coordinates plus the total cost of
// walking it. The zero value is an empty path of cost 0.
type Path struct {
	tiles []grid.Point
	cost  grid.Cost
}

// New builds a Path over a private copy of tiles with the given total
// cost. The input slice may be reused or mutated by the caller afterwards.
func New(tiles []grid.Point, cost grid.Cost) *Path {
	own := make([]grid.Point, len(tiles))
	copy(own, tiles)

	return &Path{tiles: own, cost: cost}
}

// Cost returns the total walk cost of the path.
func (p *Path) Cost() grid.Cost {
	return p.cost
}

// Len returns the number of tiles in the path, start and goal inclusive.
func (p *Path) Len() int {
	return len(p.tiles)
}

// At returns the i-th tile of the path. It panics if i is out of range,
// matching slice indexing semantics.
func (p *Path) At(i int) grid.Point {
	return p.tiles[i]
}

// Tiles returns a restartable iterator over the tiles from start to goal.
// Each range over the returned sequence restarts from the first tile.
func (p *Path) Tiles() iter.Seq[grid.Point] {
	return func(yield func(grid.Point) bool) {
		for _, t := range p.tiles {
			if !yield(t) {
				return
			}
		}
	}
}

// Slice returns a fresh copy of the tile sequence.
func (p *Path) Slice() []grid.Point {
	out := make([]grid.Point, len(p.tiles))
	copy(out, p.tiles)

	return out
}

// String renders the path as "cost=C [(x,y) ... (x,y)]" for logs and tests.
func (p *Path) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "cost=%d [", p.cost)
	for i, t := range p.tiles {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	b.WriteByte(']')

	return b.String()
}
