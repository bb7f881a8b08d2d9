package pathcache

import (
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hpath/grid"
)

// PathCache is a hierarchical pathfinding cache over a 2D grid. The grid
// is partitioned into fixed-size chunks; entrance nodes along chunk
// borders and the exact costs between them form an abstract graph that
// queries search instead of the raw grid.
//
// A PathCache never stores tile costs: the caller supplies the same
// grid.CostFunc to New, TilesChanged and every query, and guarantees it
// reflects the state last announced through New/TilesChanged.
type PathCache struct {
	width, height int
	bounds        grid.Rect
	cfg           Config
	nb            grid.Neighborhood

	chunkCols, chunkRows int
	chunks               []*chunk
	nodes                *nodeList
}

// New builds a cache for a width×height grid: every chunk's entrances and
// intra-edges are computed (in parallel across chunks) and the abstract
// graph is assembled.
//
// nb must be constructed for the same width and height, and its step
// offsets must stay within one tile on each axis; entrance derivation
// inspects only the immediate border band of each chunk. Adjacency must
// be symmetric (a step from a to b implies a step from b to a): border
// crossings are mirrored and goal-side connections run a reverse search,
// so one-way offset sets yield paths that cannot be walked. The built-in
// Manhattan and Moore neighborhoods satisfy both requirements.
//
// Complexity: O(area log chunkArea) overall; the dominant term is one
// multi-goal Dijkstra per entrance per chunk.
func New(width, height int, cost grid.CostFunc, nb grid.Neighborhood, cfg Config) (*PathCache, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}
	if cfg.ChunkSize < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadChunkSize, cfg.ChunkSize)
	}
	if cost == nil {
		return nil, ErrNilCostFunc
	}
	if nb == nil {
		return nil, ErrNilNeighborhood
	}

	cs := cfg.ChunkSize
	c := &PathCache{
		width:     width,
		height:    height,
		bounds:    grid.NewRect(0, 0, width, height),
		cfg:       cfg,
		nb:        nb,
		chunkCols: (width + cs - 1) / cs,
		chunkRows: (height + cs - 1) / cs,
		nodes:     newNodeList(),
	}
	c.chunks = make([]*chunk, c.chunkCols*c.chunkRows)
	all := make([]int, len(c.chunks))
	for i := range c.chunks {
		c.chunks[i] = &chunk{
			rect:  c.chunkRect(i%c.chunkCols, i/c.chunkCols),
			nodes: make(map[NodeID]struct{}),
		}
		all[i] = i
	}

	started := time.Now()
	c.rebuildChunks(all, cost)
	c.connectAdjacent(nil)
	if cfg.Logger != nil {
		cfg.Logger.Debug("pathcache: built",
			"width", width, "height", height,
			"chunks", len(c.chunks), "nodes", c.nodes.len(),
			"elapsed", time.Since(started))
	}

	return c, nil
}

// Width returns the grid width the cache was built for.
func (c *PathCache) Width() int { return c.width }

// Height returns the grid height the cache was built for.
func (c *PathCache) Height() int { return c.height }

// Config returns the configuration the cache was built with.
func (c *PathCache) Config() Config { return c.cfg }

// NodeCount returns the number of live abstract graph nodes.
func (c *PathCache) NodeCount() int { return c.nodes.len() }

//----------------------------------------------------------------------
// chunk geometry
//----------------------------------------------------------------------

// chunkCoordsAt returns the chunk-grid coordinates of the chunk covering p.
func (c *PathCache) chunkCoordsAt(p grid.Point) (cx, cy int) {
	return p.X / c.cfg.ChunkSize, p.Y / c.cfg.ChunkSize
}

// chunkIndexAt returns the index of the chunk covering p.
func (c *PathCache) chunkIndexAt(p grid.Point) int {
	cx, cy := c.chunkCoordsAt(p)

	return cy*c.chunkCols + cx
}

// chunkRect returns the tile rectangle of chunk (cx, cy), clipped to the
// grid so the final row/column may be smaller than ChunkSize.
func (c *PathCache) chunkRect(cx, cy int) grid.Rect {
	cs := c.cfg.ChunkSize
	r := grid.NewRect(cx*cs, cy*cs, cs, cs)
	if r.MaxX > c.width {
		r.MaxX = c.width
	}
	if r.MaxY > c.height {
		r.MaxY = c.height
	}

	return r
}

// sameChunk reports whether a and b lie in the same chunk.
func (c *PathCache) sameChunk(a, b grid.Point) bool {
	acx, acy := c.chunkCoordsAt(a)
	bcx, bcy := c.chunkCoordsAt(b)

	return acx == bcx && acy == bcy
}

//----------------------------------------------------------------------
// build / rebuild
//----------------------------------------------------------------------

// chunkBuild is the result of rebuilding one chunk off to the side,
// before anything is swapped into the shared graph.
type chunkBuild struct {
	positions []grid.Point
	specs     []edgeSpec
}

// rebuildChunks recomputes the listed chunks and swaps the results in,
// returning the fresh node IDs. The compute phase runs in parallel and
// touches no shared state; the swap phase is sequential, so readers of a
// finished cache never observe a half-rebuilt chunk boundary.
//
// Inter-edges of the fresh nodes are NOT restored here; callers follow
// up with connectAdjacent.
func (c *PathCache) rebuildChunks(indices []int, cost grid.CostFunc) []NodeID {
	builds := make([]chunkBuild, len(indices))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, idx := range indices {
		rect := c.chunks[idx].rect
		g.Go(func() error {
			positions := c.entranceCandidates(rect, cost)
			builds[i] = chunkBuild{
				positions: positions,
				specs:     c.intraEdgeSpecs(rect, positions, cost),
			}

			return nil
		})
	}
	// Workers never fail; Wait is a join point only.
	_ = g.Wait()

	var fresh []NodeID
	for i, idx := range indices {
		ch := c.chunks[idx]
		for id := range ch.nodes {
			c.nodes.remove(id)
		}
		ch.nodes = make(map[NodeID]struct{}, len(builds[i].positions))

		for _, pos := range builds[i].positions {
			id := c.nodes.add(pos, cost(pos))
			ch.nodes[id] = struct{}{}
			fresh = append(fresh, id)
		}
		for _, s := range builds[i].specs {
			from, okFrom := c.nodes.idAt(s.from)
			to, okTo := c.nodes.idAt(s.to)
			if !okFrom || !okTo {
				// Specs reference only positions added above; never attach
				// an edge to the zero NodeID on a lookup miss.
				continue
			}
			c.nodes.addEdge(from, to, s.cost, s.tiles, false)
		}
	}

	return fresh
}

// connectAdjacent installs the mirrored single-step inter-edges between
// entrance nodes of different chunks. With a nil id list every node is
// considered; after a partial rebuild only the fresh nodes need it,
// since an inter-edge always has a fresh node on at least one end.
func (c *PathCache) connectAdjacent(ids []NodeID) {
	if ids == nil {
		ids = make([]NodeID, 0, c.nodes.len())
		for id := range c.nodes.nodes {
			ids = append(ids, id)
		}
	}

	var nbBuf [8]grid.Point
	for _, id := range ids {
		n := c.nodes.at(id)
		if n == nil {
			continue
		}
		for _, q := range c.nb.Neighbors(n.pos, nbBuf[:0]) {
			if c.sameChunk(n.pos, q) {
				continue
			}
			other, ok := c.nodes.idAt(q)
			if !ok {
				continue
			}
			m := c.nodes.at(other)
			// Crossing cost is the cost of the tile being entered.
			c.nodes.addEdge(id, other, m.walk, []grid.Point{n.pos, q}, true)
			c.nodes.addEdge(other, id, n.walk, []grid.Point{q, n.pos}, true)
		}
	}
}
