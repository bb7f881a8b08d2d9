package pathcache

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hpath/grid"
)

// mazeRows is the shared fixture for exactness tests: walls, a swamp and
// a weighted cell, sized so chunk borders cut through corridors.
var mazeRows = []string{
	"............",
	".###....###.",
	".#...2..#...",
	".#.####.#.#.",
	".....#..#.#.",
	"####.#..#.#.",
	".....#....#.",
	".#####.###..",
	".....#.#....",
	"####.#.#.##.",
	"....3#.#..#.",
	"............",
}

// samplePoints picks a deterministic spread of walkable tiles.
func samplePoints(g *costGrid) []grid.Point {
	var pts []grid.Point
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			p := grid.Point{X: x, Y: y}
			if !g.tiles[p].Blocked() && (x+2*y)%5 == 0 {
				pts = append(pts, p)
			}
		}
	}

	return pts
}

//----------------------------------------------------------------------//
// basic query semantics                                                 //
//----------------------------------------------------------------------//

func TestFindPath_Basics(t *testing.T) {
	g := parseGrid(t, []string{
		".....",
		".....",
		"..#..",
		".....",
		".....",
	})
	nb := manhattan(t, 5, 5)
	c, err := New(5, 5, g.fn(), nb, exactConfig(3))
	require.NoError(t, err)

	t.Run("out of bounds start", func(t *testing.T) {
		_, _, err := c.FindPath(grid.Point{X: -1, Y: 0}, grid.Point{X: 1, Y: 1}, g.fn())
		require.ErrorIs(t, err, ErrOutOfBounds)
	})
	t.Run("out of bounds goal", func(t *testing.T) {
		_, _, err := c.FindPath(grid.Point{X: 0, Y: 0}, grid.Point{X: 5, Y: 5}, g.fn())
		require.ErrorIs(t, err, ErrOutOfBounds)
	})
	t.Run("blocked endpoints are no-path, not errors", func(t *testing.T) {
		_, ok, err := c.FindPath(grid.Point{X: 2, Y: 2}, grid.Point{X: 0, Y: 0}, g.fn())
		require.NoError(t, err)
		assert.False(t, ok)

		_, ok, err = c.FindPath(grid.Point{X: 0, Y: 0}, grid.Point{X: 2, Y: 2}, g.fn())
		require.NoError(t, err)
		assert.False(t, ok)
	})
	t.Run("start equals goal", func(t *testing.T) {
		p, ok, err := c.FindPath(grid.Point{X: 3, Y: 3}, grid.Point{X: 3, Y: 3}, g.fn())
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, grid.Cost(0), p.Cost())
		assert.Equal(t, 1, p.Len())
	})
	t.Run("corner to corner", func(t *testing.T) {
		p, ok, err := c.FindPath(grid.Point{X: 0, Y: 0}, grid.Point{X: 4, Y: 4}, g.fn())
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, grid.Cost(8), p.Cost())
		assert.Equal(t, 9, p.Len())
		requireValidPath(t, g, nb, p, grid.Point{X: 0, Y: 0}, grid.Point{X: 4, Y: 4})
	})
}

func TestFindPath_SealedCave(t *testing.T) {
	g := parseGrid(t, []string{
		"......",
		".####.",
		".#..#.",
		".#..#.",
		".####.",
		"......",
	})
	nb := manhattan(t, 6, 6)
	c, err := New(6, 6, g.fn(), nb, exactConfig(3))
	require.NoError(t, err)

	inside := grid.Point{X: 2, Y: 2}
	outside := grid.Point{X: 0, Y: 0}

	_, ok, err := c.FindPath(inside, outside, g.fn())
	require.NoError(t, err)
	assert.False(t, ok, "no way out of a sealed room")

	_, ok, err = c.FindPath(outside, inside, g.fn())
	require.NoError(t, err)
	assert.False(t, ok, "no way into a sealed room")

	// Inside the room, movement still works: (2,2) and (3,3) share a
	// chunk only partially, so this exercises the cross-chunk cave case.
	p, ok, err := c.FindPath(inside, grid.Point{X: 3, Y: 3}, g.fn())
	require.NoError(t, err)
	require.True(t, ok)
	requireValidPath(t, g, nb, p, inside, grid.Point{X: 3, Y: 3})
	assert.Equal(t, grid.Cost(2), p.Cost())
}

func TestFindPath_CornerOnlyCrossing(t *testing.T) {
	// The only connection between the two regions is the diagonal step
	// (1,1) -> (2,2): both orthogonal counterparts are walls, and the
	// tiles sit in diagonally-touching chunks.
	g := parseGrid(t, []string{
		"..#.",
		".1#.",
		"##2.",
		"....",
	})
	nb := moore(t, 4, 4)
	start := grid.Point{X: 0, Y: 0}
	goal := grid.Point{X: 3, Y: 3}

	t.Run("abstract graph preserves the crossing", func(t *testing.T) {
		cfg := ConfigWithChunkSize(2)
		cfg.DirectSearchRadius = 0 // no exact re-resolution
		c, err := New(4, 4, g.fn(), nb, cfg)
		require.NoError(t, err)

		p, ok, err := c.FindPath(start, goal, g.fn())
		require.NoError(t, err)
		require.True(t, ok)
		requireValidPath(t, g, nb, p, start, goal)
		assert.GreaterOrEqual(t, p.Cost(), grid.Cost(4))
	})
	t.Run("exact fallback finds the optimum", func(t *testing.T) {
		c, err := New(4, 4, g.fn(), nb, exactConfig(2))
		require.NoError(t, err)

		p, ok, err := c.FindPath(start, goal, g.fn())
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, grid.Cost(4), p.Cost())
	})
}

//----------------------------------------------------------------------//
// exactness against a flat reference search                             //
//----------------------------------------------------------------------//

func TestFindPath_ExactWithFallback(t *testing.T) {
	g := parseGrid(t, mazeRows)
	nb := manhattan(t, g.w, g.h)
	c, err := New(g.w, g.h, g.fn(), nb, exactConfig(4))
	require.NoError(t, err)

	pts := samplePoints(g)
	require.NotEmpty(t, pts)
	for _, start := range pts {
		for _, goal := range pts {
			wantCost, wantOK := referenceCost(g, nb, start, goal)
			p, ok, err := c.FindPath(start, goal, g.fn())
			require.NoError(t, err)
			require.Equal(t, wantOK, ok, "%v -> %v reachability", start, goal)
			if !ok {
				continue
			}
			assert.Equal(t, wantCost, p.Cost(), "%v -> %v", start, goal)
			requireValidPath(t, g, nb, p, start, goal)
		}
	}
}

func TestFindPath_AbstractNeverUndercuts(t *testing.T) {
	g := parseGrid(t, mazeRows)
	nb := manhattan(t, g.w, g.h)
	cfg := ConfigWithChunkSize(4)
	cfg.DirectSearchRadius = 0
	c, err := New(g.w, g.h, g.fn(), nb, cfg)
	require.NoError(t, err)

	pts := samplePoints(g)
	for _, start := range pts {
		for _, goal := range pts {
			wantCost, wantOK := referenceCost(g, nb, start, goal)
			p, ok, err := c.FindPath(start, goal, g.fn())
			require.NoError(t, err)
			require.Equal(t, wantOK, ok, "%v -> %v reachability", start, goal)
			if !ok {
				continue
			}
			// Every returned path is a real walk, so it can be coarser
			// than optimal but never cheaper.
			assert.GreaterOrEqual(t, p.Cost(), wantCost, "%v -> %v", start, goal)
			requireValidPath(t, g, nb, p, start, goal)
		}
	}
}

func TestFindPath_ChunkSizeOneIsExact(t *testing.T) {
	g := parseGrid(t, mazeRows)
	nb := manhattan(t, g.w, g.h)
	cfg := ConfigWithChunkSize(1)
	cfg.DirectSearchRadius = 0
	c, err := New(g.w, g.h, g.fn(), nb, cfg)
	require.NoError(t, err)

	// With one tile per chunk the abstract graph IS the grid, so even
	// without fallback every answer is optimal.
	pts := samplePoints(g)
	for _, start := range pts {
		for _, goal := range pts {
			wantCost, wantOK := referenceCost(g, nb, start, goal)
			p, ok, err := c.FindPath(start, goal, g.fn())
			require.NoError(t, err)
			require.Equal(t, wantOK, ok, "%v -> %v reachability", start, goal)
			if ok {
				assert.Equal(t, wantCost, p.Cost(), "%v -> %v", start, goal)
			}
		}
	}
}

func TestFindPath_LazyPathsMatchCached(t *testing.T) {
	g := parseGrid(t, mazeRows)
	nb := manhattan(t, g.w, g.h)

	// With the fallback disabled (radius 0), every non-trivial query is
	// answered by stitching, so the lazy variant must recompute each
	// uncached sub-path at stitch time.
	tests := []struct {
		name   string
		radius grid.Cost
	}{
		{"fallback resolved", 1 << 20},
		{"stitched", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cachedCfg := ConfigWithChunkSize(4)
			cachedCfg.DirectSearchRadius = tc.radius
			cached, err := New(g.w, g.h, g.fn(), nb, cachedCfg)
			require.NoError(t, err)

			lazyCfg := cachedCfg
			lazyCfg.CachePaths = false
			lazy, err := New(g.w, g.h, g.fn(), nb, lazyCfg)
			require.NoError(t, err)

			pts := samplePoints(g)
			for _, start := range pts {
				for _, goal := range pts {
					p1, ok1, err := cached.FindPath(start, goal, g.fn())
					require.NoError(t, err)
					p2, ok2, err := lazy.FindPath(start, goal, g.fn())
					require.NoError(t, err)
					require.Equal(t, ok1, ok2)
					if ok1 {
						assert.Equal(t, p1.Cost(), p2.Cost(), "%v -> %v", start, goal)
						requireValidPath(t, g, nb, p2, start, goal)
					}
				}
			}
		})
	}
}

func TestFindPath_CustomNeighborhood(t *testing.T) {
	// Horizontal-only movement: each row is an isolated corridor. The
	// offset set is symmetric, as the cache requires; it cannot walk
	// along a vertical chunk border, so coalescing stays off.
	g := parseGrid(t, []string{
		"......",
		"......",
	})
	nb, err := grid.NewCustomNeighborhood(g.w, g.h, [][2]int{{1, 0}, {-1, 0}})
	require.NoError(t, err)

	cfg := ConfigWithChunkSize(2)
	cfg.CoalesceEntrances = false
	c, err := New(g.w, g.h, g.fn(), nb, cfg)
	require.NoError(t, err)

	there := grid.Point{X: 0, Y: 0}
	back := grid.Point{X: 5, Y: 0}

	p, ok, err := c.FindPath(there, back, g.fn())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, grid.Cost(5), p.Cost())
	requireValidPath(t, g, nb, p, there, back)

	p, ok, err = c.FindPath(back, there, g.fn())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, grid.Cost(5), p.Cost())
	requireValidPath(t, g, nb, p, back, there)

	// No vertical step exists, so the rows never connect.
	_, ok, err = c.FindPath(there, grid.Point{X: 0, Y: 1}, g.fn())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFindPath_ZeroCostTiles(t *testing.T) {
	// Zero-cost tiles are walkable but break the heuristics' unit lower
	// bound: the result must still be a valid path, though its cost may
	// exceed the free-road optimum.
	g := parseGrid(t, []string{
		"0...0",
		"0.#.0",
		"00000",
	})
	nb := manhattan(t, g.w, g.h)

	c, err := New(g.w, g.h, g.fn(), nb, exactConfig(2))
	require.NoError(t, err)

	start := grid.Point{X: 0, Y: 0}
	goal := grid.Point{X: 4, Y: 0}

	p, ok, err := c.FindPath(start, goal, g.fn())
	require.NoError(t, err)
	require.True(t, ok)
	requireValidPath(t, g, nb, p, start, goal)

	ref, refOK := referenceCost(g, nb, start, goal)
	require.True(t, refOK)
	assert.Zero(t, ref, "the free ring is the true optimum")
	assert.GreaterOrEqual(t, p.Cost(), ref)
}

func TestCoalescing_ShrinksTheGraph(t *testing.T) {
	// A wide-open map produces long entrance runs, exactly what
	// coalescing is for.
	rows := make([]string, 16)
	for i := range rows {
		rows[i] = "................"
	}
	g := parseGrid(t, rows)
	nb := manhattan(t, 16, 16)

	coalesced, err := New(16, 16, g.fn(), nb, ConfigWithChunkSize(4))
	require.NoError(t, err)

	full := ConfigWithChunkSize(4)
	full.CoalesceEntrances = false
	dense, err := New(16, 16, g.fn(), nb, full)
	require.NoError(t, err)

	assert.Less(t, coalesced.NodeCount(), dense.NodeCount())

	p, ok, err := coalesced.FindPath(grid.Point{X: 0, Y: 0}, grid.Point{X: 15, Y: 15}, g.fn())
	require.NoError(t, err)
	require.True(t, ok)
	requireValidPath(t, g, nb, p, grid.Point{X: 0, Y: 0}, grid.Point{X: 15, Y: 15})
}

//----------------------------------------------------------------------//
// multi-goal queries                                                    //
//----------------------------------------------------------------------//

func TestFindPaths_MultiGoal(t *testing.T) {
	g := parseGrid(t, mazeRows)
	nb := manhattan(t, g.w, g.h)
	c, err := New(g.w, g.h, g.fn(), nb, exactConfig(4))
	require.NoError(t, err)

	start := grid.Point{X: 0, Y: 0}
	reachable := grid.Point{X: 11, Y: 11}
	pocket := grid.Point{X: 2, Y: 2} // reachable only through the west corridor
	blocked := grid.Point{X: 1, Y: 1}
	goals := []grid.Point{reachable, pocket, blocked, start, reachable}

	out, err := c.FindPaths(start, goals, g.fn())
	require.NoError(t, err)

	require.Contains(t, out, start)
	assert.Equal(t, grid.Cost(0), out[start].Cost())

	require.Contains(t, out, reachable)
	wantCost, wantOK := referenceCost(g, nb, start, reachable)
	require.True(t, wantOK)
	assert.Equal(t, wantCost, out[reachable].Cost())
	requireValidPath(t, g, nb, out[reachable], start, reachable)

	assert.NotContains(t, out, blocked, "blocked goals are skipped")

	// Each entry must agree with the single-goal query.
	for goal, p := range out {
		single, ok, err := c.FindPath(start, goal, g.fn())
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, single.Cost(), p.Cost(), "goal %v", goal)
	}
}

func TestFindPaths_BlockedStart(t *testing.T) {
	g := parseGrid(t, mazeRows)
	c, err := New(g.w, g.h, g.fn(), manhattan(t, g.w, g.h), exactConfig(4))
	require.NoError(t, err)

	out, err := c.FindPaths(grid.Point{X: 1, Y: 1}, []grid.Point{{X: 0, Y: 0}}, g.fn())
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFindClosestGoal(t *testing.T) {
	g := parseGrid(t, []string{
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	})
	nb := manhattan(t, 8, 8)
	c, err := New(8, 8, g.fn(), nb, exactConfig(4))
	require.NoError(t, err)

	start := grid.Point{X: 0, Y: 0}
	near := grid.Point{X: 2, Y: 1}
	far := grid.Point{X: 7, Y: 7}

	goal, p, ok, err := c.FindClosestGoal(start, []grid.Point{far, near}, g.fn())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, near, goal)
	assert.Equal(t, grid.Cost(3), p.Cost())
	requireValidPath(t, g, nb, p, start, near)

	t.Run("goal equal to start wins outright", func(t *testing.T) {
		goal, p, ok, err := c.FindClosestGoal(start, []grid.Point{far, start}, g.fn())
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, start, goal)
		assert.Equal(t, grid.Cost(0), p.Cost())
	})
	t.Run("no reachable goal", func(t *testing.T) {
		walled := parseGrid(t, []string{
			"..#.",
			"..#.",
			"..#.",
			"..#.",
		})
		wc, err := New(4, 4, walled.fn(), manhattan(t, 4, 4), exactConfig(2))
		require.NoError(t, err)

		_, _, ok, err := wc.FindClosestGoal(grid.Point{X: 0, Y: 0}, []grid.Point{{X: 3, Y: 0}}, walled.fn())
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

//----------------------------------------------------------------------//
// concurrency                                                           //
//----------------------------------------------------------------------//

func TestFindPath_ConcurrentQueries(t *testing.T) {
	g := parseGrid(t, mazeRows)
	nb := manhattan(t, g.w, g.h)
	c, err := New(g.w, g.h, g.fn(), nb, exactConfig(4))
	require.NoError(t, err)

	start := grid.Point{X: 0, Y: 0}
	goal := grid.Point{X: 11, Y: 11}
	want, ok, err := c.FindPath(start, goal, g.fn())
	require.NoError(t, err)
	require.True(t, ok)

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	costs := make(chan grid.Cost, workers*16)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 16; i++ {
				p, ok, err := c.FindPath(start, goal, g.fn())
				if err != nil {
					errs <- err

					return
				}
				if !ok {
					errs <- errors.New("path not found")

					return
				}
				costs <- p.Cost()
			}
		}()
	}
	wg.Wait()
	close(errs)
	close(costs)

	for err := range errs {
		t.Fatalf("concurrent query failed: %v", err)
	}
	for cost := range costs {
		assert.Equal(t, want.Cost(), cost)
	}
}
