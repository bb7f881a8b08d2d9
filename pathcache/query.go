package pathcache

import (
	"fmt"
	"time"

	"github.com/katalvlaran/hpath/grid"
	"github.com/katalvlaran/hpath/path"
	"github.com/katalvlaran/hpath/search"
)

// FindPath resolves a path from start to goal against the current graph.
// The boolean reports whether a path exists; a blocked start or goal is
// "no path", not an error. The supplied cost function must match the
// state the cache was last updated with.
//
// The returned path is exact between the entrances it passes through;
// results cheaper than Config.DirectSearchRadius are re-resolved by a
// full-grid search and are optimal whenever every walkable tile costs at
// least 1, the bound the built-in heuristics assume. Zero-cost tiles keep
// paths valid but may inflate their cost.
//
// FindPath is read-only and safe to call concurrently with other queries.
func (c *PathCache) FindPath(start, goal grid.Point, cost grid.CostFunc) (*path.Path, bool, error) {
	if !c.bounds.Contains(start) {
		return nil, false, fmt.Errorf("%w: start %v", ErrOutOfBounds, start)
	}
	if !c.bounds.Contains(goal) {
		return nil, false, fmt.Errorf("%w: goal %v", ErrOutOfBounds, goal)
	}
	if cost(start).Blocked() || cost(goal).Blocked() {
		return nil, false, nil
	}
	if start == goal {
		return trivialPath(start), true, nil
	}

	found, err := c.findPaths(start, []grid.Point{goal}, cost, false)
	if err != nil {
		return nil, false, err
	}
	p, ok := found[goal]
	if !ok {
		return nil, false, nil
	}

	return p, true, nil
}

// FindPaths resolves paths from start to every reachable goal in one
// pass, sharing the start-side connection work across goals. Unreachable
// or blocked goals are absent from the result; a goal equal to start maps
// to a single-tile path.
func (c *PathCache) FindPaths(start grid.Point, goals []grid.Point, cost grid.CostFunc) (map[grid.Point]*path.Path, error) {
	if !c.bounds.Contains(start) {
		return nil, fmt.Errorf("%w: start %v", ErrOutOfBounds, start)
	}
	for _, g := range goals {
		if !c.bounds.Contains(g) {
			return nil, fmt.Errorf("%w: goal %v", ErrOutOfBounds, g)
		}
	}

	out := make(map[grid.Point]*path.Path, len(goals))
	if cost(start).Blocked() {
		return out, nil
	}
	pending := make([]grid.Point, 0, len(goals))
	seen := make(map[grid.Point]struct{}, len(goals))
	for _, g := range goals {
		if _, dup := seen[g]; dup {
			continue
		}
		seen[g] = struct{}{}
		if g == start {
			out[g] = trivialPath(g)

			continue
		}
		if !cost(g).Blocked() {
			pending = append(pending, g)
		}
	}

	found, err := c.findPaths(start, pending, cost, false)
	if err != nil {
		return nil, err
	}
	for g, p := range found {
		out[g] = p
	}

	return out, nil
}

// FindClosestGoal resolves a path to the cheapest-to-reach goal only. The
// boolean reports whether any goal is reachable. Ties break toward the
// goal with the smaller (y, x) coordinate.
func (c *PathCache) FindClosestGoal(start grid.Point, goals []grid.Point, cost grid.CostFunc) (grid.Point, *path.Path, bool, error) {
	if !c.bounds.Contains(start) {
		return grid.Point{}, nil, false, fmt.Errorf("%w: start %v", ErrOutOfBounds, start)
	}
	for _, g := range goals {
		if !c.bounds.Contains(g) {
			return grid.Point{}, nil, false, fmt.Errorf("%w: goal %v", ErrOutOfBounds, g)
		}
	}
	if cost(start).Blocked() {
		return grid.Point{}, nil, false, nil
	}
	pending := make([]grid.Point, 0, len(goals))
	seen := make(map[grid.Point]struct{}, len(goals))
	for _, g := range goals {
		if g == start {
			return g, trivialPath(g), true, nil
		}
		if _, dup := seen[g]; dup {
			continue
		}
		seen[g] = struct{}{}
		if !cost(g).Blocked() {
			pending = append(pending, g)
		}
	}

	found, err := c.findPaths(start, pending, cost, true)
	if err != nil {
		return grid.Point{}, nil, false, err
	}
	for g, p := range found {
		return g, p, true, nil
	}

	return grid.Point{}, nil, false, nil
}

func trivialPath(p grid.Point) *path.Path {
	return path.New([]grid.Point{p}, 0)
}

// findPaths is the shared resolver. Goals are already validated: in
// bounds, walkable, distinct from start and from each other.
//
// Per goal, two candidates compete: a chunk-bounded direct search for
// goals in start's chunk (an in-chunk route never touching an entrance
// cannot be seen by the abstract graph) and the abstract overlay search.
// The cheaper wins; if the winning cost is under DirectSearchRadius the
// result is re-resolved exactly on the full grid, with the winning cost
// as the search budget.
func (c *PathCache) findPaths(start grid.Point, goals []grid.Point, cost grid.CostFunc, closestOnly bool) (map[grid.Point]*path.Path, error) {
	out := make(map[grid.Point]*path.Path, len(goals))
	if len(goals) == 0 {
		return out, nil
	}
	started := time.Now()

	direct := make(map[grid.Point]search.Result[grid.Point])
	startRect := c.chunks[c.chunkIndexAt(start)].rect
	for _, g := range goals {
		if !c.sameChunk(start, g) {
			continue
		}
		if res, ok := c.boundedSearch(startRect, start, g, cost); ok {
			direct[g] = res
		}
	}

	qg := c.newQueryGraph(start, goals, cost)
	gids := qg.goalIDs()
	abstract := make(map[NodeID]search.Result[NodeID])
	if len(qg.startOut) > 0 && len(gids) > 0 {
		switch {
		case len(gids) == 1 && qg.heuristic() != nil:
			res, ok, err := search.AStar[NodeID](qg, qg.startID, gids[0], qg.heuristic())
			if err != nil {
				return nil, err
			}
			if ok {
				abstract[gids[0]] = res
			}
		case closestOnly && len(direct) == 0:
			found, err := search.Dijkstra[NodeID](qg, qg.startID, gids, search.WithFirstGoal())
			if err != nil {
				return nil, err
			}
			abstract = found
		default:
			found, err := search.Dijkstra[NodeID](qg, qg.startID, gids)
			if err != nil {
				return nil, err
			}
			abstract = found
		}
	}

	resolve := goals
	if closestOnly {
		best, ok := closestGoal(qg, direct, abstract)
		if !ok {
			return out, nil
		}
		resolve = []grid.Point{best}
	}

	for _, g := range resolve {
		dRes, dOK := direct[g]

		var aSeq []NodeID
		var aCost grid.Cost
		aOK := false
		if gID, ok := qg.goalIDOf(g); ok {
			if res, hit := abstract[gID]; hit {
				aSeq, aCost, aOK = res.Nodes, res.Cost, true
			}
		}
		if !dOK && !aOK {
			continue
		}

		useDirect := dOK && (!aOK || dRes.Cost <= aCost)
		best := aCost
		if useDirect {
			best = dRes.Cost
		}

		if best < c.cfg.DirectSearchRadius {
			if res, ok := c.boundedSearch(c.bounds, start, g, cost, search.WithMaxCost(best)); ok {
				out[g] = path.New(res.Nodes, res.Cost)

				continue
			}
		}
		if useDirect {
			out[g] = path.New(dRes.Nodes, dRes.Cost)

			continue
		}
		p, err := qg.stitch(aSeq, aCost, cost)
		if err != nil {
			return nil, err
		}
		out[g] = p
	}

	if c.cfg.Logger != nil {
		c.cfg.Logger.Debug("pathcache: query",
			"start", start.String(), "goals", len(goals),
			"found", len(out), "elapsed", time.Since(started))
	}

	return out, nil
}

// closestGoal picks the cheapest goal across both candidate sets,
// breaking ties toward the smaller (y, x) coordinate.
func closestGoal(qg *queryGraph, direct map[grid.Point]search.Result[grid.Point], abstract map[NodeID]search.Result[NodeID]) (grid.Point, bool) {
	var best grid.Point
	var bestCost grid.Cost
	found := false

	consider := func(g grid.Point, cost grid.Cost) {
		better := !found || cost < bestCost ||
			(cost == bestCost && (g.Y < best.Y || (g.Y == best.Y && g.X < best.X)))
		if better {
			best, bestCost, found = g, cost, true
		}
	}
	for g, res := range direct {
		consider(g, res.Cost)
	}
	for gID, res := range abstract {
		consider(qg.goalPos[gID], res.Cost)
	}

	return best, found
}

// boundedSearch runs one exact grid search from→to inside rect, with A*
// when the neighborhood offers an estimate and Dijkstra otherwise.
func (c *PathCache) boundedSearch(rect grid.Rect, from, to grid.Point, cost grid.CostFunc, opts ...search.Option) (search.Result[grid.Point], bool) {
	view := search.NewGridView(cost, c.nb, rect, false)
	if h := view.Heuristic(); h != nil {
		res, ok, err := search.AStar[grid.Point](view, from, to, h, opts...)
		if err != nil {
			return search.Result[grid.Point]{}, false
		}

		return res, ok
	}

	found, err := search.Dijkstra[grid.Point](view, from, []grid.Point{to}, opts...)
	if err != nil {
		return search.Result[grid.Point]{}, false
	}
	res, ok := found[to]

	return res, ok
}
