package pathcache

import (
	"sort"

	"github.com/katalvlaran/hpath/grid"
	"github.com/katalvlaran/hpath/path"
	"github.com/katalvlaran/hpath/search"
)

// linkInfo ties a query tile to one entrance of its chunk: the exact cost
// of the connecting chunk-local path and its concrete tiles, oriented in
// walking direction and including both endpoints.
type linkInfo struct {
	cost  grid.Cost
	tiles []grid.Point
}

// goalLink is an overlay edge from an entrance node into a virtual goal.
type goalLink struct {
	goalID NodeID
	cost   grid.Cost
	tiles  []grid.Point
}

// queryGraph is a read-only overlay over the abstract graph for a single
// query: one virtual start node and one virtual node per goal, linked to
// the entrances of their chunks. Virtual IDs live above the arena's ID
// range and no arena state is touched, so any number of queries may run
// concurrently against the same cache.
type queryGraph struct {
	c        *PathCache
	startID  NodeID
	startPos grid.Point

	startOut   []search.Neighbor[NodeID]
	startTiles map[NodeID][]grid.Point

	goalPos map[NodeID]grid.Point
	goalIn  map[NodeID][]goalLink
}

// newQueryGraph connects start and every goal to the entrance nodes of
// their chunks. Start links come from a forward chunk-bounded Dijkstra,
// goal links from a reverse one, so both sides are exact even when tile
// costs are asymmetric. Tiles with no reachable entrance (sealed caves)
// simply contribute no links.
func (c *PathCache) newQueryGraph(start grid.Point, goals []grid.Point, cost grid.CostFunc) *queryGraph {
	qg := &queryGraph{
		c:          c,
		startID:    c.nodes.next,
		startPos:   start,
		startTiles: make(map[NodeID][]grid.Point),
		goalPos:    make(map[NodeID]grid.Point, len(goals)),
		goalIn:     make(map[NodeID][]goalLink),
	}

	for pos, link := range c.chunkLinks(start, cost, false) {
		id, ok := c.nodes.idAt(pos)
		if !ok {
			continue
		}
		qg.startOut = append(qg.startOut, search.Neighbor[NodeID]{To: id, Cost: link.cost})
		qg.startTiles[id] = link.tiles
	}
	sort.Slice(qg.startOut, func(i, j int) bool {
		return qg.startOut[i].To < qg.startOut[j].To
	})

	next := qg.startID + 1
	for _, g := range goals {
		gID := next
		next++
		qg.goalPos[gID] = g
		for pos, link := range c.chunkLinks(g, cost, true) {
			id, ok := c.nodes.idAt(pos)
			if !ok {
				continue
			}
			qg.goalIn[id] = append(qg.goalIn[id], goalLink{goalID: gID, cost: link.cost, tiles: link.tiles})
		}
	}
	for id := range qg.goalIn {
		links := qg.goalIn[id]
		sort.Slice(links, func(i, j int) bool { return links[i].goalID < links[j].goalID })
	}

	return qg
}

// goalIDs returns the virtual IDs of all goals, sorted.
func (qg *queryGraph) goalIDs() []NodeID {
	ids := make([]NodeID, 0, len(qg.goalPos))
	for id := range qg.goalPos {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// goalIDOf returns the virtual ID assigned to goal g.
func (qg *queryGraph) goalIDOf(g grid.Point) (NodeID, bool) {
	for id, p := range qg.goalPos {
		if p == g {
			return id, true
		}
	}

	return 0, false
}

// Neighbors implements search.Graph[NodeID] over the overlay: the virtual
// start fans out to its entrances, entrances expose their arena edges plus
// any links into virtual goals, and virtual goals are sinks.
func (qg *queryGraph) Neighbors(n NodeID, out []search.Neighbor[NodeID]) []search.Neighbor[NodeID] {
	if n == qg.startID {
		return append(out, qg.startOut...)
	}
	if _, isGoal := qg.goalPos[n]; isGoal {
		return out
	}

	nd := qg.c.nodes.at(n)
	if nd != nil {
		targets := make([]NodeID, 0, len(nd.edges))
		for to := range nd.edges {
			targets = append(targets, to)
		}
		sort.Slice(targets, func(i, j int) bool { return targets[i] < targets[j] })
		for _, to := range targets {
			out = append(out, search.Neighbor[NodeID]{To: to, Cost: nd.edges[to].cost})
		}
	}
	for _, gl := range qg.goalIn[n] {
		out = append(out, search.Neighbor[NodeID]{To: gl.goalID, Cost: gl.cost})
	}

	return out
}

// posOf maps any overlay node, virtual or real, to its tile.
func (qg *queryGraph) posOf(id NodeID) grid.Point {
	if id == qg.startID {
		return qg.startPos
	}
	if p, ok := qg.goalPos[id]; ok {
		return p
	}

	return qg.c.nodes.at(id).pos
}

// heuristic adapts the neighborhood estimate to overlay nodes, or returns
// nil when the neighborhood has none.
func (qg *queryGraph) heuristic() search.Heuristic[NodeID] {
	if !qg.c.nb.Estimable() {
		return nil
	}

	return func(a, b NodeID) grid.Cost {
		return qg.c.nb.Heuristic(qg.posOf(a), qg.posOf(b))
	}
}

// chunkLinks runs a chunk-bounded Dijkstra from p to every entrance of
// p's chunk and returns the exact link per reached entrance position. A
// reverse run connects a goal: its result tiles are flipped into walking
// direction before being returned.
func (c *PathCache) chunkLinks(p grid.Point, cost grid.CostFunc, reverse bool) map[grid.Point]linkInfo {
	ch := c.chunks[c.chunkIndexAt(p)]
	if len(ch.nodes) == 0 {
		return nil
	}
	goals := make([]grid.Point, 0, len(ch.nodes))
	for id := range ch.nodes {
		goals = append(goals, c.nodes.at(id).pos)
	}

	view := search.NewGridView(cost, c.nb, ch.rect, reverse)
	found, err := search.Dijkstra[grid.Point](view, p, goals)
	if err != nil {
		return nil
	}

	links := make(map[grid.Point]linkInfo, len(found))
	for pos, res := range found {
		tiles := res.Nodes
		if reverse {
			tiles = make([]grid.Point, len(res.Nodes))
			for i, t := range res.Nodes {
				tiles[len(tiles)-1-i] = t
			}
		}
		links[pos] = linkInfo{cost: res.Cost, tiles: tiles}
	}

	return links
}

// expandEdge yields the concrete tiles of the arena edge from→to, both
// endpoints included. Cached tiles are returned as-is; a lazy intra-edge
// is recomputed by a chunk-bounded search. A missing edge or a failed
// recomputation means the graph no longer matches the grid the caller
// queried with, reported as ErrInternal.
func (c *PathCache) expandEdge(from, to NodeID, cost grid.CostFunc) ([]grid.Point, error) {
	tail := c.nodes.at(from)
	head := c.nodes.at(to)
	if tail == nil || head == nil {
		return nil, ErrInternal
	}
	e := tail.edges[to]
	if e == nil {
		return nil, ErrInternal
	}
	if e.tiles != nil {
		return e.tiles, nil
	}

	rect := c.chunks[c.chunkIndexAt(tail.pos)].rect
	res, ok := c.boundedSearch(rect, tail.pos, head.pos, cost)
	if !ok {
		return nil, ErrInternal
	}

	return res.Nodes, nil
}

// stitch concatenates the concrete segments behind an overlay node
// sequence [start, entrances..., goal] into one contiguous path. Each
// junction tile is shared by two segments and emitted once.
func (qg *queryGraph) stitch(seq []NodeID, total grid.Cost, cost grid.CostFunc) (*path.Path, error) {
	var tiles []grid.Point
	for i := 1; i < len(seq); i++ {
		a, b := seq[i-1], seq[i]

		var seg []grid.Point
		switch {
		case a == qg.startID:
			seg = qg.startTiles[b]
		default:
			if _, isGoal := qg.goalPos[b]; isGoal {
				for _, gl := range qg.goalIn[a] {
					if gl.goalID == b {
						seg = gl.tiles

						break
					}
				}
			} else {
				var err error
				seg, err = qg.c.expandEdge(a, b, cost)
				if err != nil {
					return nil, err
				}
			}
		}
		if len(seg) == 0 {
			return nil, ErrInternal
		}
		if len(tiles) == 0 {
			tiles = append(tiles, seg...)
		} else {
			tiles = append(tiles, seg[1:]...)
		}
	}

	return path.New(tiles, total), nil
}
