package pathcache

import (
	"sort"

	"github.com/katalvlaran/hpath/grid"
)

// EdgeInfo describes one outgoing abstract edge for inspection: the tile
// of the target entrance and the exact traversal cost.
type EdgeInfo struct {
	To   grid.Point
	Cost grid.Cost
}

// NodeInfo is an inspection snapshot of one entrance node. Edges are
// sorted by target (y, x).
type NodeInfo struct {
	Pos      grid.Point
	WalkCost grid.Cost
	Edges    []EdgeInfo
}

// Nodes returns an inspection snapshot of the abstract graph, sorted by
// node position (y, x). The snapshot is detached: mutating it does not
// affect the cache. Intended for debugging, visualization and tests;
// node identity across updates is positional, as rebuilt chunks assign
// fresh internal IDs.
func (c *PathCache) Nodes() []NodeInfo {
	out := make([]NodeInfo, 0, c.nodes.len())
	for _, n := range c.nodes.nodes {
		info := NodeInfo{
			Pos:      n.pos,
			WalkCost: n.walk,
			Edges:    make([]EdgeInfo, 0, len(n.edges)),
		}
		for to, e := range n.edges {
			target := c.nodes.at(to)
			if target == nil {
				continue
			}
			info.Edges = append(info.Edges, EdgeInfo{To: target.pos, Cost: e.cost})
		}
		sort.Slice(info.Edges, func(i, j int) bool {
			return lessYX(info.Edges[i].To, info.Edges[j].To)
		})
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool {
		return lessYX(out[i].Pos, out[j].Pos)
	})

	return out
}

func lessYX(a, b grid.Point) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}

	return a.X < b.X
}
