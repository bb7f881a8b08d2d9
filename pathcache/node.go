package pathcache

import "github.com/katalvlaran/hpath/grid"

// NodeID identifies an abstract graph node. IDs are unique at any point
// in time but are not reused stably across updates: rebuilding a chunk
// assigns fresh IDs to its nodes.
type NodeID uint32

// edge is a directed connection between two nodes. tiles holds the
// concrete sequence from the edge's tail to its head inclusive, or nil
// when the sub-path is recomputed lazily. inter marks a single-step
// border crossing, whose tiles are always the two endpoints.
type edge struct {
	cost  grid.Cost
	tiles []grid.Point
	inter bool
}

// node is an abstract graph vertex at a chunk-border tile. walk is the
// tile's own cost, charged when entering it from an adjacent node.
type node struct {
	id    NodeID
	pos   grid.Point
	walk  grid.Cost
	edges map[NodeID]*edge
}

// nodeList is the arena owning every node of the abstract graph, indexed
// by ID and by tile position. Chunks reference nodes by ID only.
type nodeList struct {
	nodes map[NodeID]*node
	byPos map[grid.Point]NodeID
	next  NodeID
}

func newNodeList() *nodeList {
	return &nodeList{
		nodes: make(map[NodeID]*node),
		byPos: make(map[grid.Point]NodeID),
	}
}

// add registers a node at pos with the given walk cost and returns its
// fresh ID. At most one node may exist per position.
func (l *nodeList) add(pos grid.Point, walk grid.Cost) NodeID {
	id := l.next
	l.next++
	l.nodes[id] = &node{
		id:    id,
		pos:   pos,
		walk:  walk,
		edges: make(map[NodeID]*edge, 4),
	}
	l.byPos[pos] = id

	return id
}

// remove deletes a node and every edge touching it. Every edge in the
// graph is mirrored (A→B implies B→A), so the incoming side is found
// through the outgoing keys.
func (l *nodeList) remove(id NodeID) {
	n, ok := l.nodes[id]
	if !ok {
		return
	}
	for other := range n.edges {
		if m, live := l.nodes[other]; live {
			delete(m.edges, id)
		}
	}
	delete(l.byPos, n.pos)
	delete(l.nodes, id)
}

// at returns the node with the given ID, or nil.
func (l *nodeList) at(id NodeID) *node {
	return l.nodes[id]
}

// idAt returns the ID of the node at pos, if any.
func (l *nodeList) idAt(pos grid.Point) (NodeID, bool) {
	id, ok := l.byPos[pos]

	return id, ok
}

// addEdge installs the directed edge from→to, keeping an existing edge
// if one is already present (a direct crossing can never undercut an
// exact intra-chunk cost between the same endpoints).
func (l *nodeList) addEdge(from, to NodeID, cost grid.Cost, tiles []grid.Point, inter bool) {
	n := l.nodes[from]
	if n == nil {
		return
	}
	if _, exists := n.edges[to]; exists {
		return
	}
	n.edges[to] = &edge{cost: cost, tiles: tiles, inter: inter}
}

// len returns the number of live nodes.
func (l *nodeList) len() int {
	return len(l.nodes)
}
