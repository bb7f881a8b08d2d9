package search

import (
	"container/heap"

	"github.com/katalvlaran/hpath/grid"
)

// Dijkstra computes the exact shortest path from start to every reachable
// goal, processing nodes in order of increasing travelled cost.
//
// Returns a map keyed by goal; goals that cannot be reached (or whose
// shortest cost exceeds WithMaxCost) are simply absent — an empty map and
// a nil error means "none reached", which is an expected outcome, not a
// failure.
//
// Options customization:
//
//   - WithMaxCost(c): abandon paths costing more than c.
//   - WithFirstGoal(): stop once the nearest goal is settled.
//
// Complexity:
//
//   - Time:  O((V + E) log V), V and E limited to the explored region.
//   - Space: O(V + E).
func Dijkstra[N comparable](g Graph[N], start N, goals []N, opts ...Option) (map[N]Result[N], error) {
	// 1) Build and validate options, then inputs.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(goals) == 0 {
		return nil, ErrNoGoals
	}

	// 2) Index the goals; `remaining` counts the ones not yet settled.
	goalSet := make(map[N]struct{}, len(goals))
	for _, goal := range goals {
		goalSet[goal] = struct{}{}
	}
	remaining := len(goalSet)

	// 3) Run the shared relaxation loop with f == g (no heuristic).
	state := newRunState[N](len(goals))
	state.push(start, 0, 0)

	out := make(map[N]Result[N], len(goals))
	for state.pq.Len() > 0 {
		cur := heap.Pop(&state.pq).(pqItem[N])
		if state.stale(cur) {
			continue
		}
		state.settle(cur.node)

		// 4) Settling a goal finalizes its shortest path.
		if _, isGoal := goalSet[cur.node]; isGoal {
			if _, done := out[cur.node]; !done {
				out[cur.node] = state.reconstruct(cur.node, cur.g)
				remaining--
				if remaining == 0 || cfg.FirstGoal {
					break
				}
			}
		}

		state.relax(g, cur, cfg.MaxCost, nil, cur.node)
	}

	return out, nil
}

// runState bundles the mutable per-search structures shared by Dijkstra
// and AStar: tentative distances, parents, the settled set and the heap.
type runState[N comparable] struct {
	dist    map[N]grid.Cost
	prev    map[N]N
	settled map[N]struct{}
	pq      priorityQueue[N]
	scratch []Neighbor[N]
}

func newRunState[N comparable](hint int) *runState[N] {
	return &runState[N]{
		dist:    make(map[N]grid.Cost, hint*4),
		prev:    make(map[N]N, hint*4),
		settled: make(map[N]struct{}, hint*4),
		pq:      make(priorityQueue[N], 0, hint*4),
	}
}

// push records a tentative distance and enqueues the node.
func (s *runState[N]) push(n N, g, f grid.Cost) {
	s.dist[n] = g
	heap.Push(&s.pq, pqItem[N]{node: n, g: g, f: f})
}

// stale reports whether a popped entry was superseded by a cheaper push.
func (s *runState[N]) stale(it pqItem[N]) bool {
	if _, done := s.settled[it.node]; done {
		return true
	}
	best, ok := s.dist[it.node]

	return !ok || it.g > best
}

func (s *runState[N]) settle(n N) {
	s.settled[n] = struct{}{}
}

// relax expands cur's neighbors, pushing any improvement. When h is
// non-nil the heap key includes the heuristic estimate toward goal.
func (s *runState[N]) relax(g Graph[N], cur pqItem[N], budget grid.Cost, h Heuristic[N], goal N) {
	s.scratch = g.Neighbors(cur.node, s.scratch[:0])
	for _, nb := range s.scratch {
		next := cur.g + nb.Cost
		if next > budget {
			continue
		}
		if best, seen := s.dist[nb.To]; seen && next >= best {
			continue
		}
		s.dist[nb.To] = next
		s.prev[nb.To] = cur.node
		f := next
		if h != nil {
			f += h(nb.To, goal)
		}
		heap.Push(&s.pq, pqItem[N]{node: nb.To, g: next, f: f})
	}
}

// reconstruct walks the parent links from goal back to the start.
func (s *runState[N]) reconstruct(goal N, cost grid.Cost) Result[N] {
	var nodes []N
	cur := goal
	for {
		nodes = append(nodes, cur)
		parent, ok := s.prev[cur]
		if !ok {
			break
		}
		cur = parent
	}
	// Reverse in place: prev links run goal → start.
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}

	return Result[N]{Nodes: nodes, Cost: cost}
}
