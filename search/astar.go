package search

import (
	"container/heap"

	"github.com/katalvlaran/hpath/grid"
)

// AStar computes the shortest path from start to a single goal, guided by
// an admissible heuristic. A nil heuristic degrades gracefully to Dijkstra
// ordering, so callers can pass whatever their neighborhood supplies.
//
// Returns ok == false when the goal is unreachable (or beyond WithMaxCost);
// that is an expected outcome, not an error.
//
// Complexity:
//
//   - Time:  O((V + E) log V) worst case; typically far less with a good
//     heuristic, since expansion is biased toward the goal.
//   - Space: O(V + E).
func AStar[N comparable](g Graph[N], start, goal N, h Heuristic[N], opts ...Option) (Result[N], bool, error) {
	// 1) Build and validate options, then inputs.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return Result[N]{}, false, ErrNilGraph
	}

	// 2) Trivial case: already there.
	if start == goal {
		return Result[N]{Nodes: []N{start}, Cost: 0}, true, nil
	}

	// 3) Main loop: pop the lowest f, settle, relax neighbors.
	state := newRunState[N](1)
	var f0 grid.Cost
	if h != nil {
		f0 = h(start, goal)
	}
	state.push(start, 0, f0)

	for state.pq.Len() > 0 {
		cur := heap.Pop(&state.pq).(pqItem[N])
		if state.stale(cur) {
			continue
		}
		state.settle(cur.node)

		// 4) Settling the goal finalizes the shortest path to it.
		if cur.node == goal {
			return state.reconstruct(goal, cur.g), true, nil
		}

		state.relax(g, cur, cfg.MaxCost, h, goal)
	}

	// 5) Frontier exhausted without settling the goal: unreachable.
	return Result[N]{}, false, nil
}
