package search

import "github.com/katalvlaran/hpath/grid"

// pqItem is a heap entry under the lazy decrease-key strategy: node with
// its tentative travelled cost g and its ordering key f (f == g for
// Dijkstra, f == g + heuristic for A*). Stale duplicates are skipped on pop.
type pqItem[N comparable] struct {
	node N
	g    grid.Cost
	f    grid.Cost
}

// priorityQueue is a min-heap of pqItem ordered by f. It implements
// container/heap.Interface.
type priorityQueue[N comparable] []pqItem[N]

func (q priorityQueue[N]) Len() int           { return len(q) }
func (q priorityQueue[N]) Less(i, j int) bool { return q[i].f < q[j].f }
func (q priorityQueue[N]) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }

func (q *priorityQueue[N]) Push(x any) {
	*q = append(*q, x.(pqItem[N]))
}

func (q *priorityQueue[N]) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}
