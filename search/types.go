// Package search defines the graph contract, result types and functional
// options shared by the Dijkstra and A* engines.
package search

import (
	"errors"
	"math"

	"github.com/katalvlaran/hpath/grid"
)

// Sentinel errors for search execution.
var (
	// ErrNilGraph is returned if a nil Graph is passed to a search.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrNoGoals is returned if Dijkstra is invoked with no goals.
	ErrNoGoals = errors.New("search: goal set is empty")

	// ErrBadMaxCost signals a negative WithMaxCost argument.
	ErrBadMaxCost = errors.New("search: MaxCost must be non-negative")
)

// Neighbor is one outgoing connection of a node: the node it leads to and
// the non-negative cost of taking the step.
type Neighbor[N comparable] struct {
	To   N
	Cost grid.Cost
}

// Graph is the minimal contract a search operates on. Neighbors appends
// the outgoing connections of n to out and returns the extended slice;
// implementations must enumerate deterministically and must not retain out.
type Graph[N comparable] interface {
	Neighbors(n N, out []Neighbor[N]) []Neighbor[N]
}

// Heuristic estimates a lower bound on the cost from a to b. It must never
// overestimate, or A* loses its correctness guarantee.
type Heuristic[N comparable] func(a, b N) grid.Cost

// Result is a reconstructed shortest path: the node sequence from start to
// goal inclusive, and its total cost.
type Result[N comparable] struct {
	Nodes []N
	Cost  grid.Cost
}

// maxCost is the "no budget" sentinel for Options.MaxCost.
const maxCost = grid.Cost(math.MaxInt)

// Options configures a single search invocation.
//
// MaxCost   – paths costing more than this are abandoned (default: no cap).
// FirstGoal – multi-goal Dijkstra stops once any goal is settled.
type Options struct {
	MaxCost   grid.Cost
	FirstGoal bool
}

// Option is a functional option for Dijkstra and AStar.
type Option func(*Options)

// WithMaxCost caps the explored cost: nodes whose settled distance exceeds
// c are never expanded. Panics on negative c, which is an invalid budget.
func WithMaxCost(c grid.Cost) Option {
	return func(o *Options) {
		if c < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = c
	}
}

// WithFirstGoal makes a multi-goal Dijkstra return as soon as the nearest
// goal is settled, leaving all other goals out of the result map.
func WithFirstGoal() Option {
	return func(o *Options) {
		o.FirstGoal = true
	}
}

// DefaultOptions returns the baseline configuration: no cost cap, explore
// until every goal is settled or the frontier is exhausted.
func DefaultOptions() Options {
	return Options{
		MaxCost:   maxCost,
		FirstGoal: false,
	}
}
