// Package search is the local search engine of the module: generic
// shortest-path search over any weighted graph with comparable node IDs,
// plus a bounded grid adapter so the same engine runs both on raw tiles
// and on the abstract entrance graph.
//
// Overview:
//
//   - Dijkstra computes exact shortest paths from one start to one or many
//     goals, with no heuristic. Used for chunk entrance-pair computation
//     (many goals at once) and whenever no admissible estimate exists.
//   - AStar computes the shortest path to a single goal guided by an
//     admissible heuristic, falling back to Dijkstra ordering when the
//     heuristic is nil.
//   - GridView presents a rectangular region of a grid as a Graph over
//     tile coordinates; searches through it never visit a tile outside
//     the region, which bounds both work and memory.
//
// Key features:
//
//   - Generic over the node type (grid.Point, abstract node IDs, ...).
//   - Lazy decrease-key: duplicates are pushed into the min-heap and stale
//     entries skipped on pop, avoiding an indexed heap.
//   - Functional options: WithMaxCost prunes paths beyond a cost budget,
//     WithFirstGoal stops a multi-goal Dijkstra at the first goal settled.
//   - Pure: no retained state, safe for concurrent use over shared graphs.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V) per search, V and E counted inside the
//     region or graph actually reachable under the options.
//   - Space: O(V + E) for the distance map, parent map and heap.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph: a nil Graph was supplied.
//   - ErrNoGoals:  Dijkstra was invoked with an empty goal set.
//
// Unreachable goals are not errors: Dijkstra simply omits them from its
// result map, and AStar reports ok == false.
package search
