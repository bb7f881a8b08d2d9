// Package pathcache implements hierarchical pathfinding over large 2D
// grids: it partitions the grid into chunks, precomputes a sparse
// abstract graph of chunk-border entrances, answers path queries over
// that graph, and repairs only the affected chunks when tiles change.
//
// Overview:
//
//   - New partitions the [0,width)×[0,height) grid into ChunkSize-sided
//     chunks (the last row/column may be a partial chunk when the size
//     does not divide the dimensions; tiles are never dropped).
//   - Each chunk derives its entrance nodes: border tiles forming a
//     mutually walkable pair with the adjacent chunk. Contiguous openings
//     optionally coalesce into one representative node apiece.
//   - Intra-edges carry the exact shortest cost between two entrances of
//     the same chunk, computed by a chunk-bounded multi-goal Dijkstra.
//     Inter-edges connect adjacent entrance tiles across the border at
//     the single-step crossing cost.
//   - FindPath / FindPaths / FindClosestGoal connect the start and goal
//     tiles to the entrances of their chunks, search the abstract graph
//     (A* when the neighborhood supplies an admissible estimate, else
//     Dijkstra), and stitch the traversed edges back into a concrete
//     tile-by-tile path.
//   - TilesChanged rebuilds exactly the chunks containing a changed tile,
//     re-derives entrances of bordering chunks whose openings shifted,
//     and re-establishes the crossing edges — work proportional to the
//     chunks affected, not to the grid.
//
// Guarantees:
//
//   - Exactness: a query finds a path iff one exists on the raw grid
//     under the same neighborhood policy. Path cost may exceed the true
//     optimum by a small factor that shrinks with ChunkSize; costs below
//     DirectSearchRadius are re-resolved exactly (optimal under the
//     heuristics' cost-at-least-1 assumption).
//   - Atomic updates: a chunk rebuild is computed aside and swapped in
//     whole; no partially rebuilt chunk is ever observable.
//   - Paths returned earlier remain valid values after any mutation.
//
// Concurrency:
//
//   - A PathCache has a single logical owner. Queries are read-only and
//     may run concurrently with each other; TilesChanged requires
//     exclusive access (single-writer / multiple-reader discipline).
//     Chunk builds inside New and TilesChanged fan out across workers.
//
// Error handling (sentinel errors):
//
//   - ErrBadDimensions, ErrBadChunkSize: invalid configuration at New.
//   - ErrNilCostFunc, ErrNilNeighborhood: missing collaborators.
//   - ErrOutOfBounds: a query or update coordinate outside the grid;
//     never downgraded to "no path".
//   - ErrInternal: a broken graph invariant detected defensively.
//
// "No path" and blocked start/goal tiles are expected outcomes reported
// via a false found-flag, never through an error.
package pathcache
