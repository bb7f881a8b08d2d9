// Package hpath is hierarchical pathfinding for large 2D grids:
// build a compact abstract graph once, answer path queries cheaply,
// and repair only the affected region when the grid changes.
//
// 🚀 What is hpath?
//
//	A library implementing the HPA* family of techniques:
//		• Chunking: the grid is partitioned into fixed-size chunks
//		• Entrances: walkable openings along chunk borders become graph nodes
//		• Abstract graph: exact intra-chunk costs + single-step border crossings
//		• Queries: A*/Dijkstra over the abstract graph, stitched back to tiles
//		• Updates: TilesChanged repairs only the affected chunks
//
// ✨ Why choose hpath?
//
//   - Near-optimal paths at a fraction of the cost of raw grid search
//   - Exactness guarantee – a path is found iff one exists on the raw grid
//   - Incremental – cost of an update is proportional to the chunks touched
//   - Pluggable movement – orthogonal, diagonal or custom neighborhoods
//
// Under the hood, everything is organized under four subpackages:
//
//	grid/      — tile coordinates, costs, regions & Neighborhood policies
//	search/    — generic Dijkstra/A* engine + bounded grid views
//	path/      — the immutable Path value returned to callers
//	pathcache/ — chunks, the abstract graph, queries and incremental updates
//
// Quick ASCII example (chunk size 3, '#' blocked, 'E' entrances):
//
//	    . . . │ . . .
//	    . # # │ # # .
//	    . . E │ E . .
//	    ──────┼──────
//	    . . E │ E . .
//	    . . . │ . . .
//
//	two 3×3 chunk borders with one shared opening on each side.
//
// Start with pathcache.New, then pathcache.FindPath and
// pathcache.TilesChanged. Dive into the per-package docs for the
// algorithms, the configuration knobs and the cost conventions.
//
//	go get github.com/katalvlaran/hpath
package hpath
