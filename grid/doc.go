// Package grid defines the tile-level vocabulary shared by the whole
// module: coordinates, walk costs, cost functions, rectangular regions,
// and the pluggable Neighborhood movement policy.
//
// What:
//
//   - Point is an integer 2D tile coordinate.
//   - Cost is an ordinal walk cost; negative values mark blocked tiles.
//   - CostFunc maps a tile to its cost on demand; the grid itself is never
//     materialized or cached here.
//   - Rect is a half-open rectangular region used to bound searches.
//   - Neighborhood enumerates the valid neighbor tiles of a position and
//     optionally supplies an admissible distance estimate for A*.
//
// Why:
//
//   - The hierarchical cache consumes the caller's grid only through this
//     thin read contract; swapping movement rules (orthogonal, diagonal,
//     custom adjacency) never touches the algorithms built on top.
//
// Cost convention:
//
//   - The cost of a step is the cost of the tile being entered. A path
//     p0 → p1 → … → pn therefore costs cost(p1) + … + cost(pn); the start
//     tile is free. Reverse-oriented searches charge the tile being left,
//     which yields identical totals along the same tile sequence.
//
// Neighborhoods:
//
//   - NewManhattanNeighborhood: N/E/S/W movement, heuristic |dx| + |dy|.
//   - NewMooreNeighborhood: adds diagonals, heuristic max(|dx|, |dy|).
//   - NewCustomNeighborhood: arbitrary step offsets, no heuristic
//     (Estimable reports false, callers fall back to Dijkstra).
//
// Errors:
//
//   - ErrBadDimensions: a neighborhood was requested for a grid with a
//     non-positive width or height.
package grid
