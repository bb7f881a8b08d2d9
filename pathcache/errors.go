package pathcache

import "errors"

// Sentinel errors for cache construction, update and query.
var (
	// ErrBadDimensions indicates a grid with non-positive width or height.
	ErrBadDimensions = errors.New("pathcache: grid dimensions must be positive")

	// ErrBadChunkSize indicates a non-positive Config.ChunkSize.
	ErrBadChunkSize = errors.New("pathcache: chunk size must be positive")

	// ErrNilCostFunc indicates a nil cost function was supplied.
	ErrNilCostFunc = errors.New("pathcache: cost function is nil")

	// ErrNilNeighborhood indicates a nil neighborhood was supplied.
	ErrNilNeighborhood = errors.New("pathcache: neighborhood is nil")

	// ErrOutOfBounds indicates a coordinate outside the grid bounds.
	// It is distinct from "no path", which is an expected query outcome.
	ErrOutOfBounds = errors.New("pathcache: coordinate out of grid bounds")

	// ErrInternal indicates a broken graph invariant, such as an abstract
	// path referencing an edge or node absent from the current graph.
	ErrInternal = errors.New("pathcache: internal graph inconsistency")
)
