package pathcache

import (
	"log/slog"

	"github.com/katalvlaran/hpath/grid"
)

// Config tunes how a PathCache is built and queried.
//
//   - ChunkSize: side length of each chunk. The final row/column of
//     chunks may be smaller when ChunkSize does not divide the grid
//     dimensions; tiles are never dropped. Must be positive.
//   - CachePaths: when true, edges memoize their concrete tile sequence
//     (faster queries, more memory); when false, sub-paths are recomputed
//     lazily at stitch time.
//   - CoalesceEntrances: when true, a contiguous run of openings along a
//     chunk border collapses into a single representative entrance (fewer
//     nodes, slightly coarser paths). Openings usable only through a
//     diagonal squeeze always keep their own node, preserving exactness.
//     Coalescing assumes consecutive border tiles reach each other, which
//     the built-in neighborhoods guarantee; disable it for custom offset
//     sets that cannot walk along a chunk border.
//   - DirectSearchRadius: abstract results cheaper than this are
//     re-resolved by an exact grid search, bounding the path-quality
//     penalty for short paths. 0 disables the fallback.
//   - Logger: optional structured logger for build/update/query timings
//     at debug level; nil disables logging.
type Config struct {
	ChunkSize          int
	CachePaths         bool
	CoalesceEntrances  bool
	DirectSearchRadius grid.Cost
	Logger             *slog.Logger
}

// DefaultChunkSize is the chunk side length used by DefaultConfig.
const DefaultChunkSize = 8

// DefaultConfig returns the baseline configuration: chunk size 8, cached
// sub-paths, coalesced entrances, exact fallback below cost 16, no logger.
func DefaultConfig() Config {
	return Config{
		ChunkSize:          DefaultChunkSize,
		CachePaths:         true,
		CoalesceEntrances:  true,
		DirectSearchRadius: 2 * DefaultChunkSize,
		Logger:             nil,
	}
}

// ConfigWithChunkSize returns DefaultConfig with the chunk size set to n
// and the exact-fallback radius scaled to 2n.
func ConfigWithChunkSize(n int) Config {
	cfg := DefaultConfig()
	cfg.ChunkSize = n
	cfg.DirectSearchRadius = grid.Cost(2 * n)

	return cfg
}
