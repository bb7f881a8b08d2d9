// Package grid defines core types and sentinel errors for the tile layer:
// coordinates, costs, cost functions and bounding regions.
package grid

import (
	"errors"
	"fmt"
)

// ErrBadDimensions indicates a grid with non-positive width or height.
var ErrBadDimensions = errors.New("grid: width and height must be positive")

// Point is an integer 2D tile coordinate. X grows to the right, Y grows
// downward. Validity is always relative to some grid bounds [0,W)×[0,H).
type Point struct {
	X, Y int
}

// String renders the point as "(x,y)" for error messages and logs.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Cost is the walk cost of a tile (or the total cost of a path).
// Non-negative values are walkable; any negative value marks a blocked
// (impassable) tile.
type Cost int

// Blocked reports whether c marks an impassable tile.
// Complexity: O(1).
func (c Cost) Blocked() bool {
	return c < 0
}

// CostFunc supplies the walk cost of a tile on demand. Implementations
// must be cheap and stable: between two update notifications, repeated
// calls for the same tile must return the same value.
type CostFunc func(Point) Cost

// Rect is a half-open axis-aligned region: x ∈ [MinX,MaxX), y ∈ [MinY,MaxY).
// The zero Rect is empty.
type Rect struct {
	MinX, MinY int
	MaxX, MaxY int
}

// NewRect builds the region covering [x, x+w) × [y, y+h).
func NewRect(x, y, w, h int) Rect {
	return Rect{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
}

// Contains reports whether p lies inside the region.
// Complexity: O(1).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X < r.MaxX && p.Y >= r.MinY && p.Y < r.MaxY
}

// Dx returns the region width.
func (r Rect) Dx() int { return r.MaxX - r.MinX }

// Dy returns the region height.
func (r Rect) Dy() int { return r.MaxY - r.MinY }

// Area returns the number of tiles covered by the region.
func (r Rect) Area() int { return r.Dx() * r.Dy() }
