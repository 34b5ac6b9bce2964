package gamemap

import "fmt"

// TileType identifies the type of a map tile.
type TileType uint8

const (
	Wall TileType = iota
	Floor
	StairsDown
	StairsUp
)

func (t TileType) String() string {
	switch t {
	case Wall:
		return "wall"
	case Floor:
		return "floor"
	case StairsDown:
		return "stairs-down"
	case StairsUp:
		return "stairs-up"
	}
	return fmt.Sprintf("tile(%d)", uint8(t))
}

// Opaque reports whether the tile blocks line of sight.
func (t TileType) Opaque() bool { return t == Wall }

// Walkable reports whether the tile can be stood on.
func (t TileType) Walkable() bool { return t != Wall }

// Point is a tile coordinate.
type Point struct {
	X, Y int
}

// Add returns p offset by (dx, dy).
func (p Point) Add(dx, dy int) Point { return Point{p.X + dx, p.Y + dy} }

// DistanceSq is the squared Euclidean distance between two points.
func (p Point) DistanceSq(o Point) int {
	dx, dy := p.X-o.X, p.Y-o.Y
	return dx*dx + dy*dy
}

// Rect is an axis-aligned rectangle used for rooms. X2 and Y2 are exclusive
// for carving purposes.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect builds a rectangle from its top-left corner and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Width of the rectangle.
func (r Rect) Width() int { return r.X2 - r.X1 }

// Height of the rectangle.
func (r Rect) Height() int { return r.Y2 - r.Y1 }

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{(r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2}
}

// Intersects reports whether r overlaps other (inclusive edges), so two
// accepted rooms always keep a wall between them.
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Contains reports whether p lies in the carved interior of r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X1 && p.X < r.X2 && p.Y >= r.Y1 && p.Y < r.Y2
}
