package gamemap

import (
	"math"

	"github.com/pkg/errors"

	"dungeoncrawl/internal/ecs"
	"dungeoncrawl/internal/pathfind"
)

// ErrOutOfBounds is returned for coordinates outside the map extents.
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// Map holds the tile grid and per-tile state for one dungeon level. All
// per-tile slices are row-major and indexed with Idx.
type Map struct {
	Width, Height int
	Depth         int
	Tiles         []TileType
	Revealed      []bool
	Visible       []bool
	Blocked       []bool
	TileContent   [][]ecs.Entity
	Rooms         []Rect
}

// New creates a Map filled with walls.
func New(width, height, depth int) *Map {
	n := width * height
	return &Map{
		Width:       width,
		Height:      height,
		Depth:       depth,
		Tiles:       make([]TileType, n),
		Revealed:    make([]bool, n),
		Visible:     make([]bool, n),
		Blocked:     make([]bool, n),
		TileContent: make([][]ecs.Entity, n),
	}
}

// Idx converts (x, y) to a flat index. It does not check bounds.
func (m *Map) Idx(x, y int) int { return y*m.Width + x }

// XY converts a flat index back to coordinates.
func (m *Map) XY(idx int) (int, int) { return idx % m.Width, idx / m.Width }

// PointAt converts a flat index to a Point.
func (m *Map) PointAt(idx int) Point {
	x, y := m.XY(idx)
	return Point{x, y}
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Tile returns the tile at (x, y).
func (m *Map) Tile(x, y int) (TileType, error) {
	if !m.InBounds(x, y) {
		return Wall, errors.Wrapf(ErrOutOfBounds, "tile (%d,%d) on %dx%d map", x, y, m.Width, m.Height)
	}
	return m.Tiles[m.Idx(x, y)], nil
}

// SetTile replaces the tile at (x, y). Out-of-bounds writes are dropped.
func (m *Map) SetTile(x, y int, t TileType) {
	if m.InBounds(x, y) {
		m.Tiles[m.Idx(x, y)] = t
	}
}

// IsWall reports whether (x, y) is a wall. Out of bounds counts as wall.
func (m *Map) IsWall(x, y int) bool {
	return !m.InBounds(x, y) || m.Tiles[m.Idx(x, y)] == Wall
}

// IsOpaque reports whether (x, y) blocks sight. Out of bounds is opaque.
func (m *Map) IsOpaque(x, y int) bool {
	return !m.InBounds(x, y) || m.Tiles[m.Idx(x, y)].Opaque()
}

// IsBlocked reports whether (x, y) cannot be entered this turn.
func (m *Map) IsBlocked(x, y int) bool {
	return !m.InBounds(x, y) || m.Blocked[m.Idx(x, y)]
}

// PopulateBlocked resets the blocked bitmap to the static wall layout.
func (m *Map) PopulateBlocked() {
	for i, t := range m.Tiles {
		m.Blocked[i] = !t.Walkable()
	}
}

// ClearContent empties every per-tile occupant list.
func (m *Map) ClearContent() {
	for i := range m.TileContent {
		m.TileContent[i] = m.TileContent[i][:0]
	}
}

// ContentAt returns the occupants of (x, y), or nil when out of bounds.
func (m *Map) ContentAt(x, y int) []ecs.Entity {
	if !m.InBounds(x, y) {
		return nil
	}
	return m.TileContent[m.Idx(x, y)]
}

// RevealAll marks every tile as revealed.
func (m *Map) RevealAll() {
	for i := range m.Revealed {
		m.Revealed[i] = true
	}
}

// Count returns how many tiles have type t.
func (m *Map) Count(t TileType) int {
	n := 0
	for _, tt := range m.Tiles {
		if tt == t {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the map.
func (m *Map) Clone() *Map {
	c := &Map{
		Width:       m.Width,
		Height:      m.Height,
		Depth:       m.Depth,
		Tiles:       append([]TileType(nil), m.Tiles...),
		Revealed:    append([]bool(nil), m.Revealed...),
		Visible:     append([]bool(nil), m.Visible...),
		Blocked:     append([]bool(nil), m.Blocked...),
		TileContent: make([][]ecs.Entity, len(m.TileContent)),
		Rooms:       append([]Rect(nil), m.Rooms...),
	}
	for i, content := range m.TileContent {
		if len(content) > 0 {
			c.TileContent[i] = append([]ecs.Entity(nil), content...)
		}
	}
	return c
}

const diagonalCost = 1.45

var directions = [8]struct {
	dx, dy int
	cost   float64
}{
	{-1, 0, 1.0}, {1, 0, 1.0}, {0, -1, 1.0}, {0, 1, 1.0},
	{-1, -1, diagonalCost}, {1, -1, diagonalCost}, {-1, 1, diagonalCost}, {1, 1, diagonalCost},
}

// Exits lists the unblocked in-bounds neighbours of idx.
func (m *Map) Exits(idx int) []pathfind.Exit {
	x, y := m.XY(idx)
	exits := make([]pathfind.Exit, 0, 8)
	for _, d := range directions {
		nx, ny := x+d.dx, y+d.dy
		if m.IsBlocked(nx, ny) {
			continue
		}
		exits = append(exits, pathfind.Exit{Idx: m.Idx(nx, ny), Cost: d.cost})
	}
	return exits
}

// Distance is the straight-line distance between two tile indices.
func (m *Map) Distance(a, b int) float64 {
	ax, ay := m.XY(a)
	bx, by := m.XY(b)
	return math.Hypot(float64(ax-bx), float64(ay-by))
}

var _ pathfind.Graph = (*Map)(nil)
