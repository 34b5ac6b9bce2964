package generate

import (
	"math/rand"

	"dungeoncrawl/internal/gamemap"
)

// carveRoom turns the interior of r into floor.
func carveRoom(m *gamemap.Map, r gamemap.Rect) {
	for y := r.Y1; y < r.Y2; y++ {
		for x := r.X1; x < r.X2; x++ {
			m.SetTile(x, y, gamemap.Floor)
		}
	}
}

// carveCorridor digs an L-shaped tunnel between a and b, picking at random
// whether the horizontal or the vertical leg comes first.
func carveCorridor(m *gamemap.Map, a, b gamemap.Point, rng *rand.Rand) {
	if rng.Intn(2) == 0 {
		carveH(m, a.X, b.X, a.Y)
		carveV(m, a.Y, b.Y, b.X)
	} else {
		carveV(m, a.Y, b.Y, a.X)
		carveH(m, a.X, b.X, b.Y)
	}
}

func carveH(m *gamemap.Map, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		m.SetTile(x, y, gamemap.Floor)
	}
}

func carveV(m *gamemap.Map, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		m.SetTile(x, y, gamemap.Floor)
	}
}

// pruneWalls turns every wall whose full 3x3 neighbourhood is wall into
// floor. Candidates are collected first so earlier conversions do not affect
// later checks. The outer ring is never touched.
func pruneWalls(m *gamemap.Map) {
	var solid []gamemap.Point
	for y := 1; y < m.Height-1; y++ {
		for x := 1; x < m.Width-1; x++ {
			if surrounded(m, x, y) {
				solid = append(solid, gamemap.Point{X: x, Y: y})
			}
		}
	}
	for _, p := range solid {
		m.SetTile(p.X, p.Y, gamemap.Floor)
	}
}

func surrounded(m *gamemap.Map, x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if !m.IsWall(x+dx, y+dy) {
				return false
			}
		}
	}
	return true
}
