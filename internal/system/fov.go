package system

import (
	"dungeoncrawl/internal/component"
	"dungeoncrawl/internal/ecs"
	"dungeoncrawl/internal/gamemap"

	"github.com/zyedidia/generic/mapset"
)

// octant transform matrices.
// For each octant, a (dx, dy) sweep pair maps to a world offset via:
//
//	worldX = cx + dx*xx + dy*xy
//	worldY = cy + dx*yx + dy*yy
//
// where dx sweeps horizontally within the row and dy is the fixed row index.
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// FieldOfView returns every tile visible from origin within radius, using
// recursive shadowcasting. Walls are lit but stop light; everything off the
// map is opaque and never returned.
func FieldOfView(m *gamemap.Map, origin gamemap.Point, radius int) mapset.Set[gamemap.Point] {
	lit := mapset.New[gamemap.Point]()
	if !m.InBounds(origin.X, origin.Y) {
		return lit
	}
	lit.Put(origin)
	for _, o := range octants {
		castLight(m, lit, origin.X, origin.Y, 1, 1.0, 0.0, radius, o[0], o[1], o[2], o[3])
	}
	return lit
}

// castLight lights one octant.
//
//   - j is the current row (distance from origin along the main axis)
//   - dy = -j is fixed for the entire inner sweep
//   - dx sweeps from -j to 0
//   - lSlope = (dx - 0.5) / (dy + 0.5)   rSlope = (dx + 0.5) / (dy - 0.5)
func castLight(m *gamemap.Map, lit mapset.Set[gamemap.Point], cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int) {
	if start < end {
		return
	}
	radiusSq := radius * radius
	newStart := start

	for j := row; j <= radius; j++ {
		dy := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			wx := cx + dx*xx + dy*xy
			wy := cy + dx*yx + dy*yy

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			if dx*dx+dy*dy <= radiusSq && m.InBounds(wx, wy) {
				lit.Put(gamemap.Point{X: wx, Y: wy})
			}

			opaque := m.IsOpaque(wx, wy)
			if blocked {
				if opaque {
					newStart = rSlope
				} else {
					blocked = false
					start = newStart
				}
			} else if opaque && j < radius {
				blocked = true
				castLight(m, lit, cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}

// UpdateVisibility recomputes every dirty viewshed. For the player it also
// rewrites the map's Visible bitmap and extends Revealed.
func UpdateVisibility(w *ecs.World, m *gamemap.Map) {
	for _, id := range w.Query(component.CViewshed, component.CPosition) {
		vs, _ := ecs.Get[component.Viewshed](w, id)
		if !vs.Dirty {
			continue
		}
		pos, _ := ecs.Get[component.Position](w, id)
		vs.Visible = FieldOfView(m, gamemap.Point{X: pos.X, Y: pos.Y}, vs.Range)
		vs.Dirty = false
		w.Add(id, vs)

		if !w.Has(id, component.CPlayer) {
			continue
		}
		clear(m.Visible)
		vs.Visible.Each(func(p gamemap.Point) {
			idx := m.Idx(p.X, p.Y)
			m.Visible[idx] = true
			m.Revealed[idx] = true
		})
	}
}
