package system

import (
	"math"

	"dungeoncrawl/internal/component"
	"dungeoncrawl/internal/ecs"
	"dungeoncrawl/internal/gamemap"
	"dungeoncrawl/internal/intent"
	"dungeoncrawl/internal/logger"
	"dungeoncrawl/internal/pathfind"
)

// Marker is a short-lived cosmetic glyph for the renderer.
type Marker struct {
	Pos   gamemap.Point
	Glyph string
}

// MonsterAI runs one decision per monster. It does nothing unless
// monsterTurn is set. A confused monster loses its turn. An adjacent monster
// queues an attack on the player; one that can see the player steps one tile
// along an A* path, updating Blocked for its old and new tile at once so
// later monsters in the same pass route around it.
func MonsterAI(w *ecs.World, m *gamemap.Map, q *intent.Queue, player ecs.Entity, monsterTurn bool) []Marker {
	if !monsterTurn {
		return nil
	}
	ppos, err := ecs.MustGet[component.Position](w, player)
	if err != nil {
		logger.For("ai").WithError(err).Warn("player has no position, monsters idle")
		return nil
	}
	target := gamemap.Point{X: ppos.X, Y: ppos.Y}

	var markers []Marker
	for _, id := range w.Query(component.CMonster, component.CPosition, component.CViewshed) {
		pos, _ := ecs.Get[component.Position](w, id)
		here := gamemap.Point{X: pos.X, Y: pos.Y}

		if conf, ok := ecs.Get[component.Confusion](w, id); ok {
			conf.Turns--
			if conf.Turns <= 0 {
				w.Remove(id, component.CConfusion)
			} else {
				w.Add(id, conf)
			}
			markers = append(markers, Marker{Pos: here, Glyph: "?"})
			continue
		}

		if math.Sqrt(float64(here.DistanceSq(target))) < 1.5 {
			q.PushAttack(intent.Attack{Attacker: id, Target: player})
			continue
		}

		vs, _ := ecs.Get[component.Viewshed](w, id)
		if !vs.CanSee(target) || !m.InBounds(here.X, here.Y) {
			continue
		}
		path := pathfind.AStar(m, m.Idx(here.X, here.Y), m.Idx(target.X, target.Y))
		if !path.Success || len(path.Steps) < 2 {
			continue
		}
		m.Blocked[m.Idx(here.X, here.Y)] = false
		next := m.PointAt(path.Steps[1])
		m.Blocked[path.Steps[1]] = true
		w.Add(id, component.Position{X: next.X, Y: next.Y})
		vs.Dirty = true
		w.Add(id, vs)
	}
	return markers
}
