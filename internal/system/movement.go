package system

import (
	"dungeoncrawl/internal/component"
	"dungeoncrawl/internal/ecs"
	"dungeoncrawl/internal/gamemap"
	"dungeoncrawl/internal/intent"
)

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveOK      MoveResult = iota // position updated
	MoveBlocked                   // wall, blocking entity or off the map
	MoveAttack                    // bumped a creature; an attack was queued
)

// TryMove moves id by (dx, dy). Bumping into a creature on the destination
// tile queues an attack on it instead. Occupancy comes from the last index
// pass.
func TryMove(w *ecs.World, m *gamemap.Map, q *intent.Queue, id ecs.Entity, dx, dy int) (MoveResult, ecs.Entity) {
	pos, ok := ecs.Get[component.Position](w, id)
	if !ok {
		return MoveBlocked, ecs.NilEntity
	}
	nx, ny := pos.X+dx, pos.Y+dy
	if !m.InBounds(nx, ny) {
		return MoveBlocked, ecs.NilEntity
	}

	for _, other := range m.ContentAt(nx, ny) {
		if other != id && w.Has(other, component.CCombatStats) {
			q.PushAttack(intent.Attack{Attacker: id, Target: other})
			return MoveAttack, other
		}
	}

	if m.IsBlocked(nx, ny) {
		return MoveBlocked, ecs.NilEntity
	}
	w.Add(id, component.Position{X: nx, Y: ny})
	if vs, ok := ecs.Get[component.Viewshed](w, id); ok {
		vs.Dirty = true
		w.Add(id, vs)
	}
	return MoveOK, ecs.NilEntity
}

// SkipTurn heals id by its regen rate, clamped to max HP.
func SkipTurn(w *ecs.World, id ecs.Entity) {
	cs, ok := ecs.Get[component.CombatStats](w, id)
	if !ok {
		return
	}
	cs.Heal(cs.RegenRate)
	w.Add(id, cs)
}

// OnTile reports whether id stands on a tile of type t.
func OnTile(w *ecs.World, m *gamemap.Map, id ecs.Entity, t gamemap.TileType) bool {
	pos, ok := ecs.Get[component.Position](w, id)
	if !ok {
		return false
	}
	tt, err := m.Tile(pos.X, pos.Y)
	return err == nil && tt == t
}
