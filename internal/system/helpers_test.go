package system

import (
	"dungeoncrawl/internal/component"
	"dungeoncrawl/internal/ecs"
	"dungeoncrawl/internal/gamelog"
	"dungeoncrawl/internal/gamemap"
	"dungeoncrawl/internal/intent"
)

// openMap creates a w×h map with a wall border and open floor inside.
func openMap(w, h int) *gamemap.Map {
	m := gamemap.New(w, h, 1)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			m.SetTile(x, y, gamemap.Floor)
		}
	}
	m.PopulateBlocked()
	return m
}

type testWorld struct {
	w      *ecs.World
	m      *gamemap.Map
	q      *intent.Queue
	log    *gamelog.Log
	player ecs.Entity
}

// newTestWorld builds a 20×20 open map with a player at (px, py).
func newTestWorld(px, py int) *testWorld {
	tw := &testWorld{
		w:   ecs.NewWorld(),
		m:   openMap(20, 20),
		q:   intent.New(),
		log: gamelog.New(),
	}
	tw.player = tw.w.Spawn(
		component.Position{X: px, Y: py},
		component.Player{},
		component.Name{Name: "Player"},
		component.NewViewshed(8),
		component.CombatStats{MaxHP: 30, HP: 30, Defense: 2, Power: 5, RegenRate: 1},
	)
	return tw
}

// addMonster places a monster with the given stats.
func (tw *testWorld) addMonster(name string, x, y, hp, def, pow int) ecs.Entity {
	return tw.w.Spawn(
		component.Position{X: x, Y: y},
		component.Monster{},
		component.Name{Name: name},
		component.BlocksTile{},
		component.NewViewshed(8),
		component.CombatStats{MaxHP: hp, HP: hp, Defense: def, Power: pow},
	)
}

func (tw *testWorld) addItem(name string, comps ...ecs.Component) ecs.Entity {
	base := []ecs.Component{component.Name{Name: name}, component.Item{}}
	return tw.w.Spawn(append(base, comps...)...)
}

func (tw *testWorld) index() { IndexMap(tw.w, tw.m) }

func hp(w *ecs.World, e ecs.Entity) int {
	cs, _ := ecs.Get[component.CombatStats](w, e)
	return cs.HP
}

func posOf(w *ecs.World, e ecs.Entity) gamemap.Point {
	p, _ := ecs.Get[component.Position](w, e)
	return gamemap.Point{X: p.X, Y: p.Y}
}

// relations counts how many of Position, InBackpack and Equipped item has.
func relations(w *ecs.World, item ecs.Entity) int {
	n := 0
	for _, ct := range []ecs.ComponentType{component.CPosition, component.CInBackpack, component.CEquipped} {
		if w.Has(item, ct) {
			n++
		}
	}
	return n
}
