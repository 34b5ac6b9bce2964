package factory

import (
	"dungeoncrawl/internal/component"
	"dungeoncrawl/internal/config"
	"dungeoncrawl/internal/ecs"
	"dungeoncrawl/internal/generate"

	"github.com/gdamore/tcell/v2"
)

// PlayerName is the hero's name in log messages.
const PlayerName = "Player"

// NewPlayer creates the player entity at (x, y). The player does not carry
// BlocksTile, so monsters can always path onto its tile and attack instead.
func NewPlayer(w *ecs.World, x, y int, stats config.Player) ecs.Entity {
	return w.Spawn(
		component.Position{X: x, Y: y},
		component.Renderable{
			Glyph:  "@",
			FG:     tcell.ColorYellow,
			BG:     tcell.ColorDefault,
			Render: true,
			Order:  component.OrderPlayer,
		},
		component.Player{},
		component.NewViewshed(stats.Sight),
		component.Name{Name: PlayerName},
		component.CombatStats{
			MaxHP:     stats.MaxHP,
			HP:        stats.MaxHP,
			Defense:   stats.Defense,
			Power:     stats.Power,
			RegenRate: stats.RegenRate,
		},
		component.Serializable{},
	)
}

// NewMonster creates a monster entity from a spawn entry. sightOverride
// replaces the entry's sight range when positive.
func NewMonster(w *ecs.World, entry generate.MonsterSpawnEntry, x, y, sightOverride int) ecs.Entity {
	sight := entry.SightRange
	if sightOverride > 0 {
		sight = sightOverride
	}
	return w.Spawn(
		component.Position{X: x, Y: y},
		component.Renderable{
			Glyph:  entry.Glyph,
			FG:     tcell.ColorRed,
			BG:     tcell.ColorDefault,
			Render: true,
			Order:  component.OrderNPC,
		},
		component.NewViewshed(sight),
		component.Monster{},
		component.Name{Name: entry.Name},
		component.BlocksTile{},
		component.CombatStats{
			MaxHP:   entry.MaxHP,
			HP:      entry.MaxHP,
			Defense: entry.Defense,
			Power:   entry.Power,
		},
		component.Serializable{},
	)
}

// NewItem creates an item lying on the floor at (x, y).
func NewItem(w *ecs.World, entry generate.ItemSpawnEntry, x, y int) ecs.Entity {
	id := newItem(w, entry)
	w.Add(id, component.Position{X: x, Y: y})
	return id
}

// NewItemInBackpack creates an item already carried by owner.
func NewItemInBackpack(w *ecs.World, entry generate.ItemSpawnEntry, owner ecs.Entity) ecs.Entity {
	id := newItem(w, entry)
	w.Add(id, component.InBackpack{Owner: owner})
	return id
}

func newItem(w *ecs.World, entry generate.ItemSpawnEntry) ecs.Entity {
	fg := tcell.ColorFuchsia
	if entry.Slot != generate.EquipNone {
		fg = tcell.ColorAqua
	}
	id := w.Spawn(
		component.Renderable{
			Glyph:  entry.Glyph,
			FG:     fg,
			BG:     tcell.ColorDefault,
			Render: true,
			Order:  component.OrderItems,
		},
		component.Name{Name: entry.Name},
		component.Item{},
		component.Serializable{},
	)
	if entry.Consumable {
		w.Add(id, component.Consumable{})
	}
	if entry.Heal > 0 {
		w.Add(id, component.ProvidesHealing{Amount: entry.Heal})
	}
	if entry.Damage > 0 {
		w.Add(id, component.DealsDamage{Amount: entry.Damage})
	}
	if entry.Radius > 0 {
		w.Add(id, component.AreaOfEffect{Radius: entry.Radius})
	}
	if entry.ConfuseTurns > 0 {
		w.Add(id, component.Confusion{Turns: entry.ConfuseTurns})
	}
	if entry.Range > 0 {
		w.Add(id, component.Ranged{Range: entry.Range})
	}
	switch entry.Slot {
	case generate.EquipRightHand:
		w.Add(id, component.Equippable{Slot: component.RightHand})
	case generate.EquipLeftHand:
		w.Add(id, component.Equippable{Slot: component.LeftHand})
	}
	if entry.PowerBonus != 0 {
		w.Add(id, component.MeleePowerBonus{Power: entry.PowerBonus})
	}
	if entry.DefenseBonus != 0 {
		w.Add(id, component.MeleeDefenseBonus{Defense: entry.DefenseBonus})
	}
	return id
}

// SpawnAll creates every entity in a populate result and returns how many
// were spawned.
func SpawnAll(w *ecs.World, res generate.PopulateResult, monsterSight int) int {
	for _, s := range res.Monsters {
		NewMonster(w, s.Entry, s.X, s.Y, monsterSight)
	}
	for _, s := range res.Items {
		NewItem(w, s.Entry, s.X, s.Y)
	}
	return len(res.Monsters) + len(res.Items)
}
