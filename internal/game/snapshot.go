package game

import (
	"slices"

	"github.com/gdamore/tcell/v2"

	"dungeoncrawl/internal/component"
	"dungeoncrawl/internal/ecs"
	"dungeoncrawl/internal/gamemap"
	"dungeoncrawl/internal/system"
)

// LogLines is how many game log entries a snapshot carries.
const LogLines = 5

// Drawable is one entity glyph to draw.
type Drawable struct {
	X, Y   int
	Glyph  string
	FG, BG tcell.Color
	Order  component.RenderOrder
}

// InventoryEntry is one line of the inventory menu.
type InventoryEntry struct {
	Item     ecs.Entity
	Name     string
	Equipped bool
	Slot     component.EquipmentSlot
}

// Snapshot is a read-only copy of everything a renderer needs. It shares no
// memory with the game.
type Snapshot struct {
	State        RunState
	Width        int
	Height       int
	Depth        int
	Tiles        []gamemap.TileType
	Visible      []bool
	Revealed     []bool
	Drawables    []Drawable
	Markers      []system.Marker
	PlayerPos    gamemap.Point
	Player       component.CombatStats
	PowerBonus   int
	DefenseBonus int
	Log          []string
	Inventory    []InventoryEntry
	Targets      []gamemap.Point
	Turns        int
}

// Snapshot captures the current frame. Drawables are the rendered entities
// on visible tiles, plus AlwaysVisible ones on revealed tiles, in draw order.
func (g *Game) Snapshot() Snapshot {
	m := g.gmap
	s := Snapshot{
		State:        g.state,
		Width:        m.Width,
		Height:       m.Height,
		Depth:        m.Depth,
		Tiles:        slices.Clone(m.Tiles),
		Visible:      slices.Clone(m.Visible),
		Revealed:     slices.Clone(m.Revealed),
		Markers:      slices.Clone(g.markers),
		PowerBonus:   system.PowerBonus(g.world, g.player),
		DefenseBonus: system.DefenseBonus(g.world, g.player),
		Log:          g.log.Tail(LogLines),
		Turns:        g.runLog.Turns,
	}
	s.Player, _ = ecs.Get[component.CombatStats](g.world, g.player)
	if pos, ok := ecs.Get[component.Position](g.world, g.player); ok {
		s.PlayerPos = gamemap.Point{X: pos.X, Y: pos.Y}
	}

	for _, id := range g.world.Query(component.CPosition, component.CRenderable) {
		r, _ := ecs.Get[component.Renderable](g.world, id)
		pos, _ := ecs.Get[component.Position](g.world, id)
		if !r.Render || !m.InBounds(pos.X, pos.Y) {
			continue
		}
		idx := m.Idx(pos.X, pos.Y)
		if !m.Visible[idx] && !(r.AlwaysVisible && m.Revealed[idx]) {
			continue
		}
		s.Drawables = append(s.Drawables, Drawable{X: pos.X, Y: pos.Y, Glyph: r.Glyph, FG: r.FG, BG: r.BG, Order: r.Order})
	}
	slices.SortStableFunc(s.Drawables, func(a, b Drawable) int { return int(a.Order) - int(b.Order) })

	switch g.state.Kind {
	case ShowInventory, ShowItemActions, ShowTargeting:
		for _, item := range g.Inventory() {
			e := InventoryEntry{Item: item, Name: g.name(item)}
			if eq, ok := ecs.Get[component.Equipped](g.world, item); ok {
				e.Equipped, e.Slot = true, eq.Slot
			}
			s.Inventory = append(s.Inventory, e)
		}
	}
	if g.state.Kind == ShowTargeting {
		s.Targets = g.Targets(g.state.Range)
	}
	return s
}
