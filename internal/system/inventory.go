package system

import (
	"slices"

	"github.com/sirupsen/logrus"

	"dungeoncrawl/internal/component"
	"dungeoncrawl/internal/ecs"
	"dungeoncrawl/internal/gamelog"
	"dungeoncrawl/internal/intent"
	"dungeoncrawl/internal/logger"
)

// An item holds at most one of Position, InBackpack or Equipped. The three
// helpers below are the only places that move an item between them.

// stow puts item in owner's backpack.
func stow(w *ecs.World, item, owner ecs.Entity) {
	w.Remove(item, component.CPosition)
	w.Remove(item, component.CEquipped)
	w.Add(item, component.InBackpack{Owner: owner})
}

// place puts item on the floor at pos.
func place(w *ecs.World, item ecs.Entity, pos component.Position) {
	w.Remove(item, component.CInBackpack)
	w.Remove(item, component.CEquipped)
	w.Add(item, pos)
}

// wear equips item on owner in slot.
func wear(w *ecs.World, item, owner ecs.Entity, slot component.EquipmentSlot) {
	w.Remove(item, component.CPosition)
	w.Remove(item, component.CInBackpack)
	w.Add(item, component.Equipped{Owner: owner, Slot: slot})
}

// ItemsOwnedBy lists the items in owner's backpack in spawn-slot order.
func ItemsOwnedBy(w *ecs.World, owner ecs.Entity) []ecs.Entity {
	var out []ecs.Entity
	for _, id := range w.Query(component.CInBackpack) {
		if bp, _ := ecs.Get[component.InBackpack](w, id); bp.Owner == owner {
			out = append(out, id)
		}
	}
	return out
}

// EquippedBy lists the items worn by owner.
func EquippedBy(w *ecs.World, owner ecs.Entity) []ecs.Entity {
	var out []ecs.Entity
	for _, id := range w.Query(component.CEquipped) {
		if eq, _ := ecs.Get[component.Equipped](w, id); eq.Owner == owner {
			out = append(out, id)
		}
	}
	return out
}

// Carried is every item owned by owner, backpack first, then worn items.
func Carried(w *ecs.World, owner ecs.Entity) []ecs.Entity {
	return slices.Concat(ItemsOwnedBy(w, owner), EquippedBy(w, owner))
}

// PowerBonus sums MeleePowerBonus over the items e wears.
func PowerBonus(w *ecs.World, e ecs.Entity) int {
	total := 0
	for _, item := range EquippedBy(w, e) {
		if b, ok := ecs.Get[component.MeleePowerBonus](w, item); ok {
			total += b.Power
		}
	}
	return total
}

// DefenseBonus sums MeleeDefenseBonus over the items e wears.
func DefenseBonus(w *ecs.World, e ecs.Entity) int {
	total := 0
	for _, item := range EquippedBy(w, e) {
		if b, ok := ecs.Get[component.MeleeDefenseBonus](w, item); ok {
			total += b.Defense
		}
	}
	return total
}

// RequestPickup queues a pickup of the first item lying on the player's tile.
// It reports false, and tells the player, when there is nothing there.
func RequestPickup(w *ecs.World, q *intent.Queue, log *gamelog.Log, player ecs.Entity) bool {
	ppos, ok := ecs.Get[component.Position](w, player)
	if !ok {
		return false
	}
	for _, id := range w.Query(component.CItem, component.CPosition) {
		if pos, _ := ecs.Get[component.Position](w, id); pos == ppos {
			q.PushPickup(intent.Pickup{Collector: player, Item: id})
			return true
		}
	}
	log.Add("There is nothing to pick up here.")
	return false
}

// ResolvePickups moves each requested floor item into its collector's pack.
func ResolvePickups(w *ecs.World, q *intent.Queue, log *gamelog.Log, player ecs.Entity) {
	l := logger.For("inventory")
	for _, p := range q.DrainPickups() {
		if !w.Alive(p.Collector) || !w.Alive(p.Item) || !w.Has(p.Item, component.CPosition) {
			l.WithFields(logrus.Fields{"collector": p.Collector.String(), "item": p.Item.String()}).
				Warn("pickup skipped: item gone or not on the floor")
			continue
		}
		stow(w, p.Item, p.Collector)
		if p.Collector == player {
			log.Addf("You pick up the %s.", nameOf(w, p.Item))
		}
	}
}

// ResolveDrops puts each requested item down at its dropper's feet.
func ResolveDrops(w *ecs.World, q *intent.Queue, log *gamelog.Log, player ecs.Entity) {
	l := logger.For("inventory")
	for _, d := range q.DrainDrops() {
		pos, ok := ecs.Get[component.Position](w, d.Dropper)
		if !ok || !ownedBy(w, d.Item, d.Dropper) {
			l.WithFields(logrus.Fields{"dropper": d.Dropper.String(), "item": d.Item.String()}).
				Warn("drop skipped: dropper has no position or does not carry the item")
			continue
		}
		place(w, d.Item, pos)
		if d.Dropper == player {
			log.Addf("You drop the %s.", nameOf(w, d.Item))
		}
	}
}

// ResolveUnequips moves each requested worn item back into the owner's pack.
func ResolveUnequips(w *ecs.World, q *intent.Queue, log *gamelog.Log, player ecs.Entity) {
	l := logger.For("inventory")
	for _, u := range q.DrainUnequips() {
		eq, ok := ecs.Get[component.Equipped](w, u.Item)
		if !ok || eq.Owner != u.Owner {
			l.WithFields(logrus.Fields{"owner": u.Owner.String(), "item": u.Item.String()}).
				Warn("unequip skipped: item is not worn by owner")
			continue
		}
		stow(w, u.Item, eq.Owner)
		if eq.Owner == player {
			log.Addf("You unequip the %s.", nameOf(w, u.Item))
		}
	}
}

func ownedBy(w *ecs.World, item, owner ecs.Entity) bool {
	if bp, ok := ecs.Get[component.InBackpack](w, item); ok && bp.Owner == owner {
		return true
	}
	if eq, ok := ecs.Get[component.Equipped](w, item); ok && eq.Owner == owner {
		return true
	}
	return false
}

// nameOf returns the entity's display name, or "something".
func nameOf(w *ecs.World, e ecs.Entity) string {
	if n, ok := ecs.Get[component.Name](w, e); ok {
		return n.Name
	}
	return "something"
}
