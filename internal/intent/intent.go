// Package intent holds the per-turn command queue. Producers (player input,
// monster AI) push typed commands; each resolving system drains its own kind
// exactly once per tick.
package intent

import (
	"dungeoncrawl/internal/ecs"
	"dungeoncrawl/internal/gamemap"
)

// Attack asks for a melee strike on Target.
type Attack struct {
	Attacker ecs.Entity
	Target   ecs.Entity
}

// UseItem activates Item. A nil Target means the user targets itself.
type UseItem struct {
	User   ecs.Entity
	Item   ecs.Entity
	Target *gamemap.Point
}

// Pickup moves Item from the floor into Collector's backpack.
type Pickup struct {
	Collector ecs.Entity
	Item      ecs.Entity
}

// Drop puts Item down at Dropper's feet.
type Drop struct {
	Dropper ecs.Entity
	Item    ecs.Entity
}

// Unequip moves a worn Item back into Owner's backpack.
type Unequip struct {
	Owner ecs.Entity
	Item  ecs.Entity
}

// Queue collects the commands issued during one turn.
type Queue struct {
	attacks  []Attack
	uses     []UseItem
	pickups  []Pickup
	drops    []Drop
	unequips []Unequip
}

// New returns an empty queue.
func New() *Queue { return &Queue{} }

func (q *Queue) PushAttack(a Attack)   { q.attacks = append(q.attacks, a) }
func (q *Queue) PushUse(u UseItem)     { q.uses = append(q.uses, u) }
func (q *Queue) PushPickup(p Pickup)   { q.pickups = append(q.pickups, p) }
func (q *Queue) PushDrop(d Drop)       { q.drops = append(q.drops, d) }
func (q *Queue) PushUnequip(u Unequip) { q.unequips = append(q.unequips, u) }

// DrainAttacks returns the queued attacks in push order and empties the list.
func (q *Queue) DrainAttacks() []Attack {
	out := q.attacks
	q.attacks = nil
	return out
}

func (q *Queue) DrainUses() []UseItem {
	out := q.uses
	q.uses = nil
	return out
}

func (q *Queue) DrainPickups() []Pickup {
	out := q.pickups
	q.pickups = nil
	return out
}

func (q *Queue) DrainDrops() []Drop {
	out := q.drops
	q.drops = nil
	return out
}

func (q *Queue) DrainUnequips() []Unequip {
	out := q.unequips
	q.unequips = nil
	return out
}

// Len is the total number of pending commands.
func (q *Queue) Len() int {
	return len(q.attacks) + len(q.uses) + len(q.pickups) + len(q.drops) + len(q.unequips)
}

// Reset discards every pending command.
func (q *Queue) Reset() { *q = Queue{} }
