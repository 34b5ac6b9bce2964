package system

import (
	"slices"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"dungeoncrawl/internal/component"
	"dungeoncrawl/internal/ecs"
	"dungeoncrawl/internal/gamelog"
	"dungeoncrawl/internal/gamemap"
	"dungeoncrawl/internal/intent"
	"dungeoncrawl/internal/logger"
)

// ErrInvalidTarget is returned when an item use resolves to no creature.
var ErrInvalidTarget = errors.New("no valid target")

// ItemTargets resolves who a use affects. Without a target point the user
// is the only target. With one, the occupants of that tile are; an
// AreaOfEffect item instead hits everything the blast can see within its
// radius of the point, excluding the map's outer ring. Only entities with
// CombatStats count.
func ItemTargets(w *ecs.World, m *gamemap.Map, u intent.UseItem) ([]ecs.Entity, error) {
	if u.Target == nil {
		if !w.Has(u.User, component.CCombatStats) {
			return nil, errors.Wrapf(ErrInvalidTarget, "user %s cannot be affected", u.User)
		}
		return []ecs.Entity{u.User}, nil
	}

	t := *u.Target
	if !m.InBounds(t.X, t.Y) {
		return nil, errors.Wrapf(ErrInvalidTarget, "target (%d,%d): %v", t.X, t.Y, gamemap.ErrOutOfBounds)
	}

	var tiles []gamemap.Point
	if aoe, ok := ecs.Get[component.AreaOfEffect](w, u.Item); ok {
		FieldOfView(m, t, aoe.Radius).Each(func(p gamemap.Point) {
			if p.X > 0 && p.X < m.Width-1 && p.Y > 0 && p.Y < m.Height-1 {
				tiles = append(tiles, p)
			}
		})
		slices.SortFunc(tiles, func(a, b gamemap.Point) int { return m.Idx(a.X, a.Y) - m.Idx(b.X, b.Y) })
	} else {
		tiles = []gamemap.Point{t}
	}

	var targets []ecs.Entity
	for _, p := range tiles {
		for _, e := range m.ContentAt(p.X, p.Y) {
			if w.Has(e, component.CCombatStats) {
				targets = append(targets, e)
			}
		}
	}
	if len(targets) == 0 {
		return nil, errors.Wrapf(ErrInvalidTarget, "nothing at (%d,%d)", t.X, t.Y)
	}
	return targets, nil
}

// ResolveItemUse drains the queued item uses and applies each item's
// effects to its targets. Consumables that affected anyone are destroyed;
// equippables are worn by the first target.
func ResolveItemUse(w *ecs.World, m *gamemap.Map, q *intent.Queue, log *gamelog.Log, player ecs.Entity) {
	l := logger.For("itemuse")
	for _, u := range q.DrainUses() {
		fields := logrus.Fields{"user": u.User.String(), "item": u.Item.String()}
		if !w.Alive(u.User) || !w.Alive(u.Item) {
			l.WithFields(fields).WithError(ecs.ErrStaleEntity).Warn("item use skipped")
			continue
		}
		targets, err := ItemTargets(w, m, u)
		if err != nil {
			l.WithFields(fields).WithError(err).Warn("item use skipped")
			if u.User == player {
				log.Add("There is nothing there to use it on.")
			}
			continue
		}
		useItem(w, u, targets, log, player)
	}
}

func useItem(w *ecs.World, u intent.UseItem, targets []ecs.Entity, log *gamelog.Log, player ecs.Entity) {
	byPlayer := u.User == player
	itemName := nameOf(w, u.Item)
	used := false

	if eq, ok := ecs.Get[component.Equippable](w, u.Item); ok {
		owner := targets[0]
		for _, worn := range EquippedBy(w, owner) {
			if e, _ := ecs.Get[component.Equipped](w, worn); e.Slot == eq.Slot {
				stow(w, worn, owner)
				if owner == player {
					log.Addf("You unequip the %s.", nameOf(w, worn))
				}
			}
		}
		wear(w, u.Item, owner, eq.Slot)
		if owner == player {
			log.Addf("You equip the %s.", itemName)
		}
	}

	if heal, ok := ecs.Get[component.ProvidesHealing](w, u.Item); ok {
		for _, t := range targets {
			cs, _ := ecs.Get[component.CombatStats](w, t)
			cs.Heal(heal.Amount)
			w.Add(t, cs)
			used = true
			if byPlayer {
				log.Addf("You use the %s, healing %d hp.", itemName, heal.Amount)
			}
		}
	}

	if dmg, ok := ecs.Get[component.DealsDamage](w, u.Item); ok {
		for _, t := range targets {
			AddDamage(w, t, dmg.Amount)
			used = true
			if byPlayer {
				log.Addf("You use the %s on %s, inflicting %d hp.", itemName, nameOf(w, t), dmg.Amount)
			}
		}
	}

	if conf, ok := ecs.Get[component.Confusion](w, u.Item); ok {
		for _, t := range targets {
			w.Add(t, component.Confusion{Turns: conf.Turns})
			used = true
			if byPlayer {
				log.Addf("You use the %s on %s, confusing them.", itemName, nameOf(w, t))
			}
		}
	}

	if used && w.Has(u.Item, component.CConsumable) {
		_ = w.Despawn(u.Item)
	}
}
