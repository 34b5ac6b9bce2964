package system

import (
	"github.com/sirupsen/logrus"

	"dungeoncrawl/internal/component"
	"dungeoncrawl/internal/ecs"
	"dungeoncrawl/internal/gamelog"
	"dungeoncrawl/internal/intent"
	"dungeoncrawl/internal/logger"
)

// MeleeDamage is max(0, attacker power + worn power bonuses - target
// defense - worn defense bonuses).
func MeleeDamage(w *ecs.World, attacker, target ecs.Entity) int {
	a, _ := ecs.Get[component.CombatStats](w, attacker)
	t, _ := ecs.Get[component.CombatStats](w, target)
	offense := a.Power + PowerBonus(w, attacker)
	defense := t.Defense + DefenseBonus(w, target)
	return max(0, offense-defense)
}

// ResolveMelee drains the queued attacks. A living attacker with a name
// strikes a living target; damage is queued, not applied.
func ResolveMelee(w *ecs.World, q *intent.Queue, log *gamelog.Log) {
	l := logger.For("melee")
	for _, a := range q.DrainAttacks() {
		stats, ok := ecs.Get[component.CombatStats](w, a.Attacker)
		if !ok || !w.Has(a.Attacker, component.CName) || stats.HP <= 0 {
			continue
		}
		target, err := ecs.MustGet[component.CombatStats](w, a.Target)
		if err != nil {
			l.WithError(err).WithFields(logrus.Fields{
				"attacker": a.Attacker.String(), "target": a.Target.String(),
			}).Warn("attack skipped")
			continue
		}
		if target.HP <= 0 {
			continue
		}

		dmg := MeleeDamage(w, a.Attacker, a.Target)
		attacker, victim := nameOf(w, a.Attacker), nameOf(w, a.Target)
		if dmg == 0 {
			log.Addf("%s is unable to hurt %s.", attacker, victim)
			continue
		}
		log.Addf("%s hits %s, for %d hp.", attacker, victim, dmg)
		AddDamage(w, a.Target, dmg)
		l.WithFields(logrus.Fields{"attacker": attacker, "target": victim, "damage": dmg}).Debug("hit")
	}
}

// AddDamage queues amount against victim. Entities without CombatStats
// cannot be hurt and are ignored.
func AddDamage(w *ecs.World, victim ecs.Entity, amount int) {
	if !w.Has(victim, component.CCombatStats) {
		return
	}
	td, _ := ecs.Get[component.TakeDamage](w, victim)
	td.Amounts = append(td.Amounts, amount)
	w.Add(victim, td)
}

// ApplyDamage subtracts the sum of each entity's pending damage from its HP
// and clears the queue.
func ApplyDamage(w *ecs.World) {
	for _, id := range w.Query(component.CTakeDamage, component.CCombatStats) {
		td, _ := ecs.Get[component.TakeDamage](w, id)
		cs, _ := ecs.Get[component.CombatStats](w, id)
		cs.HP -= td.Total()
		w.Add(id, cs)
		w.Remove(id, component.CTakeDamage)
	}
}

// DeathReport summarises one death sweep.
type DeathReport struct {
	PlayerDied bool
	Killed     []string
}

// DeleteTheDead despawns every non-player entity at or below zero HP. Items
// the dead were carrying fall to the floor where they died. The player is
// never despawned; PlayerDied reports it instead.
func DeleteTheDead(w *ecs.World, log *gamelog.Log) DeathReport {
	var report DeathReport
	l := logger.For("death")
	for _, id := range w.Query(component.CCombatStats) {
		cs, _ := ecs.Get[component.CombatStats](w, id)
		if cs.HP > 0 {
			continue
		}
		if w.Has(id, component.CPlayer) {
			report.PlayerDied = true
			continue
		}
		name := nameOf(w, id)
		if pos, ok := ecs.Get[component.Position](w, id); ok {
			for _, item := range Carried(w, id) {
				place(w, item, pos)
			}
		}
		if err := w.Despawn(id); err != nil {
			l.WithError(err).Warn("despawn failed")
			continue
		}
		log.Addf("%s dies.", name)
		report.Killed = append(report.Killed, name)
		l.WithField("name", name).Debug("entity died")
	}
	return report
}
