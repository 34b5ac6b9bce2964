package system

import (
	"testing"

	"github.com/pkg/errors"

	"dungeoncrawl/internal/component"
	"dungeoncrawl/internal/ecs"
	"dungeoncrawl/internal/gamemap"
	"dungeoncrawl/internal/intent"
)

func TestUseHealthPotion(t *testing.T) {
	tw := newTestWorld(5, 5)
	tw.w.Add(tw.player, component.CombatStats{MaxHP: 10, HP: 5, Defense: 2, Power: 5})
	potion := tw.addItem("Health Potion",
		component.InBackpack{Owner: tw.player},
		component.Consumable{},
		component.ProvidesHealing{Amount: 8})

	tw.q.PushUse(intent.UseItem{User: tw.player, Item: potion})
	ResolveItemUse(tw.w, tw.m, tw.q, tw.log, tw.player)

	if got := hp(tw.w, tw.player); got != 10 {
		t.Errorf("hp = %d; want 10 (clamped)", got)
	}
	if tw.w.Alive(potion) {
		t.Error("consumed potion should be despawned")
	}
	if got, want := tw.log.Last(), "You use the Health Potion, healing 8 hp."; got != want {
		t.Errorf("log = %q; want %q", got, want)
	}
}

func TestFireballHitsAreaOfEffect(t *testing.T) {
	tw := newTestWorld(3, 3)
	a := tw.addMonster("Orc", 10, 10, 30, 0, 4)
	b := tw.addMonster("Goblin", 12, 10, 30, 0, 2)
	far := tw.addMonster("Troll", 10, 14, 30, 0, 7)
	scroll := tw.addItem("Fireball Scroll",
		component.InBackpack{Owner: tw.player},
		component.Consumable{},
		component.DealsDamage{Amount: 20},
		component.AreaOfEffect{Radius: 3},
		component.Ranged{Range: 6})
	tw.index()

	target := gamemap.Point{X: 10, Y: 10}
	tw.q.PushUse(intent.UseItem{User: tw.player, Item: scroll, Target: &target})
	ResolveItemUse(tw.w, tw.m, tw.q, tw.log, tw.player)
	ApplyDamage(tw.w)

	if hp(tw.w, a) != 10 || hp(tw.w, b) != 10 {
		t.Errorf("hp in blast = %d, %d; want 10, 10", hp(tw.w, a), hp(tw.w, b))
	}
	if got := hp(tw.w, far); got != 30 {
		t.Errorf("troll outside the radius took damage, hp %d", got)
	}
	if got := hp(tw.w, tw.player); got != 30 {
		t.Errorf("player outside the blast took damage, hp %d", got)
	}
	if tw.w.Alive(scroll) {
		t.Error("scroll should be consumed")
	}
}

func TestConfusionScroll(t *testing.T) {
	tw := newTestWorld(3, 3)
	orc := tw.addMonster("Orc", 8, 8, 8, 1, 4)
	scroll := tw.addItem("Confusion Scroll",
		component.InBackpack{Owner: tw.player},
		component.Consumable{},
		component.Confusion{Turns: 4},
		component.Ranged{Range: 6})
	tw.index()

	target := gamemap.Point{X: 8, Y: 8}
	tw.q.PushUse(intent.UseItem{User: tw.player, Item: scroll, Target: &target})
	ResolveItemUse(tw.w, tw.m, tw.q, tw.log, tw.player)

	conf, ok := ecs.Get[component.Confusion](tw.w, orc)
	if !ok || conf.Turns != 4 {
		t.Errorf("orc confusion = %+v, %v; want 4 turns", conf, ok)
	}
}

func TestEquipSwapsSameSlot(t *testing.T) {
	tw := newTestWorld(5, 5)
	dagger := tw.addItem("Dagger",
		component.Equippable{Slot: component.RightHand},
		component.Equipped{Owner: tw.player, Slot: component.RightHand},
		component.MeleePowerBonus{Power: 2})
	shield := tw.addItem("Shield",
		component.Equippable{Slot: component.LeftHand},
		component.Equipped{Owner: tw.player, Slot: component.LeftHand},
		component.MeleeDefenseBonus{Defense: 1})
	sword := tw.addItem("Longsword",
		component.InBackpack{Owner: tw.player},
		component.Equippable{Slot: component.RightHand},
		component.MeleePowerBonus{Power: 4})

	tw.q.PushUse(intent.UseItem{User: tw.player, Item: sword})
	ResolveItemUse(tw.w, tw.m, tw.q, tw.log, tw.player)

	if eq, ok := ecs.Get[component.Equipped](tw.w, sword); !ok || eq.Owner != tw.player || eq.Slot != component.RightHand {
		t.Errorf("sword equipped = %+v, %v", eq, ok)
	}
	if bp, ok := ecs.Get[component.InBackpack](tw.w, dagger); !ok || bp.Owner != tw.player {
		t.Error("dagger should go back into the backpack")
	}
	if !tw.w.Has(shield, component.CEquipped) {
		t.Error("item in the other slot must stay equipped")
	}
	for _, item := range []ecs.Entity{dagger, shield, sword} {
		if n := relations(tw.w, item); n != 1 {
			t.Errorf("item %s has %d location relations; want 1", item, n)
		}
	}
	if got := PowerBonus(tw.w, tw.player); got != 4 {
		t.Errorf("power bonus = %d; want 4", got)
	}
}

func TestUseOnEmptyTileKeepsItem(t *testing.T) {
	tw := newTestWorld(3, 3)
	scroll := tw.addItem("Magic Missile Scroll",
		component.InBackpack{Owner: tw.player},
		component.Consumable{},
		component.DealsDamage{Amount: 8},
		component.Ranged{Range: 6})
	tw.index()

	target := gamemap.Point{X: 7, Y: 7}
	tw.q.PushUse(intent.UseItem{User: tw.player, Item: scroll, Target: &target})
	ResolveItemUse(tw.w, tw.m, tw.q, tw.log, tw.player)

	if !tw.w.Alive(scroll) {
		t.Error("a scroll that hit nothing should not be consumed")
	}
	if got, want := tw.log.Last(), "There is nothing there to use it on."; got != want {
		t.Errorf("log = %q; want %q", got, want)
	}
}

func TestItemTargetsOutOfBounds(t *testing.T) {
	tw := newTestWorld(3, 3)
	scroll := tw.addItem("Magic Missile Scroll", component.DealsDamage{Amount: 8})
	target := gamemap.Point{X: -1, Y: 40}

	_, err := ItemTargets(tw.w, tw.m, intent.UseItem{User: tw.player, Item: scroll, Target: &target})
	if !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("err = %v; want ErrInvalidTarget", err)
	}
}

func TestItemTargetsSelf(t *testing.T) {
	tw := newTestWorld(3, 3)
	potion := tw.addItem("Health Potion", component.ProvidesHealing{Amount: 8})
	targets, err := ItemTargets(tw.w, tw.m, intent.UseItem{User: tw.player, Item: potion})
	if err != nil || len(targets) != 1 || targets[0] != tw.player {
		t.Errorf("targets = %v, %v; want the player", targets, err)
	}
}
