package system

import (
	"testing"

	"dungeoncrawl/internal/component"
	"dungeoncrawl/internal/ecs"
	"dungeoncrawl/internal/gamemap"
)

func TestTryMoveOpenFloor(t *testing.T) {
	tw := newTestWorld(5, 5)
	UpdateVisibility(tw.w, tw.m)
	tw.index()

	res, _ := TryMove(tw.w, tw.m, tw.q, tw.player, 1, 1)
	if res != MoveOK {
		t.Fatalf("result = %v; want MoveOK", res)
	}
	if p := posOf(tw.w, tw.player); p.X != 6 || p.Y != 6 {
		t.Errorf("player at %v; want (6,6)", p)
	}
	vs, _ := ecs.Get[component.Viewshed](tw.w, tw.player)
	if !vs.Dirty {
		t.Error("moving must dirty the viewshed")
	}
}

func TestTryMoveIntoWall(t *testing.T) {
	tw := newTestWorld(1, 1)
	tw.index()

	res, _ := TryMove(tw.w, tw.m, tw.q, tw.player, -1, 0)
	if res != MoveBlocked {
		t.Fatalf("result = %v; want MoveBlocked", res)
	}
	if p := posOf(tw.w, tw.player); p.X != 1 || p.Y != 1 {
		t.Errorf("player moved to %v", p)
	}
}

func TestTryMoveBumpAttacks(t *testing.T) {
	tw := newTestWorld(5, 5)
	orc := tw.addMonster("Orc", 6, 5, 8, 1, 4)
	tw.index()

	res, target := TryMove(tw.w, tw.m, tw.q, tw.player, 1, 0)
	if res != MoveAttack || target != orc {
		t.Fatalf("result = %v, %v; want MoveAttack on orc", res, target)
	}
	attacks := tw.q.DrainAttacks()
	if len(attacks) != 1 || attacks[0].Target != orc {
		t.Errorf("attacks = %v", attacks)
	}
	if p := posOf(tw.w, tw.player); p.X != 5 || p.Y != 5 {
		t.Error("attacking must not move the player")
	}
}

func TestSkipTurnRegenerates(t *testing.T) {
	tw := newTestWorld(5, 5)
	tw.w.Add(tw.player, component.CombatStats{MaxHP: 30, HP: 29, RegenRate: 3})

	SkipTurn(tw.w, tw.player)
	if got := hp(tw.w, tw.player); got != 30 {
		t.Errorf("hp = %d; want 30 (clamped)", got)
	}
}

func TestOnTile(t *testing.T) {
	tw := newTestWorld(5, 5)
	tw.m.SetTile(5, 5, gamemap.StairsDown)

	if !OnTile(tw.w, tw.m, tw.player, gamemap.StairsDown) {
		t.Error("player should be on the stairs")
	}
	if OnTile(tw.w, tw.m, tw.player, gamemap.Floor) {
		t.Error("player is not on plain floor")
	}
}
