package term

import (
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"

	"dungeoncrawl/internal/config"
	"dungeoncrawl/internal/game"
	"dungeoncrawl/internal/gamemap"
)

func runeKey(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func namedKey(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, tcell.ModNone) }

func TestKeyToAction(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want game.Action
	}{
		{"arrow up", namedKey(tcell.KeyUp), game.ActionMoveN},
		{"arrow left", namedKey(tcell.KeyLeft), game.ActionMoveW},
		{"vi south", runeKey('j'), game.ActionMoveS},
		{"vi north-east", runeKey('u'), game.ActionMoveNE},
		{"numpad south-west", runeKey('1'), game.ActionMoveSW},
		{"wait", runeKey('.'), game.ActionSkipTurn},
		{"pickup", runeKey('g'), game.ActionPickup},
		{"inventory", runeKey('i'), game.ActionInventory},
		{"drop", runeKey('d'), game.ActionDropMenu},
		{"descend", runeKey('>'), game.ActionDescend},
		{"escape", namedKey(tcell.KeyEscape), game.ActionCancel},
		{"unbound", runeKey('z'), game.ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keyToAction(tt.ev); got != tt.want {
				t.Errorf("keyToAction = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestDecodeDependsOnState(t *testing.T) {
	d := NewDecoder(nil)

	in := d.Decode(namedKey(tcell.KeyUp), game.RunState{Kind: game.MainMenu})
	if in == nil || in.Action != game.ActionNavigateUp {
		t.Errorf("menu up = %+v; want NavigateUp", in)
	}
	in = d.Decode(namedKey(tcell.KeyUp), game.RunState{Kind: game.AwaitingInput})
	if in == nil || in.Action != game.ActionMoveN {
		t.Errorf("map up = %+v; want MoveN", in)
	}
	in = d.Decode(runeKey('c'), game.RunState{Kind: game.ShowInventory})
	if in == nil || in.Action != game.ActionConfirm || in.Index != 2 {
		t.Errorf("inventory c = %+v; want Confirm index 2", in)
	}
	in = d.Decode(runeKey('r'), game.RunState{Kind: game.ShowItemActions})
	if in == nil || in.Action != game.ActionUnequip {
		t.Errorf("item action r = %+v; want Unequip", in)
	}
	in = d.Decode(runeKey('x'), game.RunState{Kind: game.GameOver})
	if in == nil || in.Action != game.ActionAcknowledge {
		t.Errorf("game over key = %+v; want Acknowledge", in)
	}
	if in := d.Decode(runeKey('z'), game.RunState{Kind: game.AwaitingInput}); in != nil {
		t.Errorf("unbound key = %+v; want nil", in)
	}
}

func TestTargetingCursor(t *testing.T) {
	d := NewDecoder(nil)
	targeting := game.RunState{Kind: game.ShowTargeting, Range: 6}
	d.Track(game.Snapshot{State: targeting, PlayerPos: gamemap.Point{X: 10, Y: 10}})

	if in := d.Decode(runeKey('l'), targeting); in != nil {
		t.Fatalf("moving the cursor should not produce input, got %+v", in)
	}
	d.Decode(runeKey('k'), targeting)
	in := d.Decode(namedKey(tcell.KeyEnter), targeting)
	if in == nil || in.Target == nil || *in.Target != (gamemap.Point{X: 11, Y: 9}) {
		t.Fatalf("confirm = %+v; want target (11,9)", in)
	}

	// Re-entering targeting resets the cursor onto the player.
	d.Track(game.Snapshot{State: game.RunState{Kind: game.AwaitingInput}})
	d.Track(game.Snapshot{State: targeting, PlayerPos: gamemap.Point{X: 3, Y: 4}})
	if p, ok := d.Cursor(); !ok || p != (gamemap.Point{X: 3, Y: 4}) {
		t.Errorf("cursor = %v, %v; want (3,4) active", p, ok)
	}
}

func TestMouseTargeting(t *testing.T) {
	d := NewDecoder(func(sx, sy int) (int, int) { return sx + 1, sy + 2 })
	targeting := game.RunState{Kind: game.ShowTargeting}

	in := d.Decode(tcell.NewEventMouse(4, 5, tcell.Button1, tcell.ModNone), targeting)
	if in == nil || in.Target == nil || *in.Target != (gamemap.Point{X: 5, Y: 7}) {
		t.Fatalf("click = %+v; want target (5,7)", in)
	}
	if in := d.Decode(tcell.NewEventMouse(4, 5, tcell.Button1, tcell.ModNone), game.RunState{Kind: game.AwaitingInput}); in != nil {
		t.Errorf("click outside targeting = %+v; want nil", in)
	}
}

func TestRunExitsFromMenu(t *testing.T) {
	scr := tcell.NewSimulationScreen("UTF-8")
	if err := scr.Init(); err != nil {
		t.Fatal(err)
	}
	defer scr.Fini()
	scr.SetSize(100, 50)

	g, err := game.New(config.Default(), rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatal(err)
	}
	scr.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	scr.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	if err := Run(scr, g); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !g.Quit() {
		t.Error("game should have quit")
	}
}
