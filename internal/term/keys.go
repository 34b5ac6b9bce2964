// Package term connects a game to a tcell screen: it decodes key and mouse
// events into game inputs and drives the draw/poll loop.
package term

import (
	"github.com/gdamore/tcell/v2"

	"dungeoncrawl/internal/game"
	"dungeoncrawl/internal/gamemap"
)

// Decoder turns tcell events into game inputs. It remembers the targeting
// cursor between events.
type Decoder struct {
	toWorld   func(sx, sy int) (int, int)
	cursor    gamemap.Point
	targeting bool
}

// NewDecoder returns a decoder. toWorld maps screen cells to map tiles for
// mouse targeting; nil disables the mouse.
func NewDecoder(toWorld func(sx, sy int) (int, int)) *Decoder {
	return &Decoder{toWorld: toWorld}
}

// Cursor returns the targeting cursor and whether targeting is active.
func (d *Decoder) Cursor() (gamemap.Point, bool) { return d.cursor, d.targeting }

// Track updates the decoder for the frame about to be shown. Entering the
// targeting state puts the cursor on the player.
func (d *Decoder) Track(s game.Snapshot) {
	active := s.State.Kind == game.ShowTargeting
	if active && !d.targeting {
		d.cursor = s.PlayerPos
	}
	d.targeting = active
}

// Decode maps ev to an input for state s, or nil when the event means
// nothing there.
func (d *Decoder) Decode(ev tcell.Event, s game.RunState) *game.Input {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return d.key(ev, s)
	case *tcell.EventMouse:
		return d.mouse(ev, s)
	}
	return nil
}

func (d *Decoder) key(ev *tcell.EventKey, s game.RunState) *game.Input {
	switch s.Kind {
	case game.MainMenu:
		return menuKey(ev)
	case game.GameOver:
		return game.Key(game.ActionAcknowledge)
	case game.ShowInventory:
		return inventoryKey(ev)
	case game.ShowItemActions:
		return itemActionKey(ev)
	case game.ShowTargeting:
		return d.targetKey(ev)
	}
	if a := keyToAction(ev); a != game.ActionNone {
		return game.Key(a)
	}
	return nil
}

func (d *Decoder) mouse(ev *tcell.EventMouse, s game.RunState) *game.Input {
	if s.Kind != game.ShowTargeting || d.toWorld == nil || ev.Buttons()&tcell.Button1 == 0 {
		return nil
	}
	x, y := d.toWorld(ev.Position())
	d.cursor = gamemap.Point{X: x, Y: y}
	return game.TargetAt(x, y)
}

func (d *Decoder) targetKey(ev *tcell.EventKey) *game.Input {
	switch ev.Key() {
	case tcell.KeyEscape:
		return game.Key(game.ActionCancel)
	case tcell.KeyEnter:
		return game.TargetAt(d.cursor.X, d.cursor.Y)
	}
	if dx, dy := game.Delta(keyToAction(ev)); dx != 0 || dy != 0 {
		d.cursor = d.cursor.Add(dx, dy)
	}
	return nil
}

// keyToAction maps a tcell key event to a map-mode action.
func keyToAction(ev *tcell.EventKey) game.Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return game.ActionMoveN
	case tcell.KeyDown:
		return game.ActionMoveS
	case tcell.KeyRight:
		return game.ActionMoveE
	case tcell.KeyLeft:
		return game.ActionMoveW
	case tcell.KeyEscape:
		return game.ActionCancel
	case tcell.KeyEnter:
		return game.ActionConfirm
	}
	if ev.Key() != tcell.KeyRune {
		return game.ActionNone
	}

	// Rune keys.
	switch ev.Rune() {
	case 'k', '8':
		return game.ActionMoveN
	case 'j', '2':
		return game.ActionMoveS
	case 'l', '6':
		return game.ActionMoveE
	case 'h', '4':
		return game.ActionMoveW
	case 'y', '7':
		return game.ActionMoveNW
	case 'u', '9':
		return game.ActionMoveNE
	case 'b', '1':
		return game.ActionMoveSW
	case 'n', '3':
		return game.ActionMoveSE
	case '.', 'w', '5':
		return game.ActionSkipTurn
	case ',', 'g':
		return game.ActionPickup
	case 'i':
		return game.ActionInventory
	case 'd':
		return game.ActionDropMenu
	case '>':
		return game.ActionDescend
	case 'S':
		return game.ActionSave
	}
	return game.ActionNone
}

func menuKey(ev *tcell.EventKey) *game.Input {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.Key(game.ActionNavigateUp)
	case tcell.KeyDown:
		return game.Key(game.ActionNavigateDown)
	case tcell.KeyEnter:
		return game.Key(game.ActionConfirm)
	case tcell.KeyEscape:
		return game.Key(game.ActionCancel)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			return game.Key(game.ActionNavigateUp)
		case 'j':
			return game.Key(game.ActionNavigateDown)
		}
	}
	return nil
}

// inventoryKey selects entries by letter, a for the first.
func inventoryKey(ev *tcell.EventKey) *game.Input {
	switch ev.Key() {
	case tcell.KeyEscape:
		return game.Key(game.ActionCancel)
	case tcell.KeyRune:
		if r := ev.Rune(); r >= 'a' && r <= 'z' {
			return game.Select(int(r - 'a'))
		}
	}
	return nil
}

func itemActionKey(ev *tcell.EventKey) *game.Input {
	switch ev.Key() {
	case tcell.KeyEscape:
		return game.Key(game.ActionCancel)
	case tcell.KeyEnter:
		return game.Key(game.ActionUse)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'u', 'e':
			return game.Key(game.ActionUse)
		case 'd':
			return game.Key(game.ActionDrop)
		case 'r':
			return game.Key(game.ActionUnequip)
		}
	}
	return nil
}
