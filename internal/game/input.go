package game

import "dungeoncrawl/internal/gamemap"

// Action is an abstract player request. Frontends translate their own key
// or network events into actions; the controller never sees raw keys.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveN
	ActionMoveS
	ActionMoveE
	ActionMoveW
	ActionMoveNE
	ActionMoveNW
	ActionMoveSE
	ActionMoveSW
	ActionSkipTurn
	ActionPickup
	ActionInventory
	ActionDropMenu
	ActionDescend
	ActionSave
	ActionNavigateUp
	ActionNavigateDown
	ActionConfirm
	ActionCancel
	ActionUse
	ActionDrop
	ActionUnequip
	ActionAcknowledge
)

// Input is one event handed to Advance. Index picks an inventory entry on
// Confirm in ShowInventory; Target is the chosen tile on Confirm in
// ShowTargeting.
type Input struct {
	Action Action
	Index  int
	Target *gamemap.Point
}

// Key builds an input that carries only an action.
func Key(a Action) *Input { return &Input{Action: a} }

// Select builds a Confirm input for inventory entry i.
func Select(i int) *Input { return &Input{Action: ActionConfirm, Index: i} }

// TargetAt builds a Confirm input for tile (x, y).
func TargetAt(x, y int) *Input {
	return &Input{Action: ActionConfirm, Target: &gamemap.Point{X: x, Y: y}}
}

// Delta converts a movement action to (dx, dy).
func Delta(a Action) (int, int) {
	switch a {
	case ActionMoveN:
		return 0, -1
	case ActionMoveS:
		return 0, 1
	case ActionMoveE:
		return 1, 0
	case ActionMoveW:
		return -1, 0
	case ActionMoveNE:
		return 1, -1
	case ActionMoveNW:
		return -1, -1
	case ActionMoveSE:
		return 1, 1
	case ActionMoveSW:
		return -1, 1
	}
	return 0, 0
}
