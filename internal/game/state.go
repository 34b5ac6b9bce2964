package game

import "dungeoncrawl/internal/ecs"

// Kind names a run state.
type Kind uint8

const (
	MainMenu Kind = iota
	PreRun
	AwaitingInput
	PlayerTurn
	MonsterTurn
	ShowInventory
	ShowItemActions
	ShowTargeting
	NextLevel
	SaveGame
	GameOver
)

var kindNames = [...]string{
	MainMenu:        "MainMenu",
	PreRun:          "PreRun",
	AwaitingInput:   "AwaitingInput",
	PlayerTurn:      "PlayerTurn",
	MonsterTurn:     "MonsterTurn",
	ShowInventory:   "ShowInventory",
	ShowItemActions: "ShowItemActions",
	ShowTargeting:   "ShowTargeting",
	NextLevel:       "NextLevel",
	SaveGame:        "SaveGame",
	GameOver:        "GameOver",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// MenuSelection is the highlighted main menu entry.
type MenuSelection uint8

const (
	MenuNewGame MenuSelection = iota
	MenuLoadGame
	MenuExit
	menuEntries
)

func (s MenuSelection) String() string {
	switch s {
	case MenuNewGame:
		return "Begin new adventure"
	case MenuLoadGame:
		return "Load game"
	case MenuExit:
		return "Exit"
	}
	return "?"
}

// InventoryMode selects what choosing an inventory entry does.
type InventoryMode uint8

const (
	ModeUse InventoryMode = iota
	ModeDrop
)

// RunState is the controller's current state. Only the payload fields that
// belong to Kind are meaningful: MenuSelection for MainMenu, Mode for
// ShowInventory, Item for ShowItemActions and ShowTargeting, Range for
// ShowTargeting.
type RunState struct {
	Kind          Kind
	MenuSelection MenuSelection
	Mode          InventoryMode
	Item          ecs.Entity
	Range         int
}

// NeedsInput reports whether Advance will wait for an input in state s.
// The other states resolve on their own and should be advanced with nil.
func NeedsInput(s RunState) bool {
	switch s.Kind {
	case PreRun, PlayerTurn, MonsterTurn, NextLevel, SaveGame:
		return false
	}
	return true
}
