package component

import "dungeoncrawl/internal/ecs"

const (
	CItem              ecs.ComponentType = 12
	CConsumable        ecs.ComponentType = 13
	CEquippable        ecs.ComponentType = 14
	CProvidesHealing   ecs.ComponentType = 15
	CDealsDamage       ecs.ComponentType = 16
	CAreaOfEffect      ecs.ComponentType = 17
	CRanged            ecs.ComponentType = 18
	CMeleePowerBonus   ecs.ComponentType = 19
	CMeleeDefenseBonus ecs.ComponentType = 20
)

// EquipmentSlot is where an Equippable item is worn.
type EquipmentSlot uint8

const (
	RightHand EquipmentSlot = iota
	LeftHand
)

func (s EquipmentSlot) String() string {
	if s == LeftHand {
		return "left hand"
	}
	return "right hand"
}

// Item marks an entity that can be picked up.
type Item struct{}

func (Item) Type() ecs.ComponentType { return CItem }

// Consumable items are despawned after a successful use.
type Consumable struct{}

func (Consumable) Type() ecs.ComponentType { return CConsumable }

type Equippable struct {
	Slot EquipmentSlot
}

func (Equippable) Type() ecs.ComponentType { return CEquippable }

type ProvidesHealing struct {
	Amount int
}

func (ProvidesHealing) Type() ecs.ComponentType { return CProvidesHealing }

type DealsDamage struct {
	Amount int
}

func (DealsDamage) Type() ecs.ComponentType { return CDealsDamage }

type AreaOfEffect struct {
	Radius int
}

func (AreaOfEffect) Type() ecs.ComponentType { return CAreaOfEffect }

// Ranged items ask the player for a target tile within Range before use.
type Ranged struct {
	Range int
}

func (Ranged) Type() ecs.ComponentType { return CRanged }

type MeleePowerBonus struct {
	Power int
}

func (MeleePowerBonus) Type() ecs.ComponentType { return CMeleePowerBonus }

type MeleeDefenseBonus struct {
	Defense int
}

func (MeleeDefenseBonus) Type() ecs.ComponentType { return CMeleeDefenseBonus }
