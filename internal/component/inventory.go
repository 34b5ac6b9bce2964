package component

import "dungeoncrawl/internal/ecs"

const (
	CInBackpack ecs.ComponentType = 21
	CEquipped   ecs.ComponentType = 22
)

// InBackpack places an item in Owner's pack. An item carries at most one of
// InBackpack, Equipped or Position.
type InBackpack struct {
	Owner ecs.Entity
}

func (InBackpack) Type() ecs.ComponentType { return CInBackpack }

// Equipped means the item is worn by Owner in Slot.
type Equipped struct {
	Owner ecs.Entity
	Slot  EquipmentSlot
}

func (Equipped) Type() ecs.ComponentType { return CEquipped }
