package component

import "dungeoncrawl/internal/ecs"

const (
	CName         ecs.ComponentType = 6
	CPlayer       ecs.ComponentType = 7
	CMonster      ecs.ComponentType = 8
	CBlocksTile   ecs.ComponentType = 9
	CSerializable ecs.ComponentType = 10
)

// Name is the display name used in log messages.
type Name struct {
	Name string
}

func (Name) Type() ecs.ComponentType { return CName }

// Player marks the player-controlled entity.
type Player struct{}

func (Player) Type() ecs.ComponentType { return CPlayer }

// Monster marks entities driven by the monster AI.
type Monster struct{}

func (Monster) Type() ecs.ComponentType { return CMonster }

// BlocksTile marks an entity that occupies its tile (blocks movement).
type BlocksTile struct{}

func (BlocksTile) Type() ecs.ComponentType { return CBlocksTile }

// Serializable marks entities a persistence backend should save.
type Serializable struct{}

func (Serializable) Type() ecs.ComponentType { return CSerializable }
