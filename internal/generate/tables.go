package generate

// EquipSlot mirrors component.EquipmentSlot without importing it.
type EquipSlot uint8

const (
	EquipNone EquipSlot = iota
	EquipRightHand
	EquipLeftHand
)

// MonsterSpawnEntry describes one kind of monster.
type MonsterSpawnEntry struct {
	Name       string
	Glyph      string
	MaxHP      int
	Defense    int
	Power      int
	SightRange int
	Weight     int
	MinDepth   int
}

// ItemSpawnEntry describes one kind of item. Zero-valued effect fields are
// left off the spawned entity.
type ItemSpawnEntry struct {
	Name         string
	Glyph        string
	Consumable   bool
	Heal         int
	Damage       int
	Radius       int
	ConfuseTurns int
	Range        int
	Slot         EquipSlot
	PowerBonus   int
	DefenseBonus int
	Weight       int
	// DepthWeight is added to Weight for every level below the first.
	DepthWeight int
	MinDepth    int
}

// MonsterTable is the default monster roster.
var MonsterTable = []MonsterSpawnEntry{
	{Name: "Goblin", Glyph: "g", MaxHP: 8, Defense: 1, Power: 4, SightRange: 8, Weight: 10, MinDepth: 1},
	{Name: "Orc", Glyph: "o", MaxHP: 8, Defense: 1, Power: 4, SightRange: 8, Weight: 10, MinDepth: 1},
	{Name: "Troll", Glyph: "T", MaxHP: 16, Defense: 2, Power: 6, SightRange: 8, Weight: 3, MinDepth: 4},
}

// ItemTable is the default item roster.
var ItemTable = []ItemSpawnEntry{
	{Name: "Health Potion", Glyph: "!", Consumable: true, Heal: 8, Weight: 7, MinDepth: 1},
	{Name: "Magic Missile Scroll", Glyph: ")", Consumable: true, Damage: 8, Range: 6, Weight: 4, MinDepth: 1},
	{Name: "Fireball Scroll", Glyph: "*", Consumable: true, Damage: 20, Radius: 3, Range: 6, Weight: 2, DepthWeight: 1, MinDepth: 2},
	{Name: "Confusion Scroll", Glyph: "&", Consumable: true, ConfuseTurns: 4, Range: 6, Weight: 2, DepthWeight: 1, MinDepth: 2},
	{Name: "Dagger", Glyph: "/", Slot: EquipRightHand, PowerBonus: 2, Weight: 3, MinDepth: 1},
	{Name: "Shield", Glyph: "[", Slot: EquipLeftHand, DefenseBonus: 1, Weight: 3, MinDepth: 1},
	{Name: "Longsword", Glyph: "/", Slot: EquipRightHand, PowerBonus: 4, Weight: 1, DepthWeight: 1, MinDepth: 3},
	{Name: "Tower Shield", Glyph: "[", Slot: EquipLeftHand, DefenseBonus: 3, Weight: 1, DepthWeight: 1, MinDepth: 3},
}

// ItemByName looks an entry up in ItemTable.
func ItemByName(name string) (ItemSpawnEntry, bool) {
	for _, e := range ItemTable {
		if e.Name == name {
			return e, true
		}
	}
	return ItemSpawnEntry{}, false
}
