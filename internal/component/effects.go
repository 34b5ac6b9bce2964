package component

import "dungeoncrawl/internal/ecs"

const CConfusion ecs.ComponentType = 11

// Confusion on an item is applied to its targets; on a creature it counts
// down the turns it will skip.
type Confusion struct {
	Turns int
}

func (Confusion) Type() ecs.ComponentType { return CConfusion }
