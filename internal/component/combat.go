package component

import "dungeoncrawl/internal/ecs"

const (
	CCombatStats ecs.ComponentType = 4
	CTakeDamage  ecs.ComponentType = 5
)

// CombatStats holds hit points and base melee numbers. HP may dip below zero
// until the death sweep runs.
type CombatStats struct {
	MaxHP     int
	HP        int
	Defense   int
	Power     int
	RegenRate int
}

func (CombatStats) Type() ecs.ComponentType { return CCombatStats }

// Heal raises HP by n, clamped to MaxHP.
func (c *CombatStats) Heal(n int) {
	c.HP = min(c.HP+n, c.MaxHP)
}

// TakeDamage accumulates damage dealt during a turn. It is applied in one
// step so the order of hits does not matter.
type TakeDamage struct {
	Amounts []int
}

func (TakeDamage) Type() ecs.ComponentType { return CTakeDamage }

// Total is the sum of all pending amounts.
func (t TakeDamage) Total() int {
	sum := 0
	for _, a := range t.Amounts {
		sum += a
	}
	return sum
}
