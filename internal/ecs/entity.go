package ecs

import (
	"fmt"

	"github.com/pkg/errors"
)

// Entity is a generational handle into the World's slot arena. A handle whose
// generation no longer matches its slot refers to a despawned entity.
type Entity struct {
	Index      uint32
	Generation uint32
}

// NilEntity is the zero handle. Generations start at 1, so no live entity
// ever has it.
var NilEntity = Entity{}

// IsNil reports whether e is the zero handle.
func (e Entity) IsNil() bool { return e == NilEntity }

func (e Entity) String() string {
	return fmt.Sprintf("%dv%d", e.Index, e.Generation)
}

// ComponentType is a small integer key used to store/retrieve components.
type ComponentType uint8

// Component is implemented by every data struct stored in the world.
type Component interface {
	Type() ComponentType
}

var (
	// ErrStaleEntity is returned when a handle refers to a despawned entity.
	ErrStaleEntity = errors.New("stale entity handle")
	// ErrMissingComponent is returned when a required component is absent.
	ErrMissingComponent = errors.New("missing component")
)
