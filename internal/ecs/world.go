package ecs

import (
	"slices"

	"github.com/pkg/errors"
)

// World is the central entity registry and component store.
// Slots are recycled; every despawn bumps the slot generation.
type World struct {
	generations []uint32
	alive       []bool
	free        []uint32
	live        int
	components  map[ComponentType]map[uint32]Component
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		components: make(map[ComponentType]map[uint32]Component),
	}
}

// Spawn mints a new entity handle, reusing a free slot when one exists.
func (w *World) Spawn(comps ...Component) Entity {
	var idx uint32
	if n := len(w.free); n > 0 {
		idx = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		idx = uint32(len(w.generations))
		w.generations = append(w.generations, 1)
		w.alive = append(w.alive, false)
	}
	w.alive[idx] = true
	w.live++
	e := Entity{Index: idx, Generation: w.generations[idx]}
	for _, c := range comps {
		w.Add(e, c)
	}
	return e
}

// Despawn removes the entity and all its components. The slot generation is
// bumped so outstanding handles become stale.
func (w *World) Despawn(e Entity) error {
	if !w.Alive(e) {
		return errors.Wrapf(ErrStaleEntity, "despawn %s", e)
	}
	for _, store := range w.components {
		delete(store, e.Index)
	}
	w.alive[e.Index] = false
	w.generations[e.Index]++
	w.free = append(w.free, e.Index)
	w.live--
	return nil
}

// Alive reports whether the handle refers to a live entity.
func (w *World) Alive(e Entity) bool {
	if e.IsNil() || int(e.Index) >= len(w.generations) {
		return false
	}
	return w.alive[e.Index] && w.generations[e.Index] == e.Generation
}

// Len returns the number of live entities.
func (w *World) Len() int { return w.live }

// Add attaches (or replaces) a component. Stale handles are ignored.
func (w *World) Add(e Entity, c Component) {
	if !w.Alive(e) {
		return
	}
	t := c.Type()
	if w.components[t] == nil {
		w.components[t] = make(map[uint32]Component)
	}
	w.components[t][e.Index] = c
}

// Get returns the component of the given type for entity e, or nil.
func (w *World) Get(e Entity, t ComponentType) Component {
	if !w.Alive(e) {
		return nil
	}
	store := w.components[t]
	if store == nil {
		return nil
	}
	return store[e.Index]
}

// Remove detaches a component from an entity.
func (w *World) Remove(e Entity, t ComponentType) {
	if !w.Alive(e) {
		return
	}
	if store := w.components[t]; store != nil {
		delete(store, e.Index)
	}
}

// Has reports whether entity e has a component of the given type.
func (w *World) Has(e Entity, t ComponentType) bool {
	return w.Get(e, t) != nil
}

// Query returns all live entities that have every listed component type,
// ordered by slot index so that systems iterate deterministically.
func (w *World) Query(types ...ComponentType) []Entity {
	if len(types) == 0 {
		return nil
	}
	// Use the smallest store as the candidate set.
	smallest := types[0]
	for _, t := range types[1:] {
		if len(w.components[t]) < len(w.components[smallest]) {
			smallest = t
		}
	}
	store := w.components[smallest]
	if len(store) == 0 {
		return nil
	}
	indices := make([]uint32, 0, len(store))
	for idx := range store {
		match := true
		for _, t := range types {
			if t == smallest {
				continue
			}
			if _, ok := w.components[t][idx]; !ok {
				match = false
				break
			}
		}
		if match {
			indices = append(indices, idx)
		}
	}
	slices.Sort(indices)

	result := make([]Entity, len(indices))
	for i, idx := range indices {
		result[i] = Entity{Index: idx, Generation: w.generations[idx]}
	}
	return result
}

// Entities returns every live entity in slot order.
func (w *World) Entities() []Entity {
	result := make([]Entity, 0, w.live)
	for idx, ok := range w.alive {
		if ok {
			result = append(result, Entity{Index: uint32(idx), Generation: w.generations[idx]})
		}
	}
	return result
}

// Clear despawns every live entity.
func (w *World) Clear() {
	for _, e := range w.Entities() {
		_ = w.Despawn(e)
	}
}

// Get returns the typed component T attached to e.
func Get[T Component](w *World, e Entity) (T, bool) {
	var zero T
	c := w.Get(e, zero.Type())
	if c == nil {
		return zero, false
	}
	v, ok := c.(T)
	return v, ok
}

// MustGet is Get for components the caller requires; absence is reported as
// ErrMissingComponent.
func MustGet[T Component](w *World, e Entity) (T, error) {
	v, ok := Get[T](w, e)
	if !ok {
		if !w.Alive(e) {
			return v, errors.Wrapf(ErrStaleEntity, "entity %s", e)
		}
		return v, errors.Wrapf(ErrMissingComponent, "entity %s type %d", e, v.Type())
	}
	return v, nil
}
