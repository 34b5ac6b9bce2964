package game

import (
	"github.com/pkg/errors"

	"dungeoncrawl/internal/ecs"
	"dungeoncrawl/internal/gamemap"
)

// ErrPersistenceUnavailable is returned by the default backend.
var ErrPersistenceUnavailable = errors.New("persistence unavailable")

// SaveData is everything needed to resume a run. Backends store the
// entities tagged Serializable along with whatever they own, and the map.
type SaveData struct {
	World  *ecs.World
	Map    *gamemap.Map
	Player ecs.Entity
}

// Persistence saves and restores runs.
type Persistence interface {
	Save(SaveData) error
	Load() (SaveData, error)
}

// UnavailablePersistence is the default backend: saving and loading always
// fail with ErrPersistenceUnavailable.
type UnavailablePersistence struct{}

func (UnavailablePersistence) Save(SaveData) error {
	return errors.Wrap(ErrPersistenceUnavailable, "save")
}

func (UnavailablePersistence) Load() (SaveData, error) {
	return SaveData{}, errors.Wrap(ErrPersistenceUnavailable, "load")
}
