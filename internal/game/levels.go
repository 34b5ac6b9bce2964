package game

import (
	"math/rand"

	"github.com/pkg/errors"

	"dungeoncrawl/internal/config"
	"dungeoncrawl/internal/ecs"
	"dungeoncrawl/internal/factory"
	"dungeoncrawl/internal/gamemap"
	"dungeoncrawl/internal/generate"
)

// levelParams converts the dungeon config into builder parameters.
func levelParams(d config.Dungeon) generate.Params {
	return generate.Params{
		Width:         d.Width,
		Height:        d.Height,
		MaxRooms:      d.MaxRooms,
		MinSize:       d.MinRoomSize,
		MaxSize:       d.MaxRoomSize,
		MaxAttempts:   d.MaxAttempts,
		RecordHistory: d.History,
	}
}

// populateConfig ramps the monster budget by one every two levels.
func populateConfig(d config.Dungeon, depth int, rng *rand.Rand) generate.PopulateConfig {
	return generate.PopulateConfig{
		Depth:       depth,
		MaxMonsters: d.MaxMonsters + (depth-1)/2,
		MaxItems:    d.MaxItems,
		Monsters:    generate.MonsterTable,
		Items:       generate.ItemTable,
		Rand:        rng,
	}
}

// buildLevel generates the map for depth and fills it with monsters and
// items. It returns the map, the player start and the number of spawns.
func buildLevel(w *ecs.World, cfg config.Config, depth int, rng *rand.Rand) (*gamemap.Map, gamemap.Point, int, error) {
	b, err := generate.New(cfg.Dungeon.Builder, levelParams(cfg.Dungeon), rng)
	if err != nil {
		return nil, gamemap.Point{}, 0, err
	}
	m, start, err := b.Build(depth)
	if err != nil {
		return nil, gamemap.Point{}, 0, errors.Wrapf(err, "build depth %d", depth)
	}
	n := factory.SpawnAll(w, generate.Populate(m, populateConfig(cfg.Dungeon, depth, rng)), cfg.MonsterSight)
	return m, start, n, nil
}
