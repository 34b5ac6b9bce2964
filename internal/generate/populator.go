package generate

import (
	"math/rand"

	"dungeoncrawl/internal/gamemap"
)

// PopulateConfig drives room filling for one level.
type PopulateConfig struct {
	Depth       int
	MaxMonsters int
	MaxItems    int
	Monsters    []MonsterSpawnEntry
	Items       []ItemSpawnEntry
	Rand        *rand.Rand
}

// MonsterSpawn describes one monster to create.
type MonsterSpawn struct {
	Entry MonsterSpawnEntry
	X, Y  int
}

// ItemSpawn describes one item to create.
type ItemSpawn struct {
	Entry ItemSpawnEntry
	X, Y  int
}

// PopulateResult is returned by Populate with entity spawn data.
type PopulateResult struct {
	Monsters []MonsterSpawn
	Items    []ItemSpawn
}

// Populate picks monsters and items for every room except the first (the
// player's). Each spawn lands on a distinct interior tile of its room.
func Populate(m *gamemap.Map, cfg PopulateConfig) PopulateResult {
	var result PopulateResult
	if len(m.Rooms) < 2 {
		return result
	}

	monsters := eligibleMonsters(cfg.Monsters, cfg.Depth)
	items := eligibleItems(cfg.Items, cfg.Depth)

	for _, room := range m.Rooms[1:] {
		free := interior(room)
		cfg.Rand.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })

		nMonsters := between(cfg.Rand, 0, cfg.MaxMonsters)
		nItems := between(cfg.Rand, 0, cfg.MaxItems)

		for range nMonsters {
			if len(free) == 0 || len(monsters) == 0 {
				break
			}
			p := free[0]
			free = free[1:]
			entry := monsters[pickWeighted(cfg.Rand, len(monsters), func(i int) int { return monsters[i].Weight })]
			result.Monsters = append(result.Monsters, MonsterSpawn{Entry: entry, X: p.X, Y: p.Y})
		}
		for range nItems {
			if len(free) == 0 || len(items) == 0 {
				break
			}
			p := free[0]
			free = free[1:]
			entry := items[pickWeighted(cfg.Rand, len(items), func(i int) int {
				return itemWeight(items[i], cfg.Depth)
			})]
			result.Items = append(result.Items, ItemSpawn{Entry: entry, X: p.X, Y: p.Y})
		}
	}
	return result
}

// interior lists the floor tiles of room, skipping its center where the
// stairs may sit.
func interior(room gamemap.Rect) []gamemap.Point {
	c := room.Center()
	pts := make([]gamemap.Point, 0, room.Width()*room.Height())
	for y := room.Y1; y < room.Y2; y++ {
		for x := room.X1; x < room.X2; x++ {
			if x == c.X && y == c.Y {
				continue
			}
			pts = append(pts, gamemap.Point{X: x, Y: y})
		}
	}
	return pts
}

func eligibleMonsters(table []MonsterSpawnEntry, depth int) []MonsterSpawnEntry {
	var out []MonsterSpawnEntry
	for _, e := range table {
		if e.MinDepth <= depth && e.Weight > 0 {
			out = append(out, e)
		}
	}
	return out
}

func eligibleItems(table []ItemSpawnEntry, depth int) []ItemSpawnEntry {
	var out []ItemSpawnEntry
	for _, e := range table {
		if e.MinDepth <= depth && itemWeight(e, depth) > 0 {
			out = append(out, e)
		}
	}
	return out
}

func itemWeight(e ItemSpawnEntry, depth int) int {
	return e.Weight + e.DepthWeight*max(0, depth-1)
}

// pickWeighted returns an index in [0, n) with probability proportional to
// weight(i).
func pickWeighted(rng *rand.Rand, n int, weight func(int) int) int {
	total := 0
	for i := range n {
		total += weight(i)
	}
	if total <= 0 {
		return rng.Intn(n)
	}
	roll := rng.Intn(total)
	for i := range n {
		roll -= weight(i)
		if roll < 0 {
			return i
		}
	}
	return n - 1
}
