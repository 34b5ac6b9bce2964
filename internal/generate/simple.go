package generate

import (
	"math/rand"

	"dungeoncrawl/internal/gamemap"
)

func init() {
	Register("simple", func(p Params, rng *rand.Rand) Builder {
		return &SimpleBuilder{params: p, rng: rng, hist: &history{enabled: p.RecordHistory}}
	})
}

// SimpleBuilder scatters non-overlapping rectangular rooms and joins each
// one to the previous with an L-shaped corridor.
type SimpleBuilder struct {
	params Params
	rng    *rand.Rand
	hist   *history
}

// Build implements Builder.
func (b *SimpleBuilder) Build(depth int) (*gamemap.Map, gamemap.Point, error) {
	return buildWithRetry("simple", b.params, depth, b.hist, b.roomsAndCorridors)
}

// History implements Builder.
func (b *SimpleBuilder) History() []*gamemap.Map { return b.hist.list() }

func (b *SimpleBuilder) roomsAndCorridors(p Params, depth int) *gamemap.Map {
	m := gamemap.New(p.Width, p.Height, depth)
	b.hist.snapshot(m)

	// rooms keep a one-tile wall border on every side of the map
	maxW := min(p.MaxSize, p.Width-3)
	maxH := min(p.MaxSize, p.Height-3)
	if maxW < p.MinSize || maxH < p.MinSize {
		return m
	}

	for range p.MaxRooms {
		w := between(b.rng, p.MinSize, maxW)
		h := between(b.rng, p.MinSize, maxH)
		x := between(b.rng, 1, p.Width-w-2)
		y := between(b.rng, 1, p.Height-h-2)
		room := gamemap.NewRect(x, y, w, h)

		ok := true
		for _, other := range m.Rooms {
			if room.Intersects(other) {
				ok = false
				break
			}
		}
		if ok {
			carveRoom(m, room)
			m.Rooms = append(m.Rooms, room)
		}
		b.hist.snapshot(m)
	}

	for i := 1; i < len(m.Rooms); i++ {
		carveCorridor(m, m.Rooms[i].Center(), m.Rooms[i-1].Center(), b.rng)
		b.hist.snapshot(m)
	}
	return m
}
