// Package generate builds dungeon levels. Strategies register themselves by
// name and are created through New, so callers never depend on a concrete
// builder.
package generate

import (
	"math/rand"
	"slices"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"dungeoncrawl/internal/gamemap"
	"dungeoncrawl/internal/logger"
)

// ErrGenerationFailure is returned when no room could be placed even after
// relaxing the constraints.
var ErrGenerationFailure = errors.New("dungeon generation failed")

// Builder produces one level per call.
type Builder interface {
	// Build returns a connected map for depth and the player start.
	Build(depth int) (*gamemap.Map, gamemap.Point, error)
	// History returns the snapshots recorded during the last Build. Empty
	// unless Params.RecordHistory is set.
	History() []*gamemap.Map
}

// Params tunes a builder.
type Params struct {
	Width, Height int
	MaxRooms      int
	MinSize       int
	MaxSize       int
	// MaxAttempts bounds the relax-and-retry loop; values below 1 mean 1.
	MaxAttempts   int
	RecordHistory bool
}

// DefaultParams matches the classic 80x43 layout.
func DefaultParams() Params {
	return Params{Width: 80, Height: 43, MaxRooms: 30, MinSize: 6, MaxSize: 10, MaxAttempts: 5}
}

// relax loosens the constraints after a failed attempt.
func (p Params) relax() Params {
	p.MinSize = max(3, p.MinSize-1)
	p.MaxSize = max(p.MinSize, p.MaxSize-1)
	p.MaxRooms = max(p.MaxRooms+1, p.MaxRooms*3/2)
	return p
}

func (p Params) fields() logrus.Fields {
	return logrus.Fields{
		"width": p.Width, "height": p.Height, "max_rooms": p.MaxRooms,
		"min_size": p.MinSize, "max_size": p.MaxSize,
	}
}

// Factory creates a builder from params and a random source.
type Factory func(p Params, rng *rand.Rand) Builder

var registry = map[string]Factory{}

// Register makes a strategy available under name. It is meant to be called
// from init functions.
func Register(name string, f Factory) {
	registry[name] = f
}

// New creates the builder registered under name.
func New(name string, p Params, rng *rand.Rand) (Builder, error) {
	f, ok := registry[name]
	if !ok {
		return nil, errors.Errorf("unknown builder %q (have %v)", name, Names())
	}
	return f(p, rng), nil
}

// Names lists the registered strategies in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// attempt runs one placement pass and returns a map with zero or more rooms.
type attempt func(p Params, depth int) *gamemap.Map

// buildWithRetry runs try until it yields at least one room, relaxing the
// params between attempts. The successful map is finished (stairs, pruning)
// before it is returned.
func buildWithRetry(name string, p Params, depth int, h *history, try attempt) (*gamemap.Map, gamemap.Point, error) {
	log := logger.For("generate").WithField("builder", name).WithField("depth", depth)
	tries := max(1, p.MaxAttempts)
	cur := p
	for i := range tries {
		h.reset()
		m := try(cur, depth)
		if len(m.Rooms) > 0 {
			start := finish(m, h)
			log.WithFields(cur.fields()).WithField("rooms", len(m.Rooms)).Debug("level built")
			return m, start, nil
		}
		log.WithFields(cur.fields()).WithField("attempt", i+1).Warn("no rooms placed, relaxing constraints")
		cur = cur.relax()
	}
	log.WithFields(p.fields()).Error("giving up on level generation")
	return nil, gamemap.Point{}, errors.Wrapf(ErrGenerationFailure,
		"%s builder: %dx%d, rooms %d, size %d-%d, %d attempts",
		name, p.Width, p.Height, p.MaxRooms, p.MinSize, p.MaxSize, tries)
}

// finish places the down stairs in the last room, prunes solid wall blocks
// and returns the start point at the first room's center.
func finish(m *gamemap.Map, h *history) gamemap.Point {
	stairs := m.Rooms[len(m.Rooms)-1].Center()
	m.SetTile(stairs.X, stairs.Y, gamemap.StairsDown)
	pruneWalls(m)
	m.PopulateBlocked()
	h.snapshot(m)
	return m.Rooms[0].Center()
}

// history records revealed copies of the map as it is built.
type history struct {
	enabled bool
	maps    []*gamemap.Map
}

func (h *history) reset() { h.maps = nil }

func (h *history) snapshot(m *gamemap.Map) {
	if !h.enabled {
		return
	}
	c := m.Clone()
	c.RevealAll()
	h.maps = append(h.maps, c)
}

func (h *history) list() []*gamemap.Map {
	return append([]*gamemap.Map(nil), h.maps...)
}

// between returns a uniform int in [lo, hi].
func between(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
