package generate

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/pkg/errors"

	"dungeoncrawl/internal/gamemap"
)

func newBuilder(t *testing.T, name string, p Params, seed int64) Builder {
	t.Helper()
	b, err := New(name, p, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("New(%q): %v", name, err)
	}
	return b
}

// reachable flood-fills walkable tiles from start (4-connected).
func reachable(m *gamemap.Map, start gamemap.Point) []bool {
	seen := make([]bool, len(m.Tiles))
	queue := []gamemap.Point{start}
	seen[m.Idx(start.X, start.Y)] = true
	dirs := []gamemap.Point{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range dirs {
			n := cur.Add(d.X, d.Y)
			if !m.InBounds(n.X, n.Y) || m.IsWall(n.X, n.Y) || seen[m.Idx(n.X, n.Y)] {
				continue
			}
			seen[m.Idx(n.X, n.Y)] = true
			queue = append(queue, n)
		}
	}
	return seen
}

func checkLevel(t *testing.T, seed int64, m *gamemap.Map, start gamemap.Point) {
	t.Helper()
	if len(m.Rooms) == 0 {
		t.Fatalf("seed=%d: no rooms", seed)
	}
	if start != m.Rooms[0].Center() {
		t.Errorf("seed=%d: start %v != first room center %v", seed, start, m.Rooms[0].Center())
	}
	if n := m.Count(gamemap.StairsDown); n != 1 {
		t.Errorf("seed=%d: %d down stairs; want exactly 1", seed, n)
	}
	last := m.Rooms[len(m.Rooms)-1].Center()
	if tt, _ := m.Tile(last.X, last.Y); tt != gamemap.StairsDown {
		t.Errorf("seed=%d: last room center %v is %v; want stairs", seed, last, tt)
	}
	seen := reachable(m, start)
	for i, r := range m.Rooms {
		c := r.Center()
		if !seen[m.Idx(c.X, c.Y)] {
			t.Errorf("seed=%d: room %d at %v unreachable from start", seed, i, c)
		}
	}
	for x := range m.Width {
		if !m.IsWall(x, 0) || !m.IsWall(x, m.Height-1) {
			t.Fatalf("seed=%d: outer ring breached at column %d", seed, x)
		}
	}
}

func TestRegistryNames(t *testing.T) {
	names := Names()
	for _, want := range []string{"bsp", "simple"} {
		if !slices.Contains(names, want) {
			t.Errorf("Names() = %v; missing %q", names, want)
		}
	}
	if _, err := New("caves", DefaultParams(), rand.New(rand.NewSource(1))); err == nil {
		t.Error("New with an unknown name should fail")
	}
}

func TestSimpleScenarioE(t *testing.T) {
	p := Params{Width: 80, Height: 50, MaxRooms: 10, MinSize: 4, MaxSize: 8, MaxAttempts: 3}
	for seed := int64(0); seed < 20; seed++ {
		b := newBuilder(t, "simple", p, seed)
		m, start, err := b.Build(1)
		if err != nil {
			t.Fatalf("seed=%d: Build: %v", seed, err)
		}
		if len(m.Rooms) < 1 || len(m.Rooms) > 10 {
			t.Fatalf("seed=%d: %d rooms; want 1..10", seed, len(m.Rooms))
		}
		for i := range m.Rooms {
			for j := i + 1; j < len(m.Rooms); j++ {
				if m.Rooms[i].Intersects(m.Rooms[j]) {
					t.Errorf("seed=%d: rooms %d and %d overlap", seed, i, j)
				}
			}
		}
		if m.Depth != 1 {
			t.Errorf("seed=%d: depth = %d", seed, m.Depth)
		}
		checkLevel(t, seed, m, start)
	}
}

func TestBSPLevelsAreConnected(t *testing.T) {
	p := Params{Width: 60, Height: 30, MaxRooms: 30, MinSize: 4, MaxSize: 8, MaxAttempts: 3}
	for seed := int64(0); seed < 10; seed++ {
		m, start, err := newBuilder(t, "bsp", p, seed).Build(2)
		if err != nil {
			t.Fatalf("seed=%d: Build: %v", seed, err)
		}
		checkLevel(t, seed, m, start)
	}
}

func TestBuildIsDeterministicPerSeed(t *testing.T) {
	p := DefaultParams()
	a, _, _ := newBuilder(t, "simple", p, 7).Build(1)
	b, _, _ := newBuilder(t, "simple", p, 7).Build(1)
	if !slices.Equal(a.Tiles, b.Tiles) {
		t.Error("same seed should yield the same level")
	}
}

func TestBuildFailsOnImpossibleParams(t *testing.T) {
	for _, name := range []string{"simple", "bsp"} {
		p := Params{Width: 5, Height: 5, MaxRooms: 10, MinSize: 4, MaxSize: 8, MaxAttempts: 3}
		_, _, err := newBuilder(t, name, p, 1).Build(1)
		if !errors.Is(err, ErrGenerationFailure) {
			t.Errorf("%s: err = %v; want ErrGenerationFailure", name, err)
		}
	}
}

func TestBuildRelaxesConstraints(t *testing.T) {
	// No room can be placed with MaxRooms=0; the relaxed retry allows one.
	p := Params{Width: 40, Height: 20, MaxRooms: 0, MinSize: 4, MaxSize: 6, MaxAttempts: 2}
	m, _, err := newBuilder(t, "simple", p, 3).Build(1)
	if err != nil {
		t.Fatalf("Build after relax: %v", err)
	}
	if len(m.Rooms) == 0 {
		t.Fatal("expected at least one room after relaxing")
	}

	p.MaxAttempts = 1
	if _, _, err := newBuilder(t, "simple", p, 3).Build(1); !errors.Is(err, ErrGenerationFailure) {
		t.Fatalf("single attempt err = %v; want ErrGenerationFailure", err)
	}
}

func TestHistory(t *testing.T) {
	p := DefaultParams()
	b := newBuilder(t, "simple", p, 5)
	if _, _, err := b.Build(1); err != nil {
		t.Fatal(err)
	}
	if len(b.History()) != 0 {
		t.Fatal("history should be empty when not recording")
	}

	p.RecordHistory = true
	b = newBuilder(t, "simple", p, 5)
	m, _, err := b.Build(1)
	if err != nil {
		t.Fatal(err)
	}
	h := b.History()
	if len(h) < 2 {
		t.Fatalf("history has %d snapshots; want several", len(h))
	}
	for i, snap := range h {
		if slices.Contains(snap.Revealed, false) {
			t.Fatalf("snapshot %d is not fully revealed", i)
		}
	}
	if !slices.Equal(h[len(h)-1].Tiles, m.Tiles) {
		t.Error("final snapshot should match the built map")
	}
}
