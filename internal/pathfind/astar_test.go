package pathfind

import (
	"math"
	"testing"
)

// grid is a minimal Graph: '#' blocks, anything else is open.
type grid struct {
	w, h  int
	cells []string
}

func (g grid) open(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.w && y < g.h && g.cells[y][x] != '#'
}

func (g grid) Exits(idx int) []Exit {
	x, y := idx%g.w, idx/g.w
	var out []Exit
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if (dx == 0 && dy == 0) || !g.open(x+dx, y+dy) {
				continue
			}
			cost := 1.0
			if dx != 0 && dy != 0 {
				cost = 1.45
			}
			out = append(out, Exit{Idx: (y+dy)*g.w + x + dx, Cost: cost})
		}
	}
	return out
}

func (g grid) Distance(a, b int) float64 {
	ax, ay := a%g.w, a/g.w
	bx, by := b%g.w, b/g.w
	return math.Hypot(float64(ax-bx), float64(ay-by))
}

func newGrid(rows ...string) grid {
	return grid{w: len(rows[0]), h: len(rows), cells: rows}
}

func TestAStarStraightLine(t *testing.T) {
	g := newGrid(
		".....",
	)
	p := AStar(g, 0, 4)
	if !p.Success {
		t.Fatal("expected a path")
	}
	want := []int{0, 1, 2, 3, 4}
	if len(p.Steps) != len(want) {
		t.Fatalf("steps = %v; want %v", p.Steps, want)
	}
	for i := range want {
		if p.Steps[i] != want[i] {
			t.Fatalf("steps = %v; want %v", p.Steps, want)
		}
	}
}

func TestAStarPrefersDiagonal(t *testing.T) {
	g := newGrid(
		"...",
		"...",
		"...",
	)
	p := AStar(g, 0, 8)
	if !p.Success || len(p.Steps) != 3 {
		t.Fatalf("path = %+v; want 3 steps along the diagonal", p)
	}
	if p.Steps[1] != 4 {
		t.Errorf("second step = %d; want centre 4", p.Steps[1])
	}
}

func TestAStarAroundWall(t *testing.T) {
	g := newGrid(
		".#...",
		".#.#.",
		"...#.",
	)
	start, goal := 0, 4
	p := AStar(g, start, goal)
	if !p.Success {
		t.Fatal("expected a path around the wall")
	}
	if p.Steps[0] != start || p.Steps[len(p.Steps)-1] != goal {
		t.Fatalf("path endpoints wrong: %v", p.Steps)
	}
	for _, idx := range p.Steps {
		if !g.open(idx%g.w, idx/g.w) {
			t.Fatalf("path crosses a wall at %d: %v", idx, p.Steps)
		}
	}
}

func TestAStarNoPath(t *testing.T) {
	g := newGrid(
		".#.",
		"##.",
		"...",
	)
	if p := AStar(g, 0, 8); p.Success {
		t.Fatalf("expected failure; got %v", p.Steps)
	}
}

func TestAStarStartIsGoal(t *testing.T) {
	g := newGrid("...")
	p := AStar(g, 1, 1)
	if !p.Success || len(p.Steps) != 1 {
		t.Fatalf("path = %+v; want a single-step success", p)
	}
}
