// Package pathfind implements A* search over an abstract tile graph.
package pathfind

import (
	"slices"

	"github.com/zyedidia/generic/heap"
)

// MaxSteps bounds the number of nodes A* will expand before giving up.
const MaxSteps = 65536

// Exit is a traversable edge out of a node.
type Exit struct {
	Idx  int
	Cost float64
}

// Graph is the view of a map the search needs. Nodes are flat tile indices.
type Graph interface {
	// Exits lists the neighbours reachable from idx in one step.
	Exits(idx int) []Exit
	// Distance is the heuristic estimate between two nodes.
	Distance(a, b int) float64
}

// Path is the result of a search. Steps[0] is the start node when Success.
type Path struct {
	Steps   []int
	Success bool
}

type node struct {
	idx int
	f   float64
	seq int
}

// AStar finds the cheapest path from start to goal.
func AStar(g Graph, start, goal int) Path {
	if start == goal {
		return Path{Steps: []int{start}, Success: true}
	}

	// ties on f resolve to the earliest pushed node so results are stable
	open := heap.New(func(a, b node) bool {
		if a.f != b.f {
			return a.f < b.f
		}
		return a.seq < b.seq
	})
	cost := map[int]float64{start: 0}
	parent := map[int]int{}
	closed := map[int]bool{}
	seq := 0
	open.Push(node{idx: start, f: g.Distance(start, goal)})

	for steps := 0; open.Size() > 0 && steps < MaxSteps; steps++ {
		cur, _ := open.Pop()
		if cur.idx == goal {
			return Path{Steps: rebuild(parent, start, goal), Success: true}
		}
		if closed[cur.idx] {
			continue
		}
		closed[cur.idx] = true

		for _, e := range g.Exits(cur.idx) {
			if closed[e.Idx] {
				continue
			}
			c := cost[cur.idx] + e.Cost
			if old, seen := cost[e.Idx]; seen && old <= c {
				continue
			}
			cost[e.Idx] = c
			parent[e.Idx] = cur.idx
			seq++
			open.Push(node{idx: e.Idx, f: c + g.Distance(e.Idx, goal), seq: seq})
		}
	}
	return Path{}
}

func rebuild(parent map[int]int, start, goal int) []int {
	steps := []int{goal}
	for cur := goal; cur != start; {
		cur = parent[cur]
		steps = append(steps, cur)
	}
	slices.Reverse(steps)
	return steps
}
