package system

import (
	"slices"
	"testing"

	"dungeoncrawl/internal/component"
)

func TestIndexMapBlockedAndContent(t *testing.T) {
	tw := newTestWorld(3, 3)
	orc := tw.addMonster("Orc", 5, 5, 8, 1, 4)
	potion := tw.addItem("Potion", component.Position{X: 5, Y: 5})
	tw.index()

	if tw.m.Blocked[tw.m.Idx(3, 3)] {
		t.Error("the player does not block its tile")
	}
	if !tw.m.Blocked[tw.m.Idx(5, 5)] {
		t.Error("monster tile should be blocked")
	}
	if !tw.m.Blocked[tw.m.Idx(0, 0)] {
		t.Error("walls stay blocked")
	}
	content := tw.m.ContentAt(5, 5)
	if !slices.Contains(content, orc) || !slices.Contains(content, potion) {
		t.Errorf("content at (5,5) = %v; want orc and potion", content)
	}
}

func TestIndexMapRebuildsFromScratch(t *testing.T) {
	tw := newTestWorld(3, 3)
	orc := tw.addMonster("Orc", 5, 5, 8, 1, 4)
	tw.index()
	tw.w.Add(orc, component.Position{X: 6, Y: 5})
	tw.index()

	if tw.m.Blocked[tw.m.Idx(5, 5)] || len(tw.m.ContentAt(5, 5)) != 0 {
		t.Error("old tile should be free after reindexing")
	}
	if !tw.m.Blocked[tw.m.Idx(6, 5)] {
		t.Error("new tile should be blocked after reindexing")
	}
}

func TestIndexMapSkipsOffMapEntities(t *testing.T) {
	tw := newTestWorld(3, 3)
	tw.w.Spawn(component.Position{X: 99, Y: -4}, component.BlocksTile{})
	tw.index() // must not panic
}
