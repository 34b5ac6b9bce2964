package system

import (
	"dungeoncrawl/internal/component"
	"dungeoncrawl/internal/ecs"
	"dungeoncrawl/internal/gamemap"
	"dungeoncrawl/internal/logger"
)

// IndexMap rebuilds Blocked (walls plus BlocksTile entities) and TileContent
// (every positioned entity) from scratch.
func IndexMap(w *ecs.World, m *gamemap.Map) {
	m.PopulateBlocked()
	m.ClearContent()

	for _, id := range w.Query(component.CPosition) {
		pos, _ := ecs.Get[component.Position](w, id)
		if !m.InBounds(pos.X, pos.Y) {
			logger.For("index").WithField("entity", id.String()).
				WithField("x", pos.X).WithField("y", pos.Y).Warn("entity off the map, not indexed")
			continue
		}
		idx := m.Idx(pos.X, pos.Y)
		if w.Has(id, component.CBlocksTile) {
			m.Blocked[idx] = true
		}
		m.TileContent[idx] = append(m.TileContent[idx], id)
	}
}
