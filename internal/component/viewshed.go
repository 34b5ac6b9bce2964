package component

import (
	"dungeoncrawl/internal/ecs"
	"dungeoncrawl/internal/gamemap"

	"github.com/zyedidia/generic/mapset"
)

const CViewshed ecs.ComponentType = 3

// Viewshed is the set of tiles an entity can currently see. Dirty asks the
// visibility system to recompute it on the next pass.
type Viewshed struct {
	Visible mapset.Set[gamemap.Point]
	Range   int
	Dirty   bool
}

// NewViewshed returns a dirty viewshed with an empty visible set.
func NewViewshed(rng int) Viewshed {
	return Viewshed{Visible: mapset.New[gamemap.Point](), Range: rng, Dirty: true}
}

// CanSee reports whether p is in the visible set.
func (v Viewshed) CanSee(p gamemap.Point) bool {
	return v.Visible.Has(p)
}

func (Viewshed) Type() ecs.ComponentType { return CViewshed }
