package generate

import (
	"math/rand"

	"dungeoncrawl/internal/gamemap"
)

func init() {
	Register("bsp", func(p Params, rng *rand.Rand) Builder {
		return &BSPBuilder{params: p, rng: rng, hist: &history{enabled: p.RecordHistory}}
	})
}

// BSPBuilder recursively splits the map into leaves, places one room per
// terminal leaf and connects sibling subtrees.
type BSPBuilder struct {
	params Params
	rng    *rand.Rand
	hist   *history
}

// Build implements Builder.
func (b *BSPBuilder) Build(depth int) (*gamemap.Map, gamemap.Point, error) {
	return buildWithRetry("bsp", b.params, depth, b.hist, b.partition)
}

// History implements Builder.
func (b *BSPBuilder) History() []*gamemap.Map { return b.hist.list() }

// bspLeaf is a node in the BSP tree.
type bspLeaf struct {
	X, Y, W, H  int
	left, right *bspLeaf
	room        *gamemap.Rect
}

// bspState carries the per-build settings derived from Params.
type bspState struct {
	p       Params
	rng     *rand.Rand
	minLeaf int
	maxLeaf int
	m       *gamemap.Map
	hist    *history
}

const roomPadding = 1

// split divides the leaf into two children, returning false when leaf is too small.
func (l *bspLeaf) split(s *bspState) bool {
	if l.left != nil || l.right != nil {
		return false
	}
	// Horizontal when taller, vertical when wider, random when square-ish.
	splitH := s.rng.Intn(2) == 0
	if l.W > l.H && float64(l.W)/float64(l.H) >= 1.25 {
		splitH = false
	} else if l.H > l.W && float64(l.H)/float64(l.W) >= 1.25 {
		splitH = true
	}

	maxSize := l.H
	if !splitH {
		maxSize = l.W
	}
	if maxSize <= s.minLeaf*2 {
		return false
	}

	lo := s.minLeaf
	hi := maxSize - s.minLeaf
	if lo >= hi {
		return false
	}
	split := between(s.rng, lo, hi)

	if splitH {
		l.left = &bspLeaf{X: l.X, Y: l.Y, W: l.W, H: split}
		l.right = &bspLeaf{X: l.X, Y: l.Y + split, W: l.W, H: l.H - split}
	} else {
		l.left = &bspLeaf{X: l.X, Y: l.Y, W: split, H: l.H}
		l.right = &bspLeaf{X: l.X + split, Y: l.Y, W: l.W - split, H: l.H}
	}
	return true
}

// createRooms recursively carves rooms inside terminal leaves, stopping once
// MaxRooms rooms exist.
func (l *bspLeaf) createRooms(s *bspState) {
	if l.left != nil || l.right != nil {
		if l.left != nil {
			l.left.createRooms(s)
		}
		if l.right != nil {
			l.right.createRooms(s)
		}
		return
	}
	if len(s.m.Rooms) >= s.p.MaxRooms {
		return
	}

	availW := min(l.W-2*roomPadding, s.p.MaxSize)
	availH := min(l.H-2*roomPadding, s.p.MaxSize)
	if availW < s.p.MinSize || availH < s.p.MinSize {
		return
	}
	rw := between(s.rng, s.p.MinSize, availW)
	rh := between(s.rng, s.p.MinSize, availH)
	rx := l.X + roomPadding + s.rng.Intn(l.W-rw-2*roomPadding+1)
	ry := l.Y + roomPadding + s.rng.Intn(l.H-rh-2*roomPadding+1)

	// Keep a one-tile wall border around the map.
	rx = max(rx, 1)
	ry = max(ry, 1)
	rw = min(rw, s.m.Width-1-rx)
	rh = min(rh, s.m.Height-1-ry)
	if rw < 3 || rh < 3 {
		return
	}

	room := gamemap.NewRect(rx, ry, rw, rh)
	l.room = &room
	carveRoom(s.m, room)
	s.m.Rooms = append(s.m.Rooms, room)
	s.hist.snapshot(s.m)
}

// getRoom returns a room from this leaf or, when split, from its children.
func (l *bspLeaf) getRoom() *gamemap.Rect {
	if l.room != nil {
		return l.room
	}
	var lRoom, rRoom *gamemap.Rect
	if l.left != nil {
		lRoom = l.left.getRoom()
	}
	if l.right != nil {
		rRoom = l.right.getRoom()
	}
	if lRoom == nil {
		return rRoom
	}
	return lRoom
}

// connectChildren carves corridors between the two children of a split leaf.
func (l *bspLeaf) connectChildren(s *bspState) {
	if l.left == nil || l.right == nil {
		return
	}
	l.left.connectChildren(s)
	l.right.connectChildren(s)

	lRoom := l.left.getRoom()
	rRoom := l.right.getRoom()
	if lRoom == nil || rRoom == nil {
		return
	}
	carveCorridor(s.m, lRoom.Center(), rRoom.Center(), s.rng)
	s.hist.snapshot(s.m)
}

func (b *BSPBuilder) partition(p Params, depth int) *gamemap.Map {
	s := &bspState{
		p:       p,
		rng:     b.rng,
		minLeaf: p.MinSize + 2*roomPadding,
		m:       gamemap.New(p.Width, p.Height, depth),
		hist:    b.hist,
	}
	s.maxLeaf = max(2*s.minLeaf+1, p.MaxSize+4)
	s.hist.snapshot(s.m)

	// The outer ring stays wall, so the tree covers the interior only.
	root := &bspLeaf{X: 1, Y: 1, W: p.Width - 2, H: p.Height - 2}
	if root.W < s.minLeaf || root.H < s.minLeaf {
		return s.m
	}

	leaves := []*bspLeaf{root}
	splitAny := true
	for splitAny {
		splitAny = false
		var next []*bspLeaf
		for _, leaf := range leaves {
			if leaf.left != nil || leaf.right != nil {
				next = append(next, leaf.left, leaf.right)
				continue
			}
			if leaf.W > s.maxLeaf || leaf.H > s.maxLeaf || s.rng.Float64() > 0.25 {
				if leaf.split(s) {
					next = append(next, leaf.left, leaf.right)
					splitAny = true
					continue
				}
			}
			next = append(next, leaf)
		}
		leaves = next
	}

	root.createRooms(s)
	root.connectChildren(s)
	return s.m
}
