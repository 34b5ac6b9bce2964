package term

import (
	"github.com/gdamore/tcell/v2"

	"dungeoncrawl/internal/game"
	"dungeoncrawl/internal/logger"
	"dungeoncrawl/internal/render"
)

// Run drives g on screen until the player exits, the screen is finalized
// or the game fails. It returns the game's fatal error, if any.
func Run(screen tcell.Screen, g *game.Game) error {
	r := render.NewRenderer(screen)
	dec := NewDecoder(r.ScreenToWorld)
	l := logger.For("term")

	for !g.Quit() {
		state := g.State()
		if !game.NeedsInput(state) {
			g.Advance(nil)
			continue
		}

		snap := g.Snapshot()
		dec.Track(snap)
		r.Draw(snap)
		if p, ok := dec.Cursor(); ok {
			r.DrawCursor(p.X, p.Y)
		}

		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			l.Debug("screen closed")
			return nil
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey, *tcell.EventMouse:
			if in := dec.Decode(ev, state); in != nil {
				g.Advance(in)
			}
		}
	}
	return g.Err()
}
