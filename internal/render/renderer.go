// Package render draws game snapshots onto a tcell screen.
package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"dungeoncrawl/internal/game"
)

// HUDRows is the height of the status area under the map.
const HUDRows = 7

// Renderer draws the game world onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(0, 0, w, max(1, h-HUDRows), 1),
	}
}

// ScreenToWorld converts a screen cell into map coordinates.
func (r *Renderer) ScreenToWorld(sx, sy int) (int, int) {
	return r.camera.ScreenToWorld(sx, sy)
}

// Draw renders one frame for s and shows it.
func (r *Renderer) Draw(s game.Snapshot) {
	w, h := r.screen.Size()
	r.camera.Resize(w, max(1, h-HUDRows))
	r.screen.Clear()

	switch s.State.Kind {
	case game.MainMenu:
		r.drawMainMenu(s)
	case game.GameOver:
		r.drawGameOver(s)
	default:
		r.camera.Fit(s.PlayerPos.X, s.PlayerPos.Y, s.Width, s.Height)
		r.drawMap(s)
		r.drawTargets(s)
		r.drawEntities(s)
		r.drawMarkers(s)
		r.DrawHUD(s)
		switch s.State.Kind {
		case game.ShowInventory:
			r.drawInventory(s)
		case game.ShowItemActions:
			r.drawItemActions(s)
		}
	}
	r.screen.Show()
}

// drawMap renders revealed tiles, dimming those out of view.
func (r *Renderer) drawMap(s game.Snapshot) {
	theme := ThemeFor(s.Depth)
	for idx, t := range s.Tiles {
		if !s.Revealed[idx] {
			continue
		}
		x, y := idx%s.Width, idx/s.Width
		sx, sy, onScreen := r.camera.WorldToScreen(x, y)
		if !onScreen {
			continue
		}
		glyph, fg := theme.tile(t, s.Visible[idx])
		r.putGlyph(sx, sy, glyph, tcell.StyleDefault.Foreground(fg).Background(tcell.ColorBlack))
	}
}

// drawTargets highlights the tiles a ranged item can reach.
func (r *Renderer) drawTargets(s game.Snapshot) {
	style := tcell.StyleDefault.Background(tcell.ColorDarkBlue)
	for _, p := range s.Targets {
		sx, sy, onScreen := r.camera.WorldToScreen(p.X, p.Y)
		if !onScreen {
			continue
		}
		mainc, combc, _, _ := r.screen.GetContent(sx, sy)
		r.screen.SetContent(sx, sy, mainc, combc, style)
	}
}

// drawEntities renders the snapshot's drawables; they arrive sorted so
// later ones land on top.
func (r *Renderer) drawEntities(s game.Snapshot) {
	for _, d := range s.Drawables {
		sx, sy, onScreen := r.camera.WorldToScreen(d.X, d.Y)
		if !onScreen {
			continue
		}
		bg := d.BG
		if bg == tcell.ColorDefault {
			bg = tcell.ColorBlack
		}
		r.putGlyph(sx, sy, d.Glyph, tcell.StyleDefault.Foreground(d.FG).Background(bg))
	}
}

func (r *Renderer) drawMarkers(s game.Snapshot) {
	style := tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Background(tcell.ColorBlack)
	for _, m := range s.Markers {
		if sx, sy, onScreen := r.camera.WorldToScreen(m.Pos.X, m.Pos.Y); onScreen {
			r.putGlyph(sx, sy, m.Glyph, style)
		}
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, runes[0], combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}

// DrawCursor marks the targeting cursor at map tile (x, y) and shows it.
func (r *Renderer) DrawCursor(x, y int) {
	sx, sy, onScreen := r.camera.WorldToScreen(x, y)
	if !onScreen {
		return
	}
	mainc, combc, _, _ := r.screen.GetContent(sx, sy)
	r.screen.SetContent(sx, sy, mainc, combc, tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorAqua))
	r.screen.Show()
}
