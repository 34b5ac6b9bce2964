package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"dungeoncrawl/internal/game"
)

// DrawHUD renders the status bar and message log at the bottom of the screen.
func (r *Renderer) DrawHUD(s game.Snapshot) {
	_, screenH := r.screen.Size()
	hudY := screenH - HUDRows

	r.drawHLine(hudY, tcell.ColorGray)

	p := s.Player
	hpColor := tcell.ColorGreen
	if p.HP*3 <= p.MaxHP {
		hpColor = tcell.ColorRed
	}
	hpText := fmt.Sprintf("HP: %d/%d", p.HP, p.MaxHP)
	col := r.drawText(0, hudY+1, hpText, tcell.StyleDefault.Foreground(hpColor))
	stats := fmt.Sprintf("  ATK:%d DEF:%d  Depth: %d  Turn: %d",
		p.Power+s.PowerBonus, p.Defense+s.DefenseBonus, s.Depth, s.Turns)
	r.drawText(col, hudY+1, stats, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	for i, msg := range s.Log {
		r.drawText(0, hudY+2+i, msg, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}

	if s.State.Kind == game.ShowTargeting {
		r.drawText(0, 0, "Select a target (Esc to cancel)", tcell.StyleDefault.Foreground(tcell.ColorAqua))
	}
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawText writes text at (x, y) and returns the column after it.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(1, runewidth.RuneWidth(ch))
	}
	return col
}

// drawCentered writes text centred on row y.
func (r *Renderer) drawCentered(y int, text string, style tcell.Style) {
	w, _ := r.screen.Size()
	r.drawText(max(0, (w-runewidth.StringWidth(text))/2), y, text, style)
}
