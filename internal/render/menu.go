package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"dungeoncrawl/internal/game"
)

var (
	titleStyle    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	menuStyle     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	selectedStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	hintStyle     = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

func (r *Renderer) drawMainMenu(s game.Snapshot) {
	_, h := r.screen.Size()
	y := max(1, h/2-5)
	r.drawCentered(y, "D U N G E O N C R A W L", titleStyle)
	y += 3
	for _, sel := range []game.MenuSelection{game.MenuNewGame, game.MenuLoadGame, game.MenuExit} {
		style := menuStyle
		if sel == s.State.MenuSelection {
			style = selectedStyle
		}
		r.drawCentered(y, sel.String(), style)
		y += 2
	}
	if n := len(s.Log); n > 0 {
		r.drawCentered(y+1, s.Log[n-1], hintStyle)
	}
}

func (r *Renderer) drawGameOver(s game.Snapshot) {
	_, h := r.screen.Size()
	y := max(1, h/2-3)
	r.drawCentered(y, "You are dead.", tcell.StyleDefault.Foreground(tcell.ColorRed))
	r.drawCentered(y+2, fmt.Sprintf("You reached depth %d after %d turns.", s.Depth, s.Turns), menuStyle)
	r.drawCentered(y+4, "Press any key to return to the main menu.", hintStyle)
}

// drawBox clears a framed rectangle and returns its inner origin.
func (r *Renderer) drawBox(x, y, w, h int, title string) (int, int) {
	border := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			ch := ' '
			switch {
			case (row == y || row == y+h-1) && (col == x || col == x+w-1):
				ch = '+'
			case row == y || row == y+h-1:
				ch = '-'
			case col == x || col == x+w-1:
				ch = '|'
			}
			r.screen.SetContent(col, row, ch, nil, border)
		}
	}
	r.drawText(x+2, y, " "+title+" ", titleStyle)
	return x + 2, y + 1
}

func (r *Renderer) drawInventory(s game.Snapshot) {
	title := "Inventory"
	if s.State.Mode == game.ModeDrop {
		title = "Drop which item?"
	}
	h := len(s.Inventory) + 3
	ix, iy := r.drawBox(4, 2, 44, max(h, 4), title)
	if len(s.Inventory) == 0 {
		r.drawText(ix, iy, "(empty)", hintStyle)
	}
	for i, e := range s.Inventory {
		line := fmt.Sprintf("(%c) %s", 'a'+rune(i), e.Name)
		if e.Equipped {
			line += fmt.Sprintf(" [%s]", e.Slot)
		}
		r.drawText(ix, iy+i, line, menuStyle)
	}
	r.drawText(ix, iy+max(h, 4)-2, "Esc to close", hintStyle)
}

func (r *Renderer) drawItemActions(s game.Snapshot) {
	name := "item"
	for _, e := range s.Inventory {
		if e.Item == s.State.Item {
			name = e.Name
		}
	}
	ix, iy := r.drawBox(8, 4, 36, 6, name)
	r.drawText(ix, iy, "(u) Use / equip", menuStyle)
	r.drawText(ix, iy+1, "(d) Drop", menuStyle)
	r.drawText(ix, iy+2, "(r) Remove", menuStyle)
	r.drawText(ix, iy+3, "Esc to go back", hintStyle)
}
