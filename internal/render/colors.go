package render

import (
	"github.com/gdamore/tcell/v2"

	"dungeoncrawl/internal/gamemap"
)

// Theme holds the glyphs and colors used to draw one level's terrain.
// Revealed tiles outside the field of view are drawn with Dim.
type Theme struct {
	Wall, Floor, Down, Up string
	WallFG                tcell.Color
	FloorFG               tcell.Color
	StairsFG              tcell.Color
	Dim                   tcell.Color
}

// Themes cycle with depth.
var Themes = []Theme{
	// Depth 1: grey stone
	{Wall: "#", Floor: ".", Down: ">", Up: "<",
		WallFG: tcell.ColorLightGray, FloorFG: tcell.ColorGray, StairsFG: tcell.ColorAqua, Dim: tcell.ColorDarkSlateGray},
	// Depth 2: mossy caves
	{Wall: "#", Floor: ".", Down: ">", Up: "<",
		WallFG: tcell.ColorDarkSeaGreen, FloorFG: tcell.ColorDarkGreen, StairsFG: tcell.ColorAqua, Dim: tcell.ColorDarkSlateGray},
	// Depth 3: sandstone
	{Wall: "#", Floor: ".", Down: ">", Up: "<",
		WallFG: tcell.ColorBurlyWood, FloorFG: tcell.ColorSienna, StairsFG: tcell.ColorAqua, Dim: tcell.ColorDarkSlateGray},
	// Depth 4+: deep halls
	{Wall: "#", Floor: ".", Down: ">", Up: "<",
		WallFG: tcell.ColorSlateBlue, FloorFG: tcell.ColorMidnightBlue, StairsFG: tcell.ColorAqua, Dim: tcell.ColorDarkSlateGray},
}

// ThemeFor picks the theme for depth (1-based).
func ThemeFor(depth int) Theme {
	if depth < 1 {
		depth = 1
	}
	return Themes[(depth-1)%len(Themes)]
}

// tile returns the glyph and foreground for t.
func (th Theme) tile(t gamemap.TileType, visible bool) (string, tcell.Color) {
	var glyph string
	fg := th.FloorFG
	switch t {
	case gamemap.Wall:
		glyph, fg = th.Wall, th.WallFG
	case gamemap.StairsDown:
		glyph, fg = th.Down, th.StairsFG
	case gamemap.StairsUp:
		glyph, fg = th.Up, th.StairsFG
	default:
		glyph = th.Floor
	}
	if !visible {
		fg = th.Dim
	}
	return glyph, fg
}
