package render

// Camera translates between world coordinates and screen coordinates.
// Each world tile is Cell columns wide; 2 suits emoji glyphs.
type Camera struct {
	OffsetX    int
	OffsetY    int
	Cell       int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera centered on (cx, cy).
func NewCamera(cx, cy, viewW, viewH, cell int) *Camera {
	c := &Camera{ViewWidth: viewW, ViewHeight: viewH, Cell: max(1, cell)}
	c.Center(cx, cy)
	return c
}

// Resize changes the viewport size without moving the center.
func (c *Camera) Resize(viewW, viewH int) {
	cx, cy := c.ScreenToWorld(c.ViewWidth/2, c.ViewHeight/2)
	c.ViewWidth, c.ViewHeight = viewW, viewH
	c.Center(cx, cy)
}

// Center repositions the camera so that world position (cx, cy) is in the middle.
func (c *Camera) Center(cx, cy int) {
	c.OffsetX = cx - (c.ViewWidth/c.Cell)/2
	c.OffsetY = cy - c.ViewHeight/2
}

// Fit centers on (cx, cy) but keeps a map of mapW×mapH tiles pinned to the
// top-left corner when it fits in the viewport.
func (c *Camera) Fit(cx, cy, mapW, mapH int) {
	c.Center(cx, cy)
	if mapW*c.Cell <= c.ViewWidth {
		c.OffsetX = 0
	}
	if mapH <= c.ViewHeight {
		c.OffsetY = 0
	}
}

// WorldToScreen converts world (wx, wy) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	sx = (wx - c.OffsetX) * c.Cell
	sy = wy - c.OffsetY
	visible = sx >= 0 && sx < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld converts screen (sx, sy) to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy int) (int, int) {
	return sx/c.Cell + c.OffsetX, sy + c.OffsetY
}
