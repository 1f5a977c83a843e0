package render

// Camera maps normalized scene coordinates (0..1 on both axes) onto the
// scene area of the screen.
type Camera struct {
	OffsetY    int // first screen row of the scene
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera over a viewW x viewH area starting at row top.
func NewCamera(top, viewW, viewH int) *Camera {
	return &Camera{OffsetY: top, ViewWidth: viewW, ViewHeight: viewH}
}

// Resize updates the viewport after a terminal resize.
func (c *Camera) Resize(top, viewW, viewH int) {
	c.OffsetY, c.ViewWidth, c.ViewHeight = top, viewW, viewH
}

// SceneToScreen converts a scene position to a screen cell.
// visible is false when the result falls outside the viewport.
func (c *Camera) SceneToScreen(x, y float64) (sx, sy int, visible bool) {
	if c.ViewWidth <= 0 || c.ViewHeight <= 0 {
		return 0, 0, false
	}
	sx = int(x * float64(c.ViewWidth-1))
	sy = c.OffsetY + int(y*float64(c.ViewHeight-1))
	visible = x >= 0 && x <= 1 && y >= 0 && y <= 1
	return
}

// ScreenToScene converts a screen cell back to a scene position.
func (c *Camera) ScreenToScene(sx, sy int) (float64, float64) {
	if c.ViewWidth <= 1 || c.ViewHeight <= 1 {
		return 0, 0
	}
	return float64(sx) / float64(c.ViewWidth-1), float64(sy-c.OffsetY) / float64(c.ViewHeight-1)
}
