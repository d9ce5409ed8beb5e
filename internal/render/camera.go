package render

import (
	"math"

	"intercept-simulator/pkg/types"
)

const (
	MinScale = 0.05
	MaxScale = 200.0
)

// Camera maps world metres (y up) to surface units (y down). X and Y are
// the world coordinates shown at the bottom-left corner of the surface.
type Camera struct {
	X, Y                 float64
	PanStartX, PanStartY int
	Scale                float64
	Height               int
}

func NewCamera(height int) *Camera {
	return &Camera{Scale: 1, Height: height}
}

func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	sx = (wx - c.X) * c.Scale
	sy = float64(c.Height) - (wy-c.Y)*c.Scale
	return
}

func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	wx = sx/c.Scale + c.X
	wy = (float64(c.Height)-sy)/c.Scale + c.Y
	return
}

// Zoom scales by factor while keeping the world point under (sx, sy) fixed.
func (c *Camera) Zoom(factor, sx, sy float64) {
	worldX, worldY := c.ScreenToWorld(sx, sy)
	c.Scale = math.Max(MinScale, math.Min(MaxScale, c.Scale*factor))
	newWorldX, newWorldY := c.ScreenToWorld(sx, sy)
	c.X -= newWorldX - worldX
	c.Y -= newWorldY - worldY
}

// Pan moves the view by a drag of (dx, dy) surface units.
func (c *Camera) Pan(dx, dy float64) {
	c.X -= dx / c.Scale
	c.Y += dy / c.Scale
}

// FitCamera frames the cannon, both full paths and the ground below them on
// a width x height surface, leaving margin units free on every side.
func FitCamera(paths [][]types.Point, width, height int, margin float64) *Camera {
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := 0.0, 0.0
	for _, path := range paths {
		for _, p := range path {
			minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
			minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		}
	}
	if math.IsInf(minX, 1) {
		minX, maxX = 0, 1
	}

	spanX := math.Max(maxX-minX, 1)
	spanY := math.Max(maxY-minY, 1)
	usableW := math.Max(float64(width)-2*margin, 1)
	usableH := math.Max(float64(height)-2*margin, 1)

	cam := NewCamera(height)
	cam.Scale = math.Max(MinScale, math.Min(MaxScale, math.Min(usableW/spanX, usableH/spanY)))
	cam.X = minX - margin/cam.Scale
	cam.Y = minY - margin/cam.Scale
	return cam
}
